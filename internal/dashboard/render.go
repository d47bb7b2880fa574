package dashboard

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/aoisome461/suisantenki-app/internal/forecast"
)

// External imagery shown alongside the derived data. The JMA charts are
// served through the wsrv.nl image proxy because the origin rejects
// hotlinked requests.
const (
	surfaceChartURL = "https://static.tenki.jp/static-images/chart/current/large.jpg"
	sstSourceURL    = "https://www.data.jma.go.jp/gmd/kaikyou/kaikyou/tile/jp/png/sst_now.png"
	waveSourceURL   = "https://www.data.jma.go.jp/gmd/waveinf/tile/jp/png/p_now.png"
	windyEmbedURL   = "https://embed.windy.com/embed2.html?lat=35.69&lon=139.69&zoom=5&overlay=waves&product=ecmwf&level=surface&calendar=now&type=map&location=coordinates&metricWind=default&metricTemp=default&radarRange=-1"
)

// ProxyImageURL rewrites an image URL to go through the wsrv.nl proxy.
func ProxyImageURL(raw string) string {
	clean := strings.TrimPrefix(raw, "https://")
	return "https://wsrv.nl/?url=" + url.QueryEscape(clean) + "&output=webp"
}

// Renderer renders the dashboard view model to HTML.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the page template once.
func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"cellClass": cellClass,
		"riskClass": riskClass,
		"fmt1":      func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"optFmt1": func(v *float64) string {
			if v == nil {
				return "-"
			}
			return fmt.Sprintf("%.1f", *v)
		},
		"optPct": func(v *float64) string {
			if v == nil {
				return "-"
			}
			return fmt.Sprintf("%.0f%%", *v)
		},
	}
	return &Renderer{
		tmpl: template.Must(template.New("dashboard").Funcs(funcs).Parse(pageTemplate)),
	}
}

// RenderDashboard writes the full dashboard page.
func (r *Renderer) RenderDashboard(w io.Writer, db *forecast.Dashboard) error {
	data := pageData{
		Dashboard:       db,
		SurfaceChartURL: surfaceChartURL,
		SSTImageURL:     ProxyImageURL(sstSourceURL),
		WaveImageURL:    ProxyImageURL(waveSourceURL),
		WindyEmbedURL:   windyEmbedURL,
	}
	return r.tmpl.Execute(w, data)
}

// RenderDetailCharts writes a standalone chart page with the wave-height
// and wind-speed trends for one location, embedded by the dashboard in an
// iframe.
func (r *Renderer) RenderDetailCharts(w io.Writer, detail forecast.LocationSeries) error {
	page := components.NewPage()
	page.PageTitle = detail.Location.Name
	page.AddCharts(
		detailChart(detail, "wave height (m)", func(s forecast.HourlySample) *float64 { return s.WaveHeight }),
		detailChart(detail, "wind speed (m/s)", func(s forecast.HourlySample) *float64 { return s.WindSpeed }),
	)
	return page.Render(w)
}

func detailChart(ls forecast.LocationSeries, title string, value func(forecast.HourlySample) *float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "880px", Height: "300px"}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s — %s", ls.Location.Name, title)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	labels := make([]string, 0, len(ls.Hourly))
	data := make([]opts.LineData, 0, len(ls.Hourly))
	for _, s := range ls.Hourly {
		labels = append(labels, s.Time.Format("01/02 15:04"))
		if v := value(s); v != nil {
			data = append(data, opts.LineData{Value: *v})
		} else {
			data = append(data, opts.LineData{Value: nil})
		}
	}

	line.SetXAxis(labels).AddSeries(title, data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)
	return line
}

func cellClass(d forecast.DaySummary) string {
	if d.State != forecast.CellOK {
		return "degraded"
	}
	switch d.SeaState {
	case forecast.SeaRough:
		return "rough"
	case forecast.SeaCaution:
		return "caution"
	default:
		return "calm"
	}
}

func riskClass(r forecast.WindRisk) string {
	switch r {
	case forecast.WindHigh:
		return "risk-high"
	case forecast.WindModerate:
		return "risk-moderate"
	default:
		return "risk-low"
	}
}

type pageData struct {
	*forecast.Dashboard
	SurfaceChartURL string
	SSTImageURL     string
	WaveImageURL    string
	WindyEmbedURL   string
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>UMI-MIRU: coastal conditions</title>
<style>
body { font-family: sans-serif; margin: 1.5rem; color: #222; }
table { border-collapse: collapse; margin: 0.5rem 0 1.5rem; }
th, td { border: 1px solid #ccc; padding: 4px 10px; font-size: 0.9rem; }
.rough { color: #c0392b; font-weight: bold; }
.caution { color: #d68910; font-weight: bold; }
.calm { color: #2471a3; font-weight: bold; }
.degraded { color: #888; }
.risk-high { background: #ffcccc; }
.risk-moderate { background: #ffffcc; }
.banner { padding: 8px 12px; margin: 0.5rem 0; border-radius: 4px; background: #eef; }
.advisory { padding: 8px 12px; margin: 0.5rem 0; border-radius: 4px; background: #e8f6f3; }
img.chart { max-width: 640px; width: 100%; border-radius: 6px; }
iframe { border: 0; }
.meta { color: #888; font-size: 0.8rem; }
</style>
</head>
<body>
<h1>UMI-MIRU: coastal conditions &amp; fishing grounds</h1>
<p class="meta">generated {{.GeneratedAt.Format "2006-01-02 15:04"}}</p>

<h2>Surface chart</h2>
<img class="chart" src="{{.SurfaceChartURL}}" alt="surface weather chart">
<p class="meta">source: tenki.jp (Japan Weather Association)</p>

<h2>Port condition matrix</h2>
<table>
<tr><th>Port</th>{{range .Dates}}<th>{{.}}</th>{{end}}</tr>
{{range .Matrix}}
<tr><td>{{.Location.Name}}</td>{{range .Days}}<td class="{{cellClass .}}">{{.Label}}</td>{{end}}</tr>
{{end}}
</table>

<h2>{{.Detail.Location.Name}} — detail trend</h2>
{{if .Detail.Fetched}}
<iframe src="/charts/detail?location={{.Detail.Location.Name}}" width="920" height="680"></iframe>
{{else}}
<p class="degraded">detail data unavailable</p>
{{end}}

<h2>{{.Market.Name}} market &amp; shipping wind</h2>
<div class="advisory">demand: {{.Advisory}}</div>
{{if .WeatherOK}}
{{if .Wind.HasData}}<div class="banner">{{.Wind.Banner}}</div>{{end}}
<table>
<tr><th>Time</th><th>Wind (m/s)</th></tr>
{{range .Wind.Entries}}
<tr class="{{riskClass .Risk}}"><td>{{.Label}}</td><td>{{fmt1 .SpeedMS}}</td></tr>
{{end}}
</table>

<h3>Weekly outlook</h3>
<table>
<tr><th>Date</th><th>Max</th><th>Min</th><th>Precip</th></tr>
{{range .Outlook}}
<tr><td>{{.Date}}</td><td>{{optFmt1 .TempMax}}</td><td>{{optFmt1 .TempMin}}</td><td>{{optPct .PrecipProbMax}}</td></tr>
{{end}}
</table>
{{else}}
<p class="degraded">{{.Market.Name}} weather data unavailable</p>
{{end}}

<h2>Wind &amp; wave overview</h2>
<iframe src="{{.WindyEmbedURL}}" width="100%" height="450"></iframe>

<h2>Sea surface temperature &amp; wave analysis</h2>
<img class="chart" src="{{.SSTImageURL}}" alt="sea surface temperature">
<img class="chart" src="{{.WaveImageURL}}" alt="wave analysis">
<p class="meta"><a href="https://www.jma.go.jp/bosai/map.html">JMA official hazard map</a></p>
</body>
</html>
`
