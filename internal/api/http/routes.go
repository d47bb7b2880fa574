package httpapi

import (
	"bytes"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/aoisome461/suisantenki-app/internal/dashboard"
	"github.com/aoisome461/suisantenki-app/internal/forecast"
)

var validate = validator.New()

// RegisterRoutes wires the dashboard page and the JSON API into the Fiber app.
func RegisterRoutes(app *fiber.App, service *forecast.Service, renderer *dashboard.Renderer, defaultDetail string) {
	app.Get("/", func(c *fiber.Ctx) error {
		name := c.Query("location", defaultDetail)
		if loc, ok := forecast.FindLocation(name); !ok || loc.Kind != forecast.KindMarine {
			return fiber.NewError(fiber.StatusBadRequest, "unknown marine location")
		}

		renderID := uuid.NewString()
		db, err := service.BuildDashboard(c.Context(), name)
		if err != nil {
			log.Printf("render %s failed: %v", renderID, err)
			return fiber.NewError(fiber.StatusBadGateway, "dashboard build failed")
		}
		log.Printf("render %s: %d rows, weather ok=%v", renderID, len(db.Matrix), db.WeatherOK)

		var buf bytes.Buffer
		if err := renderer.RenderDashboard(&buf, db); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render dashboard")
		}
		c.Type("html", "utf-8")
		return c.Send(buf.Bytes())
	})

	app.Get("/charts/detail", func(c *fiber.Ctx) error {
		name := c.Query("location", defaultDetail)
		detail, err := service.DetailSeries(c.Context(), name)
		if err != nil {
			if !detail.Fetched && detail.Location.Name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "unknown marine location")
			}
			return fiber.NewError(fiber.StatusBadGateway, "detail data unavailable")
		}

		var buf bytes.Buffer
		if err := renderer.RenderDetailCharts(&buf, detail); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render charts")
		}
		c.Type("html", "utf-8")
		return c.Send(buf.Bytes())
	})

	v1 := app.Group("/api/v1")

	v1.Get("/summaries", func(c *fiber.Ctx) error {
		q := summariesQuery{Days: c.QueryInt("days", forecast.DefaultHorizonDays)}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(fiber.Map{
			"days":      q.Days,
			"summaries": service.Summaries(c.Context(), q.Days),
		})
	})

	v1.Get("/wind", func(c *fiber.Ctx) error {
		q := windQuery{Hours: c.QueryInt("hours", forecast.DefaultWindWindowHours)}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := service.WindReport(c.Context(), q.Hours)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "wind data unavailable")
		}
		return c.JSON(report)
	})

	v1.Get("/demand", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"advisory": service.Demand(c.Context()),
		})
	})
}

// summariesQuery holds query parameters for the summaries endpoint.
type summariesQuery struct {
	Days int `validate:"min=1,max=7"`
}

// windQuery holds query parameters for the wind endpoint.
type windQuery struct {
	Hours int `validate:"min=1,max=72"`
}
