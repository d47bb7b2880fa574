package forecast

// The tracked coastal locations, north to south, plus the Tokyo market
// location used for demand prediction and the shipping wind report.
// This table is process-wide constant data.
var locationTable = []Location{
	{Name: "Hokkaido Betsukai", Lat: 43.39, Lon: 145.12, Kind: KindMarine},
	{Name: "Hokkaido Hakodate", Lat: 41.76, Lon: 140.74, Kind: KindMarine},
	{Name: "Miyagi Ishinomaki", Lat: 38.41, Lon: 141.32, Kind: KindMarine},
	{Name: "Fukushima Soma", Lat: 37.83, Lon: 140.95, Kind: KindMarine},
	{Name: "Toyama Uozu", Lat: 36.83, Lon: 137.40, Kind: KindMarine},
	{Name: "Hyogo Kasumi", Lat: 35.64, Lon: 134.63, Kind: KindMarine},
	{Name: "Kyoto Maizuru", Lat: 35.60, Lon: 135.30, Kind: KindMarine},
	{Name: "Chiba Katsuura", Lat: 35.15, Lon: 140.32, Kind: KindMarine},
	{Name: "Shizuoka Yaizu", Lat: 34.86, Lon: 138.33, Kind: KindMarine},
	{Name: "Kagawa Tadotsu", Lat: 34.27, Lon: 133.75, Kind: KindMarine},
	{Name: "Tokushima", Lat: 34.00, Lon: 134.70, Kind: KindMarine},
	{Name: "Fukuoka Hakata", Lat: 33.60, Lon: 130.40, Kind: KindMarine},
	{Name: "Tokyo", Lat: 35.66, Lon: 139.79, Kind: KindWeather},
}

// DefaultDetailLocation is the port whose detail charts are shown when the
// caller does not pick one.
const DefaultDetailLocation = "Chiba Katsuura"

// Locations returns a copy of the full location table.
func Locations() []Location {
	out := make([]Location, len(locationTable))
	copy(out, locationTable)
	return out
}

// MarineLocations returns the marine-kind locations in table order.
func MarineLocations() []Location {
	var out []Location
	for _, l := range locationTable {
		if l.Kind == KindMarine {
			out = append(out, l)
		}
	}
	return out
}

// MarketLocation returns the weather-kind target market location.
func MarketLocation() Location {
	for _, l := range locationTable {
		if l.Kind == KindWeather {
			return l
		}
	}
	return Location{}
}

// FindLocation looks a location up by name.
func FindLocation(name string) (Location, bool) {
	for _, l := range locationTable {
		if l.Name == name {
			return l, true
		}
	}
	return Location{}, false
}
