// Package adapter contains one client per third-party service the
// assistant consults. Every adapter maps provider responses into the
// internal shapes below and returns an error instead of panicking, so
// the orchestration service can substitute its offline fallback.
package adapter

// WeatherReport is the normalized shape of a current-conditions lookup
type WeatherReport struct {
	Location  string  `json:"location"`
	TempC     float64 `json:"temp_c"`
	Condition string  `json:"condition"`
	Humidity  int     `json:"humidity"`
	WindKph   float64 `json:"wind_kph"`
}

// MarketQuote is the normalized shape of a commodity price lookup
type MarketQuote struct {
	Commodity string `json:"commodity"`
	Price     string `json:"price"`
	Unit      string `json:"unit"`
	Trend     string `json:"trend"`
}

// DiseaseDiagnosis is the normalized shape of an image inference result
type DiseaseDiagnosis struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}
