package service

import (
	"fmt"
	"strings"
	"time"
)

// Season describes a growing season with its crops and practices
type Season struct {
	Name      string   `json:"name"`
	Period    string   `json:"period"`
	Crops     []string `json:"crops"`
	Practices []string `json:"practices"`
}

var seasons = []Season{
	{
		Name:      "kharif",
		Period:    "June-September",
		Crops:     []string{"Rice", "Maize", "Cotton", "Groundnut", "Sugarcane"},
		Practices: []string{"Sow before monsoon", "Ensure proper drainage", "Monitor for pests"},
	},
	{
		Name:      "rabi",
		Period:    "October-March",
		Crops:     []string{"Wheat", "Barley", "Mustard", "Peas", "Gram"},
		Practices: []string{"Prepare soil well", "Use irrigation", "Protect from frost"},
	},
	{
		Name:      "zaid",
		Period:    "March-June",
		Crops:     []string{"Cucumber", "Watermelon", "Muskmelon", "Bitter gourd"},
		Practices: []string{"Use irrigation", "Provide shade", "Harvest early"},
	},
}

var soilTypes = map[string]string{
	"clay":  "Good water retention, suitable for rice and wheat",
	"sandy": "Good drainage, suitable for groundnuts and potatoes",
	"loamy": "Best for most crops, balanced properties",
	"black": "Rich in minerals, good for cotton and sugarcane",
}

// CropRecommendation is the result of a crop lookup for a location
type CropRecommendation struct {
	Season    Season `json:"season"`
	SoilInfo  string `json:"soil_info"`
	Location  string `json:"location"`
	Generated string `json:"generated"`
}

// seasonForMonth maps a calendar month to the active growing season
func seasonForMonth(month time.Month) Season {
	switch {
	case month >= time.June && month <= time.September:
		return seasons[0] // kharif
	case month >= time.October || month <= time.February:
		return seasons[1] // rabi
	default:
		return seasons[2] // zaid
	}
}

// RecommendCrops returns season-appropriate crops and practices for a
// location and optional soil type
func RecommendCrops(location, soilType string, now time.Time) *CropRecommendation {
	season := seasonForMonth(now.Month())

	soil := strings.ToLower(strings.TrimSpace(soilType))
	soilInfo, ok := soilTypes[soil]
	if !ok {
		soil = "mixed"
		soilInfo = "Balanced properties assumed; a soil test will sharpen these recommendations"
	}

	return &CropRecommendation{
		Season:    season,
		SoilInfo:  fmt.Sprintf("Based on %s soil in %s: %s", soil, location, soilInfo),
		Location:  location,
		Generated: now.UTC().Format(time.RFC3339),
	}
}
