package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonForMonth(t *testing.T) {
	assert.Equal(t, "kharif", seasonForMonth(time.July).Name)
	assert.Equal(t, "rabi", seasonForMonth(time.December).Name)
	assert.Equal(t, "rabi", seasonForMonth(time.January).Name)
	assert.Equal(t, "zaid", seasonForMonth(time.April).Name)
}

func TestRecommendCropsKnownSoil(t *testing.T) {
	now := time.Date(2024, time.November, 10, 0, 0, 0, 0, time.UTC)
	rec := RecommendCrops("Nashik", "clay", now)

	require.NotNil(t, rec)
	assert.Equal(t, "rabi", rec.Season.Name)
	assert.Contains(t, rec.Season.Crops, "Wheat")
	assert.Contains(t, rec.SoilInfo, "clay")
	assert.Contains(t, rec.SoilInfo, "Nashik")
}

func TestRecommendCropsUnknownSoilAssumesMixed(t *testing.T) {
	rec := RecommendCrops("Pune", "volcanic", time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, rec.SoilInfo, "mixed")
}

func TestExtractLocation(t *testing.T) {
	cases := map[string]string{
		"What is the weather in Pune?": "Pune",
		"forecast for Nashik today":    "Nashik",
		"weather near New Delhi":       "New Delhi",
		"how is the weather":           "",
	}

	for message, want := range cases {
		assert.Equal(t, want, extractLocation(message), "message %q", message)
	}
}

func TestExtractCommodity(t *testing.T) {
	assert.Equal(t, "wheat", extractCommodity("price of wheat today"))
	assert.Equal(t, "corn", extractCommodity("what about maize rates"))
	assert.Equal(t, "soybeans", extractCommodity("soybean market"))
	assert.Equal(t, "wheat", extractCommodity("what are the prices"), "defaults to wheat")
}
