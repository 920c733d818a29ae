package openmeteo

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"teeiq-server/config"
	"teeiq-server/util"
)

func pointFixtureRoot(t *testing.T) {
	t.Helper()
	root, err := filepath.Abs("../..")
	if err != nil {
		t.Fatalf("failed to resolve project root: %v", err)
	}
	t.Setenv("PROJECT_ROOT", root)
}

func TestMockGetDailyWeather_ClipsToWindow(t *testing.T) {
	// Arrange
	pointFixtureRoot(t)
	client := NewOpenMeteoApiClientMock()

	all, err := util.ReadDailyWeatherFromCSV(config.GetResourcePath(config.DAILY_WEATHER_RESOURCE))
	if err != nil {
		t.Fatalf("expected no error reading the fixture, got %v", err)
	}
	if len(all) == 0 {
		t.Fatalf("expected a non-empty fixture")
	}
	start := all[0].Date
	end := all[2].Date

	// Act
	observations, err := client.GetDailyWeather(27.95, -82.45, start, end)

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	assert.Equal(t, all[:3], observations, "Window clip doesnt match")
}

func TestMockGetDailyWeather_WindowOutsideFixture(t *testing.T) {
	pointFixtureRoot(t)
	client := NewOpenMeteoApiClientMock()

	observations, err := client.GetDailyWeather(27.95, -82.45, "1999-01-01", "1999-01-07")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	assert.Empty(t, observations, "Expected no observations outside the fixture range")
}

func TestMockGeocodeCandidates(t *testing.T) {
	client := NewOpenMeteoApiClientMock()

	candidates, err := client.GeocodeCandidates("anywhere")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	assert.Len(t, candidates, 1)
	assert.Equal(t, "mock", candidates[0].Source)
}
