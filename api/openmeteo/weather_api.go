package openmeteo

import (
	"teeiq-server/models/course"
	"teeiq-server/models/weather"
)

// WeatherAPI defines the interface for the Open-Meteo forecast and geocoding
// services. Failures here are recoverable by design: callers proceed without
// a weather table.
type WeatherAPI interface {
	GetDailyWeather(lat, lon float64, start, end string) ([]weather.DailyObservation, error)
	GeocodeCandidates(query string) ([]course.Candidate, error)
}
