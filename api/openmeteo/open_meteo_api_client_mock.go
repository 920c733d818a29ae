package openmeteo

import (
	"fmt"

	"teeiq-server/config"
	"teeiq-server/models/course"
	"teeiq-server/models/weather"
	"teeiq-server/util"
)

// OpenMeteoApiClientMock serves fixture data instead of calling Open-Meteo.
type OpenMeteoApiClientMock struct {
}

// NewOpenMeteoApiClientMock creates a new instance of OpenMeteoApiClientMock
func NewOpenMeteoApiClientMock() *OpenMeteoApiClientMock {
	return &OpenMeteoApiClientMock{}
}

// GetDailyWeather returns the fixture weather table clipped to [start, end].
func (c *OpenMeteoApiClientMock) GetDailyWeather(lat, lon float64, start, end string) ([]weather.DailyObservation, error) {
	observations, err := util.ReadDailyWeatherFromCSV(config.GetResourcePath(config.DAILY_WEATHER_RESOURCE))
	if err != nil {
		fmt.Println("Could not read daily weather fixture from csv")
		return nil, err
	}

	var out []weather.DailyObservation
	for _, obs := range observations {
		if obs.Date >= start && obs.Date <= end {
			out = append(out, obs)
		}
	}
	return out, nil
}

// GeocodeCandidates returns a single fixed candidate.
func (c *OpenMeteoApiClientMock) GeocodeCandidates(query string) ([]course.Candidate, error) {
	return []course.Candidate{
		{Name: "Demo Municipal Golf Course", Latitude: 27.9506, Longitude: -82.4572, Source: "mock"},
	}, nil
}
