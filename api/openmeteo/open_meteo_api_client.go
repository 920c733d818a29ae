package openmeteo

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"teeiq-server/api"
	"teeiq-server/models/course"
	"teeiq-server/models/weather"
)

// ExternalServiceError wraps outbound weather/geocode failures after retries
// are exhausted. It never propagates past the service layer: an absent
// weather table is a supported mode.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("external service %s failed: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// coordRe matches a plain "lat, lon" pair pasted into the lookup box.
var coordRe = regexp.MustCompile(`(-?\d{1,3}\.\d+)\s*,\s*(-?\d{1,3}\.\d+)`)

// atCoordRe matches "@lat,lon" patterns from Google/Apple/Bing map URLs.
var atCoordRe = regexp.MustCompile(`@(-?\d{1,3}\.\d+),(-?\d{1,3}\.\d+)`)

// queryCoordRe matches "q=lat,lon" in a querystring.
var queryCoordRe = regexp.MustCompile(`[?&]q=(-?\d{1,3}\.\d+),(-?\d{1,3}\.\d+)`)

// OpenMeteoApiClient talks to the Open-Meteo forecast and geocoding
// endpoints through the shared HTTPClient.
type OpenMeteoApiClient struct {
	forecastClient *api.HTTPClient
	geocodeClient  *api.HTTPClient
}

// NewOpenMeteoApiClient creates a new instance of OpenMeteoApiClient
func NewOpenMeteoApiClient(forecastClient, geocodeClient *api.HTTPClient) *OpenMeteoApiClient {
	return &OpenMeteoApiClient{
		forecastClient: forecastClient,
		geocodeClient:  geocodeClient,
	}
}

// GetDailyWeather fetches per-date max/min temperature, precipitation and
// wind for the given range (dates as YYYY-MM-DD).
func (c *OpenMeteoApiClient) GetDailyWeather(lat, lon float64, start, end string) ([]weather.DailyObservation, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("start_date", start)
	params.Set("end_date", end)
	params.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,windspeed_10m_max")
	params.Set("timezone", "auto")

	var response weather.ForecastResponse
	err := retry.Do(
		func() error {
			return c.forecastClient.Get("/forecast", params, &response)
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.MaxDelay(10*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, &ExternalServiceError{Service: "open-meteo forecast", Err: err}
	}
	return response.Observations(), nil
}

// GeocodeCandidates resolves a course query into location candidates. A
// pasted coordinate pair or maps URL short-circuits the remote call; query
// variants with golf keywords are tried like the original lookup.
func (c *OpenMeteoApiClient) GeocodeCandidates(query string) ([]course.Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	if lat, lon, ok := parseCoordsAny(query); ok {
		return []course.Candidate{{Name: "Manual Coordinates", Latitude: lat, Longitude: lon, Source: "manual"}}, nil
	}

	variants := []string{
		query,
		query + " golf course",
		query + " golf",
	}

	var out []course.Candidate
	tried := make(map[string]struct{})
	for _, v := range variants {
		if _, seen := tried[v]; seen {
			continue
		}
		tried[v] = struct{}{}

		params := url.Values{}
		params.Set("name", v)
		params.Set("count", "5")

		var response weather.GeocodeResponse
		err := retry.Do(
			func() error {
				return c.geocodeClient.Get("/search", params, &response)
			},
			retry.Attempts(3),
			retry.Delay(time.Second),
			retry.MaxDelay(10*time.Second),
			retry.DelayType(retry.BackOffDelay),
			retry.LastErrorOnly(true),
		)
		if err != nil {
			// keep trying the other variants
			continue
		}
		for _, result := range response.Results {
			parts := []string{}
			for _, p := range []string{result.Name, result.Admin1, result.Country} {
				if p != "" {
					parts = append(parts, p)
				}
			}
			name := strings.Join(parts, ", ")
			if name == "" {
				name = v
			}
			out = append(out, course.Candidate{
				Name:      name,
				Latitude:  result.Latitude,
				Longitude: result.Longitude,
				Source:    "open-meteo",
			})
		}
	}

	if len(out) == 0 {
		return nil, &ExternalServiceError{Service: "open-meteo geocoding", Err: fmt.Errorf("no candidates for %q", query)}
	}
	return dedupeCandidates(out), nil
}

// parseCoordsAny extracts lat,lon from raw text or a maps URL.
func parseCoordsAny(s string) (float64, float64, bool) {
	for _, re := range []*regexp.Regexp{atCoordRe, queryCoordRe, coordRe} {
		if m := re.FindStringSubmatch(s); m != nil {
			lat, errLat := strconv.ParseFloat(m[1], 64)
			lon, errLon := strconv.ParseFloat(m[2], 64)
			if errLat == nil && errLon == nil {
				return lat, lon, true
			}
		}
	}
	return 0, 0, false
}

func dedupeCandidates(in []course.Candidate) []course.Candidate {
	type coordKey struct {
		lat, lon float64
	}
	seen := make(map[coordKey]struct{})
	out := make([]course.Candidate, 0, len(in))
	for _, cand := range in {
		k := coordKey{round5(cand.Latitude), round5(cand.Longitude)}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, cand)
	}
	return out
}

func round5(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}
