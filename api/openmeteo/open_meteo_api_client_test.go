package openmeteo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"teeiq-server/api"
)

func TestGetDailyWeather_Success(t *testing.T) {
	// Mock server setup
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecast" {
			t.Errorf("Expected endpoint '/forecast', got '%s'", r.URL.Path)
		}
		if r.URL.Query().Get("start_date") != "2026-07-06" {
			t.Errorf("Expected start_date query arg, got '%s'", r.URL.Query().Get("start_date"))
		}
		if r.URL.Query().Get("daily") == "" {
			t.Errorf("Expected daily variables query arg")
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"latitude": 27.95,
			"longitude": -82.45,
			"daily": {
				"time": ["2026-07-06", "2026-07-07"],
				"temperature_2m_max": [31.2, null],
				"temperature_2m_min": [22.0, 21.5],
				"precipitation_sum": [0.0, 4.2],
				"windspeed_10m_max": [14.0, 18.6]
			}
		}`))
	}))
	defer mockServer.Close()

	client := NewOpenMeteoApiClient(api.NewHTTPClient(mockServer.URL), api.NewHTTPClient(mockServer.URL))

	// Act
	observations, err := client.GetDailyWeather(27.95, -82.45, "2026-07-06", "2026-07-12")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(observations) != 2 {
		t.Fatalf("Expected 2 observations, got %d", len(observations))
	}
	if observations[0].Date != "2026-07-06" {
		t.Errorf("Expected date 2026-07-06, got %s", observations[0].Date)
	}
	if observations[0].TempMax == nil || *observations[0].TempMax != 31.2 {
		t.Errorf("Expected TempMax 31.2, got %v", observations[0].TempMax)
	}
	// null in the JSON column stays nil
	if observations[1].TempMax != nil {
		t.Errorf("Expected nil TempMax for 2026-07-07, got %v", *observations[1].TempMax)
	}
}

func TestGetDailyWeather_Failure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer mockServer.Close()

	client := NewOpenMeteoApiClient(api.NewHTTPClient(mockServer.URL), api.NewHTTPClient(mockServer.URL))

	_, err := client.GetDailyWeather(27.95, -82.45, "2026-07-06", "2026-07-12")
	if err == nil {
		t.Fatalf("Expected an error, got nil")
	}
	if _, ok := err.(*ExternalServiceError); !ok {
		t.Errorf("Expected *ExternalServiceError, got %T", err)
	}
}

func TestGeocodeCandidates_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("Expected endpoint '/search', got '%s'", r.URL.Path)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{"name": "Pebble Creek", "admin1": "Florida", "country": "United States", "latitude": 28.1, "longitude": -82.5},
			},
		})
	}))
	defer mockServer.Close()

	client := NewOpenMeteoApiClient(api.NewHTTPClient(mockServer.URL), api.NewHTTPClient(mockServer.URL))

	candidates, err := client.GeocodeCandidates("Pebble Creek")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(candidates) == 0 {
		t.Fatalf("Expected candidates, got none")
	}

	// identical coordinates across the query variants collapse to one
	if len(candidates) != 1 {
		t.Errorf("Expected deduplication to 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Name != "Pebble Creek, Florida, United States" {
		t.Errorf("Unexpected candidate name: %s", candidates[0].Name)
	}
}

func TestGeocodeCandidates_CoordinateShortCircuit(t *testing.T) {
	// a server that fails loudly if contacted
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("Expected no remote call for pasted coordinates")
	}))
	defer mockServer.Close()

	client := NewOpenMeteoApiClient(api.NewHTTPClient(mockServer.URL), api.NewHTTPClient(mockServer.URL))

	tests := []struct {
		name  string
		query string
		lat   float64
		lon   float64
	}{
		{"plain pair", "27.9506, -82.4572", 27.9506, -82.4572},
		{"maps url", "https://maps.example.com/@27.9506,-82.4572,15z", 27.9506, -82.4572},
		{"query string", "https://maps.example.com/?q=27.9506,-82.4572", 27.9506, -82.4572},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			candidates, err := client.GeocodeCandidates(test.query)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if len(candidates) != 1 {
				t.Fatalf("Expected 1 candidate, got %d", len(candidates))
			}
			if candidates[0].Latitude != test.lat || candidates[0].Longitude != test.lon {
				t.Errorf("Expected (%v, %v), got (%v, %v)", test.lat, test.lon, candidates[0].Latitude, candidates[0].Longitude)
			}
			if candidates[0].Source != "manual" {
				t.Errorf("Expected manual source, got %s", candidates[0].Source)
			}
		})
	}
}

func TestGeocodeCandidates_EmptyQuery(t *testing.T) {
	client := NewOpenMeteoApiClient(api.NewHTTPClient("http://unused"), api.NewHTTPClient("http://unused"))

	candidates, err := client.GeocodeCandidates("   ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if candidates != nil {
		t.Errorf("Expected nil candidates, got %v", candidates)
	}
}
