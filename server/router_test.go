package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockCourseHandler is a mock implementation of the course routes.
type MockCourseHandler struct{}

func (h *MockCourseHandler) RegisterCourse(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusCreated)
	w.Write([]byte(`{"message": "registered"}`))
}

func (h *MockCourseHandler) GetCoursesNearby(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "courses nearby"}`))
}

func (h *MockCourseHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "geocoded"}`))
}

func (h *MockCourseHandler) GetBenchmark(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "benchmark"}`))
}

func (h *MockCourseHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

// MockTeeSheetHandler is a mock implementation of the tee-sheet routes.
type MockTeeSheetHandler struct{}

func (h *MockTeeSheetHandler) ImportTeeSheet(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "imported"}`))
}

func (h *MockTeeSheetHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "kpis"}`))
}

func (h *MockTeeSheetHandler) GetUtilizationHeatmap(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "heatmap"}`))
}

func (h *MockTeeSheetHandler) GetDailyTrend(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "trend"}`))
}

// MockPricingHandler is a mock implementation of the pricing routes.
type MockPricingHandler struct{}

func (h *MockPricingHandler) GetOpportunities(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "opportunities"}`))
}

func (h *MockPricingHandler) GenerateSuggestion(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "suggestion"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	router := mux.NewRouter()
	appRouter := NewRouter(&MockCourseHandler{}, &MockTeeSheetHandler{}, &MockPricingHandler{}, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Register Course",
			method:     "POST",
			path:       "/v1/courses",
			statusCode: http.StatusCreated,
			response:   `{"message": "registered"}`,
		},
		{
			name:       "Get Courses Nearby",
			method:     "GET",
			path:       "/v1/courses/nearby",
			statusCode: http.StatusOK,
			response:   `{"message": "courses nearby"}`,
		},
		{
			name:       "Geocode",
			method:     "GET",
			path:       "/v1/courses/geocode",
			statusCode: http.StatusOK,
			response:   `{"message": "geocoded"}`,
		},
		{
			name:       "Benchmark",
			method:     "GET",
			path:       "/v1/courses/abc/benchmark",
			statusCode: http.StatusOK,
			response:   `{"message": "benchmark"}`,
		},
		{
			name:       "Import Tee Sheet",
			method:     "POST",
			path:       "/v1/courses/abc/teesheet/import",
			statusCode: http.StatusOK,
			response:   `{"message": "imported"}`,
		},
		{
			name:       "Get KPIs",
			method:     "GET",
			path:       "/v1/courses/abc/kpis",
			statusCode: http.StatusOK,
			response:   `{"message": "kpis"}`,
		},
		{
			name:       "Utilization Heatmap",
			method:     "GET",
			path:       "/v1/courses/abc/utilization",
			statusCode: http.StatusOK,
			response:   `{"message": "heatmap"}`,
		},
		{
			name:       "Daily Trend",
			method:     "GET",
			path:       "/v1/courses/abc/utilization/daily",
			statusCode: http.StatusOK,
			response:   `{"message": "trend"}`,
		},
		{
			name:       "Opportunities",
			method:     "GET",
			path:       "/v1/courses/abc/opportunities",
			statusCode: http.StatusOK,
			response:   `{"message": "opportunities"}`,
		},
		{
			name:       "Pricing Suggestion",
			method:     "POST",
			path:       "/v1/courses/abc/pricing/suggest",
			statusCode: http.StatusOK,
			response:   `{"message": "suggestion"}`,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Wrong Method",
			method:     "GET",
			path:       "/v1/courses/abc/pricing/suggest",
			statusCode: http.StatusMethodNotAllowed,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
