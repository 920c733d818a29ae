package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"teeiq-server/models/course"
	services "teeiq-server/service"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
	QUERY_QUERY_ARG  = "q"
)

// CourseHandler serves the course registry, geocoding and benchmark routes.
type CourseHandler struct {
	courseService *services.CourseService
}

func NewCourseHandler(courseService *services.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// RegisterCourse handles POST /v1/courses with a Course JSON body.
func (h *CourseHandler) RegisterCourse(w http.ResponseWriter, r *http.Request) {
	var c course.Course
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "Invalid course JSON", http.StatusBadRequest)
		return
	}

	registered, err := h.courseService.RegisterCourse(c)
	if err != nil {
		log.Println("Error registering course:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, registered)
}

// GetCoursesNearby handles GET /v1/courses/nearby?lat=&lon=&radius=.
func (h *CourseHandler) GetCoursesNearby(w http.ResponseWriter, r *http.Request) {
	lat, err := parseArgFloat64(r.URL.Query(), LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err := parseArgFloat64(r.URL.Query(), LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err := parseArgFloat64(r.URL.Query(), RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}

	courses, err := h.courseService.GetNearbyCourses(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby courses:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

// Geocode handles GET /v1/courses/geocode?q=. External lookup failures map
// to an empty candidate list, not an error: the caller falls back to manual
// coordinates.
func (h *CourseHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get(QUERY_QUERY_ARG)
	candidates, err := h.courseService.GeocodeCandidates(query)
	if err != nil {
		log.Println("Geocode lookup failed:", err)
		candidates = []course.Candidate{}
	}
	writeJSON(w, http.StatusOK, candidates)
}

// GetBenchmark handles GET /v1/courses/{course_id}/benchmark?radius=.
func (h *CourseHandler) GetBenchmark(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathCourseID(r)
	if !ok {
		http.Error(w, "Missing course_id", http.StatusBadRequest)
		return
	}
	radius := 25.0
	if v := r.URL.Query().Get(RADIUS_QUERY_ARG); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
			return
		}
		radius = parsed
	}

	positioning, err := h.courseService.Positioning(courseID, radius)
	if err != nil {
		log.Println("Error computing benchmark:", err)
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, positioning)
}

// Ping handles GET /ping
func (h *CourseHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
