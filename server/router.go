package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// CourseRoutes is the handler surface the router needs for course routes.
type CourseRoutes interface {
	RegisterCourse(w http.ResponseWriter, r *http.Request)
	GetCoursesNearby(w http.ResponseWriter, r *http.Request)
	Geocode(w http.ResponseWriter, r *http.Request)
	GetBenchmark(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// TeeSheetRoutes is the handler surface the router needs for tee-sheet routes.
type TeeSheetRoutes interface {
	ImportTeeSheet(w http.ResponseWriter, r *http.Request)
	GetKPIs(w http.ResponseWriter, r *http.Request)
	GetUtilizationHeatmap(w http.ResponseWriter, r *http.Request)
	GetDailyTrend(w http.ResponseWriter, r *http.Request)
}

// PricingRoutes is the handler surface the router needs for pricing routes.
type PricingRoutes interface {
	GetOpportunities(w http.ResponseWriter, r *http.Request)
	GenerateSuggestion(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	courseHandler   CourseRoutes
	teeSheetHandler TeeSheetRoutes
	pricingHandler  PricingRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	courseHandler CourseRoutes,
	teeSheetHandler TeeSheetRoutes,
	pricingHandler PricingRoutes,
	router *mux.Router) *Router {
	return &Router{
		courseHandler:   courseHandler,
		teeSheetHandler: teeSheetHandler,
		pricingHandler:  pricingHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/courses", r.courseHandler.RegisterCourse).Methods("POST")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius(float)}
	r.router.HandleFunc("/v1/courses/nearby", r.courseHandler.GetCoursesNearby).Methods("GET")

	// expects ?q={course name or "lat,lon"}
	r.router.HandleFunc("/v1/courses/geocode", r.courseHandler.Geocode).Methods("GET")

	r.router.HandleFunc("/v1/courses/{course_id}/benchmark", r.courseHandler.GetBenchmark).Methods("GET")

	// expects a CSV body, optional ?vendor={lightspeed|chronogolf|golfnow}&save={bool}
	r.router.HandleFunc("/v1/courses/{course_id}/teesheet/import", r.teeSheetHandler.ImportTeeSheet).Methods("POST")

	r.router.HandleFunc("/v1/courses/{course_id}/kpis", r.teeSheetHandler.GetKPIs).Methods("GET")
	r.router.HandleFunc("/v1/courses/{course_id}/utilization", r.teeSheetHandler.GetUtilizationHeatmap).Methods("GET")
	r.router.HandleFunc("/v1/courses/{course_id}/utilization/daily", r.teeSheetHandler.GetDailyTrend).Methods("GET")

	r.router.HandleFunc("/v1/courses/{course_id}/opportunities", r.pricingHandler.GetOpportunities).Methods("GET")
	r.router.HandleFunc("/v1/courses/{course_id}/pricing/suggest", r.pricingHandler.GenerateSuggestion).Methods("POST")

	r.router.HandleFunc("/ping", r.courseHandler.Ping).Methods("GET")
}
