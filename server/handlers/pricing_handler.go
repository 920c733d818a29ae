package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"teeiq-server/config"
	redisdao "teeiq-server/dao/redis"
	"teeiq-server/models/teesheet"
	"teeiq-server/pipeline"
	services "teeiq-server/service"
	"teeiq-server/util"
)

const (
	SLOT_MINUTES_QUERY_ARG   = "slot_minutes"
	UTIL_THRESHOLD_QUERY_ARG = "util_threshold"
	MIN_SLOTS_QUERY_ARG      = "min_slots"
	TARGET_UTIL_QUERY_ARG    = "target_util"
)

// PricingHandler serves the opportunity and suggestion routes.
type PricingHandler struct {
	teeSheetService *services.TeeSheetService
	pricingService  *services.PricingService
	courseDao       *redisdao.RedisCourseDAO
}

func NewPricingHandler(
	teeSheetService *services.TeeSheetService,
	pricingService *services.PricingService,
	courseDao *redisdao.RedisCourseDAO) *PricingHandler {

	return &PricingHandler{
		teeSheetService: teeSheetService,
		pricingService:  pricingService,
		courseDao:       courseDao,
	}
}

// GetOpportunities handles GET /v1/courses/{course_id}/opportunities.
// ?format=csv exports the table; the default is JSON.
func (h *PricingHandler) GetOpportunities(w http.ResponseWriter, r *http.Request) {
	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}
	params, ok := parseSuggestionParams(r.URL.Query(), w)
	if !ok {
		return
	}

	opportunities, err := h.pricingService.Opportunities(records, params)
	if err != nil {
		if _, isConfig := err.(*pipeline.ConfigError); isConfig {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Println("Error detecting opportunities:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get(FORMAT_QUERY_ARG) == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		if err := util.WriteOpportunities(w, opportunities); err != nil {
			log.Println("Error writing opportunities CSV:", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, opportunities)
}

// GenerateSuggestion handles POST /v1/courses/{course_id}/pricing/suggest:
// one end-to-end pricing pass with the demand-model overlay and its
// mandatory fallback to observed utilization.
func (h *PricingHandler) GenerateSuggestion(w http.ResponseWriter, r *http.Request) {
	courseID, _ := pathCourseID(r)
	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}
	params, ok := parseSuggestionParams(r.URL.Query(), w)
	if !ok {
		return
	}

	// cached weather is optional; a miss runs the model without weather
	weatherObs, err := h.courseDao.GetDailyWeather(courseID)
	if err != nil {
		log.Println("Error loading cached weather:", err)
		weatherObs = nil
	}

	result, err := h.pricingService.GenerateSuggestion(records, weatherObs, params)
	if err != nil {
		if _, isConfig := err.(*pipeline.ConfigError); isConfig {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Println("Error generating suggestion:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *PricingHandler) loadRecords(w http.ResponseWriter, r *http.Request) ([]teesheet.TeeTime, bool) {
	courseID, ok := pathCourseID(r)
	if !ok {
		http.Error(w, "Missing course_id", http.StatusBadRequest)
		return nil, false
	}
	records, err := h.teeSheetService.LoadTeeTimes(courseID)
	if err != nil {
		log.Println("Error loading tee times:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil, false
	}
	if len(records) == 0 {
		http.Error(w, "No tee times stored for course", http.StatusNotFound)
		return nil, false
	}
	return records, true
}

// parseSuggestionParams reads the pricing knobs with their defaults.
func parseSuggestionParams(vals url.Values, w http.ResponseWriter) (services.SuggestionParams, bool) {
	params := services.SuggestionParams{
		SlotMinutes:   config.DEFAULT_SLOT_MINUTES,
		UtilThreshold: config.DEFAULT_UTIL_THRESHOLD,
		MinSlots:      config.DEFAULT_MIN_SLOTS,
		TargetUtil:    config.TargetUtil(),
	}

	if v := vals.Get(SLOT_MINUTES_QUERY_ARG); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid argument "+SLOT_MINUTES_QUERY_ARG, http.StatusBadRequest)
			return params, false
		}
		params.SlotMinutes = parsed
	}
	if v := vals.Get(UTIL_THRESHOLD_QUERY_ARG); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "Invalid argument "+UTIL_THRESHOLD_QUERY_ARG, http.StatusBadRequest)
			return params, false
		}
		params.UtilThreshold = parsed
	}
	if v := vals.Get(MIN_SLOTS_QUERY_ARG); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid argument "+MIN_SLOTS_QUERY_ARG, http.StatusBadRequest)
			return params, false
		}
		params.MinSlots = parsed
	}
	if v := vals.Get(TARGET_UTIL_QUERY_ARG); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "Invalid argument "+TARGET_UTIL_QUERY_ARG, http.StatusBadRequest)
			return params, false
		}
		params.TargetUtil = parsed
	}
	return params, true
}
