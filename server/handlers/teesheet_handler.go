package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"teeiq-server/models/teesheet"
	"teeiq-server/pipeline"
	services "teeiq-server/service"
	"teeiq-server/util"
)

const (
	VENDOR_QUERY_ARG = "vendor"
	SAVE_QUERY_ARG   = "save"
	FORMAT_QUERY_ARG = "format"
)

// TeeSheetHandler serves the import, KPI and utilization routes.
type TeeSheetHandler struct {
	teeSheetService *services.TeeSheetService
}

func NewTeeSheetHandler(teeSheetService *services.TeeSheetService) *TeeSheetHandler {
	return &TeeSheetHandler{teeSheetService: teeSheetService}
}

// ImportTeeSheet handles POST /v1/courses/{course_id}/teesheet/import with a
// CSV body. ?vendor= selects an adapter; ?save=false skips persistence.
func (h *TeeSheetHandler) ImportTeeSheet(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathCourseID(r)
	if !ok {
		http.Error(w, "Missing course_id", http.StatusBadRequest)
		return
	}

	table, err := util.ReadRawTable(r.Body)
	if err != nil {
		http.Error(w, "Invalid CSV body: "+err.Error(), http.StatusBadRequest)
		return
	}

	vendor := r.URL.Query().Get(VENDOR_QUERY_ARG)
	records, err := h.teeSheetService.ImportTeeSheet(table, vendor)
	if err != nil {
		// normalization failures are hard: no partial result
		if _, isSchema := err.(*pipeline.SchemaError); isSchema {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Println("Error importing tee sheet:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	save := true
	if v := r.URL.Query().Get(SAVE_QUERY_ARG); v != "" {
		save, _ = strconv.ParseBool(v)
	}
	if save {
		if err := h.teeSheetService.SaveTeeTimes(courseID, records); err != nil {
			// storage failing never invalidates the computed result
			log.Println("Error saving tee times:", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows": len(records),
		"kpis": h.teeSheetService.KPIs(records),
	})
}

// GetKPIs handles GET /v1/courses/{course_id}/kpis.
func (h *TeeSheetHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.teeSheetService.KPIs(records))
}

// GetUtilizationHeatmap handles GET /v1/courses/{course_id}/utilization.
// ?format=html streams the rendered chart; the default is the JSON cells.
func (h *TeeSheetHandler) GetUtilizationHeatmap(w http.ResponseWriter, r *http.Request) {
	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}
	cells := h.teeSheetService.UtilizationHeatmap(records)

	if r.URL.Query().Get(FORMAT_QUERY_ARG) == "html" {
		w.Header().Set("Content-Type", "text/html")
		if err := util.RenderUtilizationHeatmap(w, cells); err != nil {
			log.Println("Error rendering heatmap:", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, cells)
}

// GetDailyTrend handles GET /v1/courses/{course_id}/utilization/daily.
func (h *TeeSheetHandler) GetDailyTrend(w http.ResponseWriter, r *http.Request) {
	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.teeSheetService.DailyTrend(records))
}

func (h *TeeSheetHandler) loadRecords(w http.ResponseWriter, r *http.Request) ([]teesheet.TeeTime, bool) {
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

func pathCourseID(r *http.Request) (string, bool) {
	id, ok := mux.Vars(r)["course_id"]
	return id, ok && id != ""
}
