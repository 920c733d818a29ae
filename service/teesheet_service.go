package services

import (
	"log"

	"teeiq-server/adapters"
	redisdao "teeiq-server/dao/redis"
	"teeiq-server/models/teesheet"
	"teeiq-server/pipeline"
)

// TeeSheetService owns the import/save/load flow for tee sheets. Every
// computation is a pure function of its inputs; the DAO is only touched for
// explicit save/load calls.
type TeeSheetService struct {
	courseDao *redisdao.RedisCourseDAO
}

// NewTeeSheetService constructs a new TeeSheetService with Redis dependency injection.
func NewTeeSheetService(courseDao *redisdao.RedisCourseDAO) *TeeSheetService {
	return &TeeSheetService{courseDao: courseDao}
}

// ImportTeeSheet normalizes an uploaded table. A known vendor adapter is
// tried first; on adapter failure the generic normalizer takes over, so a
// bad vendor hint never loses an otherwise-parseable upload.
func (s *TeeSheetService) ImportTeeSheet(table *teesheet.RawTable, vendor string) ([]teesheet.TeeTime, error) {
	if adapter := adapters.ForVendor(vendor); adapter != nil {
		records, err := adapter(table)
		if err == nil {
			log.Printf("[TeeSheetService] Imported %d rows using %s adapter", len(records), vendor)
			return records, nil
		}
		log.Printf("[TeeSheetService] %s adapter failed: %v; falling back to generic normalization", vendor, err)
	}
	return pipeline.Normalize(table)
}

// SaveTeeTimes appends normalized records to the stored sheet for a course.
func (s *TeeSheetService) SaveTeeTimes(courseID string, records []teesheet.TeeTime) error {
	return s.courseDao.AppendTeeTimes(courseID, records)
}

// LoadTeeTimes retrieves the stored sheet for a course; empty when none.
func (s *TeeSheetService) LoadTeeTimes(courseID string) ([]teesheet.TeeTime, error) {
	return s.courseDao.LoadTeeTimes(courseID)
}

// KPIs computes the headline scalars for a tee sheet.
func (s *TeeSheetService) KPIs(records []teesheet.TeeTime) teesheet.KPIReport {
	return pipeline.KPIs(records)
}

// UtilizationHeatmap computes the weekday x hour utilization cells.
func (s *TeeSheetService) UtilizationHeatmap(records []teesheet.TeeTime) []teesheet.HeatCell {
	return pipeline.UtilizationMatrix(records)
}

// DailyTrend computes the per-date mean booking rate.
func (s *TeeSheetService) DailyTrend(records []teesheet.TeeTime) []teesheet.DailyUtil {
	return pipeline.DailyUtilization(records)
}
