package services

import (
	"log"

	"teeiq-server/demand"
	"teeiq-server/models/teesheet"
	"teeiq-server/models/weather"
	"teeiq-server/pipeline"
	"teeiq-server/pricing"
)

// SuggestionParams are the knobs of one pricing pass. TargetUtil is always
// explicit here; config.DEFAULT_TARGET_UTIL is only a fallback the handlers
// apply.
type SuggestionParams struct {
	SlotMinutes   int
	UtilThreshold float64
	MinSlots      int
	TargetUtil    float64
}

// SuggestionResult is the outcome of one end-to-end pricing pass.
// ModelUsed is false when the demand model failed and the observed
// utilization carried the suggestions instead.
type SuggestionResult struct {
	Opportunities  []teesheet.Opportunity `json:"opportunities"`
	Top            *teesheet.Opportunity  `json:"top,omitempty"`
	ModelUsed      bool                   `json:"model_used"`
	EstMonthlyLift float64                `json:"est_monthly_lift_total"`
}

// PricingService runs the low-fill detection and the model-overlay pricing
// flow. It holds no state: every call is a pure pass over its inputs.
type PricingService struct {
}

// NewPricingService constructs a new PricingService.
func NewPricingService() *PricingService {
	return &PricingService{}
}

// Opportunities bins, aggregates and filters the tee sheet, returning the
// low-fill slots with rule-based suggestions.
func (ps *PricingService) Opportunities(records []teesheet.TeeTime, params SuggestionParams) ([]teesheet.Opportunity, error) {
	binned, err := pipeline.AssignSlots(records, params.SlotMinutes)
	if err != nil {
		return nil, err
	}
	aggregates := pipeline.Aggregate(binned)
	return pricing.DetectLowFill(aggregates, params.UtilThreshold, params.MinSlots, params.TargetUtil)
}

// GenerateSuggestion runs the full pricing pass: observed opportunities at
// the chosen slot width, demand-model overlay merged per (weekday, slot),
// and the shared resolver over whichever expected utilization survived.
// Model failure is a soft, visible branch: each opportunity falls back to
// its observed utilization and the result is still returned.
func (ps *PricingService) GenerateSuggestion(records []teesheet.TeeTime, weatherObs []weather.DailyObservation, params SuggestionParams) (*SuggestionResult, error) {
	opportunities, err := ps.Opportunities(records, params)
	if err != nil {
		return nil, err
	}

	predicted, modelUsed := ps.predictExpectedUtil(records, weatherObs, params)

	for i := range opportunities {
		key := slotKey{opportunities[i].Weekday, opportunities[i].SlotIndex}
		expected, ok := predicted[key]
		if !ok {
			// fallback: observed utilization already drives the suggestion
			continue
		}
		opportunities[i] = pricing.ApplyExpectedUtil(opportunities[i], expected, params.TargetUtil)
	}

	pricing.SortWorstFirst(opportunities)

	result := &SuggestionResult{
		Opportunities: opportunities,
		ModelUsed:     modelUsed,
	}
	for _, opp := range opportunities {
		result.EstMonthlyLift += opp.EstMonthlyLift
	}
	result.EstMonthlyLift = pricing.Round2(result.EstMonthlyLift)
	if len(opportunities) > 0 {
		result.Top = &opportunities[0]
	}
	return result, nil
}

type slotKey struct {
	weekday   string
	slotIndex int
}

// predictExpectedUtil trains and applies the demand model. Any failure is
// logged and reduces to an empty map so the caller's fallback branch runs.
func (ps *PricingService) predictExpectedUtil(records []teesheet.TeeTime, weatherObs []weather.DailyObservation, params SuggestionParams) (map[slotKey]float64, bool) {
	model, err := demand.Train(records, weatherObs, params.SlotMinutes)
	if err != nil {
		log.Printf("[PricingService] Demand model training failed, using observed utilization: %v", err)
		return nil, false
	}

	forecasts, err := model.ExpectedUtilization(records, weatherObs)
	if err != nil {
		log.Printf("[PricingService] Demand model inference failed, using observed utilization: %v", err)
		return nil, false
	}

	predicted := make(map[slotKey]float64, len(forecasts))
	for _, f := range forecasts {
		predicted[slotKey{f.Weekday, f.SlotIndex}] = f.ExpectedUtil
	}
	return predicted, true
}
