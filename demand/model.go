package demand

import (
	"sort"

	"teeiq-server/models/teesheet"
	"teeiq-server/models/weather"
	"teeiq-server/pipeline"
)

// Forest defaults. The seed is fixed so that a refit over identical data
// reproduces identical forecasts.
const (
	NUM_TREES = 200
	MAX_DEPTH = 10
	MIN_LEAF  = 2
	RNG_SEED  = 7
)

// ModelFitError is the recoverable failure of training or inference. Callers
// must fall back to the observed utilization; the error never reaches the end
// user as a hard failure.
type ModelFitError struct {
	Reason string
}

func (e *ModelFitError) Error() string {
	return "model fit error: " + e.Reason
}

// Model is a fitted booking-likelihood estimator. Created per pricing
// session, used once, discarded; nothing is persisted or versioned.
type Model struct {
	forest      *forest
	slotMinutes int
}

// SlotExpectedUtil is the model's forecast for one (weekday, slot) group.
type SlotExpectedUtil struct {
	Weekday      string  `json:"weekday"`
	SlotIndex    int     `json:"slot_index"`
	SlotLabel    string  `json:"slot_label"`
	ExpectedUtil float64 `json:"expected_util"`
	AvgPrice     float64 `json:"avg_price"`
}

// Train fits a booking classifier from scratch over the given records and
// optional weather table. Returns ModelFitError when the data cannot support
// a fit (no rows, or a single outcome class).
func Train(records []teesheet.TeeTime, weatherObs []weather.DailyObservation, slotMinutes int) (*Model, error) {
	binned, err := pipeline.AssignSlots(records, slotMinutes)
	if err != nil {
		return nil, &ModelFitError{Reason: err.Error()}
	}
	if len(binned) == 0 {
		return nil, &ModelFitError{Reason: "no training records"}
	}

	X, y := featurize(binned, weatherObs)

	positives := 0
	for _, label := range y {
		positives += label
	}
	if positives == 0 || positives == len(y) {
		return nil, &ModelFitError{Reason: "training data contains a single outcome class"}
	}

	f := trainForest(X, y, forestConfig{
		Trees:    NUM_TREES,
		MaxDepth: MAX_DEPTH,
		MinLeaf:  MIN_LEAF,
		Seed:     RNG_SEED,
	})
	return &Model{forest: f, slotMinutes: slotMinutes}, nil
}

// ExpectedUtilization predicts a booking probability per record and averages
// it per (weekday, slot) into the forecasted utilization that supersedes the
// observed rate for ranking and pricing.
func (m *Model) ExpectedUtilization(records []teesheet.TeeTime, weatherObs []weather.DailyObservation) ([]SlotExpectedUtil, error) {
	if m == nil || m.forest == nil {
		return nil, &ModelFitError{Reason: "model is not fitted"}
	}
	binned, err := pipeline.AssignSlots(records, m.slotMinutes)
	if err != nil {
		return nil, &ModelFitError{Reason: err.Error()}
	}
	if len(binned) == 0 {
		return nil, &ModelFitError{Reason: "no records to predict"}
	}

	X, _ := featurize(binned, weatherObs)

	type key struct {
		weekday   string
		slotIndex int
	}
	type bucket struct {
		slotLabel  string
		probSum    float64
		count      int
		priceSum   float64
		priceCount int
	}
	buckets := make(map[key]*bucket)
	for i, rec := range binned {
		k := key{rec.Weekday, rec.SlotIndex}
		b, ok := buckets[k]
		if !ok {
			b = &bucket{slotLabel: rec.SlotLabel}
			buckets[k] = b
		}
		b.probSum += m.forest.predictProba(X[i])
		b.count++
		if rec.Price != nil {
			b.priceSum += *rec.Price
			b.priceCount++
		}
	}

	out := make([]SlotExpectedUtil, 0, len(buckets))
	for k, b := range buckets {
		row := SlotExpectedUtil{
			Weekday:      k.weekday,
			SlotIndex:    k.slotIndex,
			SlotLabel:    b.slotLabel,
			ExpectedUtil: b.probSum / float64(b.count),
		}
		if b.priceCount > 0 {
			row.AvgPrice = b.priceSum / float64(b.priceCount)
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		wi := teesheet.WeekdayIndex(out[i].Weekday)
		wj := teesheet.WeekdayIndex(out[j].Weekday)
		if wi != wj {
			return wi < wj
		}
		return out[i].SlotIndex < out[j].SlotIndex
	})
	return out, nil
}
