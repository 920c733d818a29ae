package demand

import (
	"math"

	"teeiq-server/models/teesheet"
	"teeiq-server/models/weather"
)

// Feature layout for the booking classifier. Weather columns default to
// missing and are forward/backward-filled at the batch level; a column with
// no observed value at all becomes constant zero so that absent weather is a
// fully supported mode rather than a training failure.
const (
	featSlotIndex = iota
	featMinuteOfDay
	featIsWeekend
	featPrice
	featTempMax
	featPrecip
	numFeatures
)

// featurize builds the feature matrix and label vector from binned records
// and an optional per-date weather table (left-join by calendar date).
func featurize(records []teesheet.TeeTime, weatherObs []weather.DailyObservation) ([][]float64, []int) {
	byDate := make(map[string]weather.DailyObservation, len(weatherObs))
	for _, obs := range weatherObs {
		byDate[obs.Date] = obs
	}

	X := make([][]float64, len(records))
	y := make([]int, len(records))
	for i, rec := range records {
		row := make([]float64, numFeatures)
		row[featSlotIndex] = float64(rec.SlotIndex)
		row[featMinuteOfDay] = float64(rec.TeeTime.Hour()*60 + rec.TeeTime.Minute())
		if rec.IsWeekend() {
			row[featIsWeekend] = 1
		}
		row[featPrice] = math.NaN()
		if rec.Price != nil {
			row[featPrice] = *rec.Price
		}
		row[featTempMax] = math.NaN()
		row[featPrecip] = math.NaN()
		if obs, ok := byDate[rec.Date]; ok {
			if obs.TempMax != nil {
				row[featTempMax] = *obs.TempMax
			}
			if obs.Precip != nil {
				row[featPrecip] = *obs.Precip
			}
		}
		X[i] = row
		if rec.Booked {
			y[i] = 1
		}
	}

	for col := 0; col < numFeatures; col++ {
		fillColumn(X, col)
	}
	return X, y
}

// fillColumn forward-fills then backward-fills NaNs in one feature column;
// an all-NaN column becomes zero.
func fillColumn(X [][]float64, col int) {
	last := math.NaN()
	for i := range X {
		if math.IsNaN(X[i][col]) {
			X[i][col] = last
		} else {
			last = X[i][col]
		}
	}
	next := math.NaN()
	for i := len(X) - 1; i >= 0; i-- {
		if math.IsNaN(X[i][col]) {
			X[i][col] = next
		} else {
			next = X[i][col]
		}
	}
	for i := range X {
		if math.IsNaN(X[i][col]) {
			X[i][col] = 0
		}
	}
}
