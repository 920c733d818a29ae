package pipeline

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"teeiq-server/models/teesheet"
)

// datetimeCandidates are the column names accepted as a ready-made timestamp,
// evaluated in priority order (case-insensitive exact match).
var datetimeCandidates = []string{"tee_time", "datetime", "start_time", "time", "date_time"}

// bookedCandidates are the column names accepted as the booked flag.
var bookedCandidates = map[string]struct{}{
	"booked":    {},
	"is_booked": {},
	"reserved":  {},
	"filled":    {},
	"status":    {},
}

// truthyStrings are the string values CoerceBool accepts as true, after
// trimming and lowercasing.
var truthyStrings = map[string]struct{}{
	"1":      {},
	"true":   {},
	"yes":    {},
	"y":      {},
	"sold":   {},
	"booked": {},
}

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 3:04 PM",
	"2006-01-02 3:04PM",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006 3:04 PM",
	"2006/01/02 15:04",
	"2006-01-02",
}

// CoerceBool maps a raw cell value to the canonical booked flag. Booleans
// pass through, numbers are truthy iff equal to 1, strings are matched
// against the truthy set, everything else is false. Idempotent on its own
// output.
func CoerceBool(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x == 1
	case int64:
		return x == 1
	case float64:
		return x == 1
	case string:
		_, ok := truthyStrings[strings.ToLower(strings.TrimSpace(x))]
		return ok
	default:
		return false
	}
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range datetimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func parsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	p := f
	return &p
}

// resolveTimestamps applies the datetime resolution policy: (a) the first
// candidate-named column where at least one value parses; (b) otherwise the
// first "date" column concatenated with the first "time" column. Returns one
// entry per row, nil where the chosen source did not parse.
func resolveTimestamps(table *teesheet.RawTable) ([]*time.Time, error) {
	lower := make([]string, len(table.Headers))
	for i, h := range table.Headers {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}

	parseColumn := func(col int) ([]*time.Time, bool) {
		out := make([]*time.Time, len(table.Rows))
		any := false
		for r := range table.Rows {
			if ts, ok := parseTimestamp(table.Cell(r, col)); ok {
				t := ts
				out[r] = &t
				any = true
			}
		}
		return out, any
	}

	for _, name := range datetimeCandidates {
		for i, h := range lower {
			if h != name {
				continue
			}
			if parsed, any := parseColumn(i); any {
				return parsed, nil
			}
		}
	}

	// Compose from the first date-ish and time-ish columns.
	dateCol, timeCol := -1, -1
	for i, h := range lower {
		if dateCol < 0 && strings.Contains(h, "date") {
			dateCol = i
		}
		if timeCol < 0 && strings.Contains(h, "time") {
			timeCol = i
		}
	}
	if dateCol >= 0 && timeCol >= 0 {
		out := make([]*time.Time, len(table.Rows))
		any := false
		for r := range table.Rows {
			joined := strings.TrimSpace(table.Cell(r, dateCol)) + " " + strings.TrimSpace(table.Cell(r, timeCol))
			if ts, ok := parseTimestamp(joined); ok {
				t := ts
				out[r] = &t
				any = true
			}
		}
		if any {
			return out, nil
		}
	}

	return nil, &SchemaError{Reason: "no datetime column found; include 'tee_time' or (date + time) columns"}
}

// Normalize converts a raw table into canonical tee-time records: one record
// per row with a parseable timestamp, prices imputed with the (weekday, hour)
// group median then the global median, sorted ascending by timestamp with the
// original row order as the tie-break.
func Normalize(table *teesheet.RawTable) ([]teesheet.TeeTime, error) {
	timestamps, err := resolveTimestamps(table)
	if err != nil {
		return nil, err
	}

	priceCol := -1
	bookedCol := -1
	for i, h := range table.Headers {
		name := strings.ToLower(strings.TrimSpace(h))
		if priceCol < 0 && name == "price" {
			priceCol = i
		}
		if bookedCol < 0 {
			if _, ok := bookedCandidates[name]; ok {
				bookedCol = i
			}
		}
	}

	records := make([]teesheet.TeeTime, 0, len(table.Rows))
	for r := range table.Rows {
		if timestamps[r] == nil {
			continue
		}
		ts := *timestamps[r]
		rec := teesheet.TeeTime{
			TeeTime: ts,
			Weekday: ts.Weekday().String(),
			Hour:    ts.Hour(),
			Date:    ts.Format("2006-01-02"),
		}
		if priceCol >= 0 {
			rec.Price = parsePrice(table.Cell(r, priceCol))
		}
		if bookedCol >= 0 {
			rec.Booked = CoerceBool(table.Cell(r, bookedCol))
		}
		records = append(records, rec)
	}

	imputePrices(records)

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TeeTime.Before(records[j].TeeTime)
	})
	return records, nil
}

// imputePrices fills missing prices with the median of the record's
// (weekday, hour) group, then the global median. When no record carries a
// price at all the field stays nil.
func imputePrices(records []teesheet.TeeTime) {
	type groupKey struct {
		weekday string
		hour    int
	}
	groups := make(map[groupKey][]float64)
	var global []float64
	for _, rec := range records {
		if rec.Price == nil {
			continue
		}
		k := groupKey{rec.Weekday, rec.Hour}
		groups[k] = append(groups[k], *rec.Price)
		global = append(global, *rec.Price)
	}
	if len(global) == 0 {
		return
	}
	globalMed := median(global)
	for i := range records {
		if records[i].Price != nil {
			continue
		}
		k := groupKey{records[i].Weekday, records[i].Hour}
		if vals, ok := groups[k]; ok && len(vals) > 0 {
			m := median(vals)
			records[i].Price = &m
		} else {
			m := globalMed
			records[i].Price = &m
		}
	}
}

func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
