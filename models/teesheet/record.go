package teesheet

import (
	"fmt"
	"time"
)

// WEEK_ORDER is the canonical Monday-first weekday ordering used for every
// grouped display.
var WEEK_ORDER = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayIndex returns the Monday-first index of a weekday name, or -1 when
// the name is not one of the seven canonical names.
func WeekdayIndex(weekday string) int {
	for i, w := range WEEK_ORDER {
		if w == weekday {
			return i
		}
	}
	return -1
}

// TeeTime is the canonical slot record produced by the normalizer. Created
// once per raw row and immutable afterward; slot fields are populated by the
// time-bin assigner on a copy of the slice.
type TeeTime struct {
	TeeTime time.Time `json:"tee_time"`

	// Price is nil while unknown. The normalizer imputes group medians; when
	// literally no row carries a price it stays nil and aggregation skips it.
	Price  *float64 `json:"price"`
	Booked bool     `json:"booked"`

	// Derived during normalization.
	Weekday string `json:"weekday"`
	Hour    int    `json:"hour"`
	Date    string `json:"date"` // calendar date, YYYY-MM-DD

	// Populated by the time-bin assigner.
	SlotIndex  int    `json:"slot_index"`
	SlotLabel  string `json:"slot_label"` // bin start as "HH:MM"
	SlotHour   int    `json:"slot_hour"`
	SlotMinute int    `json:"slot_minute"`
}

func (t *TeeTime) ToString() string {
	return fmt.Sprintf("TeeTime(time=%s, booked=%v, weekday=%s, hour=%d)",
		t.TeeTime.Format(time.RFC3339), t.Booked, t.Weekday, t.Hour)
}

// IsWeekend reports whether the record falls on Saturday or Sunday.
func (t *TeeTime) IsWeekend() bool {
	return t.Weekday == "Saturday" || t.Weekday == "Sunday"
}

// RawTable is an uploaded tabular input with arbitrary column names. Every
// cell is kept as the raw string from the CSV; typing happens in the
// normalizer.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex returns the position of the first header equal to name
// (case-insensitive match is the caller's job), or -1 when absent.
func (t *RawTable) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, col), tolerating ragged rows.
func (t *RawTable) Cell(row, col int) string {
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// RenameHeaders returns a copy of the table with headers replaced according
// to mapping. Used by the vendor adapters; unmapped headers pass through.
func (t *RawTable) RenameHeaders(mapping map[string]string) *RawTable {
	out := &RawTable{
		Headers: make([]string, len(t.Headers)),
		Rows:    t.Rows,
	}
	for i, h := range t.Headers {
		if renamed, ok := mapping[h]; ok {
			out.Headers[i] = renamed
		} else {
			out.Headers[i] = h
		}
	}
	return out
}
