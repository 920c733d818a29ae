package pipeline

import (
	"testing"

	"teeiq-server/models/teesheet"
)

func TestNormalize_CanonicalHeaders(t *testing.T) {
	// Setup
	table := &teesheet.RawTable{
		Headers: []string{"tee_time", "price", "booked"},
		Rows: [][]string{
			{"2026-07-06 08:10:00", "52.50", "true"},
			{"2026-07-06 07:50:00", "48.00", "false"},
			{"2026-07-05 09:00:00", "60.00", "1"},
		},
	}

	// Act
	records, err := Normalize(table)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	// sorted ascending by timestamp
	for i := 1; i < len(records); i++ {
		if records[i].TeeTime.Before(records[i-1].TeeTime) {
			t.Errorf("Records out of order at index %d", i)
		}
	}

	first := records[0]
	if first.Date != "2026-07-05" {
		t.Errorf("Expected first date 2026-07-05, got %s", first.Date)
	}
	if first.Weekday != "Sunday" {
		t.Errorf("Expected weekday Sunday, got %s", first.Weekday)
	}
	if first.Hour != 9 {
		t.Errorf("Expected hour 9, got %d", first.Hour)
	}
	if !first.Booked {
		t.Errorf("Expected '1' to coerce to booked")
	}
	if first.Price == nil || *first.Price != 60.00 {
		t.Errorf("Expected price 60.00, got %v", first.Price)
	}
}

func TestNormalize_HeaderVariants(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
	}{
		{"datetime and is_booked", []string{"datetime", "price", "is_booked"}},
		{"start_time and reserved", []string{"start_time", "price", "reserved"}},
		{"uppercase candidate", []string{"Start_Time", "price", "Booked"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			table := &teesheet.RawTable{
				Headers: test.headers,
				Rows: [][]string{
					{"2026-07-06 08:00:00", "50", "yes"},
				},
			}

			records, err := Normalize(table)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if len(records) != 1 {
				t.Fatalf("Expected 1 record, got %d", len(records))
			}
			if !records[0].Booked {
				t.Errorf("Expected booked record")
			}
		})
	}
}

func TestNormalize_ComposesDateAndTimeColumns(t *testing.T) {
	// no candidate column, but separate date + time columns
	table := &teesheet.RawTable{
		Headers: []string{"play_date", "slot_time_of_day", "price", "booked"},
		Rows: [][]string{
			{"2026-07-06", "14:30", "40", "no"},
		},
	}

	records, err := Normalize(table)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Hour != 14 {
		t.Errorf("Expected composed hour 14, got %d", records[0].Hour)
	}
	if records[0].Booked {
		t.Errorf("Expected 'no' to coerce to false")
	}
}

func TestNormalize_MissingDatetimeColumn(t *testing.T) {
	table := &teesheet.RawTable{
		Headers: []string{"price", "booked"},
		Rows: [][]string{
			{"50", "true"},
		},
	}

	_, err := Normalize(table)
	if err == nil {
		t.Fatalf("Expected an error, got nil")
	}
	if _, ok := err.(*SchemaError); !ok {
		t.Errorf("Expected *SchemaError, got %T", err)
	}
}

func TestNormalize_DropsUnparseableRows(t *testing.T) {
	table := &teesheet.RawTable{
		Headers: []string{"tee_time", "price", "booked"},
		Rows: [][]string{
			{"2026-07-06 08:00:00", "50", "true"},
			{"not a timestamp", "50", "true"},
			{"", "50", "true"},
			{"2026-07-06 08:10:00", "55", "false"},
		},
	}

	records, err := Normalize(table)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Errorf("Expected 2 records after dropping bad rows, got %d", len(records))
	}
}

func TestNormalize_ImputesPricesGroupThenGlobal(t *testing.T) {
	// Two Monday-8am records with prices 40 and 60, one Monday-8am without a
	// price, and one Tuesday-10am without a price and no group peers.
	table := &teesheet.RawTable{
		Headers: []string{"tee_time", "price", "booked"},
		Rows: [][]string{
			{"2026-07-06 08:00:00", "40", "true"},
			{"2026-07-06 08:10:00", "60", "false"},
			{"2026-07-06 08:20:00", "", "false"},
			{"2026-07-07 10:00:00", "", "false"},
		},
	}

	records, err := Normalize(table)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, rec := range records {
		if rec.Price == nil {
			t.Fatalf("Expected every price imputed, found nil at %s", rec.TeeTime)
		}
	}

	// group median for Monday 8am: (40+60)/2 = 50
	if *records[2].Price != 50 {
		t.Errorf("Expected group-median 50, got %v", *records[2].Price)
	}
	// Tuesday has no group, so global median of {40, 60} = 50
	if *records[3].Price != 50 {
		t.Errorf("Expected global-median 50, got %v", *records[3].Price)
	}
}

func TestNormalize_AllPricesMissingStayNil(t *testing.T) {
	table := &teesheet.RawTable{
		Headers: []string{"tee_time", "price", "booked"},
		Rows: [][]string{
			{"2026-07-06 08:00:00", "", "true"},
			{"2026-07-06 08:10:00", "", "false"},
		},
	}

	records, err := Normalize(table)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, rec := range records {
		if rec.Price != nil {
			t.Errorf("Expected nil price when no prices exist, got %v", *rec.Price)
		}
	}
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"int one", 1, true},
		{"int zero", 0, false},
		{"float one", 1.0, true},
		{"string true", "true", true},
		{"string yes", "YES", true},
		{"string y", "y", true},
		{"string sold", "sold", true},
		{"string booked", "Booked", true},
		{"string one", "1", true},
		{"string open", "open", false},
		{"string no", "no", false},
		{"whitespace padded", "  true  ", true},
		{"empty string", "", false},
		{"nil", nil, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := CoerceBool(test.input); got != test.expected {
				t.Errorf("CoerceBool(%v): expected %v, got %v", test.input, test.expected, got)
			}
		})
	}
}

func TestCoerceBool_IdempotentOnOwnOutput(t *testing.T) {
	inputs := []interface{}{"sold", "open", 1, 0, true, false}
	for _, in := range inputs {
		once := CoerceBool(in)
		if CoerceBool(once) != once {
			t.Errorf("CoerceBool not idempotent for input %v", in)
		}
	}
}
