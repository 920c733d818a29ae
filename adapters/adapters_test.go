package adapters

import (
	"testing"

	"teeiq-server/models/teesheet"
)

func TestFromLightspeed(t *testing.T) {
	table := &teesheet.RawTable{
		Headers: []string{"Start Time", "Green Fee", "Booked", "Player"},
		Rows: [][]string{
			{"2026-07-06 08:00:00", "52.00", "yes", "A. Palmer"},
			{"2026-07-06 08:10:00", "52.00", "no", ""},
		},
	}

	records, err := FromLightspeed(table)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if !records[0].Booked || records[1].Booked {
		t.Errorf("Expected booked then open, got %v and %v", records[0].Booked, records[1].Booked)
	}
	if records[0].Price == nil || *records[0].Price != 52.00 {
		t.Errorf("Expected price 52.00, got %v", records[0].Price)
	}
}

func TestFromChronogolf(t *testing.T) {
	table := &teesheet.RawTable{
		Headers: []string{"time", "rate", "is_booked"},
		Rows: [][]string{
			{"2026-07-06 09:00:00", "39.50", "1"},
		},
	}

	records, err := FromChronogolf(table)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if !records[0].Booked {
		t.Errorf("Expected '1' to coerce to booked")
	}
}

func TestFromGolfNow_StatusColumn(t *testing.T) {
	table := &teesheet.RawTable{
		Headers: []string{"teeTime", "price", "status"},
		Rows: [][]string{
			{"2026-07-06 10:00:00", "45", "sold"},
			{"2026-07-06 10:10:00", "45", "open"},
		},
	}

	records, err := FromGolfNow(table)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !records[0].Booked {
		t.Errorf("Expected 'sold' to coerce to booked")
	}
	if records[1].Booked {
		t.Errorf("Expected 'open' to coerce to not booked")
	}
}

func TestForVendor(t *testing.T) {
	tests := []struct {
		vendor   string
		expected bool
	}{
		{"lightspeed", true},
		{"chronogolf", true},
		{"golfnow", true},
		{"", false},
		{"unknown", false},
	}

	for _, test := range tests {
		adapter := ForVendor(test.vendor)
		if (adapter != nil) != test.expected {
			t.Errorf("ForVendor(%q): expected registered=%v", test.vendor, test.expected)
		}
	}
}

func TestAdapters_DoNotMutateInput(t *testing.T) {
	table := &teesheet.RawTable{
		Headers: []string{"time", "rate", "is_booked"},
		Rows:    [][]string{{"2026-07-06 09:00:00", "39.50", "1"}},
	}

	if _, err := FromChronogolf(table); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if table.Headers[0] != "time" {
		t.Errorf("Expected original headers untouched, got %q", table.Headers[0])
	}
}
