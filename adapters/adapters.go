package adapters

import (
	"teeiq-server/models/teesheet"
	"teeiq-server/pipeline"
)

// Adapter pre-renames a vendor export's headers to the canonical names and
// normalizes the result. On adapter failure the caller falls back to plain
// normalization.
type Adapter func(table *teesheet.RawTable) ([]teesheet.TeeTime, error)

// Known vendor CSV header mappings. Adjust as needed to match real exports.

func FromLightspeed(table *teesheet.RawTable) ([]teesheet.TeeTime, error) {
	renamed := table.RenameHeaders(map[string]string{
		"Start Time": "tee_time",
		"Green Fee":  "price",
		"Booked":     "booked",
	})
	return pipeline.Normalize(renamed)
}

func FromChronogolf(table *teesheet.RawTable) ([]teesheet.TeeTime, error) {
	renamed := table.RenameHeaders(map[string]string{
		"time":      "tee_time",
		"rate":      "price",
		"is_booked": "booked",
	})
	return pipeline.Normalize(renamed)
}

// FromGolfNow maps GolfNow exports; the status column carries 'sold'/'open'
// which CoerceBool already resolves.
func FromGolfNow(table *teesheet.RawTable) ([]teesheet.TeeTime, error) {
	renamed := table.RenameHeaders(map[string]string{
		"teeTime": "tee_time",
		"price":   "price",
		"status":  "booked",
	})
	return pipeline.Normalize(renamed)
}

// ForVendor returns the adapter registered for a vendor name, or nil for the
// generic/manual path.
func ForVendor(vendor string) Adapter {
	switch vendor {
	case "lightspeed":
		return FromLightspeed
	case "chronogolf":
		return FromChronogolf
	case "golfnow":
		return FromGolfNow
	default:
		return nil
	}
}
