package pipeline

import (
	"fmt"

	"teeiq-server/models/teesheet"
)

// AssignSlots partitions the day into fixed-width bins and stamps every
// record with its slot index and label. Pure function of
// (hour*60+minute, slotMinutes): identical inputs always land in identical
// bins, so independently computed aggregates join cleanly. The input slice is
// left untouched.
func AssignSlots(records []teesheet.TeeTime, slotMinutes int) ([]teesheet.TeeTime, error) {
	if slotMinutes <= 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("slot_minutes must be positive, got %d", slotMinutes)}
	}

	out := make([]teesheet.TeeTime, len(records))
	copy(out, records)
	for i := range out {
		minuteOfDay := out[i].TeeTime.Hour()*60 + out[i].TeeTime.Minute()
		idx := minuteOfDay / slotMinutes
		start := idx * slotMinutes
		out[i].SlotIndex = idx
		out[i].SlotHour = start / 60
		out[i].SlotMinute = start % 60
		out[i].SlotLabel = fmt.Sprintf("%02d:%02d", start/60, start%60)
	}
	return out, nil
}
