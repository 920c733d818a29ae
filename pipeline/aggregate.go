package pipeline

import (
	"sort"

	"teeiq-server/models/teesheet"
)

// Aggregate groups binned records by (weekday, slot) and computes the slot
// counts, booked counts, NaN-free average price and utilization. Weekdays
// with no slots simply do not appear; no group ever divides by zero. The
// result is sorted by canonical weekday order then slot index.
func Aggregate(records []teesheet.TeeTime) []teesheet.SlotAggregate {
	type key struct {
		weekday   string
		slotIndex int
	}
	type bucket struct {
		agg        teesheet.SlotAggregate
		priceSum   float64
		priceCount int
	}

	buckets := make(map[key]*bucket)
	for _, rec := range records {
		k := key{rec.Weekday, rec.SlotIndex}
		b, ok := buckets[k]
		if !ok {
			b = &bucket{agg: teesheet.SlotAggregate{
				Weekday:   rec.Weekday,
				SlotIndex: rec.SlotIndex,
				SlotLabel: rec.SlotLabel,
				Hour:      rec.SlotHour,
			}}
			buckets[k] = b
		}
		b.agg.Slots++
		if rec.Booked {
			b.agg.Booked++
		}
		if rec.Price != nil {
			b.priceSum += *rec.Price
			b.priceCount++
		}
	}

	out := make([]teesheet.SlotAggregate, 0, len(buckets))
	for _, b := range buckets {
		if b.priceCount > 0 {
			b.agg.AvgPrice = b.priceSum / float64(b.priceCount)
		}
		b.agg.Util = float64(b.agg.Booked) / float64(b.agg.Slots)
		out = append(out, b.agg)
	}

	sort.Slice(out, func(i, j int) bool {
		wi := teesheet.WeekdayIndex(out[i].Weekday)
		wj := teesheet.WeekdayIndex(out[j].Weekday)
		if wi != wj {
			return wi < wj
		}
		return out[i].SlotIndex < out[j].SlotIndex
	})
	return out
}

// KPIs computes the headline scalars over a normalized tee sheet.
func KPIs(records []teesheet.TeeTime) teesheet.KPIReport {
	report := teesheet.KPIReport{TotalSlots: len(records)}
	for _, rec := range records {
		if rec.Booked {
			report.Booked++
			if rec.Price != nil {
				report.Revenue += *rec.Price
			}
		} else if rec.Price != nil {
			report.Potential += *rec.Price
		}
	}
	if report.TotalSlots > 0 {
		report.Util = float64(report.Booked) / float64(report.TotalSlots)
	}
	return report
}

// UtilizationMatrix computes utilization per (weekday, hour) for the heatmap.
// Only observed cells are returned, sorted by weekday order then hour.
func UtilizationMatrix(records []teesheet.TeeTime) []teesheet.HeatCell {
	type key struct {
		weekday string
		hour    int
	}
	type counts struct {
		slots  int
		booked int
	}
	cells := make(map[key]*counts)
	for _, rec := range records {
		k := key{rec.Weekday, rec.Hour}
		c, ok := cells[k]
		if !ok {
			c = &counts{}
			cells[k] = c
		}
		c.slots++
		if rec.Booked {
			c.booked++
		}
	}

	out := make([]teesheet.HeatCell, 0, len(cells))
	for k, c := range cells {
		out = append(out, teesheet.HeatCell{
			Weekday: k.weekday,
			Hour:    k.hour,
			Util:    float64(c.booked) / float64(c.slots),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		wi := teesheet.WeekdayIndex(out[i].Weekday)
		wj := teesheet.WeekdayIndex(out[j].Weekday)
		if wi != wj {
			return wi < wj
		}
		return out[i].Hour < out[j].Hour
	})
	return out
}

// DailyUtilization computes the mean booking rate per calendar date.
func DailyUtilization(records []teesheet.TeeTime) []teesheet.DailyUtil {
	type counts struct {
		slots  int
		booked int
	}
	days := make(map[string]*counts)
	for _, rec := range records {
		c, ok := days[rec.Date]
		if !ok {
			c = &counts{}
			days[rec.Date] = c
		}
		c.slots++
		if rec.Booked {
			c.booked++
		}
	}

	out := make([]teesheet.DailyUtil, 0, len(days))
	for date, c := range days {
		out = append(out, teesheet.DailyUtil{
			Date: date,
			Util: float64(c.booked) / float64(c.slots),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
