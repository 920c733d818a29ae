package pricing

import (
	"fmt"
	"math"
	"sort"

	"teeiq-server/models/teesheet"
	"teeiq-server/pipeline"
)

// DetectLowFill filters aggregates with at least minSlots samples and
// utilization below utilThreshold, and augments each with the pricing
// suggestion derived from its observed utilization. An empty result means no
// action is needed, not a failure. Output is sorted by canonical weekday
// order then slot index.
func DetectLowFill(aggs []teesheet.SlotAggregate, utilThreshold float64, minSlots int, targetUtil float64) ([]teesheet.Opportunity, error) {
	if utilThreshold <= 0 || utilThreshold >= 1 {
		return nil, &pipeline.ConfigError{Reason: fmt.Sprintf("util_threshold must be in (0, 1), got %g", utilThreshold)}
	}
	if minSlots <= 0 {
		return nil, &pipeline.ConfigError{Reason: fmt.Sprintf("min_slots must be positive, got %d", minSlots)}
	}
	if targetUtil <= 0 || targetUtil >= 1 {
		return nil, &pipeline.ConfigError{Reason: fmt.Sprintf("target_util must be in (0, 1), got %g", targetUtil)}
	}

	opportunities := make([]teesheet.Opportunity, 0)
	for _, agg := range aggs {
		if agg.Slots < minSlots || agg.Util >= utilThreshold {
			continue
		}
		opportunities = append(opportunities, buildOpportunity(agg, agg.Util, targetUtil))
	}

	sort.Slice(opportunities, func(i, j int) bool {
		wi := teesheet.WeekdayIndex(opportunities[i].Weekday)
		wj := teesheet.WeekdayIndex(opportunities[j].Weekday)
		if wi != wj {
			return wi < wj
		}
		return opportunities[i].SlotIndex < opportunities[j].SlotIndex
	})
	return opportunities, nil
}

// ApplyExpectedUtil recomputes an opportunity's suggestion from a revised
// expected utilization (typically the demand model's forecast). The formula
// is the shared resolver, so a model-based figure equal to the observed one
// produces an identical suggestion.
func ApplyExpectedUtil(opp teesheet.Opportunity, expectedUtil, targetUtil float64) teesheet.Opportunity {
	return buildOpportunity(opp.SlotAggregate, expectedUtil, targetUtil)
}

// SortWorstFirst orders opportunities by ascending expected utilization, with
// weekday/slot as the stable tie-break, for "worst first" ranking.
func SortWorstFirst(opportunities []teesheet.Opportunity) {
	sort.Slice(opportunities, func(i, j int) bool {
		if opportunities[i].ExpectedUtil != opportunities[j].ExpectedUtil {
			return opportunities[i].ExpectedUtil < opportunities[j].ExpectedUtil
		}
		wi := teesheet.WeekdayIndex(opportunities[i].Weekday)
		wj := teesheet.WeekdayIndex(opportunities[j].Weekday)
		if wi != wj {
			return wi < wj
		}
		return opportunities[i].SlotIndex < opportunities[j].SlotIndex
	})
}

func buildOpportunity(agg teesheet.SlotAggregate, expectedUtil, targetUtil float64) teesheet.Opportunity {
	gap := Gap(expectedUtil, targetUtil)
	discount, newPrice := Resolve(expectedUtil, agg.AvgPrice, targetUtil)
	additional := int(math.Round(float64(agg.Slots) * gap))
	return teesheet.Opportunity{
		SlotAggregate:              agg,
		ExpectedUtil:               expectedUtil,
		Gap:                        gap,
		SuggestedDiscount:          discount,
		NewPrice:                   newPrice,
		ExpectedAdditionalBookings: additional,
		EstMonthlyLift:             Round2(float64(additional) * newPrice),
	}
}
