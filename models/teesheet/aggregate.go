package teesheet

// SlotAggregate is one row per (weekday, slot) observed in the data. Groups
// with zero slots never appear, so Util is always well defined here.
type SlotAggregate struct {
	Weekday   string  `json:"weekday"`
	SlotIndex int     `json:"slot_index"`
	SlotLabel string  `json:"slot_label"`
	Hour      int     `json:"hour"`
	Slots     int     `json:"slots"`
	Booked    int     `json:"booked"`
	AvgPrice  float64 `json:"avg_price"`
	Util      float64 `json:"util"`
}

// Opportunity is a SlotAggregate that passed the low-fill filter, augmented
// with the pricing suggestion. ExpectedUtil starts as the observed Util and
// may be overridden by the demand model before the resolver runs.
type Opportunity struct {
	SlotAggregate

	ExpectedUtil               float64 `json:"expected_util"`
	Gap                        float64 `json:"gap"`
	SuggestedDiscount          float64 `json:"suggested_discount"`
	NewPrice                   float64 `json:"new_price"`
	ExpectedAdditionalBookings int     `json:"expected_additional_bookings"`
	EstMonthlyLift             float64 `json:"est_monthly_lift"`
}

// KPIReport holds the headline scalars shown for a loaded tee sheet.
type KPIReport struct {
	TotalSlots int     `json:"total_slots"`
	Booked     int     `json:"booked"`
	Util       float64 `json:"util"`
	Revenue    float64 `json:"revenue"`   // sum of price over booked slots
	Potential  float64 `json:"potential"` // sum of price over open slots
}

// HeatCell is one observed (weekday, hour) utilization value. Cells with no
// slots are simply absent from the matrix.
type HeatCell struct {
	Weekday string  `json:"weekday"`
	Hour    int     `json:"hour"`
	Util    float64 `json:"util"`
}

// DailyUtil is the per-date mean booking rate used for the trend line.
type DailyUtil struct {
	Date string  `json:"date"`
	Util float64 `json:"util"`
}
