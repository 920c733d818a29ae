package util

import (
	"math/rand"
	"time"

	"teeiq-server/models/teesheet"
)

// MakeDemoTeeTimes generates a synthetic tee sheet: a few weeks of slots with
// morning and weekend demand peaks and matching price shape. Deterministic
// for a fixed seed.
func MakeDemoTeeTimes(days, slotsPerHour, startHour, endHour int, seed int64) []teesheet.TeeTime {
	rng := rand.New(rand.NewSource(seed))
	startDate := time.Now().AddDate(0, 0, -days/2)
	startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)

	slotStep := 60 / slotsPerHour
	var records []teesheet.TeeTime
	for d := 0; d < days; d++ {
		base := startDate.AddDate(0, 0, d)
		weekend := base.Weekday() == time.Saturday || base.Weekday() == time.Sunday
		for hour := startHour; hour < endHour; hour++ {
			for k := 0; k < slotsPerHour; k++ {
				teeTime := base.Add(time.Duration(hour)*time.Hour + time.Duration(k*slotStep)*time.Minute)

				price := 45.0
				if hour >= 8 && hour <= 14 {
					price += 25
				}
				if hour >= 15 {
					price += 15
				}
				if weekend {
					price += 20
				}
				price += rng.NormFloat64() * 5
				if price < 25 {
					price = 25
				}
				price = float64(int(price*100)) / 100

				demand := 0.55
				if hour == 8 || hour == 9 || hour == 10 {
					demand += 0.25
				}
				if hour == 15 || hour == 16 {
					demand += 0.15
				}
				if weekend {
					demand += 0.15
				}
				if demand > 0.95 {
					demand = 0.95
				}
				if demand < 0.05 {
					demand = 0.05
				}

				p := price
				records = append(records, teesheet.TeeTime{
					TeeTime: teeTime,
					Price:   &p,
					Booked:  rng.Float64() < demand,
					Weekday: teeTime.Weekday().String(),
					Hour:    teeTime.Hour(),
					Date:    teeTime.Format("2006-01-02"),
				})
			}
		}
	}
	return records
}
