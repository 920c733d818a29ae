package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"teeiq-server/models/teesheet"
	"teeiq-server/models/weather"
)

// CSV is the interchange format at every boundary: uploads, weather tables
// and opportunity exports all pass through these helpers.

// ReadRawTable parses CSV from a reader into a RawTable. The first row is
// the header; cells stay untyped strings for the normalizer.
func ReadRawTable(r io.Reader) (*teesheet.RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty CSV input")
	}
	return &teesheet.RawTable{Headers: rows[0], Rows: rows[1:]}, nil
}

// ReadRawTableFromCSV loads a RawTable from a CSV file on disk.
func ReadRawTableFromCSV(filePath string) (*teesheet.RawTable, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	defer f.Close()
	return ReadRawTable(f)
}

// WriteTeeTimes writes canonical records as CSV with the canonical headers,
// so the output can be re-imported through the normalizer unchanged.
func WriteTeeTimes(w io.Writer, records []teesheet.TeeTime) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"tee_time", "price", "booked"}); err != nil {
		return err
	}
	for _, rec := range records {
		price := ""
		if rec.Price != nil {
			price = strconv.FormatFloat(*rec.Price, 'f', 2, 64)
		}
		row := []string{
			rec.TeeTime.Format("2006-01-02 15:04:05"),
			price,
			strconv.FormatBool(rec.Booked),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadDailyWeather parses a per-date weather CSV with at least date,
// temperature_2m_max and precipitation_sum columns. Blank cells stay nil.
func ReadDailyWeather(r io.Reader) ([]weather.DailyObservation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse weather CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int)
	for i, h := range rows[0] {
		cols[h] = i
	}
	dateCol, ok := cols["date"]
	if !ok {
		return nil, fmt.Errorf("weather CSV is missing a 'date' column")
	}

	cell := func(row []string, name string) *float64 {
		i, ok := cols[name]
		if !ok || i >= len(row) || row[i] == "" {
			return nil
		}
		f, err := strconv.ParseFloat(row[i], 64)
		if err != nil {
			return nil
		}
		return &f
	}

	out := make([]weather.DailyObservation, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if dateCol >= len(row) {
			continue
		}
		out = append(out, weather.DailyObservation{
			Date:    row[dateCol],
			TempMax: cell(row, "temperature_2m_max"),
			TempMin: cell(row, "temperature_2m_min"),
			Precip:  cell(row, "precipitation_sum"),
			WindMax: cell(row, "windspeed_10m_max"),
		})
	}
	return out, nil
}

// ReadDailyWeatherFromCSV loads a weather table from a CSV file on disk.
func ReadDailyWeatherFromCSV(filePath string) ([]weather.DailyObservation, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	defer f.Close()
	return ReadDailyWeather(f)
}

// WriteOpportunities exports an opportunity table as CSV. Currency fields
// are written with two decimals; re-parsing yields the originals within
// rounding tolerance.
func WriteOpportunities(w io.Writer, opportunities []teesheet.Opportunity) error {
	writer := csv.NewWriter(w)
	header := []string{
		"weekday", "slot_index", "slot_label", "hour", "slots", "booked",
		"util", "expected_util", "avg_price", "suggested_discount",
		"new_price", "expected_additional_bookings", "est_monthly_lift",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, opp := range opportunities {
		row := []string{
			opp.Weekday,
			strconv.Itoa(opp.SlotIndex),
			opp.SlotLabel,
			strconv.Itoa(opp.Hour),
			strconv.Itoa(opp.Slots),
			strconv.Itoa(opp.Booked),
			strconv.FormatFloat(opp.Util, 'f', 4, 64),
			strconv.FormatFloat(opp.ExpectedUtil, 'f', 4, 64),
			strconv.FormatFloat(opp.AvgPrice, 'f', 2, 64),
			strconv.FormatFloat(opp.SuggestedDiscount, 'f', 4, 64),
			strconv.FormatFloat(opp.NewPrice, 'f', 2, 64),
			strconv.Itoa(opp.ExpectedAdditionalBookings),
			strconv.FormatFloat(opp.EstMonthlyLift, 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadOpportunities parses an exported opportunity CSV back into rows.
func ReadOpportunities(r io.Reader) ([]teesheet.Opportunity, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse opportunities CSV: %w", err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("empty opportunities CSV")
	}

	out := make([]teesheet.Opportunity, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 13 {
			return nil, fmt.Errorf("expected 13 columns, got %d", len(row))
		}
		var opp teesheet.Opportunity
		opp.Weekday = row[0]
		opp.SlotIndex, _ = strconv.Atoi(row[1])
		opp.SlotLabel = row[2]
		opp.Hour, _ = strconv.Atoi(row[3])
		opp.Slots, _ = strconv.Atoi(row[4])
		opp.Booked, _ = strconv.Atoi(row[5])
		opp.Util, _ = strconv.ParseFloat(row[6], 64)
		opp.ExpectedUtil, _ = strconv.ParseFloat(row[7], 64)
		opp.AvgPrice, _ = strconv.ParseFloat(row[8], 64)
		opp.SuggestedDiscount, _ = strconv.ParseFloat(row[9], 64)
		opp.NewPrice, _ = strconv.ParseFloat(row[10], 64)
		opp.ExpectedAdditionalBookings, _ = strconv.Atoi(row[11])
		opp.EstMonthlyLift, _ = strconv.ParseFloat(row[12], 64)
		out = append(out, opp)
	}
	return out, nil
}

// FormatTimeAMPM renders an (hour, minute) pair as "3:04 PM" display text.
func FormatTimeAMPM(hour, minute int) string {
	t := time.Date(2000, 1, 1, hour, minute, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}
