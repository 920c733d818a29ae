package weather

// DailyObservation is one calendar day of weather for a course, joined to
// tee-time records by date. Pointer fields stay nil when a value is missing;
// the demand model tolerates absent weather entirely.
type DailyObservation struct {
	Date    string   `json:"date"` // YYYY-MM-DD
	TempMax *float64 `json:"temperature_2m_max"`
	TempMin *float64 `json:"temperature_2m_min"`
	Precip  *float64 `json:"precipitation_sum"`
	WindMax *float64 `json:"windspeed_10m_max"`
}

// ForecastResponse matches the Open-Meteo daily forecast JSON.
type ForecastResponse struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Daily     DailyBlock `json:"daily"`
}

// DailyBlock holds the column-oriented daily arrays returned by Open-Meteo.
type DailyBlock struct {
	Time             []string   `json:"time"`
	TemperatureMax   []*float64 `json:"temperature_2m_max"`
	TemperatureMin   []*float64 `json:"temperature_2m_min"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
	WindspeedMax     []*float64 `json:"windspeed_10m_max"`
}

// Observations flattens the column-oriented response into one row per date.
func (r *ForecastResponse) Observations() []DailyObservation {
	out := make([]DailyObservation, 0, len(r.Daily.Time))
	for i, date := range r.Daily.Time {
		obs := DailyObservation{Date: date}
		if i < len(r.Daily.TemperatureMax) {
			obs.TempMax = r.Daily.TemperatureMax[i]
		}
		if i < len(r.Daily.TemperatureMin) {
			obs.TempMin = r.Daily.TemperatureMin[i]
		}
		if i < len(r.Daily.PrecipitationSum) {
			obs.Precip = r.Daily.PrecipitationSum[i]
		}
		if i < len(r.Daily.WindspeedMax) {
			obs.WindMax = r.Daily.WindspeedMax[i]
		}
		out = append(out, obs)
	}
	return out
}

// GeocodeResponse matches the Open-Meteo geocoding search JSON.
type GeocodeResponse struct {
	Results []GeocodeResult `json:"results"`
}

type GeocodeResult struct {
	Name      string  `json:"name"`
	Admin1    string  `json:"admin1"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
