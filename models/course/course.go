package course

import "fmt"

// Course represents a registered golf course with its location and typical
// rates. Rates feed the competitor benchmark; location feeds the weather
// refresher and the nearby-course lookup.
type Course struct {
	CourseID      string  `json:"course_id"`
	CourseName    string  `json:"course_name"`
	CourseAddress string  `json:"course_address,omitempty"`
	CourseLat     float64 `json:"course_lat"`
	CourseLon     float64 `json:"course_lng"`

	WeekdayRate float64 `json:"weekday_rate,omitempty"`
	WeekendRate float64 `json:"weekend_rate,omitempty"`
}

func (c *Course) ToString() string {
	return fmt.Sprintf("Course(name=%s, address=%s, lat=%f, lon=%f)",
		c.CourseName, c.CourseAddress, c.CourseLat, c.CourseLon)
}

// Candidate is one geocoding match for a course lookup query.
type Candidate struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Source    string  `json:"source"`
}

// Positioning is the benchmark delta of a course's rates against the mean of
// its nearby rivals. Deltas are zero when fewer than one rival rate exists.
type Positioning struct {
	WeekdayDelta float64 `json:"weekday_delta"`
	WeekendDelta float64 `json:"weekend_delta"`
	Rivals       int     `json:"rivals"`
}
