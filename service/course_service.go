package services

import (
	"github.com/google/uuid"

	"teeiq-server/api/openmeteo"
	redisdao "teeiq-server/dao/redis"
	"teeiq-server/models/course"
)

// CourseService manages the course registry and the competitor benchmark.
type CourseService struct {
	courseDao  *redisdao.RedisCourseDAO
	weatherAPI openmeteo.WeatherAPI
}

// NewCourseService constructs a new CourseService with its dependencies.
func NewCourseService(
	courseDao *redisdao.RedisCourseDAO,
	weatherAPI openmeteo.WeatherAPI) *CourseService {

	return &CourseService{
		courseDao:  courseDao,
		weatherAPI: weatherAPI,
	}
}

// RegisterCourse upserts a course into the geo registry, generating an ID
// when the caller did not supply one.
func (cs *CourseService) RegisterCourse(c course.Course) (course.Course, error) {
	if c.CourseID == "" {
		c.CourseID = uuid.NewString()
	}
	if err := cs.courseDao.UpsertCourse(c); err != nil {
		return course.Course{}, err
	}
	return c, nil
}

// GetCourse retrieves a registered course by ID.
func (cs *CourseService) GetCourse(courseID string) (*course.Course, error) {
	return cs.courseDao.GetCourse(courseID)
}

// GetNearbyCourses retrieves registered courses within radius km of a point.
func (cs *CourseService) GetNearbyCourses(lat, lon, radius float64) ([]course.Course, error) {
	return cs.courseDao.GetNearbyCourses(lat, lon, radius)
}

// GeocodeCandidates resolves a free-text course query to coordinates.
func (cs *CourseService) GeocodeCandidates(query string) ([]course.Candidate, error) {
	return cs.weatherAPI.GeocodeCandidates(query)
}

// Positioning benchmarks a course's weekday/weekend rates against the mean
// rates of registered rivals within radius km.
func (cs *CourseService) Positioning(courseID string, radius float64) (*course.Positioning, error) {
	c, err := cs.courseDao.GetCourse(courseID)
	if err != nil {
		return nil, err
	}

	nearby, err := cs.courseDao.GetNearbyCourses(c.CourseLat, c.CourseLon, radius)
	if err != nil {
		return nil, err
	}

	var weekdaySum, weekendSum float64
	rivals := 0
	for _, rival := range nearby {
		if rival.CourseID == c.CourseID {
			continue
		}
		if rival.WeekdayRate == 0 && rival.WeekendRate == 0 {
			continue
		}
		weekdaySum += rival.WeekdayRate
		weekendSum += rival.WeekendRate
		rivals++
	}

	pos := &course.Positioning{Rivals: rivals}
	if rivals > 0 {
		pos.WeekdayDelta = c.WeekdayRate - weekdaySum/float64(rivals)
		pos.WeekendDelta = c.WeekendRate - weekendSum/float64(rivals)
	}
	return pos, nil
}
