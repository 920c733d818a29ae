package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"teeiq-server/db"
	"teeiq-server/models/course"
	"teeiq-server/models/teesheet"
	"teeiq-server/models/weather"
)

const COURSES_GEO_KEY_V1 = "courses_geo_v1"
const COURSES_GEO_PLACE_MEMBER_FORMAT_V1 = "courses_geo_place_v1:%s"
const TEE_TIMES_KEY_FORMAT = "tee_times_v1:%s"

// DAILY_WEATHER_KEY_FORMAT is used to cache the fetched weather table per course.
const DAILY_WEATHER_KEY_FORMAT = "daily_weather_v1:%s"

// RedisCourseDAO handles course, tee-sheet and weather-cache operations
// using Redis.
type RedisCourseDAO struct {
	client db.RedisClient
}

// NewRedisCourseDAO initializes a RedisCourseDAO with the Redis client.
func NewRedisCourseDAO(client db.RedisClient) *RedisCourseDAO {
	return &RedisCourseDAO{client: client}
}

// UpsertCourse stores the course as a geolocation with the course's JSON data.
func (dao *RedisCourseDAO) UpsertCourse(c course.Course) error {
	ctx := dao.client.GetContext()
	courseKey := fmt.Sprintf(COURSES_GEO_PLACE_MEMBER_FORMAT_V1, c.CourseID)
	return dao.client.AddLocationWithJSON(ctx, COURSES_GEO_KEY_V1, courseKey, c.CourseLat, c.CourseLon, c)
}

// GetNearbyCourses retrieves courses within a given radius (km) of a point.
func (dao *RedisCourseDAO) GetNearbyCourses(lat, lon, radius float64) ([]course.Course, error) {
	coursesJSON, err := dao.client.GetLocationsWithinRadius(COURSES_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisCourseDAO] failed to get courses: %v", err)
	}

	courses := make([]course.Course, len(coursesJSON))
	for i, courseJSON := range coursesJSON {
		if err := json.Unmarshal([]byte(courseJSON), &courses[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal course JSON: %v", err)
		}
	}
	return courses, nil
}

// GetCourse retrieves a registered course by ID.
func (dao *RedisCourseDAO) GetCourse(courseID string) (*course.Course, error) {
	key := fmt.Sprintf(COURSES_GEO_PLACE_MEMBER_FORMAT_V1, courseID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get course from redis: %w", err)
	}
	var c course.Course
	if err := json.Unmarshal([]byte(str), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal course JSON: %w", err)
	}
	return &c, nil
}

// ListCourseIDs returns all course IDs present in the geo index.
func (dao *RedisCourseDAO) ListCourseIDs() ([]string, error) {
	pattern := fmt.Sprintf(COURSES_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list course geo keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(COURSES_GEO_PLACE_MEMBER_FORMAT_V1, "")
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// AppendTeeTimes appends normalized records to the stored tee sheet for a
// course. The course ID is opaque to the pipeline; storage failing never
// blocks the in-memory flow.
func (dao *RedisCourseDAO) AppendTeeTimes(courseID string, records []teesheet.TeeTime) error {
	existing, err := dao.LoadTeeTimes(courseID)
	if err != nil {
		return err
	}
	merged := append(existing, records...)

	key := fmt.Sprintf(TEE_TIMES_KEY_FORMAT, courseID)
	data, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("failed to marshal tee times for course %s: %w", courseID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set tee times in redis: %w", err)
	}
	return nil
}

// LoadTeeTimes retrieves the stored tee sheet for a course. A missing key
// yields an empty table, not an error.
func (dao *RedisCourseDAO) LoadTeeTimes(courseID string) ([]teesheet.TeeTime, error) {
	key := fmt.Sprintf(TEE_TIMES_KEY_FORMAT, courseID)
	str, err := dao.client.Get(key)
	if err != nil {
		return []teesheet.TeeTime{}, nil
	}
	var records []teesheet.TeeTime
	if err := json.Unmarshal([]byte(str), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tee times JSON: %w", err)
	}
	return records, nil
}

// DeleteTeeTimes drops the stored tee sheet for a course.
func (dao *RedisCourseDAO) DeleteTeeTimes(courseID string) error {
	key := fmt.Sprintf(TEE_TIMES_KEY_FORMAT, courseID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete tee times key %s: %w", key, err)
	}
	log.Printf("[RedisCourseDAO] Deleted tee times for %s", courseID)
	return nil
}

// SetDailyWeather caches the fetched weather table for a course.
func (dao *RedisCourseDAO) SetDailyWeather(courseID string, observations []weather.DailyObservation) error {
	key := fmt.Sprintf(DAILY_WEATHER_KEY_FORMAT, courseID)
	data, err := json.Marshal(observations)
	if err != nil {
		return fmt.Errorf("failed to marshal daily weather for course %s: %w", courseID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set daily weather in redis: %w", err)
	}
	return nil
}

// GetDailyWeather retrieves the cached weather table for a course. A cache
// miss yields nil, which the demand model treats as absent weather.
func (dao *RedisCourseDAO) GetDailyWeather(courseID string) ([]weather.DailyObservation, error) {
	key := fmt.Sprintf(DAILY_WEATHER_KEY_FORMAT, courseID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, nil
	}
	var observations []weather.DailyObservation
	if err := json.Unmarshal([]byte(str), &observations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal daily weather JSON: %w", err)
	}
	return observations, nil
}

// DeleteDailyWeather drops the cached weather table for a course.
func (dao *RedisCourseDAO) DeleteDailyWeather(courseID string) error {
	key := fmt.Sprintf(DAILY_WEATHER_KEY_FORMAT, courseID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete daily weather key %s: %w", key, err)
	}
	return nil
}
