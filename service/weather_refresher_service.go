package services

import (
	"log"
	"time"

	"teeiq-server/api/openmeteo"
	"teeiq-server/config"
	redisdao "teeiq-server/dao/redis"
)

// WeatherRefresherService periodically refreshes cached daily weather for
// every registered course via the Open-Meteo API. Fetch failures are soft:
// a course keeps (or loses) its cache and the pipeline runs without weather.
type WeatherRefresherService struct {
	courseDao  *redisdao.RedisCourseDAO
	weatherAPI openmeteo.WeatherAPI
}

// NewWeatherRefresherService constructs a new refresher with dependencies.
func NewWeatherRefresherService(
	courseDao *redisdao.RedisCourseDAO,
	weatherAPI openmeteo.WeatherAPI,
) *WeatherRefresherService {
	return &WeatherRefresherService{
		courseDao:  courseDao,
		weatherAPI: weatherAPI,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (wr *WeatherRefresherService) StartPeriodicJob(interval time.Duration) {
	go wr.startPeriodicJob(interval)
}

func (wr *WeatherRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[WeatherRefresherService] Running periodic weather refresher job.")
		if err := wr.RefreshWeatherData(); err != nil {
			log.Printf("[WeatherRefresherService] RefreshWeatherData returned error: %v", err)
		} else {
			log.Println("[WeatherRefresherService] RefreshWeatherData completed successfully.")
		}
	}
}

// RefreshWeatherData fetches and caches the daily forecast window for every
// registered course.
func (wr *WeatherRefresherService) RefreshWeatherData() error {
	ids, err := wr.courseDao.ListCourseIDs()
	if err != nil {
		log.Printf("[WeatherRefresherService] Error listing course IDs: %v", err)
		return err
	}
	log.Printf("[WeatherRefresherService] Refreshing weather for %d courses", len(ids))

	start := time.Now().Format("2006-01-02")
	end := time.Now().AddDate(0, 0, config.WEATHER_FORECAST_DAYS-1).Format("2006-01-02")

	for _, id := range ids {
		c, err := wr.courseDao.GetCourse(id)
		if err != nil {
			log.Printf("[WeatherRefresherService] Failed to load course %s: %v", id, err)
			continue
		}

		observations, err := wr.weatherAPI.GetDailyWeather(c.CourseLat, c.CourseLon, start, end)
		if err != nil {
			log.Printf("[WeatherRefresherService] Weather fetch failed for %s: %v", id, err)
			continue
		}
		if len(observations) == 0 {
			log.Printf("[WeatherRefresherService] Empty weather response for %s, removing stale cache", id)
			if err := wr.courseDao.DeleteDailyWeather(id); err != nil {
				log.Printf("[WeatherRefresherService] Failed to delete stale weather for %s: %v", id, err)
			}
			continue
		}

		if err := wr.courseDao.SetDailyWeather(id, observations); err != nil {
			log.Printf("[WeatherRefresherService] SetDailyWeather failed for %s: %v", id, err)
		} else {
			log.Printf("[WeatherRefresherService] Cached %d weather days for course %s", len(observations), id)
		}
	}
	return nil
}
