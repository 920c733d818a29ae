package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Weather refresher config
const WEATHER_REFRESHER_SCHEDULE_MINUTES = 60
const WEATHER_FORECAST_DAYS = 7

// Open-Meteo endpoints (no API key required)
const OPEN_METEO_FORECAST_ENDPOINT_BASE = "https://api.open-meteo.com/v1"
const OPEN_METEO_GEOCODE_ENDPOINT_BASE = "https://geocoding-api.open-meteo.com/v1"

// Pricing defaults. DEFAULT_TARGET_UTIL is a default only; every entry point
// accepts an explicit target so callers can override it.
const DEFAULT_TARGET_UTIL = 0.75
const DEFAULT_UTIL_THRESHOLD = 0.6
const DEFAULT_MIN_SLOTS = 8
const DEFAULT_SLOT_MINUTES = 10

// Server config
const HTTP_SERVER_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const DAILY_WEATHER_RESOURCE = "daily_weather.csv"
const DEMO_TEETIMES_RESOURCE = "demo_tee_times.csv"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

// RedisAddress returns REDIS_ADDRESS from the environment, falling back to
// the compiled default. godotenv populates the environment in main.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

func ServerAddress() string {
	if addr := os.Getenv("TEEIQ_HTTP_ADDRESS"); addr != "" {
		return addr
	}
	return HTTP_SERVER_ADDRESS
}

// TargetUtil reads TEEIQ_TARGET_UTIL, falling back to the compiled default.
func TargetUtil() float64 {
	if v := os.Getenv("TEEIQ_TARGET_UTIL"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f < 1 {
			return f
		}
	}
	return DEFAULT_TARGET_UTIL
}
