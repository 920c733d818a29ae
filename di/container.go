package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"teeiq-server/api"
	"teeiq-server/api/openmeteo"
	"teeiq-server/config"
	redisdao "teeiq-server/dao/redis"
	"teeiq-server/db"
	"teeiq-server/server"
	"teeiq-server/server/handlers"
	services "teeiq-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient             db.RedisClient
	RedisCourseDao          *redisdao.RedisCourseDAO
	WeatherAPI              openmeteo.WeatherAPI
	TeeSheetService         *services.TeeSheetService
	CourseService           *services.CourseService
	PricingService          *services.PricingService
	WeatherRefresherService *services.WeatherRefresherService
	CourseHandler           *handlers.CourseHandler
	TeeSheetHandler         *handlers.TeeSheetHandler
	PricingHandler          *handlers.PricingHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	TeeIQHttpServer         *server.TeeIQHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	var redisClient db.RedisClient
	if env != "prod" {
		log.Printf("Using in-memory redis client")
		redisClient = db.NewMockRedisClient(ctx)
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})

		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize Redis Course DAO
	redisCourseDao := redisdao.NewRedisCourseDAO(redisClient)

	// Initialize the weather API - mock reads the bundled fixture
	var weatherAPI openmeteo.WeatherAPI
	if env != "prod" {
		weatherAPI = openmeteo.NewOpenMeteoApiClientMock()
		log.Printf("Using mock open-meteo api")
	} else {
		log.Printf("Using prod open-meteo api")
		forecastClient := api.NewHTTPClient(config.OPEN_METEO_FORECAST_ENDPOINT_BASE)
		geocodeClient := api.NewHTTPClient(config.OPEN_METEO_GEOCODE_ENDPOINT_BASE)
		weatherAPI = openmeteo.NewOpenMeteoApiClient(forecastClient, geocodeClient)
	}

	// Initialize service layer
	teeSheetService := services.NewTeeSheetService(redisCourseDao)
	courseService := services.NewCourseService(redisCourseDao, weatherAPI)
	pricingService := services.NewPricingService()
	weatherRefresherService := services.NewWeatherRefresherService(redisCourseDao, weatherAPI)

	// Initialize handlers
	courseHandler := handlers.NewCourseHandler(courseService)
	teeSheetHandler := handlers.NewTeeSheetHandler(teeSheetService)
	pricingHandler := handlers.NewPricingHandler(teeSheetService, pricingService, redisCourseDao)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(courseHandler, teeSheetHandler, pricingHandler, muxRouter)

	// Initialize the http server
	teeIQHttpServer := server.NewTeeIQHttpServer(router, muxRouter, config.ServerAddress())

	return &Container{
		RedisClient:             redisClient,
		RedisCourseDao:          redisCourseDao,
		WeatherAPI:              weatherAPI,
		TeeSheetService:         teeSheetService,
		CourseService:           courseService,
		PricingService:          pricingService,
		WeatherRefresherService: weatherRefresherService,
		CourseHandler:           courseHandler,
		TeeSheetHandler:         teeSheetHandler,
		PricingHandler:          pricingHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		TeeIQHttpServer:         teeIQHttpServer,
	}
}
