package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"RestaurantRoulette/config/database"
	"RestaurantRoulette/config/environment"
	"RestaurantRoulette/config/logging"
	"RestaurantRoulette/middleware"
	v1 "RestaurantRoulette/routes/v1"
	"RestaurantRoulette/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	config, err := environment.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logging.Setup(config.LogLevel, config.IsDevelopment())

	if config.GoogleAPIKey == "" {
		log.Warn().Msg("GOOGLE_API_KEY is not set, places requests will be rejected")
	}

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	// Redis is optional, the in-process cache covers a single instance
	placesCache := services.NewMemoryPlacesCache()
	if config.RedisAddress != "" {
		client, err := database.InitRedis(config.RedisAddress, config.RedisPassword)
		if err != nil {
			log.Warn().Err(err).Msg("falling back to in-memory places cache")
		} else {
			defer client.Close()
			placesCache = services.NewRedisPlacesCache(client)
		}
	}

	placesService := services.NewPlacesService(services.PlacesConfig{
		APIKey:        config.GoogleAPIKey,
		BaseURL:       config.PlacesBaseURL,
		Timeout:       config.PlacesHTTPTimeout,
		DefaultRadius: config.DefaultSearchRadius,
		KeywordRadius: config.KeywordSearchRadius,
		Cache:         placesCache,
		CacheTTL:      config.PlacesCacheTTL,
	})
	sessionService := services.NewSessionService(config.SessionTTL, nil)
	defer sessionService.Stop()
	restaurantService := services.NewRestaurantService(placesService, sessionService)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  rate.Limit(config.RateLimitRPS),
		Burst: config.RateLimitBurst,
	})
	defer rateLimiter.Stop()

	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.PrometheusMiddleware())

	// error handler runs after the handlers and renders c.Errors
	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:  config.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(rateLimiter.Middleware())
	r.Use(middleware.TimeoutMiddleware(config.RequestTimeout))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": sessionService.Len()})
	})
	r.GET("/metrics", middleware.MetricsHandler())

	// Register all routes
	v1.RegisterRoutes(r, v1.Services{
		Places:      placesService,
		Sessions:    sessionService,
		Restaurants: restaurantService,
	})

	waitGroup, ctx := errgroup.WithContext(ctx)
	runGinServer(ctx, waitGroup, config, r)

	if err := waitGroup.Wait(); err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

func runGinServer(ctx context.Context, waitGroup *errgroup.Group, config environment.Config, handler http.Handler) {
	httpServer := &http.Server{
		Addr:              config.HTTPServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      config.RequestTimeout + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("🚀 Server running on %s", config.HTTPServerAddress)
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("HTTP server failed to serve")
			return err
		}
		return nil
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server forced to shutdown")
			return err
		}

		log.Info().Msg("HTTP server is stopped")
		return nil
	})
}
