package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"curtail/internal/analytics"
	"curtail/internal/classify"
	"curtail/internal/config"
	"curtail/internal/generator"
	"curtail/internal/geo"
	"curtail/internal/handler"
	"curtail/internal/model"
	"curtail/internal/mq"
	"curtail/internal/recorder"
	"curtail/internal/registry"
	"curtail/internal/repository"
	"curtail/internal/resolver"
	"curtail/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Curtail API
// @version 1.0
// @description A URL-shortening service with click analytics

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	mysqlRepo := repository.NewMySQLRepository(&cfg.Database.MySQL)
	defer mysqlRepo.Close()

	// Geo lookup is optional; recording proceeds without location data
	var locator geo.Locator = geo.NullLocator{}
	if cfg.Geo.MMDBPath != "" {
		mmdb, err := geo.NewMaxMindLocator(cfg.Geo.MMDBPath)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to open GeoIP database, locations disabled")
		} else {
			locator = mmdb
			defer mmdb.Close()
		}
	}

	// Initialize MQ (optional, can be nil)
	var mqProducer *mq.Producer
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		}
	}

	// Initialize core components
	bloom := registry.NewBloomFilter(redisRepo.GetClient(), &cfg.Bloom)
	gen := generator.NewBase62Generator(cfg.Generator.CodeLength)
	reg := registry.NewRegistry(gen, mysqlRepo, redisRepo, bloom, cfg.Generator.MaxAttempts, cfg.Cache.TTL)

	var producer recorder.Publisher
	if mqProducer != nil {
		producer = mqProducer
	}
	rec := recorder.NewRecorder(
		mysqlRepo,
		redisRepo,
		classify.NewRuleClassifier(),
		locator,
		producer,
		cfg.Recorder.Workers,
		cfg.Recorder.QueueSize,
		cfg.Recorder.WriteTimeout,
	)
	rec.Start()
	defer rec.Close()

	res := resolver.NewResolver(reg, redisRepo, rec, cfg.Cache.TTL, cfg.Cache.NegativeTTL, cfg.Server.ResolveTimeout)
	agg := analytics.NewAggregator(redisRepo, mysqlRepo)

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())

	// Setup static files for 404 page
	router.LoadHTMLGlob("templates/*")

	// API v1 routes (owner identity required)
	linkHandler := handler.NewLinkHandler(reg, baseURL(cfg))
	analyticsHandler := handler.NewAnalyticsHandler(reg, agg)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Identity(cfg.Auth.JWTSecret))
	{
		v1.POST("/links",
			middleware.RateLimitByIP(redisRepo.GetClient(), cfg.RateLimit.Max, cfg.RateLimit.Window),
			linkHandler.Create)
		v1.GET("/links", linkHandler.List)
		v1.DELETE("/links/:code", linkHandler.Delete)
		v1.GET("/links/:code/analytics", analyticsHandler.Get)
		v1.POST("/links/:code/analytics/rebuild", analyticsHandler.Rebuild)
	}

	// Redirect handler (short codes)
	redirectHandler := handler.NewRedirectHandler(res)
	router.GET("/:code", redirectHandler.Redirect)

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Start MQ consumer if configured
	var mqConsumer *mq.Consumer
	if cfg.RocketMQ.NameServer != "" {
		// Create consumer with handler that persists and nudges rollups
		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, msg *mq.ClickMessage) error {
			ev := &model.ClickEvent{
				LinkCode:   msg.LinkCode,
				Timestamp:  msg.Timestamp,
				DeviceType: msg.DeviceType,
				Browser:    msg.Browser,
				OS:         msg.OS,
				City:       msg.City,
				Country:    msg.Country,
				Referer:    msg.Referer,
				ClientIP:   msg.ClientIP,
			}
			if err := mysqlRepo.SaveClickEvent(ctx, ev); err != nil {
				return err
			}
			if err := redisRepo.IncrRollup(ctx, ev); err != nil {
				log.Warn().Err(err).Str("code", ev.LinkCode).Msg("Failed to nudge rollup counters")
			}
			return nil
		})

		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Close producer
	if mqProducer != nil {
		mqProducer.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// baseURL returns the public base URL for short links
func baseURL(cfg *config.Config) string {
	if cfg.Server.BaseURL != "" {
		return cfg.Server.BaseURL
	}
	if port := cfg.Server.Port; port != 80 && port != 443 {
		return fmt.Sprintf("http://localhost:%d", port)
	}
	return "http://localhost"
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
