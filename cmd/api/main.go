package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diatrack/diatrack-v2/backend/config"
	"github.com/diatrack/diatrack-v2/backend/internal/api"
	"github.com/diatrack/diatrack-v2/backend/internal/database"
	"github.com/diatrack/diatrack-v2/backend/internal/export"
	"github.com/diatrack/diatrack-v2/backend/internal/middleware"
	"github.com/diatrack/diatrack-v2/backend/internal/predictor"
	"github.com/diatrack/diatrack-v2/backend/internal/risk"
	"github.com/diatrack/diatrack-v2/backend/internal/router"
	"github.com/diatrack/diatrack-v2/backend/internal/server"
	"github.com/diatrack/diatrack-v2/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load the predictor artifacts. No assessment can run without them,
	// so a load failure is fatal.
	model, err := predictor.Load(cfg.ScalerPath, cfg.ModelPath)
	if err != nil {
		log.Fatalf("Failed to load predictor: %v", err)
	}

	engine, err := risk.NewEngine(model)
	if err != nil {
		log.Fatalf("Failed to construct risk engine: %v", err)
	}

	// Clinical record exporter: publish to the broker when configured,
	// otherwise log records locally.
	var publisher export.Publisher
	if cfg.AMQPAddr != "" {
		amqpPublisher, err := export.NewAMQPPublisher(cfg.AMQPAddr, cfg.ExportQueue)
		if err != nil {
			log.Fatalf("Failed to connect to export broker: %v", err)
		}
		publisher = amqpPublisher
	} else {
		log.Println("AMQP_ADDR not set, clinical records will be logged instead of published")
		publisher = export.NewLogPublisher(nil)
	}
	defer publisher.Close()

	// Rate limiting is optional: skip it when no redis is configured.
	var limiter *middleware.RateLimiter
	if cfg.RedisHost != "" || cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Redis unavailable, rate limiting disabled: %v", err)
		} else {
			limiter = middleware.NewAssessmentRateLimiter(redisClient)
		}
	}

	assessmentService := service.NewAssessmentService(engine, publisher, nil)
	assessmentHandler := api.NewAssessmentHandler(assessmentService)

	engineRouter := router.SetupRouter(assessmentHandler, limiter, cfg.AllowedOrigins)
	srv := server.New(cfg, engineRouter)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s:%s...", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
