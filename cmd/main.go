package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "movie-insight/docs"
	"movie-insight/internal/config"
	"movie-insight/internal/handlers"
	"movie-insight/internal/metrics"
	"movie-insight/internal/repository"
	"movie-insight/internal/routes"
	"movie-insight/internal/services"
	"movie-insight/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Movie Insight API
// @version 1.0
// @description Movie browsing backed by OMDb, with similar-movie suggestions and review sentiment

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /
// @schemes http https

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := setupLogger()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	lexicon, err := services.DefaultLexicon()
	if err != nil {
		log.Fatalf("Failed to load sentiment lexicon: %v", err)
	}

	omdbClient := services.NewOMDbClient(cfg.OMDb, metrics.NewUpstreamMetrics(reg), log)
	movieService := services.NewMovieService(
		omdbClient,
		services.NewSimilarityService(omdbClient, log),
		repository.NewMockReviewRepository(),
		services.NewSentimentService(lexicon),
		cfg,
		log,
	)

	pageHandler := handlers.NewPageHandler(movieService, log)
	apiHandler := handlers.NewAPIHandler(movieService, log)
	healthHandler := handlers.NewHealthHandler(omdbClient, log)

	engine, err := web.NewEngine()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Movie Insight",
		Views:                 engine,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          handlers.ErrorHandler(log),
	})

	setupMiddleware(app, metrics.NewHTTPMetrics(reg))

	app.Get("/health", healthHandler.Check)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, pageHandler, apiHandler)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Movie Insight starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App, httpMetrics *metrics.HTTPMetrics) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods:     "GET, HEAD, OPTIONS",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))

	app.Use(httpMetrics.Middleware())
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile, err := config.LoadEnvFile(execDir, os.Getenv("GO_ENV"))
	if err != nil {
		log.Warnf("Could not load environment file: %v", err)
		return
	}
	log.Infof("Environment loaded from file %s", envFile)
}
