package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"blogapi/docs"
	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/database/migration"
	handlers "blogapi/internal/http/handler"
	"blogapi/internal/http/middleware"
	"blogapi/internal/logging"
	"blogapi/internal/otel"
	"blogapi/internal/repository/mongodb"
	"blogapi/internal/service"
	"blogapi/internal/storage"
)

// @title       Blog API
// @version     1.0
// @description Authors, posts and post contents stored in MongoDB.
// @BasePath    /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc := logging.LoadLocation(cfg.TimeZone)
	log := logging.New(os.Stdout, loc, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize tracing")
	}

	mongo, err := database.NewMongo(cfg.Mongo)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err := migration.EnsureIndexes(ctx, mongo.DB, log); err != nil {
		log.WithError(err).Fatal("failed to ensure indexes")
	}

	queryTimeout := time.Duration(cfg.Mongo.QueryTimeoutSec) * time.Second
	blogSvc := service.NewBlogService(
		mongodb.NewAuthorMongo(mongo.DB, queryTimeout),
		mongodb.NewPostMongo(mongo.DB, queryTimeout),
		mongodb.NewContentMongo(mongo.DB, queryTimeout),
	)

	// Image routes are only mounted when object storage is configured.
	var imageSvc service.ImageService
	if cfg.MinIO.Enabled() {
		objStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize object storage")
		}
		imageSvc = service.NewImageService(objStore, time.Duration(cfg.MinIO.URLExpirySec)*time.Second)
	} else {
		log.WithFields(logrus.Fields{"component": "storage", "status": "disabled"}).Info("object storage not configured")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.WithError(err).Fatal("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.CORS())
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics"
	})))
	app.Use(promMiddleware.Handler())
	app.Use(middleware.Logger(log))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, mongo, blogSvc, imageSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		host := c.Get("Host")
		if host == "" {
			host = cfg.AppHost
		}
		docs.SwaggerInfo.Host = host
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	listenErr := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("http server listening")
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			log.WithError(err).Error("failed to start server")
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	timeout := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		log.WithError(err).Error("http server shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.WithError(err).Error("tracer provider shutdown")
	}
	if err := mongo.Close(shutdownCtx); err != nil {
		log.WithError(err).Error("mongo disconnect")
	}
	log.Info("server stopped")
}
