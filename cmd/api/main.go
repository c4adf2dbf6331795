package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ocrapi/internal/config"
	"ocrapi/internal/database"
	"ocrapi/internal/database/migration"
	handlers "ocrapi/internal/http/handler"
	"ocrapi/internal/http/middleware"
	"ocrapi/internal/logging"
	"ocrapi/internal/ocr"
	"ocrapi/internal/otel"
	"ocrapi/internal/repository/postgres"
	"ocrapi/internal/service"
	"ocrapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title OCR API
// @version 1.0
// @description Extracts text from JPEG and PNG images with Tesseract.
// @BasePath /
func main() {
	// .env is auto-loaded if present; real environment variables win.
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	log := logging.New(os.Stdout, loc)
	logging.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		fatal(log, "tracing_init_failed", err)
	}

	engine, err := ocr.New(cfg.OCR)
	if err != nil {
		fatal(log, "ocr_engine_init_failed", err)
	}
	engine, err = ocr.Instrument(engine, prometheus.DefaultRegisterer)
	if err != nil {
		fatal(log, "ocr_metrics_init_failed", err)
	}
	log.Info("ocr_engine_ready", logging.Fields{"engine": engine.Name(), "languages": cfg.OCR.Languages})

	opts := []service.Option{
		service.WithLogger(log),
		service.WithMaxPixels(int64(cfg.OCR.MaxPixels)),
	}

	var db *sql.DB
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			fatal(log, "database_connect_failed", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			fatal(log, "migration_failed", err)
		}
		opts = append(opts, service.WithHistory(postgres.NewRecognitionPostgres(db)))
	}

	if cfg.MinIO.Enabled() {
		objStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			fatal(log, "object_storage_init_failed", err)
		}
		opts = append(opts, service.WithArchive(objStore))
	}

	svc := service.NewRecognitionService(engine, opts...)

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		fatal(log, "http_metrics_init_failed", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             cfg.OCR.MaxUploadBytes,
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware())
	// RequestID must run before Logger so the access log carries the id.
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/swagger/*", handlers.Swagger(cfg.SwaggerHost))

	handlers.RegisterRoutes(app, db, svc, cfg.OCR.ResponseFormat)

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("http_shutdown_failed", err, nil)
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error("tracing_shutdown_failed", err, nil)
		}
	}()

	addr := ":" + cfg.Port
	log.Info("http_listening", logging.Fields{
		"addr":            addr,
		"history_enabled": svc.HistoryEnabled(),
		"archive_enabled": cfg.MinIO.Enabled(),
		"response_format": cfg.OCR.ResponseFormat,
	})

	if err := app.Listen(addr); err != nil {
		fatal(log, "http_listen_failed", err)
	}
	<-done
	log.Info("http_stopped", nil)
}

func fatal(log *logging.Logger, msg string, err error) {
	log.Error(msg, err, nil)
	os.Exit(1)
}
