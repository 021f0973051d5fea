package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "image-previewer/docs"

	"image-previewer/internal/delivery/http/routers"
	"image-previewer/internal/domain/repositories"
	"image-previewer/internal/infrastructure/metrics"
	"image-previewer/internal/infrastructure/processor"
	"image-previewer/internal/infrastructure/storage"
	"image-previewer/internal/pkg/config"
	"image-previewer/internal/usecases"
	"image-previewer/pkg/errors/i18n"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/robfig/cron/v3"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// @title        Image Previewer API
// @version      1.0
// @description  Resizes and converts stored images (HEIC included) into preview and full-size JPEGs.
// @BasePath     /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()
	log.SetLevel(config.ParseLogLevel(cfg.LogLevel))

	if err := i18n.Load(cfg.Locale); err != nil {
		log.Warnw("locale not available, using default", "locale", cfg.Locale, "error", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	transcodeMetrics := metrics.MustNewMetrics(registry)

	// Repositories & Services
	localStorage := storage.NewLocalStorage()
	codec := processor.NewImagingCodec(localStorage)
	transcoder := usecases.NewTranscoder(codec, localStorage, usecases.TranscoderConfig{
		MaxAttempts:    cfg.Image.MaxAttempts,
		Backoff:        cfg.Image.Backoff,
		DefaultQuality: cfg.Image.DefaultQuality,
	}, usecases.WithObserver(transcodeMetrics))
	resolver := usecases.NewPathResolver(cfg.Storage.Roots, cfg.Image.PreviewExtension)
	previewService := usecases.NewPreviewService(resolver, transcoder, newPublisher(cfg))

	scheduler := startCleanup(cfg)

	app := fiber.New(fiber.Config{
		AppName: "image-previewer",
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	routers.SetupPreviewRoutes(app, previewService)
	routers.SetupSystemRoutes(app, registry)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Infow("server starting", "addr", addr, "env", cfg.Env, "base", cfg.Storage.BaseDir)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server başlatılamadı: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown sinyali alındı, server kapatılıyor...")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server düzgün kapatılamadı: %v", err)
	}
	log.Info("Server düzgün bir şekilde kapatıldı")
}

func newPublisher(cfg *config.Config) repositories.ArtifactPublisher {
	if !cfg.S3.Enabled() {
		return storage.NopPublisher{}
	}
	s3Storage, err := storage.NewS3Storage(context.Background(), cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix)
	if err != nil {
		log.Fatalf("S3 storage başlatılamadı: %v", err)
	}
	log.Infow("mirroring artifacts to S3", "bucket", cfg.S3.Bucket, "prefix", cfg.S3.Prefix)
	return s3Storage
}

// startCleanup schedules the temp root sweep; nil when disabled.
func startCleanup(cfg *config.Config) *cron.Cron {
	if cfg.Cleanup.MaxAge <= 0 {
		return nil
	}
	cleanupUC, err := usecases.NewCleanupService(cfg.Storage.Roots)
	if err != nil {
		log.Fatalf("cleanup service: %v", err)
	}

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(cfg.Cleanup.Schedule, func() {
		removed, err := cleanupUC.CleanupOldTempFiles(cfg.Cleanup.MaxAge)
		if err != nil {
			log.Errorw("Error cleaning up old temp files", "error", err)
		}
		if removed > 0 {
			log.Infow("temp cleanup finished", "removed", removed)
		}
	}); err != nil {
		log.Fatalf("invalid TEMP_CLEANUP_SCHEDULE %q: %v", cfg.Cleanup.Schedule, err)
	}
	c.Start() // cron job'u başlatır
	return c
}
