package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"building-service/docs"
	"building-service/internal/config"
	"building-service/internal/handlers"
	"building-service/internal/logger"
	"building-service/internal/metrics"
	"building-service/internal/models"
	"building-service/internal/repository"
	"building-service/internal/services"
	"building-service/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const serviceName = "building-service"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// the logger is configured from cfg, so this one goes to stderr directly
		os.Stderr.WriteString("Config error: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := InitLogger(cfg)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.NewMetrics(prometheus.DefaultRegisterer)

	publisher, closeRedis := InitChangePublisher(ctx, cfg, log)
	defer closeRedis()
	store := InitSnapshotStore(ctx, cfg, log)

	var seed []models.Building
	if cfg.SeedBuildings {
		seed = repository.SeedBuildings()
	}
	repo := repository.NewMemoryBuildingRepository(seed)
	directory := services.NewBuildingService(repo, repository.NewClockIDGenerator(), publisher, m, log)
	exports := services.NewExportService(directory, store, m, log)

	app := fiber.New(fiber.Config{AppName: serviceName})
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error("Recovered from panic",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Any("panic", e),
				zap.Stack("stack"),
			)
		},
	}))
	app.Use(handlers.RequestLogger(log))

	//Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	h := handlers.NewBuildingHandler(directory, exports, log)
	api := app.Group("/api")
	h.Register(api)

	docs.SwaggerInfo.BasePath = "/api"
	api.Get("/swagger/*", swagger.HandlerDefault)
	api.Get("/health", h.Health)

	for _, r := range app.GetRoutes(true) {
		log.Debug("Registered route", zap.String("method", r.Method), zap.String("path", r.Path))
	}

	go func() {
		<-ctx.Done()
		log.Info("Shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			log.Error("Graceful shutdown failed", zap.Error(err))
		}
	}()

	log.Info("Server listening",
		zap.String("port", cfg.AppPort),
		zap.Int("records", directory.Count()),
		zap.Bool("change_feed", cfg.RedisEnabled()),
		zap.Bool("snapshots", exports.SnapshotsEnabled()),
	)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}

func InitLogger(cfg *config.Config) *zap.Logger {
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		os.Stderr.WriteString("Logger initialization failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	return log
}

// InitChangePublisher connects the Redis change feed when configured. The
// returned func closes the connection.
func InitChangePublisher(ctx context.Context, cfg *config.Config, log *zap.Logger) (services.ChangePublisher, func()) {
	if !cfg.RedisEnabled() {
		log.Info("Change feed disabled")
		return services.NopPublisher{}, func() {}
	}
	client, err := storage.NewRedisClient(ctx, cfg.RedisHost, cfg.RedisPort)
	if err != nil {
		log.Fatal("Redis client initialization failed", zap.Error(err))
	}
	log.Info("Change feed enabled",
		zap.String("stream", cfg.RedisEventsStream),
		zap.Int64("max_len", cfg.RedisEventsMaxLen),
	)
	publisher := services.NewRedisStreamPublisher(client, cfg.RedisEventsStream, cfg.RedisEventsMaxLen)
	return publisher, func() {
		if err := client.Close(); err != nil {
			log.Warn("Closing Redis client failed", zap.Error(err))
		}
	}
}

// InitSnapshotStore returns nil when MinIO is not configured, which disables
// snapshots.
func InitSnapshotStore(ctx context.Context, cfg *config.Config, log *zap.Logger) services.ObjectStore {
	if !cfg.MinioEnabled() {
		log.Info("Snapshots disabled")
		return nil
	}
	minioClient, created, err := storage.NewMinioClient(ctx, cfg)
	if err != nil {
		log.Fatal("MinIO client initialization failed", zap.Error(err))
	}
	if created {
		log.Info("Created snapshot bucket", zap.String("bucket", cfg.MinioBucket))
	}
	return storage.NewMinioObjectStore(minioClient, cfg.MinioBucket)
}
