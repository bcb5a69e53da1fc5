package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/database"
	"github.com/hotel-frontdesk/service-frontdesk/internal/common/health"
	"github.com/hotel-frontdesk/service-frontdesk/internal/common/kafka"
	"github.com/hotel-frontdesk/service-frontdesk/internal/common/logger"
	"github.com/hotel-frontdesk/service-frontdesk/internal/common/middleware"
	"github.com/hotel-frontdesk/service-frontdesk/internal/common/validation"
	"github.com/hotel-frontdesk/service-frontdesk/internal/config"
	"github.com/hotel-frontdesk/service-frontdesk/internal/datastore"
	"github.com/hotel-frontdesk/service-frontdesk/internal/events"
	"github.com/hotel-frontdesk/service-frontdesk/internal/repository"
)

const serviceName = "hotel-store"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting "+serviceName, zap.String("port", cfg.StorePort))

	if err := validation.RegisterBindings(); err != nil {
		log.Fatal("failed to register validators", zap.Error(err))
	}

	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.IsDevelopment() {
		if err := db.AutoMigrate(repository.Models()...); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DBConfig.DatabaseURL(), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Booking events
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaConfig.Enabled() {
		producer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
		defer func() { _ = producer.Close() }()
		publisher = events.NewKafkaPublisher(producer, cfg.KafkaConfig.Topic, log)
	} else {
		log.Info("no kafka brokers configured, booking events disabled")
	}

	service := datastore.NewService(
		repository.NewGormGuestRepository(db),
		repository.NewGormRoomRepository(db),
		repository.NewGormBookingRepository(db),
		repository.NewGormPriceRepository(db),
		publisher,
		log,
	)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins...))

	healthHandler := health.NewHandler(serviceName, map[string]health.Check{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	})
	healthHandler.RegisterRoutes(router)

	datastore.NewHandler(service, log).RegisterRoutes(&router.RouterGroup)

	srv := &http.Server{
		Addr:         cfg.StorePort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.StorePort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down " + serviceName + "...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info(serviceName + " stopped")
}
