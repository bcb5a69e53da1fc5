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

	"github.com/hotel-frontdesk/service-frontdesk/internal/application"
	"github.com/hotel-frontdesk/service-frontdesk/internal/common/health"
	"github.com/hotel-frontdesk/service-frontdesk/internal/common/logger"
	"github.com/hotel-frontdesk/service-frontdesk/internal/common/validation"
	"github.com/hotel-frontdesk/service-frontdesk/internal/config"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	bookingEvents "github.com/hotel-frontdesk/service-frontdesk/internal/events"
	"github.com/hotel-frontdesk/service-frontdesk/internal/handler"
	"github.com/hotel-frontdesk/service-frontdesk/internal/storeclient"
)

const serviceName = "service-frontdesk"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting "+serviceName,
		zap.String("port", cfg.Port),
		zap.String("store_url", cfg.Store.URL),
	)

	if err := validation.RegisterBindings(); err != nil {
		log.Fatal("failed to register validators", zap.Error(err))
	}

	// Data store client
	store := storeclient.New(storeclient.Config{
		BaseURL:         cfg.Store.URL,
		Timeout:         cfg.Store.Timeout,
		BreakerFailures: cfg.Store.BreakerFailures,
		BreakerTimeout:  cfg.Store.BreakerTimeout,
	}, log)

	// Pricing and booking lifecycle
	pricing := bookingDomain.NewStandardRateCard()
	controller := application.NewBookingController(store, pricing, time.Now, log)
	desk := application.NewDesk(store, controller, pricing, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial load; the desk keeps serving and retries on the next mutation if the store is down.
	if err := desk.Load(ctx); err != nil {
		log.Warn("initial load failed", zap.Error(err))
	}

	// Booking events from other desks refresh the snapshot
	if cfg.KafkaConfig.Enabled() {
		consumer := bookingEvents.NewBookingEventConsumer(
			cfg.KafkaConfig.Brokers,
			cfg.KafkaConfig.GroupID,
			cfg.KafkaConfig.Topic,
			desk,
			log,
		)
		defer func() { _ = consumer.Close() }()

		go func() {
			log.Info("starting booking event consumer", zap.String("topic", cfg.KafkaConfig.Topic))
			if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("booking event consumer error", zap.Error(err))
			}
		}()
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(desk, log, cfg.CORSOrigins...)

	healthHandler := health.NewHandler(serviceName, map[string]health.Check{
		"store": store.Ping,
	})
	healthHandler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down " + serviceName + "...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info(serviceName + " stopped")
}
