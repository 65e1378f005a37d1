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

	"github.com/Eursukkul/aquaagro-admin/config"
	"github.com/Eursukkul/aquaagro-admin/internal/booking"
	"github.com/Eursukkul/aquaagro-admin/internal/consumer"
	"github.com/Eursukkul/aquaagro-admin/internal/pricing"
	"github.com/Eursukkul/aquaagro-admin/internal/repository"
	"github.com/Eursukkul/aquaagro-admin/internal/service"
	"github.com/Eursukkul/aquaagro-admin/internal/stats"
	"github.com/Eursukkul/aquaagro-admin/pkg/database"
	"github.com/Eursukkul/aquaagro-admin/pkg/logger"
	"github.com/Eursukkul/aquaagro-admin/pkg/rabbitmq"
	"github.com/Eursukkul/aquaagro-admin/pkg/redis"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Confirmed bookings: Postgres when configured, memory otherwise
	bookingRepo := repository.NewMemoryBookingRepository()
	if cfg.UsePostgres() {
		db, err := database.NewPostgresDB(ctx, cfg.DSN(), database.Options{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
			MaxWait:         cfg.ConnectTimeout,
		}, log)
		if err != nil {
			log.Fatal("failed to init postgres", zap.Error(err))
		}
		defer func() { _ = database.Close(db) }()
		bookingRepo = repository.NewBookingRepository(db)
	}

	// Booking drafts: Redis when configured, memory otherwise
	drafts := repository.NewMemoryDraftStore(cfg.DraftTTL, time.Now)
	if cfg.UseRedis() {
		rdb := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.DraftTTL)
		if err := rdb.Ping(ctx); err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		drafts = repository.NewRedisDraftStore(rdb, cfg.DraftTTL)
	}

	// booking.confirmed events feed the live tally, through RabbitMQ when configured
	tally := stats.NewTally()
	bookingConsumer := consumer.NewBookingConsumer(tally, log)
	var publisher service.Publisher = consumer.LocalPublisher{Consumer: bookingConsumer}
	if cfg.UseRabbit() {
		mqPublisher, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.ConnectTimeout, log)
		if err != nil {
			log.Fatal("failed to connect rabbitmq publisher", zap.Error(err))
		}
		defer mqPublisher.Close()

		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL, cfg.ConnectTimeout, log)
		if err != nil {
			log.Fatal("failed to connect rabbitmq consumer", zap.Error(err))
		}
		defer mqConsumer.Close()

		msgs, err := mqConsumer.Consume()
		if err != nil {
			log.Fatal("failed to start consuming", zap.Error(err))
		}
		bookingConsumer.Start(msgs)
		publisher = mqPublisher
	}

	// Repositories
	catalogRepo := repository.NewCatalogRepository()
	analyticsRepo := repository.NewAnalyticsRepository()

	// Services
	clock := booking.RealClock{}
	catalogSvc := service.NewCatalogService(catalogRepo)
	bookingSvc := service.NewBookingService(service.BookingDeps{
		Rates:         pricing.DefaultRates(),
		Repo:          bookingRepo,
		Drafts:        drafts,
		Confirmer:     booking.NewConfirmer(cfg.ConfirmDelay, clock),
		Clock:         clock,
		Publisher:     publisher,
		Logger:        log,
		PersistWindow: cfg.PersistWindow,
	})
	dashboardSvc := service.NewDashboardService(analyticsRepo, catalogRepo, tally)
	reportSvc := service.NewReportService(analyticsRepo)
	settingsSvc := service.NewSettingsService(repository.DefaultSettings(), log)

	e := newRouter(log, services{
		catalog:   catalogSvc,
		booking:   bookingSvc,
		dashboard: dashboardSvc,
		reports:   reportSvc,
		settings:  settingsSvc,
	})

	go func() {
		log.Info("admin service starting", zap.String("port", cfg.ServerPort))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	bookingSvc.Shutdown()
}
