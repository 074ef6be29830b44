package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rateboard/internal/domain/shared/dates"
	"rateboard/internal/infra/broker/kafka"
	"rateboard/internal/infra/config"
	ginserver "rateboard/internal/infra/http/gin"
	"rateboard/internal/infra/obs"
	"rateboard/internal/infra/outbox"
	"rateboard/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Config{Env: "dev", HTTPAddr: ":8080", SeedDemoData: true}
	}
	logger := obs.NewLogger(cfg.Env)
	if err != nil {
		logger.Warn("using fallback configuration", "error", err)
	}

	outboxStore := outbox.NewStore()
	storeOpts := []memory.Option{memory.WithEventSink(outbox.Sink{Store: outboxStore})}
	if len(cfg.ExtraHolidays) > 0 {
		holidays := dates.DefaultHolidays()
		holidays.Add(cfg.ExtraHolidays...)
		storeOpts = append(storeOpts, memory.WithHolidays(holidays))
	}
	store := memory.NewStore(storeOpts...)

	if cfg.SeedDemoData {
		if err := memory.Seed(ctx, store); err != nil {
			logger.Error("demo seed failed", "error", err)
			os.Exit(1)
		}
		logger.Info("demo inventory seeded", "rooms", len(store.Rooms()))
	}

	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			logger.Error("kafka producer init failed", "error", err)
			os.Exit(1)
		}
		defer producer.Close()

		worker := &outbox.Worker{
			Store:       outboxStore,
			Producer:    producer,
			Logger:      logger,
			Interval:    cfg.OutboxPollInterval,
			TopicPrefix: cfg.KafkaTopicPrefix,
			Backoff:     cfg.RetryBackoff,
		}
		go func() {
			if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("outbox worker stopped", "error", err)
			}
		}()
		logger.Info("event relay enabled", "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("no kafka brokers configured, events stay local")
	}

	handlers := ginserver.Handlers{
		Rooms:   ginserver.RoomsHandler{Store: store},
		Seasons: ginserver.SeasonHandler{Store: store},
		Pricing: ginserver.PricingHandler{Store: store},
	}
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: func() error {
			// Resolution cannot run without a default season.
			if _, ok := store.Snapshot().DefaultSeason(); !ok {
				return errors.New("no default season configured")
			}
			return nil
		},
	}, handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}
