package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	docs "marketboard/docs"
	appmarket "marketboard/internal/application/service/market"
	"marketboard/internal/config"
	"marketboard/internal/infrastructure/broker"
	"marketboard/internal/infrastructure/mockdata"
	infrahttp "marketboard/internal/interfaces/http"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	logger := cfg.NewLogger()

	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()

	seed := cfg.Market.SeedOrClock(time.Now())
	marketService := appmarket.NewService(mockdata.NewSeededGenerator(seed), cfg.Market.TargetCount)
	batch, err := marketService.Refresh(ctx)
	if err != nil {
		logger.Fatalf("failed to generate initial batch: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"batch_id":  batch.ID,
		"companies": batch.Len(),
		"seed":      seed,
	}).Info("initial batch generated")

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	if cfg.RabbitMQ.URL != "" {
		consumer, err := broker.NewConsumer(cfg.RabbitMQ, marketService, logger)
		if err != nil {
			logger.Fatalf("failed to init consumer: %v", err)
		}
		if err := consumer.Start(ctx); err != nil {
			logger.Fatalf("failed to start consumer: %v", err)
		}
		defer func() {
			if err := consumer.Close(); err != nil {
				logger.Errorf("consumer close error: %v", err)
			}
		}()
	}

	handler := infrahttp.NewHandler(marketService, redisClient, cfg.Cache.TTL(), logger)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: handler,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("HTTP server listening on %s", cfg.HTTP.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("server stopped with error: %v", err)
		return
	}
	logger.Info("server stopped")
}
