package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/honeynil/CreditLedgerService/internal/api"
	"github.com/honeynil/CreditLedgerService/internal/audit"
	"github.com/honeynil/CreditLedgerService/internal/config"
	"github.com/honeynil/CreditLedgerService/internal/infrastructure/kafka"
	"github.com/honeynil/CreditLedgerService/internal/infrastructure/redis"
	"github.com/honeynil/CreditLedgerService/internal/observability"
	core "github.com/honeynil/CreditLedgerService/internal/repository/postgres"
	service "github.com/honeynil/CreditLedgerService/internal/services"
	_ "github.com/lib/pq"
)

const serviceName = "credit-ledger"

func main() {
	cfg := config.Load()

	shutdownTracing := observability.Setup(serviceName, cfg)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Error("tracer shutdown failed", "error", err)
		}
	}()

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		slog.Error("failed to open Postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(context.Background()); err != nil {
		slog.Error("failed to connect to Postgres", "error", err)
		os.Exit(1)
	}

	transactionRepo := core.NewPostgresTransactionRepository(db)
	creditRepo := core.NewPostgresCreditRepository(db)
	auditRepo := core.NewPostgresAuditRepository(db)
	store := core.NewPostgresLedgerStore(db)

	// Payments stay correct without Redis; only the double-submit guard is lost.
	var redisClient redis.RedisClient
	if client, err := redis.NewClient(cfg.RedisAddr); err != nil {
		slog.Warn("running without request deduplication", "redis_addr", cfg.RedisAddr, "error", err)
	} else {
		redisClient = client
		defer client.Close()
	}

	producer := kafka.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	svc := service.NewLedgerService(transactionRepo, creditRepo, store, redisClient, producer, cfg.KafkaTopic)

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID, audit.NewSubscriber(auditRepo))
	go consumer.Consume(consumerCtx)
	defer consumer.Close()
	defer stopConsumer()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.SetupRouter(svc, cfg.JWTSecret, cfg.Debug),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		slog.Info("starting server", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
