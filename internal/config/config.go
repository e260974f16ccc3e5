package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresDSN  string
	RedisAddr    string
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string
	JWTSecret    string
	HTTPAddr     string
	MetricsAddr  string
	OTLPEndpoint string
	LogLevel     string
	Debug        bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load .env file, using default values", "error", err)
	}

	cfg := &Config{
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKER")),
		KafkaTopic:   os.Getenv("KAFKA_TOPIC"),
		KafkaGroupID: os.Getenv("KAFKA_GROUP_ID"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		HTTPAddr:     os.Getenv("HTTP_ADDR"),
		MetricsAddr:  os.Getenv("METRICS_ADDR"),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}
	cfg.Debug, _ = strconv.ParseBool(os.Getenv("APP_DEBUG"))

	if cfg.PostgresDSN == "" {
		cfg.PostgresDSN = "host=localhost user=postgres password=postgres dbname=ledger sslmode=disable"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if len(cfg.KafkaBrokers) == 0 {
		cfg.KafkaBrokers = []string{"localhost:9092"}
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = "ledger-events"
	}
	if cfg.KafkaGroupID == "" {
		cfg.KafkaGroupID = "ledger-audit"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "supersecret"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	slog.Info("config loaded", "redis_addr", cfg.RedisAddr, "kafka_brokers", cfg.KafkaBrokers, "kafka_topic", cfg.KafkaTopic, "http_addr", cfg.HTTPAddr, "debug", cfg.Debug)
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
