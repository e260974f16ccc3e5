package observability

import (
	"context"

	"github.com/honeynil/CreditLedgerService/internal/config"
	"github.com/honeynil/CreditLedgerService/internal/infrastructure/observability"
)

// Setup wires logging, metrics and tracing for the service and returns the
// tracer shutdown func.
func Setup(serviceName string, cfg *config.Config) func(context.Context) error {
	observability.InitLogger(cfg.LogLevel)
	observability.InitMetrics(cfg.MetricsAddr)
	return observability.InitTracing(serviceName, cfg.OTLPEndpoint)
}
