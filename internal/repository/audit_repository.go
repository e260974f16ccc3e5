package repository

import (
	"context"

	"github.com/honeynil/CreditLedgerService/internal/models"
)

type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditEntry) error
}
