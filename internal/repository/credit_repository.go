package repository

import (
	"context"

	"github.com/honeynil/CreditLedgerService/internal/models"
)

type CreditRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Credit, error)
	GetByReference(ctx context.Context, refType models.TransactionKind, refID int64) (*models.Credit, error)
	ListByBranch(ctx context.Context, branchID int64, filter models.CreditFilter) ([]models.Credit, error)
	ListPayments(ctx context.Context, creditID int64) ([]models.CreditPayment, error)
	FindDrift(ctx context.Context, branchID int64) ([]models.Drift, error)
}
