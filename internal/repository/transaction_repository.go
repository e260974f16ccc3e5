package repository

import (
	"context"

	"github.com/honeynil/CreditLedgerService/internal/models"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]models.Transaction, error)
}
