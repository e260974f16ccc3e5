package repository

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/honeynil/CreditLedgerService/internal/repository TransactionRepository,CreditRepository,LedgerStore,LedgerTx,AuditRepository

import (
	"context"

	"github.com/honeynil/CreditLedgerService/internal/models"
	"github.com/shopspring/decimal"
)

// LedgerStore runs fn inside a single database transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type LedgerStore interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
}

// LedgerTx is the set of writes the reconciliation routine needs. Lock methods
// hold a row lock until the surrounding transaction ends.
type LedgerTx interface {
	LockTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	LockCredit(ctx context.Context, id int64) (*models.Credit, error)
	LockCreditByReference(ctx context.Context, refType models.TransactionKind, refID int64) (*models.Credit, error)
	CreateCredit(ctx context.Context, credit *models.Credit) error
	UpdateCredit(ctx context.Context, credit *models.Credit, prevPaid decimal.Decimal) error
	UpdateTransactionPayment(ctx context.Context, tx *models.Transaction) error
	AppendPayment(ctx context.Context, payment *models.CreditPayment) error
}
