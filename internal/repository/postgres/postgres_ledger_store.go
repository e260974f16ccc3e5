package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/honeynil/CreditLedgerService/internal/models"
	repo "github.com/honeynil/CreditLedgerService/internal/repository"
	pkgerrors "github.com/honeynil/CreditLedgerService/pkg/errors"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

const uniqueViolation = "23505"

type PostgresLedgerStore struct {
	db *sql.DB
}

func NewPostgresLedgerStore(db *sql.DB) *PostgresLedgerStore {
	return &PostgresLedgerStore{db: db}
}

func (s *PostgresLedgerStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx repo.LedgerTx) error) (err error) {
	ctx, done := track(ctx, "ledger-store", "WithinTx")
	defer func() { done(err) }()

	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin transaction", "method", "WithinTx", "error", err)
		return pkgerrors.Persistence("failed to begin transaction", err)
	}

	if err = fn(ctx, &ledgerTx{tx: dbTx}); err != nil {
		if rbErr := dbTx.Rollback(); rbErr != nil {
			slog.Error("rollback failed", "method", "WithinTx", "error", rbErr)
			return &pkgerrors.Error{
				Kind:    pkgerrors.KindPersistence,
				Message: "rollback failed",
				Err:     fmt.Errorf("%v; original error: %w", rbErr, err),
			}
		}
		return pkgerrors.Persistence("ledger transaction failed", err)
	}

	if err = dbTx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "method", "WithinTx", "error", err)
		return pkgerrors.Persistence("failed to commit transaction", err)
	}
	return nil
}

type ledgerTx struct {
	tx *sql.Tx
}

func (t *ledgerTx) LockTransaction(ctx context.Context, id int64) (tx *models.Transaction, err error) {
	ctx, done := track(ctx, "ledger-store", "LockTransaction", attribute.Int64("transaction_id", id))
	defer func() { done(err) }()

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 FOR UPDATE`
	tx, err = scanTransaction(t.tx.QueryRowContext(ctx, query, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock transaction: %w", err)
	}
	return tx, nil
}

func (t *ledgerTx) LockCredit(ctx context.Context, id int64) (c *models.Credit, err error) {
	ctx, done := track(ctx, "ledger-store", "LockCredit", attribute.Int64("credit_id", id))
	defer func() { done(err) }()

	query := `SELECT ` + creditColumns + ` FROM credits WHERE id = $1 FOR UPDATE`
	c, err = scanCredit(t.tx.QueryRowContext(ctx, query, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrCreditNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock credit: %w", err)
	}
	return c, nil
}

func (t *ledgerTx) LockCreditByReference(ctx context.Context, refType models.TransactionKind, refID int64) (c *models.Credit, err error) {
	ctx, done := track(ctx, "ledger-store", "LockCreditByReference",
		attribute.String("reference_type", string(refType)),
		attribute.Int64("reference_id", refID),
	)
	defer func() { done(err) }()

	query := `SELECT ` + creditColumns + ` FROM credits WHERE reference_type = $1 AND reference_id = $2 FOR UPDATE`
	c, err = scanCredit(t.tx.QueryRowContext(ctx, query, refType, refID))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrCreditNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock credit by reference: %w", err)
	}
	return c, nil
}

func (t *ledgerTx) CreateCredit(ctx context.Context, c *models.Credit) (err error) {
	if c == nil {
		return pkgerrors.ErrNilCredit
	}
	ctx, done := track(ctx, "ledger-store", "CreateCredit", attribute.Int64("reference_id", c.ReferenceID))
	defer func() { done(err) }()

	query := `INSERT INTO credits (branch_id, amount, paid_amount, balance, credit_type, status, reference_type, reference_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at`
	err = t.tx.QueryRowContext(ctx, query,
		c.BranchID, c.Amount, c.PaidAmount, c.Balance, c.CreditType, c.Status, c.ReferenceType, c.ReferenceID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if stderrors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			slog.Warn("credit already exists", "method", "CreateCredit", "reference_type", c.ReferenceType, "reference_id", c.ReferenceID)
			return pkgerrors.ErrCreditAlreadyExists
		}
		return fmt.Errorf("failed to create credit: %w", err)
	}
	return nil
}

// UpdateCredit writes the new totals only if paid_amount still holds prevPaid.
func (t *ledgerTx) UpdateCredit(ctx context.Context, c *models.Credit, prevPaid decimal.Decimal) (err error) {
	if c == nil {
		return pkgerrors.ErrNilCredit
	}
	ctx, done := track(ctx, "ledger-store", "UpdateCredit", attribute.Int64("credit_id", c.ID))
	defer func() { done(err) }()

	query := `UPDATE credits SET paid_amount = $1, balance = $2, status = $3, updated_at = $4 WHERE id = $5 AND paid_amount = $6`
	res, err := t.tx.ExecContext(ctx, query, c.PaidAmount, c.Balance, c.Status, c.UpdatedAt, c.ID, prevPaid)
	if err != nil {
		return fmt.Errorf("failed to update credit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update credit: %w", err)
	}
	if n == 0 {
		slog.Warn("stale credit update", "method", "UpdateCredit", "credit_id", c.ID)
		return pkgerrors.ErrStaleCredit
	}
	return nil
}

func (t *ledgerTx) UpdateTransactionPayment(ctx context.Context, tx *models.Transaction) (err error) {
	if tx == nil {
		return pkgerrors.ErrNilTransaction
	}
	ctx, done := track(ctx, "ledger-store", "UpdateTransactionPayment", attribute.Int64("transaction_id", tx.ID))
	defer func() { done(err) }()

	query := `UPDATE transactions SET paid_amount = $1, due_amount = $2, payment_status = $3, updated_at = $4 WHERE id = $5`
	res, err := t.tx.ExecContext(ctx, query, tx.PaidAmount, tx.DueAmount, tx.PaymentStatus, tx.UpdatedAt, tx.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update transaction payment: %w", err)
	}
	if n == 0 {
		return pkgerrors.ErrTransactionNotFound
	}
	return nil
}

func (t *ledgerTx) AppendPayment(ctx context.Context, p *models.CreditPayment) (err error) {
	if p == nil {
		return pkgerrors.ErrNilPayment
	}
	ctx, done := track(ctx, "ledger-store", "AppendPayment",
		attribute.Int64("credit_id", p.CreditID),
		attribute.String("kind", string(p.Kind)),
	)
	defer func() { done(err) }()

	var bankID sql.NullInt64
	if p.BankAccountID != nil {
		bankID = sql.NullInt64{Int64: *p.BankAccountID, Valid: true}
	}
	query := `INSERT INTO credit_payments (credit_id, amount, kind, payment_method, bank_account_id, transaction_number, paid_by, paid_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err = t.tx.QueryRowContext(ctx, query,
		p.CreditID, p.Amount, p.Kind, p.PaymentMethod, bankID, p.TransactionNumber, p.PaidBy, p.PaidAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to append credit payment: %w", err)
	}
	return nil
}
