package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/honeynil/CreditLedgerService/internal/models"
	pkgerrors "github.com/honeynil/CreditLedgerService/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

const transactionColumns = `id, kind, branch_id, reference_no, total_amount, paid_amount, due_amount, advance_amount, payment_status, payment_method, created_by, created_at, updated_at`

type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewPostgresTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var tx models.Transaction
	err := row.Scan(
		&tx.ID,
		&tx.Kind,
		&tx.BranchID,
		&tx.ReferenceNo,
		&tx.TotalAmount,
		&tx.PaidAmount,
		&tx.DueAmount,
		&tx.AdvanceAmount,
		&tx.PaymentStatus,
		&tx.PaymentMethod,
		&tx.CreatedBy,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *PostgresTransactionRepository) Create(ctx context.Context, tx *models.Transaction) (id int64, err error) {
	if tx == nil {
		err = pkgerrors.ErrNilTransaction
		slog.Error("failed to create transaction", "method", "Create", "error", err)
		return 0, err
	}
	ctx, done := track(ctx, "transaction-repository", "CreateTransaction",
		attribute.String("kind", string(tx.Kind)),
		attribute.Int64("branch_id", tx.BranchID),
	)
	defer func() { done(err) }()

	if !tx.Kind.Valid() {
		err = pkgerrors.ErrInvalidTransaction
		slog.Error("invalid transaction kind", "method", "Create", "kind", tx.Kind, "error", err)
		return 0, err
	}
	if tx.PaymentStatus != models.StatusDraft {
		err = pkgerrors.ErrInvalidStatus
		slog.Error("new transaction must be a draft", "method", "Create", "status", tx.PaymentStatus, "error", err)
		return 0, err
	}

	query := `INSERT INTO transactions (kind, branch_id, reference_no, total_amount, paid_amount, due_amount, advance_amount, payment_status, payment_method, created_by) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at, updated_at`
	err = r.db.QueryRowContext(ctx, query,
		tx.Kind, tx.BranchID, tx.ReferenceNo,
		tx.TotalAmount, tx.PaidAmount, tx.DueAmount, tx.AdvanceAmount,
		tx.PaymentStatus, tx.PaymentMethod, tx.CreatedBy,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		slog.Error("failed to create transaction", "method", "Create", "branch_id", tx.BranchID, "kind", tx.Kind, "error", err)
		return 0, fmt.Errorf("failed to create transaction: %w", err)
	}

	slog.Info("transaction created", "method", "Create", "id", tx.ID, "branch_id", tx.BranchID, "kind", tx.Kind, "total_amount", tx.TotalAmount)
	return tx.ID, nil
}

func (r *PostgresTransactionRepository) GetByID(ctx context.Context, id int64) (tx *models.Transaction, err error) {
	ctx, done := track(ctx, "transaction-repository", "GetTransactionByID", attribute.Int64("transaction_id", id))
	defer func() { done(err) }()

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	tx, err = scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		slog.Warn("transaction not found", "method", "GetByID", "transaction_id", id)
		return nil, pkgerrors.ErrTransactionNotFound
	}
	if err != nil {
		slog.Error("failed to get transaction by id", "method", "GetByID", "transaction_id", id, "error", err)
		return nil, fmt.Errorf("failed to get transaction by id: %w", err)
	}
	return tx, nil
}

func (r *PostgresTransactionRepository) ListByBranch(ctx context.Context, branchID int64, limit, offset int) (list []models.Transaction, err error) {
	ctx, done := track(ctx, "transaction-repository", "ListTransactions", attribute.Int64("branch_id", branchID))
	defer func() { done(err) }()

	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE branch_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, branchID, limit, offset)
	if err != nil {
		slog.Error("failed to list transactions", "method", "ListByBranch", "branch_id", branchID, "error", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tx *models.Transaction
		tx, err = scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		list = append(list, *tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return list, nil
}
