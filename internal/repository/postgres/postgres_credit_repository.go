package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/honeynil/CreditLedgerService/internal/ledger"
	"github.com/honeynil/CreditLedgerService/internal/models"
	pkgerrors "github.com/honeynil/CreditLedgerService/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

const (
	creditColumns  = `id, branch_id, amount, paid_amount, balance, credit_type, status, reference_type, reference_id, created_at, updated_at`
	paymentColumns = `id, credit_id, amount, kind, payment_method, bank_account_id, transaction_number, paid_by, paid_at`
)

type PostgresCreditRepository struct {
	db *sql.DB
}

func NewPostgresCreditRepository(db *sql.DB) *PostgresCreditRepository {
	return &PostgresCreditRepository{db: db}
}

func scanCredit(row rowScanner) (*models.Credit, error) {
	var c models.Credit
	err := row.Scan(
		&c.ID,
		&c.BranchID,
		&c.Amount,
		&c.PaidAmount,
		&c.Balance,
		&c.CreditType,
		&c.Status,
		&c.ReferenceType,
		&c.ReferenceID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanPayment(row rowScanner) (*models.CreditPayment, error) {
	var (
		p      models.CreditPayment
		bankID sql.NullInt64
	)
	err := row.Scan(&p.ID, &p.CreditID, &p.Amount, &p.Kind, &p.PaymentMethod, &bankID, &p.TransactionNumber, &p.PaidBy, &p.PaidAt)
	if err != nil {
		return nil, err
	}
	if bankID.Valid {
		p.BankAccountID = &bankID.Int64
	}
	return &p, nil
}

func (r *PostgresCreditRepository) GetByID(ctx context.Context, id int64) (c *models.Credit, err error) {
	ctx, done := track(ctx, "credit-repository", "GetCreditByID", attribute.Int64("credit_id", id))
	defer func() { done(err) }()

	query := `SELECT ` + creditColumns + ` FROM credits WHERE id = $1`
	c, err = scanCredit(r.db.QueryRowContext(ctx, query, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		slog.Warn("credit not found", "method", "GetByID", "credit_id", id)
		return nil, pkgerrors.ErrCreditNotFound
	}
	if err != nil {
		slog.Error("failed to get credit by id", "method", "GetByID", "credit_id", id, "error", err)
		return nil, fmt.Errorf("failed to get credit by id: %w", err)
	}
	return c, nil
}

func (r *PostgresCreditRepository) GetByReference(ctx context.Context, refType models.TransactionKind, refID int64) (c *models.Credit, err error) {
	ctx, done := track(ctx, "credit-repository", "GetCreditByReference",
		attribute.String("reference_type", string(refType)),
		attribute.Int64("reference_id", refID),
	)
	defer func() { done(err) }()

	query := `SELECT ` + creditColumns + ` FROM credits WHERE reference_type = $1 AND reference_id = $2`
	c, err = scanCredit(r.db.QueryRowContext(ctx, query, refType, refID))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrCreditNotFound
	}
	if err != nil {
		slog.Error("failed to get credit by reference", "method", "GetByReference", "reference_type", refType, "reference_id", refID, "error", err)
		return nil, fmt.Errorf("failed to get credit by reference: %w", err)
	}
	return c, nil
}

func (r *PostgresCreditRepository) ListByBranch(ctx context.Context, branchID int64, filter models.CreditFilter) (list []models.Credit, err error) {
	ctx, done := track(ctx, "credit-repository", "ListCredits", attribute.Int64("branch_id", branchID))
	defer func() { done(err) }()

	var (
		where = []string{"branch_id = $1"}
		args  = []any{branchID}
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CreditType != "" {
		args = append(args, filter.CreditType)
		where = append(where, fmt.Sprintf("credit_type = $%d", len(args)))
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM credits WHERE %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		creditColumns, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Error("failed to list credits", "method", "ListByBranch", "branch_id", branchID, "error", err)
		return nil, fmt.Errorf("failed to list credits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c *models.Credit
		c, err = scanCredit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit: %w", err)
		}
		list = append(list, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list credits: %w", err)
	}
	return list, nil
}

func (r *PostgresCreditRepository) ListPayments(ctx context.Context, creditID int64) (list []models.CreditPayment, err error) {
	ctx, done := track(ctx, "credit-repository", "ListCreditPayments", attribute.Int64("credit_id", creditID))
	defer func() { done(err) }()

	query := `SELECT ` + paymentColumns + ` FROM credit_payments WHERE credit_id = $1 ORDER BY paid_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, creditID)
	if err != nil {
		slog.Error("failed to list credit payments", "method", "ListPayments", "credit_id", creditID, "error", err)
		return nil, fmt.Errorf("failed to list credit payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p *models.CreditPayment
		p, err = scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit payment: %w", err)
		}
		list = append(list, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list credit payments: %w", err)
	}
	return list, nil
}

// FindDrift returns credits of a branch whose stored state disagrees with
// their transaction or with their own derived status.
func (r *PostgresCreditRepository) FindDrift(ctx context.Context, branchID int64) (list []models.Drift, err error) {
	ctx, done := track(ctx, "credit-repository", "FindCreditDrift", attribute.Int64("branch_id", branchID))
	defer func() { done(err) }()

	query := `
		SELECT c.id, c.amount, c.paid_amount, c.balance, c.status,
		       t.id, t.total_amount, t.paid_amount, t.due_amount, t.payment_status
		FROM credits c
		JOIN transactions t ON t.id = c.reference_id AND t.kind = c.reference_type
		WHERE c.branch_id = $1
		  AND (c.status <> t.payment_status
		       OR c.balance <> t.due_amount
		       OR c.amount <> t.total_amount
		       OR c.balance <> c.amount - c.paid_amount
		       OR t.paid_amount + t.due_amount <> t.total_amount
		       OR c.status <> CASE WHEN c.balance <= 0 THEN 'paid' WHEN c.paid_amount > 0 THEN 'partial' ELSE 'pending' END)
		ORDER BY c.id`
	rows, err := r.db.QueryContext(ctx, query, branchID)
	if err != nil {
		slog.Error("failed to find credit drift", "method", "FindDrift", "branch_id", branchID, "error", err)
		return nil, fmt.Errorf("failed to find credit drift: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c  models.Credit
			tx models.Transaction
		)
		if err = rows.Scan(
			&c.ID, &c.Amount, &c.PaidAmount, &c.Balance, &c.Status,
			&tx.ID, &tx.TotalAmount, &tx.PaidAmount, &tx.DueAmount, &tx.PaymentStatus,
		); err != nil {
			return nil, fmt.Errorf("failed to scan credit drift: %w", err)
		}
		list = append(list, models.Drift{
			CreditID:          c.ID,
			TransactionID:     tx.ID,
			CreditStatus:      c.Status,
			TransactionStatus: tx.PaymentStatus,
			CreditBalance:     c.Balance,
			TransactionDue:    tx.DueAmount,
			Problems:          ledger.CheckInvariants(c, tx),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to find credit drift: %w", err)
	}
	if len(list) > 0 {
		slog.Warn("credit drift detected", "method", "FindDrift", "branch_id", branchID, "count", len(list))
	}
	return list, nil
}
