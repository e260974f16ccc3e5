package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/honeynil/CreditLedgerService/internal/models"
	repository "github.com/honeynil/CreditLedgerService/internal/repository/postgres"
	pkgerrors "github.com/honeynil/CreditLedgerService/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transactionColumns = `id, kind, branch_id, reference_no, total_amount, paid_amount, due_amount, advance_amount, payment_status, payment_method, created_by, created_at, updated_at`

var transactionRowColumns = []string{
	"id", "kind", "branch_id", "reference_no", "total_amount", "paid_amount", "due_amount",
	"advance_amount", "payment_status", "payment_method", "created_by", "created_at", "updated_at",
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPostgresTransactionRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresTransactionRepository(db)
	ctx := context.Background()

	insert := regexp.QuoteMeta(`INSERT INTO transactions (kind, branch_id, reference_no, total_amount, paid_amount, due_amount, advance_amount, payment_status, payment_method, created_by) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at, updated_at`)

	draft := func() *models.Transaction {
		return &models.Transaction{
			Kind:          models.KindSale,
			BranchID:      3,
			ReferenceNo:   "S-11",
			TotalAmount:   dec("1000.00"),
			PaidAmount:    dec("400.00"),
			DueAmount:     dec("600.00"),
			AdvanceAmount: dec("400.00"),
			PaymentStatus: models.StatusDraft,
			PaymentMethod: "cash",
			CreatedBy:     7,
		}
	}

	t.Run("NilTransaction", func(t *testing.T) {
		id, err := repo.Create(ctx, nil)
		assert.Equal(t, int64(0), id)
		assert.ErrorIs(t, err, pkgerrors.ErrNilTransaction)
	})

	t.Run("InvalidKind", func(t *testing.T) {
		tx := draft()
		tx.Kind = "refund"
		id, err := repo.Create(ctx, tx)
		assert.Equal(t, int64(0), id)
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidTransaction)
	})

	t.Run("NotDraft", func(t *testing.T) {
		tx := draft()
		tx.PaymentStatus = models.StatusPartial
		id, err := repo.Create(ctx, tx)
		assert.Equal(t, int64(0), id)
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidStatus)
	})

	t.Run("Success", func(t *testing.T) {
		tx := draft()
		now := time.Now()
		mock.ExpectQuery(insert).
			WithArgs("sale", int64(3), "S-11", tx.TotalAmount, tx.PaidAmount, tx.DueAmount, tx.AdvanceAmount, "draft", "cash", int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))

		id, err := repo.Create(ctx, tx)
		assert.NoError(t, err)
		assert.Equal(t, int64(11), id)
		assert.Equal(t, int64(11), tx.ID)
		assert.Equal(t, now, tx.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		mock.ExpectQuery(insert).WillReturnError(fmt.Errorf("database error"))

		id, err := repo.Create(ctx, draft())
		assert.Equal(t, int64(0), id)
		assert.Contains(t, err.Error(), "failed to create transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresTransactionRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresTransactionRepository(db)
	ctx := context.Background()

	query := regexp.QuoteMeta(`SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(query).
			WithArgs(int64(11)).
			WillReturnRows(sqlmock.NewRows(transactionRowColumns).
				AddRow(11, "purchase", 3, "P-1", "2000.00", "800.00", "1200.00", "800.00", "partial", "bank", 7, now, now))

		tx, err := repo.GetByID(ctx, 11)
		require.NoError(t, err)
		assert.Equal(t, int64(11), tx.ID)
		assert.Equal(t, models.KindPurchase, tx.Kind)
		assert.Equal(t, models.StatusPartial, tx.PaymentStatus)
		assert.True(t, tx.DueAmount.Equal(dec("1200")))
		assert.True(t, tx.PaidAmount.Add(tx.DueAmount).Equal(tx.TotalAmount))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("TransactionNotFound", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(11)).WillReturnError(sql.ErrNoRows)

		tx, err := repo.GetByID(ctx, 11)
		assert.Nil(t, tx)
		assert.ErrorIs(t, err, pkgerrors.ErrTransactionNotFound)
		assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(11)).WillReturnError(fmt.Errorf("database error"))

		tx, err := repo.GetByID(ctx, 11)
		assert.Nil(t, tx)
		assert.Contains(t, err.Error(), "failed to get transaction by id")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresTransactionRepository_ListByBranch(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresTransactionRepository(db)
	ctx := context.Background()

	query := regexp.QuoteMeta(`SELECT ` + transactionColumns + ` FROM transactions WHERE branch_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`)

	t.Run("DefaultLimit", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(query).
			WithArgs(int64(3), 50, 0).
			WillReturnRows(sqlmock.NewRows(transactionRowColumns).
				AddRow(12, "sale", 3, "S-12", "50.00", "0", "50.00", "0", "draft", "cash", 7, now, now).
				AddRow(11, "sale", 3, "S-11", "1000.00", "400.00", "600.00", "400.00", "partial", "cash", 7, now, now))

		list, err := repo.ListByBranch(ctx, 3, 0, 0)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, int64(12), list[0].ID)
		assert.Equal(t, models.StatusDraft, list[0].PaymentStatus)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(3), 10, 20).WillReturnError(fmt.Errorf("database error"))

		list, err := repo.ListByBranch(ctx, 3, 10, 20)
		assert.Nil(t, list)
		assert.Contains(t, err.Error(), "failed to list transactions")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
