package repository_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/honeynil/CreditLedgerService/internal/models"
	repo "github.com/honeynil/CreditLedgerService/internal/repository"
	repository "github.com/honeynil/CreditLedgerService/internal/repository/postgres"
	pkgerrors "github.com/honeynil/CreditLedgerService/pkg/errors"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lockCredit      = regexp.QuoteMeta(`SELECT ` + creditColumns + ` FROM credits WHERE id = $1 FOR UPDATE`)
	lockTransaction = regexp.QuoteMeta(`SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 FOR UPDATE`)
	updateCredit    = regexp.QuoteMeta(`UPDATE credits SET paid_amount = $1, balance = $2, status = $3, updated_at = $4 WHERE id = $5 AND paid_amount = $6`)
	updateTx        = regexp.QuoteMeta(`UPDATE transactions SET paid_amount = $1, due_amount = $2, payment_status = $3, updated_at = $4 WHERE id = $5`)
	insertPayment   = regexp.QuoteMeta(`INSERT INTO credit_payments (credit_id, amount, kind, payment_method, bank_account_id, transaction_number, paid_by, paid_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`)
	insertCredit    = regexp.QuoteMeta(`INSERT INTO credits (branch_id, amount, paid_amount, balance, credit_type, status, reference_type, reference_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at`)
)

func TestPostgresLedgerStore_WithinTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	store := repository.NewPostgresLedgerStore(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("PaymentCommits", func(t *testing.T) {
		bank := int64(5)
		mock.ExpectBegin()
		mock.ExpectQuery(lockCredit).
			WithArgs(int64(21)).
			WillReturnRows(sqlmock.NewRows(creditRowColumns).
				AddRow(21, 3, "1000.00", "400.00", "600.00", "receivable", "partial", "sale", 11, now, now))
		mock.ExpectQuery(lockTransaction).
			WithArgs(int64(11)).
			WillReturnRows(sqlmock.NewRows(transactionRowColumns).
				AddRow(11, "sale", 3, "S-11", "1000.00", "400.00", "600.00", "400.00", "partial", "cash", 7, now, now))
		mock.ExpectExec(updateCredit).
			WithArgs(dec("1000"), dec("0"), "paid", now, int64(21), dec("400")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(updateTx).
			WithArgs(dec("1000"), dec("0"), "paid", now, int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(insertPayment).
			WithArgs(int64(21), dec("600"), "installment", "bank", int64(5), "TRX-1", int64(7), now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(77))
		mock.ExpectCommit()

		var paymentID int64
		err := store.WithinTx(ctx, func(ctx context.Context, tx repo.LedgerTx) error {
			credit, err := tx.LockCredit(ctx, 21)
			if err != nil {
				return err
			}
			txn, err := tx.LockTransaction(ctx, credit.ReferenceID)
			if err != nil {
				return err
			}
			prev := credit.PaidAmount
			credit.PaidAmount = dec("1000")
			credit.Balance = dec("0")
			credit.Status = models.StatusPaid
			credit.UpdatedAt = now
			if err := tx.UpdateCredit(ctx, credit, prev); err != nil {
				return err
			}
			txn.PaidAmount = dec("1000")
			txn.DueAmount = dec("0")
			txn.PaymentStatus = models.StatusPaid
			txn.UpdatedAt = now
			if err := tx.UpdateTransactionPayment(ctx, txn); err != nil {
				return err
			}
			p := &models.CreditPayment{
				CreditID:          21,
				Amount:            dec("600"),
				Kind:              models.PaymentInstallment,
				PaymentMethod:     "bank",
				BankAccountID:     &bank,
				TransactionNumber: "TRX-1",
				PaidBy:            7,
				PaidAt:            now,
			}
			if err := tx.AppendPayment(ctx, p); err != nil {
				return err
			}
			paymentID = p.ID
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, int64(77), paymentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("StaleCreditRollsBack", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(updateCredit).
			WithArgs(dec("500"), dec("500"), "partial", now, int64(21), dec("400")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := store.WithinTx(ctx, func(ctx context.Context, tx repo.LedgerTx) error {
			return tx.UpdateCredit(ctx, &models.Credit{
				ID:         21,
				PaidAmount: dec("500"),
				Balance:    dec("500"),
				Status:     models.StatusPartial,
				UpdatedAt:  now,
			}, dec("400"))
		})
		assert.ErrorIs(t, err, pkgerrors.ErrStaleCredit)
		assert.ErrorIs(t, err, pkgerrors.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("LockMissingTransaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockTransaction).WithArgs(int64(99)).WillReturnRows(sqlmock.NewRows(transactionRowColumns))
		mock.ExpectRollback()

		err := store.WithinTx(ctx, func(ctx context.Context, tx repo.LedgerTx) error {
			_, err := tx.LockTransaction(ctx, 99)
			return err
		})
		assert.ErrorIs(t, err, pkgerrors.ErrTransactionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateCredit", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(insertCredit).
			WithArgs(int64(3), dec("1000"), dec("400"), dec("600"), "receivable", "partial", "sale", int64(11)).
			WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
		mock.ExpectRollback()

		err := store.WithinTx(ctx, func(ctx context.Context, tx repo.LedgerTx) error {
			return tx.CreateCredit(ctx, &models.Credit{
				BranchID:      3,
				Amount:        dec("1000"),
				PaidAmount:    dec("400"),
				Balance:       dec("600"),
				CreditType:    models.CreditReceivable,
				Status:        models.StatusPartial,
				ReferenceType: models.KindSale,
				ReferenceID:   11,
			})
		})
		assert.ErrorIs(t, err, pkgerrors.ErrCreditAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DriverErrorIsPersistence", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(updateTx).WillReturnError(fmt.Errorf("connection reset by peer"))
		mock.ExpectRollback()

		err := store.WithinTx(ctx, func(ctx context.Context, tx repo.LedgerTx) error {
			return tx.UpdateTransactionPayment(ctx, &models.Transaction{ID: 11, UpdatedAt: now})
		})
		assert.ErrorIs(t, err, pkgerrors.ErrPersistence)
		assert.Contains(t, err.Error(), "connection reset by peer")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackFailureKeepsCause", func(t *testing.T) {
		cause := errors.New("boom")
		mock.ExpectBegin()
		mock.ExpectRollback().WillReturnError(fmt.Errorf("rollback error"))

		err := store.WithinTx(ctx, func(ctx context.Context, tx repo.LedgerTx) error {
			return cause
		})
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, pkgerrors.ErrPersistence)
		assert.Contains(t, err.Error(), "rollback failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackFailureOverridesTypedCause", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback().WillReturnError(fmt.Errorf("connection lost"))

		err := store.WithinTx(ctx, func(ctx context.Context, tx repo.LedgerTx) error {
			return pkgerrors.ErrStaleCredit
		})
		assert.Equal(t, pkgerrors.KindPersistence, pkgerrors.KindOf(err))
		assert.Equal(t, "rollback failed", pkgerrors.MessageOf(err))
		assert.ErrorIs(t, err, pkgerrors.ErrStaleCredit)
		assert.Contains(t, err.Error(), "connection lost")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BeginFails", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(fmt.Errorf("too many connections"))

		called := false
		err := store.WithinTx(ctx, func(ctx context.Context, tx repo.LedgerTx) error {
			called = true
			return nil
		})
		assert.False(t, called)
		assert.ErrorIs(t, err, pkgerrors.ErrPersistence)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CommitFails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(fmt.Errorf("commit error"))

		err := store.WithinTx(ctx, func(ctx context.Context, tx repo.LedgerTx) error {
			return nil
		})
		assert.ErrorIs(t, err, pkgerrors.ErrPersistence)
		assert.Contains(t, err.Error(), "failed to commit transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
