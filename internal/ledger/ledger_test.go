package ledger

import (
	"testing"
	"time"

	"github.com/honeynil/CreditLedgerService/internal/models"
	pkgerrors "github.com/honeynil/CreditLedgerService/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rc = models.RequestContext{UserID: 7, BranchID: 3}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func finalizedSale(t *testing.T, total, advance string) (models.Transaction, models.Credit) {
	t.Helper()
	draft, err := NewDraft(rc, models.KindSale, "S-1", dec(total), dec(advance), "cash")
	require.NoError(t, err)
	draft.ID = 11

	fin, err := Finalize(rc, draft, time.Now())
	require.NoError(t, err)
	require.NotNil(t, fin.Credit)
	credit := *fin.Credit
	credit.ID = 21
	return fin.Transaction, credit
}

func TestValidateAdvance(t *testing.T) {
	t.Run("Negative", func(t *testing.T) {
		err := ValidateAdvance(dec("100"), dec("-1"))
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
		assert.Equal(t, MsgAdvanceNegative, pkgerrors.MessageOf(err))
		assert.Equal(t, "advance_amount", pkgerrors.FieldOf(err))
	})

	t.Run("ExceedsTotal", func(t *testing.T) {
		err := ValidateAdvance(dec("100"), dec("100.01"))
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
		assert.Equal(t, MsgAdvanceExceeds, pkgerrors.MessageOf(err))
	})

	t.Run("Bounds", func(t *testing.T) {
		assert.NoError(t, ValidateAdvance(dec("100"), dec("0")))
		assert.NoError(t, ValidateAdvance(dec("100"), dec("100")))
	})
}

func TestIsAdvanceFullPayment(t *testing.T) {
	draft, err := NewDraft(rc, models.KindSale, "S-1", dec("250.00"), dec("250"), "cash")
	require.NoError(t, err)
	assert.True(t, draft.IsAdvanceFullPayment())

	draft.AdvanceAmount = dec("249.99")
	assert.False(t, draft.IsAdvanceFullPayment())
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, models.StatusPending, DeriveStatus(dec("100"), dec("0")))
	assert.Equal(t, models.StatusPartial, DeriveStatus(dec("100"), dec("0.01")))
	assert.Equal(t, models.StatusPaid, DeriveStatus(dec("100"), dec("100")))
}

func TestNewDraft(t *testing.T) {
	t.Run("KeepsPaidPlusDueEqualTotal", func(t *testing.T) {
		draft, err := NewDraft(rc, models.KindPurchase, "P-9", dec("2000.00"), dec("800.00"), "bank")
		require.NoError(t, err)
		assert.Equal(t, models.StatusDraft, draft.PaymentStatus)
		assert.True(t, draft.PaidAmount.Add(draft.DueAmount).Equal(draft.TotalAmount))
		assert.Equal(t, rc.BranchID, draft.BranchID)
		assert.Equal(t, rc.UserID, draft.CreatedBy)
	})

	t.Run("InvalidKind", func(t *testing.T) {
		_, err := NewDraft(rc, "refund", "X", dec("1"), dec("0"), "cash")
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
	})

	t.Run("ZeroTotal", func(t *testing.T) {
		_, err := NewDraft(rc, models.KindSale, "X", dec("0"), dec("0"), "cash")
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
		assert.Equal(t, MsgTotalNotPositive, pkgerrors.MessageOf(err))
	})

	t.Run("TotalAboveColumnLimit", func(t *testing.T) {
		_, err := NewDraft(rc, models.KindSale, "X", dec("1000000000000"), dec("0"), "cash")
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
		assert.Equal(t, "total_amount", pkgerrors.FieldOf(err))
		assert.Equal(t, MsgTotalTooLarge, pkgerrors.MessageOf(err))
	})

	t.Run("TotalAtColumnLimit", func(t *testing.T) {
		draft, err := NewDraft(rc, models.KindSale, "X", MaxAmount, MaxAmount, "cash")
		require.NoError(t, err)
		assert.True(t, draft.DueAmount.IsZero())
	})
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(MaxAmount))

	err := ValidateAmount(dec("1000000000000.00"))
	assert.ErrorIs(t, err, pkgerrors.ErrValidation)
	assert.Equal(t, "amount", pkgerrors.FieldOf(err))
	assert.Equal(t, MsgAmountTooLarge, pkgerrors.MessageOf(err))
}

func TestFinalize(t *testing.T) {
	t.Run("SaleWithAdvance", func(t *testing.T) {
		draft, err := NewDraft(rc, models.KindSale, "S-1", dec("1000.00"), dec("400.00"), "cash")
		require.NoError(t, err)
		draft.ID = 11

		fin, err := Finalize(rc, draft, time.Now())
		require.NoError(t, err)
		require.NotNil(t, fin.Credit)
		assert.True(t, fin.Credit.Amount.Equal(dec("1000")))
		assert.True(t, fin.Credit.PaidAmount.Equal(dec("400")))
		assert.True(t, fin.Credit.Balance.Equal(dec("600")))
		assert.Equal(t, models.StatusPartial, fin.Credit.Status)
		assert.Equal(t, models.CreditReceivable, fin.Credit.CreditType)
		assert.Equal(t, models.KindSale, fin.Credit.ReferenceType)
		assert.Equal(t, int64(11), fin.Credit.ReferenceID)

		require.NotNil(t, fin.Advance)
		assert.Equal(t, models.PaymentAdvance, fin.Advance.Kind)
		assert.True(t, fin.Advance.Amount.Equal(dec("400")))

		assert.Equal(t, models.StatusPartial, fin.Transaction.PaymentStatus)
		assert.Len(t, fin.Events, 3)
	})

	t.Run("PurchaseIsPayable", func(t *testing.T) {
		draft, err := NewDraft(rc, models.KindPurchase, "P-1", dec("2000.00"), dec("800.00"), "bank")
		require.NoError(t, err)

		fin, err := Finalize(rc, draft, time.Now())
		require.NoError(t, err)
		require.NotNil(t, fin.Credit)
		assert.Equal(t, models.CreditPayable, fin.Credit.CreditType)
		assert.True(t, fin.Credit.Balance.Equal(dec("1200")))
		assert.Equal(t, models.StatusPartial, fin.Credit.Status)
	})

	t.Run("NoAdvanceHasNoAdvancePayment", func(t *testing.T) {
		draft, err := NewDraft(rc, models.KindSale, "S-2", dec("500"), dec("0"), "cash")
		require.NoError(t, err)

		fin, err := Finalize(rc, draft, time.Now())
		require.NoError(t, err)
		require.NotNil(t, fin.Credit)
		assert.Nil(t, fin.Advance)
		assert.Equal(t, models.StatusPending, fin.Credit.Status)
		assert.Equal(t, models.StatusPending, fin.Transaction.PaymentStatus)
	})

	t.Run("FullAdvanceCreatesNoCredit", func(t *testing.T) {
		draft, err := NewDraft(rc, models.KindSale, "S-3", dec("300"), dec("300"), "cash")
		require.NoError(t, err)

		fin, err := Finalize(rc, draft, time.Now())
		require.NoError(t, err)
		assert.Nil(t, fin.Credit)
		assert.Nil(t, fin.Advance)
		assert.Equal(t, models.StatusPaid, fin.Transaction.PaymentStatus)
		assert.True(t, fin.Transaction.DueAmount.IsZero())
	})

	t.Run("AlreadyFinalized", func(t *testing.T) {
		tx, _ := finalizedSale(t, "100", "0")
		_, err := Finalize(rc, tx, time.Now())
		assert.ErrorIs(t, err, pkgerrors.ErrTransactionAlreadyFinalized)
		assert.ErrorIs(t, err, pkgerrors.ErrConflict)
	})
}

func TestApplyPayment(t *testing.T) {
	t.Run("InstallmentSettlesCredit", func(t *testing.T) {
		tx, credit := finalizedSale(t, "1000.00", "400.00")

		out, err := ApplyPayment(rc, credit, tx, Payment{Amount: dec("600.00"), Method: "cash", At: time.Now()})
		require.NoError(t, err)
		assert.True(t, out.Credit.PaidAmount.Equal(dec("1000")))
		assert.True(t, out.Credit.Balance.IsZero())
		assert.Equal(t, models.StatusPaid, out.Credit.Status)
		assert.Equal(t, models.StatusPaid, out.Transaction.PaymentStatus)
		assert.True(t, out.Transaction.DueAmount.IsZero())
		assert.Equal(t, models.PaymentInstallment, out.Payment.Kind)
		assert.Equal(t, credit.ID, out.Payment.CreditID)
		assert.Empty(t, CheckInvariants(out.Credit, out.Transaction))
		require.Len(t, out.Events, 1)
		assert.Equal(t, models.EventPaymentApplied, out.Events[0].Type)
	})

	t.Run("FirstPaymentWithoutAdvanceIsInstallment", func(t *testing.T) {
		tx, credit := finalizedSale(t, "500", "0")

		out, err := ApplyPayment(rc, credit, tx, Payment{Amount: dec("100"), Method: "cash", At: time.Now()})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentInstallment, out.Payment.Kind)
		assert.Equal(t, models.StatusPartial, out.Credit.Status)
		assert.True(t, out.Transaction.PaidAmount.Add(out.Transaction.DueAmount).Equal(out.Transaction.TotalAmount))
	})

	t.Run("OverpaymentRejected", func(t *testing.T) {
		tx, credit := finalizedSale(t, "1000.00", "400.00")
		before := credit

		_, err := ApplyPayment(rc, credit, tx, Payment{Amount: dec("600.01"), At: time.Now()})
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
		assert.Equal(t, MsgOverpayment, pkgerrors.MessageOf(err))
		assert.Equal(t, before, credit)
	})

	t.Run("NonPositiveRejected", func(t *testing.T) {
		tx, credit := finalizedSale(t, "1000.00", "400.00")
		for _, amount := range []string{"0", "-50"} {
			_, err := ApplyPayment(rc, credit, tx, Payment{Amount: dec(amount), At: time.Now()})
			assert.ErrorIs(t, err, pkgerrors.ErrValidation)
			assert.Equal(t, MsgAmountNotPositive, pkgerrors.MessageOf(err))
		}
	})

	t.Run("TooManyDecimals", func(t *testing.T) {
		tx, credit := finalizedSale(t, "10", "0")
		_, err := ApplyPayment(rc, credit, tx, Payment{Amount: dec("1.005"), At: time.Now()})
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
		assert.Equal(t, MsgAmountScale, pkgerrors.MessageOf(err))
	})

	t.Run("SettledCredit", func(t *testing.T) {
		tx, credit := finalizedSale(t, "10", "0")
		out, err := ApplyPayment(rc, credit, tx, Payment{Amount: dec("10"), At: time.Now()})
		require.NoError(t, err)

		_, err = ApplyPayment(rc, out.Credit, out.Transaction, Payment{Amount: dec("1"), At: time.Now()})
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
		assert.Equal(t, MsgOverpayment, pkgerrors.MessageOf(err))
	})

	t.Run("DraftTransaction", func(t *testing.T) {
		tx, credit := finalizedSale(t, "10", "0")
		tx.PaymentStatus = models.StatusDraft
		_, err := ApplyPayment(rc, credit, tx, Payment{Amount: dec("1"), At: time.Now()})
		assert.ErrorIs(t, err, pkgerrors.ErrTransactionNotFinalized)
	})

	t.Run("CentsDoNotDrift", func(t *testing.T) {
		tx, credit := finalizedSale(t, "1.00", "0")
		for i := 0; i < 10; i++ {
			out, err := ApplyPayment(rc, credit, tx, Payment{Amount: dec("0.10"), At: time.Now()})
			require.NoError(t, err)
			credit, tx = out.Credit, out.Transaction
		}
		assert.True(t, credit.Balance.IsZero())
		assert.Equal(t, models.StatusPaid, tx.PaymentStatus)
		assert.Empty(t, CheckInvariants(credit, tx))
	})
}

func TestCheckInvariants(t *testing.T) {
	tx, credit := finalizedSale(t, "1000", "400")
	assert.Empty(t, CheckInvariants(credit, tx))

	tx.PaymentStatus = models.StatusPending
	credit.Balance = dec("500")
	problems := CheckInvariants(credit, tx)
	assert.Contains(t, problems, "credit balance != amount - paid")
	assert.Contains(t, problems, "credit balance != transaction due")
	assert.Contains(t, problems, "credit status != transaction status")
}

func TestWithCreditID(t *testing.T) {
	draft, err := NewDraft(rc, models.KindSale, "S-1", dec("100"), dec("10"), "cash")
	require.NoError(t, err)
	fin, err := Finalize(rc, draft, time.Now())
	require.NoError(t, err)

	events := WithCreditID(fin.Events, 99)
	for _, e := range events {
		if e.Type == models.EventTransactionFinalized {
			assert.Zero(t, e.CreditID)
		} else {
			assert.Equal(t, int64(99), e.CreditID)
		}
	}
}

func TestParsePaymentStatus(t *testing.T) {
	status, ok := models.ParsePaymentStatus("due")
	assert.True(t, ok)
	assert.Equal(t, models.StatusPending, status)

	_, ok = models.ParsePaymentStatus("refunded")
	assert.False(t, ok)
}
