// Package ledger holds the pure credit reconciliation rules. Nothing here
// touches storage: callers load state, call into the package and persist the
// returned records.
package ledger

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/honeynil/CreditLedgerService/internal/models"
	pkgerrors "github.com/honeynil/CreditLedgerService/pkg/errors"
	"github.com/shopspring/decimal"
)

const moneyScale = 2

// MaxAmount is the largest value a NUMERIC(14,2) money column holds.
var MaxAmount = decimal.RequireFromString("999999999999.99")

const (
	MsgAmountNotPositive = "Payment amount must be greater than 0."
	MsgAmountScale       = "Payment amount must have at most 2 decimal places."
	MsgOverpayment       = "Payment amount cannot exceed the remaining balance."
	MsgAdvanceNegative   = "Advance amount must be greater than or equal to 0."
	MsgAdvanceExceeds    = "Advance amount cannot exceed total amount."
	MsgTotalNotPositive  = "Total amount must be greater than 0."
	MsgAmountTooLarge    = "Payment amount cannot exceed 999999999999.99."
	MsgTotalTooLarge     = "Total amount cannot exceed 999999999999.99."
)

// Payment is a cash movement requested by the caller.
type Payment struct {
	Amount            decimal.Decimal
	Method            string
	BankAccountID     *int64
	TransactionNumber string
	At                time.Time
}

// Outcome is the state produced by applying one installment.
type Outcome struct {
	Credit      models.Credit
	Transaction models.Transaction
	Payment     models.CreditPayment
	Events      []models.Event
}

// Finalization is the state produced when a draft transaction is finalized.
// Credit and Advance are nil when the transaction was paid in full up front.
type Finalization struct {
	Transaction models.Transaction
	Credit      *models.Credit
	Advance     *models.CreditPayment
	Events      []models.Event
}

func hasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(moneyScale))
}

// ValidateAmount checks a payment amount before any state is read.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return pkgerrors.Validation("amount", MsgAmountNotPositive)
	}
	if amount.GreaterThan(MaxAmount) {
		return pkgerrors.Validation("amount", MsgAmountTooLarge)
	}
	if !hasMoneyScale(amount) {
		return pkgerrors.Validation("amount", MsgAmountScale)
	}
	return nil
}

// ValidateTotal checks the total of a new transaction.
func ValidateTotal(total decimal.Decimal) error {
	if !total.IsPositive() {
		return pkgerrors.Validation("total_amount", MsgTotalNotPositive)
	}
	if total.GreaterThan(MaxAmount) {
		return pkgerrors.Validation("total_amount", MsgTotalTooLarge)
	}
	if !hasMoneyScale(total) {
		return pkgerrors.Validation("total_amount", "Total amount must have at most 2 decimal places.")
	}
	return nil
}

// ValidateAdvance enforces 0 <= advance <= total.
func ValidateAdvance(total, advance decimal.Decimal) error {
	if advance.IsNegative() {
		return pkgerrors.Validation("advance_amount", MsgAdvanceNegative)
	}
	if advance.GreaterThan(total) {
		return pkgerrors.Validation("advance_amount", MsgAdvanceExceeds)
	}
	if !hasMoneyScale(advance) {
		return pkgerrors.Validation("advance_amount", "Advance amount must have at most 2 decimal places.")
	}
	return nil
}

// DeriveStatus classifies a credit (or finalized transaction) from its amount
// and what has been paid so far.
func DeriveStatus(amount, paid decimal.Decimal) models.PaymentStatus {
	balance := amount.Sub(paid)
	switch {
	case !balance.IsPositive():
		return models.StatusPaid
	case paid.IsPositive():
		return models.StatusPartial
	default:
		return models.StatusPending
	}
}

// NewDraft builds a draft transaction. The advance is counted as paid from the
// start so that paid + due always equals total.
func NewDraft(rc models.RequestContext, kind models.TransactionKind, referenceNo string, total, advance decimal.Decimal, method string) (models.Transaction, error) {
	if !kind.Valid() {
		return models.Transaction{}, pkgerrors.Validation("kind", "Transaction kind must be sale or purchase.")
	}
	if err := ValidateTotal(total); err != nil {
		return models.Transaction{}, err
	}
	if err := ValidateAdvance(total, advance); err != nil {
		return models.Transaction{}, err
	}
	return models.Transaction{
		Kind:          kind,
		BranchID:      rc.BranchID,
		ReferenceNo:   referenceNo,
		TotalAmount:   total,
		PaidAmount:    advance,
		DueAmount:     total.Sub(advance),
		AdvanceAmount: advance,
		PaymentStatus: models.StatusDraft,
		PaymentMethod: method,
		CreatedBy:     rc.UserID,
	}, nil
}

// Finalize moves a draft out of draft. A credit is opened unless the advance
// covers the total; a non-zero advance is recorded as the credit's first
// payment with kind advance.
func Finalize(rc models.RequestContext, tx models.Transaction, at time.Time) (Finalization, error) {
	if !tx.IsDraft() {
		return Finalization{}, pkgerrors.ErrTransactionAlreadyFinalized
	}
	if err := ValidateAdvance(tx.TotalAmount, tx.PaidAmount); err != nil {
		return Finalization{}, err
	}

	out := Finalization{Transaction: tx}
	out.Transaction.DueAmount = tx.TotalAmount.Sub(tx.PaidAmount)
	out.Transaction.PaymentStatus = DeriveStatus(tx.TotalAmount, tx.PaidAmount)
	out.Transaction.UpdatedAt = at
	out.Events = append(out.Events, newEvent(rc, models.EventTransactionFinalized, 0, tx.ID, at, map[string]any{
		"kind":           tx.Kind,
		"total_amount":   tx.TotalAmount,
		"paid_amount":    tx.PaidAmount,
		"payment_status": out.Transaction.PaymentStatus,
	}))

	if out.Transaction.PaymentStatus == models.StatusPaid {
		return out, nil
	}

	credit := models.Credit{
		BranchID:      tx.BranchID,
		Amount:        tx.TotalAmount,
		PaidAmount:    tx.PaidAmount,
		Balance:       out.Transaction.DueAmount,
		CreditType:    tx.Kind.CreditType(),
		Status:        out.Transaction.PaymentStatus,
		ReferenceType: tx.Kind,
		ReferenceID:   tx.ID,
		CreatedAt:     at,
		UpdatedAt:     at,
	}
	out.Credit = &credit
	out.Events = append(out.Events, newEvent(rc, models.EventCreditFinalized, 0, tx.ID, at, map[string]any{
		"credit_type": credit.CreditType,
		"amount":      credit.Amount,
		"paid_amount": credit.PaidAmount,
		"balance":     credit.Balance,
		"status":      credit.Status,
	}))

	if tx.PaidAmount.IsPositive() {
		out.Advance = &models.CreditPayment{
			Amount:        tx.PaidAmount,
			Kind:          models.PaymentAdvance,
			PaymentMethod: tx.PaymentMethod,
			PaidBy:        rc.UserID,
			PaidAt:        at,
		}
		out.Events = append(out.Events, newEvent(rc, models.EventPaymentApplied, 0, tx.ID, at, map[string]any{
			"amount":  tx.PaidAmount,
			"kind":    models.PaymentAdvance,
			"method":  tx.PaymentMethod,
			"balance": credit.Balance,
			"status":  credit.Status,
		}))
	}
	return out, nil
}

// ApplyPayment records one installment against a credit and mirrors the
// result onto the originating transaction. Inputs are never modified; on error
// the caller must not persist anything.
func ApplyPayment(rc models.RequestContext, credit models.Credit, tx models.Transaction, p Payment) (Outcome, error) {
	if err := ValidateAmount(p.Amount); err != nil {
		return Outcome{}, err
	}
	if tx.IsDraft() {
		return Outcome{}, pkgerrors.ErrTransactionNotFinalized
	}
	if p.Amount.GreaterThan(credit.Balance) {
		return Outcome{}, pkgerrors.Validation("amount", MsgOverpayment)
	}

	out := Outcome{Credit: credit, Transaction: tx}
	out.Credit.PaidAmount = credit.PaidAmount.Add(p.Amount)
	out.Credit.Balance = credit.Amount.Sub(out.Credit.PaidAmount)
	out.Credit.Status = DeriveStatus(credit.Amount, out.Credit.PaidAmount)
	out.Credit.UpdatedAt = p.At

	out.Transaction.PaidAmount = out.Credit.PaidAmount
	out.Transaction.DueAmount = tx.TotalAmount.Sub(out.Transaction.PaidAmount)
	out.Transaction.PaymentStatus = DeriveStatus(tx.TotalAmount, out.Transaction.PaidAmount)
	out.Transaction.UpdatedAt = p.At

	out.Payment = models.CreditPayment{
		CreditID:          credit.ID,
		Amount:            p.Amount,
		Kind:              models.PaymentInstallment,
		PaymentMethod:     p.Method,
		BankAccountID:     p.BankAccountID,
		TransactionNumber: p.TransactionNumber,
		PaidBy:            rc.UserID,
		PaidAt:            p.At,
	}
	out.Events = []models.Event{newEvent(rc, models.EventPaymentApplied, credit.ID, tx.ID, p.At, map[string]any{
		"amount":  p.Amount,
		"kind":    models.PaymentInstallment,
		"method":  p.Method,
		"balance": out.Credit.Balance,
		"status":  out.Credit.Status,
	})}
	return out, nil
}

// CheckInvariants lists every way a credit and its transaction disagree.
func CheckInvariants(credit models.Credit, tx models.Transaction) []string {
	var problems []string
	if !tx.PaidAmount.Add(tx.DueAmount).Equal(tx.TotalAmount) {
		problems = append(problems, "transaction paid + due != total")
	}
	if !credit.Balance.Equal(credit.Amount.Sub(credit.PaidAmount)) {
		problems = append(problems, "credit balance != amount - paid")
	}
	if credit.Balance.IsNegative() {
		problems = append(problems, "credit balance is negative")
	}
	if !credit.Amount.Equal(tx.TotalAmount) {
		problems = append(problems, "credit amount != transaction total")
	}
	if !credit.Balance.Equal(tx.DueAmount) {
		problems = append(problems, "credit balance != transaction due")
	}
	if want := DeriveStatus(credit.Amount, credit.PaidAmount); credit.Status != want {
		problems = append(problems, "credit status should be "+string(want))
	}
	if credit.Status != tx.PaymentStatus {
		problems = append(problems, "credit status != transaction status")
	}
	return problems
}

// WithCreditID stamps a credit id assigned by storage onto events that were
// built before the credit row existed.
func WithCreditID(events []models.Event, creditID int64) []models.Event {
	for i := range events {
		if events[i].Type != models.EventTransactionFinalized {
			events[i].CreditID = creditID
		}
	}
	return events
}

func newEvent(rc models.RequestContext, typ models.EventType, creditID, txID int64, at time.Time, payload map[string]any) models.Event {
	raw, _ := json.Marshal(payload)
	return models.Event{
		ID:            uuid.NewString(),
		Type:          typ,
		OccurredAt:    at,
		UserID:        rc.UserID,
		BranchID:      rc.BranchID,
		CreditID:      creditID,
		TransactionID: txID,
		Payload:       raw,
	}
}
