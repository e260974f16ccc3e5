package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a sale or purchase document with its denormalized payment totals.
type Transaction struct {
	ID            int64           `json:"id"`
	Kind          TransactionKind `json:"kind"`
	BranchID      int64           `json:"branch_id"`
	ReferenceNo   string          `json:"reference_no"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	DueAmount     decimal.Decimal `json:"due_amount"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PaymentMethod string          `json:"payment_method"`
	CreatedBy     int64           `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsAdvanceFullPayment reports whether the advance settles the whole total.
func (t *Transaction) IsAdvanceFullPayment() bool {
	return t.AdvanceAmount.Equal(t.TotalAmount)
}

func (t *Transaction) IsDraft() bool {
	return t.PaymentStatus == StatusDraft
}

type TransactionKind string

const (
	KindSale     TransactionKind = "sale"
	KindPurchase TransactionKind = "purchase"
)

func (k TransactionKind) Valid() bool {
	return k == KindSale || k == KindPurchase
}

// CreditType is receivable for sales and payable for purchases.
func (k TransactionKind) CreditType() CreditType {
	if k == KindPurchase {
		return CreditPayable
	}
	return CreditReceivable
}

// PaymentStatus is shared by credits and transactions. Credits never carry draft.
type PaymentStatus string

const (
	StatusDraft   PaymentStatus = "draft"
	StatusPending PaymentStatus = "pending"
	StatusPartial PaymentStatus = "partial"
	StatusPaid    PaymentStatus = "paid"
)

// statusDue is the legacy transaction label for an unpaid document.
const statusDue = "due"

// ParsePaymentStatus accepts the stored labels plus the legacy "due".
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch s {
	case string(StatusDraft), string(StatusPending), string(StatusPartial), string(StatusPaid):
		return PaymentStatus(s), true
	case statusDue:
		return StatusPending, true
	}
	return "", false
}
