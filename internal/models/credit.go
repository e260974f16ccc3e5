package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Credit tracks the amount still owed on a deferred-payment transaction.
type Credit struct {
	ID            int64           `json:"id"`
	BranchID      int64           `json:"branch_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Balance       decimal.Decimal `json:"balance"`
	CreditType    CreditType      `json:"credit_type"`
	Status        PaymentStatus   `json:"status"`
	ReferenceType TransactionKind `json:"reference_type"`
	ReferenceID   int64           `json:"reference_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CreditType string

const (
	CreditReceivable CreditType = "receivable"
	CreditPayable    CreditType = "payable"
)

type PaymentKind string

const (
	PaymentAdvance     PaymentKind = "advance"
	PaymentInstallment PaymentKind = "installment"
)

// CreditPayment is one immutable cash movement against a credit.
type CreditPayment struct {
	ID                int64           `json:"id"`
	CreditID          int64           `json:"credit_id"`
	Amount            decimal.Decimal `json:"amount"`
	Kind              PaymentKind     `json:"kind"`
	PaymentMethod     string          `json:"payment_method"`
	BankAccountID     *int64          `json:"bank_account_id,omitempty"`
	TransactionNumber string          `json:"transaction_number,omitempty"`
	PaidBy            int64           `json:"paid_by"`
	PaidAt            time.Time       `json:"paid_at"`
}

type CreditFilter struct {
	Status     PaymentStatus
	CreditType CreditType
	Limit      int
	Offset     int
}

// Drift is a credit whose stored state disagrees with its transaction.
type Drift struct {
	CreditID          int64           `json:"credit_id"`
	TransactionID     int64           `json:"transaction_id"`
	CreditStatus      PaymentStatus   `json:"credit_status"`
	TransactionStatus PaymentStatus   `json:"transaction_status"`
	CreditBalance     decimal.Decimal `json:"credit_balance"`
	TransactionDue    decimal.Decimal `json:"transaction_due"`
	Problems          []string        `json:"problems"`
}
