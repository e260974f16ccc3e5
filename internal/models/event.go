package models

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	EventPaymentApplied       EventType = "payment_applied"
	EventCreditFinalized      EventType = "credit_finalized"
	EventTransactionFinalized EventType = "transaction_finalized"
)

// Event is emitted after a ledger change commits and consumed by the audit subscriber.
type Event struct {
	ID            string          `json:"id"`
	Type          EventType       `json:"type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	UserID        int64           `json:"user_id"`
	BranchID      int64           `json:"branch_id"`
	CreditID      int64           `json:"credit_id,omitempty"`
	TransactionID int64           `json:"transaction_id"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

type AuditEntry struct {
	ID         int64           `json:"id"`
	EventID    string          `json:"event_id"`
	BranchID   int64           `json:"branch_id"`
	UserID     int64           `json:"user_id"`
	EntityType string          `json:"entity_type"`
	EntityID   int64           `json:"entity_id"`
	Action     string          `json:"action"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
