// Package audit turns ledger events into audit log lines and rows.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/honeynil/CreditLedgerService/internal/models"
	"github.com/honeynil/CreditLedgerService/internal/repository"
)

type Subscriber struct {
	repo repository.AuditRepository
}

func NewSubscriber(repo repository.AuditRepository) *Subscriber {
	return &Subscriber{repo: repo}
}

func (s *Subscriber) Handle(ctx context.Context, event models.Event) error {
	entry := EntryFor(event)
	slog.Info("audit",
		"event_id", event.ID,
		"action", entry.Action,
		"entity_type", entry.EntityType,
		"entity_id", entry.EntityID,
		"user_id", event.UserID,
		"branch_id", event.BranchID,
	)
	if err := s.repo.Create(ctx, &entry); err != nil {
		return fmt.Errorf("failed to store audit entry %s: %w", event.ID, err)
	}
	return nil
}

// EntryFor maps an event to the audit row describing it. Credit events are
// filed under the credit, transaction events under the transaction.
func EntryFor(event models.Event) models.AuditEntry {
	entry := models.AuditEntry{
		EventID:  event.ID,
		BranchID: event.BranchID,
		UserID:   event.UserID,
		Action:   string(event.Type),
		Payload:  event.Payload,
	}
	switch event.Type {
	case models.EventPaymentApplied, models.EventCreditFinalized:
		entry.EntityType = "credit"
		entry.EntityID = event.CreditID
	default:
		entry.EntityType = "transaction"
		entry.EntityID = event.TransactionID
	}
	return entry
}
