package audit_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/honeynil/CreditLedgerService/internal/audit"
	"github.com/honeynil/CreditLedgerService/internal/models"
	"github.com/honeynil/CreditLedgerService/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
)

func TestEntryFor(t *testing.T) {
	payment := models.Event{
		ID:            "e-1",
		Type:          models.EventPaymentApplied,
		UserID:        7,
		BranchID:      3,
		CreditID:      21,
		TransactionID: 11,
		Payload:       json.RawMessage(`{"amount":"600"}`),
	}
	entry := audit.EntryFor(payment)
	assert.Equal(t, "credit", entry.EntityType)
	assert.Equal(t, int64(21), entry.EntityID)
	assert.Equal(t, "payment_applied", entry.Action)
	assert.Equal(t, "e-1", entry.EventID)
	assert.JSONEq(t, `{"amount":"600"}`, string(entry.Payload))

	finalized := payment
	finalized.Type = models.EventTransactionFinalized
	entry = audit.EntryFor(finalized)
	assert.Equal(t, "transaction", entry.EntityType)
	assert.Equal(t, int64(11), entry.EntityID)
}

func TestSubscriber_Handle(t *testing.T) {
	ctx := context.Background()
	event := models.Event{ID: "e-2", Type: models.EventCreditFinalized, UserID: 7, BranchID: 3, CreditID: 21, TransactionID: 11}

	t.Run("Stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAuditRepository(ctrl)
		repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.AuditEntry) error {
				assert.Equal(t, int64(3), e.BranchID)
				assert.Equal(t, int64(7), e.UserID)
				assert.Equal(t, "credit_finalized", e.Action)
				return nil
			})

		assert.NoError(t, audit.NewSubscriber(repo).Handle(ctx, event))
	})

	t.Run("StorageError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAuditRepository(ctrl)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("database error"))

		err := audit.NewSubscriber(repo).Handle(ctx, event)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "e-2")
	})
}
