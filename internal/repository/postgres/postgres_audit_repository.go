package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/honeynil/CreditLedgerService/internal/models"
	"go.opentelemetry.io/otel/attribute"
)

type PostgresAuditRepository struct {
	db *sql.DB
}

func NewPostgresAuditRepository(db *sql.DB) *PostgresAuditRepository {
	return &PostgresAuditRepository{db: db}
}

// Create stores an audit entry. Redelivered events are ignored by event_id.
func (r *PostgresAuditRepository) Create(ctx context.Context, entry *models.AuditEntry) (err error) {
	if entry == nil {
		return fmt.Errorf("audit entry is nil")
	}
	ctx, done := track(ctx, "audit-repository", "CreateAuditEntry", attribute.String("event_id", entry.EventID))
	defer func() { done(err) }()

	query := `INSERT INTO audit_logs (event_id, branch_id, user_id, entity_type, entity_id, action, payload) VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (event_id) DO NOTHING RETURNING id, created_at`
	err = r.db.QueryRowContext(ctx, query,
		entry.EventID, entry.BranchID, entry.UserID, entry.EntityType, entry.EntityID, entry.Action, []byte(entry.Payload),
	).Scan(&entry.ID, &entry.CreatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		slog.Info("audit entry already stored", "method", "Create", "event_id", entry.EventID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	return nil
}
