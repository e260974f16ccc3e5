package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/honeynil/CreditLedgerService/internal/infrastructure/kafka"
	"github.com/honeynil/CreditLedgerService/internal/infrastructure/observability"
	"github.com/honeynil/CreditLedgerService/internal/infrastructure/redis"
	"github.com/honeynil/CreditLedgerService/internal/ledger"
	"github.com/honeynil/CreditLedgerService/internal/models"
	"github.com/honeynil/CreditLedgerService/internal/repository"
	pkgerrors "github.com/honeynil/CreditLedgerService/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -destination=mocks/mock_ledger_service.go -package=mocks github.com/honeynil/CreditLedgerService/internal/services LedgerService

const requestKeyTTL = 24 * time.Hour

type LedgerService interface {
	CreateTransaction(ctx context.Context, rc models.RequestContext, in NewTransaction) (*models.Transaction, error)
	GetTransaction(ctx context.Context, rc models.RequestContext, id int64) (*models.Transaction, error)
	ListTransactions(ctx context.Context, rc models.RequestContext, limit, offset int) ([]models.Transaction, error)
	FinalizeTransaction(ctx context.Context, rc models.RequestContext, id int64) (*FinalizeResult, error)
	ApplyCreditPayment(ctx context.Context, rc models.RequestContext, creditID int64, in PaymentInput) (*PaymentResult, error)
	ApplyTransactionPayment(ctx context.Context, rc models.RequestContext, txID int64, in PaymentInput) (*PaymentResult, error)
	GetCredit(ctx context.Context, rc models.RequestContext, id int64) (*models.Credit, error)
	ListCredits(ctx context.Context, rc models.RequestContext, filter models.CreditFilter) ([]models.Credit, error)
	ListCreditPayments(ctx context.Context, rc models.RequestContext, creditID int64) ([]models.CreditPayment, error)
	CheckConsistency(ctx context.Context, rc models.RequestContext) ([]models.Drift, error)
}

type NewTransaction struct {
	Kind          models.TransactionKind
	ReferenceNo   string
	TotalAmount   decimal.Decimal
	AdvanceAmount decimal.Decimal
	PaymentMethod string
}

type PaymentInput struct {
	Amount            decimal.Decimal
	Method            string
	BankAccountID     *int64
	TransactionNumber string
}

type PaymentResult struct {
	Credit      models.Credit        `json:"credit"`
	Transaction models.Transaction   `json:"transaction"`
	Payment     models.CreditPayment `json:"payment"`
}

type FinalizeResult struct {
	Transaction models.Transaction    `json:"transaction"`
	Credit      *models.Credit        `json:"credit,omitempty"`
	Advance     *models.CreditPayment `json:"advance,omitempty"`
}

type ledgerService struct {
	transactionRepo repository.TransactionRepository
	creditRepo      repository.CreditRepository
	store           repository.LedgerStore
	redisClient     redis.RedisClient
	producer        kafka.KafkaProducer
	topic           string
	now             func() time.Time
}

func NewLedgerService(
	transactionRepo repository.TransactionRepository,
	creditRepo repository.CreditRepository,
	store repository.LedgerStore,
	redisClient redis.RedisClient,
	producer kafka.KafkaProducer,
	topic string,
) *ledgerService {
	return &ledgerService{
		transactionRepo: transactionRepo,
		creditRepo:      creditRepo,
		store:           store,
		redisClient:     redisClient,
		producer:        producer,
		topic:           topic,
		now:             time.Now,
	}
}

func startSpan(ctx context.Context, name string, rc models.RequestContext, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.Int64("user_id", rc.UserID),
		attribute.Int64("branch_id", rc.BranchID),
	)
	return otel.Tracer("ledger-service").Start(ctx, name, trace.WithAttributes(attrs...))
}

// fail records a rejected or failed operation and returns err in its typed form.
func fail(span trace.Span, operation string, err error) error {
	err = pkgerrors.Persistence(operation+" failed", err)
	kind := pkgerrors.KindOf(err)
	observability.ReconcileFailures.WithLabelValues(operation, string(kind)).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func (s *ledgerService) CreateTransaction(ctx context.Context, rc models.RequestContext, in NewTransaction) (*models.Transaction, error) {
	ctx, span := startSpan(ctx, "CreateTransaction", rc, attribute.String("kind", string(in.Kind)))
	defer span.End()

	draft, err := ledger.NewDraft(rc, in.Kind, in.ReferenceNo, in.TotalAmount, in.AdvanceAmount, in.PaymentMethod)
	if err != nil {
		slog.Warn("transaction rejected", "kind", in.Kind, "total_amount", in.TotalAmount, "advance_amount", in.AdvanceAmount, "error", err)
		return nil, fail(span, "create_transaction", err)
	}

	if _, err := s.transactionRepo.Create(ctx, &draft); err != nil {
		slog.Error("failed to create transaction", "branch_id", rc.BranchID, "user_id", rc.UserID, "error", err)
		return nil, fail(span, "create_transaction", err)
	}

	slog.Info("draft transaction created", "transaction_id", draft.ID, "kind", draft.Kind, "branch_id", draft.BranchID, "user_id", rc.UserID)
	return &draft, nil
}

func (s *ledgerService) GetTransaction(ctx context.Context, rc models.RequestContext, id int64) (*models.Transaction, error) {
	ctx, span := startSpan(ctx, "GetTransaction", rc, attribute.Int64("transaction_id", id))
	defer span.End()

	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fail(span, "get_transaction", err)
	}
	if tx.BranchID != rc.BranchID {
		return nil, fail(span, "get_transaction", pkgerrors.ErrTransactionNotFound)
	}
	return tx, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, rc models.RequestContext, limit, offset int) ([]models.Transaction, error) {
	ctx, span := startSpan(ctx, "ListTransactions", rc)
	defer span.End()

	list, err := s.transactionRepo.ListByBranch(ctx, rc.BranchID, limit, offset)
	if err != nil {
		return nil, fail(span, "list_transactions", err)
	}
	return list, nil
}

// FinalizeTransaction moves a draft out of draft and opens its credit. A
// second call for the same transaction is a conflict and writes nothing.
// Lock order is transaction then credit.
func (s *ledgerService) FinalizeTransaction(ctx context.Context, rc models.RequestContext, id int64) (*FinalizeResult, error) {
	ctx, span := startSpan(ctx, "FinalizeTransaction", rc, attribute.Int64("transaction_id", id))
	defer span.End()

	var fin ledger.Finalization
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx repository.LedgerTx) error {
		current, err := tx.LockTransaction(ctx, id)
		if err != nil {
			return err
		}
		if current.BranchID != rc.BranchID {
			return pkgerrors.ErrTransactionNotFound
		}
		if !current.IsDraft() {
			return pkgerrors.ErrTransactionAlreadyFinalized
		}

		existing, err := tx.LockCreditByReference(ctx, current.Kind, current.ID)
		if err != nil && !stderrors.Is(err, pkgerrors.ErrCreditNotFound) {
			return err
		}
		if existing != nil {
			return pkgerrors.ErrCreditAlreadyExists
		}

		fin, err = ledger.Finalize(rc, *current, s.now().UTC())
		if err != nil {
			return err
		}
		if err := tx.UpdateTransactionPayment(ctx, &fin.Transaction); err != nil {
			return err
		}
		if fin.Credit == nil {
			return nil
		}
		if err := tx.CreateCredit(ctx, fin.Credit); err != nil {
			return err
		}
		fin.Events = ledger.WithCreditID(fin.Events, fin.Credit.ID)
		if fin.Advance != nil {
			fin.Advance.CreditID = fin.Credit.ID
			if err := tx.AppendPayment(ctx, fin.Advance); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		observability.WithContext(ctx).Warn("finalize failed", "transaction_id", id, "branch_id", rc.BranchID, "user_id", rc.UserID, "error", err)
		return nil, fail(span, "finalize_transaction", err)
	}

	if fin.Advance != nil {
		observability.PaymentsApplied.WithLabelValues(string(fin.Credit.CreditType), string(models.PaymentAdvance), string(fin.Credit.Status)).Inc()
	}
	s.publish(ctx, fin.Events)

	result := &FinalizeResult{Transaction: fin.Transaction, Credit: fin.Credit, Advance: fin.Advance}
	if fin.Credit != nil {
		observability.WithContext(ctx).Info("transaction finalized with credit", "transaction_id", id, "credit_id", fin.Credit.ID, "balance", fin.Credit.Balance, "status", fin.Credit.Status)
	} else {
		observability.WithContext(ctx).Info("transaction finalized fully paid", "transaction_id", id)
	}
	return result, nil
}

func (s *ledgerService) ApplyCreditPayment(ctx context.Context, rc models.RequestContext, creditID int64, in PaymentInput) (*PaymentResult, error) {
	ctx, span := startSpan(ctx, "ApplyCreditPayment", rc, attribute.Int64("credit_id", creditID))
	defer span.End()

	if err := ledger.ValidateAmount(in.Amount); err != nil {
		slog.Warn("payment rejected", "credit_id", creditID, "amount", in.Amount, "error", err)
		return nil, fail(span, "apply_payment", err)
	}
	return s.applyPayment(ctx, span, rc, creditID, in)
}

// ApplyTransactionPayment pays a finalized transaction through its credit.
func (s *ledgerService) ApplyTransactionPayment(ctx context.Context, rc models.RequestContext, txID int64, in PaymentInput) (*PaymentResult, error) {
	ctx, span := startSpan(ctx, "ApplyTransactionPayment", rc, attribute.Int64("transaction_id", txID))
	defer span.End()

	if err := ledger.ValidateAmount(in.Amount); err != nil {
		slog.Warn("payment rejected", "transaction_id", txID, "amount", in.Amount, "error", err)
		return nil, fail(span, "apply_payment", err)
	}

	tx, err := s.transactionRepo.GetByID(ctx, txID)
	if err != nil {
		return nil, fail(span, "apply_payment", err)
	}
	if tx.BranchID != rc.BranchID {
		return nil, fail(span, "apply_payment", pkgerrors.ErrTransactionNotFound)
	}
	if tx.IsDraft() {
		return nil, fail(span, "apply_payment", pkgerrors.ErrTransactionNotFinalized)
	}

	credit, err := s.creditRepo.GetByReference(ctx, tx.Kind, tx.ID)
	if stderrors.Is(err, pkgerrors.ErrCreditNotFound) {
		// Finalized without a credit means it was paid in full up front.
		return nil, fail(span, "apply_payment", pkgerrors.Validation("amount", ledger.MsgOverpayment))
	}
	if err != nil {
		return nil, fail(span, "apply_payment", err)
	}
	return s.applyPayment(ctx, span, rc, credit.ID, in)
}

// applyPayment is the locked read-modify-write cycle. The credit row is locked
// before its transaction, and the credit update is additionally guarded on the
// paid amount that was read.
func (s *ledgerService) applyPayment(ctx context.Context, span trace.Span, rc models.RequestContext, creditID int64, in PaymentInput) (*PaymentResult, error) {
	requestKey, err := s.claimRequest(ctx, rc)
	if err != nil {
		return nil, fail(span, "apply_payment", err)
	}

	var out ledger.Outcome
	err = s.store.WithinTx(ctx, func(ctx context.Context, tx repository.LedgerTx) error {
		credit, err := tx.LockCredit(ctx, creditID)
		if err != nil {
			return err
		}
		if credit.BranchID != rc.BranchID {
			return pkgerrors.ErrCreditNotFound
		}
		current, err := tx.LockTransaction(ctx, credit.ReferenceID)
		if err != nil {
			return err
		}

		out, err = ledger.ApplyPayment(rc, *credit, *current, ledger.Payment{
			Amount:            in.Amount,
			Method:            in.Method,
			BankAccountID:     in.BankAccountID,
			TransactionNumber: in.TransactionNumber,
			At:                s.now().UTC(),
		})
		if err != nil {
			return err
		}
		if err := tx.UpdateCredit(ctx, &out.Credit, credit.PaidAmount); err != nil {
			return err
		}
		if err := tx.UpdateTransactionPayment(ctx, &out.Transaction); err != nil {
			return err
		}
		return tx.AppendPayment(ctx, &out.Payment)
	})
	if err != nil {
		s.releaseRequest(ctx, requestKey)
		observability.WithContext(ctx).Warn("payment failed", "credit_id", creditID, "amount", in.Amount, "branch_id", rc.BranchID, "user_id", rc.UserID, "error", err)
		return nil, fail(span, "apply_payment", err)
	}

	if requestKey != "" {
		if err := s.redisClient.Set(ctx, requestKey, fmt.Sprintf("applied:%d", out.Payment.ID), requestKeyTTL); err != nil {
			slog.Error("failed to mark request applied", "request_key", requestKey, "error", err)
		}
	}
	observability.PaymentsApplied.WithLabelValues(string(out.Credit.CreditType), string(out.Payment.Kind), string(out.Credit.Status)).Inc()
	s.publish(ctx, out.Events)

	observability.WithContext(ctx).Info("payment applied",
		"credit_id", out.Credit.ID,
		"transaction_id", out.Transaction.ID,
		"payment_id", out.Payment.ID,
		"amount", out.Payment.Amount,
		"balance", out.Credit.Balance,
		"status", out.Credit.Status,
		"user_id", rc.UserID,
	)
	return &PaymentResult{Credit: out.Credit, Transaction: out.Transaction, Payment: out.Payment}, nil
}

// claimRequest rejects a repeated request id. Without Redis the row lock alone
// still keeps the balance consistent, so a Redis failure is logged and ignored.
func (s *ledgerService) claimRequest(ctx context.Context, rc models.RequestContext) (string, error) {
	if rc.RequestID == "" || s.redisClient == nil {
		return "", nil
	}
	key := fmt.Sprintf("payment:request:%d:%s", rc.BranchID, rc.RequestID)
	ok, err := s.redisClient.SetNX(ctx, key, "pending", requestKeyTTL)
	if err != nil {
		slog.Error("failed to claim request key", "request_key", key, "error", err)
		return "", nil
	}
	if !ok {
		val, _ := s.redisClient.Get(ctx, key)
		slog.Warn("request already processed", "request_id", rc.RequestID, "user_id", rc.UserID, "status", val)
		return "", pkgerrors.ErrDuplicateRequest
	}
	return key, nil
}

func (s *ledgerService) releaseRequest(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.redisClient.Del(ctx, key); err != nil {
		slog.Error("failed to release request key", "request_key", key, "error", err)
	}
}

// publish hands committed events to the broker. The ledger change is already
// durable, so a failed send is logged and counted rather than returned.
func (s *ledgerService) publish(ctx context.Context, events []models.Event) {
	if s.producer == nil {
		return
	}
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			slog.Error("failed to marshal ledger event", "event_id", event.ID, "error", err)
			observability.EventsPublished.WithLabelValues(string(event.Type), "error").Inc()
			continue
		}
		if err := s.producer.Send(ctx, s.topic, event.TransactionID, payload); err != nil {
			slog.Error("failed to publish ledger event", "event_id", event.ID, "type", event.Type, "error", err)
			observability.EventsPublished.WithLabelValues(string(event.Type), "error").Inc()
			continue
		}
		observability.EventsPublished.WithLabelValues(string(event.Type), "success").Inc()
	}
}

func (s *ledgerService) GetCredit(ctx context.Context, rc models.RequestContext, id int64) (*models.Credit, error) {
	ctx, span := startSpan(ctx, "GetCredit", rc, attribute.Int64("credit_id", id))
	defer span.End()

	credit, err := s.creditRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fail(span, "get_credit", err)
	}
	if credit.BranchID != rc.BranchID {
		return nil, fail(span, "get_credit", pkgerrors.ErrCreditNotFound)
	}
	return credit, nil
}

func (s *ledgerService) ListCredits(ctx context.Context, rc models.RequestContext, filter models.CreditFilter) ([]models.Credit, error) {
	ctx, span := startSpan(ctx, "ListCredits", rc)
	defer span.End()

	list, err := s.creditRepo.ListByBranch(ctx, rc.BranchID, filter)
	if err != nil {
		return nil, fail(span, "list_credits", err)
	}
	return list, nil
}

func (s *ledgerService) ListCreditPayments(ctx context.Context, rc models.RequestContext, creditID int64) ([]models.CreditPayment, error) {
	ctx, span := startSpan(ctx, "ListCreditPayments", rc, attribute.Int64("credit_id", creditID))
	defer span.End()

	if _, err := s.GetCredit(ctx, rc, creditID); err != nil {
		return nil, err
	}
	payments, err := s.creditRepo.ListPayments(ctx, creditID)
	if err != nil {
		return nil, fail(span, "list_credit_payments", err)
	}
	return payments, nil
}

// CheckConsistency reports every credit of the branch that has drifted from
// its transaction.
func (s *ledgerService) CheckConsistency(ctx context.Context, rc models.RequestContext) ([]models.Drift, error) {
	ctx, span := startSpan(ctx, "CheckConsistency", rc)
	defer span.End()

	drift, err := s.creditRepo.FindDrift(ctx, rc.BranchID)
	if err != nil {
		return nil, fail(span, "check_consistency", err)
	}
	slog.Info("consistency check finished", "branch_id", rc.BranchID, "drifted", len(drift))
	return drift, nil
}
