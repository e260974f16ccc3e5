package handler

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/honeynil/CreditLedgerService/internal/infrastructure/auth"
	"github.com/honeynil/CreditLedgerService/internal/models"
	service "github.com/honeynil/CreditLedgerService/internal/services"
	pkgerrors "github.com/honeynil/CreditLedgerService/pkg/errors"
	"github.com/shopspring/decimal"
)

const msgDatabaseUnavailable = "Database connection unavailable"

type Handler struct {
	service  service.LedgerService
	validate *validator.Validate
	debug    bool
}

func NewHandler(s service.LedgerService, debug bool) *Handler {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{service: s, validate: v, debug: debug}
}

type successResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
}

type createTransactionRequest struct {
	Kind          models.TransactionKind `json:"kind" validate:"required,oneof=sale purchase"`
	ReferenceNo   string                 `json:"reference_no" validate:"required,max=64"`
	TotalAmount   decimal.Decimal        `json:"total_amount"`
	AdvanceAmount decimal.Decimal        `json:"advance_amount"`
	PaymentMethod string                 `json:"payment_method" validate:"omitempty,max=32"`
}

type paymentRequest struct {
	Amount            decimal.Decimal `json:"amount"`
	PaymentMethod     string          `json:"payment_method" validate:"required,max=32"`
	BankAccountID     *int64          `json:"bank_account_id" validate:"omitempty,gt=0"`
	TransactionNumber string          `json:"transaction_number" validate:"omitempty,max=64"`
}

func (p paymentRequest) input() service.PaymentInput {
	return service.PaymentInput{
		Amount:            p.Amount,
		Method:            p.PaymentMethod,
		BankAccountID:     p.BankAccountID,
		TransactionNumber: p.TransactionNumber,
	}
}

// RegisterRoutes mounts the ledger API. /credits/drift is registered before
// /credits/{id} so the literal path wins.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/transactions", h.CreateTransaction).Methods(http.MethodPost)
	r.HandleFunc("/transactions", h.ListTransactions).Methods(http.MethodGet)
	r.HandleFunc("/transactions/{id:[0-9]+}", h.GetTransaction).Methods(http.MethodGet)
	r.HandleFunc("/transactions/{id:[0-9]+}/finalize", h.FinalizeTransaction).Methods(http.MethodPost)
	r.HandleFunc("/transactions/{id:[0-9]+}/payments", h.ApplyTransactionPayment).Methods(http.MethodPost)

	r.HandleFunc("/credits/drift", h.CheckConsistency).Methods(http.MethodGet)
	r.HandleFunc("/credits", h.ListCredits).Methods(http.MethodGet)
	r.HandleFunc("/credits/{id:[0-9]+}", h.GetCredit).Methods(http.MethodGet)
	r.HandleFunc("/credits/{id:[0-9]+}/payments", h.ApplyCreditPayment).Methods(http.MethodPost)
	r.HandleFunc("/credits/{id:[0-9]+}/payments", h.ListCreditPayments).Methods(http.MethodGet)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeData(w http.ResponseWriter, status int, data interface{}) {
	h.writeJSON(w, status, successResponse{Success: true, Data: data})
}

// writeError maps a typed ledger error onto its HTTP status. Internal details
// are only exposed in debug mode.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Message: pkgerrors.MessageOf(err)}
	var status int
	switch pkgerrors.KindOf(err) {
	case pkgerrors.KindValidation:
		status = http.StatusUnprocessableEntity
		resp.Field = pkgerrors.FieldOf(err)
	case pkgerrors.KindNotFound:
		status = http.StatusNotFound
	case pkgerrors.KindConflict:
		status = http.StatusConflict
	default:
		if isConnectivity(err) {
			status = http.StatusServiceUnavailable
			resp.Message = msgDatabaseUnavailable
		} else {
			status = http.StatusInternalServerError
			resp.Message = "Internal server error"
		}
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	if resp.Message == "" {
		resp.Message = http.StatusText(status)
	}
	if h.debug {
		resp.Error = err.Error()
	}
	h.writeJSON(w, status, resp)
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, field, message string, err error) {
	resp := errorResponse{Message: message, Field: field}
	if h.debug && err != nil {
		resp.Error = err.Error()
	}
	h.writeJSON(w, http.StatusBadRequest, resp)
}

func isConnectivity(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// decode reads and validates a JSON body. It writes the response itself and
// reports false when the request should stop.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeBadRequest(w, "", "Invalid request body", err)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			h.writeError(w, r, pkgerrors.Validation(fe.Field(), validationMessage(fe)))
			return false
		}
		h.writeBadRequest(w, "", "Invalid request body", err)
		return false
	}
	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}

func (h *Handler) requestContext(w http.ResponseWriter, r *http.Request) (models.RequestContext, bool) {
	rc, ok := auth.FromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "user not authenticated"})
	}
	return rc, ok
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return n, nil
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.requestContext(w, r)
	if !ok {
		return
	}
	var req createTransactionRequest
	if !h.decode(w, r, &req) {
		return
	}

	tx, err := h.service.CreateTransaction(r.Context(), rc, service.NewTransaction{
		Kind:          req.Kind,
		ReferenceNo:   req.ReferenceNo,
		TotalAmount:   req.TotalAmount,
		AdvanceAmount: req.AdvanceAmount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusCreated, tx)
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.requestContext(w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.writeBadRequest(w, "limit", "Invalid limit", err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		h.writeBadRequest(w, "offset", "Invalid offset", err)
		return
	}

	list, err := h.service.ListTransactions(r.Context(), rc, limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, list)
}

func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.requestContext(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeBadRequest(w, "id", "Invalid transaction id", err)
		return
	}

	tx, err := h.service.GetTransaction(r.Context(), rc, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, tx)
}

func (h *Handler) FinalizeTransaction(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.requestContext(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeBadRequest(w, "id", "Invalid transaction id", err)
		return
	}

	res, err := h.service.FinalizeTransaction(r.Context(), rc, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, res)
}

func (h *Handler) ApplyTransactionPayment(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.requestContext(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeBadRequest(w, "id", "Invalid transaction id", err)
		return
	}
	var req paymentRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.service.ApplyTransactionPayment(r.Context(), rc, id, req.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusCreated, res)
}

func (h *Handler) ListCredits(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.requestContext(w, r)
	if !ok {
		return
	}
	filter := models.CreditFilter{CreditType: models.CreditType(r.URL.Query().Get("credit_type"))}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := models.ParsePaymentStatus(raw)
		if !ok {
			h.writeBadRequest(w, "status", "Invalid status", pkgerrors.ErrInvalidStatus)
			return
		}
		filter.Status = status
	}
	var err error
	if filter.Limit, err = queryInt(r, "limit"); err != nil {
		h.writeBadRequest(w, "limit", "Invalid limit", err)
		return
	}
	if filter.Offset, err = queryInt(r, "offset"); err != nil {
		h.writeBadRequest(w, "offset", "Invalid offset", err)
		return
	}

	list, err := h.service.ListCredits(r.Context(), rc, filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, list)
}

func (h *Handler) GetCredit(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.requestContext(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeBadRequest(w, "id", "Invalid credit id", err)
		return
	}

	credit, err := h.service.GetCredit(r.Context(), rc, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, credit)
}

func (h *Handler) ApplyCreditPayment(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.requestContext(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeBadRequest(w, "id", "Invalid credit id", err)
		return
	}
	var req paymentRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.service.ApplyCreditPayment(r.Context(), rc, id, req.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusCreated, res)
}

func (h *Handler) ListCreditPayments(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.requestContext(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeBadRequest(w, "id", "Invalid credit id", err)
		return
	}

	payments, err := h.service.ListCreditPayments(r.Context(), rc, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, payments)
}

func (h *Handler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.requestContext(w, r)
	if !ok {
		return
	}

	drift, err := h.service.CheckConsistency(r.Context(), rc)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, drift)
}
