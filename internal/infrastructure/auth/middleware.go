package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/honeynil/CreditLedgerService/internal/models"
)

type ctxKey struct{}

const IdempotencyHeader = "Idempotency-Key"

// AuthMiddleware validates the bearer token and stores the resulting
// RequestContext on the request.
func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "authorization header missing", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header", http.StatusUnauthorized)
				return
			}

			claims, err := ParseToken(jwtSecret, parts[1])
			if err != nil {
				slog.Warn("rejected token", "path", r.URL.Path, "error", err)
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			rc := models.RequestContext{
				UserID:    claims.UserID,
				BranchID:  claims.BranchID,
				RequestID: r.Header.Get(IdempotencyHeader),
			}
			next.ServeHTTP(w, r.WithContext(WithRequestContext(r.Context(), rc)))
		})
	}
}

func WithRequestContext(ctx context.Context, rc models.RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

func FromContext(ctx context.Context) (models.RequestContext, bool) {
	rc, ok := ctx.Value(ctxKey{}).(models.RequestContext)
	return rc, ok
}
