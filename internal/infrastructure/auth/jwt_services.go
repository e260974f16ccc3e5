package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/honeynil/CreditLedgerService/internal/models"
	pkgerrors "github.com/honeynil/CreditLedgerService/pkg/errors"
)

func ParseToken(secret, tokenStr string) (models.TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return models.TokenClaims{}, pkgerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.TokenClaims{}, pkgerrors.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return models.TokenClaims{}, fmt.Errorf("%w: missing user_id", pkgerrors.ErrInvalidToken)
	}
	branchID, ok := claims["branch_id"].(float64)
	if !ok || branchID <= 0 {
		return models.TokenClaims{}, fmt.Errorf("%w: missing branch_id", pkgerrors.ErrInvalidToken)
	}
	return models.TokenClaims{UserID: int64(userID), BranchID: int64(branchID)}, nil
}
