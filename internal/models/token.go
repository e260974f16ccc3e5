package models

// RequestContext identifies who is acting and for which branch. It is built
// once per request and passed explicitly down to the ledger.
type RequestContext struct {
	UserID    int64
	BranchID  int64
	RequestID string
}

type TokenClaims struct {
	UserID   int64 `json:"user_id"`
	BranchID int64 `json:"branch_id"`
}
