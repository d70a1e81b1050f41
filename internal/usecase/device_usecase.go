package usecase

import (
	"context"
)

// TokenValidation is the structured outcome of a dry-run token probe. A
// failed probe is a result, not an error.
type TokenValidation struct {
	OK           bool   `json:"ok"`
	DryRunID     string `json:"dryRunId,omitempty"`
	ErrorCode    string `json:"code,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}

// DeviceUsecase defines the interface for push destination management.
type DeviceUsecase interface {
	// RegisterToken upserts a destination token under its owning user.
	RegisterToken(ctx context.Context, userID, token, userAgent string) error

	// Ping sends a direct test notification to one token and returns the
	// backend message ID.
	Ping(ctx context.Context, token, title, body, url string) (string, error)

	// ValidateToken probes a token with a non-delivering dry-run send.
	ValidateToken(ctx context.Context, token string) *TokenValidation
}
