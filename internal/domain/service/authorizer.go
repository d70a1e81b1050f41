package service

import (
	"context"
)

// TokenVerifier verifies a bearer credential and yields the identity it
// represents.
type TokenVerifier interface {
	// VerifyIDToken validates an ID token and returns the subject UID.
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

// AdminPolicy decides whether an identity may trigger administrative
// operations. Implementations may consult a static list or a dynamic
// authorized-identity collection; the dispatcher does not care which.
type AdminPolicy interface {
	IsAdmin(ctx context.Context, uid string) (bool, error)
}
