// Package auth implements identity verification and admin policies on top of
// Firebase Auth and Firestore.
package auth

import (
	"context"
	"fmt"

	"evalert/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
)

type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewTokenVerifier creates a verifier for Firebase ID tokens.
func NewTokenVerifier(ctx context.Context, app *firebase.App) (service.TokenVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client: %w", err)
	}

	return &firebaseVerifier{client: client}, nil
}

// VerifyIDToken validates the bearer token and returns the caller's UID.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify ID token: %w", err)
	}

	return token.UID, nil
}
