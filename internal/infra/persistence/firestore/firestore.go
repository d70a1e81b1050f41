// Package firestore implements the repository interfaces on Cloud Firestore.
package firestore

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
)

// NewClient creates the Firestore client from the shared Firebase app.
func NewClient(ctx context.Context, app *firebase.App) (*fs.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get firestore client: %w", err)
	}

	return client, nil
}
