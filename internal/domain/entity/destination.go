// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// PushDestination is one installed client able to receive a push message,
// identified by its opaque FCM registration token. Destinations are stored
// keyed by their own token value under the owning user, which makes
// collection-group enumeration and point deletes cheap.
type PushDestination struct {
	Token     string    `json:"token" firestore:"token"`
	UserID    string    `json:"user_id" firestore:"-"`
	UserAgent string    `json:"user_agent,omitempty" firestore:"ua,omitempty"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt,serverTimestamp"`
}

// Preview returns a shortened, log-safe form of a registration token.
func Preview(token string) string {
	if len(token) <= 12 {
		return token
	}

	return token[:8] + "…" + token[len(token)-4:]
}
