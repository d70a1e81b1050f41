package entity

import (
	"time"

	"github.com/google/uuid"
)

// BroadcastRecord is the persisted audit entry for one broadcast dispatch.
type BroadcastRecord struct {
	ID               uuid.UUID   `json:"id"`
	ActorUID         string      `json:"actor_uid"`
	Title            string      `json:"title"`
	Body             string      `json:"body"`
	LinkURL          string      `json:"link_url"`
	Kind             MessageKind `json:"kind"`
	Attempted        int         `json:"attempted"`
	Succeeded        int         `json:"succeeded"`
	Failed           int         `json:"failed"`
	DuplicatesPruned int         `json:"duplicates_pruned"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// BroadcastFailureLog records one failed delivery inside a broadcast. Only a
// preview of the token is stored; full tokens never leave Firestore.
type BroadcastFailureLog struct {
	ID           uuid.UUID `json:"id"`
	BroadcastID  uuid.UUID `json:"broadcast_id"`
	TokenPreview string    `json:"token_preview"`
	ErrorCode    string    `json:"error_code"`
	ErrorMessage string    `json:"error_message"`
	Permanent    bool      `json:"permanent"`
	SentAt       time.Time `json:"sent_at"`
}
