// Package service defines interfaces for external collaborators of the
// domain layer.
package service

import (
	"context"

	"evalert/internal/domain/entity"
)

// MulticastChunkLimit is the hard per-request token limit of the push
// backend.
const MulticastChunkLimit = 500

// SendResponse is the per-destination outcome of one multicast chunk, in
// backend response order.
type SendResponse struct {
	MessageID    string
	ErrorCode    string
	ErrorMessage string
	// Permanent marks error codes that mean the destination will never be
	// deliverable again (unregistered or invalid token).
	Permanent bool
}

// Failed reports whether this destination's send failed.
func (r SendResponse) Failed() bool {
	return r.ErrorCode != "" || r.ErrorMessage != ""
}

// MulticastResult aggregates one chunk send.
type MulticastResult struct {
	Succeeded int
	Failed    int
	Responses []SendResponse
}

// SendError carries the backend error code of a failed single send so
// callers can report it structurally.
type SendError struct {
	Code      string
	Permanent bool
	Err       error
}

// Error implements the error interface.
func (e *SendError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Err.Error()
	}

	return e.Err.Error()
}

// Unwrap returns the wrapped backend error.
func (e *SendError) Unwrap() error {
	return e.Err
}

// Messenger defines the interface for the push backend.
type Messenger interface {
	// SendMulticast sends one payload to up to MulticastChunkLimit tokens in
	// a single backend call and reports per-destination outcomes.
	SendMulticast(ctx context.Context, tokens []string, payload entity.BroadcastPayload) (*MulticastResult, error)

	// Send delivers one payload to a single token and returns the backend
	// message ID.
	Send(ctx context.Context, token string, payload entity.BroadcastPayload) (string, error)

	// SendDryRun validates a token against the backend without delivering.
	SendDryRun(ctx context.Context, token string) (string, error)
}
