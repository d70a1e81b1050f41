package fcm

import (
	"context"
	"fmt"

	"evalert/internal/domain/entity"
	"evalert/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// Error codes surfaced to callers. These mirror the backend's own code names
// so web clients can keep matching on them.
const (
	CodeUnregistered = "registration-token-not-registered"
	CodeInvalidToken = "invalid-registration-token"
)

type fcmMessenger struct {
	client *messaging.Client
}

// NewMessenger creates a push messenger backed by Firebase Cloud Messaging.
func NewMessenger(ctx context.Context, app *firebase.App) (service.Messenger, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmMessenger{client: client}, nil
}

// SendMulticast sends one payload to up to 500 tokens in a single backend call.
func (s *fcmMessenger) SendMulticast(ctx context.Context, tokens []string, payload entity.BroadcastPayload) (*service.MulticastResult, error) {
	if len(tokens) == 0 {
		return &service.MulticastResult{}, nil
	}
	if len(tokens) > service.MulticastChunkLimit {
		return nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MulticastChunkLimit)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Data:   payload.Data(),
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast message: %w", err)
	}

	result := &service.MulticastResult{
		Succeeded: response.SuccessCount,
		Failed:    response.FailureCount,
		Responses: make([]service.SendResponse, len(response.Responses)),
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			result.Responses[idx] = service.SendResponse{MessageID: sendResponse.MessageID}

			continue
		}

		code, permanent := classify(sendResponse.Error)
		result.Responses[idx] = service.SendResponse{
			ErrorCode:    code,
			ErrorMessage: sendResponse.Error.Error(),
			Permanent:    permanent,
		}
	}

	return result, nil
}

// Send delivers one payload to a single token.
func (s *fcmMessenger) Send(ctx context.Context, token string, payload entity.BroadcastPayload) (string, error) {
	return s.send(ctx, token, payload, false)
}

// SendDryRun validates a token against the backend without delivering.
func (s *fcmMessenger) SendDryRun(ctx context.Context, token string) (string, error) {
	return s.send(ctx, token, entity.NewPingPayload("", "", ""), true)
}

func (s *fcmMessenger) send(ctx context.Context, token string, payload entity.BroadcastPayload, dryRun bool) (string, error) {
	message := &messaging.Message{
		Token: token,
		Data:  payload.Data(),
	}

	var messageID string
	var err error
	if dryRun {
		messageID, err = s.client.SendDryRun(ctx, message)
	} else {
		messageID, err = s.client.Send(ctx, message)
	}
	if err != nil {
		code, permanent := classify(err)

		return "", &service.SendError{Code: code, Permanent: permanent, Err: err}
	}

	return messageID, nil
}

// classify maps an FCM error to a stable code. Unregistered and malformed
// tokens are permanent; everything else is treated as transient.
func classify(err error) (code string, permanent bool) {
	switch {
	case messaging.IsUnregistered(err):
		return CodeUnregistered, true
	case messaging.IsInvalidArgument(err):
		return CodeInvalidToken, true
	default:
		return "", false
	}
}
