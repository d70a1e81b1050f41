package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	deliverycontext "evalert/internal/delivery/context"
	"evalert/internal/domain/entity"
	"evalert/internal/domain/repository"
	"evalert/internal/domain/service"
	"evalert/internal/usecase"
)

// ErrMissingToken is returned when a destination token is required but empty.
var ErrMissingToken = errors.New("missing token")

type deviceService struct {
	destRepo  repository.DestinationRepository
	messenger service.Messenger
	logger    *slog.Logger
}

// NewDeviceService creates a new device service instance.
func NewDeviceService(
	destRepo repository.DestinationRepository,
	messenger service.Messenger,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		destRepo:  destRepo,
		messenger: messenger,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterToken upserts a destination token under its owning user.
func (srv *deviceService) RegisterToken(ctx context.Context, userID, token, userAgent string) error {
	if token == "" {
		return ErrMissingToken
	}

	dest := &entity.PushDestination{
		Token:     token,
		UserID:    userID,
		UserAgent: userAgent,
	}
	if err := srv.destRepo.Save(ctx, dest); err != nil {
		return fmt.Errorf("failed to save destination: %w", err)
	}

	srv.log(ctx).Debug("Destination registered",
		slog.String("user_id", userID),
		slog.String("token", entity.Preview(token)))

	return nil
}

// Ping sends a direct test notification to a single token.
func (srv *deviceService) Ping(ctx context.Context, token, title, body, url string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}

	payload := entity.NewPingPayload(title, body, url)

	messageID, err := srv.messenger.Send(ctx, token, payload)
	if err != nil {
		return "", fmt.Errorf("failed to send ping: %w", err)
	}

	srv.log(ctx).Info("Ping sent",
		slog.String("token", entity.Preview(token)),
		slog.String("message_id", messageID))

	return messageID, nil
}

// ValidateToken probes a token with a dry-run send. Backend rejections are
// reported in the result rather than as errors.
func (srv *deviceService) ValidateToken(ctx context.Context, token string) *usecase.TokenValidation {
	if token == "" {
		return &usecase.TokenValidation{ErrorCode: "missing-token", ErrorMessage: "missing token"}
	}

	dryRunID, err := srv.messenger.SendDryRun(ctx, token)
	if err != nil {
		validation := &usecase.TokenValidation{ErrorMessage: err.Error()}

		var sendErr *service.SendError
		if errors.As(err, &sendErr) {
			validation.ErrorCode = sendErr.Code
			validation.ErrorMessage = sendErr.Err.Error()
		}

		srv.log(ctx).Debug("Token validation failed",
			slog.String("token", entity.Preview(token)),
			slog.String("code", validation.ErrorCode))

		return validation
	}

	return &usecase.TokenValidation{OK: true, DryRunID: dryRunID}
}
