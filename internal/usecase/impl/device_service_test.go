package impl

import (
	"context"
	"testing"

	"evalert/internal/domain/entity"
	"evalert/internal/domain/service"
	mockRepo "evalert/internal/mocks/repository"
	mockService "evalert/internal/mocks/service"
	"evalert/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service   usecase.DeviceUsecase
	destRepo  *mockRepo.MockDestinationRepository
	messenger *mockService.MockMessenger
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	destRepo := mockRepo.NewMockDestinationRepository(t)
	messenger := mockService.NewMockMessenger(t)
	svc := NewDeviceService(destRepo, messenger, newDiscardLogger())

	return deviceServiceFixtures{
		service:   svc,
		destRepo:  destRepo,
		messenger: messenger,
	}
}

func TestDeviceService_RegisterToken(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	var saved *entity.PushDestination
	fx.destRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.PushDestination")).
		RunAndReturn(func(_ context.Context, dest *entity.PushDestination) error {
			saved = dest
			return nil
		})

	err := fx.service.RegisterToken(ctx, "user-1", "token-abc", "Mozilla/5.0")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "token-abc", saved.Token)
	assert.Equal(t, "user-1", saved.UserID)
	assert.Equal(t, "Mozilla/5.0", saved.UserAgent)
}

func TestDeviceService_RegisterToken_MissingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	err := fx.service.RegisterToken(context.Background(), "user-1", "", "")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestDeviceService_Ping_UsesDefaults(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.messenger.EXPECT().
		Send(ctx, "token-abc", entity.NewPingPayload("", "", "")).
		Return("projects/x/messages/1", nil)

	messageID, err := fx.service.Ping(ctx, "token-abc", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "projects/x/messages/1", messageID)
}

func TestDeviceService_Ping_MissingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.Ping(context.Background(), "", "", "", "")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestDeviceService_ValidateToken_OK(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.messenger.EXPECT().
		SendDryRun(ctx, "token-abc").
		Return("projects/x/messages/dry-1", nil)

	validation := fx.service.ValidateToken(ctx, "token-abc")
	assert.True(t, validation.OK)
	assert.Equal(t, "projects/x/messages/dry-1", validation.DryRunID)
	assert.Empty(t, validation.ErrorCode)
}

func TestDeviceService_ValidateToken_Rejected(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.messenger.EXPECT().
		SendDryRun(ctx, "token-dead").
		Return("", &service.SendError{
			Code:      "registration-token-not-registered",
			Permanent: true,
			Err:       errors.New("requested entity was not found"),
		})

	validation := fx.service.ValidateToken(ctx, "token-dead")
	assert.False(t, validation.OK)
	assert.Equal(t, "registration-token-not-registered", validation.ErrorCode)
	assert.Equal(t, "requested entity was not found", validation.ErrorMessage)
}

func TestDeviceService_ValidateToken_MissingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	validation := fx.service.ValidateToken(context.Background(), "")
	assert.False(t, validation.OK)
	assert.Equal(t, "missing-token", validation.ErrorCode)
}
