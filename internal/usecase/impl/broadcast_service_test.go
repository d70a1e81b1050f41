package impl

import (
	"context"
	"fmt"
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

// broadcastServiceFixtures holds all test dependencies for broadcast service tests.
type broadcastServiceFixtures struct {
	service   usecase.BroadcastUsecase
	destRepo  *mockRepo.MockDestinationRepository
	history   *mockRepo.MockBroadcastRepository
	messenger *mockService.MockMessenger
	publisher *mockService.MockEventPublisher
}

func createTestBroadcastService(t *testing.T) broadcastServiceFixtures {
	destRepo := mockRepo.NewMockDestinationRepository(t)
	history := mockRepo.NewMockBroadcastRepository(t)
	messenger := mockService.NewMockMessenger(t)
	publisher := mockService.NewMockEventPublisher(t)
	svc := NewBroadcastService(destRepo, history, messenger, publisher, nil, newDiscardLogger())

	return broadcastServiceFixtures{
		service:   svc,
		destRepo:  destRepo,
		history:   history,
		messenger: messenger,
		publisher: publisher,
	}
}

func destinations(tokens ...string) []*entity.PushDestination {
	dests := make([]*entity.PushDestination, 0, len(tokens))
	for _, token := range tokens {
		dests = append(dests, &entity.PushDestination{Token: token, UserID: "user-1"})
	}

	return dests
}

func allSucceeded(tokens []string) *service.MulticastResult {
	responses := make([]service.SendResponse, len(tokens))
	for i := range tokens {
		responses[i] = service.SendResponse{MessageID: fmt.Sprintf("msg-%d", i)}
	}

	return &service.MulticastResult{Succeeded: len(tokens), Responses: responses}
}

func TestBroadcastService_Broadcast_DedupesTokens(t *testing.T) {
	fx := createTestBroadcastService(t)
	ctx := context.Background()

	fx.history.EXPECT().
		CreateBroadcast(ctx, mock.AnythingOfType("*entity.BroadcastRecord")).
		Return(nil)

	fx.destRepo.EXPECT().
		ListAll(ctx).
		Return(destinations("token-a", "token-b", "token-a", "token-b", "token-c"), nil)

	var sent []string
	fx.messenger.EXPECT().
		SendMulticast(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tokens []string, _ entity.BroadcastPayload) (*service.MulticastResult, error) {
			sent = tokens
			return allSucceeded(tokens), nil
		})

	fx.history.EXPECT().
		UpdateBroadcastCounts(ctx, mock.Anything, 3, 3, 0, 2).
		Return(nil)

	report, err := fx.service.Broadcast(ctx, "admin-uid", usecase.BroadcastInput{Title: "hello"})
	require.NoError(t, err)
	assert.Equal(t, []string{"token-a", "token-b", "token-c"}, sent)
	assert.Equal(t, 3, report.Sent)
	assert.Equal(t, 3, report.Succeeded)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 2, report.DuplicatesPruned)
	assert.Empty(t, report.Failures)
}

func TestBroadcastService_Broadcast_ChunksSequentially(t *testing.T) {
	fx := createTestBroadcastService(t)
	ctx := context.Background()

	tokens := make([]string, 1200)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%04d", i)
	}

	fx.history.EXPECT().
		CreateBroadcast(ctx, mock.Anything).
		Return(nil)

	fx.destRepo.EXPECT().
		ListAll(ctx).
		Return(destinations(tokens...), nil)

	var chunkSizes []int
	fx.messenger.EXPECT().
		SendMulticast(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, chunk []string, _ entity.BroadcastPayload) (*service.MulticastResult, error) {
			chunkSizes = append(chunkSizes, len(chunk))
			return allSucceeded(chunk), nil
		}).
		Times(3)

	fx.history.EXPECT().
		UpdateBroadcastCounts(ctx, mock.Anything, 1200, 1200, 0, 0).
		Return(nil)

	report, err := fx.service.Broadcast(ctx, "admin-uid", usecase.BroadcastInput{})
	require.NoError(t, err)
	assert.Equal(t, []int{500, 500, 200}, chunkSizes)
	assert.Equal(t, 1200, report.Sent)
	assert.Equal(t, 1200, report.Succeeded)
}

func TestBroadcastService_Broadcast_NoDestinations(t *testing.T) {
	fx := createTestBroadcastService(t)
	ctx := context.Background()

	fx.history.EXPECT().
		CreateBroadcast(ctx, mock.Anything).
		Return(nil)

	fx.destRepo.EXPECT().
		ListAll(ctx).
		Return(nil, nil)

	fx.history.EXPECT().
		UpdateBroadcastCounts(ctx, mock.Anything, 0, 0, 0, 0).
		Return(nil)

	report, err := fx.service.Broadcast(ctx, "admin-uid", usecase.BroadcastInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Sent)
	assert.Equal(t, 0, report.Succeeded)
	assert.Equal(t, 0, report.Failed)
}

func TestBroadcastService_Broadcast_DeletesPermanentlyInvalid(t *testing.T) {
	fx := createTestBroadcastService(t)
	ctx := context.Background()

	fx.history.EXPECT().
		CreateBroadcast(ctx, mock.Anything).
		Return(nil)

	fx.destRepo.EXPECT().
		ListAll(ctx).
		Return(destinations("token-good", "token-gone-aaaa", "token-flaky"), nil)

	fx.messenger.EXPECT().
		SendMulticast(ctx, mock.Anything, mock.Anything).
		Return(&service.MulticastResult{
			Succeeded: 1,
			Failed:    2,
			Responses: []service.SendResponse{
				{MessageID: "msg-0"},
				{ErrorCode: "registration-token-not-registered", ErrorMessage: "token gone", Permanent: true},
				{ErrorCode: "unavailable", ErrorMessage: "try later"},
			},
		}, nil)

	fx.destRepo.EXPECT().
		Delete(ctx, "token-gone-aaaa").
		Return(nil)

	fx.history.EXPECT().
		UpdateBroadcastCounts(ctx, mock.Anything, 3, 1, 2, 0).
		Return(nil)

	fx.history.EXPECT().
		BatchCreateFailureLogs(ctx, mock.Anything).
		Return(nil)

	report, err := fx.service.Broadcast(ctx, "admin-uid", usecase.BroadcastInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 2, report.Failed)
	require.Len(t, report.Failures, 2)
	assert.Equal(t, entity.Preview("token-gone-aaaa"), report.Failures[0].DestinationPreview)
	assert.Equal(t, "registration-token-not-registered", report.Failures[0].ErrorCode)
	assert.Equal(t, "unavailable", report.Failures[1].ErrorCode)
}

func TestBroadcastService_Broadcast_ChunkErrorFailsWholeChunk(t *testing.T) {
	fx := createTestBroadcastService(t)
	ctx := context.Background()

	fx.history.EXPECT().
		CreateBroadcast(ctx, mock.Anything).
		Return(nil)

	fx.destRepo.EXPECT().
		ListAll(ctx).
		Return(destinations("token-a", "token-b"), nil)

	fx.messenger.EXPECT().
		SendMulticast(ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("backend unreachable"))

	fx.history.EXPECT().
		UpdateBroadcastCounts(ctx, mock.Anything, 2, 0, 2, 0).
		Return(nil)

	fx.history.EXPECT().
		BatchCreateFailureLogs(ctx, mock.Anything).
		Return(nil)

	report, err := fx.service.Broadcast(ctx, "admin-uid", usecase.BroadcastInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 0, report.Succeeded)
	assert.Equal(t, 2, report.Failed)
	require.Len(t, report.Failures, 2)
	assert.Equal(t, "multicast-error", report.Failures[0].ErrorCode)
}

func TestBroadcastService_Broadcast_ListAllError(t *testing.T) {
	fx := createTestBroadcastService(t)
	ctx := context.Background()

	fx.history.EXPECT().
		CreateBroadcast(ctx, mock.Anything).
		Return(nil)

	fx.destRepo.EXPECT().
		ListAll(ctx).
		Return(nil, errors.New("store down"))

	report, err := fx.service.Broadcast(ctx, "admin-uid", usecase.BroadcastInput{})
	require.Error(t, err)
	assert.Nil(t, report)
}

func TestBroadcastService_EnqueueBroadcast(t *testing.T) {
	fx := createTestBroadcastService(t)
	ctx := context.Background()

	fx.history.EXPECT().
		CreateBroadcast(ctx, mock.Anything).
		Return(nil)

	var published *service.BroadcastEvent
	fx.publisher.EXPECT().
		PublishBroadcastEvent(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.BroadcastEvent) error {
			published = event
			return nil
		})

	id, err := fx.service.EnqueueBroadcast(ctx, "admin-uid", usecase.BroadcastInput{Title: "t", Body: "b", URL: "/x"})
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, id.String(), published.BroadcastID)
	assert.Equal(t, "admin-uid", published.ActorUID)
	assert.Equal(t, "t", published.Title)
	assert.Equal(t, "b", published.Body)
	assert.Equal(t, "/x", published.LinkURL)
}

func TestBroadcastService_History_DefaultsLimit(t *testing.T) {
	fx := createTestBroadcastService(t)
	ctx := context.Background()

	fx.history.EXPECT().
		FindRecentBroadcasts(ctx, 20, 0).
		Return([]*entity.BroadcastRecord{}, nil)

	records, err := fx.service.History(ctx, 0, -5)
	require.NoError(t, err)
	assert.Empty(t, records)
}
