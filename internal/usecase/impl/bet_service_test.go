package impl

import (
	"context"
	"testing"
	"time"

	"evalert/internal/domain/entity"
	"evalert/internal/domain/repository"
	mockRepo "evalert/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// betServiceFixtures holds all test dependencies for bet service tests.
type betServiceFixtures struct {
	service *betService
	betRepo *mockRepo.MockBetRepository
	oppRepo *mockRepo.MockOpportunityRepository
	now     time.Time
}

func createTestBetService(t *testing.T) betServiceFixtures {
	betRepo := mockRepo.NewMockBetRepository(t)
	oppRepo := mockRepo.NewMockOpportunityRepository(t)
	now := time.Date(2025, 8, 26, 18, 0, 0, 0, time.Local)
	svc := newBetService(betRepo, oppRepo, newDiscardLogger(), func() time.Time { return now })

	return betServiceFixtures{
		service: svc,
		betRepo: betRepo,
		oppRepo: oppRepo,
		now:     now,
	}
}

func sourceOpp(id, kickoff, bookmaker string) *entity.SourceOpportunity {
	return &entity.SourceOpportunity{
		ID:        id,
		Event:     "FC Example - AC Sample",
		League:    "Superligaen",
		Market:    "1",
		Kickoff:   kickoff,
		Bookmaker: bookmaker,
	}
}

func TestBetService_Reconcile_FinishedIsTerminal(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	finishedAt := fx.now.Add(-24 * time.Hour)
	bet := &entity.StarredBet{
		ID:         "bet-1",
		Status:     entity.BetStatusFinished,
		Kickoff:    kickoffText(fx.now.Add(-time.Hour)),
		FinishedAt: &finishedAt,
	}

	got := fx.service.Reconcile(ctx, "user-1", bet)
	assert.Equal(t, entity.BetStatusFinished, got.Status)
	assert.Equal(t, &finishedAt, got.FinishedAt)
}

func TestBetService_Reconcile_LiveWindowOverridesSource(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	kickoff := kickoffText(fx.now.Add(-time.Hour))
	bet := &entity.StarredBet{ID: "bet-1", Status: entity.BetStatusActive, Kickoff: kickoff, Bookmaker: "bet365"}

	fx.oppRepo.EXPECT().
		FindSourceByID(ctx, "bet-1").
		Return(sourceOpp("bet-1", kickoff, "bet365"), nil)

	fx.betRepo.EXPECT().
		ApplyStatus(ctx, "user-1", "bet-1", repository.BetStatusUpdate{Status: entity.BetStatusLive}).
		Return(nil)

	got := fx.service.Reconcile(ctx, "user-1", bet)
	assert.Equal(t, entity.BetStatusLive, got.Status)
	assert.Nil(t, got.FinishedAt)
}

func TestBetService_Reconcile_LiveWindowBoundary(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	// Exactly two hours after kickoff is still inside the live window.
	kickoff := kickoffText(fx.now.Add(-entity.LiveWindow))
	bet := &entity.StarredBet{ID: "bet-1", Status: entity.BetStatusActive, Kickoff: kickoff}

	fx.oppRepo.EXPECT().
		FindSourceByID(ctx, "bet-1").
		Return(sourceOpp("bet-1", kickoff, ""), nil)

	fx.betRepo.EXPECT().
		ApplyStatus(ctx, "user-1", "bet-1", repository.BetStatusUpdate{Status: entity.BetStatusLive}).
		Return(nil)

	got := fx.service.Reconcile(ctx, "user-1", bet)
	assert.Equal(t, entity.BetStatusLive, got.Status)
}

func TestBetService_Reconcile_PostAndSettledFinishes(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	kickoff := kickoffText(fx.now.Add(-3 * time.Hour))
	bet := &entity.StarredBet{ID: "bet-1", Status: entity.BetStatusLive, Kickoff: kickoff}

	fx.oppRepo.EXPECT().
		FindSourceByID(ctx, "bet-1").
		Return(nil, repository.ErrOpportunityNotFound)

	fx.oppRepo.EXPECT().
		ExistsInResults(ctx, "bet-1").
		Return(true, nil)

	fx.betRepo.EXPECT().
		ApplyStatus(ctx, "user-1", "bet-1", repository.BetStatusUpdate{
			Status:      entity.BetStatusFinished,
			SetFinished: true,
		}).
		Return(nil)

	got := fx.service.Reconcile(ctx, "user-1", bet)
	assert.Equal(t, entity.BetStatusFinished, got.Status)
	require.NotNil(t, got.FinishedAt)
	assert.Equal(t, fx.now, *got.FinishedAt)
}

func TestBetService_Reconcile_PostStillInSourceUnchanged(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	kickoff := kickoffText(fx.now.Add(-3 * time.Hour))
	bet := &entity.StarredBet{ID: "bet-1", Status: entity.BetStatusLive, Kickoff: kickoff}

	fx.oppRepo.EXPECT().
		FindSourceByID(ctx, "bet-1").
		Return(sourceOpp("bet-1", kickoff, ""), nil)

	got := fx.service.Reconcile(ctx, "user-1", bet)
	assert.Equal(t, entity.BetStatusLive, got.Status)
	assert.Nil(t, got.FinishedAt)
}

func TestBetService_Reconcile_PostNotSettledUnchanged(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	kickoff := kickoffText(fx.now.Add(-3 * time.Hour))
	bet := &entity.StarredBet{ID: "bet-1", Status: entity.BetStatusLive, Kickoff: kickoff}

	fx.oppRepo.EXPECT().
		FindSourceByID(ctx, "bet-1").
		Return(nil, repository.ErrOpportunityNotFound)

	fx.oppRepo.EXPECT().
		ExistsInResults(ctx, "bet-1").
		Return(false, nil)

	got := fx.service.Reconcile(ctx, "user-1", bet)
	assert.Equal(t, entity.BetStatusLive, got.Status)
}

func TestBetService_Reconcile_UnknownKickoffKeepsStatus(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	bet := &entity.StarredBet{ID: "bet-1", Status: entity.BetStatusActive, Kickoff: "TBD"}

	fx.oppRepo.EXPECT().
		FindSourceByID(ctx, "bet-1").
		Return(nil, repository.ErrOpportunityNotFound)

	got := fx.service.Reconcile(ctx, "user-1", bet)
	assert.Equal(t, entity.BetStatusActive, got.Status)
}

func TestBetService_Reconcile_LegacyEmptyStatusStampedOnce(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	kickoff := kickoffText(fx.now.Add(24 * time.Hour))
	bet := &entity.StarredBet{ID: "bet-1", Kickoff: kickoff}

	fx.oppRepo.EXPECT().
		FindSourceByID(ctx, "bet-1").
		Return(sourceOpp("bet-1", kickoff, ""), nil)

	fx.betRepo.EXPECT().
		ApplyStatus(ctx, "user-1", "bet-1", repository.BetStatusUpdate{Status: entity.BetStatusActive}).
		Return(nil)

	got := fx.service.Reconcile(ctx, "user-1", bet)
	assert.Equal(t, entity.BetStatusActive, got.Status)
}

func TestBetService_Reconcile_KickoffDriftRefreshed(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	oldKickoff := kickoffText(fx.now.Add(24 * time.Hour))
	newKickoff := kickoffText(fx.now.Add(48 * time.Hour))
	bet := &entity.StarredBet{ID: "bet-1", Status: entity.BetStatusActive, Kickoff: oldKickoff, Bookmaker: "bet365"}

	fx.oppRepo.EXPECT().
		FindSourceByID(ctx, "bet-1").
		Return(sourceOpp("bet-1", newKickoff, "unibet"), nil)

	fx.betRepo.EXPECT().
		ApplyStatus(ctx, "user-1", "bet-1", repository.BetStatusUpdate{
			Status:    entity.BetStatusActive,
			Kickoff:   newKickoff,
			Bookmaker: "unibet",
		}).
		Return(nil)

	got := fx.service.Reconcile(ctx, "user-1", bet)
	assert.Equal(t, newKickoff, got.Kickoff)
	assert.Equal(t, "unibet", got.Bookmaker)
}

func TestBetService_Reconcile_SourceLookupErrorLeavesBetUntouched(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	bet := &entity.StarredBet{ID: "bet-1", Status: entity.BetStatusActive, Kickoff: kickoffText(fx.now.Add(-time.Hour))}

	fx.oppRepo.EXPECT().
		FindSourceByID(ctx, "bet-1").
		Return(nil, errors.New("store down"))

	got := fx.service.Reconcile(ctx, "user-1", bet)
	assert.Equal(t, entity.BetStatusActive, got.Status)
}

func TestBetService_Star(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	kickoff := kickoffText(fx.now.Add(24 * time.Hour))
	opp := sourceOpp("opp-1", kickoff, "bet365")

	fx.oppRepo.EXPECT().
		FindSourceByID(ctx, "opp-1").
		Return(opp, nil)

	fx.betRepo.EXPECT().
		Star(ctx, mock.AnythingOfType("*entity.StarredBet")).
		Return(nil)

	bet, err := fx.service.Star(ctx, "user-1", "opp-1")
	require.NoError(t, err)
	assert.Equal(t, "opp-1", bet.ID)
	assert.Equal(t, "user-1", bet.UserID)
	assert.Equal(t, entity.BetStatusActive, bet.Status)
	assert.Equal(t, opp.Event, bet.Event)
	assert.Equal(t, kickoff, bet.Kickoff)
	assert.Equal(t, "bet365", bet.Bookmaker)
}

func TestBetService_Star_OpportunityGone(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	fx.oppRepo.EXPECT().
		FindSourceByID(ctx, "opp-1").
		Return(nil, repository.ErrOpportunityNotFound)

	bet, err := fx.service.Star(ctx, "user-1", "opp-1")
	assert.ErrorIs(t, err, ErrOpportunityNotFound)
	assert.Nil(t, bet)
}

func TestBetService_Unstar_NotFound(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	fx.betRepo.EXPECT().
		Unstar(ctx, "user-1", "bet-1").
		Return(repository.ErrBetNotFound)

	err := fx.service.Unstar(ctx, "user-1", "bet-1")
	assert.ErrorIs(t, err, ErrBetNotFound)
}

func TestBetService_ListBets_ReconcilesAndFilters(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	liveKickoff := kickoffText(fx.now.Add(-time.Hour))
	futureKickoff := kickoffText(fx.now.Add(24 * time.Hour))

	bets := []*entity.StarredBet{
		{ID: "bet-live", Status: entity.BetStatusActive, Kickoff: liveKickoff},
		{ID: "bet-upcoming", Status: entity.BetStatusActive, Kickoff: futureKickoff},
	}

	fx.betRepo.EXPECT().
		ListByUser(ctx, "user-1", 100).
		Return(bets, nil)

	fx.oppRepo.EXPECT().
		FindSourceByID(ctx, "bet-live").
		Return(sourceOpp("bet-live", liveKickoff, ""), nil)

	fx.oppRepo.EXPECT().
		FindSourceByID(ctx, "bet-upcoming").
		Return(sourceOpp("bet-upcoming", futureKickoff, ""), nil)

	fx.betRepo.EXPECT().
		ApplyStatus(ctx, "user-1", "bet-live", repository.BetStatusUpdate{Status: entity.BetStatusLive}).
		Return(nil)

	got, err := fx.service.ListBets(ctx, "user-1", entity.BetStatusLive, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bet-live", got[0].ID)
	assert.Equal(t, entity.BetStatusLive, got[0].Status)
}

func TestBetService_ListOpenOpportunities(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	future := kickoffText(fx.now.Add(24 * time.Hour))
	past := kickoffText(fx.now.Add(-time.Hour))

	opps := []*entity.SourceOpportunity{
		{ID: "opp-1", Kickoff: future, Bookmaker: "unibet"},
		{ID: "opp-2", Kickoff: future, Bookmaker: "bet365"},
		{ID: "opp-started", Kickoff: past, Bookmaker: "bet365"},
		{ID: "opp-live", Kickoff: future, Bookmaker: "bet365", Phase: "Live"},
		{ID: "opp-done", Kickoff: future, Bookmaker: "bet365", Phase: "Finished"},
	}

	fx.oppRepo.EXPECT().
		ListRecent(ctx, 100).
		Return(opps, nil)

	open, bookmakers, err := fx.service.ListOpenOpportunities(ctx, 0)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, "opp-2", open[0].ID)
	assert.Equal(t, "opp-1", open[1].ID)
	assert.Equal(t, []string{"bet365", "unibet"}, bookmakers)
}

func TestBetService_ListOpenOpportunities_LegacyMessageOnly(t *testing.T) {
	fx := createTestBetService(t)
	ctx := context.Background()

	future := kickoffText(fx.now.Add(24 * time.Hour))
	opps := []*entity.SourceOpportunity{
		{
			ID: "opp-legacy",
			Message: "*Kamp*: FC Example - AC Sample\n" +
				"*Spilletid*: " + future + "\n" +
				"*Kampvinder*: FC Example\n" +
				"*Tilbudt odds*: 2.35\n" +
				"*Bookmaker*: bet365",
		},
	}

	fx.oppRepo.EXPECT().
		ListRecent(ctx, 100).
		Return(opps, nil)

	open, bookmakers, err := fx.service.ListOpenOpportunities(ctx, 0)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "FC Example - AC Sample", open[0].Event)
	assert.Equal(t, "FC Example", open[0].Market)
	require.NotNil(t, open[0].Odds)
	assert.InDelta(t, 2.35, *open[0].Odds, 0.001)
	assert.Equal(t, []string{"bet365"}, bookmakers)
}
