package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"evalert/internal/betmsg"
	deliverycontext "evalert/internal/delivery/context"
	"evalert/internal/domain/entity"
	"evalert/internal/domain/repository"
	"evalert/internal/usecase"
)

// ErrBetNotFound is returned when a starred bet does not exist.
var ErrBetNotFound = errors.New("bet not found")

// ErrOpportunityNotFound is returned when the referenced opportunity is no
// longer in the source feed.
var ErrOpportunityNotFound = errors.New("opportunity not found")

type betService struct {
	betRepo repository.BetRepository
	oppRepo repository.OpportunityRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewBetService creates a new bet service instance.
func NewBetService(
	betRepo repository.BetRepository,
	oppRepo repository.OpportunityRepository,
	logger *slog.Logger,
) usecase.BetUsecase {
	return newBetService(betRepo, oppRepo, logger, time.Now)
}

func newBetService(
	betRepo repository.BetRepository,
	oppRepo repository.OpportunityRepository,
	logger *slog.Logger,
	now func() time.Time,
) *betService {
	return &betService{
		betRepo: betRepo,
		oppRepo: oppRepo,
		logger:  logger,
		now:     now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *betService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hydrateFromMessage backfills structured fields from the raw alert message.
// Older feed documents only carry the message text.
func hydrateFromMessage(opp *entity.SourceOpportunity) {
	if opp.Message == "" {
		return
	}

	parsed := betmsg.ParseMessage(opp.Message)
	if opp.Event == "" {
		opp.Event = parsed.Event
	}
	if opp.League == "" {
		opp.League = parsed.League
	}
	if opp.Market == "" {
		opp.Market = parsed.Selection
	}
	if opp.Kickoff == "" {
		opp.Kickoff = parsed.Kickoff
	}
	if opp.Bookmaker == "" {
		opp.Bookmaker = parsed.Bookmaker
	}
	if opp.Odds == nil {
		opp.Odds = parsed.OfferOdds
	}
	if opp.EVPercent == nil {
		opp.EVPercent = parsed.EVPercent
	}
}

// Star copies an opportunity from the source feed into the user's starred
// bets, freezing its display fields at star time.
func (srv *betService) Star(ctx context.Context, userID, opportunityID string) (*entity.StarredBet, error) {
	opp, err := srv.oppRepo.FindSourceByID(ctx, opportunityID)
	if err != nil {
		if errors.Is(err, repository.ErrOpportunityNotFound) {
			return nil, ErrOpportunityNotFound
		}

		return nil, fmt.Errorf("failed to find opportunity: %w", err)
	}
	hydrateFromMessage(opp)

	bet := &entity.StarredBet{
		ID:        opportunityID,
		UserID:    userID,
		Status:    entity.BetStatusActive,
		Event:     opp.Event,
		League:    opp.League,
		Kickoff:   opp.Kickoff,
		Market:    opp.Market,
		Odds:      opp.Odds,
		EVPercent: opp.EVPercent,
		Bookmaker: opp.Bookmaker,
	}
	if err := srv.betRepo.Star(ctx, bet); err != nil {
		return nil, fmt.Errorf("failed to star bet: %w", err)
	}

	srv.log(ctx).Info("Bet starred",
		slog.String("user_id", userID),
		slog.String("bet_id", opportunityID))

	return bet, nil
}

// Unstar removes a starred bet.
func (srv *betService) Unstar(ctx context.Context, userID, betID string) error {
	if err := srv.betRepo.Unstar(ctx, userID, betID); err != nil {
		if errors.Is(err, repository.ErrBetNotFound) {
			return ErrBetNotFound
		}

		return fmt.Errorf("failed to unstar bet: %w", err)
	}

	srv.log(ctx).Info("Bet unstarred",
		slog.String("user_id", userID),
		slog.String("bet_id", betID))

	return nil
}

// ListBets returns the user's starred bets with each record's lifecycle
// status reconciled on the way out.
func (srv *betService) ListBets(ctx context.Context, userID string, status entity.BetStatus, limit int) ([]*entity.StarredBet, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	bets, err := srv.betRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bets: %w", err)
	}

	reconciled := make([]*entity.StarredBet, 0, len(bets))
	for _, bet := range bets {
		bet = srv.Reconcile(ctx, userID, bet)
		if status != "" && bet.EffectiveStatus() != status {
			continue
		}
		reconciled = append(reconciled, bet)
	}

	return reconciled, nil
}

// ReconcileUser re-evaluates every starred bet of one user and returns the
// number of records evaluated.
func (srv *betService) ReconcileUser(ctx context.Context, userID string, limit int) (int, error) {
	if limit <= 0 || limit > 500 {
		limit = 500
	}

	bets, err := srv.betRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to list bets: %w", err)
	}

	for _, bet := range bets {
		srv.Reconcile(ctx, userID, bet)
	}

	return len(bets), nil
}

// ReconcileAll sweeps every user's starred bets. Per-user failures are logged
// and skipped so one bad record cannot stall the sweep.
func (srv *betService) ReconcileAll(ctx context.Context, perUserLimit int) (int, error) {
	userIDs, err := srv.betRepo.ListUserIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	total := 0
	for _, userID := range userIDs {
		count, err := srv.ReconcileUser(ctx, userID, perUserLimit)
		if err != nil {
			srv.log(ctx).Error("Sweep failed for user", slog.Any("error", err), slog.String("user_id", userID))

			continue
		}
		total += count
	}

	srv.log(ctx).Info("Sweep completed", slog.Int("users", len(userIDs)), slog.Int("bets", total))

	return total, nil
}

// Reconcile evaluates one starred bet's lifecycle status against kickoff time
// and feed presence, persisting the transition only when something changed.
// Finished is terminal. Repository failures leave the record untouched.
func (srv *betService) Reconcile(ctx context.Context, userID string, bet *entity.StarredBet) *entity.StarredBet {
	current := bet.EffectiveStatus()
	if current == entity.BetStatusFinished {
		return bet
	}

	opp, err := srv.oppRepo.FindSourceByID(ctx, bet.ID)
	inSource := err == nil
	if err != nil && !errors.Is(err, repository.ErrOpportunityNotFound) {
		srv.log(ctx).Warn("Skipping reconcile, source feed lookup failed",
			slog.Any("error", err),
			slog.String("bet_id", bet.ID))

		return bet
	}

	// Display fields follow the live feed while the opportunity is still in it.
	var kickoff, bookmaker string
	if inSource {
		if opp.Kickoff != "" && opp.Kickoff != bet.Kickoff {
			kickoff = opp.Kickoff
		}
		if opp.Bookmaker != "" && opp.Bookmaker != bet.Bookmaker {
			bookmaker = opp.Bookmaker
		}
	}

	next, setFinished := srv.nextStatus(ctx, bet, current, inSource, kickoff)

	if next == bet.Status && kickoff == "" && bookmaker == "" {
		return bet
	}

	update := repository.BetStatusUpdate{
		Status:      next,
		Kickoff:     kickoff,
		Bookmaker:   bookmaker,
		SetFinished: setFinished,
	}
	if err := srv.betRepo.ApplyStatus(ctx, userID, bet.ID, update); err != nil {
		srv.log(ctx).Error("Failed to apply bet status",
			slog.Any("error", err),
			slog.String("bet_id", bet.ID),
			slog.String("status", string(next)))

		return bet
	}

	srv.log(ctx).Info("Bet status reconciled",
		slog.String("user_id", userID),
		slog.String("bet_id", bet.ID),
		slog.String("from", string(current)),
		slog.String("to", string(next)))

	bet.Status = next
	if kickoff != "" {
		bet.Kickoff = kickoff
	}
	if bookmaker != "" {
		bet.Bookmaker = bookmaker
	}
	if setFinished && bet.FinishedAt == nil {
		finishedAt := srv.now()
		bet.FinishedAt = &finishedAt
	}

	return bet
}

// nextStatus decides the target lifecycle status for a non-finished bet.
// freshKickoff carries a drifted kickoff text from the source feed, used in
// preference to the persisted one.
func (srv *betService) nextStatus(ctx context.Context, bet *entity.StarredBet, current entity.BetStatus, inSource bool, freshKickoff string) (entity.BetStatus, bool) {
	kickoffText := bet.Kickoff
	if freshKickoff != "" {
		kickoffText = freshKickoff
	}
	kickoffAt := betmsg.ParseKickoff(kickoffText)

	switch entity.TimeStatusAt(srv.now(), kickoffAt) {
	case entity.TimeStatusLive:
		return entity.BetStatusLive, false
	case entity.TimeStatusPre:
		return entity.BetStatusActive, false
	case entity.TimeStatusPost:
		if inSource {
			// Still offered upstream after the live window; keep the current
			// status until the feeds agree the event is over.
			return current, false
		}

		settled, err := srv.oppRepo.ExistsInResults(ctx, bet.ID)
		if err != nil {
			srv.log(ctx).Warn("Results feed lookup failed",
				slog.Any("error", err),
				slog.String("bet_id", bet.ID))

			return current, false
		}
		if settled {
			return entity.BetStatusFinished, true
		}

		return current, false
	default:
		// Unknown kickoff, keep whatever is persisted.
		return current, false
	}
}

// ListOpenOpportunities returns the open feed sorted by bookmaker, plus the
// distinct bookmaker names present in it.
func (srv *betService) ListOpenOpportunities(ctx context.Context, limit int) ([]*entity.SourceOpportunity, []string, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	opportunities, err := srv.oppRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	now := srv.now()
	open := make([]*entity.SourceOpportunity, 0, len(opportunities))
	bookmakerSet := make(map[string]struct{})

	for _, opp := range opportunities {
		hydrateFromMessage(opp)
		opp.KickoffAt = betmsg.ParseKickoff(opp.Kickoff)
		if !opp.Open(now) {
			continue
		}

		open = append(open, opp)
		if opp.Bookmaker != "" {
			bookmakerSet[opp.Bookmaker] = struct{}{}
		}
	}

	sort.SliceStable(open, func(i, j int) bool {
		return open[i].Bookmaker < open[j].Bookmaker
	})

	bookmakers := make([]string, 0, len(bookmakerSet))
	for name := range bookmakerSet {
		bookmakers = append(bookmakers, name)
	}
	sort.Strings(bookmakers)

	return open, bookmakers, nil
}
