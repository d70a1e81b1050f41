package firestore

import (
	"context"

	"evalert/internal/domain/constants"
	"evalert/internal/domain/entity"
	"evalert/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type betRepository struct {
	client *fs.Client
}

// NewBetRepository creates a Firestore-backed starred bet store scoped at
// users/{uid}/myBets/{betID}.
func NewBetRepository(client *fs.Client) repository.BetRepository {
	return &betRepository{client: client}
}

func (r *betRepository) betDoc(userID, betID string) *fs.DocumentRef {
	return r.client.Collection(constants.CollectionUsers).
		Doc(userID).
		Collection(constants.CollectionMyBets).
		Doc(betID)
}

// Star persists a starred bet with merge semantics.
func (r *betRepository) Star(ctx context.Context, bet *entity.StarredBet) error {
	data := map[string]any{
		"createdAt": fs.ServerTimestamp,
		"status":    string(bet.EffectiveStatus()),
		"event":     bet.Event,
		"league":    bet.League,
		"kickoff":   bet.Kickoff,
		"market":    bet.Market,
		"bookmaker": bet.Bookmaker,
	}
	if bet.Odds != nil {
		data["odds"] = *bet.Odds
	}
	if bet.EVPercent != nil {
		data["ev"] = *bet.EVPercent
	}
	if bet.Source != "" {
		data["source"] = bet.Source
	}
	if bet.Message != "" {
		data["message"] = bet.Message
	}

	if _, err := r.betDoc(bet.UserID, bet.ID).Set(ctx, data, fs.MergeAll); err != nil {
		return errors.Wrap(err, "failed to star bet")
	}

	return nil
}

// Unstar deletes a starred bet outright.
func (r *betRepository) Unstar(ctx context.Context, userID, betID string) error {
	doc := r.betDoc(userID, betID)

	if _, err := doc.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrBetNotFound
		}

		return errors.Wrap(err, "failed to look up bet")
	}

	if _, err := doc.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to unstar bet")
	}

	return nil
}

// ListByUser returns the newest starred bets for a user, newest first.
func (r *betRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.StarredBet, error) {
	iter := r.client.Collection(constants.CollectionUsers).
		Doc(userID).
		Collection(constants.CollectionMyBets).
		OrderBy("createdAt", fs.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var bets []*entity.StarredBet
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate bets")
		}

		bet := &entity.StarredBet{}
		if err := doc.DataTo(bet); err != nil {
			return nil, errors.Wrap(err, "failed to decode bet")
		}
		bet.ID = doc.Ref.ID
		bet.UserID = userID

		bets = append(bets, bet)
	}

	return bets, nil
}

// ApplyStatus writes back a reconciled status update. Absent fields stay
// untouched.
func (r *betRepository) ApplyStatus(ctx context.Context, userID, betID string, update repository.BetStatusUpdate) error {
	updates := []fs.Update{
		{Path: "status", Value: string(update.Status)},
	}
	if update.Kickoff != "" {
		updates = append(updates, fs.Update{Path: "kickoff", Value: update.Kickoff})
	}
	if update.Bookmaker != "" {
		updates = append(updates, fs.Update{Path: "bookmaker", Value: update.Bookmaker})
	}
	if update.SetFinished {
		updates = append(updates, fs.Update{Path: "finishedAt", Value: fs.ServerTimestamp})
	}

	if _, err := r.betDoc(userID, betID).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrBetNotFound
		}

		return errors.Wrap(err, "failed to apply bet status")
	}

	return nil
}

// ListUserIDs enumerates every user document, including users that only exist
// through their subcollections.
func (r *betRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	iter := r.client.Collection(constants.CollectionUsers).DocumentRefs(ctx)

	var userIDs []string
	for {
		ref, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate users")
		}

		userIDs = append(userIDs, ref.ID)
	}

	return userIDs, nil
}
