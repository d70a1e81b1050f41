package firestore

import (
	"context"

	"evalert/internal/domain/constants"
	"evalert/internal/domain/entity"
	"evalert/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type destinationRepository struct {
	client *fs.Client
}

// NewDestinationRepository creates a Firestore-backed push destination store.
// Destinations live at users/{uid}/tokens/{token}; the document ID doubles as
// the token value.
func NewDestinationRepository(client *fs.Client) repository.DestinationRepository {
	return &destinationRepository{client: client}
}

func (r *destinationRepository) tokenDoc(userID, token string) *fs.DocumentRef {
	return r.client.Collection(constants.CollectionUsers).
		Doc(userID).
		Collection(constants.CollectionTokens).
		Doc(token)
}

// Save upserts a destination under its owning user with merge semantics.
func (r *destinationRepository) Save(ctx context.Context, dest *entity.PushDestination) error {
	data := map[string]any{
		"token":     dest.Token,
		"updatedAt": fs.ServerTimestamp,
	}
	if dest.UserAgent != "" {
		data["ua"] = dest.UserAgent
	}

	if _, err := r.tokenDoc(dest.UserID, dest.Token).Set(ctx, data, fs.MergeAll); err != nil {
		return errors.Wrap(err, "failed to save destination")
	}

	return nil
}

// ListAll enumerates every stored destination token across all users.
func (r *destinationRepository) ListAll(ctx context.Context) ([]*entity.PushDestination, error) {
	iter := r.client.CollectionGroup(constants.CollectionTokens).Documents(ctx)
	defer iter.Stop()

	var destinations []*entity.PushDestination
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate destinations")
		}

		dest := &entity.PushDestination{}
		if err := doc.DataTo(dest); err != nil {
			return nil, errors.Wrap(err, "failed to decode destination")
		}
		if dest.Token == "" {
			// Older documents rely on the document ID alone.
			dest.Token = doc.Ref.ID
		}
		if owner := doc.Ref.Parent.Parent; owner != nil {
			dest.UserID = owner.ID
		}

		destinations = append(destinations, dest)
	}

	return destinations, nil
}

// Delete removes a destination by token value wherever it is stored. Deleting
// an unknown token is a no-op.
func (r *destinationRepository) Delete(ctx context.Context, token string) error {
	iter := r.client.CollectionGroup(constants.CollectionTokens).
		Where("token", "==", token).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to find destination")
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Wrap(err, "failed to delete destination")
		}
	}

	return nil
}
