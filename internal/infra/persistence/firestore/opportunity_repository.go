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

type opportunityRepository struct {
	client *fs.Client
}

// NewOpportunityRepository creates read-only access to the externally
// maintained source and results feeds.
func NewOpportunityRepository(client *fs.Client) repository.OpportunityRepository {
	return &opportunityRepository{client: client}
}

// ListRecent returns the newest source opportunities, newest first.
func (r *opportunityRepository) ListRecent(ctx context.Context, limit int) ([]*entity.SourceOpportunity, error) {
	iter := r.client.Collection(constants.CollectionOpportunities).
		OrderBy("createdAt", fs.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var opportunities []*entity.SourceOpportunity
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate opportunities")
		}

		opp := &entity.SourceOpportunity{}
		if err := doc.DataTo(opp); err != nil {
			return nil, errors.Wrap(err, "failed to decode opportunity")
		}
		opp.ID = doc.Ref.ID

		opportunities = append(opportunities, opp)
	}

	return opportunities, nil
}

// FindSourceByID retrieves one opportunity from the live source feed.
func (r *opportunityRepository) FindSourceByID(ctx context.Context, id string) (*entity.SourceOpportunity, error) {
	doc, err := r.client.Collection(constants.CollectionOpportunities).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrOpportunityNotFound
		}

		return nil, errors.Wrap(err, "failed to get opportunity")
	}

	opp := &entity.SourceOpportunity{}
	if err := doc.DataTo(opp); err != nil {
		return nil, errors.Wrap(err, "failed to decode opportunity")
	}
	opp.ID = doc.Ref.ID

	return opp, nil
}

// ExistsInSource reports whether an opportunity is still in the live feed.
func (r *opportunityRepository) ExistsInSource(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, constants.CollectionOpportunities, id)
}

// ExistsInResults reports whether an opportunity has appeared in the results
// feed.
func (r *opportunityRepository) ExistsInResults(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, constants.CollectionResults, id)
}

func (r *opportunityRepository) exists(ctx context.Context, collection, id string) (bool, error) {
	_, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to check %s", collection)
	}

	return true, nil
}
