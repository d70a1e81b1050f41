package auth

import (
	"context"
	"fmt"

	"evalert/config"
	"evalert/internal/domain/constants"
	"evalert/internal/domain/service"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type staticAdminPolicy struct {
	uids map[string]struct{}
}

// NewStaticAdminPolicy grants admin to the configured UID allowlist.
func NewStaticAdminPolicy(cfg *config.AdminConfig) service.AdminPolicy {
	uids := make(map[string]struct{})
	if cfg != nil {
		for _, uid := range cfg.UIDs {
			uids[uid] = struct{}{}
		}
	}

	return &staticAdminPolicy{uids: uids}
}

func (p *staticAdminPolicy) IsAdmin(_ context.Context, uid string) (bool, error) {
	_, ok := p.uids[uid]

	return ok, nil
}

type firestoreAdminPolicy struct {
	static service.AdminPolicy
	client *firestore.Client
}

// NewFirestoreAdminPolicy grants admin to the static allowlist plus any UID
// with a document in the admins collection.
func NewFirestoreAdminPolicy(static service.AdminPolicy, client *firestore.Client) service.AdminPolicy {
	return &firestoreAdminPolicy{static: static, client: client}
}

func (p *firestoreAdminPolicy) IsAdmin(ctx context.Context, uid string) (bool, error) {
	if ok, err := p.static.IsAdmin(ctx, uid); err != nil || ok {
		return ok, err
	}

	_, err := p.client.Collection(constants.CollectionAdmins).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}

		return false, fmt.Errorf("failed to look up admin record: %w", err)
	}

	return true, nil
}
