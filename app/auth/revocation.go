package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rubhub/catalog/internal/cache"
	"github.com/rubhub/catalog/internal/security"
)

const revokedTokenPrefix = "revoked_token:"

// RevocationList records token ids that must be rejected before they expire.
type RevocationList struct {
	cache cache.Cache[string]
	now   func() time.Time
}

var _ RevocationStore = (*RevocationList)(nil)

func NewRevocationList(c cache.Cache[string]) *RevocationList {
	return &RevocationList{cache: c, now: time.Now}
}

func revokedKey(tokenID uuid.UUID) string {
	return revokedTokenPrefix + tokenID.String()
}

// Revoke stores the token id until the token would have expired anyway.
func (r *RevocationList) Revoke(ctx context.Context, payload *security.Payload) error {
	ttl := payload.RemainingTTL(r.now())
	if ttl <= 0 {
		return nil
	}
	if err := r.cache.Set(ctx, revokedKey(payload.ID), payload.UserID.String(), ttl); err != nil {
		return fmt.Errorf("revoke token %s: %w", payload.ID, err)
	}
	return nil
}

func (r *RevocationList) IsRevoked(ctx context.Context, tokenID uuid.UUID) (bool, error) {
	_, err := r.cache.Get(ctx, revokedKey(tokenID))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, cache.ErrCacheMiss):
		return false, nil
	default:
		return false, fmt.Errorf("check token %s: %w", tokenID, err)
	}
}
