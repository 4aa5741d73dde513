package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/rubhub/catalog/internal/security"
)

// RevocationStore persists revoked token ids
type RevocationStore interface {
	Revoke(ctx context.Context, payload *security.Payload) error
	IsRevoked(ctx context.Context, tokenID uuid.UUID) (bool, error)
}
