package security

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Payload is the encrypted body of a token.
type Payload struct {
	ID          uuid.UUID `json:"jti"`
	UserID      uuid.UUID `json:"sub"`
	Scope       Scope     `json:"scope"`
	Permissions []string  `json:"permissions,omitempty"`
	IssuedAt    time.Time `json:"iat"`
	ExpiresAt   time.Time `json:"exp"`
}

// NewPayload stamps claims with a fresh token id. An empty scope means access.
func NewPayload(claims Claims, issuedAt time.Time, duration time.Duration) (*Payload, error) {
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}

	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generate token id: %w", err)
	}

	scope := claims.Scope
	if scope == "" {
		scope = ScopeAccess
	}

	return &Payload{
		ID:          tokenID,
		UserID:      claims.UserID,
		Scope:       scope,
		Permissions: slices.Clone(claims.Permissions),
		IssuedAt:    issuedAt,
		ExpiresAt:   issuedAt.Add(duration),
	}, nil
}

// Validate fails once now reaches ExpiresAt or when the payload lacks an id.
func (p *Payload) Validate(now time.Time) error {
	if p.ID == uuid.Nil || p.UserID == uuid.Nil {
		return ErrInvalidToken
	}
	if !now.Before(p.ExpiresAt) {
		return ErrExpiredToken
	}
	return nil
}

// RemainingTTL is how long the token stays valid after now, never negative.
func (p *Payload) RemainingTTL(now time.Time) time.Duration {
	return max(p.ExpiresAt.Sub(now), 0)
}

func (p *Payload) HasPermission(permission string) bool {
	return slices.Contains(p.Permissions, permission)
}
