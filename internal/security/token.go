// Package security issues and verifies the bearer tokens the API accepts.
package security

import (
	"time"

	"github.com/google/uuid"
)

// Scope says what a token may be used for. Only access tokens reach handlers.
type Scope string

const (
	ScopeAccess  Scope = "access"
	ScopeRefresh Scope = "refresh"
)

// Claims are the caller-chosen parts of a token.
type Claims struct {
	UserID      uuid.UUID
	Scope       Scope
	Permissions []string
}

type Maker interface {
	CreateToken(claims Claims, duration time.Duration) (string, *Payload, error)
	VerifyToken(token string) (*Payload, error)
}
