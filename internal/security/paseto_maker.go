package security

import (
	"fmt"
	"time"

	"github.com/o1egl/paseto"
	"golang.org/x/crypto/chacha20poly1305"
)

// PasetoMaker issues PASETO v2.local tokens, encrypted with a shared key.
type PasetoMaker struct {
	paseto       *paseto.V2
	symmetricKey []byte
	now          func() time.Time
}

var _ Maker = (*PasetoMaker)(nil)

// NewPasetoMaker needs a key of exactly chacha20poly1305.KeySize bytes.
func NewPasetoMaker(symmetricKey string) (*PasetoMaker, error) {
	if len(symmetricKey) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("invalid key size: must be exactly %d characters", chacha20poly1305.KeySize)
	}

	return &PasetoMaker{
		paseto:       paseto.NewV2(),
		symmetricKey: []byte(symmetricKey),
		now:          time.Now,
	}, nil
}

func (m *PasetoMaker) CreateToken(claims Claims, duration time.Duration) (string, *Payload, error) {
	payload, err := NewPayload(claims, m.now(), duration)
	if err != nil {
		return "", nil, err
	}

	token, err := m.paseto.Encrypt(m.symmetricKey, payload, nil)
	if err != nil {
		return "", nil, fmt.Errorf("encrypt token: %w", err)
	}
	return token, payload, nil
}

// VerifyToken returns ErrInvalidToken for anything it cannot decrypt and
// ErrExpiredToken for a well-formed token past its expiry.
func (m *PasetoMaker) VerifyToken(token string) (*Payload, error) {
	var payload Payload
	if err := m.paseto.Decrypt(token, m.symmetricKey, &payload, nil); err != nil {
		return nil, ErrInvalidToken
	}

	if err := payload.Validate(m.now()); err != nil {
		return nil, err
	}
	return &payload, nil
}
