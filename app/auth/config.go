package auth

import (
	"errors"

	"golang.org/x/crypto/chacha20poly1305"
)

type Config struct {
	SymmetricKey string `env:"SYMMETRIC_KEY" secret:"true"`
}

func (c *Config) Validate() error {
	if c.SymmetricKey == "" {
		return errors.New("symmetric key must be set")
	}
	if len(c.SymmetricKey) != chacha20poly1305.KeySize {
		return errors.New("symmetric key must be exactly 32 characters")
	}
	return nil
}

func GetDefaultConfig() *Config {
	return &Config{
		SymmetricKey: "12345678901234567890123456789012",
	}
}
