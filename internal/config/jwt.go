package config

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	PrivateKeyPath string        `mapstructure:"private_key_path"`
	PublicKeyPath  string        `mapstructure:"public_key_path"`
	TokenLifetime  time.Duration `mapstructure:"token_lifetime"`
}

// Ephemeral reports whether no key pair is configured and one has to be
// generated at startup.
func (j JWT) Ephemeral() bool {
	return j.PrivateKeyPath == ""
}

// LoadKeys reads the configured PEM key pair, or generates a fresh one when
// no paths are set.
func (j JWT) LoadKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	if j.Ephemeral() {
		privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to generate JWT key: %w", err)
		}
		return privateKey, &privateKey.PublicKey, nil
	}

	privateKeyBytes, err := os.ReadFile(j.PrivateKeyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read JWT private key: %w", err)
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to parse JWT private key: %w", err)
	}

	publicKeyBytes, err := os.ReadFile(j.PublicKeyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read JWT public key: %w", err)
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to parse JWT public key: %w", err)
	}

	return privateKey, publicKey, nil
}
