package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid game token")

// GameClaims grant control over a single game.
type GameClaims struct {
	GameID string `json:"game_id"`
	jwt.RegisteredClaims
}

type Issuer struct {
	publicKey     *rsa.PublicKey
	privateKey    *rsa.PrivateKey
	signingMethod jwt.SigningMethod
	tokenLifetime time.Duration
}

func NewIssuer(
	privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, tokenLifetime time.Duration,
) *Issuer {
	return &Issuer{
		privateKey:    privateKey,
		publicKey:     publicKey,
		signingMethod: jwt.SigningMethodRS256,
		tokenLifetime: tokenLifetime,
	}
}

func (i *Issuer) Sign(gameID string) (string, error) {
	now := time.Now()
	claims := GameClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.tokenLifetime)),
		},
	}
	return jwt.NewWithClaims(i.signingMethod, claims).SignedString(i.privateKey)
}

func (i *Issuer) Parse(tokenString string) (*GameClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&GameClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return i.publicKey, nil
		},
		jwt.WithValidMethods([]string{i.signingMethod.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*GameClaims)
	if !ok || claims.GameID == "" {
		return nil, fmt.Errorf("%w: malformed claims", ErrInvalidToken)
	}
	return claims, nil
}
