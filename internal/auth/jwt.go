package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ClientIDClaim names the claim carrying the client id.
const ClientIDClaim = "client_id"

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid claims")
)

// GenerateToken signs a token for clientID valid for ttl.
func GenerateToken(secret []byte, clientID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		ClientIDClaim: clientID,
		"exp":         time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates tokenStr and returns its client id.
func ParseToken(secret []byte, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidClaims
	}
	clientID, ok := claims[ClientIDClaim].(string)
	if !ok || clientID == "" {
		return "", ErrInvalidClaims
	}

	return clientID, nil
}
