package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature, expiry, or
// claim checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the authenticated user extracted from a bearer token.
type Identity struct {
	UserID string
	Name   string
	Avatar string
}

// GenerateToken issues a signed HS256 token for the user.
func GenerateToken(secret string, ident Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    ident.UserID,
		"name":   ident.Name,
		"avatar": ident.Avatar,
		"iat":    now.Unix(),
		"exp":    now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token and returns the identity it carries.
func ParseToken(secret, tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}

	ident := &Identity{UserID: sub}
	if name, ok := claims["name"].(string); ok {
		ident.Name = name
	}
	if avatar, ok := claims["avatar"].(string); ok {
		ident.Avatar = avatar
	}
	return ident, nil
}
