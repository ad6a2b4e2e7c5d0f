// Package auth verifies bearer tokens issued by the external identity
// provider. Tokens are never minted here; the caller's account ID and role
// are read out of a validated HS256 JWT.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/studyhub/backend/internal/domain"
)

// Identity is the verified caller extracted from a bearer token.
type Identity struct {
	AccountID uuid.UUID
	Role      domain.AccountRole
}

// TokenVerifier validates HS256 JWT access tokens.
type TokenVerifier struct {
	secret []byte
	issuer string
}

// NewTokenVerifier creates a new token verifier.
// secret must match the issuing provider's signing key.
func NewTokenVerifier(secret string, issuer string) *TokenVerifier {
	return &TokenVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// accessClaims extends standard JWT claims with the caller's role.
type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Verify parses and validates a bearer token.
// Returns the caller's identity if valid.
func (v *TokenVerifier) Verify(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("%w: token is empty", domain.ErrUnauthorized)
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: parse token: %v", domain.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("%w: invalid token claims", domain.ErrUnauthorized)
	}

	if claims.Issuer != v.issuer {
		return Identity{}, fmt.Errorf("%w: invalid issuer %q", domain.ErrUnauthorized, claims.Issuer)
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: invalid subject: %v", domain.ErrUnauthorized, err)
	}

	role := domain.AccountRole(claims.Role)
	if claims.Role == "" {
		role = domain.RoleLearner
	}
	if !role.IsValid() {
		return Identity{}, fmt.Errorf("%w: unknown role %q", domain.ErrUnauthorized, claims.Role)
	}

	return Identity{AccountID: accountID, Role: role}, nil
}
