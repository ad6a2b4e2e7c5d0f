package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/studyhub/backend/internal/auth"
	"github.com/studyhub/backend/internal/domain"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	testIssuer = "studyhub"
)

// signToken builds an HS256 token the way the external identity provider
// would.
func signToken(t *testing.T, secret, issuer, subject, role string, ttl time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": subject,
		"iss": issuer,
		"iat": jwt.NewNumericDate(time.Now()),
		"exp": jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	if role != "" {
		claims["role"] = role
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerify_ValidToken(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	v := auth.NewTokenVerifier(testSecret, testIssuer)

	token := signToken(t, testSecret, testIssuer, accountID.String(), "mentor", time.Hour)

	identity, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if identity.AccountID != accountID {
		t.Errorf("AccountID = %s, want %s", identity.AccountID, accountID)
	}
	if identity.Role != domain.RoleMentor {
		t.Errorf("Role = %s, want mentor", identity.Role)
	}
}

func TestVerify_MissingRoleDefaultsToLearner(t *testing.T) {
	t.Parallel()

	v := auth.NewTokenVerifier(testSecret, testIssuer)
	token := signToken(t, testSecret, testIssuer, uuid.NewString(), "", time.Hour)

	identity, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if identity.Role != domain.RoleLearner {
		t.Errorf("Role = %s, want learner", identity.Role)
	}
}

func TestVerify_Rejections(t *testing.T) {
	t.Parallel()

	v := auth.NewTokenVerifier(testSecret, testIssuer)

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"wrong secret", signToken(t, "ffffffffffffffffffffffffffffffff", testIssuer, uuid.NewString(), "learner", time.Hour)},
		{"wrong issuer", signToken(t, testSecret, "someone-else", uuid.NewString(), "learner", time.Hour)},
		{"expired", signToken(t, testSecret, testIssuer, uuid.NewString(), "learner", -time.Minute)},
		{"non-uuid subject", signToken(t, testSecret, testIssuer, "user-42", "learner", time.Hour)},
		{"unknown role", signToken(t, testSecret, testIssuer, uuid.NewString(), "king", time.Hour)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := v.Verify(tc.token)
			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Errorf("got %v, want ErrUnauthorized", err)
			}
		})
	}
}
