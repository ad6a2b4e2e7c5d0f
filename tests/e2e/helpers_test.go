//go:build e2e

package e2e_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/backend/internal/adapter/postgres/testhelper"
	"github.com/studyhub/backend/internal/app"
	"github.com/studyhub/backend/internal/config"
	"github.com/studyhub/backend/internal/domain"
	"github.com/studyhub/backend/internal/service/content"
	"github.com/studyhub/backend/pkg/ctxutil"
)

// setupServices wires the full service graph against a disposable database,
// the same way the application entry point does.
func setupServices(t *testing.T) *app.Services {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret: "0123456789abcdef0123456789abcdef",
			JWTIssuer: "studyhub",
		},
	}

	return app.NewServices(logger, pool, cfg)
}

// registerAccount creates a fresh account with the given role and returns a
// context authenticated as it.
func registerAccount(t *testing.T, svc *content.Service, role domain.AccountRole) (context.Context, domain.Account) {
	t.Helper()

	id := uuid.NewString()
	acc, err := svc.RegisterAccount(context.Background(), content.CreateAccountInput{
		ExternalID: "ext-" + id,
		Email:      id + "@example.com",
		Name:       "E2E Account",
		Role:       role,
	})
	require.NoError(t, err)

	ctx := ctxutil.WithTenantID(context.Background(), acc.ID)
	ctx = ctxutil.WithRole(ctx, acc.Role)
	return ctx, acc
}
