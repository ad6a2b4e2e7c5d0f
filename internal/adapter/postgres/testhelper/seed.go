package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAccount inserts an account row directly and returns its ID. Entity
// rows all hang off an account, so nearly every repository test needs one.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := uuid.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO accounts (id, external_id, email, name, role, preferences, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'learner', '{}', true, now(), now())`,
		id,
		fmt.Sprintf("ext-%s", id),
		fmt.Sprintf("%s@example.com", id),
		"Test Account",
	)
	if err != nil {
		t.Fatalf("testhelper: seed account: %v", err)
	}

	return id
}
