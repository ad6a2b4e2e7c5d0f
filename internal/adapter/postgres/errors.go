package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/studyhub/backend/internal/domain"
)

// uniqueFields maps unique-constraint names to the offending field reported
// back to the caller.
var uniqueFields = map[string]string{
	"accounts_email_key":            "email",
	"accounts_external_id_key":      "external_id",
	"mentor_profiles_account_id_key": "account_id",
}

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", entity, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505": // unique_violation
			field := uniqueFields[pgErr.ConstraintName]
			if field == "" {
				field = "id"
			}
			return fmt.Errorf("%w", domain.NewConflictError(entity, field))
		case pgErr.Code == "23503": // foreign_key_violation
			// A dangling reference is indistinguishable from a missing row.
			return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
		case pgErr.Code == "23514": // check_violation
			return fmt.Errorf("%s: %w", entity, domain.ErrValidation)
		case pgErr.Code[:2] == "08", // connection exceptions
			pgErr.Code == "57P01", // admin_shutdown
			pgErr.Code == "57P02", // crash_shutdown
			pgErr.Code == "57P03", // cannot_connect_now
			pgErr.Code == "53300": // too_many_connections
			return fmt.Errorf("%s: %w", entity, domain.ErrUnavailable)
		}
	}

	// Dial-level failures surface before a PgError exists.
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s: %w", entity, domain.ErrUnavailable)
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s: %w", entity, err)
}
