// Package account implements the Account repository using PostgreSQL.
// Accounts are the tenant root, so unlike every other repository the
// operations here are keyed by the account's own ID.
package account

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyhub/backend/internal/adapter/postgres"
	"github.com/studyhub/backend/internal/domain"
)

const table = "accounts"

var columns = []string{
	"id", "external_id", "email", "name", "role",
	"preferences", "active", "created_at", "updated_at",
}

// CreateParams holds the fields for a new account. Zero-valued optional
// fields fall back to the defaults in the schema contract: empty strings,
// role learner, empty preferences, active=true.
type CreateParams struct {
	ExternalID  string
	Email       string
	Name        string
	Role        domain.AccountRole
	Preferences []byte
}

// Patch holds a merge patch for an account: nil fields keep prior values.
type Patch struct {
	Name        *string
	Role        *domain.AccountRole
	Preferences []byte
	Active      *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Role == nil && p.Preferences == nil && p.Active == nil
}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new account and returns the persisted record.
// A duplicate email or external ID surfaces as a domain.ConflictError
// naming the offending field.
func (r *Repo) Create(ctx context.Context, params CreateParams) (domain.Account, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	role := params.Role
	if role == "" {
		role = domain.RoleLearner
	}
	prefs := params.Preferences
	if len(prefs) == 0 {
		prefs = []byte("{}")
	}

	query := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(uuid.New(), params.ExternalID, params.Email, params.Name, role,
			prefs, true, now, now).
		Suffix("RETURNING " + sqlColumns())

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.Account{}, postgres.MapError(err, "account")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	acc, err := scanAccount(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Account{}, postgres.MapError(err, "account")
	}
	return acc, nil
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	return r.getBy(ctx, sq.Eq{"id": id})
}

// GetByEmail returns an account by its unique contact address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.getBy(ctx, sq.Eq{"email": email})
}

// GetByExternalID returns an account by the identity provider's stable ID.
func (r *Repo) GetByExternalID(ctx context.Context, externalID string) (domain.Account, error) {
	return r.getBy(ctx, sq.Eq{"external_id": externalID})
}

func (r *Repo) getBy(ctx context.Context, pred sq.Eq) (domain.Account, error) {
	query := postgres.Builder.Select(columns...).From(table).Where(pred)

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.Account{}, postgres.MapError(err, "account")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	acc, err := scanAccount(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Account{}, postgres.MapError(err, "account")
	}
	return acc, nil
}

// Update applies a merge patch and returns the updated record.
// An empty patch changes nothing and returns the current row unmodified.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch Patch) (domain.Account, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	query := postgres.Builder.Update(table).Set("updated_at", now)

	if patch.Name != nil {
		query = query.Set("name", *patch.Name)
	}
	if patch.Role != nil {
		query = query.Set("role", *patch.Role)
	}
	if patch.Preferences != nil {
		query = query.Set("preferences", patch.Preferences)
	}
	if patch.Active != nil {
		query = query.Set("active", *patch.Active)
	}

	query = query.Where(sq.Eq{"id": id}).Suffix("RETURNING " + sqlColumns())

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.Account{}, postgres.MapError(err, "account")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	acc, err := scanAccount(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Account{}, postgres.MapError(err, "account")
	}
	return acc, nil
}

// Deactivate clears the active flag. The row and everything it owns stay in
// place; only explicit deletes remove data.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID) error {
	active := false
	_, err := r.Update(ctx, id, Patch{Active: &active})
	return err
}

// Delete removes an account and, through the schema's cascading foreign
// keys, every entity it owns. Returns false when no row was removed.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := postgres.Builder.Delete(table).Where(sq.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return false, postgres.MapError(err, "account")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "account")
	}
	return tag.RowsAffected() > 0, nil
}

func sqlColumns() string {
	return strings.Join(columns, ", ")
}

func scanAccount(row pgx.Row) (domain.Account, error) {
	var (
		a     domain.Account
		role  string
		prefs []byte
	)
	if err := row.Scan(&a.ID, &a.ExternalID, &a.Email, &a.Name, &role,
		&prefs, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Account{}, err
	}
	a.Role = domain.AccountRole(role)
	a.Preferences = prefs
	return a, nil
}
