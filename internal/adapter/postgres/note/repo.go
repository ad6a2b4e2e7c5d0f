// Package note implements the Note repository using PostgreSQL.
package note

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

const table = "notes"

var columns = []string{
	"id", "account_id", "title", "body", "subject", "tags", "favorite",
	"created_at", "updated_at",
}

var filterColumns = postgres.FilterColumns{
	Subject: "subject",
}

// CreateParams holds the fields for a new note.
type CreateParams struct {
	Title    string
	Body     string
	Subject  string
	Tags     []string
	Favorite bool
}

// Patch holds a merge patch for a note: nil fields keep prior values.
type Patch struct {
	Title    *string
	Body     *string
	Subject  *string
	Tags     []string
	Favorite *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Body == nil && p.Subject == nil &&
		p.Tags == nil && p.Favorite == nil
}

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new note owned by the given account.
func (r *Repo) Create(ctx context.Context, accountID uuid.UUID, params CreateParams) (domain.Note, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	query := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(uuid.New(), accountID, params.Title, params.Body, params.Subject,
			tags, params.Favorite, now, now).
		Suffix("RETURNING " + sqlColumns())

	return r.queryOne(ctx, query)
}

// GetByID returns a note by primary key filtered by owning account.
func (r *Repo) GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.Note, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"id": id, "account_id": accountID})
	return r.queryOne(ctx, query)
}

// List returns the account's notes matching the filter, newest first.
func (r *Repo) List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Note, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at DESC", "id DESC")
	query = postgres.ApplyListFilter(query, filter, filterColumns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "note")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "note")
	}
	defer rows.Close()

	return scanNotes(rows)
}

// ListFavorites returns the account's favorite notes, newest first.
func (r *Repo) ListFavorites(ctx context.Context, accountID uuid.UUID) ([]domain.Note, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"account_id": accountID, "favorite": true}).
		OrderBy("created_at DESC", "id DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "note")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "note")
	}
	defer rows.Close()

	return scanNotes(rows)
}

// CountByAccount returns the number of notes the account owns.
func (r *Repo) CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	query := postgres.Builder.Select("count(*)").From(table).
		Where(sq.Eq{"account_id": accountID})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "note")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	var count int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "note")
	}
	return count, nil
}

// Update applies a merge patch scoped to the owning account.
func (r *Repo) Update(ctx context.Context, accountID, id uuid.UUID, patch Patch) (domain.Note, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, accountID, id)
	}

	query := postgres.Builder.Update(table).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond))

	if patch.Title != nil {
		query = query.Set("title", *patch.Title)
	}
	if patch.Body != nil {
		query = query.Set("body", *patch.Body)
	}
	if patch.Subject != nil {
		query = query.Set("subject", *patch.Subject)
	}
	if patch.Tags != nil {
		query = query.Set("tags", patch.Tags)
	}
	if patch.Favorite != nil {
		query = query.Set("favorite", *patch.Favorite)
	}

	query = query.Where(sq.Eq{"id": id, "account_id": accountID}).
		Suffix("RETURNING " + sqlColumns())

	return r.queryOne(ctx, query)
}

// Delete removes a note scoped to the owning account.
// Returns false when no row was removed.
func (r *Repo) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	query := postgres.Builder.Delete(table).
		Where(sq.Eq{"id": id, "account_id": accountID})

	sql, args, err := query.ToSql()
	if err != nil {
		return false, postgres.MapError(err, "note")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "note")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) queryOne(ctx context.Context, query sq.Sqlizer) (domain.Note, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return domain.Note{}, postgres.MapError(err, "note")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	n, err := scanNote(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Note{}, postgres.MapError(err, "note")
	}
	return n, nil
}

func scanNote(row pgx.Row) (domain.Note, error) {
	var n domain.Note
	if err := row.Scan(&n.ID, &n.AccountID, &n.Title, &n.Body, &n.Subject,
		&n.Tags, &n.Favorite, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return domain.Note{}, err
	}
	return n, nil
}

func scanNotes(rows pgx.Rows) ([]domain.Note, error) {
	notes := []domain.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, postgres.MapError(err, "note")
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "note")
	}
	return notes, nil
}

func sqlColumns() string {
	return strings.Join(columns, ", ")
}
