// Package summary implements the Summary repository using PostgreSQL.
package summary

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

const table = "summaries"

var columns = []string{
	"id", "account_id", "document_id", "title", "body", "key_points",
	"word_count", "reading_minutes", "difficulty", "created_at", "updated_at",
}

// Summaries filter by difficulty where other entities filter by status.
var filterColumns = postgres.FilterColumns{
	Status: "difficulty",
}

// CreateParams holds the fields for a new summary. DocumentID is optional;
// when set, the service verifies it resolves within the same account before
// inserting, in the same transaction.
type CreateParams struct {
	DocumentID     *uuid.UUID
	Title          string
	Body           string
	KeyPoints      []string
	WordCount      int
	ReadingMinutes int
	Difficulty     domain.Difficulty
}

// Patch holds a merge patch for a summary: nil fields keep prior values.
// The document link is immutable after creation.
type Patch struct {
	Title          *string
	Body           *string
	KeyPoints      []string
	WordCount      *int
	ReadingMinutes *int
	Difficulty     *domain.Difficulty
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Body == nil && p.KeyPoints == nil &&
		p.WordCount == nil && p.ReadingMinutes == nil && p.Difficulty == nil
}

// Repo provides summary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new summary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new summary owned by the given account.
func (r *Repo) Create(ctx context.Context, accountID uuid.UUID, params CreateParams) (domain.Summary, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	difficulty := params.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyMedium
	}
	keyPoints := params.KeyPoints
	if keyPoints == nil {
		keyPoints = []string{}
	}

	query := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(uuid.New(), accountID, params.DocumentID, params.Title, params.Body,
			keyPoints, params.WordCount, params.ReadingMinutes, difficulty, now, now).
		Suffix("RETURNING " + sqlColumns())

	return r.queryOne(ctx, query)
}

// GetByID returns a summary by primary key filtered by owning account.
func (r *Repo) GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.Summary, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"id": id, "account_id": accountID})
	return r.queryOne(ctx, query)
}

// List returns the account's summaries matching the filter, newest first.
func (r *Repo) List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Summary, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at DESC", "id DESC")
	query = postgres.ApplyListFilter(query, filter, filterColumns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "summary")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "summary")
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// ListByDocument returns summaries derived from one document.
func (r *Repo) ListByDocument(ctx context.Context, accountID, documentID uuid.UUID) ([]domain.Summary, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"account_id": accountID, "document_id": documentID}).
		OrderBy("created_at DESC", "id DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "summary")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "summary")
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// CountByAccount returns the number of summaries the account owns.
func (r *Repo) CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	query := postgres.Builder.Select("count(*)").From(table).
		Where(sq.Eq{"account_id": accountID})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "summary")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	var count int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "summary")
	}
	return count, nil
}

// Update applies a merge patch scoped to the owning account.
func (r *Repo) Update(ctx context.Context, accountID, id uuid.UUID, patch Patch) (domain.Summary, error) {
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
	if patch.KeyPoints != nil {
		query = query.Set("key_points", patch.KeyPoints)
	}
	if patch.WordCount != nil {
		query = query.Set("word_count", *patch.WordCount)
	}
	if patch.ReadingMinutes != nil {
		query = query.Set("reading_minutes", *patch.ReadingMinutes)
	}
	if patch.Difficulty != nil {
		query = query.Set("difficulty", *patch.Difficulty)
	}

	query = query.Where(sq.Eq{"id": id, "account_id": accountID}).
		Suffix("RETURNING " + sqlColumns())

	return r.queryOne(ctx, query)
}

// Delete removes a summary scoped to the owning account.
// Returns false when no row was removed.
func (r *Repo) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	query := postgres.Builder.Delete(table).
		Where(sq.Eq{"id": id, "account_id": accountID})

	sql, args, err := query.ToSql()
	if err != nil {
		return false, postgres.MapError(err, "summary")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "summary")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) queryOne(ctx context.Context, query sq.Sqlizer) (domain.Summary, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return domain.Summary{}, postgres.MapError(err, "summary")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	s, err := scanSummary(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Summary{}, postgres.MapError(err, "summary")
	}
	return s, nil
}

func scanSummary(row pgx.Row) (domain.Summary, error) {
	var (
		s          domain.Summary
		difficulty string
	)
	if err := row.Scan(&s.ID, &s.AccountID, &s.DocumentID, &s.Title, &s.Body,
		&s.KeyPoints, &s.WordCount, &s.ReadingMinutes, &difficulty,
		&s.CreatedAt, &s.UpdatedAt); err != nil {
		return domain.Summary{}, err
	}
	s.Difficulty = domain.Difficulty(difficulty)
	return s, nil
}

func scanSummaries(rows pgx.Rows) ([]domain.Summary, error) {
	summaries := []domain.Summary{}
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, postgres.MapError(err, "summary")
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "summary")
	}
	return summaries, nil
}

func sqlColumns() string {
	return strings.Join(columns, ", ")
}
