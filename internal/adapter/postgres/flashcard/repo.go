// Package flashcard implements the Flashcard repository using PostgreSQL.
// Filtered reads from here feed the in-memory card study session.
package flashcard

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

const table = "flashcards"

var columns = []string{
	"id", "account_id", "question", "answer", "subject", "category",
	"difficulty", "source_key", "created_at", "updated_at",
}

var filterColumns = postgres.FilterColumns{
	Subject:  "subject",
	Category: "category",
	Status:   "difficulty",
}

// CreateParams holds the fields for a new flashcard.
type CreateParams struct {
	Question   string
	Answer     string
	Subject    string
	Category   string
	Difficulty domain.Difficulty
	SourceKey  string
}

// Patch holds a merge patch for a flashcard: nil fields keep prior values.
type Patch struct {
	Question   *string
	Answer     *string
	Subject    *string
	Category   *string
	Difficulty *domain.Difficulty
	SourceKey  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Question == nil && p.Answer == nil && p.Subject == nil &&
		p.Category == nil && p.Difficulty == nil && p.SourceKey == nil
}

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flashcard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new flashcard owned by the given account.
func (r *Repo) Create(ctx context.Context, accountID uuid.UUID, params CreateParams) (domain.Flashcard, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	difficulty := params.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyMedium
	}

	query := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(uuid.New(), accountID, params.Question, params.Answer, params.Subject,
			params.Category, difficulty, params.SourceKey, now, now).
		Suffix("RETURNING " + sqlColumns())

	return r.queryOne(ctx, query)
}

// GetByID returns a flashcard by primary key filtered by owning account.
func (r *Repo) GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.Flashcard, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"id": id, "account_id": accountID})
	return r.queryOne(ctx, query)
}

// List returns the account's flashcards matching the filter, newest first.
// The Status predicate matches the difficulty tag.
func (r *Repo) List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Flashcard, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at DESC", "id DESC")
	query = postgres.ApplyListFilter(query, filter, filterColumns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "flashcard")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard")
	}
	defer rows.Close()

	return scanFlashcards(rows)
}

// CountByAccount returns the number of flashcards the account owns.
func (r *Repo) CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	query := postgres.Builder.Select("count(*)").From(table).
		Where(sq.Eq{"account_id": accountID})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "flashcard")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	var count int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "flashcard")
	}
	return count, nil
}

// Update applies a merge patch scoped to the owning account.
func (r *Repo) Update(ctx context.Context, accountID, id uuid.UUID, patch Patch) (domain.Flashcard, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, accountID, id)
	}

	query := postgres.Builder.Update(table).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond))

	if patch.Question != nil {
		query = query.Set("question", *patch.Question)
	}
	if patch.Answer != nil {
		query = query.Set("answer", *patch.Answer)
	}
	if patch.Subject != nil {
		query = query.Set("subject", *patch.Subject)
	}
	if patch.Category != nil {
		query = query.Set("category", *patch.Category)
	}
	if patch.Difficulty != nil {
		query = query.Set("difficulty", *patch.Difficulty)
	}
	if patch.SourceKey != nil {
		query = query.Set("source_key", *patch.SourceKey)
	}

	query = query.Where(sq.Eq{"id": id, "account_id": accountID}).
		Suffix("RETURNING " + sqlColumns())

	return r.queryOne(ctx, query)
}

// Delete removes a flashcard scoped to the owning account.
// Returns false when no row was removed.
func (r *Repo) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	query := postgres.Builder.Delete(table).
		Where(sq.Eq{"id": id, "account_id": accountID})

	sql, args, err := query.ToSql()
	if err != nil {
		return false, postgres.MapError(err, "flashcard")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "flashcard")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) queryOne(ctx context.Context, query sq.Sqlizer) (domain.Flashcard, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return domain.Flashcard{}, postgres.MapError(err, "flashcard")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	f, err := scanFlashcard(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Flashcard{}, postgres.MapError(err, "flashcard")
	}
	return f, nil
}

func scanFlashcard(row pgx.Row) (domain.Flashcard, error) {
	var (
		f          domain.Flashcard
		difficulty string
	)
	if err := row.Scan(&f.ID, &f.AccountID, &f.Question, &f.Answer, &f.Subject,
		&f.Category, &difficulty, &f.SourceKey, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return domain.Flashcard{}, err
	}
	f.Difficulty = domain.Difficulty(difficulty)
	return f, nil
}

func scanFlashcards(rows pgx.Rows) ([]domain.Flashcard, error) {
	cards := []domain.Flashcard{}
	for rows.Next() {
		f, err := scanFlashcard(rows)
		if err != nil {
			return nil, postgres.MapError(err, "flashcard")
		}
		cards = append(cards, f)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "flashcard")
	}
	return cards, nil
}

func sqlColumns() string {
	return strings.Join(columns, ", ")
}
