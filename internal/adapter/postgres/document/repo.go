// Package document implements the Document repository using PostgreSQL.
package document

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

const table = "documents"

var columns = []string{
	"id", "account_id", "title", "storage_key", "size_bytes", "content_type",
	"subject", "category", "tags", "status", "created_at", "updated_at",
}

var filterColumns = postgres.FilterColumns{
	Subject:  "subject",
	Category: "category",
	Status:   "status",
}

// CreateParams holds the fields for a new document. Unset optional fields
// take schema defaults; an unset status starts as UPLOADED.
type CreateParams struct {
	Title       string
	StorageKey  string
	SizeBytes   int64
	ContentType string
	Subject     string
	Category    string
	Tags        []string
	Status      domain.DocumentStatus
}

// Patch holds a merge patch for a document: nil fields keep prior values.
type Patch struct {
	Title       *string
	StorageKey  *string
	SizeBytes   *int64
	ContentType *string
	Subject     *string
	Category    *string
	Tags        []string
	Status      *domain.DocumentStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.StorageKey == nil && p.SizeBytes == nil &&
		p.ContentType == nil && p.Subject == nil && p.Category == nil &&
		p.Tags == nil && p.Status == nil
}

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new document owned by the given account.
func (r *Repo) Create(ctx context.Context, accountID uuid.UUID, params CreateParams) (domain.Document, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	status := params.Status
	if status == "" {
		status = domain.DocumentStatusUploaded
	}
	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	query := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(uuid.New(), accountID, params.Title, params.StorageKey, params.SizeBytes,
			params.ContentType, params.Subject, params.Category, tags, status, now, now).
		Suffix("RETURNING " + sqlColumns())

	return r.queryOne(ctx, query)
}

// GetByID returns a document by primary key filtered by owning account.
func (r *Repo) GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.Document, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"id": id, "account_id": accountID})
	return r.queryOne(ctx, query)
}

// List returns the account's documents matching the filter, newest first.
// Re-issuing the same call yields the same result for unchanged data.
func (r *Repo) List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Document, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at DESC", "id DESC")
	query = postgres.ApplyListFilter(query, filter, filterColumns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "document")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "document")
	}
	defer rows.Close()

	return scanDocuments(rows)
}

// CountByAccount returns the number of documents the account owns.
func (r *Repo) CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	query := postgres.Builder.Select("count(*)").From(table).
		Where(sq.Eq{"account_id": accountID})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "document")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	var count int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "document")
	}
	return count, nil
}

// Update applies a merge patch scoped to the owning account. A cross-account
// attempt reads as not found and mutates nothing.
func (r *Repo) Update(ctx context.Context, accountID, id uuid.UUID, patch Patch) (domain.Document, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, accountID, id)
	}

	query := postgres.Builder.Update(table).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond))

	if patch.Title != nil {
		query = query.Set("title", *patch.Title)
	}
	if patch.StorageKey != nil {
		query = query.Set("storage_key", *patch.StorageKey)
	}
	if patch.SizeBytes != nil {
		query = query.Set("size_bytes", *patch.SizeBytes)
	}
	if patch.ContentType != nil {
		query = query.Set("content_type", *patch.ContentType)
	}
	if patch.Subject != nil {
		query = query.Set("subject", *patch.Subject)
	}
	if patch.Category != nil {
		query = query.Set("category", *patch.Category)
	}
	if patch.Tags != nil {
		query = query.Set("tags", patch.Tags)
	}
	if patch.Status != nil {
		query = query.Set("status", *patch.Status)
	}

	query = query.Where(sq.Eq{"id": id, "account_id": accountID}).
		Suffix("RETURNING " + sqlColumns())

	return r.queryOne(ctx, query)
}

// Delete removes a document scoped to the owning account. Dependent
// summaries go with it atomically: the summaries FK declares ON DELETE
// CASCADE, so both removals commit or neither does.
// Returns false when no row was removed.
func (r *Repo) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	query := postgres.Builder.Delete(table).
		Where(sq.Eq{"id": id, "account_id": accountID})

	sql, args, err := query.ToSql()
	if err != nil {
		return false, postgres.MapError(err, "document")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "document")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) queryOne(ctx context.Context, query sq.Sqlizer) (domain.Document, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return domain.Document{}, postgres.MapError(err, "document")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	d, err := scanDocument(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Document{}, postgres.MapError(err, "document")
	}
	return d, nil
}

func scanDocument(row pgx.Row) (domain.Document, error) {
	var (
		d      domain.Document
		status string
	)
	if err := row.Scan(&d.ID, &d.AccountID, &d.Title, &d.StorageKey, &d.SizeBytes,
		&d.ContentType, &d.Subject, &d.Category, &d.Tags, &status,
		&d.CreatedAt, &d.UpdatedAt); err != nil {
		return domain.Document{}, err
	}
	d.Status = domain.DocumentStatus(status)
	return d, nil
}

func scanDocuments(rows pgx.Rows) ([]domain.Document, error) {
	docs := []domain.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, postgres.MapError(err, "document")
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "document")
	}
	return docs, nil
}

func sqlColumns() string {
	return strings.Join(columns, ", ")
}
