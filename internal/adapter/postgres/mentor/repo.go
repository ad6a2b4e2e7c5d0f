// Package mentor implements the MentorProfile repository using PostgreSQL.
package mentor

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

const table = "mentor_profiles"

var columns = []string{
	"id", "account_id", "specialization", "experience_years",
	"review_status", "rating", "created_at", "updated_at",
}

// CreateParams holds the fields for a new mentor profile.
type CreateParams struct {
	Specialization  string
	ExperienceYears int
}

// Patch holds a merge patch for a mentor profile. Review status is NOT
// patchable here: it only moves through Approve and RequestRereview.
type Patch struct {
	Specialization  *string
	ExperienceYears *int
	Rating          *float64
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Specialization == nil && p.ExperienceYears == nil && p.Rating == nil
}

// Repo provides mentor-profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mentor-profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a profile for the given account. The profile starts in
// PENDING review. A second profile for the same account is a conflict.
func (r *Repo) Create(ctx context.Context, accountID uuid.UUID, params CreateParams) (domain.MentorProfile, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	query := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(uuid.New(), accountID, params.Specialization, params.ExperienceYears,
			domain.ReviewStatusPending, 0.0, now, now).
		Suffix("RETURNING " + sqlColumns())

	return r.queryOne(ctx, query)
}

// GetByID returns a profile by primary key filtered by owning account.
// A profile owned by another account reads as absent.
func (r *Repo) GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.MentorProfile, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"id": id, "account_id": accountID})
	return r.queryOne(ctx, query)
}

// GetByAccountID returns the account's profile (1:1).
func (r *Repo) GetByAccountID(ctx context.Context, accountID uuid.UUID) (domain.MentorProfile, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"account_id": accountID})
	return r.queryOne(ctx, query)
}

// ListByReviewStatus returns profiles in the given review state across all
// accounts, newest first. This is the moderation queue; the caller gates it
// by role.
func (r *Repo) ListByReviewStatus(ctx context.Context, status domain.ReviewStatus, limit int) ([]domain.MentorProfile, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"review_status": status}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "mentor profile")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "mentor profile")
	}
	defer rows.Close()

	return scanProfiles(rows)
}

// Update applies a merge patch scoped to the owning account.
func (r *Repo) Update(ctx context.Context, accountID, id uuid.UUID, patch Patch) (domain.MentorProfile, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, accountID, id)
	}

	query := postgres.Builder.Update(table).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond))

	if patch.Specialization != nil {
		query = query.Set("specialization", *patch.Specialization)
	}
	if patch.ExperienceYears != nil {
		query = query.Set("experience_years", *patch.ExperienceYears)
	}
	if patch.Rating != nil {
		query = query.Set("rating", *patch.Rating)
	}

	query = query.Where(sq.Eq{"id": id, "account_id": accountID}).
		Suffix("RETURNING " + sqlColumns())

	return r.queryOne(ctx, query)
}

// Approve moves a profile to APPROVED. Idempotent: approving an already
// approved profile returns it unchanged. The role gate lives in the service.
func (r *Repo) Approve(ctx context.Context, id uuid.UUID) (domain.MentorProfile, error) {
	query := postgres.Builder.Update(table).
		Set("review_status", domain.ReviewStatusApproved).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + sqlColumns())

	return r.queryOne(ctx, query)
}

// RequestRereview puts the account's profile back into PENDING. This is the
// only path out of APPROVED.
func (r *Repo) RequestRereview(ctx context.Context, accountID uuid.UUID) (domain.MentorProfile, error) {
	query := postgres.Builder.Update(table).
		Set("review_status", domain.ReviewStatusPending).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"account_id": accountID}).
		Suffix("RETURNING " + sqlColumns())

	return r.queryOne(ctx, query)
}

// Delete removes the profile scoped to the owning account.
// Returns false when no row was removed.
func (r *Repo) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	query := postgres.Builder.Delete(table).
		Where(sq.Eq{"id": id, "account_id": accountID})

	sql, args, err := query.ToSql()
	if err != nil {
		return false, postgres.MapError(err, "mentor profile")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "mentor profile")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) queryOne(ctx context.Context, query sq.Sqlizer) (domain.MentorProfile, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return domain.MentorProfile{}, postgres.MapError(err, "mentor profile")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	p, err := scanProfile(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.MentorProfile{}, postgres.MapError(err, "mentor profile")
	}
	return p, nil
}

func scanProfile(row pgx.Row) (domain.MentorProfile, error) {
	var (
		p      domain.MentorProfile
		status string
	)
	if err := row.Scan(&p.ID, &p.AccountID, &p.Specialization, &p.ExperienceYears,
		&status, &p.Rating, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.MentorProfile{}, err
	}
	p.ReviewStatus = domain.ReviewStatus(status)
	return p, nil
}

func scanProfiles(rows pgx.Rows) ([]domain.MentorProfile, error) {
	profiles := []domain.MentorProfile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, postgres.MapError(err, "mentor profile")
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "mentor profile")
	}
	return profiles, nil
}

func sqlColumns() string {
	return strings.Join(columns, ", ")
}
