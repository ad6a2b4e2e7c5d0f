// Package studyplan implements the StudyPlan repository using PostgreSQL.
package studyplan

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

const table = "study_plans"

var columns = []string{
	"id", "account_id", "title", "description", "subjects", "start_date",
	"end_date", "daily_minutes", "plan", "status", "created_at", "updated_at",
}

var filterColumns = postgres.FilterColumns{
	Status: "status",
}

// CreateParams holds the fields for a new study plan. The plan payload is
// opaque JSON; an empty payload defaults to {}.
type CreateParams struct {
	Title        string
	Description  string
	Subjects     []string
	StartDate    time.Time
	EndDate      time.Time
	DailyMinutes int
	Plan         []byte
	Status       domain.PlanStatus
}

// Patch holds a merge patch for a study plan: nil fields keep prior values.
type Patch struct {
	Title        *string
	Description  *string
	Subjects     []string
	StartDate    *time.Time
	EndDate      *time.Time
	DailyMinutes *int
	Plan         []byte
	Status       *domain.PlanStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Subjects == nil &&
		p.StartDate == nil && p.EndDate == nil && p.DailyMinutes == nil &&
		p.Plan == nil && p.Status == nil
}

// Repo provides study-plan persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new study-plan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new study plan owned by the given account.
func (r *Repo) Create(ctx context.Context, accountID uuid.UUID, params CreateParams) (domain.StudyPlan, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	status := params.Status
	if status == "" {
		status = domain.PlanStatusActive
	}
	subjects := params.Subjects
	if subjects == nil {
		subjects = []string{}
	}
	plan := params.Plan
	if len(plan) == 0 {
		plan = []byte("{}")
	}

	query := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(uuid.New(), accountID, params.Title, params.Description, subjects,
			params.StartDate, params.EndDate, params.DailyMinutes, plan, status, now, now).
		Suffix("RETURNING " + sqlColumns())

	return r.queryOne(ctx, query)
}

// GetByID returns a study plan by primary key filtered by owning account.
func (r *Repo) GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.StudyPlan, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"id": id, "account_id": accountID})
	return r.queryOne(ctx, query)
}

// List returns the account's study plans matching the filter, newest first.
func (r *Repo) List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.StudyPlan, error) {
	query := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at DESC", "id DESC")
	query = postgres.ApplyListFilter(query, filter, filterColumns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "study plan")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "study plan")
	}
	defer rows.Close()

	return scanPlans(rows)
}

// Update applies a merge patch scoped to the owning account.
func (r *Repo) Update(ctx context.Context, accountID, id uuid.UUID, patch Patch) (domain.StudyPlan, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, accountID, id)
	}

	query := postgres.Builder.Update(table).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond))

	if patch.Title != nil {
		query = query.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		query = query.Set("description", *patch.Description)
	}
	if patch.Subjects != nil {
		query = query.Set("subjects", patch.Subjects)
	}
	if patch.StartDate != nil {
		query = query.Set("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		query = query.Set("end_date", *patch.EndDate)
	}
	if patch.DailyMinutes != nil {
		query = query.Set("daily_minutes", *patch.DailyMinutes)
	}
	if patch.Plan != nil {
		query = query.Set("plan", patch.Plan)
	}
	if patch.Status != nil {
		query = query.Set("status", *patch.Status)
	}

	query = query.Where(sq.Eq{"id": id, "account_id": accountID}).
		Suffix("RETURNING " + sqlColumns())

	return r.queryOne(ctx, query)
}

// Delete removes a study plan scoped to the owning account.
// Returns false when no row was removed.
func (r *Repo) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	query := postgres.Builder.Delete(table).
		Where(sq.Eq{"id": id, "account_id": accountID})

	sql, args, err := query.ToSql()
	if err != nil {
		return false, postgres.MapError(err, "study plan")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "study plan")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) queryOne(ctx context.Context, query sq.Sqlizer) (domain.StudyPlan, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return domain.StudyPlan{}, postgres.MapError(err, "study plan")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	p, err := scanPlan(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.StudyPlan{}, postgres.MapError(err, "study plan")
	}
	return p, nil
}

func scanPlan(row pgx.Row) (domain.StudyPlan, error) {
	var (
		p      domain.StudyPlan
		status string
	)
	if err := row.Scan(&p.ID, &p.AccountID, &p.Title, &p.Description, &p.Subjects,
		&p.StartDate, &p.EndDate, &p.DailyMinutes, &p.Plan, &status,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.StudyPlan{}, err
	}
	p.Status = domain.PlanStatus(status)
	return p, nil
}

func scanPlans(rows pgx.Rows) ([]domain.StudyPlan, error) {
	plans := []domain.StudyPlan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, postgres.MapError(err, "study plan")
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "study plan")
	}
	return plans, nil
}

func sqlColumns() string {
	return strings.Join(columns, ", ")
}
