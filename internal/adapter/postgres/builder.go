package postgres

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/studyhub/backend/internal/domain"
)

// Builder is the shared squirrel statement builder with PostgreSQL
// ($1, $2, ...) placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// FilterColumns names the columns a repository exposes for list filtering.
// An empty name means the entity has no such column and the predicate is
// ignored.
type FilterColumns struct {
	Subject  string
	Category string
	Status   string
}

// ApplyListFilter adds the sparse equality predicates of f to a select
// statement. All predicates compose uniformly regardless of which are set,
// so there is exactly one query shape per entity.
func ApplyListFilter(q sq.SelectBuilder, f domain.ListFilter, cols FilterColumns) sq.SelectBuilder {
	if f.Subject != nil && cols.Subject != "" {
		q = q.Where(sq.Eq{cols.Subject: *f.Subject})
	}
	if f.Category != nil && cols.Category != "" {
		q = q.Where(sq.Eq{cols.Category: *f.Category})
	}
	if f.Status != nil && cols.Status != "" {
		q = q.Where(sq.Eq{cols.Status: *f.Status})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	return q
}
