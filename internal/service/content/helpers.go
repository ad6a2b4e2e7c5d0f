package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/studyhub/backend/internal/domain"
	"github.com/studyhub/backend/pkg/ctxutil"
)

// parseID parses an entity ID from its string form. A malformed ID is a
// validation failure, not a lookup miss.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a valid UUID")
	}
	return id, nil
}

// tenantID extracts the calling account from the request context.
func tenantID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
