package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/studyhub/backend/internal/domain"
)

type ctxKey string

const (
	tenantIDKey  ctxKey = "tenant_id"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
)

// WithTenantID stores the authenticated tenant ID in the context.
func WithTenantID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, tenantIDKey, id)
}

// TenantIDFromCtx extracts the tenant ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func TenantIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(tenantIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRole stores the caller's account role in the context.
func WithRole(ctx context.Context, role domain.AccountRole) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx extracts the caller's role from the context.
// Returns RoleLearner and false when absent, the least-privileged default.
func RoleFromCtx(ctx context.Context) (domain.AccountRole, bool) {
	role, ok := ctx.Value(roleKey).(domain.AccountRole)
	if !ok || !role.IsValid() {
		return domain.RoleLearner, false
	}
	return role, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
