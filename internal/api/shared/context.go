package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/fxconvert-api/internal/domain"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// UserIDContextKey is the context key for the authenticated user ID
	UserIDContextKey ContextKey = "userID"

	// RoleContextKey is the context key for the authenticated caller's role
	RoleContextKey ContextKey = "role"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of hex characters in a generated trace ID
	TraceIDLength = 32
)

// SetTraceID adds a freshly generated trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithRole stores the caller's role in the context.
func WithRole(ctx context.Context, role domain.Role) context.Context {
	return context.WithValue(ctx, RoleContextKey, role)
}

// GetRole returns the caller's role and whether one was set.
func GetRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(RoleContextKey).(domain.Role)
	return role, ok && role != ""
}

// WithUserID stores the authenticated user ID in the context.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// GetUserID returns the authenticated user ID and whether one was set.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}

// generateTraceID returns a random 32-character hex string.
func generateTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
