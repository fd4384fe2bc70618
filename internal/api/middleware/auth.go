package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/fxconvert-api/internal/api/shared"
	"github.com/phrazzld/fxconvert-api/internal/domain"
	"github.com/phrazzld/fxconvert-api/internal/platform/logger"
	"github.com/phrazzld/fxconvert-api/internal/redact"
	"github.com/phrazzld/fxconvert-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication and role checks for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates JWT tokens from the Authorization header and
// adds the user ID and role to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrWrongTokenType),
				errors.Is(err, auth.ErrInvalidRole):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				logger.FromContextOrDefault(r.Context(), slog.Default()).
					Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := shared.WithUserID(r.Context(), claims.UserID)
		ctx = shared.WithRole(ctx, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles only lets requests through whose authenticated role is one of roles.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRoles(roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := slices.Clone(roles)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRole(r)
			if !ok || !slices.Contains(allowed, role) {
				userID, _ := GetUserID(r)
				logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("role rejected",
					"user_id", userID,
					"role", role,
					"allowed", allowed)
				shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, "Insufficient permissions",
					domain.ErrUnauthorized, shared.WithElevatedLogLevel())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	return shared.GetUserID(r.Context())
}

// GetRole extracts the caller's role from the request context.
func GetRole(r *http.Request) (domain.Role, bool) {
	return shared.GetRole(r.Context())
}
