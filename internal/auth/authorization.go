package auth

import (
	"log/slog"
	"net/http"

	internal "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/transport"
)

// RoleAuthorization gates routes on the caller's credential role. Denials
// say nothing about whether the target resource exists.
type RoleAuthorization struct {
	base   *transport.BaseHandler
	logger *slog.Logger
}

func NewRoleAuthorization(base *transport.BaseHandler, logger *slog.Logger) *RoleAuthorization {
	return &RoleAuthorization{
		base:   base,
		logger: logger,
	}
}

// RequireManage allows admin and HR callers through.
func (ra *RoleAuthorization) RequireManage() func(http.Handler) http.Handler {
	return ra.require(func(role string) bool { return CanManage(role) }, "manage")
}

// RequireAdmin allows only admin callers through.
func (ra *RoleAuthorization) RequireAdmin() func(http.Handler) http.Handler {
	return ra.require(CanCreateElevatedUser, "admin")
}

func (ra *RoleAuthorization) require(allowed func(role string) bool, label string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := internal.UserFromContext(r.Context())
			if !ok || user == nil {
				ra.logger.Warn("authorization check failed: user not found in context")
				ra.base.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if !allowed(user.Role) {
				ra.logger.WarnContext(r.Context(), "access denied: insufficient role",
					"user_id", user.ID,
					"role", user.Role,
					"required", label)
				ra.base.WriteError(w, http.StatusForbidden, "Forbidden: insufficient role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
