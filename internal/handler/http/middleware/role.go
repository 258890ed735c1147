package middleware

import (
	"net/http"

	"github.com/shaik-naseema17/employee-management-backend/internal/domain/auth"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/user"
	"github.com/shaik-naseema17/employee-management-backend/internal/handler/http/response"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/jwt"
)

// RequireRole lets the request through only when the token's role is one of roles.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := jwt.ClaimsFromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.HandleError(w, auth.ErrForbidden)
		})
	}
}

// RequireAdmin is RequireRole(user.RoleAdmin).
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(user.RoleAdmin)(next)
}
