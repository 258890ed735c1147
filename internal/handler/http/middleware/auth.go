package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/auth"
	"github.com/shaik-naseema17/employee-management-backend/internal/handler/http/response"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/jwt"
)

// AuthRequired runs after jwtauth.Verifier and rejects requests without a
// valid access token.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := jwt.ClaimsFromContext(r.Context())
			if err != nil || claims.Type != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
