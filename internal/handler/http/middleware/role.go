package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/auth"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/user"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/handler/http/response"
)

func claimedRole(r *http.Request) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	raw, ok := claims["role"].(string)
	if !ok {
		return "", auth.ErrInvalidToken
	}
	return user.Role(raw), nil
}

// AdminOnly restricts the route to ADMIN users.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := claimedRole(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireHR allows HR and ADMIN users to decide on gate passes.
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := claimedRole(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if !role.CanDecide() {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSecurity allows SECURITY and ADMIN users to record gate movements.
func RequireSecurity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := claimedRole(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if !role.CanRecordMovement() {
			response.HandleError(w, user.ErrSecurityAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
