package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrms-app/hrms-backend-go/internal/domain/user"
	"github.com/hrms-app/hrms-backend-go/internal/handler/http/response"
)

// RequireHR requires hr role
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrInsufficientRole)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrInsufficientRole)
			return
		}

		if role != string(user.RoleHR) {
			response.HandleError(w, user.ErrInsufficientRole)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireManager requires manager or hr role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrInsufficientRole)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrInsufficientRole)
			return
		}

		role := user.Role(roleStr)
		if role != user.RoleManager && role != user.RoleHR {
			response.HandleError(w, user.ErrInsufficientRole)
			return
		}

		next.ServeHTTP(w, r)
	})
}
