package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrms-app/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-app/hrms-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose bearer token failed verification or is
// not an access token. It runs after jwtauth.Verifier, which parses and
// validates the Authorization header.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, "Could not validate credentials")
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// UserID extracts the authenticated user's id from the verified token claims.
func UserID(ctx context.Context) (int64, error) {
	token, _, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return 0, auth.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(token.Subject(), 10, 64)
	if err != nil {
		return 0, auth.ErrInvalidToken
	}
	return userID, nil
}
