package middleware

import (
	"context"
	"net/http"
	"strings"

	"roomly/internal/utils"
)

type contextKey string

// UserIDKey holds the authenticated user's id (ObjectID hex) in the
// request context.
const UserIDKey contextKey = "user_id"

// AuthJWT verifies the Bearer token and injects the user id into the
// request context before protected handlers run.
func AuthJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "missing bearer token"})
				return
			}
			tokenStr := strings.TrimPrefix(header, "Bearer ")

			userID, err := utils.ParseJWT(tokenStr, secret)
			if err != nil {
				utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "invalid token"})
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
