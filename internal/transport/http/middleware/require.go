package middleware

import (
	"net/http"

	"paybill/internal/domain/auth"
	"paybill/internal/transport/http/api"
)

// RequireAuth rejects anonymous requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin limits a route to admin accounts.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		if user.Role != auth.RoleAdmin {
			api.Fail(w, http.StatusForbidden, "forbidden", "admin access required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CanAccessTeacher reports whether the user may read data belonging to the
// given Shalarth ID: admins always, teachers only their own.
func CanAccessTeacher(user auth.UserContext, shalarthID string) bool {
	if user.Role == auth.RoleAdmin {
		return true
	}
	return user.Role == auth.RoleTeacher && user.ShalarthID != "" && user.ShalarthID == shalarthID
}
