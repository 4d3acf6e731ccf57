// Package middleware holds the router-level HTTP middleware.
package middleware

import (
	"context"
	"net/http"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/api/handlers"
)

// staffIDHeader carries the ID of the barangay staff member acting on the
// request. The gateway fills it after session validation.
const staffIDHeader = "X-Staff-ID"

type contextKey string

const staffIDKey contextKey = "staffID"

// Auth rejects requests without a staff identity header
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffID := r.Header.Get(staffIDHeader)
		if staffID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing "+staffIDHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffIDFromContext returns the staff ID set by Auth, if any
func StaffIDFromContext(ctx context.Context) (string, bool) {
	staffID, ok := ctx.Value(staffIDKey).(string)
	return staffID, ok
}
