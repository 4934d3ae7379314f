package middleware

import (
	"net/http"

	"medichain-backend/internal/domain/entity"
	"medichain-backend/pkg/response"
)

// RequireUserType checks that the authenticated caller registered with one
// of the allowed user types. The type is read from context, set by
// AuthMiddleware from the token claims.
func RequireUserType(allowedTypes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userType, ok := GetUserTypeFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "User type information not found")
				return
			}

			allowed := false
			for _, allowedType := range allowedTypes {
				if userType == allowedType {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireUserType(entity.UserTypeDoctor)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireUserType(entity.UserTypePatient)(next)
}
