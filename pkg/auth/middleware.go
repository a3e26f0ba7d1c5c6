package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/GlebRadaev/ridehail/pkg/utils"
)

type ContextKey string

const DriverIDKey ContextKey = "driverID"

// Middleware resolves the bearer token into the calling driver's id.
func Middleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := jwtService.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			driverID, err := uuid.Parse(claims.DriverID)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithDriverID(r.Context(), driverID)))
		})
	}
}

func WithDriverID(ctx context.Context, driverID uuid.UUID) context.Context {
	return context.WithValue(ctx, DriverIDKey, driverID)
}

func DriverIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	driverID, ok := ctx.Value(DriverIDKey).(uuid.UUID)
	return driverID, ok
}
