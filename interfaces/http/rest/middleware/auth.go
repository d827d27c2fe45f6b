package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/pkg/auth"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// Authenticate requires a valid bearer token on every request
func Authenticate(validator *auth.JWTValidator, errs *pkgerrors.ErrorHandler, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				errs.Handle(w, r, pkgerrors.NewUnauthorizedError("Missing authorization header"))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				errs.Handle(w, r, pkgerrors.NewUnauthorizedError("Invalid authorization header format"))
				return
			}

			claims, err := validator.ValidateToken(parts[1])
			if err != nil {
				logger.Debug("Token rejected", zap.Error(err))
				errs.Handle(w, r, pkgerrors.NewUnauthorizedError("Invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

// RequireStoreAccess rejects tokens scoped to other stores. It must run
// inside a route that declares the storeID parameter.
func RequireStoreAccess(errs *pkgerrors.ErrorHandler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.ClaimsFromContext(r.Context())
			if ok && !claims.CanAccessStore(chi.URLParam(r, "storeID")) {
				errs.Handle(w, r, pkgerrors.NewForbiddenError("Token does not grant access to this store"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
