package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/service"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
	"github.com/MKhiriev/go-insight-keeper/internal/utils"
	"github.com/MKhiriev/go-insight-keeper/models"
)

// session is an HTTP middleware that resolves the session cookie to an
// active account.
//
// On success the user and its id are stored in the request context (see
// [utils.WithUser]) and the request logger gains a user_id field. Every
// failure ends in 401 with the same body; the cookie is cleared only when
// the account is gone or deactivated, since a bad token may belong to
// another deployment.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := h.resolveSession(r)
		if err != nil {
			if errors.Is(err, service.ErrAccountInactive) || errors.Is(err, store.ErrNoUserWasFound) {
				clearSessionCookie(w)
			}
			writeError(w, r, err)
			return
		}

		ctx := utils.WithUser(r.Context(), &user)
		ctx = logger.WithUserID(ctx, user.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolveSession never panics: a panic inside the auth service degrades to
// an unauthenticated result.
func (h *Handler) resolveSession(r *http.Request) (user models.User, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.FromRequest(r).Error().Any("panic", rec).Msg("session resolution panicked")
			user = models.User{}
			err = fmt.Errorf("%w: %w", service.ErrUnauthenticated, ErrSessionPanic)
		}
	}()

	cookie, cErr := r.Cookie(SessionCookieName)
	if cErr != nil || cookie.Value == "" {
		return models.User{}, fmt.Errorf("%w: %w", service.ErrUnauthenticated, ErrNoSessionCookie)
	}

	return h.services.AuthService.Authenticate(r.Context(), cookie.Value)
}

// currentUser returns the account stored by the session middleware.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, fmt.Errorf("%w: %w", service.ErrUnauthenticated, ErrNoSessionCookie)
	}
	return *user, nil
}
