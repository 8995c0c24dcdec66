package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/service"
	"github.com/MKhiriev/go-insight-keeper/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	if credentials.Email == "" || credentials.Password == "" {
		writeError(w, r, fmt.Errorf("%w: email and password are required", service.ErrInvalidDataProvided))
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, sessionCookie(token.SignedString))
	log.Info().Int64("user_id", user.UserID).Msg("user logged in")

	writeResponse(w, r, models.UserResponse{User: user}, http.StatusOK)
}

// logout needs no session: clearing an absent cookie is harmless.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	writeResponse(w, r, models.OKResponse{OK: true}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	usage, err := h.services.UsageService.Current(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.MeResponse{User: user, Usage: usage}, http.StatusOK)
}

// decodeJSON decodes the request body into v. Empty, oversized and
// malformed bodies all map to ErrInvalidJSON.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return ErrInvalidJSON
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
