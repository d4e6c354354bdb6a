package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/luuvisa/backend/internal/service"
	"github.com/luuvisa/backend/pkg/auth"
)

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	settings      service.SettingsService
	audit         service.Recorder
	sessionSecret []byte
	secureCookie  bool
}

// NewAuthHandler creates an AuthHandler. secureCookie should be true behind
// HTTPS.
func NewAuthHandler(settings service.SettingsService, audit service.Recorder, sessionSecret []byte, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		settings:      settings,
		audit:         audit,
		sessionSecret: sessionSecret,
		secureCookie:  secureCookie,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "credentials_required")
		return
	}

	ok, err := h.settings.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "login_failed")
		return
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    auth.CreateSessionToken(req.Username, h.sessionSecret),
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	h.audit.Record(r.Context(), "auth.login", req.Username)
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}
