package authhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paybill/internal/domain/auth"
	"paybill/internal/domain/teacher"
	"paybill/internal/platform/requestctx"
	"paybill/internal/transport/http/api"
	"paybill/internal/transport/http/middleware"
	"paybill/internal/transport/http/shared"
)

type Handler struct {
	Auth     *auth.Service
	Teachers *teacher.Store
}

func NewHandler(authService *auth.Service, teachers *teacher.Store) *Handler {
	return &Handler{Auth: authService, Teachers: teachers}
}

// RegisterRoutes mounts the auth routes. loginLimiter wraps only the login
// route so credential guessing is throttled harder than normal traffic.
func (h *Handler) RegisterRoutes(r chi.Router, loginLimiter func(http.Handler) http.Handler) {
	r.With(loginLimiter).Post("/auth/login", h.HandleLogin)
	r.Post("/auth/register", h.HandleRegister)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/auth/change-password", h.HandleChangePassword)
		r.Post("/auth/mfa/setup", h.HandleMFASetup)
		r.Post("/auth/mfa/enable", h.HandleMFAEnable)
		r.Post("/auth/mfa/disable", h.HandleMFADisable)
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	MFACode  string `json:"mfaCode"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	token, user, err := h.Auth.Login(r.Context(), payload.Username, payload.Password, payload.MFACode)
	switch {
	case errors.Is(err, auth.ErrMFARequired):
		api.Fail(w, http.StatusUnauthorized, "mfa_required", "mfa code required", reqID)
		return
	case errors.Is(err, auth.ErrMFAInvalid):
		api.Fail(w, http.StatusUnauthorized, "mfa_invalid", "invalid mfa code", reqID)
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
		return
	case err != nil:
		slog.Error("login failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "login_error", "login failed", reqID)
		return
	}

	api.Success(w, map[string]any{
		"token": token,
		"user": map[string]string{
			"id":         user.ID,
			"username":   user.Username,
			"role":       user.Role,
			"shalarthId": user.ShalarthID,
		},
	}, reqID)
}

type registerRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	ShalarthID string `json:"shalarthId"`
}

// HandleRegister creates a teacher login. The Shalarth ID must already be
// registered by the admin so stray sign-ups cannot claim arbitrary IDs.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("username", payload.Username, "username is required")
	v.Required("shalarthId", payload.ShalarthID, "Shalarth ID is required")
	if len(payload.Password) < 8 {
		v.Add("password", "password must be at least 8 characters")
	}
	if v.Reject(w, reqID) {
		return
	}

	if _, err := h.Teachers.ByShalarthID(r.Context(), payload.ShalarthID); err != nil {
		if errors.Is(err, teacher.ErrNotFound) {
			api.Fail(w, http.StatusBadRequest, "unknown_shalarth_id", "no teacher registered with this Shalarth ID; please contact Admin", reqID)
			return
		}
		slog.Error("teacher lookup failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "register_error", "registration failed", reqID)
		return
	}

	user, err := h.Auth.RegisterTeacher(r.Context(), payload.Username, payload.Password, payload.ShalarthID)
	if errors.Is(err, auth.ErrUserExists) {
		api.Fail(w, http.StatusConflict, "user_exists", err.Error(), reqID)
		return
	}
	if err != nil {
		slog.Error("register failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "register_error", "registration failed", reqID)
		return
	}

	api.Created(w, user, reqID)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if len(payload.NewPassword) < 8 {
		api.Fail(w, http.StatusBadRequest, "weak_password", "password must be at least 8 characters", reqID)
		return
	}

	err := h.Auth.ChangePassword(r.Context(), user.UserID, user.Username, payload.CurrentPassword, payload.NewPassword)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
		return
	}
	if err != nil {
		slog.Error("change password failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "password_error", "password change failed", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "password_changed"}, reqID)
}

func (h *Handler) HandleMFASetup(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	secret, url, err := h.Auth.BeginMFASetup(r.Context(), user.UserID, user.Username)
	if err != nil {
		slog.Error("mfa setup failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "mfa_error", "mfa setup failed", reqID)
		return
	}
	api.Success(w, map[string]string{"secret": secret, "otpauthUrl": url}, reqID)
}

type mfaCodeRequest struct {
	Code string `json:"code"`
}

func (h *Handler) HandleMFAEnable(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload mfaCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	if err := h.Auth.EnableMFA(r.Context(), user.UserID, payload.Code); err != nil {
		if errors.Is(err, auth.ErrMFAInvalid) {
			api.Fail(w, http.StatusBadRequest, "mfa_invalid", "invalid mfa code", reqID)
			return
		}
		slog.Error("mfa enable failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "mfa_error", "mfa enable failed", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "mfa_enabled"}, reqID)
}

func (h *Handler) HandleMFADisable(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	if err := h.Auth.DisableMFA(r.Context(), user.UserID); err != nil {
		slog.Error("mfa disable failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "mfa_error", "mfa disable failed", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "mfa_disabled"}, reqID)
}
