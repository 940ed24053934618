package teacherhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paybill/internal/domain/teacher"
	"paybill/internal/platform/requestctx"
	"paybill/internal/transport/http/api"
	"paybill/internal/transport/http/middleware"
	"paybill/internal/transport/http/shared"
)

type Handler struct {
	Teachers *teacher.Store
}

func NewHandler(teachers *teacher.Store) *Handler {
	return &Handler{Teachers: teachers}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/teachers", h.HandleList)
		r.Post("/teachers", h.HandleCreate)
		r.Get("/teachers/{shalarthID}", h.HandleGet)
		r.Delete("/teachers/{shalarthID}", h.HandleDelete)
	})
}

type createTeacherRequest struct {
	ShalarthID  string `json:"shalarthId"`
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	PANNo       string `json:"panNo"`
	GPFNo       string `json:"gpfNo"`
	PRANNo      string `json:"pranNo"`
	Designation string `json:"designation"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	var payload createTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("shalarthId", payload.ShalarthID, "Shalarth ID is required")
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, reqID) {
		return
	}

	created, err := h.Teachers.Create(r.Context(), teacher.Teacher{
		ShalarthID:  payload.ShalarthID,
		Name:        payload.Name,
		Mobile:      payload.Mobile,
		PANNo:       payload.PANNo,
		GPFNo:       payload.GPFNo,
		PRANNo:      payload.PRANNo,
		Designation: payload.Designation,
	})
	if errors.Is(err, teacher.ErrDuplicate) {
		api.Fail(w, http.StatusConflict, "duplicate_teacher", "a teacher with this Shalarth ID already exists", reqID)
		return
	}
	if err != nil {
		slog.Error("create teacher failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "teacher_error", "failed to create teacher", reqID)
		return
	}

	api.Created(w, created, reqID)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	teachers, err := h.Teachers.List(r.Context())
	if err != nil {
		slog.Error("list teachers failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "teacher_error", "failed to list teachers", reqID)
		return
	}
	api.Success(w, teachers, reqID)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	t, err := h.Teachers.ByShalarthID(r.Context(), chi.URLParam(r, "shalarthID"))
	if errors.Is(err, teacher.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "teacher_not_found", "teacher not found", reqID)
		return
	}
	if err != nil {
		slog.Error("get teacher failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "teacher_error", "failed to load teacher", reqID)
		return
	}
	api.Success(w, t, reqID)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	err := h.Teachers.Delete(r.Context(), chi.URLParam(r, "shalarthID"))
	if errors.Is(err, teacher.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "teacher_not_found", "teacher not found", reqID)
		return
	}
	if err != nil {
		slog.Error("delete teacher failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "teacher_error", "failed to delete teacher", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}
