package statementhandler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paybill/internal/domain/statement"
	"paybill/internal/domain/teacher"
	"paybill/internal/platform/requestctx"
	"paybill/internal/transport/http/api"
	"paybill/internal/transport/http/middleware"
	"paybill/internal/transport/http/shared"
)

type Handler struct {
	Statements *statement.Service
}

func NewHandler(statements *statement.Service) *Handler {
	return &Handler{Statements: statements}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/statements", h.HandleGet)
		r.Get("/statements/xlsx", h.HandleDownloadXLSX)
	})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	st, ok := h.generate(w, r)
	if !ok {
		return
	}
	api.Success(w, st, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleDownloadXLSX(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	st, ok := h.generate(w, r)
	if !ok {
		return
	}

	data, err := statement.ExportXLSX(st)
	if err != nil {
		slog.Error("statement export failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "export_error", "failed to export statement", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=statement_%s_%s.xlsx", st.ShalarthID, st.FinancialYear))
	_, _ = w.Write(data)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) (*statement.Statement, bool) {
	reqID := requestctx.GetRequestID(r.Context())
	shalarthID := r.URL.Query().Get("shalarthId")
	financialYear := r.URL.Query().Get("financialYear")

	v := shared.NewValidator()
	v.Required("financialYear", financialYear, "financial year is required, e.g. 2024-25")
	if v.Reject(w, reqID) {
		return nil, false
	}

	user, _ := middleware.GetUser(r.Context())
	if shalarthID == "" {
		shalarthID = user.ShalarthID
	}
	if !middleware.CanAccessTeacher(user, shalarthID) {
		api.Fail(w, http.StatusForbidden, "forbidden", "you can only view your own statement", reqID)
		return nil, false
	}

	st, err := h.Statements.Generate(r.Context(), shalarthID, financialYear)
	switch {
	case errors.Is(err, teacher.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "teacher_not_found", "no teacher registered with this Shalarth ID", reqID)
		return nil, false
	case errors.Is(err, statement.ErrBadFinancialYear):
		api.Fail(w, http.StatusBadRequest, "invalid_financial_year", err.Error(), reqID)
		return nil, false
	case errors.Is(err, statement.ErrNoRecordsForYear):
		api.Fail(w, http.StatusNotFound, "no_statement_data", err.Error(), reqID)
		return nil, false
	case err != nil:
		slog.Error("statement generate failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "statement_error", "failed to generate statement", reqID)
		return nil, false
	}
	return st, true
}
