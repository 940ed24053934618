package paybillhandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paybill/internal/domain/paybill"
	"paybill/internal/platform/metrics"
	"paybill/internal/platform/requestctx"
	"paybill/internal/transport/http/api"
	"paybill/internal/transport/http/middleware"
	"paybill/internal/transport/http/shared"
)

type Handler struct {
	Paybills *paybill.Service
	Metrics  *metrics.Collector
}

func NewHandler(paybills *paybill.Service, collector *metrics.Collector) *Handler {
	return &Handler{Paybills: paybills, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Post("/paybills", h.HandleUpload)
		r.Get("/paybills", h.HandleListUploads)
		r.Delete("/paybills", h.HandleDelete)
	})
}

// HandleUpload ingests one month's paybill workbook: multipart form with a
// "file" part plus "month" and "year" fields. Re-uploading a period
// replaces the previous rows.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "expected a multipart paybill upload", reqID)
		return
	}
	month := r.FormValue("month")
	year := r.FormValue("year")

	v := shared.NewValidator()
	v.Required("month", month, "month is required")
	v.Required("year", year, "year is required")
	v.Month("month", month)
	v.Year("year", year)
	if v.Reject(w, reqID) {
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "missing_file", "a paybill file is required", reqID)
		return
	}
	defer file.Close()

	summary, err := h.Paybills.Upload(r.Context(), month, year, file)
	switch {
	case errors.Is(err, paybill.ErrUnsupportedFormat):
		api.Fail(w, http.StatusBadRequest, "unsupported_format", "file must be an .xlsx or .xls spreadsheet", reqID)
		return
	case errors.Is(err, paybill.ErrEmptySheet):
		api.Fail(w, http.StatusBadRequest, "empty_sheet", "the spreadsheet has no data rows", reqID)
		return
	case errors.Is(err, paybill.ErrNoShalarthColumn):
		api.Fail(w, http.StatusBadRequest, "missing_shalarth_column", "the spreadsheet has no SHALARTH ID column", reqID)
		return
	case err != nil:
		slog.Error("paybill upload failed", "err", err, "month", month, "year", year, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "upload_error", "failed to store paybill", reqID)
		return
	}

	if h.Metrics != nil {
		h.Metrics.RecordUpload()
	}
	slog.Info("paybill uploaded", "month", month, "year", year, "rows", summary.RowCount, "requestId", reqID)
	api.Created(w, summary, reqID)
}

func (h *Handler) HandleListUploads(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	uploads, err := h.Paybills.Uploads(r.Context())
	if err != nil {
		slog.Error("list uploads failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "paybill_error", "failed to list uploads", reqID)
		return
	}
	api.Success(w, uploads, reqID)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	month := r.URL.Query().Get("month")
	year := r.URL.Query().Get("year")

	v := shared.NewValidator()
	v.Required("month", month, "month is required")
	v.Required("year", year, "year is required")
	if v.Reject(w, reqID) {
		return
	}

	deleted, err := h.Paybills.Delete(r.Context(), month, year)
	if err != nil {
		slog.Error("delete paybill failed", "err", err, "month", month, "year", year, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "paybill_error", "failed to delete paybill", reqID)
		return
	}
	if deleted == 0 {
		api.Fail(w, http.StatusNotFound, "paybill_not_found", "no paybill uploaded for this month and year", reqID)
		return
	}
	api.Success(w, map[string]any{"deletedRows": deleted}, reqID)
}
