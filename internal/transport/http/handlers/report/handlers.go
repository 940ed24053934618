package reporthandler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"paybill/internal/domain/report"
	"paybill/internal/platform/requestctx"
	"paybill/internal/transport/http/api"
	"paybill/internal/transport/http/middleware"
	"paybill/internal/transport/http/shared"
)

type Handler struct {
	Reports *report.Service
}

func NewHandler(reports *report.Service) *Handler {
	return &Handler{Reports: reports}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/reports/types", h.HandleListTypes)
		r.Get("/reports", h.HandleGenerate)
		r.Get("/reports/xlsx", h.HandleDownloadXLSX)
	})
}

func (h *Handler) HandleListTypes(w http.ResponseWriter, r *http.Request) {
	api.Success(w, report.Types, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	rpt, ok := h.generate(w, r)
	if !ok {
		return
	}
	api.Success(w, rpt, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleDownloadXLSX(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	rpt, ok := h.generate(w, r)
	if !ok {
		return
	}

	data, err := report.ExportXLSX(rpt)
	if err != nil {
		slog.Error("report export failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "export_error", "failed to export report", reqID)
		return
	}

	filename := fmt.Sprintf("%s_%s_%s.xlsx",
		strings.ReplaceAll(rpt.Title, " ", "_"), rpt.Month, rpt.Year)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	_, _ = w.Write(data)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) (*report.Report, bool) {
	reqID := requestctx.GetRequestID(r.Context())
	reportType := r.URL.Query().Get("type")
	month := r.URL.Query().Get("month")
	year := r.URL.Query().Get("year")

	v := shared.NewValidator()
	v.Required("type", reportType, "report type is required")
	v.Required("month", month, "month is required")
	v.Required("year", year, "year is required")
	v.Month("month", month)
	v.Year("year", year)
	if v.Reject(w, reqID) {
		return nil, false
	}

	rpt, err := h.Reports.Generate(r.Context(), report.Type(reportType), month, year)
	switch {
	case errors.Is(err, report.ErrUnknownReportType):
		api.Fail(w, http.StatusBadRequest, "unknown_report_type", err.Error(), reqID)
		return nil, false
	case errors.Is(err, report.ErrNoDataForPeriod),
		errors.Is(err, report.ErrNoQualifyingRows),
		errors.Is(err, report.ErrAllColumnsZero):
		api.Fail(w, http.StatusNotFound, "no_report_data", err.Error(), reqID)
		return nil, false
	case err != nil:
		slog.Error("report generate failed", "err", err, "type", reportType, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "report_error", "failed to generate report", reqID)
		return nil, false
	}
	return rpt, true
}
