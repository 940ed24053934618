package paysliphandler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paybill/internal/domain/payslip"
	"paybill/internal/platform/requestctx"
	"paybill/internal/transport/http/api"
	"paybill/internal/transport/http/middleware"
	"paybill/internal/transport/http/shared"
)

type Handler struct {
	Payslips *payslip.Service
}

func NewHandler(payslips *payslip.Service) *Handler {
	return &Handler{Payslips: payslips}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/payslips", h.HandleGet)
		r.Get("/payslips/pdf", h.HandleDownloadPDF)
	})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view, ok := h.generate(w, r)
	if !ok {
		return
	}
	api.Success(w, view, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	view, ok := h.generate(w, r)
	if !ok {
		return
	}

	pdf, err := payslip.RenderPDF(view)
	if err != nil {
		slog.Error("payslip pdf failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "pdf_error", "failed to render payslip", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=payslip_%s_%s-%s.pdf", view.ShalarthID, view.Month, view.Year))
	_, _ = w.Write(pdf)
}

// generate parses the query, enforces that teachers only read their own
// payslip and runs the payslip service. A false return means a response has
// already been written.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) (*payslip.View, bool) {
	reqID := requestctx.GetRequestID(r.Context())
	shalarthID := r.URL.Query().Get("shalarthId")
	month := r.URL.Query().Get("month")
	year := r.URL.Query().Get("year")

	v := shared.NewValidator()
	v.Required("month", month, "month is required")
	v.Required("year", year, "year is required")
	v.Month("month", month)
	v.Year("year", year)
	if v.Reject(w, reqID) {
		return nil, false
	}

	user, _ := middleware.GetUser(r.Context())
	if shalarthID == "" {
		shalarthID = user.ShalarthID
	}
	if !middleware.CanAccessTeacher(user, shalarthID) {
		api.Fail(w, http.StatusForbidden, "forbidden", "you can only view your own payslip", reqID)
		return nil, false
	}

	view, err := h.Payslips.Generate(r.Context(), shalarthID, month, year)
	switch {
	case errors.Is(err, payslip.ErrMissingShalarthID):
		api.Fail(w, http.StatusBadRequest, "missing_shalarth_id", err.Error(), reqID)
		return nil, false
	case errors.Is(err, payslip.ErrNoPayslipData):
		api.Fail(w, http.StatusNotFound, "no_payslip_data", err.Error(), reqID)
		return nil, false
	case err != nil:
		slog.Error("payslip generate failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "payslip_error", "failed to generate payslip", reqID)
		return nil, false
	}
	return view, true
}
