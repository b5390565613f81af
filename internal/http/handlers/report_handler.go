package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/clients"
	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/render"
	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/report"
	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/service"
)

// ReportGenerator is the slice of the report service the handlers use.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, teamNames []string, format service.Format) ([]byte, string, error)
}

// ReportHandlers serves the report download endpoints.
type ReportHandlers struct {
	service ReportGenerator
	logger  *zap.Logger
}

// NewReportHandlers returns handler.
func NewReportHandlers(svc ReportGenerator, logger *zap.Logger) *ReportHandlers {
	return &ReportHandlers{service: svc, logger: logger}
}

// reportRequest accepts both the legacy single-team body and the newer
// multi-team one.
type reportRequest struct {
	Team  string   `json:"team"`
	Teams []string `json:"teams"`
}

func (r reportRequest) teamNames() []string {
	if len(r.Teams) > 0 {
		return r.Teams
	}
	if r.Team != "" {
		return []string{r.Team}
	}
	return nil
}

// GeneratePDF handles POST /api/generate-pdf-report.
func (h *ReportHandlers) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, service.FormatPDF)
}

// GenerateExcel handles POST /api/generate-excel-report.
func (h *ReportHandlers) GenerateExcel(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, service.FormatXLSX)
}

func (h *ReportHandlers) generate(w http.ResponseWriter, r *http.Request, format service.Format) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	teamNames := req.teamNames()
	if len(teamNames) == 0 {
		writeError(w, http.StatusBadRequest, "missing team parameter")
		return
	}

	data, filename, err := h.service.GenerateReport(r.Context(), teamNames, format)
	if err != nil {
		h.writeServiceError(w, teamNames, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// writeServiceError maps error kinds to transport responses: empty or
// unmatched reports are client-visible 404s, upstream trouble is a 502.
func (h *ReportHandlers) writeServiceError(w http.ResponseWriter, teamNames []string, err error) {
	switch {
	case errors.Is(err, render.ErrNoMatchingTeams):
		writeError(w, http.StatusNotFound, "no matching teams")
	case errors.Is(err, render.ErrEmptyReport):
		writeError(w, http.StatusNotFound, "no player data for requested teams")
	case errors.Is(err, clients.ErrUpstreamUnavailable),
		errors.Is(err, clients.ErrUpstreamFormat),
		errors.Is(err, report.ErrInvalidInput):
		h.logger.Error("upstream failure", zap.Strings("teams", teamNames), zap.Error(err))
		writeError(w, http.StatusBadGateway, "upstream data unavailable")
	default:
		h.logger.Error("report generation failed", zap.Strings("teams", teamNames), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "report generation failed")
	}
}
