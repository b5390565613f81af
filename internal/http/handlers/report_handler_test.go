package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/clients"
	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/render"
	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/service"
)

type fakeGenerator struct {
	data      []byte
	filename  string
	err       error
	gotTeams  []string
	gotFormat service.Format
}

func (f *fakeGenerator) GenerateReport(ctx context.Context, teamNames []string, format service.Format) ([]byte, string, error) {
	f.gotTeams = teamNames
	f.gotFormat = format
	if f.err != nil {
		return nil, "", f.err
	}
	return f.data, f.filename, nil
}

func postReport(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-pdf-report", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestGeneratePDFSuccess(t *testing.T) {
	gen := &fakeGenerator{data: []byte("%PDF-1.4 fake"), filename: "attendance_report_Alpha_2026.1.pdf"}
	h := NewReportHandlers(gen, zap.NewNop())

	rec := postReport(t, h.GeneratePDF, `{"team":"Alpha"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attendance_report_Alpha_2026.1.pdf")
	assert.Equal(t, []string{"Alpha"}, gen.gotTeams)
	assert.Equal(t, service.FormatPDF, gen.gotFormat)
}

func TestGenerateExcelMultipleTeams(t *testing.T) {
	gen := &fakeGenerator{data: []byte("PK"), filename: "attendance_report_Alpha-Bravo_2026.1.xlsx"}
	h := NewReportHandlers(gen, zap.NewNop())

	rec := postReport(t, h.GenerateExcel, `{"teams":["Alpha","Bravo"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Alpha", "Bravo"}, gen.gotTeams)
	assert.Equal(t, service.FormatXLSX, gen.gotFormat)
}

func TestGenerateMissingTeam(t *testing.T) {
	h := NewReportHandlers(&fakeGenerator{}, zap.NewNop())

	rec := postReport(t, h.GeneratePDF, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateInvalidBody(t *testing.T) {
	h := NewReportHandlers(&fakeGenerator{}, zap.NewNop())

	rec := postReport(t, h.GeneratePDF, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"no matching teams", render.ErrNoMatchingTeams, http.StatusNotFound},
		{"empty report", render.ErrEmptyReport, http.StatusNotFound},
		{"upstream unavailable", clients.ErrUpstreamUnavailable, http.StatusBadGateway},
		{"upstream format", clients.ErrUpstreamFormat, http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewReportHandlers(&fakeGenerator{err: tt.err}, zap.NewNop())
			rec := postReport(t, h.GeneratePDF, `{"team":"Alpha"}`)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
