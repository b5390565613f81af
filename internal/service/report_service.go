// Package service orchestrates one report request end to end: concurrent
// upstream fetches, semester-window aggregation and document rendering.
// State is built fresh for every call; nothing is shared across requests.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/models"
	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/render"
	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/report"
	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/semester"
)

// Format selects the output document type.
type Format string

// Supported report formats.
const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// Upstream is the slice of the esports API client the service consumes.
type Upstream interface {
	FetchTeams(ctx context.Context) (map[string]models.Team, error)
	FetchSessions(ctx context.Context) ([]models.Session, error)
	FetchIdentities(ctx context.Context, playerIDs []string) map[string]models.Identity
}

// ReportService computes attendance reports on demand.
type ReportService struct {
	upstream    Upstream
	logger      *zap.Logger
	includeRank bool
	now         func() time.Time
}

// NewReportService builds service.
func NewReportService(upstream Upstream, includeRank bool, logger *zap.Logger) *ReportService {
	return &ReportService{
		upstream:    upstream,
		logger:      logger,
		includeRank: includeRank,
		now:         time.Now,
	}
}

// GenerateReport runs fetch, aggregate and render for the given teams and
// returns the document bytes plus a download filename. The semester window
// is derived from wall-clock time at the moment of the call.
func (s *ReportService) GenerateReport(ctx context.Context, teamNames []string, format Format) ([]byte, string, error) {
	now := s.now()
	startMs, endMs := semester.Bounds(now)
	win := report.Window{StartMs: startMs, EndMs: endMs}
	label := semester.Label(now)

	var (
		teams    map[string]models.Team
		sessions []models.Session
	)
	// Teams and sessions have no data dependency; fetch them in parallel.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.upstream.FetchTeams(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = s.upstream.FetchSessions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	// The identity lookup is scoped to players that actually attended an
	// eligible session, and it must run after that set is known.
	var identities map[string]models.Identity
	if ids := report.EligiblePlayerIDs(teams, sessions, win); len(ids) > 0 {
		identities = s.upstream.FetchIdentities(ctx, ids)
	}

	rep, err := report.Aggregate(teams, sessions, identities, win, s.logger)
	if err != nil {
		return nil, "", err
	}

	opts := render.Options{Semester: label, IncludeRank: s.includeRank}
	var data []byte
	switch format {
	case FormatXLSX:
		data, err = render.XLSX(rep, teamNames, opts)
	case FormatPDF:
		data, err = render.PDF(rep, teamNames, opts)
	default:
		return nil, "", fmt.Errorf("unsupported report format %q", format)
	}
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("report generated",
		zap.Strings("teams", teamNames),
		zap.String("format", string(format)),
		zap.String("semester", label),
		zap.Int("bytes", len(data)))

	return data, downloadName(teamNames, label, format), nil
}

// downloadName builds a filesystem-safe attachment name.
func downloadName(teamNames []string, label string, format Format) string {
	parts := make([]string, 0, len(teamNames))
	for _, name := range teamNames {
		cleaned := strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
				return r
			case r == ' ':
				return '_'
			default:
				return -1
			}
		}, name)
		if cleaned != "" {
			parts = append(parts, cleaned)
		}
	}
	team := strings.Join(parts, "-")
	if team == "" {
		team = "teams"
	}
	return fmt.Sprintf("attendance_report_%s_%s.%s", team, label, format)
}
