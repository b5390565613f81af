// Package render turns an aggregated team report into downloadable
// documents: a paged PDF or a multi-sheet XLSX workbook, one page/sheet
// per team.
package render

import (
	"errors"
	"sort"

	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/report"
)

// Error kinds surfaced when rendering finds nothing to emit. Both mean the
// upstream data was valid but the request matched no content.
var (
	ErrNoMatchingTeams = errors.New("no matching teams")
	ErrEmptyReport     = errors.New("empty report")
)

// Options carries per-document settings.
type Options struct {
	// Semester label printed in each page/sheet header.
	Semester string
	// IncludeRank toggles the tier column.
	IncludeRank bool
}

// teamSection is one resolved page/sheet worth of rows, already sorted.
type teamSection struct {
	name string
	rows []report.PlayerRow
}

// sections resolves the requested team names against the report. Unknown
// names are dropped silently. Returns ErrNoMatchingTeams when nothing
// matched and ErrEmptyReport when every matched bucket is empty.
func sections(rep report.TeamReport, teamNames []string) ([]teamSection, error) {
	seen := make(map[string]struct{}, len(teamNames))
	matched := make([]teamSection, 0, len(teamNames))
	for _, name := range teamNames {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		bucket, ok := rep[name]
		if !ok {
			continue
		}
		matched = append(matched, teamSection{name: name, rows: sortedRows(bucket)})
	}

	if len(matched) == 0 {
		return nil, ErrNoMatchingTeams
	}

	empty := true
	for _, s := range matched {
		if len(s.rows) > 0 {
			empty = false
			break
		}
	}
	if empty {
		return nil, ErrEmptyReport
	}
	return matched, nil
}

// sortedRows orders players by hours descending, then display name, then
// player ID, so equal-hours rows always render in the same order.
func sortedRows(bucket map[string]report.PlayerRow) []report.PlayerRow {
	rows := make([]report.PlayerRow, 0, len(bucket))
	for _, row := range bucket {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Hours != rows[j].Hours {
			return rows[i].Hours > rows[j].Hours
		}
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})
	return rows
}
