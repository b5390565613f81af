package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/report"
)

// PDF renders one page per matched team: a centered header with the team
// name and semester, then a bordered table of players sorted by hours.
func PDF(rep report.TeamReport, teamNames []string, opts Options) ([]byte, error) {
	matched, err := sections(rep, teamNames)
	if err != nil {
		return nil, err
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)

	for _, section := range matched {
		writeTeamPage(doc, section, opts)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTeamPage(doc *fpdf.Fpdf, section teamSection, opts Options) {
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.CellFormat(190, 10, sanitizeLatin1("Attendance Report - "+section.name), "", 1, "C", false, 0, "")
	doc.CellFormat(190, 10, sanitizeLatin1("Semester: "+opts.Semester), "", 1, "C", false, 0, "")
	doc.Ln(10)

	nameWidth := 100.0
	hoursWidth := 40.0
	if !opts.IncludeRank {
		nameWidth = 130.0
		hoursWidth = 60.0
	}

	doc.SetFont("Arial", "B", 12)
	doc.CellFormat(nameWidth, 10, "Player", "1", 0, "", false, 0, "")
	if opts.IncludeRank {
		doc.CellFormat(hoursWidth, 10, "Hours", "1", 0, "", false, 0, "")
		doc.CellFormat(50, 10, "Rank", "1", 1, "", false, 0, "")
	} else {
		doc.CellFormat(hoursWidth, 10, "Hours", "1", 1, "", false, 0, "")
	}

	doc.SetFont("Arial", "", 12)
	for _, row := range section.rows {
		doc.CellFormat(nameWidth, 10, sanitizeLatin1(row.Name), "1", 0, "", false, 0, "")
		if opts.IncludeRank {
			doc.CellFormat(hoursWidth, 10, fmt.Sprintf("%.1f", row.Hours), "1", 0, "", false, 0, "")
			doc.CellFormat(50, 10, report.RankName(row.Hours), "1", 1, "", false, 0, "")
		} else {
			doc.CellFormat(hoursWidth, 10, fmt.Sprintf("%.1f", row.Hours), "1", 1, "", false, 0, "")
		}
	}
}
