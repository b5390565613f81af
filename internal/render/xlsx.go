package render

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/report"
)

// XLSX renders one worksheet per matched team. The rank column follows
// Options.IncludeRank; hours are rounded to one decimal.
func XLSX(rep report.TeamReport, teamNames []string, opts Options) ([]byte, error) {
	matched, err := sections(rep, teamNames)
	if err != nil {
		return nil, err
	}

	wb := excelize.NewFile()
	defer wb.Close()
	defaultSheet := wb.GetSheetName(0)

	for i, section := range matched {
		sheet := sanitizeSheetName(section.name)
		if i == 0 {
			if err := wb.SetSheetName(defaultSheet, sheet); err != nil {
				return nil, fmt.Errorf("xlsx sheet %q: %w", sheet, err)
			}
		} else if _, err := wb.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("xlsx sheet %q: %w", sheet, err)
		}
		if err := writeTeamSheet(wb, sheet, section, opts); err != nil {
			return nil, err
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx output: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTeamSheet(wb *excelize.File, sheet string, section teamSection, opts Options) error {
	headers := []interface{}{"Player", "Hours"}
	if opts.IncludeRank {
		headers = append(headers, "Rank")
	}
	if err := wb.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("xlsx header: %w", err)
	}

	for i, row := range section.rows {
		cells := []interface{}{row.Name, math.Round(row.Hours*10) / 10}
		if opts.IncludeRank {
			cells = append(cells, report.RankName(row.Hours))
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := wb.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("xlsx row %s: %w", cell, err)
		}
	}

	if err := wb.SetColWidth(sheet, "A", "A", 30); err != nil {
		return err
	}
	if err := wb.SetColWidth(sheet, "B", "B", 15); err != nil {
		return err
	}
	if opts.IncludeRank {
		return wb.SetColWidth(sheet, "C", "C", 25)
	}
	return nil
}
