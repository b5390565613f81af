package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/report"
)

func testReport() report.TeamReport {
	return report.TeamReport{
		"Alpha": {
			"P1": {PlayerID: "P1", Name: "P1", Team: "Alpha", Hours: 1.0, LastSession: 3600000},
			"P2": {PlayerID: "P2", Name: "P2", Team: "Alpha", Hours: 12.34, LastSession: 7200000},
		},
		"Bravo": {},
	}
}

func testOptions() Options {
	return Options{Semester: "2026.2", IncludeRank: true}
}

func TestPDFRoundTrip(t *testing.T) {
	data, err := PDF(testReport(), []string{"Alpha"}, testOptions())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
	assert.NotEmpty(t, data)
}

func TestPDFNoMatchingTeams(t *testing.T) {
	_, err := PDF(testReport(), []string{"Charlie"}, testOptions())
	assert.ErrorIs(t, err, ErrNoMatchingTeams)
}

func TestPDFEmptyReport(t *testing.T) {
	_, err := PDF(testReport(), []string{"Bravo"}, testOptions())
	assert.ErrorIs(t, err, ErrEmptyReport)
}

func TestPDFIgnoresUnknownNamesWhenOthersMatch(t *testing.T) {
	data, err := PDF(testReport(), []string{"Charlie", "Alpha"}, testOptions())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestXLSXRoundTrip(t *testing.T) {
	data, err := XLSX(testReport(), []string{"Alpha"}, testOptions())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	require.Equal(t, []string{"Alpha"}, wb.GetSheetList())

	rows, err := wb.GetRows("Alpha")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Player", "Hours", "Rank"}, rows[0])

	// Sorted by hours descending.
	assert.Equal(t, "P2", rows[1][0])
	assert.Equal(t, "12.3", rows[1][1])
	assert.Equal(t, "Novice", rows[1][2])
	assert.Equal(t, "P1", rows[2][0])
	assert.Equal(t, "1", rows[2][1])
	assert.Equal(t, "Beginner", rows[2][2])
}

func TestXLSXWithoutRankColumn(t *testing.T) {
	opts := Options{Semester: "2026.2", IncludeRank: false}
	data, err := XLSX(testReport(), []string{"Alpha"}, opts)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Alpha")
	require.NoError(t, err)
	assert.Equal(t, []string{"Player", "Hours"}, rows[0])
}

func TestXLSXMultipleSheets(t *testing.T) {
	rep := testReport()
	rep["Bravo"]["P3"] = report.PlayerRow{PlayerID: "P3", Name: "P3", Team: "Bravo", Hours: 2}

	data, err := XLSX(rep, []string{"Alpha", "Bravo"}, testOptions())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Alpha", "Bravo"}, wb.GetSheetList())
}

func TestSortedRowsStability(t *testing.T) {
	bucket := map[string]report.PlayerRow{
		"P2": {PlayerID: "P2", Name: "zed", Hours: 5},
		"P1": {PlayerID: "P1", Name: "amy", Hours: 5},
		"P3": {PlayerID: "P3", Name: "bob", Hours: 9},
	}

	first := sortedRows(bucket)
	second := sortedRows(bucket)

	require.Len(t, first, 3)
	assert.Equal(t, "P3", first[0].PlayerID)
	// Equal hours order by display name.
	assert.Equal(t, "amy", first[1].Name)
	assert.Equal(t, "zed", first[2].Name)
	assert.Equal(t, first, second)
}
