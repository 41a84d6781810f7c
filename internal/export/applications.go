// Package export renders job applications as an xlsx workbook.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/seifeddinerezgui/gethrought/internal/model"
)

// ContentType is the media type of the workbooks produced here.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Applications"

// ApplicationsHeader is the first row of the sheet.
var ApplicationsHeader = []string{
	"ID",
	"First Name",
	"Last Name",
	"Email",
	"Phone",
	"Resume URL",
	"LinkedIn URL",
	"Cover Letter",
	"Status",
	"Submitted At",
}

var columnWidths = []float64{8, 18, 18, 30, 18, 40, 40, 60, 10, 20}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Filename is the download name of the export for job.
func Filename(job model.Job, at time.Time) string {
	return fmt.Sprintf("job-%d-applications-%s.xlsx", job.ID, at.UTC().Format("20060102"))
}

// Applications writes one row per application under a styled header row.
func Applications(job model.Job, applications []model.JobApplication) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   fmt.Sprintf("Applications - %s", job.Title),
		Creator: "gethrought",
	}); err != nil {
		return nil, fmt.Errorf("failed to set properties: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range ApplicationsHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}

		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert column: %w", err)
		}
		if err := f.SetColWidth(sheetName, colName, colName, columnWidths[col]); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, a := range applications {
		row := []any{
			a.ID,
			a.FirstName,
			a.LastName,
			a.Email,
			deref(a.Phone),
			a.ResumeURL,
			deref(a.LinkedinURL),
			deref(a.CoverLetter),
			a.Status,
			a.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
