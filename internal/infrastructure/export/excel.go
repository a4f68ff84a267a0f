// Package export renders application listings as spreadsheets.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/review"
	"weiyue/internal/shared/biztime"
)

const defaultApplicationSheet = "违约认定申请"

// Labels supplies the display text for enumerated values.
type Labels struct {
	Status   func(review.Status) string
	Severity func(defaultapp.Severity) string
}

var defaultApplicationHeaders = []string{
	"申请编号", "客户名称", "违约原因", "严重程度", "申请人",
	"申请时间", "审核状态", "审核人", "审核时间", "备注", "审核意见",
}

var defaultApplicationWidths = []float64{14, 28, 30, 10, 12, 20, 10, 12, 20, 30, 30}

// DefaultApplications renders rows as an .xlsx workbook.
func DefaultApplications(rows []*defaultapp.Summary, labels Labels) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(defaultApplicationSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

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
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range defaultApplicationHeaders {
		if err := setCell(f, col+1, 1, header); err != nil {
			f.Close()
			return nil, err
		}
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(defaultApplicationSheet, name, name, defaultApplicationWidths[col]); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(defaultApplicationHeaders), 1)
	if err := f.SetCellStyle(defaultApplicationSheet, "A1", lastHeader, headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, s := range rows {
		a := s.Application
		rec := a.Review()
		values := []interface{}{
			a.ID(),
			s.CustomerName,
			s.ReasonContent,
			labels.Severity(a.Severity()),
			s.ApplicantName,
			biztime.Format(a.AppliedAt(), time.DateTime),
			labels.Status(rec.Status()),
			s.AuditorName,
			formatTime(rec.AuditTime()),
			deref(a.Remarks()),
			deref(rec.Remarks()),
		}
		for col, v := range values {
			if err := setCell(f, col+1, i+2, v); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	if err := f.SetPanes(defaultApplicationSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellValue(defaultApplicationSheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return biztime.Format(*t, time.DateTime)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
