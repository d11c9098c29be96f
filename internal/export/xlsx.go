// Package export renders maintenance schedules as spreadsheets.
package export

import (
	"bytes"
	"fmt"

	"maintenance-tracker-backend/internal/calendar"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the generated workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	summarySheet     = "Summary"
	assignmentsSheet = "Assignments"
)

// Row is one assignment line in the export
type Row struct {
	Date          calendar.Date
	EquipmentCode string
	EquipmentName string
	OperatorName  string
	Observations  string
}

// BuildMonthXLSX renders a month of assignments. Rows are written in the order given.
func BuildMonthXLSX(month calendar.Date, rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(assignmentsSheet); err != nil {
		return nil, err
	}

	operators := make(map[string]struct{})
	days := make(map[calendar.Date]struct{})
	for _, r := range rows {
		operators[r.OperatorName] = struct{}{}
		days[r.Date] = struct{}{}
	}

	_ = f.SetCellValue(summarySheet, "A1", "Maintenance Schedule")
	_ = f.SetCellValue(summarySheet, "A3", "Month")
	_ = f.SetCellValue(summarySheet, "B3", month.Format("2006-01"))
	_ = f.SetCellValue(summarySheet, "A4", "Assignments")
	_ = f.SetCellValue(summarySheet, "B4", len(rows))
	_ = f.SetCellValue(summarySheet, "A5", "Operators")
	_ = f.SetCellValue(summarySheet, "B5", len(operators))
	_ = f.SetCellValue(summarySheet, "A6", "Days with maintenance")
	_ = f.SetCellValue(summarySheet, "B6", len(days))

	headers := []string{"Date", "Equipment Code", "Equipment", "Operator", "Observations"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(assignmentsSheet, cell, h)
	}
	for i, r := range rows {
		line := i + 2
		_ = f.SetCellValue(assignmentsSheet, fmt.Sprintf("A%d", line), calendar.FormatForStorage(r.Date))
		_ = f.SetCellValue(assignmentsSheet, fmt.Sprintf("B%d", line), r.EquipmentCode)
		_ = f.SetCellValue(assignmentsSheet, fmt.Sprintf("C%d", line), r.EquipmentName)
		_ = f.SetCellValue(assignmentsSheet, fmt.Sprintf("D%d", line), r.OperatorName)
		_ = f.SetCellValue(assignmentsSheet, fmt.Sprintf("E%d", line), r.Observations)
	}
	_ = f.SetColWidth(assignmentsSheet, "A", "A", 12)
	_ = f.SetColWidth(assignmentsSheet, "C", "D", 28)
	_ = f.SetColWidth(assignmentsSheet, "E", "E", 60)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
