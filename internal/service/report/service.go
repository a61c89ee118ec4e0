package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ems-suite/ems-backend-go/internal/domain/attendance"
	"github.com/ems-suite/ems-backend-go/internal/domain/employee"
	"github.com/ems-suite/ems-backend-go/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

// History implements report.ReportService.
func (r *ReportServiceImpl) History(ctx context.Context, req report.HistoryRequest) (report.AttendanceGrid, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceGrid{}, err
	}

	var (
		roster  []employee.Employee
		records []attendance.AttendanceRecord
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		roster, err = r.EmployeeRepository.List(gCtx, employee.EmployeeFilter{ActiveOnly: true})
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		switch req.Mode {
		case report.ModeSingleDate:
			date, parseErr := time.Parse("2006-01-02", req.Date)
			if parseErr != nil {
				return report.ErrInvalidDateRange
			}
			records, err = r.AttendanceRepository.ListByDate(gCtx, date)
		case report.ModeMonthRange:
			records, err = r.AttendanceRepository.ListByMonth(gCtx, req.Month, req.Year)
		}
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.AttendanceGrid{}, err
	}

	return BuildGrid(req, roster, records), nil
}

// Insights implements report.ReportService.
func (r *ReportServiceImpl) Insights(ctx context.Context, req report.HistoryRequest, filter report.InsightFilter) (report.InsightSummary, error) {
	if err := filter.Validate(); err != nil {
		return report.InsightSummary{}, err
	}

	grid, err := r.History(ctx, req)
	if err != nil {
		return report.InsightSummary{}, err
	}

	return Summarize(grid, filter), nil
}

// statusAbbrev maps stored statuses to the short cell codes used in exports
func statusAbbrev(status string) string {
	switch status {
	case attendance.StatusPresent:
		return "P"
	case attendance.StatusAbsent:
		return "A"
	case attendance.StatusHalfDay:
		return "HD"
	case attendance.StatusLate:
		return "L"
	case attendance.StatusOnLeave:
		return "OL"
	default:
		return status
	}
}

func windowTitle(grid report.AttendanceGrid) string {
	if grid.Mode == report.ModeMonthRange {
		return fmt.Sprintf("%s %d", time.Month(grid.Month).String(), grid.Year)
	}
	return grid.Date
}

// ExportPDF implements report.ReportService.
func (r *ReportServiceImpl) ExportPDF(ctx context.Context, req report.HistoryRequest) ([]byte, error) {
	grid, err := r.History(ctx, req)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Attendance Report")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 8, windowTitle(grid))
	pdf.Ln(10)

	nameWidth := 60.0
	dayWidth := 6.5
	if len(grid.Days) == 1 {
		dayWidth = 30
	}

	for _, group := range grid.Groups {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 8, group.Department)
		pdf.Ln(8)

		pdf.SetFont("Arial", "B", 8)
		pdf.Cell(nameWidth, 6, "Employee")
		for _, day := range grid.Days {
			pdf.CellFormat(dayWidth, 6, fmt.Sprintf("%d", day), "1", 0, "C", false, 0, "")
		}
		if grid.Mode == report.ModeMonthRange {
			pdf.CellFormat(12, 6, "Tot", "1", 0, "C", false, 0, "")
		}
		pdf.Ln(6)

		pdf.SetFont("Arial", "", 8)
		for _, row := range group.Rows {
			pdf.Cell(nameWidth, 6, fmt.Sprintf("%s (%s)", row.Name, row.EmployeeCode))
			for _, day := range grid.Days {
				cell := ""
				if status, ok := row.Cells[day]; ok {
					cell = statusAbbrev(status)
				}
				pdf.CellFormat(dayWidth, 6, cell, "1", 0, "C", false, 0, "")
			}
			if grid.Mode == report.ModeMonthRange {
				pdf.CellFormat(12, 6, fmt.Sprintf("%d", row.TotalPresent), "1", 0, "C", false, 0, "")
			}
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 6, "P = Present, A = Absent, HD = Half Day, L = Late, OL = On Leave")
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Generated at: %s", time.Now().Format("02 January 2006 15:04:05")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportXLSX implements report.ReportService.
func (r *ReportServiceImpl) ExportXLSX(ctx context.Context, req report.HistoryRequest) ([]byte, error) {
	grid, err := r.History(ctx, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Attendance"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	groupStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})

	f.SetCellValue(sheetName, "A1", "ATTENDANCE REPORT")
	f.SetCellValue(sheetName, "A2", windowTitle(grid))

	row := 4
	setCell := func(col int, value interface{}) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		f.SetCellValue(sheetName, cell, value)
	}

	for _, group := range grid.Groups {
		setCell(1, group.Department)
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellStyle(sheetName, cell, cell, groupStyle)
		row++

		setCell(1, "Employee")
		setCell(2, "Code")
		col := 3
		for _, day := range grid.Days {
			setCell(col, day)
			col++
		}
		if grid.Mode == report.ModeMonthRange {
			setCell(col, "Total Present")
		}
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(col, row)
		f.SetCellStyle(sheetName, first, last, headerStyle)
		row++

		for _, gridRow := range group.Rows {
			setCell(1, gridRow.Name)
			setCell(2, gridRow.EmployeeCode)
			col = 3
			for _, day := range grid.Days {
				if status, ok := gridRow.Cells[day]; ok {
					setCell(col, statusAbbrev(status))
				}
				col++
			}
			if grid.Mode == report.ModeMonthRange {
				setCell(col, gridRow.TotalPresent)
			}
			row++
		}
		row++
	}

	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", "B", 14)

	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}
