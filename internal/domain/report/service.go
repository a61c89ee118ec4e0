package report

import "context"

// ReportService builds historical attendance grids and derived outputs
type ReportService interface {
	// History builds the department-grouped day grid for a date or month
	History(ctx context.Context, req HistoryRequest) (AttendanceGrid, error)

	// Insights builds the grid for the window and summarizes it under the
	// filter. The summarization itself is a pure function over the grid
	// and can be re-applied with other filters without re-fetching.
	Insights(ctx context.Context, req HistoryRequest, filter InsightFilter) (InsightSummary, error)

	// ExportPDF renders the grid as a printable tabular report
	ExportPDF(ctx context.Context, req HistoryRequest) ([]byte, error)

	// ExportXLSX renders the grid as a spreadsheet
	ExportXLSX(ctx context.Context, req HistoryRequest) ([]byte, error)
}
