package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary      = "Summary"
	sheetRevenue      = "Revenue"
	sheetDemographics = "Demographics"
	sheetTop          = "Top Activities"
)

// Export renders the report for period as an XLSX workbook.
func (s *reportService) Export(ctx context.Context, period string) ([]byte, error) {
	r, err := s.Build(ctx, period)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	summary := [][]any{
		{"Period", string(r.Period)},
		{"Total Revenue", r.Metrics.TotalRevenue},
		{"Total Visitors", r.Metrics.TotalVisitors},
		{"Avg. Visit Duration", r.Metrics.AvgVisitDuration},
		{"Customer Satisfaction", r.Metrics.Satisfaction},
	}
	if err := writeRows(f, sheetSummary, summary); err != nil {
		return nil, err
	}

	revenue := [][]any{{"Month", "Revenue", "Visitors"}}
	for _, m := range r.Revenue {
		revenue = append(revenue, []any{m.Month, m.Revenue, m.Visitors})
	}
	demographics := [][]any{{"Segment", "Share %"}}
	for _, d := range r.Demographics {
		demographics = append(demographics, []any{d.Name, d.Value})
	}
	top := [][]any{{"Activity", "Visitors", "Revenue"}}
	for _, a := range r.TopActivities {
		top = append(top, []any{a.Name, a.Visitors, a.Revenue})
	}

	for _, sh := range []struct {
		name string
		rows [][]any
	}{
		{sheetRevenue, revenue},
		{sheetDemographics, demographics},
		{sheetTop, top},
	} {
		if _, err := f.NewSheet(sh.name); err != nil {
			return nil, fmt.Errorf("new sheet %s: %w", sh.name, err)
		}
		if err := writeRows(f, sh.name, sh.rows); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
