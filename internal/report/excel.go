// Package report writes analysis results to spreadsheet files.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gocba/internal/analysis"
)

// WriteXLSX writes the analysis result as a workbook with a summary sheet,
// the support reactions and moments, and the per-span extremes.
func WriteXLSX(a *analysis.Analyzer, res *analysis.Result, name, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	if err := writeSummarySheet(f, a, name, header); err != nil {
		return err
	}
	if err := writeSupportSheet(f, a, res, header); err != nil {
		return err
	}
	if err := writeExtremesSheet(f, res, header); err != nil {
		return err
	}

	// Drop the default sheet so the summary comes first.
	f.DeleteSheet("Sheet1")
	idx, err := f.GetSheetIndex("Summary")
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	return f.SaveAs(filename)
}

func writeSummarySheet(f *excelize.File, a *analysis.Analyzer, name string, header int) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Beam", name},
		{"Supports", len(a.Supports())},
		{"Spans", len(a.Spans())},
		{"Loads", len(a.Loads())},
		{"Deflection analysis", a.HasDeflection()},
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", fmt.Sprintf("A%d", len(rows)), header); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "B", 24)
}

func writeSupportSheet(f *excelize.File, a *analysis.Analyzer, res *analysis.Result, header int) error {
	const sheet = "Supports"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	head := []interface{}{"Position (m)", "Reaction (N)", "Moment (N·m)"}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", header); err != nil {
		return err
	}

	for i, pos := range a.Supports() {
		row := []interface{}{pos, res.Reactions[pos], res.SupportMoments[pos]}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "C", 18)
}

func writeExtremesSheet(f *excelize.File, res *analysis.Result, header int) error {
	const sheet = "Span Extremes"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	head := []interface{}{
		"Span", "From (m)", "To (m)",
		"Max |V| (N)", "at (m)",
		"Max |M| (N·m)", "at (m)",
		"Max |δ| (mm)", "at (m)",
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "I1", header); err != nil {
		return err
	}

	for i := range res.MaxMomentPerSpan {
		m := res.MaxMomentPerSpan[i]
		v := res.MaxShearPerSpan[i]

		row := []interface{}{
			m.SpanIndex + 1, m.Span.Start, m.Span.End,
			v.Value, v.Position,
			m.Value, m.Position,
		}
		if res.MaxDeflectionPerSpan != nil {
			d := res.MaxDeflectionPerSpan[i]
			row = append(row, d.Value, d.Position)
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "I", 15)
}
