package csvimport

import (
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

const (
	reportSheet  = "Validación"
	summarySheet = "Resumen"
)

// WriteReport renders result as a workbook: one sheet with every row, its raw fields and
// errors, and a summary sheet with the counts.
func WriteReport(w io.Writer, result domain.ParseResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	header := append([]any{"Fila", "Válido"}, toAny(result.HeaderKeys)...)
	header = append(header, "Errores")
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range result.Rows {
		values := []any{row.RowNumber, yesNo(row.IsValid)}
		for _, key := range result.HeaderKeys {
			values = append(values, row.RawFields[key])
		}
		values = append(values, strings.Join(row.Errors, ", "))

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(reportSheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", row.RowNumber, err)
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}
	summary := [][]any{
		{"Tipo", string(result.Kind)},
		{"Filas válidas", result.ValidCount},
		{"Filas con errores", result.InvalidCount},
	}
	for i, line := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &line); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func yesNo(ok bool) string {
	if ok {
		return "Sí"
	}
	return "No"
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
