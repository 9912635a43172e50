package export

import (
	"bytes"

	"nutrisurvey-service/internal/pkg/survey"

	"github.com/xuri/excelize/v2"
)

const (
	minColumnWidth = 10
	maxColumnWidth = 60
)

// RenderXLSX serializes report rows into a single-sheet workbook. The header
// row is derived from the first row's field order and set bold; columns are
// widened to their longest rendered cell (plus padding) up to a cap. An empty
// row list produces a lone "No data" cell, matching the CSV-less download the
// admin UI expects.
func RenderXLSX(sheetName string, rows []survey.ReportRow) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	index, err := workbook.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	workbook.SetActiveSheet(index)
	if err := workbook.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		if err := workbook.SetCellValue(sheetName, "A1", "No data"); err != nil {
			return nil, err
		}
		return writeBuffer(workbook)
	}

	headers := rows[0].Headers()
	widths := make([]int, len(headers))

	headerCells := make([]interface{}, len(headers))
	for i, h := range headers {
		headerCells[i] = h
		widths[i] = minColumnWidth
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	if err := workbook.SetSheetRow(sheetName, "A1", &headerCells); err != nil {
		return nil, err
	}

	for rowIdx, row := range rows {
		values := row.Values()
		cells := make([]interface{}, len(headers))
		for i := range headers {
			cells[i] = values[i]
			if width := len(cellString(values[i])); width > widths[i] {
				widths[i] = width
			}
		}
		cellRef, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return nil, err
		}
		if err := workbook.SetSheetRow(sheetName, cellRef, &cells); err != nil {
			return nil, err
		}
	}

	boldStyle, err := workbook.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return nil, err
	}
	if err := workbook.SetCellStyle(sheetName, "A1", lastHeaderCell, boldStyle); err != nil {
		return nil, err
	}

	for i, width := range widths {
		columnWidth := width + 2
		if columnWidth > maxColumnWidth {
			columnWidth = maxColumnWidth
		}
		columnName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := workbook.SetColWidth(sheetName, columnName, columnName, float64(columnWidth)); err != nil {
			return nil, err
		}
	}

	return writeBuffer(workbook)
}

func writeBuffer(workbook *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
