package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"nutrisurvey-service/internal/pkg/survey"
)

// utf8BOM makes spreadsheet applications decode the Thai text correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// RenderCSV serializes report rows as BOM-prefixed, CRLF-terminated CSV.
// The header comes from the fixed schema order of the first row; an empty
// list still renders the canonical header line. Fields containing commas,
// quotes or newlines are quoted with internal quotes doubled per RFC 4180,
// and nil cells render as empty strings.
func RenderCSV(rows []survey.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	writer := csv.NewWriter(&buf)
	writer.UseCRLF = true

	headers := survey.ReportHeaders()
	if len(rows) > 0 {
		headers = rows[0].Headers()
	}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	record := make([]string, len(headers))
	for _, row := range rows {
		values := row.Values()
		for i := range headers {
			record[i] = cellString(values[i])
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch value := v.(type) {
	case string:
		return value
	case float64:
		if value == float64(int64(value)) {
			return fmt.Sprintf("%d", int64(value))
		}
		return fmt.Sprintf("%v", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
