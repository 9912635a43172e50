package export

import (
	"bytes"
	"testing"

	"nutrisurvey-service/internal/pkg/survey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRenderXLSX(t *testing.T) {
	rows := []survey.ReportRow{
		{Fields: []survey.Field{
			{Name: "Department", Value: "อายุรกรรม"},
			{Name: "Stress_Score", Value: 8},
		}},
		{Fields: []survey.Field{
			{Name: "Department", Value: "ศัลยกรรม"},
			{Name: "Stress_Score", Value: 3},
		}},
	}

	data, err := RenderXLSX("Nutritional", rows)
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	assert.Equal(t, []string{"Nutritional"}, workbook.GetSheetList(), "default sheet must be replaced")

	cell, err := workbook.GetCellValue("Nutritional", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Department", cell)

	cell, err = workbook.GetCellValue("Nutritional", "B2")
	require.NoError(t, err)
	assert.Equal(t, "8", cell)

	cell, err = workbook.GetCellValue("Nutritional", "A3")
	require.NoError(t, err)
	assert.Equal(t, "ศัลยกรรม", cell)

	width, err := workbook.GetColWidth("Nutritional", "A")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, width, float64(minColumnWidth))
	assert.LessOrEqual(t, width, float64(maxColumnWidth))
}

func TestRenderXLSXEmpty(t *testing.T) {
	data, err := RenderXLSX("Nutritional", nil)
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	cell, err := workbook.GetCellValue("Nutritional", "A1")
	require.NoError(t, err)
	assert.Equal(t, "No data", cell)
}
