package sheet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tecadi/romaneio/pkg/romaneio/models"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook returns the bytes of an in-memory workbook with the
// given grid on sheet Sheet1.
func buildWorkbook(t *testing.T, grid [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for r, row := range grid {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestLoadWithPreamble(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Relatório de carregamentos"},
		{},
		{"DEMANDA", "ARMADOR", "Transportadora", "Motorista", "PLACA", "QTD", "Status", "LISTA"},
		{"DEM-1234", "MAERSK", "TransLog", "João", "ABC1D23", "1.234,5", " finalizado ", "cx 1; cx 2"},
		{"DEM-5678", "MSC", "RodoSul", "Maria", "XYZ9Z99", "abc", "PENDENTE", "cx 3"},
	})

	table, err := Load(data, "Sheet1", DefaultMapping())
	require.NoError(t, err)

	assert.Equal(t, []string{
		models.ColDemanda, models.ColArmador, models.ColTransportadora,
		models.ColNome, models.ColPlaca, models.ColQtd, models.ColStatus, models.ColLista,
	}, table.Columns)
	require.Len(t, table.Rows, 2)

	first := table.Rows[0]
	assert.Equal(t, "DEM-1234", first.Text(models.ColDemanda))
	assert.Equal(t, "João", first.Text(models.ColNome))
	q, ok := first.Number(models.ColQtd)
	require.True(t, ok)
	assert.Equal(t, 1234.5, q)
	assert.Equal(t, "FINALIZADO", first.Text(models.ColStatus))

	// Unparsable quantity is absent, not an error.
	_, ok = table.Rows[1].Number(models.ColQtd)
	assert.False(t, ok)
}

func TestLoadMissingSheet(t *testing.T) {
	data := buildWorkbook(t, [][]any{{"DEMANDA", "ARMADOR"}})

	_, err := Load(data, "PROCESSOS S.LEITURA", DefaultMapping())
	require.Error(t, err)
	var sfe *SourceFormatError
	require.ErrorAs(t, err, &sfe)
	assert.Equal(t, "PROCESSOS S.LEITURA", sfe.Sheet)
}

func TestLoadCorruptWorkbook(t *testing.T) {
	_, err := Load([]byte("not a workbook"), "Sheet1", DefaultMapping())
	var sfe *SourceFormatError
	require.ErrorAs(t, err, &sfe)
}

func TestLoadDuplicateColumnsFirstWins(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"DEMANDA", "ARMADOR", "NOME", "Motorista"},
		{"10", "MSC", "Ana", "Bruno"},
	})

	table, err := Load(data, "Sheet1", DefaultMapping())
	require.NoError(t, err)

	// NOME and Motorista map to the same canonical name; the first wins.
	assert.Equal(t, []string{models.ColDemanda, models.ColArmador, models.ColNome}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Ana", table.Rows[0].Text(models.ColNome))
}

func TestLoadTruncatesColumns(t *testing.T) {
	header := make([]any, 18)
	row := make([]any, 18)
	for i := range header {
		header[i] = fmt.Sprintf("COL %d", i+1)
		row[i] = fmt.Sprintf("v%d", i+1)
	}
	header[0], header[1] = "DEMANDA", "ARMADOR"
	data := buildWorkbook(t, [][]any{header, row})

	table, err := Load(data, "Sheet1", DefaultMapping())
	require.NoError(t, err)
	assert.Len(t, table.Columns, 15)
	assert.False(t, table.Rows[0].Has("COL 16"))
}

func TestLoadDropsEmptyRows(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"DEMANDA", "ARMADOR"},
		{"1", "MSC"},
		{},
		{"2", "CMA"},
	})

	table, err := Load(data, "Sheet1", DefaultMapping())
	require.NoError(t, err)
	assert.Len(t, table.Rows, 2)
}

func TestFindHeaderRow(t *testing.T) {
	m := DefaultMapping()

	grid := [][]string{
		{"preamble"},
		{"another line"},
		{"demanda", "armador", "qtd"},
		{"1", "MSC", "5"},
	}
	assert.Equal(t, 2, findHeaderRow(grid, m))

	// No marker row within the scan window falls back to row 0.
	none := [][]string{{"a"}, {"b"}, {"c"}}
	assert.Equal(t, 0, findHeaderRow(none, m))

	// Markers beyond the scan window are ignored.
	var deep [][]string
	for i := 0; i < 25; i++ {
		deep = append(deep, []string{"filler"})
	}
	deep = append(deep, []string{"DEMANDA", "ARMADOR"})
	assert.Equal(t, 0, findHeaderRow(deep, m))
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"1.234,5", 1234.5, true},
		{"10", 10.0, true},
		{"0,5", 0.5, true},
		{"1.000", 1000, true},
		{"abc", 0, false},
		{"", 0, false},
		{"  42  ", 42, true},
	}
	for _, tt := range tests {
		got, ok := ParseQuantity(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		if tt.ok {
			assert.Equal(t, tt.expected, got, "input %q", tt.input)
		}
	}
}
