// Package sheet normalizes raw spreadsheet bytes into a canonical record
// table: it locates the header row inside the worksheet, maps
// inconsistent header spellings to canonical column names, and coerces
// locale-formatted numeric text.
package sheet

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/tecadi/romaneio/pkg/romaneio/models"
	"github.com/xuri/excelize/v2"
)

// SourceFormatError indicates the named worksheet is absent or the
// workbook is unreadable. It is the only hard failure of normalization;
// per-cell coercion failures degrade to absent values instead.
type SourceFormatError struct {
	Sheet string
	Err   error
}

func (e *SourceFormatError) Error() string {
	return fmt.Sprintf("cannot read worksheet %q: %v", e.Sheet, e.Err)
}

func (e *SourceFormatError) Unwrap() error {
	return e.Err
}

// Load parses raw workbook bytes into the normalized record table.
func Load(data []byte, sheetName string, m Mapping) (*models.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &SourceFormatError{Sheet: sheetName, Err: err}
	}
	defer f.Close()

	grid, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &SourceFormatError{Sheet: sheetName, Err: err}
	}

	headerRow := findHeaderRow(grid, m)
	columns, keep := mapColumns(headerRow, grid, m)

	table := &models.Table{Columns: columns}
	if headerRow+1 < len(grid) {
		for _, raw := range grid[headerRow+1:] {
			rec := buildRecord(raw, columns, keep, m)
			if rec != nil {
				table.Rows = append(table.Rows, rec)
			}
		}
	}
	return table, nil
}

// findHeaderRow scans the first MaxHeaderScan rows for the first row
// whose case-folded joined text contains every header marker. Falls back
// to row 0 when none matches; it never fails.
func findHeaderRow(grid [][]string, m Mapping) int {
	limit := m.MaxHeaderScan
	if limit > len(grid) {
		limit = len(grid)
	}
	for i := 0; i < limit; i++ {
		joined := strings.ToUpper(strings.Join(grid[i], " "))
		found := len(m.HeaderMarkers) > 0
		for _, marker := range m.HeaderMarkers {
			if !strings.Contains(joined, strings.ToUpper(marker)) {
				found = false
				break
			}
		}
		if found {
			return i
		}
	}
	return 0
}

// mapColumns maps the header row through the alias table, truncated to
// MaxColumns. keep[i] is false for columns whose mapped name duplicates
// an earlier one; only the first occurrence survives.
func mapColumns(headerRow int, grid [][]string, m Mapping) (columns []string, keep []bool) {
	var header []string
	if headerRow < len(grid) {
		header = grid[headerRow]
	}
	if len(header) > m.MaxColumns {
		header = header[:m.MaxColumns]
	}

	seen := make(map[string]bool)
	keep = make([]bool, len(header))
	for i, cell := range header {
		name := m.canonical(cell)
		if seen[name] {
			continue
		}
		seen[name] = true
		keep[i] = true
		columns = append(columns, name)
	}
	return columns, keep
}

// buildRecord converts one raw data row into a Record, or nil when the
// row is entirely empty.
func buildRecord(raw []string, columns []string, keep []bool, m Mapping) models.Record {
	rec := make(models.Record, len(columns))
	empty := true
	col := 0
	for i := range keep {
		if !keep[i] {
			continue
		}
		name := columns[col]
		col++
		cell := ""
		if i < len(raw) {
			cell = raw[i]
		}
		if strings.TrimSpace(cell) != "" {
			empty = false
		}
		switch name {
		case m.QuantityColumn:
			if q, ok := ParseQuantity(cell); ok {
				rec[name] = q
			}
		case m.StatusColumn:
			rec[name] = strings.ToUpper(strings.TrimSpace(cell))
		default:
			rec[name] = cell
		}
	}
	if empty {
		return nil
	}
	return rec
}

// ParseQuantity parses a quantity cell using the source locale
// convention: period as thousands separator, comma as decimal separator.
// Unparsable input reports false, never an error.
func ParseQuantity(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
