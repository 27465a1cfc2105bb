package models

// Table is the normalized record table produced by one spreadsheet load.
type Table struct {
	// Columns holds the canonical column names in sheet order, duplicates
	// already dropped.
	Columns []string
	// Rows holds one Record per non-empty data row.
	Rows []Record
}

// HasColumn reports whether the table contains a column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the subset of required that is not present in
// the table, in the given order.
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, c := range required {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Filter returns the rows for which pred is true, in table order.
func (t *Table) Filter(pred func(Record) bool) []Record {
	var out []Record
	for _, r := range t.Rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
