package romaneio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoTable indicates generation was requested before any table load.
var ErrNoTable = errors.New("no table loaded")

// ErrNoRows indicates no rows matched the status filter and selection.
var ErrNoRows = errors.New("no rows to generate")

// RenderError represents a single record's document generation failure.
// Within a batch it is contained to that record: the batch substitutes an
// error marker and continues.
type RenderError struct {
	// Index is the record's position in the filtered batch.
	Index int
	// Name is the record's intended output file name.
	Name string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error for record %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// BatchError indicates the loaded table is missing columns required for
// document generation; no documents are produced.
type BatchError struct {
	Missing []string
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}
