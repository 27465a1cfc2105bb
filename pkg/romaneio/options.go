// Package romaneio generates shipment manifest PDFs from a shared
// loading spreadsheet: it normalizes the worksheet into a record table,
// filters rows by completion status, renders one fixed-layout page per
// selected row and bundles the output into a ZIP.
package romaneio

import (
	"github.com/tecadi/romaneio/pkg/romaneio/models"
	"github.com/tecadi/romaneio/pkg/romaneio/sheet"
)

// DefaultSheetName is the worksheet holding the loading records.
const DefaultSheetName = "PROCESSOS S.LEITURA"

// DefaultStatus selects completed rows for generation.
const DefaultStatus = "FINALIZADO"

// DefaultRequiredColumns must exist in the table before a batch runs.
var DefaultRequiredColumns = []string{
	models.ColArmador,
	models.ColTecadi,
	models.ColSKU,
	models.ColQtd,
	models.ColLista,
	models.ColDemanda,
	models.ColTransportadora,
	models.ColNome,
	models.ColPlaca,
}

// Options configures a Session.
type Options struct {
	// SheetName is the worksheet to normalize.
	SheetName string
	// Status filters rows for generation, compared after normalization.
	Status string
	// Mapping is the normalization configuration.
	Mapping sheet.Mapping
	// LogoPath is the header logo for rendered documents; empty or
	// missing skips the logo.
	LogoPath string
	// Required are the columns gated before a batch. Nil means
	// DefaultRequiredColumns.
	Required []string
}

// DefaultOptions returns options tuned to the production source sheet.
func DefaultOptions() Options {
	return Options{
		SheetName: DefaultSheetName,
		Status:    DefaultStatus,
		Mapping:   sheet.DefaultMapping(),
	}
}

// RequiredColumns returns the configured required columns.
func (o Options) RequiredColumns() []string {
	if o.Required != nil {
		return o.Required
	}
	return DefaultRequiredColumns
}
