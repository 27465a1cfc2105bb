package sheet

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/tecadi/romaneio/pkg/romaneio/models"
)

// Mapping is the normalization configuration: header detection markers
// and the alias table mapping normalized header spellings to canonical
// column names. It is tuned to one specific source sheet and therefore
// kept as explicit, swappable data rather than hard-coded in the parser.
type Mapping struct {
	// HeaderMarkers are the tokens that must all appear (case-folded) in
	// a row for it to be taken as the header row.
	HeaderMarkers []string `toml:"header_markers"`
	// Aliases maps normalized header spellings to canonical column names.
	// Unmapped headers pass through as their normalized text.
	Aliases map[string]string `toml:"aliases"`
	// MaxHeaderScan bounds the header search to the first N rows.
	MaxHeaderScan int `toml:"max_header_scan"`
	// MaxColumns truncates each data row to the first N columns.
	MaxColumns int `toml:"max_columns"`
	// QuantityColumn names the column coerced to a locale-neutral number.
	QuantityColumn string `toml:"quantity_column"`
	// StatusColumn names the column trimmed and upper-cased for filtering.
	StatusColumn string `toml:"status_column"`
}

// DefaultMapping returns the mapping tuned to the PROCESSOS S.LEITURA
// source sheet.
func DefaultMapping() Mapping {
	return Mapping{
		HeaderMarkers: []string{models.ColDemanda, models.ColArmador},
		Aliases: map[string]string{
			"DEMANDA":          models.ColDemanda,
			"HORARIO":          models.ColHorario,
			"ARMADOR":          models.ColArmador,
			"TRANSPORTADORA":   models.ColTransportadora,
			"DATA PROGRAMACAO": models.ColDataProgramacao,
			"ROMANEIO":         models.ColRomaneio,
			"SKU":              models.ColSKU,
			"QTD":              models.ColQtd,
			"M3":               models.ColM3,
			"STATUS":           models.ColStatus,
			"NOME":             models.ColNome,
			"MOTORISTA":        models.ColNome,
			"PLACA":            models.ColPlaca,
			"TECADI":           models.ColTecadi,
			"LISTA":            models.ColLista,
		},
		MaxHeaderScan:  20,
		MaxColumns:     15,
		QuantityColumn: models.ColQtd,
		StatusColumn:   models.ColStatus,
	}
}

// LoadMapping reads a TOML mapping file. Fields left unset in the file
// fall back to the defaults.
func LoadMapping(path string) (Mapping, error) {
	m := DefaultMapping()
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read mapping file: %w", err)
	}
	var override Mapping
	if err := toml.Unmarshal(data, &override); err != nil {
		return m, fmt.Errorf("parse mapping file: %w", err)
	}
	if len(override.HeaderMarkers) > 0 {
		m.HeaderMarkers = override.HeaderMarkers
	}
	if len(override.Aliases) > 0 {
		m.Aliases = override.Aliases
	}
	if override.MaxHeaderScan > 0 {
		m.MaxHeaderScan = override.MaxHeaderScan
	}
	if override.MaxColumns > 0 {
		m.MaxColumns = override.MaxColumns
	}
	if override.QuantityColumn != "" {
		m.QuantityColumn = override.QuantityColumn
	}
	if override.StatusColumn != "" {
		m.StatusColumn = override.StatusColumn
	}
	return m, nil
}

// canonical maps one header cell to its canonical column name.
func (m Mapping) canonical(header string) string {
	key := NormalizeKey(header)
	if mapped, ok := m.Aliases[key]; ok {
		return mapped
	}
	return key
}
