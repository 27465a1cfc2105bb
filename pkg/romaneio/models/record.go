// Package models defines the normalized record table and the manifest
// document model.
package models

import (
	"regexp"
	"strings"
)

// Canonical column names of the normalized table. Values match the
// headers of the source sheet after alias mapping.
const (
	ColDemanda         = "DEMANDA"
	ColHorario         = "HORARIO"
	ColArmador         = "ARMADOR"
	ColTransportadora  = "TRANSPORTADORA"
	ColDataProgramacao = "DATA PROGRAMAÇÃO"
	ColRomaneio        = "ROMANEIO"
	ColSKU             = "SKU"
	ColQtd             = "QTD"
	ColM3              = "M3"
	ColStatus          = "STATUS"
	ColNome            = "NOME"
	ColPlaca           = "PLACA"
	ColTecadi          = "TECADI"
	ColLista           = "LISTA"
)

var demandDigits = regexp.MustCompile(`\d+`)

// Record is one normalized row. Values are string for text columns and
// float64 for the coerced quantity; a cell that failed coercion is simply
// absent.
type Record map[string]any

// Text returns the trimmed text of a column, or "" when the column is
// absent or not textual.
func (r Record) Text(col string) string {
	v, ok := r[col]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// Number returns the numeric value of a column and whether one is present.
func (r Record) Number(col string) (float64, bool) {
	v, ok := r[col]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// Has reports whether the record holds any value for a column.
func (r Record) Has(col string) bool {
	v, ok := r[col]
	return ok && v != nil
}

// DemandNumber returns the digits of the demand identifier, or the raw
// text when it contains no digits.
func (r Record) DemandNumber() string {
	raw := r.Text(ColDemanda)
	if m := demandDigits.FindString(raw); m != "" {
		return m
	}
	return raw
}

// Key returns the selection key of the record: "<demand digits>|<armador>".
func (r Record) Key() string {
	return r.DemandNumber() + "|" + r.Text(ColArmador)
}

// Label returns a one-line display label for row selection.
func (r Record) Label() string {
	parts := []string{
		r.Text(ColDemanda),
		r.Text(ColArmador),
		r.Text(ColTransportadora),
		r.Text(ColNome),
		r.Text(ColPlaca),
		r.Text(ColLista),
	}
	return strings.Join(parts, " — ")
}

// OutputName returns the archive file name for the record's manifest,
// "<demand digits>.<armador>.pdf".
func (r Record) OutputName() string {
	return r.DemandNumber() + "." + r.Text(ColArmador) + ".pdf"
}
