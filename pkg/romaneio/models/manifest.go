package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Manifest holds the display fields of one printable manifest page.
// It is a pure value: the composer renders it without touching the
// originating table.
type Manifest struct {
	// ReportDate is the caller-supplied date printed on the header,
	// independent of any date stored in the record.
	ReportDate time.Time

	Transporter string
	Driver      string
	Plate       string

	// OriginRef is the origin container reference (armador).
	OriginRef string
	// InternalRef is the internal container reference.
	InternalRef string
	SKU         string
	// Quantity is the pre-formatted quantity text.
	Quantity string
	// List is the free-flowing item list rendered with word wrap.
	List string
}

// ManifestFromRecord builds the manifest for one record and a report date.
// Missing fields become empty strings.
func ManifestFromRecord(r Record, reportDate time.Time) Manifest {
	qty := ""
	if f, ok := r.Number(ColQtd); ok {
		qty = FormatQuantity(f)
	} else if s := r.Text(ColQtd); s != "" {
		qty = FormatQuantity(s)
	}
	return Manifest{
		ReportDate:  reportDate,
		Transporter: r.Text(ColTransportadora),
		Driver:      r.Text(ColNome),
		Plate:       r.Text(ColPlaca),
		OriginRef:   r.Text(ColArmador),
		InternalRef: r.Text(ColTecadi),
		SKU:         r.Text(ColSKU),
		Quantity:    qty,
		List:        r.Text(ColLista),
	}
}

// FormatQuantity renders a quantity value for display. Numeric values
// within 1e-9 of their rounding render as an integer string, other
// numerics with full precision; non-numeric input passes through
// unchanged.
func FormatQuantity(v any) string {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return n
		}
		f = parsed
	default:
		return fmt.Sprint(v)
	}
	if math.Abs(f-math.Round(f)) < 1e-9 {
		return strconv.FormatInt(int64(math.Round(f)), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
