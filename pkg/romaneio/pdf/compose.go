// Package pdf renders one fixed-layout manifest page per record. The
// composer is a pure function: identical inputs produce identical bytes,
// and missing display fields render as empty text.
package pdf

import (
	"bytes"
	"errors"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/tecadi/romaneio/pkg/romaneio/models"
)

// Fixed form text of the manifest template.
const (
	docTitle     = "Romaneio Manual"
	metaTitle    = "Romaneio"
	formCode     = "FM 108"
	formRevision = "00"

	fixedContent = "CHEIO"
	fixedClient  = "SPRINGER CARRIER LTDA (MIDEA)."
	productTitle = "FAST CIF/FOB"

	dateLayout = "02/01/2006"
)

// ErrZeroDate indicates the manifest carries no report date.
var ErrZeroDate = errors.New("manifest report date is zero")

// Options configures document composition.
type Options struct {
	// LogoPath is the header logo image. An empty or missing path skips
	// the logo silently; a present but unreadable asset is a hard error.
	LogoPath string
}

// Compose renders one manifest page and returns the PDF bytes.
func Compose(m models.Manifest, opts Options) ([]byte, error) {
	if m.ReportDate.IsZero() {
		return nil, ErrZeroDate
	}

	doc := gofpdf.New("P", "cm", "A4", "")
	// Pin the metadata dates so identical inputs produce identical bytes.
	doc.SetCreationDate(m.ReportDate)
	doc.SetModificationDate(m.ReportDate)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	lay := newLayout()
	drawHeader(doc, tr, m, opts)
	drawInfoSection(doc, tr, lay.Info, m)
	drawProductSection(doc, tr, lay, m)
	drawSignatures(doc, tr)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawHeader(doc *gofpdf.Fpdf, tr func(string) string, m models.Manifest, opts Options) {
	if opts.LogoPath != "" {
		if _, err := os.Stat(opts.LogoPath); err == nil {
			doc.ImageOptions(opts.LogoPath, logoX, logoY, logoWidth, 0,
				false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}

	doc.SetFont("Helvetica", "B", 22)
	textCentered(doc, pageWidth/2-titleShiftLeft, titleY, tr(docTitle))

	doc.SetLineWidth(borderWidth)
	doc.RoundedRect(metaBoxX, metaBoxY, metaBoxWidth, metaBoxHeight, metaBoxRadius, "1234", "D")

	doc.SetFont("Helvetica", "B", 16)
	textCentered(doc, metaBoxX+metaBoxWidth/2, metaBoxY+0.9, tr(metaTitle))

	doc.SetFont("Helvetica", "", 10.5)
	right := metaBoxX + metaBoxWidth - 0.3
	textRight(doc, right, metaBoxY+1.55, tr("Cód.: "+formCode))
	textRight(doc, right, metaBoxY+2.10, tr("Rev.: "+formRevision))
	textRight(doc, right, metaBoxY+metaBoxHeight-0.55, tr("Data: "+m.ReportDate.Format(dateLayout)))
}

func drawInfoSection(doc *gofpdf.Fpdf, tr func(string) string, sec section, m models.Manifest) {
	doc.SetLineWidth(borderWidth)
	doc.RoundedRect(marginLeft, sec.Top, pageWidth-marginLeft-marginRight, sec.Height(), cornerRadius, "1234", "D")

	doc.SetFont("Helvetica", "B", 20)
	doc.Text(marginLeft+0.7, sec.Top+0.85, tr("Informações:"))

	rows := []fieldRow{
		{"DATA:", m.ReportDate.Format(dateLayout)},
		{"CONTEUDO:", fixedContent},
		{"CLIENTE:", fixedClient},
		{"TRANSPORTADORA:", m.Transporter},
		{"MOTORISTA:", m.Driver},
		{"PLACA:", m.Plate},
	}
	drawFieldRows(doc, tr, sec.firstRowY(), rows)
}

func drawProductSection(doc *gofpdf.Fpdf, tr func(string) string, lay layout, m models.Manifest) {
	sec := lay.Product
	doc.SetLineWidth(borderWidth)
	doc.RoundedRect(marginLeft, sec.Top, pageWidth-marginLeft-marginRight, sec.Height(), cornerRadius, "1234", "D")

	doc.SetFont("Helvetica", "B", 18)
	doc.Text(marginLeft+0.7, sec.Top+0.8, tr(productTitle))

	rows := []fieldRow{
		{"CNTR(ORIGEM):", m.OriginRef},
		{"CNTR(TECADI):", m.InternalRef},
		{"SKU:", m.SKU},
		{"QTD:", m.Quantity},
	}
	y := drawFieldRows(doc, tr, sec.firstRowY(), rows)

	y += fieldsListGap
	doc.SetFont("Helvetica", "B", 12)
	doc.Text(labelX, y, tr("LISTA:"))

	drawList(doc, tr, lay, m.List)
}

// drawFieldRows draws stepped label/value rows and returns the Y past the
// last row.
func drawFieldRows(doc *gofpdf.Fpdf, tr func(string) string, y float64, rows []fieldRow) float64 {
	for _, row := range rows {
		doc.SetFont("Helvetica", "B", 12)
		doc.Text(labelX, y, tr(row.label))
		doc.SetFont("Helvetica", "", 12)
		doc.Text(valueX, y, tr(row.value))
		y += rowStep
	}
	return y
}

type fieldRow struct {
	label string
	value string
}

// drawList renders the free-text list with word wrap, clipped to the
// fixed frame so overlong text cannot spill into the signatures.
func drawList(doc *gofpdf.Fpdf, tr func(string) string, lay layout, list string) {
	text := strings.ReplaceAll(list, " ;", ";")
	text = strings.ReplaceAll(text, "  ", " ")

	frameTop := lay.listFrameTop()
	frameWidth := pageWidth - marginRight - labelX

	doc.ClipRect(labelX, frameTop, frameWidth, listHeight, false)
	doc.SetFont("Helvetica", "", 12)
	doc.SetXY(labelX, frameTop)
	doc.MultiCell(frameWidth, listLineStep, tr(text), "", "L", false)
	doc.ClipEnd()
}

func drawSignatures(doc *gofpdf.Fpdf, tr func(string) string) {
	doc.SetLineWidth(0.035) // 1 pt
	doc.Line(2.0, signatureY, 9.0, signatureY)
	doc.Line(11.0, signatureY, 18.0, signatureY)

	doc.SetFont("Helvetica", "", 10)
	textCentered(doc, 5.5, signatureY+signatureGap, tr("ASS: MOTORISTA"))
	textCentered(doc, 14.5, signatureY+signatureGap, tr("ASS: CONFERENTE"))
}

func textCentered(doc *gofpdf.Fpdf, cx, y float64, s string) {
	doc.Text(cx-doc.GetStringWidth(s)/2, y, s)
}

func textRight(doc *gofpdf.Fpdf, rx, y float64, s string) {
	doc.Text(rx-doc.GetStringWidth(s), y, s)
}
