package pdf

// Page geometry in centimeters, Y measured top-down (A4 portrait).
const (
	pageWidth  = 21.0
	pageHeight = 29.7

	marginLeft  = 1.6
	marginRight = 1.6

	// Two-column stepped field layout shared by both sections.
	labelX  = marginLeft + 0.9
	valueX  = marginLeft + 6.3
	rowStep = 0.95

	cornerRadius = 0.28
	borderWidth  = 0.053 // 1.5 pt

	titleGap   = 0.60
	sectionGap = 0.90

	titleShiftLeft = 0.50

	// Product section list frame.
	fieldsListGap = 0.35
	listHeight    = 5.0
	listLineStep  = 0.494 // 14 pt leading

	// Signature lines, offset downward from the 2.6 cm base.
	signatureShiftDown = 1.50
	signatureY         = pageHeight - (2.6 - signatureShiftDown)
	signatureGap       = 0.45

	// Header band.
	logoX      = marginLeft
	logoY      = 1.10
	logoWidth  = 3.9
	logoHeight = 1.25
	titleY     = 2.70

	metaBoxWidth  = 5.4
	metaBoxHeight = 3.0
	metaBoxX      = pageWidth - marginRight - metaBoxWidth
	metaBoxY      = 2.0
	metaBoxRadius = 0.21
)

// section is one bordered content block. Its height is computed from its
// content arity so the next section can anchor below it.
type section struct {
	Top         float64
	TitleHeight float64
	PadTop      float64
	PadBottom   float64
	TitleGap    float64
	Rows        int
	RowStep     float64
	// Extra is additional content height below the stepped rows (the
	// product section's list frame and its gap).
	Extra float64
}

// Height computes the section height from its content arity.
func (s section) Height() float64 {
	return s.TitleHeight + s.PadTop + s.TitleGap + float64(s.Rows)*s.RowStep + s.Extra + s.PadBottom
}

// Bottom is the section's bottom edge, the anchor for whatever follows.
func (s section) Bottom() float64 {
	return s.Top + s.Height()
}

// firstRowY is the baseline of the first stepped field row.
func (s section) firstRowY() float64 {
	return s.Top + s.TitleHeight + s.TitleGap
}

// layout chains the page sections top-down: the product section anchors
// at the info section's computed bottom plus the section gap.
type layout struct {
	Info    section
	Product section
}

func newLayout() layout {
	info := section{
		Top:         6.1,
		TitleHeight: 1.1,
		PadTop:      0.5,
		PadBottom:   0.6,
		TitleGap:    titleGap,
		Rows:        6,
		RowStep:     rowStep,
	}
	product := section{
		Top:         info.Bottom() + sectionGap,
		TitleHeight: 1.0,
		PadTop:      0.5,
		PadBottom:   0.6,
		TitleGap:    titleGap,
		Rows:        4,
		RowStep:     rowStep,
		Extra:       fieldsListGap + listHeight,
	}
	return layout{Info: info, Product: product}
}

// listFrameTop is the top edge of the product section's wrapped-text
// frame, measured from the section bottom up past the padding.
func (l layout) listFrameTop() float64 {
	return l.Product.Bottom() - l.Product.PadBottom - 0.2 - listHeight
}
