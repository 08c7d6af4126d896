package label

import (
	"fmt"
	"os"

	domain "github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/entity"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/usecase"
	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/barcode"
)

// senderLines is the hardcoded FROM block printed on every label.
var senderLines = []string{
	"Luminous Candles Ltd T/A Nelux Candles",
	"71-75, Shelton Street, Covent Garden,",
	"London, United Kingdom, WC2H 9JQ",
}

// PDFRenderer draws an A6 landscape shipping label: logo top-left (skipped
// when the asset is missing), sender block, centered recipient block, and a
// Code128 barcode of the order id along the bottom edge.
type PDFRenderer struct {
	logoPath string
}

func NewPDFRenderer(logoPath string) *PDFRenderer {
	return &PDFRenderer{logoPath: logoPath}
}

func (r *PDFRenderer) Render(o *domain.Order) (path string, err error) {
	pdf := gofpdf.New("L", "mm", "A6", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	const (
		topMargin    = 8.0
		sideMargin   = 8.0
		bottomMargin = 12.0
		logoSize     = 25.0
	)

	if _, statErr := os.Stat(r.logoPath); statErr == nil {
		pdf.ImageOptions(r.logoPath, sideMargin, topMargin, logoSize, logoSize,
			false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	fromX := sideMargin + logoSize + 6
	fromY := topMargin + 6
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(fromX, fromY, "FROM:")
	pdf.SetFont("Helvetica", "", 9)
	for i, line := range senderLines {
		pdf.Text(fromX, fromY+float64(i+1)*5, line)
	}

	toY := topMargin + logoSize + 10
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(sideMargin, toY, "TO:")

	pdf.SetFont("Helvetica", "B", 14)
	cust := o.Customer
	toLines := []string{
		cust.FullName,
		cust.Address,
		fmt.Sprintf("%s, %s %s", cust.City, cust.State, cust.Zip),
		cust.Country,
	}
	const lineGap = 6.0
	for i, line := range toLines {
		pdf.SetXY(0, toY+4+float64(i)*lineGap)
		pdf.CellFormat(pageW, lineGap, line, "", 0, "C", false, 0, "")
	}

	const barcodeW, barcodeH = 70.0, 20.0
	key := barcode.RegisterCode128(pdf, o.ID)
	barcode.Barcode(pdf, key, (pageW-barcodeW)/2, pageH-bottomMargin-barcodeH, barcodeW, barcodeH, false)

	if pdf.Err() {
		return "", pdf.Error()
	}

	tmp, err := os.CreateTemp("", "label-*.pdf")
	if err != nil {
		return "", err
	}
	tmp.Close()
	if err := pdf.OutputFileAndClose(tmp.Name()); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

var _ usecase.LabelRenderer = (*PDFRenderer)(nil)
