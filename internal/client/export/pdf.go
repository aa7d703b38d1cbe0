package export

import (
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/lotterich/cli/internal/client/collection"
	"github.com/lotterich/cli/internal/client/models"
)

// The built-in core fonts carry no Thai glyphs, so the PDF sticks to
// ASCII labels and ISO dates.
var pdfHeader = []string{
	"Date", "Ticket No.", "Qty", "Unit Price", "Status",
	"Prize Type", "Prize Amount", "Winning No.", "Total Cost", "Net",
}

var pdfColWidths = [10]float64{24, 28, 14, 24, 22, 38, 28, 28, 24, 24}

// WritePDF renders export rows as a landscape A4 table.
func WritePDF(w io.Writer, rows []collection.ExportRow) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Lottery Ticket Collection", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range pdfHeader {
		pdf.CellFormat(pdfColWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range rows {
		tier := "-"
		if r.Status == models.PrizeResultYes {
			tier = r.PrizeType.ASCIILabel()
		}
		winning := r.Winning
		if winning == "" {
			winning = "-"
		}
		cells := [10]string{
			r.Date.Format(models.DrawDateLayout),
			r.TicketNumber,
			strconv.Itoa(r.Quantity),
			strconv.Itoa(r.UnitPrice),
			r.Status.ASCIILabel(),
			tier,
			strconv.Itoa(r.PrizeAmount),
			winning,
			strconv.Itoa(r.TotalCost),
			strconv.Itoa(r.Net),
		}
		for i, c := range cells {
			align := "L"
			if i >= 2 && i != 4 && i != 5 && i != 7 {
				align = "R"
			}
			pdf.CellFormat(pdfColWidths[i], 7, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
