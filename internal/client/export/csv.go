package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/lotterich/cli/internal/client/collection"
	"github.com/lotterich/cli/internal/client/models"
)

var csvHeader = []string{
	"วันที่",
	"เลขสลาก",
	"จำนวน (ใบ)",
	"ราคาต่อใบ",
	"สถานะ",
	"ประเภทรางวัล",
	"เงินรางวัล",
	"เลขที่ถูกรางวัล",
	"ยอดซื้อรวม",
	"กำไร/ขาดทุน",
}

// WriteCSV renders export rows as a CRLF-terminated CSV with Thai
// headers, labels and Buddhist-era dates.
func WriteCSV(w io.Writer, rows []collection.ExportRow) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		tier := models.NoDataPlaceholder
		if r.Status == models.PrizeResultYes {
			tier = r.PrizeType.Label()
		}
		winning := r.Winning
		if winning == "" {
			winning = models.NoDataPlaceholder
		}
		record := []string{
			ThaiDate(r.Date),
			r.TicketNumber,
			strconv.Itoa(r.Quantity),
			strconv.Itoa(r.UnitPrice),
			r.Status.Label(),
			tier,
			strconv.Itoa(r.PrizeAmount),
			winning,
			strconv.Itoa(r.TotalCost),
			strconv.Itoa(r.Net),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
