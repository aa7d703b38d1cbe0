package collection

import (
	"sort"
	"time"

	"github.com/lotterich/cli/internal/client/models"
)

// ExportRow is the flat projection shared by the CSV and PDF writers.
// Only the rendering of dates and labels differs between the two.
type ExportRow struct {
	Date         time.Time
	TicketNumber string
	Quantity     int
	UnitPrice    int
	Status       models.PrizeResult
	PrizeType    models.PrizeType
	PrizeAmount  int
	Winning      string
	TotalCost    int
	Net          int
}

// ExportRows projects tickets into export rows ordered oldest purchase
// first, the reverse of the on-screen order.
func ExportRows(tickets []models.Ticket) []ExportRow {
	rows := make([]ExportRow, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, ExportRow{
			Date:         t.Date,
			TicketNumber: t.TicketNumber,
			Quantity:     t.TicketQuantity,
			UnitPrice:    t.TicketAmount,
			Status:       t.PrizeResult,
			PrizeType:    t.PrizeType,
			PrizeAmount:  t.PrizeAmount,
			Winning:      t.TicketWinning,
			TotalCost:    t.TotalCost(),
			Net:          t.Net(),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})
	return rows
}
