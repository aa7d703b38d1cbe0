package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lotterich/cli/internal/client/collection"
	"github.com/lotterich/cli/internal/client/models"
)

// refresh refetches the collection into the list view.
func (a *App) refresh(ctx context.Context) error {
	tickets, err := a.tickets.List(ctx)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}
	a.view.SetTickets(tickets)
	return nil
}

// List browses the ticket collection. Without arguments it refetches and
// shows the first page. Subcommands adjust the view state:
//
//	list <n>              jump to page n
//	list search <text>    match ticket numbers containing text
//	list status <value>   toggle a prize status (pending/no/yes)
//	list type <tier>      toggle a prize tier (prize1, near1, ..., last2)
//	list reset            clear search and filters
//
// Changing the search or a filter moves the view back to the first page.
func (a *App) List(ctx context.Context, args []string) error {
	if len(args) == 0 {
		if err := a.refresh(ctx); err != nil {
			return err
		}
		a.renderPage()
		return nil
	}

	switch args[0] {
	case "search":
		a.view.SetSearch(strings.Join(args[1:], " "))
	case "status":
		if len(args) < 2 {
			printlnFn("Usage: list status <pending|no|yes>")
			return nil
		}
		a.view.ToggleStatus(models.PrizeResult(args[1]))
	case "type":
		if len(args) < 2 {
			printlnFn("Usage: list type <tier>")
			return nil
		}
		a.view.ToggleType(models.PrizeType(args[1]))
	case "reset":
		a.view.ResetFilters()
	default:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			printlnFn("Usage: list [page|search <text>|status <value>|type <tier>|reset]")
			return nil
		}
		a.view.SetPage(n)
	}

	a.renderPage()
	return nil
}

func (a *App) renderPage() {
	page := a.view.Page()
	if len(page) == 0 {
		printlnFn("No tickets match")
		return
	}
	for _, t := range page {
		printlnFn(renderTicket(t))
	}
	printlnFn(fmt.Sprintf("Page %d/%d  %s",
		a.view.PageNumber(), a.view.TotalPages(), renderPager(a.view.PageItems())))
}

func renderTicket(t models.Ticket) string {
	s := fmt.Sprintf("%s  %s  %s  x%d  %d THB  %s",
		t.ID, t.Date.Format(models.DrawDateLayout), t.TicketNumber,
		t.TicketQuantity, t.TotalCost(), t.PrizeResult.Label())
	if t.PrizeResult == models.PrizeResultYes {
		s += fmt.Sprintf("  %s +%d THB", t.PrizeType.Label(), t.PrizeAmount*t.TicketQuantity)
	}
	if t.TicketWinning != "" {
		s += fmt.Sprintf("  (draw %s, similarity %d%%)",
			t.TicketWinning, collection.Similarity(t.TicketNumber, t.TicketWinning))
	}
	return s
}

func renderPager(items []collection.PageItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if it.Ellipsis {
			parts = append(parts, "…")
		} else {
			parts = append(parts, strconv.Itoa(it.Page))
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ticketForm collects a TicketInput, seeding prompts with current values
// when editing.
func (a *App) ticketForm(current models.TicketInput) (models.TicketInput, error) {
	var in models.TicketInput
	var err error

	in.TicketNumber, err = getOptionalText(a.reader, "Ticket number (6 digits)", current.TicketNumber, a.out)
	if err != nil {
		return in, err
	}
	qty, err := getOptionalText(a.reader, "Quantity", strconv.Itoa(current.TicketQuantity), a.out)
	if err != nil {
		return in, err
	}
	in.TicketQuantity, _ = strconv.Atoi(qty)

	amount, err := getOptionalText(a.reader, "Price per ticket", strconv.Itoa(current.TicketAmount), a.out)
	if err != nil {
		return in, err
	}
	in.TicketAmount, _ = strconv.Atoi(amount)

	in.Date, err = getOptionalText(a.reader, "Purchase date (YYYY-MM-DD)", current.Date, a.out)
	if err != nil {
		return in, err
	}

	status, err := getOptionalText(a.reader, "Prize status (pending/no/yes)", string(current.PrizeResult), a.out)
	if err != nil {
		return in, err
	}
	in.PrizeResult = models.PrizeResult(status)

	if in.PrizeResult == models.PrizeResultYes {
		tier, err := getOptionalText(a.reader, "Prize tier (prize1, near1, prize2..prize5, first3, last3, last2)",
			string(current.PrizeType), a.out)
		if err != nil {
			return in, err
		}
		in.PrizeType = models.PrizeType(tier)

		amt, err := getOptionalText(a.reader, "Prize amount (0 = tier default)",
			strconv.Itoa(current.PrizeAmount), a.out)
		if err != nil {
			return in, err
		}
		in.PrizeAmount, _ = strconv.Atoi(amt)
	}

	if in.PrizeResult != models.PrizeResultPending {
		in.TicketWinning, err = getOptionalText(a.reader, "Winning number of the draw (optional, 6 digits)",
			current.TicketWinning, a.out)
		if err != nil {
			return in, err
		}
	}
	return in, nil
}

// Add collects a new ticket and submits it. The refreshed collection
// replaces the view cache.
func (a *App) Add(ctx context.Context) error {
	in, err := a.ticketForm(models.TicketInput{PrizeResult: models.PrizeResultPending})
	if err != nil {
		return err
	}
	tickets, err := a.tickets.Add(ctx, in)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}
	a.view.SetTickets(tickets)
	printlnFn("Ticket added")
	return nil
}

// Edit updates an existing ticket, prompting with its current values.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(a.view.Tickets()) == 0 {
		if err := a.refresh(ctx); err != nil {
			return err
		}
	}
	id, err := a.ticketID(args)
	if err != nil {
		return err
	}
	current, ok := a.findTicket(id)
	if !ok {
		printlnFn("No ticket with id", id)
		return nil
	}

	in, err := a.ticketForm(models.TicketInput{
		TicketNumber:   current.TicketNumber,
		TicketQuantity: current.TicketQuantity,
		TicketAmount:   current.TicketAmount,
		Date:           current.Date.Format(models.DrawDateLayout),
		PrizeResult:    current.PrizeResult,
		PrizeType:      current.PrizeType,
		PrizeAmount:    current.PrizeAmount,
		TicketWinning:  current.TicketWinning,
	})
	if err != nil {
		return err
	}

	tickets, err := a.tickets.Update(ctx, id, in)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}
	a.view.SetTickets(tickets)
	printlnFn("Ticket updated")
	return nil
}

// Delete removes a ticket after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(a.view.Tickets()) == 0 {
		if err := a.refresh(ctx); err != nil {
			return err
		}
	}
	id, err := a.ticketID(args)
	if err != nil {
		return err
	}
	if _, ok := a.findTicket(id); !ok {
		printlnFn("No ticket with id", id)
		return nil
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete ticket %s? (y/N)", id), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		printlnFn("Cancelled")
		return nil
	}

	tickets, err := a.tickets.Delete(ctx, id)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}
	a.view.SetTickets(tickets)
	printlnFn("Ticket deleted")
	return nil
}

func (a *App) ticketID(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, "Enter ticket id", a.out)
}

func (a *App) findTicket(id string) (models.Ticket, bool) {
	for _, t := range a.view.Tickets() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Ticket{}, false
}
