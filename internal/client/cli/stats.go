package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lotterich/cli/internal/client/collection"
	"github.com/lotterich/cli/internal/client/models"
	"github.com/lotterich/cli/internal/client/stats"
)

// Overview shows the collection rollup: totals, win rate and the
// spending breakdown for the current month.
func (a *App) Overview(ctx context.Context) error {
	if err := a.refresh(ctx); err != nil {
		return err
	}
	tickets := a.view.Tickets()
	s := collection.Summarize(tickets)

	printlnFn(fmt.Sprintf("Tickets bought:  %d", s.TotalTickets))
	printlnFn(fmt.Sprintf("Total spent:     %d THB", s.TotalSpent))
	printlnFn(fmt.Sprintf("Total prizes:    %d THB", s.TotalPrize))
	printlnFn(fmt.Sprintf("Net:             %+d THB", s.Net))
	printlnFn(fmt.Sprintf("Win rate:        %.1f%% won / %.1f%% lost", s.WinPercent, s.LosePercent))
	printlnFn(fmt.Sprintf("Last win:        %s", s.LastWinningNumber))

	now := time.Now()
	weeks := collection.WeeklySpending(tickets, now)
	printlnFn(fmt.Sprintf("This month:      w1 %d  w2 %d  w3 %d  w4 %d THB",
		weeks[0], weeks[1], weeks[2], weeks[3]))

	months := collection.MonthlySpending(tickets, now, 6)
	parts := make([]string, 0, len(months))
	for _, m := range months {
		parts = append(parts, fmt.Sprintf("%s %d", m.Label, m.Amount))
	}
	printlnFn("Last 6 months:   " + strings.Join(parts, "  "))
	return nil
}

func renderDraw(d models.Draw) string {
	return fmt.Sprintf("%s  1st %s  front3 %s %s  back3 %s %s  back2 %s",
		d.Date, d.Prize1, d.First3One, d.First3Two, d.Last3One, d.Last3Two, d.Last2)
}

// Stats shows the latest published draw and the draw history.
func (a *App) Stats(ctx context.Context) error {
	latest, ok, err := a.draws.Latest(ctx)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}
	if !ok {
		printlnFn("No draw published yet")
		return nil
	}
	printlnFn("Latest draw: " + renderDraw(latest))

	draws, err := a.draws.List(ctx)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}
	if len(draws) > 1 {
		printlnFn("History:")
		for _, d := range draws[1:] {
			printlnFn("  " + renderDraw(d))
		}
	}
	return nil
}

// Check looks a number up against the whole draw history.
func (a *App) Check(ctx context.Context, args []string) error {
	var query string
	var err error
	if len(args) > 0 {
		query = args[0]
	} else {
		query, err = getSimpleText(a.reader, "Enter 2 to 6 digits", a.out)
		if err != nil {
			return err
		}
	}

	draws, err := a.draws.List(ctx)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}

	res, err := stats.FindMatches(query, draws)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}
	if res.Total == 0 {
		printlnFn(fmt.Sprintf("%s never won", res.Query))
		return nil
	}
	printlnFn(fmt.Sprintf("%s won %d time(s):", res.Query, res.Total))
	for _, m := range res.Matches {
		printlnFn(fmt.Sprintf("  %s  %s  %s", m.Date, m.Tier.Label(), m.Value))
	}
	return nil
}

// Top shows the most frequently drawn two-digit endings.
func (a *App) Top(ctx context.Context) error {
	draws, err := a.draws.List(ctx)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}
	top := stats.TopEndingDigits(draws, 5)
	if len(top) == 0 {
		printlnFn("No draw published yet")
		return nil
	}
	for i, e := range top {
		printlnFn(fmt.Sprintf("%d. %s  drawn %d time(s), last %s",
			i+1, e.Digits, e.Count, e.LastSeen.Format(models.DrawDateLayout)))
	}
	return nil
}
