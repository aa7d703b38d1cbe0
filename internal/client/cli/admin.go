package cli

import (
	"context"

	"github.com/lotterich/cli/internal/client/models"
)

// Draws lists the draw history for administration.
func (a *App) Draws(ctx context.Context) error {
	draws, err := a.draws.AdminList(ctx)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}
	if len(draws) == 0 {
		printlnFn("No draw published yet")
		return nil
	}
	for _, d := range draws {
		printlnFn(d.ID + "  " + renderDraw(d))
	}
	return nil
}

// drawForm collects a draw record, seeding prompts with current values
// when editing.
func (a *App) drawForm(current models.Draw) (models.Draw, error) {
	var d models.Draw
	var err error

	d.Date, err = getOptionalText(a.reader, "Draw date (YYYY-MM-DD)", current.Date, a.out)
	if err != nil {
		return d, err
	}
	d.Prize1, err = getOptionalText(a.reader, "First prize (6 digits)", current.Prize1, a.out)
	if err != nil {
		return d, err
	}
	d.First3One, err = getOptionalText(a.reader, "Front three, first (3 digits)", current.First3One, a.out)
	if err != nil {
		return d, err
	}
	d.First3Two, err = getOptionalText(a.reader, "Front three, second (3 digits)", current.First3Two, a.out)
	if err != nil {
		return d, err
	}
	d.Last3One, err = getOptionalText(a.reader, "Back three, first (3 digits)", current.Last3One, a.out)
	if err != nil {
		return d, err
	}
	d.Last3Two, err = getOptionalText(a.reader, "Back three, second (3 digits)", current.Last3Two, a.out)
	if err != nil {
		return d, err
	}
	d.Last2, err = getOptionalText(a.reader, "Back two (2 digits)", current.Last2, a.out)
	if err != nil {
		return d, err
	}
	return d, nil
}

// AddDraw publishes a new draw result.
func (a *App) AddDraw(ctx context.Context) error {
	d, err := a.drawForm(models.Draw{})
	if err != nil {
		return err
	}
	if _, err := a.draws.AdminAdd(ctx, d); err != nil {
		a.reportErr(ctx, err)
		return err
	}
	printlnFn("Draw published")
	return nil
}

// EditDraw updates a published draw result.
func (a *App) EditDraw(ctx context.Context, args []string) error {
	id, err := a.drawID(args)
	if err != nil {
		return err
	}
	draws, err := a.draws.AdminList(ctx)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}
	var current models.Draw
	found := false
	for _, d := range draws {
		if d.ID == id {
			current = d
			found = true
			break
		}
	}
	if !found {
		printlnFn("No draw with id", id)
		return nil
	}

	d, err := a.drawForm(current)
	if err != nil {
		return err
	}
	if _, err := a.draws.AdminUpdate(ctx, id, d); err != nil {
		a.reportErr(ctx, err)
		return err
	}
	printlnFn("Draw updated")
	return nil
}

// DelDraw removes a published draw result.
func (a *App) DelDraw(ctx context.Context, args []string) error {
	id, err := a.drawID(args)
	if err != nil {
		return err
	}
	if _, err := a.draws.AdminDelete(ctx, id); err != nil {
		a.reportErr(ctx, err)
		return err
	}
	printlnFn("Draw deleted")
	return nil
}

func (a *App) drawID(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, "Enter draw id", a.out)
}
