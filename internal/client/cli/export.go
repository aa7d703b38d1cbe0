package cli

import (
	"context"
	"time"

	"github.com/lotterich/cli/internal/client/collection"
	"github.com/lotterich/cli/internal/client/export"
)

// Export writes the currently filtered collection to a file:
//
//	export csv      Thai-language spreadsheet
//	export pdf      printable table
//	export charts   spending/win-rate chart images
//
// Export rows are ordered oldest purchase first regardless of the
// on-screen order.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: export csv|pdf|charts")
		return nil
	}
	if len(a.view.Tickets()) == 0 {
		if err := a.refresh(ctx); err != nil {
			return err
		}
	}

	w, err := export.NewWriter(a.config.ExportDir)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}

	rows := collection.ExportRows(a.view.Filtered())

	switch args[0] {
	case "csv":
		path, err := w.CSV(rows)
		if err != nil {
			a.reportErr(ctx, err)
			return err
		}
		printlnFn("Written", path)

	case "pdf":
		path, err := w.PDF(rows)
		if err != nil {
			a.reportErr(ctx, err)
			return err
		}
		printlnFn("Written", path)

	case "charts":
		draws, err := a.draws.List(ctx)
		if err != nil {
			a.reportErr(ctx, err)
			return err
		}
		paths, err := w.Charts(a.view.Tickets(), draws, time.Now())
		if err != nil {
			a.reportErr(ctx, err)
			return err
		}
		if len(paths) == 0 {
			printlnFn("Nothing to chart yet")
			return nil
		}
		for _, p := range paths {
			printlnFn("Written", p)
		}

	default:
		printlnFn("Usage: export csv|pdf|charts")
	}
	return nil
}
