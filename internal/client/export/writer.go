package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lotterich/cli/internal/client/collection"
	"github.com/lotterich/cli/internal/client/models"
	"github.com/lotterich/cli/internal/client/stats"
	"github.com/lotterich/cli/internal/filex"
)

var timeNow = time.Now

// Writer lands export files in one directory, stamping each file name
// with the moment it was written.
type Writer struct {
	dir string
}

// NewWriter creates the export directory if needed. dirName is taken
// relative to the working directory.
func NewWriter(dirName string) (*Writer, error) {
	dir, err := filex.EnsureSubDir(dirName)
	if err != nil {
		return nil, err
	}
	return &Writer{dir: dir}, nil
}

func (w *Writer) path(kind, ext string) string {
	stamp := timeNow().Format("20060102-150405")
	return filepath.Join(w.dir, fmt.Sprintf("lottery-%s-%s.%s", kind, stamp, ext))
}

func (w *Writer) writeFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// CSV writes the collection as a CSV file and returns its path.
func (w *Writer) CSV(rows []collection.ExportRow) (string, error) {
	path := w.path("collection", "csv")
	err := w.writeFile(path, func(f *os.File) error {
		return WriteCSV(f, rows)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// PDF writes the collection as a PDF file and returns its path.
func (w *Writer) PDF(rows []collection.ExportRow) (string, error) {
	path := w.path("collection", "pdf")
	err := w.writeFile(path, func(f *os.File) error {
		return WritePDF(f, rows)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// Charts renders every chart that has data and returns the written
// paths. Charts without data are skipped silently; any other render
// failure aborts.
func (w *Writer) Charts(tickets []models.Ticket, draws []models.Draw, now time.Time) ([]string, error) {
	summary := collection.Summarize(tickets)

	renders := []struct {
		kind   string
		render func(*os.File) error
	}{
		{"weekly", func(f *os.File) error {
			return WriteWeeklySpendingChart(f, collection.WeeklySpending(tickets, now))
		}},
		{"monthly", func(f *os.File) error {
			return WriteMonthlySpendingChart(f, collection.MonthlySpending(tickets, now, 6))
		}},
		{"winrate", func(f *os.File) error {
			return WriteWinRateChart(f, summary)
		}},
		{"profit", func(f *os.File) error {
			return WriteProfitChart(f, summary)
		}},
		{"endings", func(f *os.File) error {
			return WriteTopEndingsChart(f, stats.TopEndingDigits(draws, 5))
		}},
	}

	var paths []string
	for _, r := range renders {
		path := w.path(r.kind, "png")
		err := w.writeFile(path, r.render)
		if errors.Is(err, ErrNoChartData) {
			continue
		}
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
