package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hannesw/tgeld/internal/models"
)

// WriteCSV exports entries with their resolved task names, ascending by
// (entry date, start time). Unresolved tasks render as Unknown.
func WriteCSV(w io.Writer, entries []models.TimeEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"ID", "Date", "Time", "Task", "Amount", "Price", "Notes"}); err != nil {
		return err
	}

	for _, e := range sortEntries(entries) {
		row := []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.EntryDate.Format("2006-01-02"),
			e.DisplayTime(),
			e.TaskName(),
			e.DisplayAmount(),
			strconv.FormatFloat(e.TotalPrice, 'f', 2, 64),
			e.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the entry export to path.
func SaveCSV(path string, entries []models.TimeEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	return WriteCSV(f, entries)
}
