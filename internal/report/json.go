package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hannesw/tgeld/internal/models"
)

// Statement bundles a summary with the entries it was built from, for
// machine-readable export.
type Statement struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Summary     *models.CostSummary `json:"summary"`
	Entries     []models.TimeEntry  `json:"entries"`
}

// WriteJSON exports the summary and its entries as an indented document.
func WriteJSON(w io.Writer, summary *models.CostSummary, entries []models.TimeEntry) error {
	statement := Statement{
		GeneratedAt: time.Now(),
		Summary:     summary,
		Entries:     sortEntries(entries),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(statement)
}

// SaveJSON writes the JSON export to path.
func SaveJSON(path string, summary *models.CostSummary, entries []models.TimeEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json file: %w", err)
	}
	defer f.Close()

	return WriteJSON(f, summary, entries)
}
