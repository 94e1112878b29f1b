package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hannesw/tgeld/internal/config"
	"github.com/hannesw/tgeld/internal/db"
)

// RunLogEntryTUI starts the interactive log entry wizard
func RunLogEntryTUI(store *db.Store) error {
	currency := "€"
	if cfg, err := config.Load(); err == nil {
		currency = cfg.Currency
	}

	model, err := NewLogEntryModel(store, currency)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(LogEntryModel); ok {
		if m.cancelled {
			fmt.Println("❌ Entry cancelled.")
		} else if m.completed {
			fmt.Printf("✅ Logged entry #%d for \"%s\" - earns %.2f %s\n",
				m.savedEntryID, m.selectedTask().Name, m.savedPrice, m.currency)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
