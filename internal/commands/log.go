package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hannesw/tgeld/internal/db"
	"github.com/hannesw/tgeld/internal/models"
	"github.com/hannesw/tgeld/internal/parser"
	"github.com/hannesw/tgeld/internal/report"
	"github.com/hannesw/tgeld/internal/tui"
)

var logCmd = &cobra.Command{
	Use:   "log [task-id]",
	Short: "Log work against a task",
	Long: `Log a time or count entry against a task.

With no arguments an interactive wizard opens. Quick mode:
  tgeld log 1 --hours 2.5 --date 15/03/2026 --at 16:30
  tgeld log 2 --count 3 --note "emptied both bins"

Dates accept dd/mm/yyyy, today, yesterday, or 'X days ago'.`,
	Args: cobra.MaximumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		if len(args) == 0 {
			if err := tui.RunLogEntryTUI(store); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		task, err := store.GetTask(uint(taskID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if task == nil {
			fmt.Printf("Task #%d not found.\n", taskID)
			return
		}
		if !task.IsActive {
			fmt.Printf("Task #%d (%s) is retired; pick an active task with 'tgeld task ls'.\n", task.ID, task.Name)
			return
		}

		hours, _ := cmd.Flags().GetFloat64("hours")
		count, _ := cmd.Flags().GetInt("count")
		if hours < 0 || count < 0 {
			fmt.Println("Error: hours and count must not be negative")
			return
		}
		if task.BillingType == models.PerHour && hours == 0 {
			fmt.Printf("Task %q bills per hour; pass --hours.\n", task.Name)
			return
		}
		if task.BillingType == models.PerCount && count == 0 {
			fmt.Printf("Task %q bills per count; pass --count.\n", task.Name)
			return
		}

		dateFlag, _ := cmd.Flags().GetString("date")
		entryDate, err := parser.ParseEntryDate(dateFlag)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		entry := &models.TimeEntry{
			TaskID:        task.ID,
			EntryDate:     entryDate,
			DurationHours: hours,
			Count:         count,
		}
		if at, _ := cmd.Flags().GetString("at"); at != "" {
			clock, err := parser.ParseClock(at)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			entry.SetStartClock(clock)
		}
		entry.Notes, _ = cmd.Flags().GetString("note")

		id, err := store.SaveTimeEntry(entry)
		if err != nil {
			fmt.Printf("Error saving entry: %v\n", err)
			return
		}

		fmt.Printf("Logged entry #%d: %s on %s — %s (%s)\n",
			id, task.Name, entry.EntryDate.Format("02 Jan 2006"),
			entry.DisplayAmount(), report.FormatMoney(entry.TotalPrice, currency()))
	}),
}

func init() {
	logCmd.Flags().Float64("hours", 0, "Hours worked (per-hour tasks)")
	logCmd.Flags().Int("count", 0, "Times completed (per-count tasks)")
	logCmd.Flags().String("date", "", "Entry date: dd/mm/yyyy, today, yesterday, 'X days ago'")
	logCmd.Flags().String("at", "", "Start time as HH:MM (defaults to 12:00)")
	logCmd.Flags().String("note", "", "Additional notes")
}
