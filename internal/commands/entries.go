package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hannesw/tgeld/internal/db"
	"github.com/hannesw/tgeld/internal/models"
	"github.com/hannesw/tgeld/internal/parser"
	"github.com/hannesw/tgeld/internal/report"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List and delete logged entries",
	Long: `List logged entries, optionally restricted to a date range or a task.

Examples:
  tgeld entries
  tgeld entries --from 01/03/2026 --to 31/03/2026
  tgeld entries --task 2`,
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		var (
			entries []models.TimeEntry
			err     error
		)

		fromFlag, _ := cmd.Flags().GetString("from")
		toFlag, _ := cmd.Flags().GetString("to")
		taskFlag, _ := cmd.Flags().GetUint("task")

		switch {
		case taskFlag != 0:
			entries, err = store.ListTimeEntriesByTask(taskFlag)
		case fromFlag != "" || toFlag != "":
			var from, to time.Time
			if fromFlag != "" {
				if from, err = parser.ParseEntryDate(fromFlag); err != nil {
					fmt.Printf("Error: --from: %v\n", err)
					return
				}
			}
			if toFlag == "" {
				to = time.Now()
			} else if to, err = parser.ParseEntryDate(toFlag); err != nil {
				fmt.Printf("Error: --to: %v\n", err)
				return
			}
			to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, to.Location())
			entries, err = store.ListTimeEntries(from, to)
		default:
			entries, err = store.ListAllTimeEntries()
		}
		if err != nil {
			fmt.Printf("Error fetching entries: %v\n", err)
			return
		}
		if len(entries) == 0 {
			fmt.Println("No entries found. Use 'tgeld log' to record one.")
			return
		}

		tw := table.NewWriter()
		tw.AppendHeader(table.Row{"ID", "Date", "Time", "Task", "Amount", "Price", "Notes"})
		var total float64
		for _, e := range entries {
			tw.AppendRow(table.Row{
				e.ID,
				e.EntryDate.Format("02 Jan 2006"),
				e.DisplayTime(),
				e.TaskName(),
				e.DisplayAmount(),
				report.FormatMoney(e.TotalPrice, currency()),
				e.Notes,
			})
			total += e.TotalPrice
		}
		tw.AppendFooter(table.Row{"", "", "", "", "Total", report.FormatMoney(total, currency()), ""})
		fmt.Println(tw.Render())
	}),
}

var entriesRmCmd = &cobra.Command{
	Use:   "rm <entry-id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		entryID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid entry ID '%s'\n", args[0])
			return
		}

		if force, _ := cmd.Flags().GetBool("force"); !force {
			fmt.Printf("Delete entry #%d? This cannot be undone. [y/N] ", entryID)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Println("Aborted.")
				return
			}
		}

		rows, err := store.DeleteTimeEntry(uint(entryID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if rows == 0 {
			fmt.Printf("Entry #%d not found, nothing to do.\n", entryID)
			return
		}
		fmt.Printf("Deleted entry #%d.\n", entryID)
	}),
}

func init() {
	entriesCmd.Flags().String("from", "", "Start date (dd/mm/yyyy, today, yesterday, 'X days ago')")
	entriesCmd.Flags().String("to", "", "End date, inclusive (defaults to today)")
	entriesCmd.Flags().Uint("task", 0, "Only entries for this task ID")

	entriesRmCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")

	entriesCmd.AddCommand(entriesRmCmd)
}
