package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hannesw/tgeld/internal/billing"
	"github.com/hannesw/tgeld/internal/db"
	"github.com/hannesw/tgeld/internal/models"
	"github.com/hannesw/tgeld/internal/parser"
	"github.com/hannesw/tgeld/internal/report"
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#2E9E5B"))
	reportTotalStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#E8B931"))
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Cost statements per week, month, quarter or year",
}

var reportWeekCmd = &cobra.Command{
	Use:   "week [date]",
	Short: "Statement for the calendar week containing a date",
	Long: `Statement for the Monday..Sunday week containing the given date
(default: today).

Examples:
  tgeld report week
  tgeld report week 15/03/2026 --html week.html`,
	Args: cobra.MaximumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		dateArg := ""
		if len(args) == 1 {
			dateArg = args[0]
		}
		date, err := parser.ParseEntryDate(dateArg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		summary, err := store.WeeklyCostSummary(date)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		start, end := billing.WeekWindow(date)
		renderStatement(cmd, store, summary, start, end)
	}),
}

var reportMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "Statement for a calendar month",
	Long: `Statement for a calendar month (default: the current one).

Examples:
  tgeld report month
  tgeld report month --month 3 --year 2026 --csv march.csv
  tgeld report month --weeks`,
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		year, month, err := monthFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if byWeek, _ := cmd.Flags().GetBool("weeks"); byWeek {
			summaries, err := store.WeeklyCostSummariesForMonth(year, month)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Println(reportTitleStyle.Render(billing.MonthLabel(year, month) + " by week"))
			renderSummaryRows(summaries)
			return
		}

		summary, err := store.MonthlyCostSummary(year, month)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		start, end := billing.MonthWindow(year, month)
		renderStatement(cmd, store, summary, start, end)
	}),
}

var reportQuarterCmd = &cobra.Command{
	Use:   "quarter",
	Short: "Statement for a quarter",
	Long: `Statement for a quarter of the year (default: the current one).

Examples:
  tgeld report quarter
  tgeld report quarter --quarter 2 --year 2026 --json q2.json`,
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		now := time.Now()
		year, _ := cmd.Flags().GetInt("year")
		if year == 0 {
			year = now.Year()
		}
		quarter, _ := cmd.Flags().GetInt("quarter")
		if quarter == 0 {
			quarter = (int(now.Month())-1)/3 + 1
		}
		if quarter < 1 || quarter > 4 {
			fmt.Println("Error: quarter must be between 1 and 4")
			return
		}

		summary, err := store.QuarterlyCostSummary(year, quarter)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		start, end := billing.QuarterWindow(year, quarter)
		renderStatement(cmd, store, summary, start, end)
	}),
}

var reportYearCmd = &cobra.Command{
	Use:   "year [year]",
	Short: "Month-by-month totals for a year",
	Args:  cobra.MaximumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		year := time.Now().Year()
		if len(args) == 1 {
			y, err := strconv.Atoi(args[0])
			if err != nil || y < 2000 || y > 2100 {
				fmt.Printf("Error: invalid year '%s'\n", args[0])
				return
			}
			year = y
		}

		summaries, err := store.MonthlyCostSummaries(year)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(reportTitleStyle.Render(strconv.Itoa(year)))
		renderSummaryRows(summaries)
	}),
}

// monthFlags resolves --month/--year, defaulting to the current month.
func monthFlags(cmd *cobra.Command) (int, time.Month, error) {
	now := time.Now()
	year, _ := cmd.Flags().GetInt("year")
	if year == 0 {
		year = now.Year()
	}
	month, _ := cmd.Flags().GetInt("month")
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be between 1 and 12")
	}
	return year, time.Month(month), nil
}

// renderStatement prints a summary to the terminal and honors the export
// flags shared by the statement subcommands.
func renderStatement(cmd *cobra.Command, store *db.Store, summary *models.CostSummary, start, end time.Time) {
	fmt.Println(reportTitleStyle.Render(summary.Period))

	if summary.EntryCount == 0 {
		fmt.Println("No entries in this period.")
	} else {
		tw := table.NewWriter()
		tw.AppendHeader(table.Row{"Task", "Entries", "Cost"})
		for _, tc := range summary.TaskCosts {
			tw.AppendRow(table.Row{tc.TaskName, tc.Count, report.FormatMoney(tc.Cost, currency())})
		}
		fmt.Println(tw.Render())
	}
	fmt.Println(reportTotalStyle.Render(fmt.Sprintf("Total: %s (%d entries)",
		report.FormatMoney(summary.TotalCost, currency()), summary.EntryCount)))

	exportStatement(cmd, store, summary, start, end)
}

// exportStatement writes the statement to each file format requested via
// flags. Export failures are reported but do not abort the remaining formats.
func exportStatement(cmd *cobra.Command, store *db.Store, summary *models.CostSummary, start, end time.Time) {
	htmlPath, _ := cmd.Flags().GetString("html")
	csvPath, _ := cmd.Flags().GetString("csv")
	jsonPath, _ := cmd.Flags().GetString("json")
	if htmlPath == "" && csvPath == "" && jsonPath == "" {
		return
	}

	entries, err := store.ListTimeEntries(start, end)
	if err != nil {
		fmt.Printf("Error loading entries for export: %v\n", err)
		return
	}

	if htmlPath != "" {
		if err := report.SaveHTML(htmlPath, summary, entries, currency()); err != nil {
			fmt.Printf("Error writing %s: %v\n", htmlPath, err)
		} else {
			fmt.Printf("Wrote %s\n", htmlPath)
		}
	}
	if csvPath != "" {
		if err := report.SaveCSV(csvPath, entries); err != nil {
			fmt.Printf("Error writing %s: %v\n", csvPath, err)
		} else {
			fmt.Printf("Wrote %s\n", csvPath)
		}
	}
	if jsonPath != "" {
		if err := report.SaveJSON(jsonPath, summary, entries); err != nil {
			fmt.Printf("Error writing %s: %v\n", jsonPath, err)
		} else {
			fmt.Printf("Wrote %s\n", jsonPath)
		}
	}
}

// renderSummaryRows prints one table row per period summary.
func renderSummaryRows(summaries []*models.CostSummary) {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Period", "Entries", "Cost"})
	var total float64
	for _, s := range summaries {
		tw.AppendRow(table.Row{s.Period, s.EntryCount, report.FormatMoney(s.TotalCost, currency())})
		total += s.TotalCost
	}
	tw.AppendFooter(table.Row{"Total", "", report.FormatMoney(total, currency())})
	fmt.Println(tw.Render())
}

func addExportFlags(cmd *cobra.Command) {
	cmd.Flags().String("html", "", "Write the statement to an HTML file")
	cmd.Flags().String("csv", "", "Write the entries to a CSV file")
	cmd.Flags().String("json", "", "Write the statement to a JSON file")
}

func init() {
	addExportFlags(reportWeekCmd)
	addExportFlags(reportMonthCmd)
	addExportFlags(reportQuarterCmd)

	reportMonthCmd.Flags().Int("month", 0, "Month 1-12 (default: current)")
	reportMonthCmd.Flags().Int("year", 0, "Year (default: current)")
	reportMonthCmd.Flags().Bool("weeks", false, "Break the month down into weekly totals")

	reportQuarterCmd.Flags().Int("quarter", 0, "Quarter 1-4 (default: current)")
	reportQuarterCmd.Flags().Int("year", 0, "Year (default: current)")

	reportCmd.AddCommand(reportWeekCmd)
	reportCmd.AddCommand(reportMonthCmd)
	reportCmd.AddCommand(reportQuarterCmd)
	reportCmd.AddCommand(reportYearCmd)
}
