package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"sort"
	"time"

	"github.com/hannesw/tgeld/internal/models"
)

// The statement is plain self-contained HTML so it opens everywhere and can
// be printed to PDF from any browser.
const statementTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Allowance Statement - {{.Period}}</title>
<style>
* { box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; padding: 20px; max-width: 800px; margin: 0 auto; background: #f5f5f5; }
.container { background: white; padding: 30px; border-radius: 12px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
h1 { color: #2E9E5B; border-bottom: 3px solid #2E9E5B; padding-bottom: 15px; margin-bottom: 20px; font-size: 28px; }
h2 { color: #333; margin-top: 30px; font-size: 20px; }
.summary { background: linear-gradient(135deg, #2E9E5B, #1F6B3E); padding: 25px; border-radius: 12px; margin: 25px 0; color: white; }
.summary-row { display: flex; justify-content: space-between; padding: 8px 0; align-items: center; }
.total { font-size: 32px; font-weight: bold; }
.total-label { font-size: 18px; }
table { width: 100%; border-collapse: collapse; margin-top: 15px; }
th, td { padding: 12px 10px; text-align: left; border-bottom: 1px solid #e0e0e0; }
th { background: #2E9E5B; color: white; font-weight: 600; }
tr:nth-child(even) { background: #f9f9f9; }
.amount { text-align: center; }
.price { text-align: right; font-weight: bold; color: #1F6B3E; }
.footer { margin-top: 40px; padding-top: 20px; border-top: 2px solid #e0e0e0; color: #666; font-size: 12px; text-align: center; }
@media print { body { background: white; } .container { box-shadow: none; } }
</style>
</head>
<body>
<div class="container">
<h1>Allowance Statement</h1>
<p style="font-size: 18px; color: #666;">Period: <strong>{{.Period}}</strong></p>

<div class="summary">
<div class="summary-row"><span class="total-label">Total earned:</span><span class="total">{{.Total}}</span></div>
<div class="summary-row"><span>Entries:</span><span style="font-size: 20px;">{{.EntryCount}}</span></div>
</div>

{{if .TaskCosts}}
<h2>Per task</h2>
<table>
<tr><th>Task</th><th class="amount">Entries</th><th style="text-align:right;">Earned</th></tr>
{{range .TaskCosts}}<tr><td>{{.Name}}</td><td class="amount">{{.Count}}x</td><td class="price">{{.Cost}}</td></tr>
{{end}}</table>
{{end}}

{{if .Entries}}
<h2>Entries</h2>
<table>
<tr><th>Date</th><th>Time</th><th>Task</th><th>Amount</th><th style="text-align:right;">Price</th></tr>
{{range .Entries}}<tr><td>{{.Date}}</td><td>{{.Time}}</td><td>{{.Task}}</td><td>{{.Amount}}</td><td class="price">{{.Price}}</td></tr>
{{end}}</table>
{{end}}

<div class="footer">
<p>Generated: {{.Generated}}</p>
<p>Created with <strong>tgeld</strong></p>
</div>
</div>
</body>
</html>
`

var statementTmpl = template.Must(template.New("statement").Parse(statementTemplate))

type statementData struct {
	Period     string
	Total      string
	EntryCount int
	TaskCosts  []statementTaskCost
	Entries    []statementEntry
	Generated  string
}

type statementTaskCost struct {
	Name  string
	Count int
	Cost  string
}

type statementEntry struct {
	Date   string
	Time   string
	Task   string
	Amount string
	Price  string
}

// FormatMoney renders a price with the configured currency suffix.
func FormatMoney(v float64, currency string) string {
	return fmt.Sprintf("%.2f %s", v, currency)
}

// sortEntries orders entries ascending by (entry date, start time), the order
// statements render in. The input slice is left untouched.
func sortEntries(entries []models.TimeEntry) []models.TimeEntry {
	sorted := make([]models.TimeEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].EntryDate, sorted[j].EntryDate
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return sorted[i].StartClock() < sorted[j].StartClock()
	})
	return sorted
}

// WriteHTML renders a printable statement for the summary and its entries.
func WriteHTML(w io.Writer, summary *models.CostSummary, entries []models.TimeEntry, currency string) error {
	data := statementData{
		Period:     summary.Period,
		Total:      FormatMoney(summary.TotalCost, currency),
		EntryCount: summary.EntryCount,
		Generated:  time.Now().Format("02 Jan 2006 15:04"),
	}
	for _, tc := range summary.TaskCosts {
		data.TaskCosts = append(data.TaskCosts, statementTaskCost{
			Name:  tc.TaskName,
			Count: tc.Count,
			Cost:  FormatMoney(tc.Cost, currency),
		})
	}
	for _, e := range sortEntries(entries) {
		data.Entries = append(data.Entries, statementEntry{
			Date:   e.EntryDate.Format("02 Jan 2006"),
			Time:   e.DisplayTime(),
			Task:   e.TaskName(),
			Amount: e.DisplayAmount(),
			Price:  FormatMoney(e.TotalPrice, currency),
		})
	}
	return statementTmpl.Execute(w, data)
}

// SaveHTML writes the statement to path.
func SaveHTML(path string, summary *models.CostSummary, entries []models.TimeEntry, currency string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create html file: %w", err)
	}
	defer f.Close()

	return WriteHTML(f, summary, entries, currency)
}
