// Package billing holds the pure pricing and aggregation rules. Nothing here
// touches the database; the store hands in already-resolved entries.
package billing

import (
	"github.com/hannesw/tgeld/internal/models"
)

// ComputePrice derives an entry's price from its resolved task: hours times
// the task price for per-hour tasks, completions times the price for per-count
// tasks. A nil task yields zero; the caller buckets such entries under the
// unknown label instead of treating this as an error.
func ComputePrice(task *models.Task, durationHours float64, count int) float64 {
	if task == nil {
		return 0
	}
	if task.BillingType == models.PerCount {
		return float64(count) * task.Price
	}
	return durationHours * task.Price
}

// BuildSummary aggregates entries into a cost summary labelled with period.
// Entries group by the resolved task's display name in first-seen order;
// unresolved entries fall into the Unknown bucket but still contribute their
// stored price to the total. Two tasks sharing a name merge into one bucket.
func BuildSummary(period string, entries []models.TimeEntry) *models.CostSummary {
	summary := &models.CostSummary{
		Period:     period,
		EntryCount: len(entries),
	}

	index := make(map[string]int)
	for _, e := range entries {
		summary.TotalCost += e.TotalPrice

		name := e.TaskName()
		i, ok := index[name]
		if !ok {
			i = len(summary.TaskCosts)
			index[name] = i
			summary.TaskCosts = append(summary.TaskCosts, models.TaskCostSummary{TaskName: name})
		}
		summary.TaskCosts[i].Cost += e.TotalPrice
		summary.TaskCosts[i].Count++
	}

	return summary
}
