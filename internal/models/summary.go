package models

// CostSummary aggregates the entries of one period window. It is computed
// fresh for every query and never persisted.
type CostSummary struct {
	Period     string            `json:"period"`
	TotalCost  float64           `json:"total_cost"`
	EntryCount int               `json:"entry_count"`
	TaskCosts  []TaskCostSummary `json:"task_costs"`
}

// TaskCostSummary is one per-task bucket inside a CostSummary. Buckets are
// keyed by display name and kept in first-seen order.
type TaskCostSummary struct {
	TaskName string  `json:"task_name"`
	Cost     float64 `json:"cost"`
	Count    int     `json:"count"`
}
