package billing

import (
	"testing"

	"github.com/hannesw/tgeld/internal/models"
)

func TestComputePricePerHour(t *testing.T) {
	dishes := &models.Task{ID: 1, Name: "Dishes", Price: 5.0, BillingType: models.PerHour}

	if got := ComputePrice(dishes, 2.0, 0); got != 10.0 {
		t.Fatalf("ComputePrice = %v, want 10.0", got)
	}
	// Count must not influence per-hour pricing.
	if got := ComputePrice(dishes, 2.0, 99); got != 10.0 {
		t.Fatalf("ComputePrice with count = %v, want 10.0", got)
	}
}

func TestComputePricePerCount(t *testing.T) {
	trash := &models.Task{ID: 2, Name: "Trash", Price: 2.0, BillingType: models.PerCount}

	if got := ComputePrice(trash, 0, 3); got != 6.0 {
		t.Fatalf("ComputePrice = %v, want 6.0", got)
	}
	// Duration must not influence per-count pricing.
	if got := ComputePrice(trash, 99.5, 3); got != 6.0 {
		t.Fatalf("ComputePrice with duration = %v, want 6.0", got)
	}
}

func TestComputePriceNilTask(t *testing.T) {
	if got := ComputePrice(nil, 2.0, 3); got != 0 {
		t.Fatalf("ComputePrice(nil) = %v, want 0", got)
	}
}

func TestComputePriceDeterministic(t *testing.T) {
	task := &models.Task{Name: "Vacuum", Price: 3.25, BillingType: models.PerHour}
	first := ComputePrice(task, 1.75, 0)
	for i := 0; i < 100; i++ {
		if got := ComputePrice(task, 1.75, 0); got != first {
			t.Fatalf("call %d returned %v, first returned %v", i, got, first)
		}
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	s := BuildSummary("March 2026", nil)
	if s.Period != "March 2026" {
		t.Errorf("Period = %q", s.Period)
	}
	if s.TotalCost != 0 || s.EntryCount != 0 || len(s.TaskCosts) != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestBuildSummaryGroupsByName(t *testing.T) {
	dishes := &models.Task{ID: 1, Name: "Dishes"}
	trash := &models.Task{ID: 2, Name: "Trash"}
	entries := []models.TimeEntry{
		{Task: dishes, TotalPrice: 10.0},
		{Task: dishes, TotalPrice: 5.0},
		{Task: trash, TotalPrice: 6.0},
	}

	s := BuildSummary("test", entries)

	if s.TotalCost != 21.0 {
		t.Errorf("TotalCost = %v, want 21.0", s.TotalCost)
	}
	if s.EntryCount != 3 {
		t.Errorf("EntryCount = %d, want 3", s.EntryCount)
	}
	want := []models.TaskCostSummary{
		{TaskName: "Dishes", Cost: 15.0, Count: 2},
		{TaskName: "Trash", Cost: 6.0, Count: 1},
	}
	if len(s.TaskCosts) != len(want) {
		t.Fatalf("TaskCosts = %+v", s.TaskCosts)
	}
	for i := range want {
		if s.TaskCosts[i] != want[i] {
			t.Errorf("TaskCosts[%d] = %+v, want %+v", i, s.TaskCosts[i], want[i])
		}
	}
}

func TestBuildSummaryUnknownBucket(t *testing.T) {
	entries := []models.TimeEntry{
		{Task: &models.Task{Name: "Dishes"}, TotalPrice: 10.0},
		{Task: nil, TotalPrice: 4.0}, // dangling reference
	}

	s := BuildSummary("test", entries)

	if s.TotalCost != 14.0 {
		t.Errorf("TotalCost = %v, want 14.0", s.TotalCost)
	}
	if len(s.TaskCosts) != 2 {
		t.Fatalf("TaskCosts = %+v", s.TaskCosts)
	}
	unknown := s.TaskCosts[1]
	if unknown.TaskName != models.UnknownTaskName || unknown.Cost != 4.0 || unknown.Count != 1 {
		t.Errorf("unknown bucket = %+v", unknown)
	}
}

// Bucket costs and counts must add up to the summary totals for any input.
func TestBuildSummaryBucketInvariants(t *testing.T) {
	dishes := &models.Task{Name: "Dishes"}
	trash := &models.Task{Name: "Trash"}
	entries := []models.TimeEntry{
		{Task: dishes, TotalPrice: 1.5},
		{Task: trash, TotalPrice: 2.25},
		{Task: nil, TotalPrice: 0.75},
		{Task: dishes, TotalPrice: 0},
		{Task: trash, TotalPrice: 10},
		{Task: nil, TotalPrice: 3},
	}

	s := BuildSummary("test", entries)

	var cost float64
	var count int
	for _, tc := range s.TaskCosts {
		cost += tc.Cost
		count += tc.Count
	}
	if cost != s.TotalCost {
		t.Errorf("bucket cost sum %v != TotalCost %v", cost, s.TotalCost)
	}
	if count != s.EntryCount {
		t.Errorf("bucket count sum %d != EntryCount %d", count, s.EntryCount)
	}
}

// Two distinct tasks sharing a display name merge into one bucket. Accepted
// behavior: grouping is by name, not by id.
func TestBuildSummarySameNameMerges(t *testing.T) {
	a := &models.Task{ID: 1, Name: "Dishes"}
	b := &models.Task{ID: 7, Name: "Dishes"}
	entries := []models.TimeEntry{
		{Task: a, TotalPrice: 5},
		{Task: b, TotalPrice: 3},
	}

	s := BuildSummary("test", entries)
	if len(s.TaskCosts) != 1 {
		t.Fatalf("TaskCosts = %+v, want single merged bucket", s.TaskCosts)
	}
	if s.TaskCosts[0].Cost != 8 || s.TaskCosts[0].Count != 2 {
		t.Errorf("merged bucket = %+v", s.TaskCosts[0])
	}
}
