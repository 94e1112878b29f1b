package db

import (
	"testing"
	"time"

	"github.com/hannesw/tgeld/internal/models"
)

func TestWeeklyCostSummary(t *testing.T) {
	s := newTestStore(t)
	dishes := createTask(t, s, "Dishes", 5.0, models.PerHour)
	trash := createTask(t, s, "Trash", 2.0, models.PerCount)

	// Week of Mon 2 Feb .. Sun 8 Feb 2026.
	logEntry(t, s, dishes.ID, day(2026, time.February, 2), 2.0, 0) // 10.00
	logEntry(t, s, dishes.ID, day(2026, time.February, 5), 1.0, 0) // 5.00
	logEntry(t, s, trash.ID, day(2026, time.February, 8), 0, 3)    // 6.00
	logEntry(t, s, dishes.ID, day(2026, time.February, 9), 4.0, 0) // next week

	summary, err := s.WeeklyCostSummary(day(2026, time.February, 4))
	if err != nil {
		t.Fatal(err)
	}
	if summary.Period != "Week of 02 Feb 2026" {
		t.Errorf("Period = %q", summary.Period)
	}
	if summary.EntryCount != 3 {
		t.Errorf("EntryCount = %d, want 3", summary.EntryCount)
	}
	if summary.TotalCost != 21.0 {
		t.Errorf("TotalCost = %v, want 21.0", summary.TotalCost)
	}
	if len(summary.TaskCosts) != 2 {
		t.Fatalf("TaskCosts = %+v", summary.TaskCosts)
	}
	if summary.TaskCosts[0].TaskName != "Dishes" || summary.TaskCosts[0].Cost != 15.0 || summary.TaskCosts[0].Count != 2 {
		t.Errorf("Dishes bucket = %+v", summary.TaskCosts[0])
	}
	if summary.TaskCosts[1].TaskName != "Trash" || summary.TaskCosts[1].Cost != 6.0 || summary.TaskCosts[1].Count != 1 {
		t.Errorf("Trash bucket = %+v", summary.TaskCosts[1])
	}
}

func TestMonthlyCostSummary(t *testing.T) {
	s := newTestStore(t)
	dishes := createTask(t, s, "Dishes", 5.0, models.PerHour)

	logEntry(t, s, dishes.ID, day(2026, time.March, 1), 1.0, 0)
	logEntry(t, s, dishes.ID, day(2026, time.March, 31), 2.0, 0) // last day stays in range
	logEntry(t, s, dishes.ID, day(2026, time.April, 1), 4.0, 0)

	summary, err := s.MonthlyCostSummary(2026, time.March)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Period != "March 2026" {
		t.Errorf("Period = %q", summary.Period)
	}
	if summary.EntryCount != 2 || summary.TotalCost != 15.0 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestQuarterlyCostSummary(t *testing.T) {
	s := newTestStore(t)
	dishes := createTask(t, s, "Dishes", 5.0, models.PerHour)

	logEntry(t, s, dishes.ID, day(2026, time.April, 1), 1.0, 0)
	logEntry(t, s, dishes.ID, day(2026, time.June, 30), 1.0, 0)
	logEntry(t, s, dishes.ID, day(2026, time.July, 1), 1.0, 0) // Q3

	summary, err := s.QuarterlyCostSummary(2026, 2)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Period != "Q2 2026" {
		t.Errorf("Period = %q", summary.Period)
	}
	if summary.EntryCount != 2 || summary.TotalCost != 10.0 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestMonthlyCostSummariesFullYear(t *testing.T) {
	s := newTestStore(t)
	dishes := createTask(t, s, "Dishes", 5.0, models.PerHour)
	logEntry(t, s, dishes.ID, day(2026, time.May, 12), 2.0, 0)

	summaries, err := s.MonthlyCostSummaries(2026)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 12 {
		t.Fatalf("summaries = %d, want 12", len(summaries))
	}
	if summaries[0].Period != "January 2026" || summaries[11].Period != "December 2026" {
		t.Errorf("labels = %q .. %q", summaries[0].Period, summaries[11].Period)
	}
	for i, summary := range summaries {
		want := 0.0
		if time.Month(i+1) == time.May {
			want = 10.0
		}
		if summary.TotalCost != want {
			t.Errorf("%s TotalCost = %v, want %v", summary.Period, summary.TotalCost, want)
		}
	}
}

func TestWeeklyCostSummariesForMonth(t *testing.T) {
	s := newTestStore(t)

	summaries, err := s.WeeklyCostSummariesForMonth(2026, time.January)
	if err != nil {
		t.Fatal(err)
	}
	// 31-day month steps 1, 8, 15, 22, 29.
	if len(summaries) != 5 {
		t.Fatalf("summaries = %d, want 5", len(summaries))
	}
}

func TestTotalCostForPeriod(t *testing.T) {
	s := newTestStore(t)
	dishes := createTask(t, s, "Dishes", 5.0, models.PerHour)
	logEntry(t, s, dishes.ID, day(2026, time.March, 10), 1.0, 0)
	logEntry(t, s, dishes.ID, day(2026, time.March, 11), 2.0, 0)

	end := time.Date(2026, time.March, 31, 23, 59, 59, 0, time.Local)
	total, err := s.TotalCostForPeriod(day(2026, time.March, 1), end)
	if err != nil {
		t.Fatal(err)
	}
	if total != 15.0 {
		t.Fatalf("total = %v, want 15.0", total)
	}
}

func TestSummaryIncludesDanglingEntries(t *testing.T) {
	s := newTestStore(t)
	dishes := createTask(t, s, "Dishes", 5.0, models.PerHour)
	logEntry(t, s, dishes.ID, day(2026, time.March, 10), 2.0, 0) // 10.00

	if err := s.gdb.Delete(&models.Task{}, dishes.ID).Error; err != nil {
		t.Fatal(err)
	}

	summary, err := s.MonthlyCostSummary(2026, time.March)
	if err != nil {
		t.Fatal(err)
	}
	if summary.EntryCount != 1 || summary.TotalCost != 10.0 {
		t.Fatalf("summary = %+v", summary)
	}
	if len(summary.TaskCosts) != 1 || summary.TaskCosts[0].TaskName != models.UnknownTaskName {
		t.Fatalf("TaskCosts = %+v", summary.TaskCosts)
	}
}
