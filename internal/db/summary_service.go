package db

import (
	"time"

	"github.com/hannesw/tgeld/internal/billing"
	"github.com/hannesw/tgeld/internal/models"
)

// TotalCostForPeriod sums the stored prices of all entries in [start, end].
func (s *Store) TotalCostForPeriod(start, end time.Time) (float64, error) {
	entries, err := s.ListTimeEntries(start, end)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range entries {
		total += e.TotalPrice
	}
	return total, nil
}

// WeeklyCostSummary aggregates the Monday..Sunday week containing date.
func (s *Store) WeeklyCostSummary(date time.Time) (*models.CostSummary, error) {
	start, end := billing.WeekWindow(date)
	entries, err := s.ListTimeEntries(start, end)
	if err != nil {
		return nil, err
	}
	return billing.BuildSummary(billing.WeekLabel(start), entries), nil
}

// MonthlyCostSummary aggregates one calendar month.
func (s *Store) MonthlyCostSummary(year int, month time.Month) (*models.CostSummary, error) {
	start, end := billing.MonthWindow(year, month)
	entries, err := s.ListTimeEntries(start, end)
	if err != nil {
		return nil, err
	}
	return billing.BuildSummary(billing.MonthLabel(year, month), entries), nil
}

// QuarterlyCostSummary aggregates quarter q (1..4) of year.
func (s *Store) QuarterlyCostSummary(year, quarter int) (*models.CostSummary, error) {
	start, end := billing.QuarterWindow(year, quarter)
	entries, err := s.ListTimeEntries(start, end)
	if err != nil {
		return nil, err
	}
	return billing.BuildSummary(billing.QuarterLabel(year, quarter), entries), nil
}

// MonthlyCostSummaries returns one summary per calendar month of year,
// January through December.
func (s *Store) MonthlyCostSummaries(year int) ([]*models.CostSummary, error) {
	summaries := make([]*models.CostSummary, 0, 12)
	for month := time.January; month <= time.December; month++ {
		summary, err := s.MonthlyCostSummary(year, month)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// WeeklyCostSummariesForMonth emits one weekly summary for the 1st of the
// month and every 7th day after it. Each window covers the calendar week of
// its date and is not clipped to the month, so the last one can include days
// of the following month; iterating adjacent months can therefore count a
// straddling week twice.
func (s *Store) WeeklyCostSummariesForMonth(year int, month time.Month) ([]*models.CostSummary, error) {
	var summaries []*models.CostSummary
	for _, day := range billing.WeekStartsOfMonth(year, month) {
		summary, err := s.WeeklyCostSummary(day)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
