package models

import (
	"testing"
	"time"
)

func TestStartClock(t *testing.T) {
	cases := []struct {
		stored string
		want   time.Duration
	}{
		{"09:30:00", 9*time.Hour + 30*time.Minute},
		{"00:00:00", 0},
		{"23:59:59", 23*time.Hour + 59*time.Minute + 59*time.Second},
		{"", 12 * time.Hour},        // unset falls back to noon
		{"bogus", 12 * time.Hour},   // malformed falls back to noon
		{"25:00:00", 12 * time.Hour},
	}
	for _, tc := range cases {
		e := TimeEntry{StartTime: tc.stored}
		if got := e.StartClock(); got != tc.want {
			t.Errorf("StartClock(%q) = %v, want %v", tc.stored, got, tc.want)
		}
	}
}

func TestSetStartClockRoundTrip(t *testing.T) {
	var e TimeEntry
	e.SetStartClock(16*time.Hour + 30*time.Minute)
	if e.StartTime != "16:30:00" {
		t.Fatalf("StartTime = %q, want 16:30:00", e.StartTime)
	}
	if got := e.StartClock(); got != 16*time.Hour+30*time.Minute {
		t.Fatalf("round trip = %v", got)
	}
	if got := e.DisplayTime(); got != "16:30" {
		t.Fatalf("DisplayTime = %q", got)
	}
}

func TestDisplayAmount(t *testing.T) {
	hourly := &Task{Name: "Dishes", BillingType: PerHour}
	counted := &Task{Name: "Trash", BillingType: PerCount}

	e := TimeEntry{Task: hourly, DurationHours: 1.5, Count: 3}
	if got := e.DisplayAmount(); got != "1.50 h" {
		t.Errorf("per-hour amount = %q", got)
	}

	e.Task = counted
	if got := e.DisplayAmount(); got != "3 x" {
		t.Errorf("per-count amount = %q", got)
	}

	e.Task = nil
	if got := e.DisplayAmount(); got != "1.50 h" {
		t.Errorf("unresolved amount = %q", got)
	}
	if got := e.TaskName(); got != UnknownTaskName {
		t.Errorf("unresolved name = %q", got)
	}
}

func TestParseBillingType(t *testing.T) {
	for _, s := range []string{"", "hour", "Hourly", "per-hour"} {
		bt, err := ParseBillingType(s)
		if err != nil || bt != PerHour {
			t.Errorf("ParseBillingType(%q) = %v, %v", s, bt, err)
		}
	}
	for _, s := range []string{"count", "per-count", "Piece"} {
		bt, err := ParseBillingType(s)
		if err != nil || bt != PerCount {
			t.Errorf("ParseBillingType(%q) = %v, %v", s, bt, err)
		}
	}
	if _, err := ParseBillingType("weekly"); err == nil {
		t.Error("expected error for unknown billing type")
	}
}
