package models

import (
	"fmt"
	"time"
)

// DefaultStartTime is stored when an entry carries no usable clock time.
const DefaultStartTime = "12:00:00"

// UnknownTaskName is the display bucket for entries whose task row is gone.
const UnknownTaskName = "Unknown"

// TimeEntry is one logged unit of work against a task. TaskID is a soft
// reference: the store resolves Task at read time and leaves it nil when the
// referenced row no longer exists.
type TimeEntry struct {
	ID uint `gorm:"primarykey" json:"id"`

	TaskID uint  `gorm:"index" json:"task_id"`
	Task   *Task `gorm:"-" json:"task,omitempty"`

	EntryDate     time.Time `gorm:"index" json:"entry_date"`
	StartTime     string    `json:"start_time"` // HH:MM:SS, ordered lexicographically
	DurationHours float64   `json:"duration_hours"`
	Count         int       `json:"count"`
	TotalPrice    float64   `json:"total_price"` // derived; recomputed on every save
	Notes         string    `json:"notes"`
}

// StartClock returns the entry's time of day as an offset from midnight,
// falling back to 12:00:00 when the stored string is empty or malformed.
func (e *TimeEntry) StartClock() time.Duration {
	t, err := time.Parse("15:04:05", e.StartTime)
	if err != nil {
		return 12 * time.Hour
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// SetStartClock stores d in the canonical HH:MM:SS form.
func (e *TimeEntry) SetStartClock(d time.Duration) {
	d = d % (24 * time.Hour)
	e.StartTime = fmt.Sprintf("%02d:%02d:%02d",
		int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
}

// DisplayTime renders the start time as HH:MM.
func (e *TimeEntry) DisplayTime() string {
	d := e.StartClock()
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// DisplayAmount renders the billed amount according to the resolved task's
// billing type. Unresolved entries render as hours.
func (e *TimeEntry) DisplayAmount() string {
	if e.Task != nil && e.Task.BillingType == PerCount {
		return fmt.Sprintf("%d x", e.Count)
	}
	return fmt.Sprintf("%.2f h", e.DurationHours)
}

// TaskName returns the resolved task's name, or the unknown bucket label.
func (e *TimeEntry) TaskName() string {
	if e.Task != nil {
		return e.Task.Name
	}
	return UnknownTaskName
}
