package models

import (
	"fmt"
	"strings"
	"time"
)

// BillingType selects which amount field of an entry drives its price.
type BillingType int

const (
	PerHour BillingType = iota
	PerCount
)

func (b BillingType) String() string {
	if b == PerCount {
		return "per-count"
	}
	return "per-hour"
}

// ParseBillingType accepts the spellings used by CLI flags and the TUI.
func ParseBillingType(s string) (BillingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hour", "hours", "hourly", "per-hour":
		return PerHour, nil
	case "count", "counts", "piece", "per-count":
		return PerCount, nil
	}
	return PerHour, fmt.Errorf("unknown billing type %q (use hour or count)", s)
}

// Task is a chargeable activity definition. Removing a task through the CLI
// only clears IsActive, so entries that reference it keep resolving.
type Task struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name        string      `gorm:"not null" json:"name"`
	Price       float64     `json:"price"`
	BillingType BillingType `gorm:"default:0" json:"billing_type"`
	IsActive    bool        `gorm:"default:true" json:"is_active"`
}
