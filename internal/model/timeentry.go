package model

import "time"

// BillingStatus tracks whether a time entry has been invoiced yet
type BillingStatus string

const (
	StatusUnbilled BillingStatus = "unbilled"
	StatusInvoiced BillingStatus = "invoiced"
)

// TimeEntry is a single block of tracked work on a job site.
// Date is YYYY-MM-DD, StartTime/EndTime are HH:MM on that same day
// (overnight spans are not supported). Duration is hours, derived from
// the start/end pair via HoursBetween.
type TimeEntry struct {
	ID          string
	JobSiteID   string
	JobSiteName string
	Date        string
	StartTime   string
	EndTime     string
	Duration    float64
	Amount      float64
	Status      BillingStatus
	Running     bool // display only, no real clock behind it
}

func (e TimeEntry) Kind() EntityType  { return TypeTime }
func (e TimeEntry) EventDate() string { return e.Date }

// HoursBetween returns the duration in hours between two HH:MM clock
// times on the same day. Malformed inputs yield 0.
func HoursBetween(start, end string) float64 {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return 0
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return 0
	}
	return e.Sub(s).Hours()
}
