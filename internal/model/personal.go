package model

// PersonalCategory buckets personal events
type PersonalCategory string

const (
	PersonalEventCat PersonalCategory = "event"
	PersonalTaskCat  PersonalCategory = "task"
	PersonalBillCat  PersonalCategory = "bill"
)

// PersonalEvent is a non-work calendar item. Time, Duration and Location
// are optional; an empty Time sorts the event at midnight in day views.
type PersonalEvent struct {
	ID       string
	Title    string
	Date     string
	Time     string // HH:MM, optional
	Duration string // free-form label, e.g. "2h"
	Location string
	Category PersonalCategory
}

func (p PersonalEvent) Kind() EntityType  { return TypePersonal }
func (p PersonalEvent) EventDate() string { return p.Date }
