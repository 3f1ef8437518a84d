package calendar

import (
	"sort"
	"time"

	"github.com/takumibuilt/tradie/internal/model"
)

// EventsOn returns the events that land on a day after bucket
// filtering. Matching is exact string equality between the day's key
// and each event's date field; an event with a malformed date never
// matches any cell and is silently dropped from calendar views.
func EventsOn(events []model.CalendarEvent, day time.Time, bucket model.Bucket) []model.CalendarEvent {
	key := DateKey(day)
	var out []model.CalendarEvent
	for _, ev := range model.Filter(events, bucket) {
		if ev.Date == key {
			out = append(out, ev)
		}
	}
	return out
}

// DistinctTypes returns the entity types present in events, in
// first-seen order. Month cells render one dot per type.
func DistinctTypes(events []model.CalendarEvent) []model.EntityType {
	var types []model.EntityType
	seen := make(map[model.EntityType]bool)
	for _, ev := range events {
		if !seen[ev.Type] {
			seen[ev.Type] = true
			types = append(types, ev.Type)
		}
	}
	return types
}

// clockKey is the HH:MM sort key for day ordering: time entries sort by
// start time, personal events by their optional time, everything else
// at midnight. Untimed records sharing a day keep projection order.
func clockKey(ev model.CalendarEvent) string {
	switch e := ev.Entity.(type) {
	case model.TimeEntry:
		return e.StartTime
	case model.PersonalEvent:
		if e.Time != "" {
			return e.Time
		}
	}
	return "00:00"
}

// SortChrono sorts a day's events chronologically, in place, stably.
func SortChrono(events []model.CalendarEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return clockKey(events[i]) < clockKey(events[j])
	})
}

// typeOrder fixes the section order of the day view.
var typeOrder = []model.EntityType{model.TypeTime, model.TypeReceipt, model.TypeInvoice, model.TypePersonal}

// GroupByType splits a day's events into the fixed section order:
// time entries, receipts, invoices, personal. Types with no events get
// no group.
func GroupByType(events []model.CalendarEvent) map[model.EntityType][]model.CalendarEvent {
	groups := make(map[model.EntityType][]model.CalendarEvent)
	for _, ev := range events {
		groups[ev.Type] = append(groups[ev.Type], ev)
	}
	return groups
}

// TypeOrder returns the display order for day-view sections.
func TypeOrder() []model.EntityType {
	return typeOrder
}

// DaySummary is the per-type count header of the day view.
type DaySummary struct {
	Time     int
	Receipts int
	Invoices int
	Personal int
}

// SummarizeDay counts a day's events by type.
func SummarizeDay(events []model.CalendarEvent) DaySummary {
	var s DaySummary
	for _, ev := range events {
		switch ev.Type {
		case model.TypeTime:
			s.Time++
		case model.TypeReceipt:
			s.Receipts++
		case model.TypeInvoice:
			s.Invoices++
		case model.TypePersonal:
			s.Personal++
		}
	}
	return s
}

// WeekSummary aggregates a week's worth of filtered events: hours and
// earnings from time entries, spend from receipts, invoice count.
type WeekSummary struct {
	Hours    float64
	Earned   float64
	Expenses float64
	Invoices int
}

// SummarizeWeek folds every day of the grid through EventsOn and
// accumulates the totals the week header shows.
func SummarizeWeek(days []Day, events []model.CalendarEvent, bucket model.Bucket) WeekSummary {
	var s WeekSummary
	for _, day := range days {
		for _, ev := range EventsOn(events, day.Date, bucket) {
			switch e := ev.Entity.(type) {
			case model.TimeEntry:
				s.Hours += e.Duration
				s.Earned += e.Amount
			case model.Receipt:
				s.Expenses += e.Total
			case model.Invoice:
				s.Invoices++
			}
		}
	}
	return s
}
