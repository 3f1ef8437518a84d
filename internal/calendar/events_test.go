package calendar

import (
	"testing"
	"time"

	"github.com/takumibuilt/tradie/internal/model"
)

func fixtureEvents() []model.CalendarEvent {
	entries := []model.TimeEntry{
		{ID: "t1", JobSiteName: "Bridge Street", Date: "2024-11-11", StartTime: "08:30", EndTime: "16:00", Duration: 7.5, Amount: 637.50, Status: model.StatusUnbilled},
	}
	receipts := []model.Receipt{
		{ID: "r1", Vendor: "Bunnings", Date: "2024-11-11", Total: 247.80, GST: 22.53, Category: model.CategoryBillable},
	}
	invoices := []model.Invoice{
		{ID: "i1", InvoiceNumber: "INV-2024-041", Date: "2024-11-12", Total: 4466.00, Status: model.InvoiceSent},
	}
	personal := []model.PersonalEvent{
		{ID: "p1", Title: "Soccer pickup", Date: "2024-11-11", Time: "07:00", Category: model.PersonalEventCat},
		{ID: "p2", Title: "Pay rego", Date: "2024-11-11", Category: model.PersonalBillCat},
	}
	return model.Project(entries, receipts, invoices, personal)
}

func TestEventsOnMatchesByDateKey(t *testing.T) {
	events := fixtureEvents()

	tests := []struct {
		name string
		day  time.Time
		want int
	}{
		{"three records plus untimed bill", date(2024, time.November, 11), 4},
		{"invoice only", date(2024, time.November, 12), 1},
		{"empty day", date(2024, time.November, 13), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EventsOn(events, tt.day, model.BucketAll)
			if len(got) != tt.want {
				t.Errorf("EventsOn() returned %d events, want %d", len(got), tt.want)
			}
		})
	}
}

func TestEventsOnRespectsBucket(t *testing.T) {
	events := fixtureEvents()
	day := date(2024, time.November, 11)

	got := EventsOn(events, day, model.BucketTime)
	if len(got) != 1 || got[0].Type != model.TypeTime {
		t.Errorf("time bucket on Nov 11 = %d events, want the single time entry", len(got))
	}
	if got := EventsOn(events, day, model.BucketInvoice); len(got) != 0 {
		t.Errorf("invoice bucket on Nov 11 = %d events, want 0", len(got))
	}
}

func TestEventsOnMalformedDateNeverMatches(t *testing.T) {
	// An unpadded date is not string-equal to any cell key, so the
	// record silently disappears from calendar views.
	events := model.PersonalEvents([]model.PersonalEvent{
		{ID: "p9", Title: "Typo", Date: "2024-1-5", Category: model.PersonalTaskCat},
	})
	if got := EventsOn(events, date(2024, time.January, 5), model.BucketAll); len(got) != 0 {
		t.Errorf("malformed date matched a cell, got %d events", len(got))
	}
}

func TestDistinctTypesFirstSeenOrder(t *testing.T) {
	events := EventsOn(fixtureEvents(), date(2024, time.November, 11), model.BucketAll)
	types := DistinctTypes(events)
	want := []model.EntityType{model.TypeTime, model.TypeReceipt, model.TypePersonal}
	if len(types) != len(want) {
		t.Fatalf("DistinctTypes = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("DistinctTypes[%d] = %s, want %s", i, types[i], want[i])
		}
	}
}

func TestSortChrono(t *testing.T) {
	events := EventsOn(fixtureEvents(), date(2024, time.November, 11), model.BucketAll)
	SortChrono(events)

	// The untimed bill keys at 00:00 and sorts first, the 07:00 personal
	// event precedes the 08:30 time entry, the receipt keys at 00:00 too
	// and keeps its projection position relative to the bill.
	var keys []string
	for _, ev := range events {
		keys = append(keys, ev.Date+"/"+string(ev.Type))
	}
	last := ""
	for i, ev := range events {
		k := clockKey(ev)
		if k < last {
			t.Fatalf("events out of order at %d: %v", i, keys)
		}
		last = k
	}
	if _, ok := events[len(events)-1].Entity.(model.TimeEntry); !ok {
		t.Errorf("08:30 time entry should sort last, got %v", keys)
	}
}

func TestSummarizeDay(t *testing.T) {
	events := EventsOn(fixtureEvents(), date(2024, time.November, 11), model.BucketAll)
	s := SummarizeDay(events)
	if s.Time != 1 || s.Receipts != 1 || s.Invoices != 0 || s.Personal != 2 {
		t.Errorf("SummarizeDay = %+v", s)
	}
}

func TestGroupByType(t *testing.T) {
	events := EventsOn(fixtureEvents(), date(2024, time.November, 11), model.BucketAll)
	groups := GroupByType(events)
	if len(groups[model.TypePersonal]) != 2 {
		t.Errorf("personal group has %d events, want 2", len(groups[model.TypePersonal]))
	}
	if len(groups[model.TypeInvoice]) != 0 {
		t.Errorf("invoice group has %d events, want none", len(groups[model.TypeInvoice]))
	}
}

func TestSummarizeWeek(t *testing.T) {
	week := WeekGrid(date(2024, time.November, 13))
	s := SummarizeWeek(week, fixtureEvents(), model.BucketAll)

	if s.Hours != 7.5 {
		t.Errorf("Hours = %.1f, want 7.5", s.Hours)
	}
	if s.Earned != 637.50 {
		t.Errorf("Earned = %.2f, want 637.50", s.Earned)
	}
	if s.Expenses != 247.80 {
		t.Errorf("Expenses = %.2f, want 247.80", s.Expenses)
	}
	if s.Invoices != 1 {
		t.Errorf("Invoices = %d, want 1", s.Invoices)
	}
}

func TestSummarizeWeekOutsideRange(t *testing.T) {
	week := WeekGrid(date(2024, time.December, 4))
	s := SummarizeWeek(week, fixtureEvents(), model.BucketAll)
	if s != (WeekSummary{}) {
		t.Errorf("week with no events summarized as %+v", s)
	}
}
