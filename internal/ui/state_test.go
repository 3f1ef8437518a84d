package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/takumibuilt/tradie/internal/calendar"
	"github.com/takumibuilt/tradie/internal/config"
	"github.com/takumibuilt/tradie/internal/model"
)

func testModel() appModel {
	return initialModel(model.Seed(), config.DefaultConfig())
}

func press(m appModel, k string) appModel {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	return next.(appModel)
}

func TestTabSwitching(t *testing.T) {
	m := testModel()
	tests := []struct {
		key  string
		want Screen
	}{
		{"2", ScreenJobSites},
		{"3", ScreenTimer},
		{"4", ScreenReceipts},
		{"5", ScreenInvoices},
		{"1", ScreenDashboard},
	}
	for _, tt := range tests {
		m = press(m, tt.key)
		if m.screen != tt.want {
			t.Errorf("after %q screen = %v, want %v", tt.key, m.screen, tt.want)
		}
		if m.tab != tt.want {
			t.Errorf("after %q tab = %v, want %v", tt.key, m.tab, tt.want)
		}
	}
}

func TestPerScreenBucketIndependence(t *testing.T) {
	m := testModel()

	// Narrow receipts to billable, then leave and come back.
	m = press(m, "4")
	m = press(m, "b")
	if got := m.bucket(ScreenReceipts); got != model.BucketBillable {
		t.Fatalf("receipts bucket = %s, want billable", got)
	}

	m = press(m, "5")
	if got := m.bucket(ScreenInvoices); got != model.BucketAll {
		t.Errorf("invoices bucket = %s, want untouched default", got)
	}

	m = press(m, "4")
	if got := m.bucket(ScreenReceipts); got != model.BucketBillable {
		t.Errorf("receipts bucket after round trip = %s, want billable", got)
	}
}

func TestBucketCycleWraps(t *testing.T) {
	m := testModel()
	m = press(m, "4")
	for i := 0; i < len(bucketsFor(ScreenReceipts)); i++ {
		m = press(m, "b")
	}
	if got := m.bucket(ScreenReceipts); got != model.BucketAll {
		t.Errorf("full cycle landed on %s, want the default again", got)
	}
}

func TestJobSitesDefaultToActive(t *testing.T) {
	m := testModel()
	if got := m.bucket(ScreenJobSites); got != model.BucketActive {
		t.Errorf("job sites default bucket = %s, want active", got)
	}
}

func TestDetailScreensReturnToActiveTab(t *testing.T) {
	m := testModel()
	m = press(m, "4")
	m = press(m, "c")
	if m.screen != ScreenCalendar {
		t.Fatalf("screen = %v, want calendar", m.screen)
	}
	if m.tab != ScreenReceipts {
		t.Errorf("tab = %v, want receipts kept as active tab", m.tab)
	}
	m = press(m, "esc")
	if m.screen != ScreenReceipts {
		t.Errorf("esc returned to %v, want receipts", m.screen)
	}
}

func TestGranularityToggleResetsToToday(t *testing.T) {
	m := testModel()
	m = press(m, "c")

	// Navigate two months away, then toggle to week view.
	m = press(m, "]")
	m = press(m, "]")
	m = press(m, "m")

	st := m.state(ScreenCalendar)
	if st.gran != GranWeek {
		t.Fatalf("gran = %v, want week", st.gran)
	}
	if calendar.DateKey(st.anchor) != calendar.DateKey(time.Now()) {
		t.Errorf("toggle kept old anchor %s, want today", calendar.DateKey(st.anchor))
	}

	// And back to month, again from today.
	m = press(m, "[")
	m = press(m, "m")
	st = m.state(ScreenCalendar)
	if st.gran != GranMonth {
		t.Fatalf("gran = %v, want month", st.gran)
	}
	if calendar.DateKey(st.anchor) != calendar.DateKey(time.Now()) {
		t.Errorf("toggle kept old anchor %s, want today", calendar.DateKey(st.anchor))
	}
}

func TestMonthNavigationAnchorsAtFirst(t *testing.T) {
	m := testModel()
	m = press(m, "c")
	st := m.state(ScreenCalendar)
	st.anchor = time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	m = press(m, "]")
	st = m.state(ScreenCalendar)
	if got := st.anchor.Month(); got != time.February {
		t.Errorf("next from Jan 31 landed in %s, want February", got)
	}
}

func TestSelectEmptyCellDoesNothing(t *testing.T) {
	m := testModel()
	m = press(m, "c")
	st := m.state(ScreenCalendar)
	// Anchor somewhere with no seed data at all.
	st.anchor = time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC)
	st.focus = 10

	m = press(m, "enter")
	if m.state(ScreenCalendar).selected != nil {
		t.Error("selecting an empty cell opened a day view")
	}
	if m.statusMsg == "" {
		t.Error("selecting an empty cell should set a status message")
	}
}

func TestSelectDayWithEvents(t *testing.T) {
	m := testModel()
	m = press(m, "c")
	st := m.state(ScreenCalendar)
	// November 2024 grid: cell 5 is Nov 1, so Nov 11 is cell 15.
	st.anchor = time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
	st.focus = 15

	m = press(m, "enter")
	st = m.state(ScreenCalendar)
	if st.selected == nil {
		t.Fatal("selecting Nov 11 did not open the day view")
	}
	if got := calendar.DateKey(*st.selected); got != "2024-11-11" {
		t.Errorf("selected day = %s, want 2024-11-11", got)
	}

	// First esc closes the day view, second leaves the screen.
	m = press(m, "esc")
	if m.state(ScreenCalendar).selected != nil {
		t.Error("esc did not clear the day selection")
	}
	if m.screen != ScreenCalendar {
		t.Error("esc left the calendar while a day was open")
	}
	m = press(m, "esc")
	if m.screen != ScreenDashboard {
		t.Errorf("second esc on %v, want back on dashboard", m.screen)
	}
}

func TestCycleViewResetsCalendarAnchor(t *testing.T) {
	m := testModel()
	m = press(m, "4")
	m = press(m, "v") // grid -> calendar
	st := m.state(ScreenReceipts)
	if st.view != ViewCalendar {
		t.Fatalf("view = %v, want calendar", st.view)
	}
	if calendar.DateKey(st.anchor) != calendar.DateKey(time.Now()) {
		t.Errorf("calendar mounted at %s, want today", calendar.DateKey(st.anchor))
	}
	m = press(m, "v") // calendar -> list
	m = press(m, "v") // list -> grid
	if got := m.state(ScreenReceipts).view; got != ViewGrid {
		t.Errorf("view after full cycle = %v, want grid", got)
	}
}

func TestBucketCycleClearsSelection(t *testing.T) {
	m := testModel()
	m = press(m, "c")
	st := m.state(ScreenCalendar)
	day := time.Date(2024, time.November, 11, 0, 0, 0, 0, time.UTC)
	st.selected = &day

	m = press(m, "b")
	if m.state(ScreenCalendar).selected != nil {
		t.Error("bucket cycle kept the day selection open")
	}
}

func TestViewRendersEveryScreen(t *testing.T) {
	m := testModel()
	m.width = 120
	m.height = 40
	for _, k := range []string{"1", "2", "3", "4", "5", "c", "p", ","} {
		m = press(m, k)
		if out := m.View(); out == "" {
			t.Errorf("screen %v rendered empty", m.screen)
		}
	}
}
