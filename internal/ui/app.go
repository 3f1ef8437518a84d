package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/takumibuilt/tradie/internal/calendar"
	"github.com/takumibuilt/tradie/internal/config"
	"github.com/takumibuilt/tradie/internal/model"
)

// Screen is the top-level navigation target. The first five are home
// screens bound 1:1 to tab-bar slots; calendar, personal and settings
// are detail screens that hide the tab bar.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenJobSites
	ScreenTimer
	ScreenReceipts
	ScreenInvoices
	ScreenCalendar
	ScreenPersonal
	ScreenSettings
)

// Title returns the screen's header text.
func (s Screen) Title() string {
	switch s {
	case ScreenDashboard:
		return "Dashboard"
	case ScreenJobSites:
		return "Job Sites"
	case ScreenTimer:
		return "Time Tracking"
	case ScreenReceipts:
		return "Receipts"
	case ScreenInvoices:
		return "Invoices"
	case ScreenCalendar:
		return "Calendar"
	case ScreenPersonal:
		return "Personal"
	case ScreenSettings:
		return "Settings"
	}
	return ""
}

// isDetail reports whether the screen hides the persistent tab bar.
func (s Screen) isDetail() bool {
	return s == ScreenCalendar || s == ScreenPersonal || s == ScreenSettings
}

// ViewMode controls how a screen renders its collection
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewCalendar
	ViewList
)

func (v ViewMode) String() string {
	switch v {
	case ViewGrid:
		return "grid"
	case ViewCalendar:
		return "calendar"
	case ViewList:
		return "list"
	}
	return ""
}

// Granularity is the calendar display resolution
type Granularity int

const (
	GranMonth Granularity = iota
	GranWeek
)

// screenState is the per-screen slice of coordinator state. Every
// screen owns exactly one; switching screens never touches another
// screen's record.
type screenState struct {
	bucket   int // index into bucketsFor(screen)
	view     ViewMode
	gran     Granularity
	anchor   time.Time // month/week navigation anchor
	focus    int       // focused calendar cell or list row
	selected *time.Time
}

type appModel struct {
	store  *model.Store
	config *config.Config
	keys   keyMap
	styles styleMap
	help   help.Model

	width  int
	height int

	tab    Screen // active tab, one of the five home screens
	screen Screen // currently shown screen
	states map[Screen]*screenState

	search    textinput.Model
	searching bool

	statusMsg    string
	statusExpiry time.Time
}

func initialModel(store *model.Store, cfg *config.Config) appModel {
	h := help.New()
	h.ShowAll = false

	ti := textinput.New()
	ti.Placeholder = "Search job sites..."
	ti.CharLimit = 60

	return appModel{
		store:  store,
		config: cfg,
		keys:   newKeyMapFromConfig(cfg),
		styles: newStyleMapFromConfig(cfg),
		help:   h,
		tab:    ScreenDashboard,
		screen: ScreenDashboard,
		states: make(map[Screen]*screenState),
		search: ti,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

// state returns the screen's state record, creating it with that
// screen's defaults on first visit. Calendar projections always start
// anchored at today.
func (m *appModel) state(s Screen) *screenState {
	if st, ok := m.states[s]; ok {
		return st
	}
	st := &screenState{anchor: time.Now()}
	if s == ScreenCalendar {
		st.view = ViewCalendar
	}
	m.states[s] = st
	return st
}

func (m *appModel) setStatus(msg string) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(3 * time.Second)
}

// bucketsFor returns the bucket set a screen offers. The order is the
// cycle order; index 0 is the screen's default.
func bucketsFor(s Screen) []model.Bucket {
	switch s {
	case ScreenDashboard, ScreenCalendar:
		return []model.Bucket{model.BucketAll, model.BucketTime, model.BucketReceipt, model.BucketInvoice, model.BucketPersonal}
	case ScreenReceipts:
		return []model.Bucket{model.BucketAll, model.BucketBillable, model.BucketOverhead}
	case ScreenInvoices:
		return []model.Bucket{model.BucketAll, model.BucketDraft, model.BucketSent, model.BucketPaid, model.BucketOverdue}
	case ScreenJobSites:
		return []model.Bucket{model.BucketActive, model.BucketCompleted, model.BucketAll}
	case ScreenPersonal:
		return []model.Bucket{model.BucketAll, model.BucketEvents, model.BucketTasks, model.BucketBills}
	case ScreenTimer:
		return []model.Bucket{model.BucketAll}
	}
	return []model.Bucket{model.BucketAll}
}

// bucket returns the screen's currently selected bucket.
func (m *appModel) bucket(s Screen) model.Bucket {
	buckets := bucketsFor(s)
	st := m.state(s)
	if st.bucket < 0 || st.bucket >= len(buckets) {
		return buckets[0]
	}
	return buckets[st.bucket]
}

// projectedEvents returns the event stream a screen filters: the
// unified stream for dashboard/calendar, a single collection elsewhere.
func (m *appModel) projectedEvents(s Screen) []model.CalendarEvent {
	switch s {
	case ScreenDashboard, ScreenCalendar:
		return m.store.Events()
	case ScreenTimer:
		return model.TimeEvents(m.store.TimeEntries())
	case ScreenReceipts:
		return model.ReceiptEvents(m.store.Receipts())
	case ScreenInvoices:
		return model.InvoiceEvents(m.store.Invoices())
	case ScreenJobSites:
		return model.JobSiteEvents(m.store.JobSites())
	case ScreenPersonal:
		return model.PersonalEvents(m.store.Personal())
	}
	return nil
}

// supportsViewModes reports whether the screen has the grid/calendar/
// list toggle. Job sites are grid-with-search only; settings has no
// collection.
func supportsViewModes(s Screen) bool {
	switch s {
	case ScreenDashboard, ScreenTimer, ScreenReceipts, ScreenInvoices, ScreenPersonal:
		return true
	}
	return false
}

// gridFor returns the cells the screen's calendar currently shows.
func (m *appModel) gridFor(s Screen) []calendar.Day {
	st := m.state(s)
	if st.gran == GranWeek {
		return calendar.WeekGrid(st.anchor)
	}
	return calendar.MonthGrid(st.anchor)
}

// Run starts the terminal UI
func Run(store *model.Store, cfg *config.Config) error {
	p := tea.NewProgram(initialModel(store, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
