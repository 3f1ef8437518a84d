package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/takumibuilt/tradie/internal/calendar"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Job-site search owns the keyboard while focused
		if m.searching {
			return m.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab1):
			m.switchTab(ScreenDashboard)
		case key.Matches(msg, m.keys.Tab2):
			m.switchTab(ScreenJobSites)
		case key.Matches(msg, m.keys.Tab3):
			m.switchTab(ScreenTimer)
		case key.Matches(msg, m.keys.Tab4):
			m.switchTab(ScreenReceipts)
		case key.Matches(msg, m.keys.Tab5):
			m.switchTab(ScreenInvoices)

		case key.Matches(msg, m.keys.Calendar):
			m.openDetail(ScreenCalendar)
		case key.Matches(msg, m.keys.Personal):
			m.openDetail(ScreenPersonal)
		case key.Matches(msg, m.keys.Settings):
			m.openDetail(ScreenSettings)

		case key.Matches(msg, m.keys.Back):
			m.goBack()

		case key.Matches(msg, m.keys.Search):
			if m.screen == ScreenJobSites {
				m.searching = true
				m.search.Focus()
				return m, textinput.Blink
			}

		case key.Matches(msg, m.keys.CycleBucket):
			st := m.state(m.screen)
			buckets := bucketsFor(m.screen)
			st.bucket = (st.bucket + 1) % len(buckets)
			st.selected = nil
			m.setStatus("Filter: " + m.bucket(m.screen).Label())

		case key.Matches(msg, m.keys.CycleView):
			if supportsViewModes(m.screen) {
				st := m.state(m.screen)
				st.view = (st.view + 1) % 3
				st.selected = nil
				if st.view == ViewCalendar {
					// A freshly mounted calendar always starts at today
					st.anchor = time.Now()
					m.focusToday(st)
				}
				m.setStatus("View: " + st.view.String())
			}

		default:
			if m.calendarActive() {
				m.updateCalendarKeys(msg)
			} else {
				m.updateListKeys(msg)
			}
		}
	}

	return m, nil
}

// calendarActive reports whether the current screen is showing a
// calendar projection right now.
func (m *appModel) calendarActive() bool {
	if m.screen == ScreenCalendar {
		return true
	}
	return supportsViewModes(m.screen) && m.state(m.screen).view == ViewCalendar
}

func (m *appModel) switchTab(s Screen) {
	m.tab = s
	m.screen = s
}

func (m *appModel) openDetail(s Screen) {
	m.screen = s
}

// goBack closes the innermost open thing: day selection first, then a
// detail screen back to the active tab.
func (m *appModel) goBack() {
	st := m.state(m.screen)
	if st.selected != nil {
		st.selected = nil
		return
	}
	if m.screen == ScreenJobSites && m.search.Value() != "" {
		m.search.SetValue("")
		return
	}
	if m.screen.isDetail() {
		m.screen = m.tab
	}
}

func (m *appModel) updateCalendarKeys(msg tea.KeyMsg) {
	st := m.state(m.screen)
	grid := m.gridFor(m.screen)

	switch {
	case key.Matches(msg, m.keys.ToggleGran):
		if st.gran == GranMonth {
			st.gran = GranWeek
		} else {
			st.gran = GranMonth
		}
		// Granularity switches don't carry the navigation offset over
		st.anchor = time.Now()
		st.selected = nil
		m.focusToday(st)

	case key.Matches(msg, m.keys.PrevPeriod):
		m.shiftPeriod(st, -1)

	case key.Matches(msg, m.keys.NextPeriod):
		m.shiftPeriod(st, 1)

	case key.Matches(msg, m.keys.Today):
		st.anchor = time.Now()
		st.selected = nil
		m.focusToday(st)

	case key.Matches(msg, m.keys.Left):
		if st.focus > 0 {
			st.focus--
		}
	case key.Matches(msg, m.keys.Right):
		if st.focus < len(grid)-1 {
			st.focus++
		}
	case key.Matches(msg, m.keys.Up):
		if st.gran == GranMonth && st.focus >= 7 {
			st.focus -= 7
		}
	case key.Matches(msg, m.keys.Down):
		if st.gran == GranMonth && st.focus+7 < len(grid) {
			st.focus += 7
		}

	case key.Matches(msg, m.keys.Select):
		if st.focus < 0 || st.focus >= len(grid) {
			return
		}
		day := grid[st.focus]
		events := calendar.EventsOn(m.projectedEvents(m.screen), day.Date, m.bucket(m.screen))
		if len(events) == 0 {
			m.setStatus("Nothing on " + day.Date.Format("Jan 2"))
			return
		}
		d := day.Date
		st.selected = &d
	}
}

func (m *appModel) updateListKeys(msg tea.KeyMsg) {
	st := m.state(m.screen)
	switch {
	case key.Matches(msg, m.keys.Up):
		if st.focus > 0 {
			st.focus--
		}
	case key.Matches(msg, m.keys.Down):
		if st.focus < len(m.visibleEvents(m.screen))-1 {
			st.focus++
		}
	}
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		if msg.Type == tea.KeyEsc {
			m.search.SetValue("")
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// shiftPeriod moves the calendar anchor one month or one week. Months
// are anchored to the 1st so a late-month anchor never skips February.
func (m *appModel) shiftPeriod(st *screenState, delta int) {
	if st.gran == GranWeek {
		st.anchor = st.anchor.AddDate(0, 0, 7*delta)
	} else {
		st.anchor = calendar.StartOfMonth(st.anchor).AddDate(0, delta, 0)
	}
	st.selected = nil
	st.focus = 0
}

// focusToday puts the cell cursor on today's cell when it is in the
// visible grid, else on the first cell.
func (m *appModel) focusToday(st *screenState) {
	grid := m.gridFor(m.screen)
	st.focus = 0
	key := calendar.DateKey(time.Now())
	for i, day := range grid {
		if day.Key() == key {
			st.focus = i
			return
		}
	}
}
