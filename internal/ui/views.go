package ui

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/takumibuilt/tradie/internal/model"
)

func (m appModel) View() string {
	var content string
	switch m.screen {
	case ScreenDashboard:
		content = m.viewDashboard()
	case ScreenJobSites:
		content = m.viewJobSites()
	case ScreenTimer:
		content = m.viewTimer()
	case ScreenReceipts:
		content = m.viewReceipts()
	case ScreenInvoices:
		content = m.viewInvoices()
	case ScreenCalendar:
		content = m.viewCalendarScreen()
	case ScreenPersonal:
		content = m.viewPersonal()
	case ScreenSettings:
		content = m.viewSettings()
	}

	var footer strings.Builder
	if time.Now().Before(m.statusExpiry) {
		footer.WriteString(m.styles.statusStyle.Render(m.statusMsg))
		footer.WriteString("\n")
	}
	if !m.screen.isDetail() {
		footer.WriteString(m.renderTabBar())
		footer.WriteString("\n")
	}
	footer.WriteString(m.help.View(m.keys))

	footerStr := footer.String()
	footerHeight := lipgloss.Height(footerStr)
	contentHeight := lipgloss.Height(content)

	padding := m.height - contentHeight - footerHeight
	if padding < 0 {
		padding = 0
	}

	var b strings.Builder
	b.WriteString(content)
	if padding > 0 {
		b.WriteString(strings.Repeat("\n", padding))
	}
	b.WriteString(footerStr)
	return b.String()
}

// renderHeader draws a screen's title line.
func (m appModel) renderHeader(s Screen) string {
	title := m.styles.titleStyle.Render(s.Title())
	if s == ScreenDashboard {
		greet := m.styles.titleStyle.Render("G'day, " + m.config.Identity.UserName)
		biz := m.styles.dimmedStyle.Render(m.config.Identity.BusinessName)
		return greet + "  " + biz
	}
	return title
}

// renderTabBar draws the five persistent tab slots.
func (m appModel) renderTabBar() string {
	tabs := []struct {
		screen Screen
		label  string
	}{
		{ScreenDashboard, "1 Dash"},
		{ScreenJobSites, "2 Sites"},
		{ScreenTimer, "3 Timer"},
		{ScreenReceipts, "4 Receipts"},
		{ScreenInvoices, "5 Invoices"},
	}
	parts := make([]string, len(tabs))
	for i, t := range tabs {
		if t.screen == m.tab {
			parts[i] = m.styles.tabActive.Render("[" + t.label + "]")
		} else {
			parts[i] = m.styles.tabInactive.Render(" " + t.label + " ")
		}
	}
	return strings.Join(parts, " ")
}

// renderBucketNav draws the screen's filter pills with the selected
// one highlighted.
func (m appModel) renderBucketNav(s Screen) string {
	selected := m.bucket(s)
	parts := make([]string, 0, len(bucketsFor(s)))
	for _, b := range bucketsFor(s) {
		if b == selected {
			parts = append(parts, m.styles.accentStyle.Render("("+b.Label()+")"))
		} else {
			parts = append(parts, m.styles.dimmedStyle.Render(" "+b.Label()+" "))
		}
	}
	return strings.Join(parts, " ")
}

// renderViewToggle shows the active view mode for screens that have it.
func (m appModel) renderViewToggle(s Screen) string {
	if !supportsViewModes(s) {
		return ""
	}
	active := m.state(s).view
	parts := make([]string, 0, 3)
	for _, v := range []ViewMode{ViewGrid, ViewCalendar, ViewList} {
		if v == active {
			parts = append(parts, m.styles.accentStyle.Render(v.String()))
		} else {
			parts = append(parts, m.styles.dimmedStyle.Render(v.String()))
		}
	}
	return strings.Join(parts, " · ")
}

// visibleEvents is the screen's collection after bucket filtering (and
// for job sites, the search query), newest first for dated streams.
func (m appModel) visibleEvents(s Screen) []model.CalendarEvent {
	events := model.Filter(m.projectedEvents(s), m.bucket(s))
	if s == ScreenJobSites {
		events = m.searchSites(events)
	}
	if s != ScreenJobSites {
		sorted := make([]model.CalendarEvent, len(events))
		copy(sorted, events)
		// ISO date keys sort lexicographically; newest first
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })
		return sorted
	}
	return events
}

// searchSites keeps the sites matching the search query on name,
// client or address.
func (m appModel) searchSites(events []model.CalendarEvent) []model.CalendarEvent {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query == "" {
		return events
	}
	var out []model.CalendarEvent
	for _, ev := range events {
		site, ok := ev.Entity.(model.JobSite)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(site.Name), query) ||
			strings.Contains(strings.ToLower(site.ClientName), query) ||
			strings.Contains(strings.ToLower(site.Address), query) {
			out = append(out, ev)
		}
	}
	return out
}

// renderEventList draws the visible collection as cursor-navigable
// lines, or the empty state when the filter matches nothing.
func (m appModel) renderEventList(s Screen, compact bool) string {
	events := m.visibleEvents(s)
	if len(events) == 0 {
		return m.renderEmptyState("No records match this filter")
	}

	st := m.state(s)
	cursor := st.focus
	if cursor >= len(events) {
		cursor = len(events) - 1
	}

	var b strings.Builder
	for i, ev := range events {
		line := m.renderEventLine(ev)
		if i == cursor {
			line = m.styles.cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		if !compact {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m appModel) renderEmptyState(msg string) string {
	return m.styles.dimmedStyle.Render(msg)
}
