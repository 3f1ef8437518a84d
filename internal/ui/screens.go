package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"

	"github.com/takumibuilt/tradie/internal/calendar"
	"github.com/takumibuilt/tradie/internal/config"
	"github.com/takumibuilt/tradie/internal/model"
)

// viewDashboard shows this week's totals and the latest activity
// across every record stream.
func (m appModel) viewDashboard() string {
	st := m.state(ScreenDashboard)
	if st.view == ViewCalendar {
		return m.composeScreen(ScreenDashboard, m.renderCalendar(ScreenDashboard))
	}
	if st.view == ViewList {
		return m.composeScreen(ScreenDashboard, m.renderEventList(ScreenDashboard, true))
	}

	events := m.store.Events()
	week := calendar.WeekGrid(time.Now())
	summary := calendar.SummarizeWeek(week, events, m.bucket(ScreenDashboard))

	var b strings.Builder
	b.WriteString(m.renderStatTiles([]statTile{
		{"This week", fmt.Sprintf("%.1fh", summary.Hours), m.styles.timeStyle},
		{"Earned", m.money(summary.Earned), m.styles.paidStyle},
		{"Spent", m.money(summary.Expenses), m.styles.receiptStyle},
		{"Invoiced", fmt.Sprintf("%d", summary.Invoices), m.styles.invoiceStyle},
	}))
	b.WriteString("\n\n")

	b.WriteString(m.styles.titleStyle.Render("Recent activity"))
	b.WriteString("\n")
	recent := m.visibleEvents(ScreenDashboard)
	limit := m.config.UI.RecentActivity
	if len(recent) > limit {
		recent = recent[:limit]
	}
	if len(recent) == 0 {
		b.WriteString(m.renderEmptyState("No records match this filter"))
	}
	for _, ev := range recent {
		b.WriteString(m.renderEventLine(ev))
		b.WriteString("\n")
	}
	return m.composeScreen(ScreenDashboard, strings.TrimRight(b.String(), "\n"))
}

type statTile struct {
	label string
	value string
	style lipgloss.Style
}

func (m appModel) renderStatTiles(tiles []statTile) string {
	boxes := make([]string, len(tiles))
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	for i, t := range tiles {
		inner := t.style.Bold(true).Render(t.value) + "\n" + m.styles.dimmedStyle.Render(t.label)
		boxes[i] = box.Render(inner)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// viewJobSites lists sites as expanded cards, grouped into active and
// completed when no status filter narrows them.
func (m appModel) viewJobSites() string {
	events := m.visibleEvents(ScreenJobSites)
	st := m.state(ScreenJobSites)

	var b strings.Builder
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if len(events) == 0 {
		b.WriteString(m.renderEmptyState("No sites match"))
		return m.composeScreen(ScreenJobSites, b.String())
	}

	cursor := st.focus
	if cursor >= len(events) {
		cursor = len(events) - 1
	}

	grouped := m.bucket(ScreenJobSites) == model.BucketAll
	writeGroup := func(title string, want model.SiteStatus) {
		wrote := false
		for i, ev := range events {
			site, ok := ev.Entity.(model.JobSite)
			if !ok || (grouped && site.Status != want) {
				continue
			}
			if grouped && !wrote {
				b.WriteString(m.styles.titleStyle.Render(title))
				b.WriteString("\n")
			}
			wrote = true
			card := m.renderJobSiteCard(site)
			if i == cursor {
				card = m.styles.cursorStyle.Render(card)
			}
			b.WriteString(card)
			b.WriteString("\n\n")
		}
	}
	if grouped {
		writeGroup("Active", model.SiteActive)
		writeGroup("Completed", model.SiteCompleted)
	} else {
		writeGroup("", "")
	}
	return m.composeScreen(ScreenJobSites, strings.TrimRight(b.String(), "\n"))
}

// viewTimer shows the running entry, if any, above today's entries.
func (m appModel) viewTimer() string {
	st := m.state(ScreenTimer)
	if st.view == ViewCalendar {
		return m.composeScreen(ScreenTimer, m.renderCalendar(ScreenTimer))
	}

	var b strings.Builder
	var running *model.TimeEntry
	for _, e := range m.store.TimeEntries() {
		if e.Running {
			running = &e
			break
		}
	}
	if running != nil {
		block := m.styles.runningStyle.Render("▶ RUNNING") + "\n" +
			running.JobSiteName + "\n" +
			m.styles.dimmedStyle.Render("started "+running.StartTime)
		b.WriteString(lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Render(block))
	} else {
		b.WriteString(m.styles.dimmedStyle.Render("No timer running"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.titleStyle.Render("Entries"))
	b.WriteString("\n")
	b.WriteString(m.renderEventList(ScreenTimer, true))
	return m.composeScreen(ScreenTimer, b.String())
}

// viewReceipts shows spend totals for the filtered set above the list.
func (m appModel) viewReceipts() string {
	st := m.state(ScreenReceipts)
	if st.view == ViewCalendar {
		return m.composeScreen(ScreenReceipts, m.renderCalendar(ScreenReceipts))
	}

	var total, gst float64
	for _, ev := range m.visibleEvents(ScreenReceipts) {
		if r, ok := ev.Entity.(model.Receipt); ok {
			total += r.Total
			gst += r.GST
		}
	}

	var b strings.Builder
	b.WriteString(m.styles.dimmedStyle.Render(
		fmt.Sprintf("Total %s · GST %s", m.money(total), m.money(gst))))
	b.WriteString("\n\n")
	b.WriteString(m.renderEventList(ScreenReceipts, st.view == ViewList))
	return m.composeScreen(ScreenReceipts, b.String())
}

// viewInvoices shows the outstanding total, every invoice not yet
// paid, above the list.
func (m appModel) viewInvoices() string {
	st := m.state(ScreenInvoices)
	if st.view == ViewCalendar {
		return m.composeScreen(ScreenInvoices, m.renderCalendar(ScreenInvoices))
	}

	var outstanding float64
	var overdue int
	for _, ev := range m.visibleEvents(ScreenInvoices) {
		inv, ok := ev.Entity.(model.Invoice)
		if !ok {
			continue
		}
		if inv.Status != model.InvoicePaid {
			outstanding += inv.Total
		}
		if inv.Status == model.InvoiceOverdue {
			overdue++
		}
	}

	var b strings.Builder
	line := fmt.Sprintf("Outstanding %s", m.money(outstanding))
	if overdue > 0 {
		line += " · " + m.styles.overdueStyle.Render(fmt.Sprintf("%d overdue", overdue))
	}
	b.WriteString(m.styles.dimmedStyle.Render(line))
	b.WriteString("\n\n")
	b.WriteString(m.renderEventList(ScreenInvoices, st.view == ViewList))
	return m.composeScreen(ScreenInvoices, b.String())
}

// viewCalendarScreen is the dedicated calendar with everything
// projected onto it.
func (m appModel) viewCalendarScreen() string {
	return m.composeScreen(ScreenCalendar, m.renderCalendar(ScreenCalendar))
}

func (m appModel) viewPersonal() string {
	st := m.state(ScreenPersonal)
	if st.view == ViewCalendar {
		return m.composeScreen(ScreenPersonal, m.renderCalendar(ScreenPersonal))
	}
	return m.composeScreen(ScreenPersonal, m.renderEventList(ScreenPersonal, st.view == ViewList))
}

// viewSettings shows who the app is configured for and a highlighted
// preview of the config file on disk.
func (m appModel) viewSettings() string {
	var b strings.Builder
	b.WriteString(m.config.Identity.UserName)
	b.WriteString(" · ")
	b.WriteString(m.config.Identity.BusinessName)
	b.WriteString("\n")
	if path, err := config.GetConfigPath(); err == nil {
		b.WriteString(m.styles.dimmedStyle.Render(path))
	}
	b.WriteString("\n\n")

	raw, err := m.config.Render()
	if err != nil {
		b.WriteString(m.styles.dimmedStyle.Render("config preview unavailable: " + err.Error()))
		return m.composeScreen(ScreenSettings, b.String())
	}
	var hl strings.Builder
	if err := quick.Highlight(&hl, raw, "toml", "terminal256", "monokai"); err != nil {
		b.WriteString(raw)
	} else {
		b.WriteString(hl.String())
	}
	return m.composeScreen(ScreenSettings, b.String())
}

// composeScreen stacks the standard screen chrome, header then filter
// pills then view toggle, above a screen body.
func (m appModel) composeScreen(s Screen, body string) string {
	var b strings.Builder
	b.WriteString(m.renderHeader(s))
	b.WriteString("\n")
	if len(bucketsFor(s)) > 1 {
		b.WriteString(m.renderBucketNav(s))
		b.WriteString("\n")
	}
	if toggle := m.renderViewToggle(s); toggle != "" {
		b.WriteString(toggle)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(body)
	return b.String()
}
