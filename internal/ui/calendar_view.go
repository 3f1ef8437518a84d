package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/takumibuilt/tradie/internal/calendar"
	"github.com/takumibuilt/tradie/internal/model"
)

const cellWidth = 10

var weekdayHeader = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func padCell(s string) string {
	if len(s) >= cellWidth {
		return s[:cellWidth]
	}
	return s + strings.Repeat(" ", cellWidth-len(s))
}

// renderCalendar draws the active calendar grid for a screen: a month
// block grid or a week agenda, plus the day detail overlay when a cell
// is selected.
func (m appModel) renderCalendar(s Screen) string {
	st := m.state(s)
	events := m.projectedEvents(s)
	bucket := m.bucket(s)

	if st.selected != nil && s == ScreenCalendar {
		return m.renderDayView(*st.selected, events, bucket)
	}

	var body string
	if st.gran == GranWeek {
		body = m.renderWeek(st, events, bucket)
	} else {
		body = m.renderMonth(st, events, bucket)
	}

	if st.selected != nil {
		return m.overlayDayDetail(body, *st.selected, events, bucket)
	}
	return body
}

// renderMonth draws the 42-cell month grid with per-type dots.
func (m appModel) renderMonth(st *screenState, events []model.CalendarEvent, bucket model.Bucket) string {
	days := calendar.MonthGrid(st.anchor)

	var b strings.Builder
	b.WriteString(m.styles.titleStyle.Render(calendar.MonthLabel(st.anchor)))
	b.WriteString("\n\n")

	for _, wd := range weekdayHeader {
		b.WriteString(m.styles.dimmedStyle.Render(padCell(wd)))
	}
	b.WriteString("\n")

	for row := 0; row < 6; row++ {
		var tops, dots []string
		for col := 0; col < 7; col++ {
			day := days[row*7+col]
			tops = append(tops, m.renderCellTop(day, row*7+col == st.focus))
			dots = append(dots, m.renderCellDots(calendar.EventsOn(events, day.Date, bucket)))
		}
		b.WriteString(strings.Join(tops, ""))
		b.WriteString("\n")
		b.WriteString(strings.Join(dots, ""))
		b.WriteString("\n")
	}
	return b.String()
}

// renderCellTop draws a cell's day number with today and focus marks.
func (m appModel) renderCellTop(day calendar.Day, focused bool) string {
	label := fmt.Sprintf("%2d", day.Date.Day())
	switch {
	case focused:
		label = m.styles.cursorStyle.Render(label)
	case day.IsToday():
		label = m.styles.todayStyle.Render(label)
	case day.OutsideMonth:
		label = m.styles.dimmedStyle.Render(label)
	}
	return label + strings.Repeat(" ", cellWidth-2)
}

// renderCellDots draws one dot per distinct entity type on the day,
// capped at the configured maximum with a "+N" overflow marker.
func (m appModel) renderCellDots(events []model.CalendarEvent) string {
	types := calendar.DistinctTypes(events)
	if len(types) == 0 {
		return strings.Repeat(" ", cellWidth)
	}
	maxDots := m.config.UI.MaxDots
	var b strings.Builder
	width := 0
	for i, t := range types {
		if i == maxDots {
			over := fmt.Sprintf("+%d", len(types)-maxDots)
			b.WriteString(m.styles.dimmedStyle.Render(over))
			width += len(over)
			break
		}
		b.WriteString(m.styles.entityStyle(t).Render("●"))
		width++
	}
	if width < cellWidth {
		b.WriteString(strings.Repeat(" ", cellWidth-width))
	}
	return b.String()
}

// renderWeek draws the week agenda: a totals header and seven day rows
// with each day's events in clock order.
func (m appModel) renderWeek(st *screenState, events []model.CalendarEvent, bucket model.Bucket) string {
	days := calendar.WeekGrid(st.anchor)
	summary := calendar.SummarizeWeek(days, events, bucket)

	var b strings.Builder
	b.WriteString(m.styles.titleStyle.Render(calendar.WeekLabel(days)))
	b.WriteString("\n")
	b.WriteString(m.styles.dimmedStyle.Render(fmt.Sprintf("%.1fh worked · %s earned · %s spent · %d invoices",
		summary.Hours, m.money(summary.Earned), m.money(summary.Expenses), summary.Invoices)))
	b.WriteString("\n\n")

	for i, day := range days {
		header := day.Date.Format("Mon 2 Jan")
		switch {
		case i == st.focus:
			header = m.styles.cursorStyle.Render(header)
		case day.IsToday():
			header = m.styles.todayStyle.Render(header)
		}
		b.WriteString(header)
		b.WriteString("\n")

		dayEvents := calendar.EventsOn(events, day.Date, bucket)
		calendar.SortChrono(dayEvents)
		if len(dayEvents) == 0 {
			b.WriteString(m.styles.dimmedStyle.Render("  -"))
			b.WriteString("\n")
			continue
		}
		for _, ev := range dayEvents {
			b.WriteString("  " + m.renderEventLine(ev))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// overlayDayDetail centers a day panel over the grid, listing the day's
// events chronologically.
func (m appModel) overlayDayDetail(background string, day time.Time, events []model.CalendarEvent, bucket model.Bucket) string {
	dayEvents := calendar.EventsOn(events, day, bucket)
	calendar.SortChrono(dayEvents)

	var b strings.Builder
	b.WriteString(m.styles.titleStyle.Render(day.Format("Monday 2 January 2006")))
	b.WriteString("\n\n")
	for _, ev := range dayEvents {
		b.WriteString(m.renderEventLine(ev))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.dimmedStyle.Render("esc to close"))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(b.String())

	width := m.width
	if width <= 0 {
		width = lipgloss.Width(background)
	}
	height := m.height
	if height <= 0 {
		height = lipgloss.Height(background)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}

// renderDayView is the full-screen day mode of the calendar screen:
// a count header followed by one section per entity type present.
func (m appModel) renderDayView(day time.Time, events []model.CalendarEvent, bucket model.Bucket) string {
	dayEvents := calendar.EventsOn(events, day, bucket)
	calendar.SortChrono(dayEvents)
	summary := calendar.SummarizeDay(dayEvents)
	groups := calendar.GroupByType(dayEvents)

	var b strings.Builder
	b.WriteString(m.styles.titleStyle.Render(day.Format("Monday 2 January 2006")))
	b.WriteString("\n")
	b.WriteString(m.styles.dimmedStyle.Render(fmt.Sprintf("%d time · %d receipts · %d invoices · %d personal",
		summary.Time, summary.Receipts, summary.Invoices, summary.Personal)))
	b.WriteString("\n\n")

	for _, t := range calendar.TypeOrder() {
		group := groups[t]
		if len(group) == 0 {
			continue
		}
		b.WriteString(m.styles.entityStyle(t).Render(sectionTitle(t)))
		b.WriteString("\n")
		for _, ev := range group {
			b.WriteString("  " + m.renderEventLine(ev))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.dimmedStyle.Render("esc to return to the grid"))
	return b.String()
}

func sectionTitle(t model.EntityType) string {
	switch t {
	case model.TypeTime:
		return "Time"
	case model.TypeReceipt:
		return "Receipts"
	case model.TypeInvoice:
		return "Invoices"
	case model.TypePersonal:
		return "Personal"
	case model.TypeJobSite:
		return "Job Sites"
	}
	return string(t)
}
