package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/takumibuilt/tradie/internal/model"
)

// money formats an amount with the configured currency symbol.
func (m appModel) money(amount float64) string {
	return fmt.Sprintf("%s%.2f", m.config.UI.Currency, amount)
}

// shortDate turns a YYYY-MM-DD key into "Mon 11 Nov". Malformed keys
// are shown verbatim.
func shortDate(key string) string {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return key
	}
	return t.Format("Mon 2 Jan")
}

// renderEventLine draws a one-line card for any calendar event.
func (m appModel) renderEventLine(ev model.CalendarEvent) string {
	switch e := ev.Entity.(type) {
	case model.TimeEntry:
		return m.renderTimeLine(e)
	case model.Receipt:
		return m.renderReceiptLine(e)
	case model.Invoice:
		return m.renderInvoiceLine(e)
	case model.JobSite:
		return m.renderJobSiteLine(e)
	case model.PersonalEvent:
		return m.renderPersonalLine(e)
	}
	return ""
}

func (m appModel) renderTimeLine(e model.TimeEntry) string {
	dot := m.styles.timeStyle.Render("●")
	span := e.StartTime + "-" + e.EndTime
	if e.Running {
		span = m.styles.runningStyle.Render(e.StartTime + "- now")
	}
	status := m.styles.dimmedStyle.Render(string(e.Status))
	return fmt.Sprintf("%s %s  %-24s %s  %.1fh  %s  %s",
		dot, shortDate(e.Date), e.JobSiteName, span, e.Duration, m.money(e.Amount), status)
}

func (m appModel) renderReceiptLine(e model.Receipt) string {
	dot := m.styles.receiptStyle.Render("●")
	site := e.JobSiteName
	if e.Category == model.CategoryOverhead {
		site = m.styles.dimmedStyle.Render("overhead")
	}
	items := fmt.Sprintf("%d items", e.ItemCount)
	if e.ItemCount == 1 {
		items = "1 item"
	}
	return fmt.Sprintf("%s %s  %-18s %s  %s  incl GST %s  %s",
		dot, shortDate(e.Date), e.Vendor, site, m.money(e.Total), m.money(e.GST),
		m.styles.dimmedStyle.Render(items))
}

func (m appModel) renderInvoiceLine(e model.Invoice) string {
	dot := m.styles.invoiceStyle.Render("●")
	status := string(e.Status)
	switch e.Status {
	case model.InvoiceOverdue:
		status = m.styles.overdueStyle.Render(status)
	case model.InvoicePaid:
		status = m.styles.paidStyle.Render(status)
	default:
		status = m.styles.dimmedStyle.Render(status)
	}
	return fmt.Sprintf("%s %s  %s  %-24s %s  due %s  %s",
		dot, shortDate(e.Date), e.InvoiceNumber, e.ClientName, m.money(e.Total),
		shortDate(e.DueDate), status)
}

func (m appModel) renderJobSiteLine(e model.JobSite) string {
	dot := m.styles.jobSiteStyle.Render("●")
	status := m.styles.dimmedStyle.Render(string(e.Status))
	if e.Status == model.SiteActive {
		status = m.styles.runningStyle.Render(string(e.Status))
	}
	return fmt.Sprintf("%s %-26s %-18s %.1fh  %s  %s",
		dot, e.Name, e.ClientName, e.TotalHours, m.money(e.TotalRevenue), status)
}

// renderJobSiteCard draws the expanded multi-line site card used on the
// job sites screen.
func (m appModel) renderJobSiteCard(e model.JobSite) string {
	var b strings.Builder
	b.WriteString(m.renderJobSiteLine(e))
	b.WriteString("\n")
	b.WriteString(m.styles.dimmedStyle.Render(fmt.Sprintf("   %s · %s/h · expenses %s · geofence %dm",
		e.Address, m.money(e.HourlyRate), m.money(e.TotalExpenses), e.GeofenceRadius)))
	return b.String()
}

func (m appModel) renderPersonalLine(e model.PersonalEvent) string {
	dot := m.styles.personalStyle.Render("●")
	clock := e.Time
	if clock == "" {
		clock = m.styles.dimmedStyle.Render("--:--")
	}
	extra := e.Location
	if e.Duration != "" {
		if extra != "" {
			extra += " · "
		}
		extra += e.Duration
	}
	return fmt.Sprintf("%s %s  %s  %-24s %s  %s",
		dot, shortDate(e.Date), clock, e.Title,
		m.styles.dimmedStyle.Render(string(e.Category)), m.styles.dimmedStyle.Render(extra))
}
