package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/takumibuilt/tradie/internal/config"
	"github.com/takumibuilt/tradie/internal/model"
)

// styleMap holds all the styles used in the UI
type styleMap struct {
	titleStyle    lipgloss.Style
	statusStyle   lipgloss.Style
	cursorStyle   lipgloss.Style
	dimmedStyle   lipgloss.Style
	todayStyle    lipgloss.Style
	accentStyle   lipgloss.Style
	overdueStyle  lipgloss.Style
	paidStyle     lipgloss.Style
	runningStyle  lipgloss.Style
	timeStyle     lipgloss.Style
	receiptStyle  lipgloss.Style
	invoiceStyle  lipgloss.Style
	personalStyle lipgloss.Style
	jobSiteStyle  lipgloss.Style
	tabActive     lipgloss.Style
	tabInactive   lipgloss.Style
}

// newStyleMapFromConfig creates a styleMap from configuration
func newStyleMapFromConfig(cfg *config.Config) styleMap {
	colors := cfg.Colors

	return styleMap{
		titleStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Title)),
		statusStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Status)).Italic(true),
		cursorStyle:   lipgloss.NewStyle().Background(lipgloss.Color(colors.Cursor)),
		dimmedStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Dimmed)),
		todayStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Today)).Bold(true),
		accentStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Accent)),
		overdueStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Overdue)),
		paidStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Paid)),
		runningStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Running)).Bold(true),
		timeStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Time)),
		receiptStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Receipt)),
		invoiceStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Invoice)),
		personalStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Personal)),
		jobSiteStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.JobSite)),
		tabActive:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Accent)),
		tabInactive:   lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Dimmed)),
	}
}

// entityStyle returns the style for an entity type's dot and labels.
func (s styleMap) entityStyle(t model.EntityType) lipgloss.Style {
	switch t {
	case model.TypeTime:
		return s.timeStyle
	case model.TypeReceipt:
		return s.receiptStyle
	case model.TypeInvoice:
		return s.invoiceStyle
	case model.TypePersonal:
		return s.personalStyle
	case model.TypeJobSite:
		return s.jobSiteStyle
	}
	return s.dimmedStyle
}
