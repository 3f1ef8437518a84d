package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/takumibuilt/tradie/internal/config"
)

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	PrevPeriod  key.Binding
	NextPeriod  key.Binding
	Today       key.Binding
	CycleBucket key.Binding
	CycleView   key.Binding
	ToggleGran  key.Binding
	Select      key.Binding
	Back        key.Binding
	Search      key.Binding
	Calendar    key.Binding
	Personal    key.Binding
	Settings    key.Binding
	Tab1        key.Binding
	Tab2        key.Binding
	Tab3        key.Binding
	Tab4        key.Binding
	Tab5        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// newKeyMapFromConfig creates a keyMap from configuration
func newKeyMapFromConfig(cfg *config.Config) keyMap {
	kb := cfg.Keybindings

	return keyMap{
		Up: key.NewBinding(
			key.WithKeys(kb.Up...),
			key.WithHelp(formatKeyHelp(kb.Up), "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys(kb.Down...),
			key.WithHelp(formatKeyHelp(kb.Down), "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys(kb.Left...),
			key.WithHelp(formatKeyHelp(kb.Left), "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys(kb.Right...),
			key.WithHelp(formatKeyHelp(kb.Right), "move right"),
		),
		PrevPeriod: key.NewBinding(
			key.WithKeys(kb.PrevPeriod...),
			key.WithHelp(formatKeyHelp(kb.PrevPeriod), "previous month/week"),
		),
		NextPeriod: key.NewBinding(
			key.WithKeys(kb.NextPeriod...),
			key.WithHelp(formatKeyHelp(kb.NextPeriod), "next month/week"),
		),
		Today: key.NewBinding(
			key.WithKeys(kb.Today...),
			key.WithHelp(formatKeyHelp(kb.Today), "jump to today"),
		),
		CycleBucket: key.NewBinding(
			key.WithKeys(kb.CycleBucket...),
			key.WithHelp(formatKeyHelp(kb.CycleBucket), "cycle filter"),
		),
		CycleView: key.NewBinding(
			key.WithKeys(kb.CycleView...),
			key.WithHelp(formatKeyHelp(kb.CycleView), "cycle view mode"),
		),
		ToggleGran: key.NewBinding(
			key.WithKeys(kb.ToggleGran...),
			key.WithHelp(formatKeyHelp(kb.ToggleGran), "month/week"),
		),
		Select: key.NewBinding(
			key.WithKeys(kb.Select...),
			key.WithHelp(formatKeyHelp(kb.Select), "open day"),
		),
		Back: key.NewBinding(
			key.WithKeys(kb.Back...),
			key.WithHelp(formatKeyHelp(kb.Back), "back"),
		),
		Search: key.NewBinding(
			key.WithKeys(kb.Search...),
			key.WithHelp(formatKeyHelp(kb.Search), "search"),
		),
		Calendar: key.NewBinding(
			key.WithKeys(kb.Calendar...),
			key.WithHelp(formatKeyHelp(kb.Calendar), "calendar"),
		),
		Personal: key.NewBinding(
			key.WithKeys(kb.Personal...),
			key.WithHelp(formatKeyHelp(kb.Personal), "personal"),
		),
		Settings: key.NewBinding(
			key.WithKeys(kb.Settings...),
			key.WithHelp(formatKeyHelp(kb.Settings), "settings"),
		),
		Tab1: key.NewBinding(
			key.WithKeys(kb.Tab1...),
			key.WithHelp(formatKeyHelp(kb.Tab1), "dashboard"),
		),
		Tab2: key.NewBinding(
			key.WithKeys(kb.Tab2...),
			key.WithHelp(formatKeyHelp(kb.Tab2), "job sites"),
		),
		Tab3: key.NewBinding(
			key.WithKeys(kb.Tab3...),
			key.WithHelp(formatKeyHelp(kb.Tab3), "timer"),
		),
		Tab4: key.NewBinding(
			key.WithKeys(kb.Tab4...),
			key.WithHelp(formatKeyHelp(kb.Tab4), "receipts"),
		),
		Tab5: key.NewBinding(
			key.WithKeys(kb.Tab5...),
			key.WithHelp(formatKeyHelp(kb.Tab5), "invoices"),
		),
		Help: key.NewBinding(
			key.WithKeys(kb.Help...),
			key.WithHelp(formatKeyHelp(kb.Help), "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(kb.Quit...),
			key.WithHelp(formatKeyHelp(kb.Quit), "quit"),
		),
	}
}

// formatKeyHelp formats a slice of keys for display in help
func formatKeyHelp(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	if len(keys) == 1 {
		return formatKey(keys[0])
	}
	return formatKey(keys[0]) + "/" + formatKey(keys[1])
}

// formatKey formats a single key for display
func formatKey(k string) string {
	k = strings.ReplaceAll(k, "up", "↑")
	k = strings.ReplaceAll(k, "down", "↓")
	k = strings.ReplaceAll(k, "left", "←")
	k = strings.ReplaceAll(k, "right", "→")
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3, k.Tab4, k.Tab5},
		{k.Calendar, k.Personal, k.Settings, k.Back},
		{k.CycleBucket, k.CycleView, k.ToggleGran, k.Search},
		{k.PrevPeriod, k.NextPeriod, k.Today, k.Select},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Help, k.Quit},
	}
}
