package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	Identity    IdentityConfig    `toml:"identity"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
	Colors      ColorsConfig      `toml:"colors"`
	UI          UIConfig          `toml:"ui"`
}

// IdentityConfig holds the display identity shown on the dashboard
type IdentityConfig struct {
	UserName     string `toml:"user_name"`
	BusinessName string `toml:"business_name"`
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	Up          []string `toml:"up"`
	Down        []string `toml:"down"`
	Left        []string `toml:"left"`
	Right       []string `toml:"right"`
	PrevPeriod  []string `toml:"prev_period"`
	NextPeriod  []string `toml:"next_period"`
	Today       []string `toml:"today"`
	CycleBucket []string `toml:"cycle_bucket"`
	CycleView   []string `toml:"cycle_view"`
	ToggleGran  []string `toml:"toggle_granularity"`
	Select      []string `toml:"select"`
	Back        []string `toml:"back"`
	Search      []string `toml:"search"`
	Calendar    []string `toml:"calendar"`
	Personal    []string `toml:"personal"`
	Settings    []string `toml:"settings"`
	Tab1        []string `toml:"tab_dashboard"`
	Tab2        []string `toml:"tab_jobsites"`
	Tab3        []string `toml:"tab_timer"`
	Tab4        []string `toml:"tab_receipts"`
	Tab5        []string `toml:"tab_invoices"`
	Help        []string `toml:"help"`
	Quit        []string `toml:"quit"`
}

// ColorsConfig holds color configurations (256-color terminal codes)
type ColorsConfig struct {
	Time     string `toml:"time"`
	Receipt  string `toml:"receipt"`
	Invoice  string `toml:"invoice"`
	Personal string `toml:"personal"`
	JobSite  string `toml:"jobsite"`
	Title    string `toml:"title"`
	Cursor   string `toml:"cursor"`
	Today    string `toml:"today"`
	Dimmed   string `toml:"dimmed"`
	Status   string `toml:"status"`
	Accent   string `toml:"accent"`
	Overdue  string `toml:"overdue"`
	Paid     string `toml:"paid"`
	Running  string `toml:"running"`
}

// UIConfig holds UI-related configurations
type UIConfig struct {
	RecentActivity int    `toml:"recent_activity"`
	MaxDots        int    `toml:"max_dots"`
	Currency       string `toml:"currency"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Identity: IdentityConfig{
			UserName:     "Cam",
			BusinessName: "Takumi Built",
		},
		Keybindings: KeybindingsConfig{
			Up:          []string{"up", "k"},
			Down:        []string{"down", "j"},
			Left:        []string{"left", "h"},
			Right:       []string{"right", "l"},
			PrevPeriod:  []string{"["},
			NextPeriod:  []string{"]"},
			Today:       []string{"t"},
			CycleBucket: []string{"b"},
			CycleView:   []string{"v"},
			ToggleGran:  []string{"m"},
			Select:      []string{"enter"},
			Back:        []string{"esc"},
			Search:      []string{"/"},
			Calendar:    []string{"c"},
			Personal:    []string{"p"},
			Settings:    []string{","},
			Tab1:        []string{"1"},
			Tab2:        []string{"2"},
			Tab3:        []string{"3"},
			Tab4:        []string{"4"},
			Tab5:        []string{"5"},
			Help:        []string{"?"},
			Quit:        []string{"q", "ctrl+c"},
		},
		Colors: ColorsConfig{
			Time:     "209",
			Receipt:  "77",
			Invoice:  "141",
			Personal: "75",
			JobSite:  "179",
			Title:    "99",
			Cursor:   "240",
			Today:    "39",
			Dimmed:   "243",
			Status:   "241",
			Accent:   "209",
			Overdue:  "196",
			Paid:     "34",
			Running:  "46",
		},
		UI: UIConfig{
			RecentActivity: 8,
			MaxDots:        3,
			Currency:       "$",
		},
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "tradie", "config.toml"), nil
}

// LoadConfig loads the configuration from the config file
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		defaultCfg := DefaultConfig()
		if err := defaultCfg.Save(); err != nil {
			// If we can't save, just return defaults
			return defaultCfg, nil
		}
		return defaultCfg, nil
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Merge with defaults for any missing values
	config.FillDefaults()

	return &config, nil
}

// Save saves the configuration to the config file
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Render encodes the config back to TOML for the settings preview.
func (c *Config) Render() (string, error) {
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.String(), nil
}

// FillDefaults fills in any missing config values with defaults
func (c *Config) FillDefaults() {
	defaults := DefaultConfig()

	if c.Identity.UserName == "" {
		c.Identity.UserName = defaults.Identity.UserName
	}
	if c.Identity.BusinessName == "" {
		c.Identity.BusinessName = defaults.Identity.BusinessName
	}

	if len(c.Keybindings.Up) == 0 {
		c.Keybindings.Up = defaults.Keybindings.Up
	}
	if len(c.Keybindings.Down) == 0 {
		c.Keybindings.Down = defaults.Keybindings.Down
	}
	if len(c.Keybindings.Left) == 0 {
		c.Keybindings.Left = defaults.Keybindings.Left
	}
	if len(c.Keybindings.Right) == 0 {
		c.Keybindings.Right = defaults.Keybindings.Right
	}
	if len(c.Keybindings.PrevPeriod) == 0 {
		c.Keybindings.PrevPeriod = defaults.Keybindings.PrevPeriod
	}
	if len(c.Keybindings.NextPeriod) == 0 {
		c.Keybindings.NextPeriod = defaults.Keybindings.NextPeriod
	}
	if len(c.Keybindings.Today) == 0 {
		c.Keybindings.Today = defaults.Keybindings.Today
	}
	if len(c.Keybindings.CycleBucket) == 0 {
		c.Keybindings.CycleBucket = defaults.Keybindings.CycleBucket
	}
	if len(c.Keybindings.CycleView) == 0 {
		c.Keybindings.CycleView = defaults.Keybindings.CycleView
	}
	if len(c.Keybindings.ToggleGran) == 0 {
		c.Keybindings.ToggleGran = defaults.Keybindings.ToggleGran
	}
	if len(c.Keybindings.Select) == 0 {
		c.Keybindings.Select = defaults.Keybindings.Select
	}
	if len(c.Keybindings.Back) == 0 {
		c.Keybindings.Back = defaults.Keybindings.Back
	}
	if len(c.Keybindings.Search) == 0 {
		c.Keybindings.Search = defaults.Keybindings.Search
	}
	if len(c.Keybindings.Calendar) == 0 {
		c.Keybindings.Calendar = defaults.Keybindings.Calendar
	}
	if len(c.Keybindings.Personal) == 0 {
		c.Keybindings.Personal = defaults.Keybindings.Personal
	}
	if len(c.Keybindings.Settings) == 0 {
		c.Keybindings.Settings = defaults.Keybindings.Settings
	}
	if len(c.Keybindings.Tab1) == 0 {
		c.Keybindings.Tab1 = defaults.Keybindings.Tab1
	}
	if len(c.Keybindings.Tab2) == 0 {
		c.Keybindings.Tab2 = defaults.Keybindings.Tab2
	}
	if len(c.Keybindings.Tab3) == 0 {
		c.Keybindings.Tab3 = defaults.Keybindings.Tab3
	}
	if len(c.Keybindings.Tab4) == 0 {
		c.Keybindings.Tab4 = defaults.Keybindings.Tab4
	}
	if len(c.Keybindings.Tab5) == 0 {
		c.Keybindings.Tab5 = defaults.Keybindings.Tab5
	}
	if len(c.Keybindings.Help) == 0 {
		c.Keybindings.Help = defaults.Keybindings.Help
	}
	if len(c.Keybindings.Quit) == 0 {
		c.Keybindings.Quit = defaults.Keybindings.Quit
	}

	if c.Colors.Time == "" {
		c.Colors.Time = defaults.Colors.Time
	}
	if c.Colors.Receipt == "" {
		c.Colors.Receipt = defaults.Colors.Receipt
	}
	if c.Colors.Invoice == "" {
		c.Colors.Invoice = defaults.Colors.Invoice
	}
	if c.Colors.Personal == "" {
		c.Colors.Personal = defaults.Colors.Personal
	}
	if c.Colors.JobSite == "" {
		c.Colors.JobSite = defaults.Colors.JobSite
	}
	if c.Colors.Title == "" {
		c.Colors.Title = defaults.Colors.Title
	}
	if c.Colors.Cursor == "" {
		c.Colors.Cursor = defaults.Colors.Cursor
	}
	if c.Colors.Today == "" {
		c.Colors.Today = defaults.Colors.Today
	}
	if c.Colors.Dimmed == "" {
		c.Colors.Dimmed = defaults.Colors.Dimmed
	}
	if c.Colors.Status == "" {
		c.Colors.Status = defaults.Colors.Status
	}
	if c.Colors.Accent == "" {
		c.Colors.Accent = defaults.Colors.Accent
	}
	if c.Colors.Overdue == "" {
		c.Colors.Overdue = defaults.Colors.Overdue
	}
	if c.Colors.Paid == "" {
		c.Colors.Paid = defaults.Colors.Paid
	}
	if c.Colors.Running == "" {
		c.Colors.Running = defaults.Colors.Running
	}

	if c.UI.RecentActivity == 0 {
		c.UI.RecentActivity = defaults.UI.RecentActivity
	}
	if c.UI.MaxDots == 0 {
		c.UI.MaxDots = defaults.UI.MaxDots
	}
	if c.UI.Currency == "" {
		c.UI.Currency = defaults.UI.Currency
	}
}

// EntityColor returns the configured color for an entity type name.
func (c *Config) EntityColor(entityType string) string {
	switch entityType {
	case "time":
		return c.Colors.Time
	case "receipt":
		return c.Colors.Receipt
	case "invoice":
		return c.Colors.Invoice
	case "personal":
		return c.Colors.Personal
	case "jobsite":
		return c.Colors.JobSite
	}
	return c.Colors.Dimmed
}
