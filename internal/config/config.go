// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/St0ckfish/stockfish-components/richtext"
	"github.com/St0ckfish/stockfish-components/schedule"
	"github.com/St0ckfish/stockfish-components/theme"
)

// Config holds the application configuration.
type Config struct {
	UI       UIConfig       `toml:"ui"`
	Editor   EditorConfig   `toml:"editor"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// UIConfig holds shared widget settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "light", "dark", "auto"
}

// EditorConfig holds rich-text editor settings.
type EditorConfig struct {
	Placeholder  string `toml:"placeholder"`
	HistoryLimit int    `toml:"history_limit"`
	Autofocus    bool   `toml:"autofocus"`
	ShowToolbar  bool   `toml:"show_toolbar"`
	// Formats limits the enabled format categories. Empty means all.
	Formats []string `toml:"formats,omitempty"`
}

// ScheduleConfig holds timetable grid settings.
type ScheduleConfig struct {
	Days            []string `toml:"days"`         // e.g., ["saturday", "sunday", ...]
	WindowStart     string   `toml:"window_start"` // e.g., "07:00"
	WindowEnd       string   `toml:"window_end"`   // e.g., "16:00"
	Timezone        string   `toml:"timezone"`     // display-only label
	EventsFile      string   `toml:"events_file"`  // YAML event list
	Compact         bool     `toml:"compact"`
	OverlapWarnings bool     `toml:"overlap_warnings"`
	ShowActions     bool     `toml:"show_actions"`
	EditURL         string   `toml:"edit_url"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: string(theme.ModeAuto),
		},
		Editor: EditorConfig{
			Placeholder:  "Start typing...",
			HistoryLimit: 100,
			Autofocus:    true,
			ShowToolbar:  true,
		},
		Schedule: ScheduleConfig{
			Days:            []string{"saturday", "sunday", "monday", "tuesday", "wednesday", "thursday", "friday"},
			WindowStart:     "07:00",
			WindowEnd:       "16:00",
			EventsFile:      defaultEventsPath(),
			OverlapWarnings: true,
			ShowActions:     true,
		},
	}
}

// defaultEventsPath returns the default events file path.
func defaultEventsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "events.yaml"
	}
	return filepath.Join(home, ".local", "share", "stockfish", "events.yaml")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "stockfish", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Schedule.EventsFile = expandPath(cfg.Schedule.EventsFile)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STOCKFISH_THEME"); v != "" {
		cfg.UI.Theme = v
	}

	if v := os.Getenv("STOCKFISH_EDITOR_PLACEHOLDER"); v != "" {
		cfg.Editor.Placeholder = v
	}

	if v := os.Getenv("STOCKFISH_SCHEDULE_DAYS"); v != "" {
		cfg.Schedule.Days = strings.Split(v, ",")
	}
	if v := os.Getenv("STOCKFISH_SCHEDULE_WINDOW_START"); v != "" {
		cfg.Schedule.WindowStart = v
	}
	if v := os.Getenv("STOCKFISH_SCHEDULE_WINDOW_END"); v != "" {
		cfg.Schedule.WindowEnd = v
	}
	if v := os.Getenv("STOCKFISH_SCHEDULE_TIMEZONE"); v != "" {
		cfg.Schedule.Timezone = v
	}
	if v := os.Getenv("STOCKFISH_EVENTS_FILE"); v != "" {
		cfg.Schedule.EventsFile = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !theme.ValidMode(c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	if c.Editor.HistoryLimit < 0 {
		return errors.New("history_limit must not be negative")
	}
	for _, f := range c.Editor.Formats {
		if !validFormats[strings.ToLower(f)] {
			return fmt.Errorf("invalid editor format: %s", f)
		}
	}

	if err := validateTime(c.Schedule.WindowStart, "window_start"); err != nil {
		return err
	}
	if err := validateTime(c.Schedule.WindowEnd, "window_end"); err != nil {
		return err
	}
	if c.Schedule.WindowStart >= c.Schedule.WindowEnd {
		return errors.New("window_start must be before window_end")
	}

	if len(c.Schedule.Days) == 0 {
		return errors.New("at least one day must be configured")
	}
	for _, day := range c.Schedule.Days {
		if !isValidWeekday(day) {
			return fmt.Errorf("invalid day: %s", day)
		}
	}
	if c.Schedule.EventsFile == "" {
		return errors.New("events_file must be set")
	}
	return nil
}

// validateTime checks if a time string is in HH:MM format.
func validateTime(t, field string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	hour := t[0:2]
	min := t[3:5]
	if !isDigits(hour) || !isDigits(min) {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

var validWeekdays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

func isValidWeekday(day string) bool {
	return validWeekdays[strings.ToLower(day)]
}

var validFormats = map[string]bool{
	"bold": true, "italic": true, "underline": true, "strikethrough": true,
	"alignment": true, "lists": true, "links": true, "images": true,
	"codeblocks": true, "quotes": true, "colors": true, "fontsize": true,
	"headings": true,
}

// EditorFormats builds the editor's enabled format set. An empty list
// enables everything.
func (c *Config) EditorFormats() richtext.Formats {
	if len(c.Editor.Formats) == 0 {
		return richtext.AllFormats()
	}
	var f richtext.Formats
	for _, name := range c.Editor.Formats {
		switch strings.ToLower(name) {
		case "bold":
			f.Bold = true
		case "italic":
			f.Italic = true
		case "underline":
			f.Underline = true
		case "strikethrough":
			f.Strikethrough = true
		case "alignment":
			f.Alignment = true
		case "lists":
			f.Lists = true
		case "links":
			f.Links = true
		case "images":
			f.Images = true
		case "codeblocks":
			f.CodeBlocks = true
		case "quotes":
			f.Quotes = true
		case "colors":
			f.Colors = true
		case "fontsize":
			f.FontSize = true
		case "headings":
			f.Headings = true
		}
	}
	return f
}

// titleCase uppercases the first letter of an ASCII day name.
func titleCase(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ThemeMode returns the configured theme as a mode value.
func (c *Config) ThemeMode() theme.Mode {
	return theme.Mode(strings.ToLower(c.UI.Theme))
}

// GridConfig builds the schedule widget configuration from the file config.
func (c *Config) GridConfig() schedule.Config {
	days := make([]schedule.DayColumn, 0, len(c.Schedule.Days))
	for i, name := range c.Schedule.Days {
		name = titleCase(name)
		days = append(days, schedule.DayColumn{
			ID:       int64(i + 1),
			Name:     name[:3],
			FullName: name,
		})
	}

	return schedule.Config{
		Days:                days,
		TimeSlots:           schedule.HourlySlots(c.Schedule.WindowStart, c.Schedule.WindowEnd),
		Window:              schedule.NewWindow(c.Schedule.WindowStart, c.Schedule.WindowEnd),
		ShowOverlapWarnings: c.Schedule.OverlapWarnings,
		Theme:               c.ThemeMode(),
		Compact:             c.Schedule.Compact,
		ShowActions:         c.Schedule.ShowActions,
		Timezone:            c.Schedule.Timezone,
		EditURL:             c.Schedule.EditURL,
	}
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
