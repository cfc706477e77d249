// Package theme provides color themes for the widgets.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Mode selects how the palette is chosen.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
	// ModeAuto defers to the terminal's ambient background color.
	ModeAuto Mode = "auto"
)

// ValidMode reports whether s names a theme mode.
func ValidMode(s string) bool {
	switch Mode(strings.ToLower(s)) {
	case ModeLight, ModeDark, ModeAuto:
		return true
	default:
		return false
	}
}

// Theme holds all colors for a widget theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // container background
	BgSurface   string `toml:"bg_surface"`   // event cards, raised surfaces
	BgHighlight string `toml:"bg_highlight"` // cursor, hover
	Fg          string `toml:"fg"`           // primary foreground
	FgMuted     string `toml:"fg_muted"`     // gridline labels, secondary text
	Accent      string `toml:"accent"`       // headers, borders
	Gridline    string `toml:"gridline"`     // hour lines
	Event       string `toml:"event"`        // default event color
	Warning     string `toml:"warning"`      // overlap warnings
	Link        string `toml:"link"`         // anchors in the editor
}

// Load loads a theme by mode. ModeAuto resolves against the terminal
// background; detection failure falls back to dark.
func Load(mode Mode) (*Theme, error) {
	name := string(mode)
	if mode == ModeAuto || name == "" {
		if termenv.HasDarkBackground() {
			name = string(ModeDark)
		} else {
			name = string(ModeLight)
		}
	}
	return loadByName(strings.ToLower(name))
}

func loadByName(name string) (*Theme, error) {
	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != string(ModeDark) {
			return loadByName(string(ModeDark))
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	return &t, nil
}

// Available returns the embedded theme names.
func Available() []string {
	return []string{string(ModeLight), string(ModeDark)}
}
