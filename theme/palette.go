package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds precomputed lipgloss colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgSurface   lipgloss.Color
	BgHighlight lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Gridline    lipgloss.Color
	Warning     lipgloss.Color
	Link        lipgloss.Color

	EventBg        lipgloss.Color
	EventWarningBg lipgloss.Color

	TextOnEvent   lipgloss.Color
	TextOnWarning lipgloss.Color
	TextOnAccent  lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(ModeDark)
	}

	isLight := relativeLuminance(t.Bg) > 0.55
	eventBg := surfaceShade(t.Event, t.Bg, isLight)
	warningBg := surfaceShade(t.Warning, t.Bg, isLight)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgSurface:   lipgloss.Color(t.BgSurface),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Gridline:    lipgloss.Color(t.Gridline),
		Warning:     lipgloss.Color(t.Warning),
		Link:        lipgloss.Color(t.Link),

		EventBg:        lipgloss.Color(eventBg),
		EventWarningBg: lipgloss.Color(warningBg),

		TextOnEvent:   lipgloss.Color(chooseTextColor(eventBg, t.Fg, t.Bg)),
		TextOnWarning: lipgloss.Color(chooseTextColor(warningBg, t.Fg, t.Bg)),
		TextOnAccent:  lipgloss.Color(chooseTextColor(t.Accent, t.Fg, t.Bg)),
	}
}

// EventColor derives a card background for an event, honoring a per-event
// hex override when one is set.
func (p *Palette) EventColor(override string) lipgloss.Color {
	if len(override) == 7 && override[0] == '#' {
		return lipgloss.Color(override)
	}
	return p.EventBg
}

// surfaceShade turns an accent into a card background: blended towards the
// container background on light themes, darkened on dark themes.
func surfaceShade(accent, bg string, isLight bool) string {
	if isLight {
		return blendColors(accent, bg, 0.75)
	}
	return darkenColor(accent, 0.50, 40)
}

// darkenColor reduces brightness by factor with a minimum channel floor so
// the result stays visible on dark backgrounds.
func darkenColor(hex string, factor float64, floor int) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}

	var r, g, b int
	parseHex(hex[1:3], &r)
	parseHex(hex[3:5], &g)
	parseHex(hex[5:7], &b)

	r = max(int(float64(r)*factor), floor)
	g = max(int(float64(g)*factor), floor)
	b = max(int(float64(b)*factor), floor)

	return formatHexColor(r, g, b)
}

// parseHex parses a 2-character hex string into an integer.
func parseHex(s string, v *int) {
	var val int
	for i := 0; i < len(s); i++ {
		val *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	*v = val
}

// formatHexColor formats RGB values as a hex color string.
func formatHexColor(r, g, b int) string {
	const hex = "0123456789abcdef"
	result := make([]byte, 7)
	result[0] = '#'
	result[1] = hex[r>>4]
	result[2] = hex[r&0xf]
	result[3] = hex[g>>4]
	result[4] = hex[g&0xf]
	result[5] = hex[b>>4]
	result[6] = hex[b&0xf]
	return string(result)
}

func chooseTextColor(bg, a, b string) string {
	if contrastRatio(bg, a) >= contrastRatio(bg, b) {
		return a
	}
	return b
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	if len(hex) != 7 || hex[0] != '#' {
		return 0
	}
	var r, g, b int
	parseHex(hex[1:3], &r)
	parseHex(hex[3:5], &g)
	parseHex(hex[5:7], &b)
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func blendColors(a, b string, ratio float64) string {
	if len(a) != 7 || a[0] != '#' || len(b) != 7 || b[0] != '#' {
		return a
	}
	ratio = math.Min(math.Max(ratio, 0), 1)

	var ar, ag, ab int
	var br, bg, bb int
	parseHex(a[1:3], &ar)
	parseHex(a[3:5], &ag)
	parseHex(a[5:7], &ab)
	parseHex(b[1:3], &br)
	parseHex(b[3:5], &bg)
	parseHex(b[5:7], &bb)

	r := int(float64(ar)*(1-ratio) + float64(br)*ratio)
	g := int(float64(ag)*(1-ratio) + float64(bg)*ratio)
	bl := int(float64(ab)*(1-ratio) + float64(bb)*ratio)

	return formatHexColor(r, g, bl)
}
