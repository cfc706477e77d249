package richtext

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/St0ckfish/stockfish-components/theme"
)

// Formats enables or disables toolbar format categories independently.
type Formats struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Alignment     bool
	Lists         bool
	Links         bool
	Images        bool
	CodeBlocks    bool
	Quotes        bool
	Colors        bool
	FontSize      bool
	Headings      bool
}

// AllFormats enables every format category.
func AllFormats() Formats {
	return Formats{
		Bold: true, Italic: true, Underline: true, Strikethrough: true,
		Alignment: true, Lists: true, Links: true, Images: true,
		CodeBlocks: true, Quotes: true, Colors: true, FontSize: true,
		Headings: true,
	}
}

// ModelOptions configures the editor widget.
type ModelOptions struct {
	Surface     Options
	Formats     Formats
	Placeholder string
	ShowToolbar bool
	Autofocus   bool
	Theme       theme.Mode
	MinHeight   int
}

// promptKind says what the URL prompt is collecting.
type promptKind int

const (
	promptNone promptKind = iota
	promptLink
	promptImage
)

// Model is the bubbletea editor widget around a Surface.
type Model struct {
	surface *Surface
	opts    ModelOptions

	focused bool
	prompt  promptKind
	input   textinput.Model

	styles editorStyles
	width  int
	height int
}

type editorStyles struct {
	frame       lipgloss.Style
	toolbar     lipgloss.Style
	active      lipgloss.Style
	inactive    lipgloss.Style
	placeholder lipgloss.Style
	content     lipgloss.Style
	help        lipgloss.Style
}

// NewModel creates an editor widget.
func NewModel(opts ModelOptions) Model {
	th, _ := theme.Load(opts.Theme)
	pal := theme.NewPalette(th)

	input := textinput.New()
	input.Placeholder = "https://"
	input.CharLimit = 2048

	return Model{
		surface: NewSurface(opts.Surface),
		opts:    opts,
		focused: opts.Autofocus,
		input:   input,
		styles: editorStyles{
			frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(pal.Accent).
				Padding(0, 1),
			toolbar:     lipgloss.NewStyle().Foreground(pal.FgMuted),
			active:      lipgloss.NewStyle().Foreground(pal.Accent).Bold(true),
			inactive:    lipgloss.NewStyle().Foreground(pal.FgMuted),
			placeholder: lipgloss.NewStyle().Foreground(pal.FgMuted).Italic(true),
			content:     lipgloss.NewStyle().Foreground(pal.Fg),
			help:        lipgloss.NewStyle().Foreground(pal.FgMuted),
		},
		width:  60,
		height: 10,
	}
}

// Surface exposes the underlying editing surface.
func (m *Model) Surface() *Surface { return m.surface }

// Value returns the serialized document.
func (m *Model) Value() string { return m.surface.HTML() }

// Focused reports input focus. Shortcuts are only active while focused.
func (m *Model) Focused() bool { return m.focused }

// Focus gives the widget input focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes input focus.
func (m *Model) Blur() { m.focused = false }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.opts.Autofocus {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.handlePromptKey(msg)
		}
		return m.handleEditKey(msg)
	}
	return m, nil
}

// handlePromptKey drives the link/image URL prompt. Escape discards the
// in-progress input without side effects.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompt = promptNone
		m.input.Reset()
		return m, nil
	case "enter":
		url := strings.TrimSpace(m.input.Value())
		kind := m.prompt
		m.prompt = promptNone
		m.input.Reset()
		if url == "" {
			return m, nil
		}
		switch kind {
		case promptLink:
			m.surface.InsertLink(url, "")
		case promptImage:
			m.surface.InsertImage(url, "")
		}
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if !m.focused {
		if msg.String() == "enter" || msg.String() == "tab" {
			m.focused = true
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.focused = false

	case "ctrl+b":
		if m.opts.Formats.Bold {
			m.surface.ToggleBold()
		}
	case "ctrl+i":
		if m.opts.Formats.Italic {
			m.surface.ToggleItalic()
		}
	case "ctrl+u":
		if m.opts.Formats.Underline {
			m.surface.ToggleUnderline()
		}
	case "ctrl+s":
		if m.opts.Formats.Strikethrough {
			m.surface.ToggleStrikethrough()
		}

	case "ctrl+z":
		m.surface.Undo()
	case "ctrl+y":
		m.surface.Redo()

	case "ctrl+l":
		if m.opts.Formats.Links {
			m.prompt = promptLink
			m.input.Focus()
			return m, textinput.Blink
		}
	case "ctrl+g":
		if m.opts.Formats.Images {
			m.prompt = promptImage
			m.input.Focus()
			return m, textinput.Blink
		}

	case "ctrl+e":
		if m.opts.Formats.Alignment {
			m.surface.Exec(CmdAlignCenter, "")
		}
	case "ctrl+r":
		if m.opts.Formats.Alignment {
			m.surface.Exec(CmdAlignRight, "")
		}
	case "ctrl+o":
		if m.opts.Formats.Lists {
			m.surface.Exec(CmdInsertOrderedList, "")
		}
	case "ctrl+t":
		if m.opts.Formats.Lists {
			m.surface.Exec(CmdInsertUnorderedList, "")
		}

	case "ctrl+v":
		// Default paste is suppressed; only the clipboard's plain-text
		// payload is inserted verbatim.
		if text, err := clipboard.ReadAll(); err == nil {
			m.surface.InsertText(text)
		} else {
			warnf("paste: %v", err)
		}

	case "ctrl+a":
		m.surface.SelectAll()

	case "left":
		m.surface.MoveCaret(-1)
	case "right":
		m.surface.MoveCaret(1)
	case "shift+left":
		m.surface.ExtendSelection(-1)
	case "shift+right":
		m.surface.ExtendSelection(1)

	case "backspace":
		m.surface.DeleteBackward()
	case "enter":
		m.surface.InsertText("\n")

	default:
		if msg.Type == tea.KeyRunes {
			m.surface.InsertText(string(msg.Runes))
		} else if msg.Type == tea.KeySpace {
			m.surface.InsertText(" ")
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	if m.opts.ShowToolbar {
		sb.WriteString(m.toolbarView())
		sb.WriteByte('\n')
	}

	if m.prompt != promptNone {
		label := "link url: "
		if m.prompt == promptImage {
			label = "image url: "
		}
		sb.WriteString(label + m.input.View())
		sb.WriteByte('\n')
	}

	text := m.surface.PlainText()
	content := m.styles.content.Render(text)
	if text == "" {
		placeholder := m.opts.Placeholder
		if placeholder == "" {
			placeholder = "Start typing..."
		}
		content = m.styles.placeholder.Render(placeholder)
	}

	height := m.opts.MinHeight
	if height <= 0 {
		height = 5
	}
	frame := m.styles.frame.Width(max(m.width-4, 20)).Height(height)
	if m.surface.Direction() == RightToLeft {
		frame = frame.Align(lipgloss.Right)
	}
	sb.WriteString(frame.Render(content))
	sb.WriteByte('\n')

	help := "ctrl+b/i/u/s format · ctrl+l link · ctrl+g image · ctrl+z/y undo/redo · esc blur"
	if !m.focused {
		help = "enter to focus · ctrl+c quit"
	}
	sb.WriteString(m.styles.help.Render(help))

	return sb.String()
}

// toolbarView shows which formats are active at the caret.
func (m Model) toolbarView() string {
	st := m.surface.State()
	items := []struct {
		label   string
		enabled bool
		active  bool
	}{
		{"B", m.opts.Formats.Bold, st.Bold},
		{"I", m.opts.Formats.Italic, st.Italic},
		{"U", m.opts.Formats.Underline, st.Underline},
		{"S", m.opts.Formats.Strikethrough, st.Strikethrough},
		{"⟸", m.opts.Formats.Alignment, st.AlignLeft},
		{"⟺", m.opts.Formats.Alignment, st.AlignCenter},
		{"⟹", m.opts.Formats.Alignment, st.AlignRight},
		{"1.", m.opts.Formats.Lists, st.OrderedList},
		{"•", m.opts.Formats.Lists, st.UnorderedList},
	}

	var parts []string
	for _, item := range items {
		if !item.enabled {
			continue
		}
		if item.active {
			parts = append(parts, m.styles.active.Render(item.label))
		} else {
			parts = append(parts, m.styles.inactive.Render(item.label))
		}
	}
	return m.styles.toolbar.Render(strings.Join(parts, " "))
}
