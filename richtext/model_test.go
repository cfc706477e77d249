package richtext

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyPress(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeRunes(m Model, s string) Model {
	for _, r := range s {
		m = keyPress(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestModelTypingInsertsText(t *testing.T) {
	m := NewModel(ModelOptions{Autofocus: true})

	m = typeRunes(m, "hi")

	if got := m.Surface().PlainText(); got != "hi" {
		t.Errorf("PlainText() = %q, want %q", got, "hi")
	}
}

func TestModelBlurredIgnoresInput(t *testing.T) {
	m := NewModel(ModelOptions{})

	m = typeRunes(m, "x")

	if got := m.Surface().PlainText(); got != "" {
		t.Errorf("unfocused widget accepted input: %q", got)
	}
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Focused() {
		t.Error("enter should focus the widget")
	}
}

func TestModelToggleShortcutRespectsFormats(t *testing.T) {
	m := NewModel(ModelOptions{Autofocus: true, Formats: AllFormats()})
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	if got := m.Value(); !strings.Contains(got, "<strong>") {
		t.Errorf("Value() = %q, want a strong wrapper", got)
	}

	disabled := NewModel(ModelOptions{Autofocus: true})
	disabled = keyPress(disabled, tea.KeyMsg{Type: tea.KeyCtrlB})
	if got := disabled.Value(); got != "" {
		t.Errorf("disabled bold still mutated the document: %q", got)
	}
}

func TestModelUndoShortcut(t *testing.T) {
	m := NewModel(ModelOptions{Autofocus: true})
	m = typeRunes(m, "a")

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyCtrlZ})

	if got := m.Surface().PlainText(); got != "" {
		t.Errorf("after undo PlainText() = %q, want empty", got)
	}
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.Surface().PlainText(); got != "a" {
		t.Errorf("after redo PlainText() = %q, want %q", got, "a")
	}
}

func TestModelLinkPrompt(t *testing.T) {
	m := NewModel(ModelOptions{Autofocus: true, Formats: AllFormats()})

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if m.prompt != promptLink {
		t.Fatal("ctrl+l should open the link prompt")
	}

	m = typeRunes(m, "https://example.test")
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.prompt != promptNone {
		t.Error("enter should close the prompt")
	}
	if got := m.Value(); !strings.Contains(got, `href="https://example.test"`) {
		t.Errorf("Value() = %q, want the inserted link", got)
	}
}

func TestModelLinkPromptEscDiscards(t *testing.T) {
	m := NewModel(ModelOptions{Autofocus: true, Formats: AllFormats()})

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyCtrlL})
	m = typeRunes(m, "https://discard.test")
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.prompt != promptNone {
		t.Error("esc should close the prompt")
	}
	if got := m.Value(); got != "" {
		t.Errorf("esc should discard the pending link, Value() = %q", got)
	}
	if got := m.input.Value(); got != "" {
		t.Errorf("prompt input should be reset, got %q", got)
	}
}

func TestModelViewShowsPlaceholder(t *testing.T) {
	m := NewModel(ModelOptions{Placeholder: "Start typing...", ShowToolbar: true})

	view := m.View()
	if !strings.Contains(view, "Start typing...") {
		t.Errorf("empty widget should render the placeholder:\n%s", view)
	}

	m.surface.InsertText("content")
	if view := m.View(); strings.Contains(view, "Start typing...") {
		t.Error("placeholder should disappear once there is content")
	}
}
