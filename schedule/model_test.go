package schedule

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m Model, key string) Model {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func testEvents() []*Event {
	return []*Event{
		evt(1, "Saturday", "08:00", "09:00"),
		evt(2, "Saturday", "10:00", "11:00"),
		evt(3, "Sunday", "08:00", "09:00"),
	}
}

func TestMenuSingleGlobalToggle(t *testing.T) {
	m := New(testEvents(), DefaultConfig(), Callbacks{})

	m = press(m, "m")
	if got := m.OpenMenuID(); got != 1 {
		t.Fatalf("OpenMenuID() = %d, want 1", got)
	}

	// Moving to another event and opening its menu replaces the open one.
	m = press(m, "j")
	if got := m.OpenMenuID(); got != 0 {
		t.Fatalf("navigation should close the menu, OpenMenuID() = %d", got)
	}
	m = press(m, "m")
	if got := m.OpenMenuID(); got != 2 {
		t.Fatalf("OpenMenuID() = %d, want 2", got)
	}

	// Toggling the same event's menu closes it.
	m = press(m, "m")
	if got := m.OpenMenuID(); got != 0 {
		t.Errorf("second toggle should close the menu, OpenMenuID() = %d", got)
	}
}

func TestMenuEscCloses(t *testing.T) {
	m := New(testEvents(), DefaultConfig(), Callbacks{})

	m = press(m, "m")
	m = press(m, "esc")

	if got := m.OpenMenuID(); got != 0 {
		t.Errorf("OpenMenuID() = %d, want 0", got)
	}
}

func TestMenuDisabledByConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowActions = false
	m := New(testEvents(), cfg, Callbacks{})

	m = press(m, "m")

	if got := m.OpenMenuID(); got != 0 {
		t.Errorf("OpenMenuID() = %d, want 0 with actions disabled", got)
	}
}

func TestClickCallback(t *testing.T) {
	var clicked *Event
	m := New(testEvents(), DefaultConfig(), Callbacks{
		OnClick: func(e *Event) { clicked = e },
	})

	m = press(m, "enter")

	if clicked == nil || clicked.ID != 1 {
		t.Errorf("OnClick got %+v, want event 1", clicked)
	}
}

func TestEditDispatchPrefersURL(t *testing.T) {
	var openedURL string
	var edited *Event

	cfg := DefaultConfig()
	cfg.EditURL = "/classes/edit"
	cfg.OpenURL = func(url string) { openedURL = url }

	m := New(testEvents(), cfg, Callbacks{
		OnEdit: func(e *Event) { edited = e },
	})

	m = press(m, "m")
	m = press(m, "e")

	if openedURL != "/classes/edit/1" {
		t.Errorf("opened URL = %q, want %q", openedURL, "/classes/edit/1")
	}
	if edited != nil {
		t.Error("OnEdit should not fire when an edit URL is configured")
	}
	if got := m.OpenMenuID(); got != 0 {
		t.Errorf("edit should close the menu, OpenMenuID() = %d", got)
	}
}

func TestEditDispatchFallsBackToCallback(t *testing.T) {
	var edited *Event
	m := New(testEvents(), DefaultConfig(), Callbacks{
		OnEdit: func(e *Event) { edited = e },
	})

	m = press(m, "m")
	m = press(m, "e")

	if edited == nil || edited.ID != 1 {
		t.Errorf("OnEdit got %+v, want event 1", edited)
	}
}

func TestDeleteRequiresOpenMenu(t *testing.T) {
	var deleted *Event
	m := New(testEvents(), DefaultConfig(), Callbacks{
		OnDelete: func(e *Event) { deleted = e },
	})

	m = press(m, "d")
	if deleted != nil {
		t.Fatal("delete without an open menu should be ignored")
	}

	m = press(m, "m")
	m = press(m, "d")
	if deleted == nil || deleted.ID != 1 {
		t.Errorf("OnDelete got %+v, want event 1", deleted)
	}
}

func TestSetEventsRecomputesLayout(t *testing.T) {
	m := New(nil, DefaultConfig(), Callbacks{})
	if got := len(m.Columns()[0].Events); got != 0 {
		t.Fatalf("empty grid has %d events in the first column", got)
	}

	m.SetEvents(testEvents())
	if got := len(m.Columns()[0].Events); got != 2 {
		t.Errorf("first column has %d events, want 2", got)
	}
}

func TestViewRendersTimezoneAndHeaders(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timezone = "Asia/Riyadh"
	m := New(testEvents(), cfg, Callbacks{})

	view := m.View()
	if !strings.Contains(view, "Asia/Riyadh") {
		t.Error("view should include the timezone label")
	}
	if !strings.Contains(view, "Sat") {
		t.Error("view should include day headers")
	}
}
