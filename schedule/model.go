package schedule

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/St0ckfish/stockfish-components/theme"
)

// Callbacks are the optional host hooks fired by grid interactions. The grid
// holds no edit/delete logic of its own; it is purely a dispatcher.
type Callbacks struct {
	OnClick  func(*Event)
	OnEdit   func(*Event)
	OnDelete func(*Event)
}

// Config is the grid's layout and behavior configuration.
type Config struct {
	Days      []DayColumn
	TimeSlots []string
	Window    Window

	ShowOverlapWarnings bool
	Theme               theme.Mode
	Compact             bool
	ShowActions         bool
	Timezone            string // display-only label

	// EditURL, when set, makes the edit action open "EditURL/<id>" through
	// OpenURL instead of calling Callbacks.OnEdit.
	EditURL string
	OpenURL func(url string)
}

// DefaultConfig returns the default grid configuration.
func DefaultConfig() Config {
	return Config{
		Days:                DefaultDays(),
		TimeSlots:           DefaultTimeSlots(),
		Window:              DefaultWindow(),
		ShowOverlapWarnings: true,
		Theme:               theme.ModeAuto,
		ShowActions:         true,
	}
}

// Model is the bubbletea grid widget.
type Model struct {
	cfg       Config
	callbacks Callbacks

	events  []*Event
	columns []Column

	cursorDay int
	cursorIdx int

	// Exactly one action menu may be open across the whole grid; 0 is none.
	openMenuID int64

	styles *Styles
	width  int
	height int
}

// New creates a grid widget over the given events.
func New(events []*Event, cfg Config, callbacks Callbacks) Model {
	if len(cfg.Days) == 0 {
		cfg.Days = DefaultDays()
	}
	if len(cfg.TimeSlots) == 0 {
		cfg.TimeSlots = DefaultTimeSlots()
	}
	if cfg.Window.Span() == 0 {
		cfg.Window = DefaultWindow()
	}

	th, _ := theme.Load(cfg.Theme)
	m := Model{
		cfg:       cfg,
		callbacks: callbacks,
		styles:    NewStyles(theme.NewPalette(th)),
		width:     80,
		height:    24,
	}
	m.SetEvents(events)
	return m
}

// SetEvents replaces the event list and recomputes the layout. The host owns
// the authoritative list and re-supplies it after edits.
func (m *Model) SetEvents(events []*Event) {
	m.events = events
	m.columns = Layout(events, m.cfg.Days, m.cfg.Window, m.cfg.Compact)
	m.clampCursor()
}

// Columns exposes the computed layout.
func (m *Model) Columns() []Column { return m.columns }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "left", "h":
		m.closeMenu()
		if m.cursorDay > 0 {
			m.cursorDay--
			m.clampCursor()
		}
	case "right", "l":
		m.closeMenu()
		if m.cursorDay < len(m.columns)-1 {
			m.cursorDay++
			m.clampCursor()
		}
	case "down", "j":
		m.closeMenu()
		if m.cursorIdx < len(m.currentColumn().Events)-1 {
			m.cursorIdx++
		}
	case "up", "k":
		m.closeMenu()
		if m.cursorIdx > 0 {
			m.cursorIdx--
		}

	case "enter":
		if e := m.currentEvent(); e != nil && m.callbacks.OnClick != nil {
			m.callbacks.OnClick(e)
		}

	case "m":
		// Single global toggle: opening a menu closes any other open one.
		if !m.cfg.ShowActions {
			break
		}
		if e := m.currentEvent(); e != nil {
			if m.openMenuID == e.ID {
				m.openMenuID = 0
			} else {
				m.openMenuID = e.ID
			}
		}

	case "e":
		if e := m.currentEvent(); e != nil && m.openMenuID == e.ID {
			m.openMenuID = 0
			m.dispatchEdit(e)
		}
	case "d":
		if e := m.currentEvent(); e != nil && m.openMenuID == e.ID {
			m.openMenuID = 0
			if m.callbacks.OnDelete != nil {
				m.callbacks.OnDelete(e)
			}
		}

	case "esc":
		m.closeMenu()
	}
	return m, nil
}

// dispatchEdit navigates to the configured edit URL when one is set,
// otherwise falls through to the edit callback.
func (m *Model) dispatchEdit(e *Event) {
	if m.cfg.EditURL != "" && m.cfg.OpenURL != nil {
		m.cfg.OpenURL(fmt.Sprintf("%s/%d", m.cfg.EditURL, e.ID))
		return
	}
	if m.callbacks.OnEdit != nil {
		m.callbacks.OnEdit(e)
	}
}

func (m *Model) closeMenu() { m.openMenuID = 0 }

// OpenMenuID returns the id of the event whose action menu is open, or 0.
func (m *Model) OpenMenuID() int64 { return m.openMenuID }

func (m *Model) clampCursor() {
	if m.cursorDay < 0 {
		m.cursorDay = 0
	}
	if m.cursorDay >= len(m.columns) {
		m.cursorDay = max(len(m.columns)-1, 0)
	}
	n := len(m.currentColumn().Events)
	if m.cursorIdx >= n {
		m.cursorIdx = max(n-1, 0)
	}
}

func (m *Model) currentColumn() Column {
	if m.cursorDay < 0 || m.cursorDay >= len(m.columns) {
		return Column{}
	}
	return m.columns[m.cursorDay]
}

func (m *Model) currentEvent() *Event {
	col := m.currentColumn()
	if m.cursorIdx < 0 || m.cursorIdx >= len(col.Events) {
		return nil
	}
	return col.Events[m.cursorIdx].Event
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	timeColWidth := 6
	colWidth := (m.width - timeColWidth) / max(len(m.columns), 1)
	if colWidth < 8 {
		colWidth = 8
	}
	laneHeight := m.laneHeight()

	// Header row: day labels plus the display-only timezone.
	sb.WriteString(m.styles.Title.Render("Schedule"))
	if m.cfg.Timezone != "" {
		sb.WriteString("  ")
		sb.WriteString(m.styles.Timezone.Render(m.cfg.Timezone))
	}
	sb.WriteByte('\n')

	sb.WriteString(strings.Repeat(" ", timeColWidth))
	for _, col := range m.columns {
		label := col.Day.Name
		if !m.cfg.Compact && col.Day.FullName != "" && colWidth >= len(col.Day.FullName)+2 {
			label = col.Day.FullName
		}
		sb.WriteString(m.styles.DayHeader.Width(colWidth).Render(ansi.Truncate(label, colWidth, "…")))
	}
	sb.WriteByte('\n')

	// Lane rows: each column rendered as laneHeight lines with events
	// placed by their top percentage.
	lanes := make([][]string, len(m.columns))
	for i := range m.columns {
		lanes[i] = m.renderLane(m.columns[i], i, colWidth, laneHeight)
	}

	for row := 0; row < laneHeight; row++ {
		sb.WriteString(m.styles.TimeColumn.Render(m.gutterLabel(row, laneHeight, timeColWidth)))
		for i := range lanes {
			sb.WriteString(lanes[i][row])
		}
		sb.WriteByte('\n')
	}

	if panel := m.overlapPanel(); panel != "" {
		sb.WriteString(panel)
		sb.WriteByte('\n')
	}
	if menu := m.menuView(); menu != "" {
		sb.WriteString(menu)
		sb.WriteByte('\n')
	}

	help := "←→↑↓ navigate · enter open · m menu · q quit"
	if m.openMenuID != 0 {
		help = "e edit · d delete · esc close"
	}
	sb.WriteString(m.styles.Help.Render(help))

	return sb.String()
}

// laneHeight returns the number of terminal lines one day column spans.
func (m Model) laneHeight() int {
	h := m.height - 6
	if m.cfg.Compact {
		h = m.height - 4
	}
	if h < len(m.cfg.TimeSlots) {
		h = len(m.cfg.TimeSlots)
	}
	return h
}

// gutterLabel renders the time gutter entry for a lane row: slot labels are
// distributed across the lane in window order.
func (m Model) gutterLabel(row, laneHeight, width int) string {
	span := m.cfg.Window.Span()
	if span <= 0 {
		return strings.Repeat(" ", width)
	}
	mins := m.cfg.Window.StartMinutes + row*span/laneHeight
	for _, slot := range m.cfg.TimeSlots {
		slotMins := TimeToMinutes(slot)
		prev := m.cfg.Window.StartMinutes + (row-1)*span/laneHeight
		if slotMins > prev && slotMins <= mins {
			return fmt.Sprintf("%-*s", width, slot)
		}
	}
	return strings.Repeat(" ", width)
}

// renderLane renders one day column as laneHeight fixed-width lines.
func (m Model) renderLane(col Column, dayIdx, colWidth, laneHeight int) []string {
	lines := make([]string, laneHeight)
	empty := m.styles.EmptyCell.Render(fmt.Sprintf("%-*s", colWidth, "·"))
	for i := range lines {
		lines[i] = empty
	}

	for idx, pe := range col.Events {
		top := int(pe.Top / 100 * float64(laneHeight))
		height := int(pe.Height / 100 * float64(laneHeight))
		if height < 1 {
			height = 1
		}
		if top >= laneHeight {
			continue
		}
		if top+height > laneHeight {
			height = laneHeight - top
		}

		style := m.styles.EventCard
		if pe.Event.Color != "" {
			style = style.Background(lipgloss.Color(pe.Event.Color))
		}
		if m.cfg.ShowOverlapWarnings && len(pe.Overlaps) > 0 {
			style = m.styles.EventOverlap
		}
		cursored := dayIdx == m.cursorDay && idx == m.cursorIdx
		if cursored {
			style = m.styles.EventCursor
		}

		label := pe.Event.CourseName
		room := pe.Event.ClassroomName
		times := pe.Event.StartTime + "-" + pe.Event.EndTime
		for line := 0; line < height; line++ {
			text := ""
			switch line {
			case 0:
				text = label
			case 1:
				text = times
			case 2:
				text = room
			}
			if pe.Tier == FontSmall && line > 0 {
				text = ""
			}
			if pe.Tier == FontMedium && line > 1 {
				text = ""
			}
			cell := ansi.Truncate(" "+text, colWidth, "…")
			lines[top+line] = style.Render(fmt.Sprintf("%-*s", colWidth, cell))
		}
	}
	return lines
}

// overlapPanel lists the events overlapping the cursored event.
func (m Model) overlapPanel() string {
	col := m.currentColumn()
	if m.cursorIdx < 0 || m.cursorIdx >= len(col.Events) {
		return ""
	}
	pe := col.Events[m.cursorIdx]
	if !m.cfg.ShowOverlapWarnings || len(pe.Overlaps) == 0 {
		return ""
	}

	var rows []string
	rows = append(rows, m.styles.PanelTitle.Render(
		fmt.Sprintf("%d overlapping", len(pe.Overlaps))))
	for _, o := range pe.Overlaps {
		rows = append(rows, fmt.Sprintf("%s  %s-%s  %s",
			o.CourseName, o.StartTime, o.EndTime, o.ClassroomName))
	}
	return m.styles.Panel.Render(strings.Join(rows, "\n"))
}

// menuView renders the action menu for the open event, if any.
func (m Model) menuView() string {
	if m.openMenuID == 0 {
		return ""
	}
	e := m.currentEvent()
	if e == nil || e.ID != m.openMenuID {
		return ""
	}
	return m.styles.Menu.Render(fmt.Sprintf("%s\n[e] edit  [d] delete", e.CourseName))
}
