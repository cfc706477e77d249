package schedule

// Minimum visual height floors so short events stay visible and clickable.
const (
	MinHeightPercent        = 10.0
	MinHeightPercentCompact = 8.0
)

// FontTier sizes an event label by its duration.
type FontTier int

const (
	FontSmall FontTier = iota
	FontMedium
	FontLarge
)

// Window is the visible time range of the grid, in minutes since midnight.
type Window struct {
	StartMinutes int
	EndMinutes   int
}

// NewWindow builds a Window from "HH:MM" bounds.
func NewWindow(start, end string) Window {
	return Window{
		StartMinutes: TimeToMinutes(start),
		EndMinutes:   TimeToMinutes(end),
	}
}

// DefaultWindow is 07:00 through 16:00.
func DefaultWindow() Window {
	return NewWindow("07:00", "16:00")
}

// Span returns the window length in minutes.
func (w Window) Span() int {
	return w.EndMinutes - w.StartMinutes
}

// Contains reports whether the event lies fully inside the window, bounds
// inclusive. Events partially outside are dropped from rendering, not
// clipped.
func (w Window) Contains(e *Event) bool {
	s, end := e.StartMinutes(), e.EndMinutes()
	return s >= w.StartMinutes && s <= w.EndMinutes &&
		end >= w.StartMinutes && end <= w.EndMinutes
}

// TopPercent maps the event start onto the window as a percentage from the
// top. Out-of-range or malformed inputs produce whatever the arithmetic
// yields; callers that need validation use NewEvent.
func (w Window) TopPercent(e *Event) float64 {
	span := w.Span()
	if span == 0 {
		return 0
	}
	return float64(e.StartMinutes()-w.StartMinutes) / float64(span) * 100
}

// HeightPercent maps the event duration onto the window as a percentage,
// floored to the compact or normal minimum height.
func (w Window) HeightPercent(e *Event, compact bool) float64 {
	span := w.Span()
	if span == 0 {
		return 0
	}
	h := float64(e.Duration()) / float64(span) * 100
	floor := MinHeightPercent
	if compact {
		floor = MinHeightPercentCompact
	}
	if h < floor {
		return floor
	}
	return h
}

// FontTierFor picks the label size tier from the event duration in minutes.
func FontTierFor(durationMinutes int) FontTier {
	switch {
	case durationMinutes >= 60:
		return FontLarge
	case durationMinutes >= 40:
		return FontMedium
	default:
		return FontSmall
	}
}

// OverlapSet returns the events in sameDay whose intervals intersect e,
// excluding e itself. O(n) per call, O(n^2) per day; the event sets here are
// tens of entries, not thousands.
func OverlapSet(e *Event, sameDay []*Event) []*Event {
	var out []*Event
	for _, other := range sameDay {
		if e.OverlapsWith(other) {
			out = append(out, other)
		}
	}
	return out
}

// PositionedEvent is an event with its computed grid placement.
type PositionedEvent struct {
	Event    *Event
	Top      float64 // percent from window top
	Height   float64 // percent of window span
	Tier     FontTier
	Overlaps []*Event // other visible same-day events intersecting this one
}

// Column is one laid-out day column.
type Column struct {
	Day    DayColumn
	Events []PositionedEvent
}

// Layout buckets events into day columns, drops events outside the window,
// computes placement percentages and per-event overlap sets. Input order is
// preserved within a column.
func Layout(events []*Event, days []DayColumn, window Window, compact bool) []Column {
	columns := make([]Column, 0, len(days))
	for _, day := range days {
		var visible []*Event
		for _, e := range events {
			if day.MatchesDay(e) && window.Contains(e) {
				visible = append(visible, e)
			}
		}

		positioned := make([]PositionedEvent, 0, len(visible))
		for _, e := range visible {
			positioned = append(positioned, PositionedEvent{
				Event:    e,
				Top:      window.TopPercent(e),
				Height:   window.HeightPercent(e, compact),
				Tier:     FontTierFor(e.Duration()),
				Overlaps: OverlapSet(e, visible),
			})
		}
		columns = append(columns, Column{Day: day, Events: positioned})
	}
	return columns
}
