// Package schedule renders weekly timetable events into a positioned
// day-by-time grid. Layout is a pure function of the event set and the
// visible time window; the package never owns persistence.
package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrEmptyCourseName   = errors.New("course name cannot be empty")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrEndBeforeStart    = errors.New("end time must be after start time")
)

// Event is a single scheduled entry. The host application owns the event
// list and supplies it on every render.
type Event struct {
	ID            int64  `yaml:"id"`
	Day           string `yaml:"day"`
	StartTime     string `yaml:"start_time"` // "HH:MM" or "HH:MM:SS"
	EndTime       string `yaml:"end_time"`
	CourseName    string `yaml:"course_name"`
	ClassroomName string `yaml:"classroom_name"`
	Color         string `yaml:"color,omitempty"`       // optional hex override
	Description   string `yaml:"description,omitempty"` // optional
}

// NewEvent creates an Event with validation. Layout functions themselves stay
// permissive; events built elsewhere bypass these checks and malformed times
// produce whatever the arithmetic yields.
func NewEvent(id int64, day, start, end, course, classroom string) (*Event, error) {
	if course == "" {
		return nil, ErrEmptyCourseName
	}
	if !ValidTime(start) {
		return nil, fmt.Errorf("start time: %w", ErrInvalidTimeFormat)
	}
	if !ValidTime(end) {
		return nil, fmt.Errorf("end time: %w", ErrInvalidTimeFormat)
	}
	if TimeToMinutes(end) <= TimeToMinutes(start) {
		return nil, ErrEndBeforeStart
	}
	return &Event{
		ID:            id,
		Day:           day,
		StartTime:     start,
		EndTime:       end,
		CourseName:    course,
		ClassroomName: classroom,
	}, nil
}

// StartMinutes returns the event start in minutes since midnight.
func (e *Event) StartMinutes() int {
	return TimeToMinutes(e.StartTime)
}

// EndMinutes returns the event end in minutes since midnight.
func (e *Event) EndMinutes() int {
	return TimeToMinutes(e.EndTime)
}

// Duration returns the event length in minutes.
func (e *Event) Duration() int {
	return e.EndMinutes() - e.StartMinutes()
}

// OverlapsWith reports whether two events on the same day intersect in time.
// The test is symmetric and an event never overlaps itself.
func (e *Event) OverlapsWith(other *Event) bool {
	if other == nil || other.ID == e.ID {
		return false
	}
	es, ee := e.StartMinutes(), e.EndMinutes()
	os, oe := other.StartMinutes(), other.EndMinutes()
	// start inside, end inside, or full containment
	if os >= es && os < ee {
		return true
	}
	if oe > es && oe <= ee {
		return true
	}
	return os <= es && oe >= ee
}

// DayColumn describes one column of the grid. Name is the short label used
// for bucketing; FullName is display-only.
type DayColumn struct {
	ID       int64  `yaml:"id"`
	Name     string `yaml:"name"`
	FullName string `yaml:"full_name,omitempty"`
}

// MatchesDay reports whether the event belongs in the column. The column's
// short name is matched case-insensitively as a prefix of the event day, so
// "Saturday" buckets into a column labelled "Sat".
func (c DayColumn) MatchesDay(e *Event) bool {
	if c.Name == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(e.Day), strings.ToLower(c.Name))
}

// DefaultDays returns the default 7-day week.
func DefaultDays() []DayColumn {
	return []DayColumn{
		{ID: 1, Name: "Sat", FullName: "Saturday"},
		{ID: 2, Name: "Sun", FullName: "Sunday"},
		{ID: 3, Name: "Mon", FullName: "Monday"},
		{ID: 4, Name: "Tue", FullName: "Tuesday"},
		{ID: 5, Name: "Wed", FullName: "Wednesday"},
		{ID: 6, Name: "Thu", FullName: "Thursday"},
		{ID: 7, Name: "Fri", FullName: "Friday"},
	}
}

// HourlySlots returns "HH:MM" gridline labels from start to end inclusive,
// one per hour.
func HourlySlots(start, end string) []string {
	from := TimeToMinutes(start)
	to := TimeToMinutes(end)
	var slots []string
	for m := from; m <= to; m += 60 {
		slots = append(slots, MinutesToTime(m))
	}
	return slots
}

// DefaultTimeSlots returns hourly gridlines 07:00 through 16:00.
func DefaultTimeSlots() []string {
	return HourlySlots("07:00", "16:00")
}
