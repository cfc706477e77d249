package schedule

import (
	"errors"
	"testing"
)

func TestNewEvent(t *testing.T) {
	tests := []struct {
		name       string
		day        string
		start, end string
		course     string
		wantErr    error
	}{
		{name: "valid", day: "Mon", start: "08:00", end: "09:00", course: "Algebra"},
		{name: "valid with seconds", day: "Mon", start: "08:00:00", end: "09:30:00", course: "Algebra"},
		{name: "empty course", day: "Mon", start: "08:00", end: "09:00", course: "", wantErr: ErrEmptyCourseName},
		{name: "bad start", day: "Mon", start: "8am", end: "09:00", course: "Algebra", wantErr: ErrInvalidTimeFormat},
		{name: "bad end", day: "Mon", start: "08:00", end: "9", course: "Algebra", wantErr: ErrInvalidTimeFormat},
		{name: "end before start", day: "Mon", start: "09:00", end: "08:00", course: "Algebra", wantErr: ErrEndBeforeStart},
		{name: "zero duration", day: "Mon", start: "09:00", end: "09:00", course: "Algebra", wantErr: ErrEndBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEvent(1, tt.day, tt.start, tt.end, tt.course, "101")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if e.CourseName != tt.course {
				t.Errorf("CourseName = %q", e.CourseName)
			}
		})
	}
}

func TestEventDuration(t *testing.T) {
	e := evt(1, "Mon", "08:15", "09:45")
	if got := e.Duration(); got != 90 {
		t.Errorf("Duration = %d, want 90", got)
	}
}

func TestParseEvents(t *testing.T) {
	data := []byte(`
events:
  - id: 1
    day: Saturday
    start_time: "08:00"
    end_time: "09:00"
    course_name: Algebra
    classroom_name: "101"
  - id: 2
    day: Sat
    start_time: "08:30"
    end_time: "09:30"
    course_name: Physics
    classroom_name: Lab A
    color: "#f38ba8"
`)

	f, err := ParseEvents(data)
	if err != nil {
		t.Fatalf("ParseEvents: %v", err)
	}
	if len(f.Events) != 2 {
		t.Fatalf("parsed %d events, want 2", len(f.Events))
	}
	if f.Events[0].CourseName != "Algebra" {
		t.Errorf("event 0 course = %q", f.Events[0].CourseName)
	}
	if f.Events[1].Color != "#f38ba8" {
		t.Errorf("event 1 color = %q", f.Events[1].Color)
	}
	if len(f.Days) != 7 {
		t.Errorf("days defaulted to %d entries, want 7", len(f.Days))
	}
	if len(f.TimeSlots) != 10 {
		t.Errorf("time slots defaulted to %d entries, want 10", len(f.TimeSlots))
	}
}

func TestParseEventsCustomDays(t *testing.T) {
	data := []byte(`
days:
  - id: 1
    name: Mon
  - id: 2
    name: Tue
time_slots: ["09:00", "10:00", "11:00"]
events: []
`)

	f, err := ParseEvents(data)
	if err != nil {
		t.Fatalf("ParseEvents: %v", err)
	}
	if len(f.Days) != 2 {
		t.Errorf("days = %d, want 2", len(f.Days))
	}
	if len(f.TimeSlots) != 3 {
		t.Errorf("time slots = %d, want 3", len(f.TimeSlots))
	}
}

func TestParseEventsInvalid(t *testing.T) {
	if _, err := ParseEvents([]byte("events: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
