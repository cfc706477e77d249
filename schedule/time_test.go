package schedule

import "testing"

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "7am", input: "07:00", want: 420},
		{name: "8am", input: "08:00", want: 480},
		{name: "4pm", input: "16:00", want: 960},
		{name: "with minutes", input: "08:30", want: 510},
		{name: "seconds ignored", input: "08:30:45", want: 510},
		{name: "invalid short", input: "8:00", want: 0},
		{name: "empty", input: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeToMinutes(tt.input)
			if got != tt.want {
				t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  string
	}{
		{name: "midnight", input: 0, want: "00:00"},
		{name: "7am", input: 420, want: "07:00"},
		{name: "half past", input: 510, want: "08:30"},
		{name: "negative clamps to zero", input: -10, want: "00:00"},
		{name: "over 24h clamps", input: 1500, want: "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinutesToTime(tt.input)
			if got != tt.want {
				t.Errorf("MinutesToTime(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidTime(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"07:00", true},
		{"23:59", true},
		{"07:00:30", true},
		{"24:00", false},
		{"07:60", false},
		{"7:00", false},
		{"07-00", false},
		{"07:00:3", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidTime(tt.input); got != tt.want {
				t.Errorf("ValidTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHourlySlots(t *testing.T) {
	got := HourlySlots("07:00", "10:00")
	want := []string{"07:00", "08:00", "09:00", "10:00"}
	if len(got) != len(want) {
		t.Fatalf("HourlySlots = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultTimeSlots(t *testing.T) {
	slots := DefaultTimeSlots()
	if len(slots) != 10 {
		t.Fatalf("DefaultTimeSlots has %d entries, want 10", len(slots))
	}
	if slots[0] != "07:00" || slots[9] != "16:00" {
		t.Errorf("DefaultTimeSlots bounds = %q..%q, want 07:00..16:00", slots[0], slots[9])
	}
}
