package schedule

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EventFile is the on-disk YAML shape consumed by the demo CLI. Days and
// slots are optional and fall back to the package defaults.
type EventFile struct {
	Days      []DayColumn `yaml:"days,omitempty"`
	TimeSlots []string    `yaml:"time_slots,omitempty"`
	Events    []*Event    `yaml:"events"`
}

// ParseEvents decodes a YAML event file.
func ParseEvents(data []byte) (*EventFile, error) {
	var f EventFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing events: %w", err)
	}
	if len(f.Days) == 0 {
		f.Days = DefaultDays()
	}
	if len(f.TimeSlots) == 0 {
		f.TimeSlots = DefaultTimeSlots()
	}
	return &f, nil
}

// LoadEvents reads and decodes a YAML event file from disk.
func LoadEvents(path string) (*EventFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading events file: %w", err)
	}
	return ParseEvents(data)
}
