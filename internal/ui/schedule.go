package ui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/St0ckfish/stockfish-components/schedule"
)

func (a *App) scheduleCmd() *cobra.Command {
	var eventsFile string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Open the weekly schedule grid",
		Long: `Open the interactive weekly timetable grid.

Events are read from a YAML file. Overlapping events are highlighted
and listed in a warning panel.`,
		Example: `  stockfish schedule
  stockfish schedule --file classes.yaml
  stockfish schedule list`,
		RunE: func(_ *cobra.Command, _ []string) error {
			file, err := a.loadEvents(eventsFile)
			if err != nil {
				return err
			}

			gridCfg := a.config.GridConfig()
			if len(file.Days) > 0 {
				gridCfg.Days = file.Days
			}
			if len(file.TimeSlots) > 0 {
				gridCfg.TimeSlots = file.TimeSlots
			}

			host := newScheduleHost(file.Events, gridCfg)
			p := tea.NewProgram(host, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running schedule: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&eventsFile, "file", "", "Events YAML file (defaults to the configured path)")

	cmd.AddCommand(a.scheduleListCmd())
	return cmd
}

// loadEvents reads the events file, treating a missing default file as an
// empty schedule rather than an error.
func (a *App) loadEvents(path string) (*schedule.EventFile, error) {
	explicit := path != ""
	if !explicit {
		path = a.config.Schedule.EventsFile
	}

	file, err := schedule.LoadEvents(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &schedule.EventFile{
				Days:      a.config.GridConfig().Days,
				TimeSlots: a.config.GridConfig().TimeSlots,
			}, nil
		}
		return nil, err
	}
	return file, nil
}

// scheduleHost wraps the grid widget and owns the authoritative event list.
// Grid callbacks mutate the host, which rebuilds the grid on the next update.
type scheduleHost struct {
	grid    tea.Model
	events  []*schedule.Event
	cfg     schedule.Config
	status  string
	deleted int64
}

func newScheduleHost(events []*schedule.Event, cfg schedule.Config) *scheduleHost {
	h := &scheduleHost{events: events, cfg: cfg}
	h.grid = h.newGrid()
	return h
}

func (h *scheduleHost) newGrid() tea.Model {
	return schedule.New(h.events, h.cfg, schedule.Callbacks{
		OnClick: func(e *schedule.Event) {
			h.status = fmt.Sprintf("%s  %s-%s  %s",
				e.CourseName, e.StartTime, e.EndTime, e.ClassroomName)
		},
		OnEdit: func(e *schedule.Event) {
			h.status = fmt.Sprintf("edit #%d %s", e.ID, e.CourseName)
		},
		OnDelete: func(e *schedule.Event) {
			h.deleted = e.ID
		},
	})
}

func (h *scheduleHost) Init() tea.Cmd { return h.grid.Init() }

func (h *scheduleHost) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	grid, cmd := h.grid.Update(msg)
	h.grid = grid

	if h.deleted != 0 {
		kept := h.events[:0]
		for _, e := range h.events {
			if e.ID != h.deleted {
				kept = append(kept, e)
			}
		}
		h.events = kept
		h.status = fmt.Sprintf("deleted #%d", h.deleted)
		h.deleted = 0
		h.grid = h.newGrid()
	}
	return h, cmd
}

func (h *scheduleHost) View() string {
	view := h.grid.View()
	if h.status != "" {
		view += "\n" + h.status
	}
	return view
}

func (a *App) scheduleListCmd() *cobra.Command {
	var eventsFile string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events without opening the grid",
		RunE: func(_ *cobra.Command, _ []string) error {
			file, err := a.loadEvents(eventsFile)
			if err != nil {
				return err
			}
			if len(file.Events) == 0 {
				fmt.Println("No events found.")
				return nil
			}

			gridCfg := a.config.GridConfig()
			if len(file.Days) > 0 {
				gridCfg.Days = file.Days
			}
			columns := schedule.Layout(file.Events, gridCfg.Days, gridCfg.Window, gridCfg.Compact)

			width := termWidth()
			for _, col := range columns {
				if len(col.Events) == 0 {
					continue
				}
				fmt.Println(formatHeader(col.Day.FullName))
				for _, pe := range col.Events {
					line := fmt.Sprintf("  %s  %s  %s",
						formatTime(pe.Event.StartTime+"-"+pe.Event.EndTime),
						formatCourse(pe.Event.CourseName),
						formatMuted(pe.Event.ClassroomName),
					)
					fmt.Println(ansi.Truncate(line, width, "…"))
					if len(pe.Overlaps) > 0 {
						fmt.Println(formatWarning(fmt.Sprintf("    overlaps %d other event(s)", len(pe.Overlaps))))
					}
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&eventsFile, "file", "", "Events YAML file (defaults to the configured path)")
	return cmd
}
