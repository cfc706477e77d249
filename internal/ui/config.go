package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/St0ckfish/stockfish-components/internal/config"
	"github.com/St0ckfish/stockfish-components/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  stockfish config
  stockfish config show
  stockfish config init`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			printConfig(cfg)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		RunE: func(_ *cobra.Command, _ []string) error {
			configPath := config.DefaultConfigPath()
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("config file already exists: %s", configPath)
			}
			cfg := config.Default()
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Printf("Created %s\n", configPath)
			return nil
		},
	})

	return cmd
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)

	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	cfg.UI.Theme = promptTheme(reader, cfg.UI.Theme)
	cfg.Editor.Placeholder = promptValue(reader, "Editor placeholder", cfg.Editor.Placeholder)
	cfg.Schedule.WindowStart = promptValue(reader, "Schedule window start", cfg.Schedule.WindowStart)
	cfg.Schedule.WindowEnd = promptValue(reader, "Schedule window end", cfg.Schedule.WindowEnd)
	cfg.Schedule.Days = promptSlice(reader, "Days (comma-separated)", cfg.Schedule.Days)
	cfg.Schedule.Timezone = promptValue(reader, "Timezone label (empty to hide)", cfg.Schedule.Timezone)
	cfg.Schedule.EventsFile = promptValue(reader, "Events file", cfg.Schedule.EventsFile)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[ui]")
	fmt.Printf("  theme            = %s\n", cfg.UI.Theme)
	fmt.Println("\n[editor]")
	fmt.Printf("  placeholder      = %s\n", cfg.Editor.Placeholder)
	fmt.Printf("  history_limit    = %d\n", cfg.Editor.HistoryLimit)
	fmt.Printf("  autofocus        = %t\n", cfg.Editor.Autofocus)
	fmt.Printf("  show_toolbar     = %t\n", cfg.Editor.ShowToolbar)
	fmt.Println("\n[schedule]")
	fmt.Printf("  days             = %s\n", strings.Join(cfg.Schedule.Days, ", "))
	fmt.Printf("  window_start     = %s\n", cfg.Schedule.WindowStart)
	fmt.Printf("  window_end       = %s\n", cfg.Schedule.WindowEnd)
	if cfg.Schedule.Timezone != "" {
		fmt.Printf("  timezone         = %s\n", cfg.Schedule.Timezone)
	}
	fmt.Printf("  events_file      = %s\n", cfg.Schedule.EventsFile)
	fmt.Printf("  overlap_warnings = %t\n", cfg.Schedule.OverlapWarnings)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptSlice(reader *bufio.Reader, label string, current []string) []string {
	currentStr := strings.Join(current, ", ")
	fmt.Printf("  %s [%s]: ", label, currentStr)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func promptTheme(reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ") + ", auto"
	label := fmt.Sprintf("Theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if theme.ValidMode(value) {
			return value
		}
		fmt.Printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}
