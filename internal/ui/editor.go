package ui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/St0ckfish/stockfish-components/richtext"
)

func (a *App) editorCmd() *cobra.Command {
	var (
		value       string
		valueIn     string
		placeholder string
	)

	cmd := &cobra.Command{
		Use:   "editor",
		Short: "Open the rich-text editor",
		Long: `Open the interactive rich-text editor.

The final document is printed as HTML on exit, so the output can be
piped into other tools or stored by a host application.`,
		Example: `  stockfish editor
  stockfish editor --value "<p>draft</p>"
  stockfish editor --file draft.html > edited.html`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if valueIn != "" {
				data, err := os.ReadFile(valueIn)
				if err != nil {
					return fmt.Errorf("reading input file: %w", err)
				}
				value = string(data)
			}

			if placeholder == "" {
				placeholder = a.config.Editor.Placeholder
			}

			model := richtext.NewModel(richtext.ModelOptions{
				Surface: richtext.Options{
					Value:        value,
					HistoryLimit: a.config.Editor.HistoryLimit,
				},
				Formats:     a.config.EditorFormats(),
				Placeholder: placeholder,
				ShowToolbar: a.config.Editor.ShowToolbar,
				Autofocus:   a.config.Editor.Autofocus,
				Theme:       a.config.ThemeMode(),
			})

			p := tea.NewProgram(model, tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running editor: %w", err)
			}

			if m, ok := final.(richtext.Model); ok {
				fmt.Println(m.Value())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Initial document markup")
	cmd.Flags().StringVar(&valueIn, "file", "", "Read the initial document from a file")
	cmd.Flags().StringVar(&placeholder, "placeholder", "", "Placeholder text for an empty document")

	return cmd
}
