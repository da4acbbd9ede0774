package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"taml/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [example]",
	Short: "Browse an example document interactively",
	Long:  `Browse opens a terminal UI listing every template of the document; enter shows locations and edges for automata or lines and events for charts`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	name := defaultExample
	if len(args) == 1 {
		name = args[0]
	}

	doc, err := exampleDoc(name)
	if err != nil {
		return err
	}

	if !isTerminal(os.Stdout) {
		return fmt.Errorf("browse needs a terminal (stdout is not a tty)")
	}

	program := tea.NewProgram(ui.NewBrowseModel(doc), tea.WithOutput(os.Stdout), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browse UI failed: %w", err)
	}
	return nil
}
