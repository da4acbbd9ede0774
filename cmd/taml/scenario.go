package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taml/internal/diagfmt"
	"taml/internal/driver"
	"taml/internal/observ"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario [example]",
	Short: "Explore the cuts of a scenario chart",
	Long:  `Scenario enumerates the reachable cuts of a live-sequence chart from the partial order over its simregions and marks the prechart boundary`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScenario,
}

func init() {
	scenarioCmd.Flags().String("template", "", "chart template to explore (default: first chart)")
	scenarioCmd.Flags().Int("max-cuts", 0, "cut limit before the search truncates (0=default)")
	scenarioCmd.Flags().Bool("no-cache", false, "skip the exploration disk cache")
}

func runScenario(cmd *cobra.Command, args []string) error {
	name := "handshake"
	if len(args) == 1 {
		name = args[0]
	}

	templateName, err := cmd.Flags().GetString("template")
	if err != nil {
		return fmt.Errorf("failed to get template flag: %w", err)
	}
	maxCuts, err := cmd.Flags().GetInt("max-cuts")
	if err != nil {
		return fmt.Errorf("failed to get max-cuts flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	doc, err := exampleDoc(name)
	if err != nil {
		return err
	}

	id, err := findChart(doc, templateName)
	if err != nil {
		return err
	}

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}

	rep, err := driver.Explore(cmd.Context(), doc, id, driver.ExploreOptions{
		MaxCuts: maxCuts,
		NoCache: noCache,
		Timer:   timer,
	})
	if err != nil {
		return fmt.Errorf("exploration failed: %w", err)
	}

	if err := printDiagnostics(cmd, doc); err != nil {
		return err
	}

	if quiet {
		fmt.Fprintf(os.Stdout, "%s: %d cuts\n", rep.Template, len(rep.Cuts))
	} else {
		diagfmt.Cuts(os.Stdout, rep)
	}

	if showTimings && timer != nil {
		fmt.Fprint(os.Stdout, timer.Summary())
	}

	if doc.HasErrors() {
		return silentExit(cmd)
	}
	return nil
}
