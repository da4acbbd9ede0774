package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taml/internal/diagfmt"
	"taml/internal/driver"
	"taml/internal/observ"
)

var demoCmd = &cobra.Command{
	Use:   "demo [example]",
	Short: "Build an example document and show its structure",
	Long:  `Demo builds one of the bundled example documents (train-gate or handshake), runs the parallel stats pass and prints per-template tables`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	demoCmd.Flags().Int("jobs", 0, "max parallel workers for the stats pass (0=auto)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	name := defaultExample
	if len(args) == 1 {
		name = args[0]
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
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

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}

	res, err := driver.Stats(cmd.Context(), doc, driver.StatsOptions{Jobs: jobs, Timer: timer})
	if err != nil {
		return fmt.Errorf("stats pass failed: %w", err)
	}

	if err := printDiagnostics(cmd, doc); err != nil {
		return err
	}

	switch format {
	case "pretty":
		if !quiet {
			diagfmt.StatsTable(os.Stdout, res)
		}
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(res); err != nil {
			return fmt.Errorf("failed to encode stats: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if showTimings && timer != nil {
		fmt.Fprint(os.Stdout, timer.Summary())
	}

	if doc.HasErrors() {
		return silentExit(cmd)
	}
	return nil
}
