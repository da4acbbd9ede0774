package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taml/internal/diagfmt"
	"taml/internal/fixture"
	"taml/internal/model"
)

const defaultExample = "train-gate"

// exampleDoc builds one of the bundled example documents.
func exampleDoc(name string) (*model.Document, error) {
	switch name {
	case "train-gate":
		return fixture.TrainGate(), nil
	case "handshake":
		return fixture.SenderReceiver(), nil
	default:
		return nil, fmt.Errorf("unknown example %q (expected train-gate or handshake)", name)
	}
}

// findChart resolves the chart template to explore: the named one, or
// the first chart in declaration order when name is empty.
func findChart(doc *model.Document, name string) (model.TemplateID, error) {
	ids := make([]model.TemplateID, 0, len(doc.Templates())+len(doc.DynamicTemplates()))
	ids = append(ids, doc.Templates()...)
	ids = append(ids, doc.DynamicTemplates()...)

	for _, id := range ids {
		t := doc.Template(id)
		if name == "" {
			if !t.IsTA {
				return id, nil
			}
			continue
		}
		if doc.Table().Name(t.Sym) == name {
			if t.IsTA {
				return 0, fmt.Errorf("%s is a timed automaton, not a chart", name)
			}
			return id, nil
		}
	}

	if name != "" {
		return 0, fmt.Errorf("no template named %s", name)
	}
	return 0, fmt.Errorf("document has no chart template")
}

// printDiagnostics renders the document's diagnostics to stderr,
// honoring the color and max-diagnostics root flags.
func printDiagnostics(cmd *cobra.Command, doc *model.Document) error {
	if !doc.HasErrors() && !doc.HasWarnings() {
		return nil
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))

	doc.Diagnostics().Sort()
	diagfmt.Pretty(os.Stderr, doc.Diagnostics(), doc, diagfmt.PrettyOpts{
		Color:       useColor,
		Max:         maxDiagnostics,
		ShowContext: true,
	})
	return nil
}

// silentExit makes the command fail without extra cobra output, used
// when diagnostics were already printed.
func silentExit(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("")
}
