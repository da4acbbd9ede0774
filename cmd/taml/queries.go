package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taml/internal/queryfile"
)

var queriesCmd = &cobra.Command{
	Use:   "queries [example]",
	Short: "List or export the verification queries of a document",
	Long:  `Queries prints the query list of an example document as TOML, writes it to a file, or parses an external query file and reports what it holds`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQueries,
}

func init() {
	queriesCmd.Flags().String("write", "", "write the query list to a TOML file")
	queriesCmd.Flags().String("check", "", "parse a query file instead of using an example")
}

func runQueries(cmd *cobra.Command, args []string) error {
	name := defaultExample
	if len(args) == 1 {
		name = args[0]
	}

	writePath, err := cmd.Flags().GetString("write")
	if err != nil {
		return fmt.Errorf("failed to get write flag: %w", err)
	}
	checkPath, err := cmd.Flags().GetString("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	if checkPath != "" {
		queries, err := queryfile.Load(checkPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s: %d queries\n", checkPath, len(queries))
		for i := range queries {
			q := &queries[i]
			fmt.Fprintf(os.Stdout, "  %s  [%s]\n", q.Formula, q.Expectation.Status)
		}
		return nil
	}

	doc, err := exampleDoc(name)
	if err != nil {
		return err
	}
	queries := doc.Queries()

	if writePath != "" {
		if err := queryfile.Save(writePath, queries); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(os.Stdout, "wrote %d queries to %s\n", len(queries), writePath)
		}
		return nil
	}

	data, err := queryfile.Encode(queries)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
