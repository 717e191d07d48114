package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/junwei/citegrab/internal/export"
)

var getFormat string

func init() {
	getCmd.Flags().StringVar(&getFormat, "format", "json", "Output format (json, yaml, bibtex)")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a single citation by ID",
	Long: `Get a single citation record from the catalog by its ID.

Examples:
  cg get womack-2010-quantum
  cg get womack-2010-quantum --format bibtex`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	format := export.Format(getFormat)
	if !format.Valid() {
		exitWithError(ExitError, "invalid output format: %s (want json, yaml, or bibtex)", getFormat)
	}

	cat := mustOpenCatalog()
	defer cat.Close()

	id := args[0]
	entry, err := cat.Get(id)
	if err != nil {
		exitWithError(ExitError, "getting citation: %v", err)
	}
	if entry == nil {
		exitWithError(ExitError, "citation not found: %s", id)
	}

	if humanOutput {
		printRecordDetail(entry.Record)
		return nil
	}

	if format == export.JSON {
		return outputJSON(entry.Record)
	}

	data, err := export.Encode(entry.Record, format)
	if err != nil {
		exitWithError(ExitError, "encoding citation: %v", err)
	}
	fmt.Print(string(data))
	return nil
}
