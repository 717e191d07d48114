package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/junwei/citegrab/internal/citation"
	"github.com/junwei/citegrab/internal/storage"
)

var (
	listType  string
	listLimit int
)

func init() {
	listCmd.Flags().StringVar(&listType, "type", "", "Only list citations of this document type")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List extracted citations",
	Long: `List citations recorded in the catalog, newest first.

Examples:
  cg list
  cg list --type journal --limit 20`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	if listType != "" && !citation.Type(listType).Valid() {
		exitWithError(ExitError, "invalid document type: %s", listType)
	}

	cat := mustOpenCatalog()
	defer cat.Close()

	entries, err := cat.List(listType, listLimit)
	if err != nil {
		exitWithError(ExitError, "listing citations: %v", err)
	}

	if humanOutput {
		if len(entries) == 0 {
			fmt.Println("No citations in catalog")
			return nil
		}
		fmt.Printf("%d citations:\n\n", len(entries))
		for _, e := range entries {
			title := truncateString(e.Title, ListTitleMaxLen)
			fmt.Printf("  %-24s %-12s %s\n", e.ID, e.Type, title)
		}
	} else {
		if entries == nil {
			entries = []storage.Entry{}
		}
		outputJSON(entries)
	}

	return nil
}
