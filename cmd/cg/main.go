// Package main provides the cg CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cg",
	Short: "Citation extraction for scanned and born-digital PDFs",
	Long: `cg extracts bibliographic citations from PDF documents.

It classifies each document as a book, thesis, journal article, or book
chapter, runs OCR when the PDF carries no text layer, and asks a local
LLM to pull the citation fields from the front and back matter. Results
are written as CSL-style JSON records and kept in a local catalog.

All commands output JSON by default for easy integration with other
tools; pass --human for readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
