package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/junwei/citegrab/internal/config"
	"github.com/junwei/citegrab/internal/pagerange"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  cg config                       # Show all config
  cg config model                 # Get specific value
  cg config model qwen2.5         # Set value

Keys:
  model       Ollama model used for extraction
  ollama-url  Base URL of the Ollama server
  page-range  Default page range, e.g. "1-5,-3"
  output-dir  Default directory for exported citation files
  ocr-binary  Path to the ocrmypdf executable`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("model:      %s\n", cfg.Model)
			fmt.Printf("ollama-url: %s\n", cfg.OllamaURL)
			fmt.Printf("page-range: %s\n", cfg.PageRangeOrDefault())
			fmt.Printf("output-dir: %s\n", cfg.OutputDir)
			fmt.Printf("ocr-binary: %s\n", cfg.OCRBinary)
		} else {
			outputJSON(cfg)
		}
		return nil
	}

	key := normalizeKey(args[0])

	// One arg: get specific value
	if len(args) == 1 {
		value, ok := configValue(cfg, key)
		if !ok {
			exitWithError(ExitError, "unknown configuration key: %s", args[0])
		}
		if humanOutput {
			fmt.Println(value)
		} else {
			outputJSON(map[string]string{strings.ReplaceAll(key, "-", "_"): value})
		}
		return nil
	}

	// Two args: set value
	value := args[1]
	switch key {
	case "model":
		cfg.Model = value
	case "ollama-url":
		cfg.OllamaURL = value
	case "page-range":
		// Resolve against a nominal document to catch malformed specs early.
		if _, err := pagerange.Resolve(value, 100); err != nil {
			exitWithError(ExitConfigError, "invalid page range %q: %v", value, err)
		}
		cfg.PageRange = value
	case "output-dir":
		cfg.OutputDir = config.ExpandTilde(value)
	case "ocr-binary":
		cfg.OCRBinary = value
	default:
		exitWithError(ExitError, "unknown configuration key: %s", args[0])
	}

	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated %s to %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
	}

	return nil
}

func configValue(cfg *config.Config, key string) (string, bool) {
	switch key {
	case "model":
		return cfg.Model, true
	case "ollama-url":
		return cfg.OllamaURL, true
	case "page-range":
		return cfg.PageRangeOrDefault(), true
	case "output-dir":
		return cfg.OutputDir, true
	case "ocr-binary":
		return cfg.OCRBinary, true
	}
	return "", false
}

// normalizeKey converts key formats (page_range, PageRange) to kebab-case.
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
