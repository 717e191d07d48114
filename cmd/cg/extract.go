package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/junwei/citegrab/internal/citation"
	"github.com/junwei/citegrab/internal/config"
	"github.com/junwei/citegrab/internal/export"
	"github.com/junwei/citegrab/internal/extract"
	"github.com/junwei/citegrab/internal/llm"
	"github.com/junwei/citegrab/internal/ocr"
	"github.com/junwei/citegrab/internal/pagerange"
	"github.com/junwei/citegrab/internal/pipeline"
)

var (
	extractType      string
	extractPages     string
	extractFormat    string
	extractOutput    string
	extractLang      string
	extractDirection string
	extractModel     string
	extractNoCatalog bool
	extractNoOCR     bool
)

func init() {
	extractCmd.Flags().StringVar(&extractType, "type", "", "Override document type (book, thesis, journal, bookchapter)")
	extractCmd.Flags().StringVar(&extractPages, "pages", "", "Pages to extract from, e.g. \"1-5,-3\" (-N counts from the end)")
	extractCmd.Flags().StringVar(&extractFormat, "format", "json", "Output format (json, yaml, bibtex)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Directory to write the citation file to")
	extractCmd.Flags().StringVar(&extractLang, "lang", "", "OCR language hint, e.g. zh-cn, ja, de")
	extractCmd.Flags().StringVar(&extractDirection, "direction", "auto", "OCR text direction (horizontal, vertical, auto)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "Ollama model to use for extraction")
	extractCmd.Flags().BoolVar(&extractNoCatalog, "no-catalog", false, "Do not record the result in the catalog")
	extractCmd.Flags().BoolVar(&extractNoOCR, "no-ocr", false, "Never run OCR, even for image-only PDFs")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf|url>",
	Short: "Extract a citation record from a PDF",
	Long: `Extract a citation record from a PDF document, given as a local
file or an http(s) URL.

The document is classified by page count and front-matter keywords,
OCR'd if it has no text layer, and its citation fields are extracted
page by page until the essential fields for its type are filled.

Examples:
  cg extract paper.pdf
  cg extract book.pdf --type book --pages 1-8,-4
  cg extract scan.pdf --lang zh-cn --direction vertical --format bibtex`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

// ExtractResponse is the JSON output of the extract command.
type ExtractResponse struct {
	Record         citation.Record `json:"record"`
	DocumentType   string          `json:"document_type"`
	ClassifiedBy   string          `json:"classified_by"`
	Complete       bool            `json:"complete"`
	PagesProcessed int             `json:"pages_processed"`
	OCRApplied     bool            `json:"ocr_applied"`
	OutputPath     string          `json:"output_path,omitempty"`
}

// extractExitCode maps pipeline failures to exit codes: data errors
// (empty range resolution, empty extraction) are distinguished from
// general failures.
func extractExitCode(err error) int {
	if errors.Is(err, extract.ErrExtractionEmpty) || errors.Is(err, pagerange.ErrEmptyResolution) {
		return ExitExtractionError
	}
	return ExitError
}

func runExtract(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg := mustLoadConfig()

	override := citation.Type(extractType)
	if extractType != "" && !override.Valid() {
		exitWithError(ExitError, "invalid document type: %s (want book, thesis, journal, or bookchapter)", extractType)
	}

	format := export.Format(extractFormat)
	if !format.Valid() {
		exitWithError(ExitError, "invalid output format: %s (want json, yaml, or bibtex)", extractFormat)
	}

	direction := ocr.Direction(extractDirection)
	if !direction.Valid() {
		exitWithError(ExitError, "invalid direction: %s (want horizontal, vertical, or auto)", extractDirection)
	}

	pageSpec := extractPages
	if pageSpec == "" {
		pageSpec = cfg.PageRangeOrDefault()
	}

	var clientOpts []llm.ClientOption
	if cfg.OllamaURL != "" {
		clientOpts = append(clientOpts, llm.WithBaseURL(cfg.OllamaURL))
	}
	model := extractModel
	if model == "" {
		model = cfg.Model
	}
	if model != "" {
		clientOpts = append(clientOpts, llm.WithModel(model))
	}
	client := llm.NewClient(clientOpts...)

	engine := ocr.NewEngine(cfg.OCRBinary)

	p := pipeline.New(client, engine, pipeline.Options{
		PageRange:       pageSpec,
		TypeOverride:    override,
		Language:        extractLang,
		Direction:       direction,
		SkipOCR:         extractNoOCR,
		UnknownSentinel: cfg.UnknownSentinel,
	})

	res, err := p.Run(context.Background(), args[0])
	if err != nil {
		exitWithError(extractExitCode(err), "extracting %s: %v", args[0], err)
	}

	var outputPath string
	outDir := extractOutput
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if outDir != "" {
		outputPath, err = export.Write(res.Record, config.ExpandTilde(outDir), format)
		if err != nil {
			exitWithError(ExitError, "writing citation: %v", err)
		}
	}

	if !extractNoCatalog {
		cat := mustOpenCatalog()
		defer cat.Close()
		if err := cat.Put(res.Record, res.Type); err != nil {
			exitWithError(ExitError, "recording citation: %v", err)
		}
	}

	if humanOutput {
		printRecordDetail(res.Record)
		fmt.Println()
		fmt.Printf("Classified as %s (%s), processed %d pages", res.Type, res.Rule, res.PagesProcessed)
		if res.OCRApplied {
			fmt.Print(", OCR applied")
		}
		fmt.Println()
		if !res.Complete {
			fmt.Println("Note: some essential fields are missing")
		}
		if outputPath != "" {
			fmt.Printf("Wrote %s\n", outputPath)
		}
	} else {
		outputJSON(ExtractResponse{
			Record:         res.Record,
			DocumentType:   string(res.Type),
			ClassifiedBy:   res.Rule,
			Complete:       res.Complete,
			PagesProcessed: res.PagesProcessed,
			OCRApplied:     res.OCRApplied,
			OutputPath:     outputPath,
		})
	}

	return nil
}
