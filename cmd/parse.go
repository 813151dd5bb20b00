package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/31b4/labparse/internal/ingest"
)

var (
	langFlag        []string
	dpiFlag         int
	timeoutFlag     int
	forceOCRFlag    bool
	includeTextFlag bool
	verboseFlag     bool
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <report.pdf>",
	Short: "Parse a lab report PDF into candidate biomarker results",
	Long: `Parse extracts text from a lab report (native text layer first, OCR
fallback for scans), detects the report date, and emits one candidate
result per line that carries a numeric value together with a unit or a
catalog match.

Catalog-matched candidates default to included; unmatched ones require
explicit opt-in during review.

Examples:
  labparse parse results.pdf
  labparse parse --output json results.pdf
  labparse parse --lang hun --lang eng --timeout 300 scanned.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filename)
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "Parsing %s...\n", filename)
	}

	config := engineConfig()

	engine := ingest.New(config)

	result, err := engine.Process(cmd.Context(), filename)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	if err := engine.OutputResult(os.Stdout, result); err != nil {
		return fmt.Errorf("failed to output result: %w", err)
	}

	return nil
}

func engineConfig() ingest.Config {
	config := ingest.DefaultConfig()
	config.OutputFormat = output
	config.ForceOCR = forceOCRFlag
	config.IncludeText = includeTextFlag
	config.Verbose = verboseFlag

	config.Languages = viper.GetStringSlice("ocr.languages")
	if len(langFlag) > 0 {
		config.Languages = langFlag
	}

	config.DPI = viper.GetInt("ocr.dpi")
	if dpiFlag > 0 {
		config.DPI = dpiFlag
	}

	config.Timeout = time.Duration(viper.GetInt("parse.timeout")) * time.Second
	if timeoutFlag > 0 {
		config.Timeout = time.Duration(timeoutFlag) * time.Second
	}

	return config
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringArrayVar(&langFlag, "lang", nil, "OCR language (repeatable, tesseract codes)")
	parseCmd.Flags().IntVar(&dpiFlag, "dpi", 0, "rasterization DPI for the OCR path")
	parseCmd.Flags().IntVarP(&timeoutFlag, "timeout", "t", 0, "per-document timeout in seconds")
	parseCmd.Flags().BoolVar(&forceOCRFlag, "force-ocr", false, "skip the native text layer and always OCR")
	parseCmd.Flags().BoolVar(&includeTextFlag, "include-text", false, "include the extracted text in JSON output")
	parseCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose pipeline logging")
}
