package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"code.sajari.com/docconv/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/31b4/labparse/internal/extract"
)

var (
	textOutFile string
	textUseOCR  bool
	textLangs   []string
)

// textCmd represents the text command
var textCmd = &cobra.Command{
	Use:   "text <report.pdf>",
	Short: "Extract the raw text of a lab report",
	Long: `Extract dumps the text a report would be parsed from, without running
the biomarker parser. Useful for inspecting what the extraction layer
actually sees when a report parses badly.

By default the native text layer is used via document conversion; pass
--ocr to rasterize and recognize instead, which is what the pipeline
falls back to for scanned reports.

Examples:
  labparse text results.pdf
  labparse text --file results.txt results.pdf
  labparse text --ocr --lang hun scanned.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runText,
}

func init() {
	rootCmd.AddCommand(textCmd)

	textCmd.Flags().StringVarP(&textOutFile, "file", "f", "", "write text to file (default: stdout)")
	textCmd.Flags().BoolVar(&textUseOCR, "ocr", false, "force the OCR path instead of the native text layer")
	textCmd.Flags().StringArrayVar(&textLangs, "lang", nil, "OCR language (repeatable, tesseract codes)")
}

func runText(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filename)
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "Extracting text from %s...\n", filename)
	}

	var text string
	var err error
	if textUseOCR {
		text, err = recognizeText(filename)
	} else {
		text, err = nativeText(filename)
	}
	if err != nil {
		return err
	}

	if textOutFile != "" {
		if err := os.WriteFile(textOutFile, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if !quiet {
			fmt.Fprintf(os.Stderr, "Extracted text written to %s\n", textOutFile)
		}
	} else {
		fmt.Print(text)
	}

	return nil
}

func nativeText(filename string) (string, error) {
	response, err := docconv.ConvertPath(filename)
	if err != nil {
		return "", fmt.Errorf("failed to convert %s: %w", filename, err)
	}
	if strings.TrimSpace(response.Body) == "" {
		return "", fmt.Errorf("no readable text found in %s (try --ocr)", filename)
	}
	return response.Body, nil
}

func recognizeText(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}

	opts := extract.DefaultOptions()
	opts.ForceOCR = true
	opts.DPI = viper.GetInt("ocr.dpi")
	if langs := viper.GetStringSlice("ocr.languages"); len(langs) > 0 {
		opts.Languages = langs
	}
	if len(textLangs) > 0 {
		opts.Languages = textLangs
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(viper.GetInt("parse.timeout"))*time.Second)
	defer cancel()

	result, err := extract.New(opts).Extract(ctx, data)
	if err != nil {
		return "", fmt.Errorf("OCR failed for %s: %w", filename, err)
	}
	for _, warning := range result.Warnings {
		if !quiet {
			fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
		}
	}
	return result.Text, nil
}
