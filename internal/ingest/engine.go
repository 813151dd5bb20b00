// Package ingest wires document extraction and text parsing into the
// import pipeline: one document in, one reviewable report out.
package ingest

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/31b4/labparse/internal/extract"
	"github.com/31b4/labparse/internal/parse"
	"github.com/31b4/labparse/pkg/labreport"
)

// Config holds pipeline configuration for the engine.
type Config struct {
	Languages    []string
	DPI          int
	Timeout      time.Duration
	ForceOCR     bool
	IncludeText  bool
	Verbose      bool
	OutputFormat string
}

// DefaultConfig returns the engine defaults. OCR cost scales with page
// count, so documents get a bounded processing window.
func DefaultConfig() Config {
	return Config{
		Languages:    []string{"hun", "eng"},
		DPI:          300,
		Timeout:      120 * time.Second,
		OutputFormat: "human",
	}
}

// Result is the outcome of processing one document.
type Result struct {
	File        string           `json:"file"`
	Extraction  extract.Result   `json:"extraction"`
	Report      labreport.Report `json:"report"`
	Matched     int              `json:"matched"`
	Unmatched   int              `json:"unmatched"`
	ProcessTime time.Duration    `json:"process_time"`
}

type extractor interface {
	Extract(ctx context.Context, data []byte) (extract.Result, error)
}

// Engine processes lab report documents.
type Engine struct {
	config    Config
	extractor extractor
	log       *logrus.Logger
}

// New creates an Engine. The catalog is static and shared; engines are
// safe to use from concurrent workers.
func New(config Config) *Engine {
	log := logrus.New()
	if config.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	opts := extract.Options{
		Languages: config.Languages,
		DPI:       config.DPI,
		ForceOCR:  config.ForceOCR,
		Logger:    log,
	}

	return &Engine{
		config:    config,
		extractor: extract.New(opts),
		log:       log,
	}
}

// Process reads, extracts and parses a single document. Extraction
// failures degrade to an empty candidate list; only unreadable files
// and abandoned contexts surface as errors.
func (e *Engine) Process(ctx context.Context, filename string) (*Result, error) {
	start := time.Now()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if e.config.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, e.config.Timeout)
		defer cancel()
	}

	extraction, err := e.extractor.Extract(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("extraction abandoned for %s: %w", filename, err)
	}

	report := parse.ParseReport(extraction.Text)

	if !e.config.IncludeText {
		extraction.Text = ""
	}

	result := &Result{
		File:        filename,
		Extraction:  extraction,
		Report:      report,
		ProcessTime: time.Since(start),
	}

	for i := range report.Items {
		if report.Items[i].Matched != nil {
			result.Matched++
		} else {
			result.Unmatched++
		}
	}

	e.log.WithFields(logrus.Fields{
		"file":      filename,
		"method":    extraction.Method,
		"items":     len(report.Items),
		"matched":   result.Matched,
		"unmatched": result.Unmatched,
	}).Debug("document processed")

	return result, nil
}
