package extract

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Method identifies which extraction strategy produced the text.
type Method string

const (
	MethodText Method = "pdf-text"
	MethodOCR  Method = "pdf-ocr"
	MethodNone Method = "none"
)

// Options configures document text extraction.
type Options struct {
	// Languages restricts OCR recognition, tesseract language codes.
	// The report's expected language should come first.
	Languages []string

	// DPI used when rasterizing pages for OCR.
	DPI int

	// Pdftoppm is the rasterizer binary name or absolute path.
	Pdftoppm string

	// ForceOCR skips the native text layer entirely.
	ForceOCR bool

	Logger *logrus.Logger
}

// DefaultOptions returns the extraction defaults: Hungarian-first
// recognition with an English fallback at 300 DPI.
func DefaultOptions() Options {
	return Options{
		Languages: []string{"hun", "eng"},
		DPI:       300,
		Pdftoppm:  "pdftoppm",
	}
}

func (o *Options) defaults() {
	if len(o.Languages) == 0 {
		o.Languages = []string{"hun", "eng"}
	}

	if o.DPI <= 0 {
		o.DPI = 300
	}

	if o.Pdftoppm == "" {
		o.Pdftoppm = "pdftoppm"
	}

	if o.Logger == nil {
		o.Logger = logrus.New()
	}
}

// Result is the outcome of extracting one document. Per-page failures
// degrade to empty page text and a warning; only cancellation aborts a
// document.
type Result struct {
	Text      string        `json:"text,omitempty"`
	Pages     int           `json:"pages"`
	Method    Method        `json:"method"`
	Languages []string      `json:"languages,omitempty"`
	Duration  time.Duration `json:"duration"`
	Warnings  []string      `json:"warnings,omitempty"`
}

// Rasterizer renders one page of a PDF file to an image suitable for
// text recognition.
type Rasterizer interface {
	Rasterize(ctx context.Context, pdfPath string, page int) ([]byte, error)
}

// Recognizer runs text recognition over a single page image.
type Recognizer interface {
	Recognize(img []byte) (string, error)
	Close() error
}
