// Package extract turns raw lab report documents into plain text. The
// native PDF text layer is tried first; documents without one (scans)
// fall back to per-page OCR. Both strategies degrade per page instead
// of failing the document.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
)

// Extractor implements the native-first, OCR-fallback strategy pair.
type Extractor struct {
	opts          Options
	log           *logrus.Logger
	native        func(data []byte) (string, int, []string)
	countPages    func(data []byte) int
	raster        Rasterizer
	newRecognizer func(langs []string) (Recognizer, error)
}

// New creates an Extractor with the given options.
func New(opts Options) *Extractor {
	opts.defaults()

	return &Extractor{
		opts:          opts,
		log:           opts.Logger,
		native:        nativeText,
		countPages:    countPages,
		raster:        &popplerRasterizer{binary: opts.Pdftoppm, dpi: opts.DPI},
		newRecognizer: newTesseractRecognizer,
	}
}

// Extract produces the document's text. Absent or unreadable input
// yields an empty result, not an error; the only error returned is the
// context's, when the caller abandons the import mid-document.
func (e *Extractor) Extract(ctx context.Context, data []byte) (Result, error) {
	start := time.Now()

	result := Result{Method: MethodNone}
	defer func() { result.Duration = time.Since(start) }()

	if len(data) == 0 {
		return result, nil
	}

	pages, scanned, warn := preflight(data)
	if warn != "" {
		result.Warnings = append(result.Warnings, warn)
	}

	result.Pages = pages

	if !e.opts.ForceOCR {
		text, nativePages, warnings := e.native(data)
		result.Warnings = append(result.Warnings, warnings...)

		if result.Pages == 0 {
			result.Pages = nativePages
		}

		if strings.TrimSpace(text) != "" {
			result.Text = text
			result.Method = MethodText

			return result, nil
		}
	}

	if result.Pages == 0 {
		result.Pages = e.countPages(data)
	}

	if scanned {
		e.log.WithField("pages", result.Pages).Info("no text layer, scanned report suspected, running OCR")
	} else {
		e.log.WithField("pages", result.Pages).Info("no text layer, running OCR")
	}

	text, warnings, err := e.ocrText(ctx, data, result.Pages)
	result.Warnings = append(result.Warnings, warnings...)

	if err != nil {
		return result, err
	}

	if strings.TrimSpace(text) != "" {
		result.Text = text
		result.Method = MethodOCR
		result.Languages = e.opts.Languages
	}

	return result, nil
}

// nativeText extracts the text layer page by page. A page that fails
// to decode contributes an empty string and a warning; the rest of the
// document still goes through.
func nativeText(data []byte) (text string, pages int, warnings []string) {
	// The pdf package panics on some malformed files; a corrupt
	// document must degrade to empty text, not crash the import.
	defer func() {
		if r := recover(); r != nil {
			warnings = append(warnings, fmt.Sprintf("native extraction aborted: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, []string{fmt.Sprintf("unreadable document: %v", err)}
	}

	pages = reader.NumPage()

	var sb strings.Builder

	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			warnings = append(warnings, fmt.Sprintf("page %d: missing page object", i))
			sb.WriteString("\n")

			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i, err))
			content = ""
		}

		sb.WriteString(content)
		sb.WriteString("\n")
	}

	return sb.String(), pages, warnings
}

func countPages(data []byte) (pages int) {
	defer func() { _ = recover() }()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0
	}

	return reader.NumPage()
}

// ocrText rasterizes and recognizes each page in order. Cancellation
// is honored between pages.
func (e *Extractor) ocrText(ctx context.Context, data []byte, pages int) (string, []string, error) {
	var warnings []string

	if pages <= 0 {
		return "", append(warnings, "page count unknown, skipping OCR"), nil
	}

	tmp, err := os.CreateTemp("", "labparse-*.pdf")
	if err != nil {
		return "", append(warnings, fmt.Sprintf("ocr staging failed: %v", err)), nil
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", append(warnings, fmt.Sprintf("ocr staging failed: %v", err)), nil
	}

	tmp.Close()

	rec, err := e.newRecognizer(e.opts.Languages)
	if err != nil {
		return "", append(warnings, fmt.Sprintf("recognizer unavailable: %v", err)), nil
	}
	defer rec.Close()

	var sb strings.Builder

	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return sb.String(), warnings, err
		}

		pageStart := time.Now()

		img, err := e.raster.Rasterize(ctx, tmp.Name(), page)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: rasterize: %v", page, err))
			sb.WriteString("\n")

			continue
		}

		text, err := rec.Recognize(img)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: recognize: %v", page, err))
			text = ""
		}

		e.log.WithFields(logrus.Fields{
			"page":     page,
			"chars":    len(text),
			"duration": time.Since(pageStart),
		}).Debug("ocr page done")

		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), warnings, nil
}
