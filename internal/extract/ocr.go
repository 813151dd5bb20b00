package extract

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/otiai10/gosseract/v2"
)

// popplerRasterizer renders single pages through pdftoppm. Rendering
// stays out of process: nothing in the Go PDF libraries rasterizes
// page content, and poppler is the fixture on machines that run OCR.
type popplerRasterizer struct {
	binary string
	dpi    int
}

func (r *popplerRasterizer) Rasterize(ctx context.Context, pdfPath string, page int) ([]byte, error) {
	dir, err := os.MkdirTemp("", "labparse-raster-")
	if err != nil {
		return nil, err
	}

	defer os.RemoveAll(dir)

	prefix := filepath.Join(dir, "page")

	cmd := exec.CommandContext(ctx, r.binary,
		"-png",
		"-r", strconv.Itoa(r.dpi),
		"-f", strconv.Itoa(page),
		"-l", strconv.Itoa(page),
		"-singlefile",
		pdfPath,
		prefix,
	)

	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%s: %w (%s)", r.binary, err, string(out))
	}

	img, err := os.ReadFile(prefix + ".png")
	if err != nil {
		return nil, fmt.Errorf("rasterized page missing: %w", err)
	}

	return img, nil
}

// tesseractRecognizer wraps a gosseract client configured for accurate
// block recognition with a restricted language set.
type tesseractRecognizer struct {
	client *gosseract.Client
}

func newTesseractRecognizer(langs []string) (Recognizer, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage(langs...); err != nil {
		client.Close()
		return nil, fmt.Errorf("set languages %v: %w", langs, err)
	}

	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		client.Close()
		return nil, fmt.Errorf("set page segmentation: %w", err)
	}

	return &tesseractRecognizer{client: client}, nil
}

func (t *tesseractRecognizer) Recognize(img []byte) (string, error) {
	if err := t.client.SetImageFromBytes(img); err != nil {
		return "", err
	}

	return t.client.Text()
}

func (t *tesseractRecognizer) Close() error {
	return t.client.Close()
}
