package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

// Batch runs routinely cover whole directories, so the file count
// dwarfs the worker count. Unparseable files degrade to empty reports
// rather than failing, which keeps this test off tesseract and
// pdftoppm.
func TestRunBatchManyFilesPerWorker(t *testing.T) {
	viper.Reset()
	viper.SetDefault("ocr.languages", []string{"hun", "eng"})
	viper.SetDefault("ocr.dpi", 300)
	viper.SetDefault("parse.timeout", 120)

	dir := t.TempDir()

	var files []string
	for i := 0; i < 20; i++ {
		path := filepath.Join(dir, fmt.Sprintf("report-%02d.pdf", i))
		if err := os.WriteFile(path, []byte("not a real pdf"), 0o644); err != nil {
			t.Fatal(err)
		}
		files = append(files, path)
	}

	numWorkers = 1
	quiet = true
	output = "json"

	defer func() {
		numWorkers = 0
		quiet = false
		output = "human"
	}()

	// runBatch writes the aggregated JSON to stdout.
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}

	stdout := os.Stdout
	os.Stdout = devnull

	defer func() {
		os.Stdout = stdout
		devnull.Close()
	}()

	batchCmd.SetContext(context.Background())

	done := make(chan error, 1)
	go func() { done <- runBatch(batchCmd, files) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runBatch = %v", err)
		}
	case <-time.After(60 * time.Second):
		t.Fatal("runBatch stalled with more files than the pool buffers hold")
	}
}
