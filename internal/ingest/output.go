package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// OutputResult writes a processed document in the configured format.
func (e *Engine) OutputResult(w io.Writer, result *Result) error {
	switch e.config.OutputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(result)
	case "human", "":
		return outputHuman(w, result)
	default:
		return fmt.Errorf("unsupported output format: %s", e.config.OutputFormat)
	}
}

func outputHuman(w io.Writer, result *Result) error {
	fmt.Fprintf(w, "File:    %s\n", result.File)
	fmt.Fprintf(w, "Method:  %s (%d pages)\n", result.Extraction.Method, result.Extraction.Pages)

	if result.Report.Date != nil {
		fmt.Fprintf(w, "Date:    %s\n", result.Report.Date.Format(time.DateOnly))
	} else {
		fmt.Fprintf(w, "Date:    not detected\n")
	}

	fmt.Fprintf(w, "Items:   %d matched, %d unmatched\n\n", result.Matched, result.Unmatched)

	if len(result.Report.Items) == 0 {
		fmt.Fprintln(w, "No candidate results found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Include", "Biomarker", "Value", "Unit", "Catalog Key"})

	for i := range result.Report.Items {
		item := &result.Report.Items[i]

		include := "no"
		if item.Include {
			include = "yes"
		}

		unit := ""
		if item.Unit != nil {
			unit = string(*item.Unit)
		}

		key := "-"
		if def := item.Definition(); def != nil {
			key = def.Key
		}

		table.Append([]string{include, item.DisplayName(), item.ValueText, unit, key})
	}

	table.Render()

	for _, warning := range result.Extraction.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}

	return nil
}
