package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/31b4/labparse/pkg/catalog"
)

var catalogCategory string

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog [query]",
	Short: "List or search the biomarker catalog",
	Long: `Catalog lists the biomarkers the parser can match, with their aliases
and default units. An optional query filters by name or alias,
matching the way the interactive search does.

Examples:
  labparse catalog
  labparse catalog koleszterin
  labparse catalog --category hormone
  labparse catalog --output json d-vitamin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "filter by category (e.g. lipid, hormone, vitamin)")
}

// filterByCategory keeps definitions whose category starts with the
// given name, case-insensitively. Category values are plural
// ("Lipids", "Hormones"); the singular forms users type match too.
func filterByCategory(defs []catalog.Definition, category string) []catalog.Definition {
	lowered := strings.ToLower(category)

	filtered := defs[:0:0]
	for _, def := range defs {
		if strings.HasPrefix(strings.ToLower(string(def.Category)), lowered) {
			filtered = append(filtered, def)
		}
	}

	return filtered
}

func runCatalog(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	defs := catalog.Search(query)
	if catalogCategory != "" {
		defs = filterByCategory(defs, catalogCategory)
	}

	if len(defs) == 0 {
		return fmt.Errorf("no biomarkers match %q", query)
	}

	if output == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(defs)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Name", "Category", "Unit", "Aliases"})
	table.SetAutoWrapText(false)
	for _, def := range defs {
		table.Append([]string{
			def.Key,
			def.Name,
			string(def.Category),
			string(def.DefaultUnit),
			strings.Join(def.Aliases, ", "),
		})
	}
	table.Render()

	if !quiet {
		fmt.Fprintf(os.Stderr, "%d biomarker(s)\n", len(defs))
	}

	return nil
}
