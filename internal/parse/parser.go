// Package parse turns extracted lab report text into candidate
// biomarker results: unit detection against an ordered lexicon,
// proximity-based numeric extraction, keyword-biased date detection,
// and per-line catalog matching.
package parse

import (
	"strings"

	"github.com/google/uuid"

	"github.com/31b4/labparse/pkg/catalog"
	"github.com/31b4/labparse/pkg/labreport"
)

// ParseReport runs the single-pass batch transform over extracted
// document text. Lines are independent: no cross-line state, no
// lookahead, emission order follows document order. The same text
// always yields the same ordered result list (IDs aside).
func ParseReport(fullText string) labreport.Report {
	var report labreport.Report

	if d, ok := DetectReportDate(fullText); ok {
		report.Date = &d
	}

	for _, raw := range strings.Split(fullText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if item, ok := parseLine(line); ok {
			report.Items = append(report.Items, item)
		}
	}

	return report
}

// parseLine emits a candidate iff the line carries a numeric value and
// at least one of: a recognized unit token, a catalog match.
func parseLine(line string) (labreport.ParsedResult, bool) {
	folded := FoldLine(line)

	unit, unitFound := DetectUnit(folded)

	unitStart := -1
	if start, _, ok := DetectUnitRange(folded); ok {
		unitStart = start
	}

	valueText, ok := BestNumber(folded, unitStart)
	if !ok {
		return labreport.ParsedResult{}, false
	}

	// Catalog matching folds its own input; give it the original line
	// so Search-style display text keeps its casing.
	def := catalog.Match(line)

	if !unitFound && def == nil {
		return labreport.ParsedResult{}, false
	}

	name := line
	if def != nil {
		name = def.Name
	}

	item := labreport.ParsedResult{
		ID:         uuid.New(),
		SourceLine: line,
		RawName:    name,
		Matched:    def,
		ValueText:  valueText,
		Include:    def != nil,
	}

	switch {
	case unitFound:
		item.Unit = &unit
	case def != nil:
		u := def.DefaultUnit
		item.Unit = &u
	}

	return item, true
}
