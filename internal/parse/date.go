package parse

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Lines carrying one of these words are far more likely to hold the
// actual sampling/report date than an arbitrary date elsewhere in the
// document (letterheads, print timestamps).
var dateKeywords = []string{
	"dátum",
	"datum",
	"mintavétel",
	"vizsgálat",
	"eredmény",
	"date",
	"collected",
}

// Date-like substrings, most specific first: dotted year-first
// (Hungarian convention), dotted day-first, ISO, slashed.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4}\.\d{1,2}\.\d{1,2}\.?`),
	regexp.MustCompile(`\b\d{1,2}\.\d{1,2}\.\d{4}\.?`),
	regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
}

var dateLayouts = []string{
	"2006.01.02",
	"2006.01.02.",
	"2006-01-02",
	"02.01.2006",
	"02.01.2006.",
	"02/01/2006",
}

// DetectReportDate scans document text for the report or sampling
// date. Phase 1 considers only lines containing a date keyword; phase
// 2 falls back to the whole text. The first substring that parses
// under any layout wins.
func DetectReportDate(fullText string) (time.Time, bool) {
	for _, line := range strings.Split(fullText, "\n") {
		lowered := strings.ToLower(line)

		if !containsAny(lowered, dateKeywords) {
			continue
		}

		for _, candidate := range extractDateStrings(line) {
			if d, ok := parseDate(candidate); ok {
				return d, true
			}
		}
	}

	for _, candidate := range extractDateStrings(fullText) {
		if d, ok := parseDate(candidate); ok {
			return d, true
		}
	}

	return time.Time{}, false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}

func extractDateStrings(text string) []string {
	var results []string

	for _, pattern := range datePatterns {
		results = append(results, pattern.FindAllString(text, -1)...)
	}

	return results
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}

	// Lenient fallback for spellings outside the pinned layout list.
	if d, err := dateparse.ParseAny(strings.TrimSuffix(s, ".")); err == nil {
		return d, true
	}

	return time.Time{}, false
}
