package labreport

import (
	"strconv"
	"strings"
)

// ParseValue converts a textual number to a float. Decimal-point
// spelling is tried first; on failure every comma is substituted with a
// point and the parse retried. OCR and extracted text mix both
// separator conventions irrespective of the report's locale, so both
// stages are required.
func ParseValue(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}

	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		return v, true
	}

	return 0, false
}
