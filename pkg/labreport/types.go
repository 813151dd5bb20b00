// Package labreport defines the reviewable output of a lab report
// parse: candidate results pending human acceptance, and the mutation
// and validation steps the review flow applies before persistence.
package labreport

import (
	"time"

	"github.com/google/uuid"

	"github.com/31b4/labparse/pkg/catalog"
)

// ParsedResult is one line's extracted finding, pending review.
//
// A result is emitted for a line only when a unit was detected or a
// catalog match was found; lines with neither carry no actionable
// signal and are dropped during parsing.
type ParsedResult struct {
	ID         uuid.UUID           `json:"id"`
	SourceLine string              `json:"source_line"`
	RawName    string              `json:"raw_name"`
	Matched    *catalog.Definition `json:"matched,omitempty"`
	Selected   *catalog.Definition `json:"selected,omitempty"`
	ValueText  string              `json:"value_text"`
	Unit       *catalog.Unit       `json:"unit,omitempty"`
	Include    bool                `json:"include"`
}

// Definition returns the reviewer's override when set, otherwise the
// catalog match. Nil when the result is unlinked.
func (r *ParsedResult) Definition() *catalog.Definition {
	if r.Selected != nil {
		return r.Selected
	}

	return r.Matched
}

// DisplayName is the linked definition's name, falling back to the raw
// detected text.
func (r *ParsedResult) DisplayName() string {
	if def := r.Definition(); def != nil {
		return def.Name
	}

	return r.RawName
}

// ParsedValue converts the textual value to a number. The text keeps
// its original decimal separator until this final conversion.
func (r *ParsedResult) ParsedValue() (float64, bool) {
	return ParseValue(r.ValueText)
}

// Report is the outcome of parsing one document: a best-guess report
// date (nil when none was detected) and candidates in document line
// order.
type Report struct {
	Date  *time.Time     `json:"date,omitempty"`
	Items []ParsedResult `json:"items"`
}
