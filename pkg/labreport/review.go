package labreport

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/31b4/labparse/pkg/catalog"
)

// Review operations mutate a parsed item slice in place, addressed by
// item ID. Each returns false when the ID is unknown. Parsing itself
// is a pure function; all interactivity happens through these explicit
// post-parse steps.

// SetInclude toggles whether an item will be persisted.
func SetInclude(items []ParsedResult, id uuid.UUID, include bool) bool {
	for i := range items {
		if items[i].ID == id {
			items[i].Include = include
			return true
		}
	}

	return false
}

// Override links an item to a reviewer-chosen definition. Choosing a
// definition implies acceptance, and fills the unit from the
// definition's default when none was detected.
func Override(items []ParsedResult, id uuid.UUID, def *catalog.Definition) bool {
	for i := range items {
		if items[i].ID == id {
			items[i].Selected = def
			items[i].Include = true

			if items[i].Unit == nil && def != nil {
				u := def.DefaultUnit
				items[i].Unit = &u
			}

			return true
		}
	}

	return false
}

// SetValueText replaces an item's textual value.
func SetValueText(items []ParsedResult, id uuid.UUID, text string) bool {
	for i := range items {
		if items[i].ID == id {
			items[i].ValueText = text
			return true
		}
	}

	return false
}

// SetUnit replaces an item's unit.
func SetUnit(items []ParsedResult, id uuid.UUID, unit catalog.Unit) bool {
	for i := range items {
		if items[i].ID == id {
			items[i].Unit = &unit
			return true
		}
	}

	return false
}

// Validate checks the save preconditions: at least one item included,
// and every included item linked to a definition with a parseable
// numeric value. Violations surface here, at save time, not during
// parsing.
func Validate(items []ParsedResult) error {
	var problems []string

	included := 0

	for i := range items {
		if !items[i].Include {
			continue
		}

		included++

		if items[i].Definition() == nil {
			problems = append(problems, fmt.Sprintf("%q has no linked biomarker", items[i].DisplayName()))
		}

		if _, ok := items[i].ParsedValue(); !ok {
			problems = append(problems, fmt.Sprintf("%q has no parseable value (%q)", items[i].DisplayName(), items[i].ValueText))
		}
	}

	if included == 0 {
		return fmt.Errorf("no items selected for saving")
	}

	if len(problems) > 0 {
		return fmt.Errorf("cannot save: %s", strings.Join(problems, "; "))
	}

	return nil
}

// Accepted returns the persistence-ready subset: included items that
// pass the per-item preconditions.
func Accepted(items []ParsedResult) []ParsedResult {
	var out []ParsedResult

	for i := range items {
		if !items[i].Include || items[i].Definition() == nil {
			continue
		}

		if _, ok := items[i].ParsedValue(); !ok {
			continue
		}

		out = append(out, items[i])
	}

	return out
}
