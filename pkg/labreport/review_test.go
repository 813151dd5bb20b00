package labreport

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/31b4/labparse/pkg/catalog"
)

func sampleItems() []ParsedResult {
	matched := catalog.ByKey("potassium")
	unit := catalog.UnitMmolL

	return []ParsedResult{
		{
			ID:         uuid.New(),
			SourceLine: "Kálium 4.6 mmol/l",
			RawName:    "Potassium",
			Matched:    matched,
			ValueText:  "4.6",
			Unit:       &unit,
			Include:    true,
		},
		{
			ID:         uuid.New(),
			SourceLine: "Ismeretlen marker 12 g/l",
			RawName:    "Ismeretlen marker 12 g/l",
			ValueText:  "12",
			Include:    false,
		},
	}
}

func TestSetInclude(t *testing.T) {
	items := sampleItems()

	if !SetInclude(items, items[1].ID, true) {
		t.Fatal("SetInclude reported unknown ID")
	}
	if !items[1].Include {
		t.Error("item not included after SetInclude")
	}

	if SetInclude(items, uuid.New(), true) {
		t.Error("SetInclude accepted an unknown ID")
	}
}

func TestOverrideImpliesAcceptance(t *testing.T) {
	items := sampleItems()
	def := catalog.ByKey("ferritin")

	if !Override(items, items[1].ID, def) {
		t.Fatal("Override reported unknown ID")
	}

	item := items[1]

	if item.Selected == nil || item.Selected.Key != "ferritin" {
		t.Errorf("Selected = %v, want ferritin", item.Selected)
	}
	if !item.Include {
		t.Error("override must imply inclusion")
	}
	if item.Unit == nil || *item.Unit != catalog.UnitNgML {
		t.Errorf("Unit = %v, want ferritin default ng/mL", item.Unit)
	}
	if item.Definition().Key != "ferritin" {
		t.Errorf("Definition() = %q, want override to win", item.Definition().Key)
	}
}

func TestOverrideKeepsDetectedUnit(t *testing.T) {
	items := sampleItems()
	def := catalog.ByKey("hemoglobin")

	Override(items, items[0].ID, def)

	if items[0].Unit == nil || *items[0].Unit != catalog.UnitMmolL {
		t.Errorf("Unit = %v, detected unit must survive an override", items[0].Unit)
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid selection", func(t *testing.T) {
		items := sampleItems()
		if err := Validate(items); err != nil {
			t.Errorf("Validate = %v, want nil", err)
		}
	})

	t.Run("nothing selected", func(t *testing.T) {
		items := sampleItems()
		SetInclude(items, items[0].ID, false)

		if err := Validate(items); err == nil {
			t.Error("expected error for empty selection")
		}
	})

	t.Run("included item without definition", func(t *testing.T) {
		items := sampleItems()
		SetInclude(items, items[1].ID, true)

		err := Validate(items)
		if err == nil || !strings.Contains(err.Error(), "no linked biomarker") {
			t.Errorf("Validate = %v, want linked-biomarker error", err)
		}
	})

	t.Run("included item with unparseable value", func(t *testing.T) {
		items := sampleItems()
		SetValueText(items, items[0].ID, "n/a")

		err := Validate(items)
		if err == nil || !strings.Contains(err.Error(), "parseable") {
			t.Errorf("Validate = %v, want parseable-value error", err)
		}
	})
}

func TestAccepted(t *testing.T) {
	items := sampleItems()

	accepted := Accepted(items)
	if len(accepted) != 1 || accepted[0].ID != items[0].ID {
		t.Fatalf("Accepted = %d items, want just the matched one", len(accepted))
	}

	// Including the unlinked item does not make it persistable.
	SetInclude(items, items[1].ID, true)

	if got := Accepted(items); len(got) != 1 {
		t.Errorf("Accepted = %d items, want 1 (unlinked item filtered)", len(got))
	}

	Override(items, items[1].ID, catalog.ByKey("ferritin"))

	if got := Accepted(items); len(got) != 2 {
		t.Errorf("Accepted = %d items, want 2 after override", len(got))
	}
}

func TestParsedValuePreservesSeparator(t *testing.T) {
	items := sampleItems()
	SetValueText(items, items[0].ID, "4,6")

	v, ok := items[0].ParsedValue()
	if !ok || v != 4.6 {
		t.Errorf("ParsedValue = %v %v, want 4.6", v, ok)
	}
}
