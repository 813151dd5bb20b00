package parse

import (
	"strings"
	"testing"
)

func TestBestNumber(t *testing.T) {
	testCases := []struct {
		name      string
		text      string
		unitStart int
		want      string
		none      bool
	}{
		{
			name:      "value nearest unit beats reference range",
			text:      "crp 1.20 mg/l (0.00-3.00)",
			unitStart: strings.Index("crp 1.20 mg/l (0.00-3.00)", "mg/l"),
			want:      "1.20",
		},
		{
			name:      "no unit range takes first match",
			text:      "lymphocyta 28.1 ref 20.0-45.0",
			unitStart: -1,
			want:      "28.1",
		},
		{
			name:      "decimal comma kept verbatim",
			text:      "vercukor 5,4 mmol/l",
			unitStart: strings.Index("vercukor 5,4 mmol/l", "mmol/l"),
			want:      "5,4",
		},
		{
			name:      "signed value",
			text:      "bazofil -0.1 giga/l",
			unitStart: strings.Index("bazofil -0.1 giga/l", "giga/l"),
			want:      "-0.1",
		},
		{
			name:      "no digits at all",
			text:      "minta nem ertekelheto",
			unitStart: -1,
			none:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := BestNumber(tc.text, tc.unitStart)

			if tc.none {
				if ok {
					t.Fatalf("BestNumber(%q) = %q, want none", tc.text, got)
				}
				return
			}

			if !ok {
				t.Fatalf("BestNumber(%q) found nothing, want %q", tc.text, tc.want)
			}
			if got != tc.want {
				t.Errorf("BestNumber(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

// Regression pin for the documented tie-break: candidates equidistant
// from the unit position resolve to the earlier occurrence.
func TestBestNumberEquidistantTie(t *testing.T) {
	// Candidates start at offsets 0 and 4; reference position 2 is
	// exactly two bytes from each.
	got, ok := BestNumber("3 x 4", 2)
	if !ok {
		t.Fatal("expected a candidate")
	}
	if got != "3" {
		t.Errorf("tie resolved to %q, want earlier candidate %q", got, "3")
	}
}

func TestBestNumberDigitBound(t *testing.T) {
	// Integer part is capped at four digits so identifiers do not
	// masquerade as values.
	got, ok := BestNumber("minta 987654 azonosito 4.2 mg/l", strings.Index("minta 987654 azonosito 4.2 mg/l", "mg/l"))
	if !ok {
		t.Fatal("expected a candidate")
	}
	if got != "4.2" {
		t.Errorf("BestNumber = %q, want %q", got, "4.2")
	}
}
