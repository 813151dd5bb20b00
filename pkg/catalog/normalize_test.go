package catalog

import "testing"

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase passthrough", input: "kalium", expected: "kalium"},
		{name: "case folding", input: "KALIUM", expected: "kalium"},
		{name: "diacritic folding", input: "Kálium", expected: "kalium"},
		{name: "whitespace stripped", input: "Total chol.", expected: "totalchol"},
		{name: "punctuation stripped", input: "hs-CRP", expected: "hscrp"},
		{name: "hungarian long vowels", input: "Összkoleszterin", expected: "osszkoleszterin"},
		{name: "digits kept", input: "25(OH)D", expected: "25ohd"},
		{name: "empty", input: "", expected: ""},
		{name: "only symbols", input: "--- / ---", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Kálium", "Vércukor", "hs-CRP", "mg/dL", "Szabad tesztoszteron"}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)

		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeVariantsEqual(t *testing.T) {
	variants := []string{"Kálium", "KALIUM", "kalium", "kálium"}
	want := Normalize(variants[0])

	for _, v := range variants[1:] {
		if got := Normalize(v); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", v, got, want)
		}
	}
}
