package catalog

import "testing"

func TestMatch(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		wantKey string
	}{
		{name: "canonical name", line: "Hemoglobin 14.2 g/dl", wantKey: "hemoglobin"},
		{name: "hungarian alias with diacritics", line: "Kálium: 4.3 mmol/l", wantKey: "potassium"},
		{name: "alias without diacritics", line: "Vercukor eredmeny 5,4 mmol/l", wantKey: "fasting_glucose"},
		{name: "abbreviated alias", line: "HCT 44 %", wantKey: "hematocrit"},
		{name: "crp alias", line: "CRP 1.20 mg/L (0.00-3.00)", wantKey: "hscrp"},
		{name: "embedded in longer text", line: "Se-Kreatinin (enzimatikus) 78 umol/l", wantKey: "creatinine"},
		{name: "no match", line: "Megjegyzés: lipémiás minta", wantKey: ""},
		{name: "empty line", line: "", wantKey: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Match(tc.line)

			if tc.wantKey == "" {
				if got != nil {
					t.Fatalf("Match(%q) = %q, want no match", tc.line, got.Key)
				}
				return
			}

			if got == nil {
				t.Fatalf("Match(%q) = nil, want %q", tc.line, tc.wantKey)
			}
			if got.Key != tc.wantKey {
				t.Errorf("Match(%q) = %q, want %q", tc.line, got.Key, tc.wantKey)
			}
		})
	}
}

// Declaration order is the tie-break when multiple entries match the
// same line: the earliest entry wins. "LDL-koleszterin" contains the
// substring match for both ldl ("ldl") and nothing else, but a line
// naming both LDL and HDL resolves to ldl because it is declared first.
func TestMatchDeclarationOrderWins(t *testing.T) {
	got := Match("LDL/HDL arány 2.1")
	if got == nil || got.Key != "ldl" {
		t.Fatalf("expected first declared entry (ldl) to win, got %v", got)
	}
}

func TestMatchDeterministic(t *testing.T) {
	line := "Glükóz 5.1 mmol/l"

	first := Match(line)
	if first == nil {
		t.Fatal("expected a match")
	}

	for i := 0; i < 5; i++ {
		if got := Match(line); got == nil || got.Key != first.Key {
			t.Fatalf("Match not deterministic: run %d returned %v", i, got)
		}
	}
}

func TestSearch(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		wantKeys []string
	}{
		{name: "empty query returns all", query: "", wantKeys: nil},
		{name: "whitespace query returns all", query: "   ", wantKeys: nil},
		{name: "name substring", query: "cholesterol", wantKeys: []string{"ldl", "hdl", "total_chol"}},
		{name: "alias substring", query: "vércukor", wantKeys: []string{"fasting_glucose"}},
		{name: "case-insensitive", query: "TSH", wantKeys: []string{"tsh"}},
		{name: "no hits", query: "zzzz", wantKeys: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Search(tc.query)

			if tc.wantKeys == nil {
				if len(got) != len(All()) {
					t.Fatalf("Search(%q) returned %d entries, want full catalog (%d)", tc.query, len(got), len(All()))
				}
				return
			}

			if len(got) != len(tc.wantKeys) {
				t.Fatalf("Search(%q) returned %d entries, want %d", tc.query, len(got), len(tc.wantKeys))
			}
			for i, def := range got {
				if def.Key != tc.wantKeys[i] {
					t.Errorf("Search(%q)[%d] = %q, want %q", tc.query, i, def.Key, tc.wantKeys[i])
				}
			}
		})
	}
}

func TestByKey(t *testing.T) {
	if def := ByKey("tsh"); def == nil || def.Name != "TSH" {
		t.Errorf("ByKey(tsh) = %v", def)
	}
	if def := ByKey("nope"); def != nil {
		t.Errorf("ByKey(nope) = %v, want nil", def)
	}
}

func TestCatalogKeysUnique(t *testing.T) {
	seen := make(map[string]bool)

	for _, def := range All() {
		if seen[def.Key] {
			t.Errorf("duplicate catalog key %q", def.Key)
		}
		seen[def.Key] = true
	}
}
