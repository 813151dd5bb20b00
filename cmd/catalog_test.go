package cmd

import (
	"strings"
	"testing"

	"github.com/31b4/labparse/pkg/catalog"
)

func TestFilterByCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		wantKey  string
	}{
		{
			name:     "singular form",
			category: "hormone",
			wantKey:  "testosterone_total",
		},
		{
			name:     "plural form",
			category: "hormones",
			wantKey:  "testosterone_total",
		},
		{
			name:     "mixed case",
			category: "LIPID",
			wantKey:  "ldl",
		},
		{
			name:     "thyroid",
			category: "thyroid",
			wantKey:  "tsh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs := filterByCategory(catalog.All(), tt.category)
			if len(defs) == 0 {
				t.Fatalf("filterByCategory(%q) returned nothing", tt.category)
			}

			found := false
			for _, def := range defs {
				if def.Key == tt.wantKey {
					found = true
				}
				if !strings.HasPrefix(strings.ToLower(string(def.Category)), strings.ToLower(tt.category)) {
					t.Errorf("category %s leaked into %q filter", def.Category, tt.category)
				}
			}
			if !found {
				t.Errorf("filterByCategory(%q) missing %s", tt.category, tt.wantKey)
			}
		})
	}

	if got := filterByCategory(catalog.All(), "nonexistent"); len(got) != 0 {
		t.Errorf("unknown category matched %d definitions", len(got))
	}
}
