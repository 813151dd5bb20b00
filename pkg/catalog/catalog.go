// Package catalog holds the static table of known biomarker
// definitions and the fuzzy matching used to link free-text lab report
// lines to them.
//
// Matching is first-match-in-declared-order by contract: the table is
// not sorted by specificity, and reordering entries changes which
// definition wins on ambiguous text. Treat the declaration order as
// part of the data.
package catalog

import "strings"

var all = []Definition{
	{Key: "ldl", Name: "LDL Cholesterol", Category: CategoryLipids, DefaultUnit: UnitMgDL, Aliases: []string{"LDL-koleszterin", "LDL", "Low Density Lipoprotein"}, MinReference: ref(0), MaxReference: ref(100)},
	{Key: "hdl", Name: "HDL Cholesterol", Category: CategoryLipids, DefaultUnit: UnitMgDL, Aliases: []string{"HDL-koleszterin", "HDL", "High Density Lipoprotein"}, MinReference: ref(40), MaxReference: ref(100)},
	{Key: "triglycerides", Name: "Triglycerides", Category: CategoryLipids, DefaultUnit: UnitMgDL, Aliases: []string{"Triglicerid", "Triglycerid"}, MinReference: ref(0), MaxReference: ref(150)},
	{Key: "total_chol", Name: "Total Cholesterol", Category: CategoryLipids, DefaultUnit: UnitMgDL, Aliases: []string{"Összkoleszterin", "Total chol."}, MinReference: ref(0), MaxReference: ref(200)},

	{Key: "hba1c", Name: "HbA1c", Category: CategoryMetabolic, DefaultUnit: UnitPercent, Aliases: []string{"HbA1c", "HBA1C"}, MinReference: ref(4.0), MaxReference: ref(5.6)},
	{Key: "fasting_glucose", Name: "Fasting Glucose", Category: CategoryMetabolic, DefaultUnit: UnitMgDL, Aliases: []string{"Glükóz", "Glukoz", "Vércukor", "Blood Glucose", "Glucose"}, MinReference: ref(70), MaxReference: ref(99)},
	{Key: "insulin", Name: "Fasting Insulin", Category: CategoryMetabolic, DefaultUnit: UnitUIUML, Aliases: []string{"Inzulin", "Insulin"}, MinReference: ref(2), MaxReference: ref(25)},

	{Key: "vitd", Name: "Vitamin D (25-OH)", Category: CategoryVitamins, DefaultUnit: UnitNgML, Aliases: []string{"D-vitamin", "25-OH Vitamin D", "25(OH)D"}, MinReference: ref(30), MaxReference: ref(100)},
	{Key: "b12", Name: "Vitamin B12", Category: CategoryVitamins, DefaultUnit: UnitPgML, Aliases: []string{"B12-vitamin", "Cobalamin"}, MinReference: ref(200), MaxReference: ref(900)},
	{Key: "folate", Name: "Folate", Category: CategoryVitamins, DefaultUnit: UnitNgML, Aliases: []string{"Folsav", "Folate"}, MinReference: ref(3), MaxReference: ref(20)},

	{Key: "hscrp", Name: "High-Sensitivity C-Reactive Protein", Category: CategoryInflammation, DefaultUnit: UnitMgL, Aliases: []string{"hs-CRP", "CRP", "C-reaktív protein"}, MinReference: ref(0), MaxReference: ref(3.0)},
	{Key: "il6", Name: "Interleukin-6", Category: CategoryInflammation, DefaultUnit: UnitPgML, Aliases: []string{"IL-6"}},

	{Key: "testosterone_total", Name: "Testosterone (Total)", Category: CategoryHormones, DefaultUnit: UnitNgML, Aliases: []string{"Tesztoszteron", "Testosterone Total"}, MinReference: ref(2.5), MaxReference: ref(9.5)},
	{Key: "testosterone_free", Name: "Testosterone (Free)", Category: CategoryHormones, DefaultUnit: UnitPgML, Aliases: []string{"Szabad tesztoszteron", "Free Testosterone"}},
	{Key: "estradiol", Name: "Estradiol (E2)", Category: CategoryHormones, DefaultUnit: UnitPgML, Aliases: []string{"Ösztradiol", "Estradiol"}},
	{Key: "dhea_s", Name: "DHEA-S", Category: CategoryHormones, DefaultUnit: UnitUmolL, Aliases: []string{"DHEA-S"}},

	{Key: "tsh", Name: "TSH", Category: CategoryThyroid, DefaultUnit: UnitUIUML, Aliases: []string{"TSH", "Tireotrop hormon"}, MinReference: ref(0.4), MaxReference: ref(4.0)},
	{Key: "ft3", Name: "Free T3", Category: CategoryThyroid, DefaultUnit: UnitPgML, Aliases: []string{"Szabad T3", "fT3"}},
	{Key: "ft4", Name: "Free T4", Category: CategoryThyroid, DefaultUnit: UnitNgML, Aliases: []string{"Szabad T4", "fT4"}},

	{Key: "hemoglobin", Name: "Hemoglobin", Category: CategoryHematology, DefaultUnit: UnitMgDL, Aliases: []string{"Hemoglobin", "Hgb", "Hb"}},
	{Key: "hematocrit", Name: "Hematocrit", Category: CategoryHematology, DefaultUnit: UnitPercent, Aliases: []string{"Hematokrit", "HCT"}},
	{Key: "ferritin", Name: "Ferritin", Category: CategoryHematology, DefaultUnit: UnitNgML, Aliases: []string{"Ferritin"}, MinReference: ref(30), MaxReference: ref(400)},

	{Key: "creatinine", Name: "Creatinine", Category: CategoryKidney, DefaultUnit: UnitMgDL, Aliases: []string{"Kreatinin", "Creatinine"}, MinReference: ref(0.6), MaxReference: ref(1.3)},
	{Key: "bun", Name: "BUN", Category: CategoryKidney, DefaultUnit: UnitMgDL, Aliases: []string{"Karbamid", "Urea", "BUN"}, MinReference: ref(7), MaxReference: ref(20)},

	{Key: "alt", Name: "ALT", Category: CategoryLiver, DefaultUnit: UnitIUL, Aliases: []string{"ALT", "GPT", "ALAT"}, MinReference: ref(7), MaxReference: ref(56)},
	{Key: "ast", Name: "AST", Category: CategoryLiver, DefaultUnit: UnitIUL, Aliases: []string{"AST", "GOT", "ASAT"}, MinReference: ref(10), MaxReference: ref(40)},
	{Key: "albumin", Name: "Albumin", Category: CategoryLiver, DefaultUnit: UnitMgDL, Aliases: []string{"Albumin"}, MinReference: ref(3.5), MaxReference: ref(5.0)},

	{Key: "sodium", Name: "Sodium", Category: CategoryElectrolytes, DefaultUnit: UnitMmolL, Aliases: []string{"Nátrium", "Sodium"}, MinReference: ref(135), MaxReference: ref(145)},
	{Key: "potassium", Name: "Potassium", Category: CategoryElectrolytes, DefaultUnit: UnitMmolL, Aliases: []string{"Kálium", "Potassium"}, MinReference: ref(3.5), MaxReference: ref(5.1)},
}

// All returns the catalog in declaration order. The returned slice is
// shared; callers must not mutate it.
func All() []Definition {
	return all
}

// ByKey returns the definition with the given stable key, or nil.
func ByKey(key string) *Definition {
	for i := range all {
		if all[i].Key == key {
			return &all[i]
		}
	}

	return nil
}

// Match returns the first definition, in declaration order, whose
// normalized name or alias occurs as a substring of the normalized
// line. Returns nil when nothing matches.
func Match(line string) *Definition {
	key := Normalize(line)
	if key == "" {
		return nil
	}

	for i := range all {
		def := &all[i]
		if strings.Contains(key, Normalize(def.Name)) {
			return def
		}

		for _, alias := range def.Aliases {
			if strings.Contains(key, Normalize(alias)) {
				return def
			}
		}
	}

	return nil
}

// Search performs a case-insensitive substring filter over names and
// aliases for interactive browsing. An empty or whitespace-only query
// returns the whole catalog. Unlike Match, Search does not fold
// diacritics: it is a plain text filter, not a fuzzy matcher.
func Search(query string) []Definition {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return All()
	}

	lowered := strings.ToLower(trimmed)

	var hits []Definition

	for _, def := range all {
		if strings.Contains(strings.ToLower(def.Name), lowered) {
			hits = append(hits, def)
			continue
		}

		for _, alias := range def.Aliases {
			if strings.Contains(strings.ToLower(alias), lowered) {
				hits = append(hits, def)
				break
			}
		}
	}

	return hits
}
