package catalog

// Category groups biomarkers by physiological system.
type Category string

const (
	CategoryLipids       Category = "Lipids"
	CategoryHormones     Category = "Hormones"
	CategoryVitamins     Category = "Vitamins"
	CategoryInflammation Category = "Inflammation"
	CategoryMetabolic    Category = "Metabolic"
	CategoryThyroid      Category = "Thyroid"
	CategoryHematology   Category = "Hematology"
	CategoryKidney       Category = "Kidney"
	CategoryLiver        Category = "Liver"
	CategoryElectrolytes Category = "Electrolytes"
)

// Unit is a canonical measurement unit from the fixed vocabulary used
// by the catalog and the unit lexicon.
type Unit string

const (
	UnitMgDL     Unit = "mg/dL"
	UnitMgL      Unit = "mg/L"
	UnitMmolL    Unit = "mmol/L"
	UnitNmolL    Unit = "nmol/L"
	UnitNgML     Unit = "ng/mL"
	UnitIUL      Unit = "IU/L"
	UnitPgML     Unit = "pg/mL"
	UnitMIUL     Unit = "mIU/L"
	UnitUIUML    Unit = "uIU/mL"
	UnitUmolL    Unit = "umol/L"
	UnitGigaL    Unit = "Giga/L"
	UnitTeraL    Unit = "Tera/L"
	UnitGL       Unit = "g/L"
	UnitFL       Unit = "fL"
	UnitPg       Unit = "pg"
	UnitMmHour   Unit = "mm/hour"
	UnitMLMin173 Unit = "mL/min/1.73m2"
	UnitLeuUL    Unit = "LEU/uL"
	UnitLL       Unit = "L/L"
	UnitPercent  Unit = "%"
)

// Definition describes one known biomarker. The catalog table is
// defined once at process start and never mutated; persisted records
// reference entries by Key, never by table index.
type Definition struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	DefaultUnit  Unit     `json:"default_unit"`
	Aliases      []string `json:"aliases,omitempty"`
	MinReference *float64 `json:"min_reference,omitempty"`
	MaxReference *float64 `json:"max_reference,omitempty"`
}

func ref(v float64) *float64 { return &v }
