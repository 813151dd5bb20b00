package parse

import (
	"strings"

	"github.com/31b4/labparse/pkg/catalog"
)

// UnitToken binds a literal unit spelling, as it appears in report
// text, to its canonical unit.
type UnitToken struct {
	Literal string
	Unit    catalog.Unit
}

// unitLexicon is scanned in declared order with first-containment-match
// semantics. Ordering is load-bearing: a token that is a substring of
// another ("g/l" inside "mg/dl", "iu/l" inside "miu/l", "l/l" inside
// "mmol/l") must come after the longer one or lines carrying the longer
// unit are misread.
var unitLexicon = []UnitToken{
	{"mg/dl", catalog.UnitMgDL},
	{"mg/l", catalog.UnitMgL},
	{"mmol/l", catalog.UnitMmolL},
	{"nmol/l", catalog.UnitNmolL},
	{"ng/ml", catalog.UnitNgML},
	{"pg/ml", catalog.UnitPgML},
	{"miu/l", catalog.UnitMIUL},
	{"uiu/ml", catalog.UnitUIUML},
	{"iu/l", catalog.UnitIUL},
	{"umol/l", catalog.UnitUmolL},
	{"giga/l", catalog.UnitGigaL},
	{"tera/l", catalog.UnitTeraL},
	{"g/l", catalog.UnitGL},
	{"fl", catalog.UnitFL},
	{"pg", catalog.UnitPg},
	{"mm/hour", catalog.UnitMmHour},
	{"ml/min/1.73m2", catalog.UnitMLMin173},
	{"leu/ul", catalog.UnitLeuUL},
	{"l/l", catalog.UnitLL},
	{"%", catalog.UnitPercent},
}

// Lexicon returns the unit token table in scan order. Shared slice; do
// not mutate.
func Lexicon() []UnitToken {
	return unitLexicon
}

// DetectUnit returns the unit of the first lexicon token contained in
// the line. The line must already be lowercased with micro signs folded
// to "u" (see FoldLine).
func DetectUnit(line string) (catalog.Unit, bool) {
	for _, tok := range unitLexicon {
		if strings.Contains(line, tok.Literal) {
			return tok.Unit, true
		}
	}

	return "", false
}

// DetectUnitRange returns the byte range of the first lexicon token
// contained in the line, using the same scan order as DetectUnit.
func DetectUnitRange(line string) (start, end int, ok bool) {
	for _, tok := range unitLexicon {
		if idx := strings.Index(line, tok.Literal); idx >= 0 {
			return idx, idx + len(tok.Literal), true
		}
	}

	return 0, 0, false
}

// FoldLine lowercases a report line and folds both the micro sign and
// the Greek mu to ASCII "u" so unit tokens like "umol/l" match text
// printed as "µmol/L".
func FoldLine(line string) string {
	lowered := strings.ToLower(line)
	lowered = strings.ReplaceAll(lowered, "µ", "u")
	lowered = strings.ReplaceAll(lowered, "μ", "u")

	return lowered
}
