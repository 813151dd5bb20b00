package parse

import "regexp"

// Numeric candidates are bounded to four integer digits so page
// numbers, dates and long identifiers embedded in a line do not get
// picked up as results.
var numberPattern = regexp.MustCompile(`[-+]?\d{1,4}(?:[.,]\d+)?`)

// BestNumber extracts the numeric substring most likely to be the
// result value of a lab report line. unitStart is the byte offset of
// the detected unit token, or -1 when no unit was found.
//
// With a unit position, the candidate whose start offset is closest to
// the unit wins; equidistant candidates resolve to the earlier
// occurrence. Without one, the first candidate in scan order wins.
// Lines like "CRP 1.20 mg/L (0.00-3.00)" carry the value next to the
// unit and the reference range further away, which is the heuristic
// this encodes.
func BestNumber(text string, unitStart int) (string, bool) {
	locs := numberPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return "", false
	}

	if unitStart < 0 {
		return text[locs[0][0]:locs[0][1]], true
	}

	best := locs[0]
	bestDist := abs(locs[0][0] - unitStart)

	for _, loc := range locs[1:] {
		// Strict less-than keeps the earliest candidate on ties.
		if d := abs(loc[0] - unitStart); d < bestDist {
			best = loc
			bestDist = d
		}
	}

	return text[best[0]:best[1]], true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
