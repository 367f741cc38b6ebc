package scoring

import (
	"math"
)

// Verdict is the band label assigned to a total score.
type Verdict string

const (
	VerdictZion       Verdict = "ZION (Utopia)"
	VerdictFree       Verdict = "Free Society"
	VerdictMixed      Verdict = "Mixed/Neutral"
	VerdictExtractive Verdict = "Extractive (Babylon)"
	VerdictDystopia   Verdict = "DYSTOPIA (Hell)"
)

// Band lower bounds. Each band is [lower, next lower).
const (
	zionFloor       = 80.0
	freeFloor       = 20.0
	mixedFloor      = -20.0
	extractiveFloor = -80.0
)

// Verdicts returns every verdict from the highest band to the lowest.
func Verdicts() []Verdict {
	return []Verdict{VerdictZion, VerdictFree, VerdictMixed, VerdictExtractive, VerdictDystopia}
}

// Classify maps a total score to its verdict. NaN is rejected.
//
//	>= 80 ZION, [20,80) Free, [-20,20) Mixed, [-80,-20) Extractive, < -80 DYSTOPIA
func Classify(score float64) (Verdict, error) {
	if math.IsNaN(score) {
		return "", &ValidationError{Field: "score", Value: score, Reason: "is not a number"}
	}

	switch {
	case score >= zionFloor:
		return VerdictZion, nil
	case score >= freeFloor:
		return VerdictFree, nil
	case score >= mixedFloor:
		return VerdictMixed, nil
	case score >= extractiveFloor:
		return VerdictExtractive, nil
	default:
		return VerdictDystopia, nil
	}
}
