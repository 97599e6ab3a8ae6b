package title

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"
)

var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// Confidence grades a match score.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // score < 0.70
	ConfidenceLow                      // score >= 0.70
	ConfidenceMedium                   // score >= 0.85
	ConfidenceHigh                     // score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// ParseConfidence parses "none", "low", "medium" or "high".
func ParseConfidence(s string) (Confidence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return ConfidenceNone, nil
	case "low", "":
		return ConfidenceLow, nil
	case "medium":
		return ConfidenceMedium, nil
	case "high":
		return ConfidenceHigh, nil
	default:
		return ConfidenceNone, fmt.Errorf("unknown confidence %q", s)
	}
}

func confidenceFor(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// MatchResult is the best candidate found by MatchTitle.
type MatchResult struct {
	Title      string     // candidate as given, empty when Confidence is none
	Score      float64    // Jaro-Winkler similarity after sequel adjustment, 0.0-1.0
	Confidence Confidence
}

// MatchTitle picks the candidate most similar to query. Both sides are
// cleaned first; Jaro-Winkler favors shared prefixes, and matching sequel
// numbers ("Alien 3" vs "Alien 3") are rewarded while mismatches are penalized.
// Ties keep the earliest candidate.
func MatchTitle(query string, candidates []string) MatchResult {
	best := MatchResult{Confidence: ConfidenceNone}
	if len(candidates) == 0 {
		return best
	}

	cleanQuery := Clean(query)
	queryNumbers := numberRegex.FindAllString(cleanQuery, -1)

	for _, candidate := range candidates {
		cleanCandidate := Clean(candidate)
		score := float64(edlib.JaroWinklerSimilarity(cleanQuery, cleanCandidate))
		score = adjustForNumbers(score, queryNumbers, numberRegex.FindAllString(cleanCandidate, -1))
		if score > best.Score {
			best.Title = candidate
			best.Score = score
		}
	}

	best.Confidence = confidenceFor(best.Score)
	if best.Confidence == ConfidenceNone {
		best.Title = ""
	}
	return best
}

// adjustForNumbers only applies when the query carries numbers: a shared
// number earns x1.05 (capped at 1.0), a candidate without numbers x0.85, and
// disjoint numbers x0.90.
func adjustForNumbers(score float64, queryNums, candidateNums []string) float64 {
	if len(queryNums) == 0 {
		return score
	}
	if len(candidateNums) == 0 {
		return score * 0.85
	}
	for _, n := range queryNums {
		if slices.Contains(candidateNums, n) {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
