package match

import (
	"sort"

	"graftt/internal/classfile"
)

// DefaultThreshold is the minimum score for a method to be suggested.
const DefaultThreshold = 0.5

// Candidate is a method scored against a wanted signature.
type Candidate struct {
	Key       classfile.MethodKey
	NameScore float64 // Name similarity (0-1)
	SameDesc  bool    // Descriptors are identical
	SameArity bool    // Same number of parameters
	Score     float64 // Combined score for ranking (higher is better)
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankMethods scores every method in have against want and returns those at
// or above threshold, best first.
func RankMethods(want classfile.MethodKey, have []*classfile.MethodDefinition, threshold float64) CandidateList {
	var candidates CandidateList

	wantArity := len(classfile.ArgumentTypes(want.Desc))

	for _, m := range have {
		if m.IsInitializer() {
			continue
		}

		c := Candidate{
			Key:       m.Key(),
			NameScore: Similarity(want.Name, m.Name),
			SameDesc:  want.Desc == m.Desc,
			SameArity: wantArity == len(classfile.ArgumentTypes(m.Desc)),
		}
		c.Score = combinedScore(c)

		if c.Score >= threshold {
			candidates = append(candidates, c)
		}
	}

	sort.Sort(candidates)

	return candidates
}

// Keys returns the first n candidate signatures as strings.
func (cl CandidateList) Keys(n int) []string {
	var out []string

	for i := 0; i < len(cl) && i < n; i++ {
		out = append(out, cl[i].Key.String())
	}

	return out
}

// combinedScore weighs the name at 70%, descriptor identity at 20% and
// parameter count at 10%.
func combinedScore(c Candidate) float64 {
	score := 0.7 * c.NameScore
	if c.SameDesc {
		score += 0.2
	}

	if c.SameArity {
		score += 0.1
	}

	return score
}

// sort.Interface, best score first then signature for determinism.

func (cl CandidateList) Len() int      { return len(cl) }
func (cl CandidateList) Swap(i, j int) { cl[i], cl[j] = cl[j], cl[i] }
func (cl CandidateList) Less(i, j int) bool {
	if cl[i].Score != cl[j].Score {
		return cl[i].Score > cl[j].Score
	}

	return cl[i].Key.String() < cl[j].Key.String()
}
