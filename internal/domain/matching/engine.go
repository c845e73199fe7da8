package matching

import (
	"math"

	"stujob/internal/domain/skill"
)

// Calculate scores one candidate against a request's required-skill list on a
// 0-100 scale. Every required entry contributes its priority weight to the
// denominator; entries whose normalized name appears among the candidate's
// skills also contribute it to the numerator. Duplicate required names are
// counted per entry, not deduplicated.
//
// An empty required list or an empty candidate skill list scores 0: a request
// without declared needs is never "fully satisfied". Candidate records with
// no resolvable name count as unmatched. Rounding is half away from zero, so
// 12.5 becomes 13.
func Calculate(candidateSkills []skill.CandidateSkill, required []skill.RequiredSkill) int {
	if len(required) == 0 || len(candidateSkills) == 0 {
		return 0
	}

	owned := make(map[string]struct{}, len(candidateSkills))
	for _, cs := range candidateSkills {
		name, ok := cs.RawName()
		if !ok {
			continue
		}
		owned[skill.Normalize(name)] = struct{}{}
	}

	totalWeight := 0
	matchedWeight := 0
	for _, rs := range required {
		w := rs.Priority.Weight()
		totalWeight += w
		if _, ok := owned[skill.Normalize(rs.Name)]; ok {
			matchedWeight += w
		}
	}
	if totalWeight <= 0 {
		return 0
	}

	score := int(math.Round(float64(matchedWeight) / float64(totalWeight) * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
