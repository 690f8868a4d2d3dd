package adaptive

import (
	"sort"
	"strings"
)

// maxSubstitutions caps how many ranked candidates are returned.
const maxSubstitutions = 5

// Candidate scoring weights.
const (
	substitutionBaseScore = 0.5
	muscleOverlapWeight   = 0.2
	difficultyMatchWeight = 0.2
)

// rankSubstitutions filters and ranks catalog exercises that can replace the
// original. A candidate must share at least one target muscle group with the
// original, require only equipment the user has available, and not be the
// original itself. Ties keep catalog order (stable sort), and at most five
// candidates are returned.
func rankSubstitutions(original Exercise, reason SubstitutionReason, profile UserProfile, catalog []Exercise) []Exercise {
	_ = reason // all reasons currently rank by the same suitability score

	type scored struct {
		exercise Exercise
		score    float64
	}

	var candidates []scored
	for _, candidate := range catalog {
		if candidate.ID == original.ID {
			continue
		}

		overlap := muscleOverlap(original, candidate)
		if overlap == 0 {
			continue
		}
		if !equipmentAvailable(candidate, profile) {
			continue
		}

		score := substitutionBaseScore + float64(overlap)*muscleOverlapWeight
		if candidate.Difficulty == original.Difficulty {
			score += difficultyMatchWeight
		}

		candidates = append(candidates, scored{exercise: candidate, score: clamp(score, 0, 1)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	count := min(len(candidates), maxSubstitutions)
	ranked := make([]Exercise, 0, count)
	for _, c := range candidates[:count] {
		ranked = append(ranked, c.exercise)
	}
	return ranked
}

// muscleOverlap counts target muscle groups shared by two exercises.
// Comparison is case-insensitive since tags come from mixed sources.
func muscleOverlap(a, b Exercise) int {
	groups := make(map[string]struct{}, len(a.MuscleGroups))
	for _, g := range a.MuscleGroups {
		groups[strings.ToLower(g)] = struct{}{}
	}

	overlap := 0
	for _, g := range b.MuscleGroups {
		if _, ok := groups[strings.ToLower(g)]; ok {
			overlap++
		}
	}
	return overlap
}

// equipmentAvailable reports whether the user has every piece of equipment the
// exercise requires. Bodyweight exercises require nothing.
func equipmentAvailable(ex Exercise, profile UserProfile) bool {
	available := make(map[string]struct{}, len(profile.Equipment))
	for _, e := range profile.Equipment {
		available[strings.ToLower(e)] = struct{}{}
	}

	for _, required := range ex.Equipment {
		if _, ok := available[strings.ToLower(required)]; !ok {
			return false
		}
	}
	return true
}
