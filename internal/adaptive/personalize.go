package adaptive

import "strings"

// personalizeWorkout scans the base workout for conflicts with the user's
// limitations and available equipment, producing pending modifications for the
// presentation layer to act on. Applied stays false until enacted.
func personalizeWorkout(workout Workout, profile UserProfile) []PersonalizedModification {
	var mods []PersonalizedModification

	for _, ex := range workout.Exercises {
		if tag, conflict := injuryConflict(ex, profile); conflict {
			mods = append(mods, PersonalizedModification{
				ExerciseID: ex.ID,
				Type:       ModificationSubstitute,
				Reason:     ReasonInjuryHistory,
				Params:     map[string]any{"limitation": tag},
				Applied:    false,
			})
			continue
		}

		if !equipmentAvailable(ex, profile) {
			mods = append(mods, PersonalizedModification{
				ExerciseID: ex.ID,
				Type:       ModificationSubstitute,
				Reason:     ReasonEquipmentUnavailable,
				Params:     nil,
				Applied:    false,
			})
		}
	}

	return mods
}

// injuryConflict reports whether one of the user's limitation tags appears in
// the exercise's muscle groups or name. Tags are free text, so matching is a
// case-insensitive substring check.
func injuryConflict(ex Exercise, profile UserProfile) (string, bool) {
	name := strings.ToLower(ex.Name)
	for _, limitation := range profile.Limitations {
		tag := strings.ToLower(strings.TrimSpace(limitation))
		if tag == "" {
			continue
		}
		if strings.Contains(name, tag) {
			return limitation, true
		}
		for _, group := range ex.MuscleGroups {
			if strings.Contains(strings.ToLower(group), tag) {
				return limitation, true
			}
		}
	}
	return "", false
}
