package adaptive

import (
	"testing"

	"github.com/fitadapt/fitadapt/internal/ptr"
)

func TestClassifyExercise(t *testing.T) {
	testCases := []struct {
		name     string
		exercise Exercise
		want     exerciseClass
	}{
		{
			name:     "cardio category wins regardless of muscle groups",
			exercise: Exercise{Category: CategoryCardio, MuscleGroups: []string{"quads", "glutes", "calves", "core"}},
			want:     classCardio,
		},
		{
			name:     "many muscle groups make a compound",
			exercise: Exercise{Category: CategoryStrength, MuscleGroups: []string{"quads", "glutes", "hamstrings"}},
			want:     classCompound,
		},
		{
			name:     "two muscle groups stay isolation",
			exercise: Exercise{Category: CategoryStrength, MuscleGroups: []string{"biceps", "forearms"}},
			want:     classIsolation,
		},
		{
			name:     "single muscle group is isolation",
			exercise: Exercise{Category: CategoryStrength, MuscleGroups: []string{"biceps"}},
			want:     classIsolation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyExercise(tc.exercise); got != tc.want {
				t.Errorf("classifyExercise: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBaseRestSeconds(t *testing.T) {
	testCases := []struct {
		name  string
		class exerciseClass
		reps  int
		want  float64
	}{
		{name: "heavy compound", class: classCompound, reps: 5, want: 180},
		{name: "medium compound", class: classCompound, reps: 8, want: 150},
		{name: "light compound", class: classCompound, reps: 12, want: 120},
		{name: "heavy isolation", class: classIsolation, reps: 3, want: 120},
		{name: "medium isolation", class: classIsolation, reps: 11, want: 90},
		{name: "light isolation", class: classIsolation, reps: 15, want: 60},
		{name: "intense cardio interval", class: classCardio, reps: 1, want: 90},
		{name: "medium cardio", class: classCardio, reps: 6, want: 45},
		{name: "light cardio", class: classCardio, reps: 20, want: 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := baseRestSeconds(tc.class, classifyReps(tc.reps)); got != tc.want {
				t.Errorf("baseRestSeconds: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCalculateRest(t *testing.T) {
	tuning := DefaultTuning()
	bench := Exercise{
		ID:           "bench-press",
		Name:         "Bench Press",
		Category:     CategoryStrength,
		MuscleGroups: []string{"chest", "triceps", "front delts"},
	}

	t.Run("no factors scales base rest by set intensity", func(t *testing.T) {
		set := SetPerformance{Reps: 5, Completed: true, RPE: 5}
		timer := calculateRest(bench, set, RestingFactors{}, tuning)

		if got, want := timer.BaseSeconds, 180; got != want {
			t.Errorf("base seconds: got %d, want %d", got, want)
		}
		// RPE 5 -> intensity 0.5 -> multiplier 1.0.
		if got, want := timer.AdjustedSeconds, 180; got != want {
			t.Errorf("adjusted seconds: got %d, want %d", got, want)
		}
		if len(timer.Recommendations) != 0 {
			t.Errorf("expected no recommendations, got %d", len(timer.Recommendations))
		}
	})

	t.Run("slow heart rate recovery extends rest", func(t *testing.T) {
		set := SetPerformance{Reps: 5, Completed: true, RPE: 5}
		factors := RestingFactors{HeartRateRecoveryBPM: ptr.Ref(12.0)}
		timer := calculateRest(bench, set, factors, tuning)

		// 180 * 1.3 * 1.0 = 234.
		if got, want := timer.AdjustedSeconds, 234; got != want {
			t.Errorf("adjusted seconds: got %d, want %d", got, want)
		}
		if len(timer.Recommendations) != 1 || timer.Recommendations[0].Type != RecommendationExtendRest {
			t.Errorf("expected a single extend_rest recommendation, got %+v", timer.Recommendations)
		}
	})

	t.Run("fast heart rate recovery shortens rest", func(t *testing.T) {
		set := SetPerformance{Reps: 5, Completed: true, RPE: 5}
		factors := RestingFactors{HeartRateRecoveryBPM: ptr.Ref(45.0)}
		timer := calculateRest(bench, set, factors, tuning)

		// 180 * 0.8 * 1.0 = 144.
		if got, want := timer.AdjustedSeconds, 144; got != want {
			t.Errorf("adjusted seconds: got %d, want %d", got, want)
		}
	})

	t.Run("incomplete set discounts intensity", func(t *testing.T) {
		set := SetPerformance{Reps: 5, Completed: false, RPE: 10}
		timer := calculateRest(bench, set, RestingFactors{}, tuning)

		if got, want := timer.SetIntensity, 0.7; !floatsClose(got, want) {
			t.Errorf("set intensity: got %v, want %v", got, want)
		}
		// 180 * (0.7 + 0.7*0.6) = 201.6 -> 202.
		if got, want := timer.AdjustedSeconds, 202; got != want {
			t.Errorf("adjusted seconds: got %d, want %d", got, want)
		}
	})

	t.Run("heavy muscle fatigue adds rest and advice", func(t *testing.T) {
		set := SetPerformance{Reps: 5, Completed: true, RPE: 5}
		factors := RestingFactors{MuscleFatigue: ptr.Ref(0.9)}
		timer := calculateRest(bench, set, factors, tuning)

		// 180 * 1.0 * (0.8 + 0.9*0.4) = 208.8 -> 209.
		if got, want := timer.AdjustedSeconds, 209; got != want {
			t.Errorf("adjusted seconds: got %d, want %d", got, want)
		}
		if len(timer.Recommendations) != 1 || timer.Recommendations[0].Type != RecommendationActiveRecovery {
			t.Errorf("expected a single active_recovery recommendation, got %+v", timer.Recommendations)
		}
	})

	t.Run("poor sleep extends rest", func(t *testing.T) {
		set := SetPerformance{Reps: 5, Completed: true, RPE: 5}
		factors := RestingFactors{SleepQuality: ptr.Ref(0.0)}
		timer := calculateRest(bench, set, factors, tuning)

		// 180 * 1.0 * 1.3 = 234.
		if got, want := timer.AdjustedSeconds, 234; got != want {
			t.Errorf("adjusted seconds: got %d, want %d", got, want)
		}
	})
}

// Exhaustive sweep over extreme factor combinations: whatever the inputs, the
// adjusted rest stays within [MinRestSeconds, MaxRestSeconds].
func TestCalculateRest_AlwaysWithinBounds(t *testing.T) {
	tuning := DefaultTuning()

	exercises := []Exercise{
		{Category: CategoryStrength, MuscleGroups: []string{"quads", "glutes", "hamstrings", "core"}},
		{Category: CategoryStrength, MuscleGroups: []string{"biceps"}},
		{Category: CategoryCardio, MuscleGroups: []string{"legs"}},
	}
	recoveries := []*float64{nil, ptr.Ref(-10.0), ptr.Ref(5.0), ptr.Ref(100.0)}
	sleeps := []*float64{nil, ptr.Ref(-1.0), ptr.Ref(0.0), ptr.Ref(1.0), ptr.Ref(3.0)}
	fatigues := []*float64{nil, ptr.Ref(-1.0), ptr.Ref(0.0), ptr.Ref(1.0), ptr.Ref(5.0)}

	for _, ex := range exercises {
		for _, reps := range []int{1, 6, 30} {
			for _, rpe := range []float64{-5, 0, 5, 10, 20} {
				for _, completed := range []bool{true, false} {
					for _, hrr := range recoveries {
						for _, sleep := range sleeps {
							for _, fatigue := range fatigues {
								set := SetPerformance{Reps: reps, Completed: completed, RPE: rpe}
								factors := RestingFactors{
									HeartRateRecoveryBPM: hrr,
									SleepQuality:         sleep,
									MuscleFatigue:        fatigue,
								}
								timer := calculateRest(ex, set, factors, tuning)
								if float64(timer.AdjustedSeconds) < tuning.MinRestSeconds ||
									float64(timer.AdjustedSeconds) > tuning.MaxRestSeconds {
									t.Fatalf("adjusted rest %d out of bounds for set %+v factors %+v",
										timer.AdjustedSeconds, set, factors)
								}
							}
						}
					}
				}
			}
		}
	}
}
