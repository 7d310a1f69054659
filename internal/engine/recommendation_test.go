package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoro-coderr/aihealthcoach/internal/domain"
)

func recTypes(recs []domain.Recommendation) []domain.RecommendationType {
	types := make([]domain.RecommendationType, len(recs))
	for i, r := range recs {
		types[i] = r.Type
	}
	return types
}

func TestGenerateWorkout(t *testing.T) {
	t.Run("missed workout with no goals yields motivation only", func(t *testing.T) {
		progress := []domain.ProgressEntry{{WorkoutCompleted: false}}
		set := Generate(&domain.Profile{}, progress)

		require.Len(t, set.Workout, 1)
		assert.Equal(t, domain.RecommendationMotivation, set.Workout[0].Type)
		assert.NotEmpty(t, set.Workout[0].Message)
		assert.NotEmpty(t, set.Workout[0].Action)
	})

	t.Run("completed workout emits no motivation nudge", func(t *testing.T) {
		progress := []domain.ProgressEntry{{WorkoutCompleted: true}}
		set := Generate(&domain.Profile{}, progress)
		assert.Empty(t, set.Workout)
	})

	t.Run("goal rules stack with the motivation rule in order", func(t *testing.T) {
		profile := &domain.Profile{
			FitnessGoals: []string{domain.GoalWeightLoss, domain.GoalMuscleGain},
		}
		progress := []domain.ProgressEntry{{WorkoutCompleted: false}}
		set := Generate(profile, progress)

		assert.Equal(t, []domain.RecommendationType{
			domain.RecommendationMotivation,
			domain.RecommendationCardio,
			domain.RecommendationStrength,
		}, recTypes(set.Workout))
	})

	t.Run("only the most recent progress entry is consulted", func(t *testing.T) {
		progress := []domain.ProgressEntry{
			{WorkoutCompleted: true},
			{WorkoutCompleted: false}, // older entry must not trigger the rule
		}
		set := Generate(&domain.Profile{}, progress)
		assert.Empty(t, set.Workout)
	})
}

func TestGenerateNutrition(t *testing.T) {
	t.Run("calorie overshoot beyond 20 percent fires calorie control", func(t *testing.T) {
		progress := []domain.ProgressEntry{{CaloriesConsumed: 2600, TargetCalories: 2000, WorkoutCompleted: true}}
		set := Generate(&domain.Profile{}, progress)

		assert.Equal(t, []domain.RecommendationType{domain.RecommendationCalorieControl}, recTypes(set.Nutrition))
	})

	t.Run("intake exactly at the threshold does not fire", func(t *testing.T) {
		progress := []domain.ProgressEntry{{CaloriesConsumed: 2400, TargetCalories: 2000, WorkoutCompleted: true}}
		set := Generate(&domain.Profile{}, progress)
		assert.Empty(t, set.Nutrition)
	})

	t.Run("vegetarian restriction fires the protein rule", func(t *testing.T) {
		profile := &domain.Profile{
			Preferences: domain.Preferences{
				DietaryRestrictions: []string{domain.RestrictionVegetarian},
			},
		}
		set := Generate(profile, nil)
		assert.Equal(t, []domain.RecommendationType{domain.RecommendationProtein}, recTypes(set.Nutrition))
	})

	t.Run("both nutrition rules are independent", func(t *testing.T) {
		profile := &domain.Profile{
			Preferences: domain.Preferences{
				DietaryRestrictions: []string{domain.RestrictionVegetarian},
			},
		}
		progress := []domain.ProgressEntry{{CaloriesConsumed: 3000, TargetCalories: 2000, WorkoutCompleted: true}}
		set := Generate(profile, progress)

		assert.Equal(t, []domain.RecommendationType{
			domain.RecommendationCalorieControl,
			domain.RecommendationProtein,
		}, recTypes(set.Nutrition))
	})
}

func TestGenerateLifestyle(t *testing.T) {
	t.Run("always exactly two fixed entries in order", func(t *testing.T) {
		for _, set := range []RecommendationSet{
			Generate(&domain.Profile{}, nil),
			Generate(nil, nil),
			Generate(&domain.Profile{FitnessGoals: []string{domain.GoalWeightLoss}}, []domain.ProgressEntry{{WorkoutCompleted: false}}),
		} {
			require.Len(t, set.Lifestyle, 2)
			assert.Equal(t, domain.RecommendationSleep, set.Lifestyle[0].Type)
			assert.Equal(t, domain.RecommendationHydration, set.Lifestyle[1].Type)
		}
	})
}

func TestGeneratePermissiveInputs(t *testing.T) {
	t.Run("empty profile and no history yields empty workout and nutrition", func(t *testing.T) {
		set := Generate(&domain.Profile{}, nil)
		assert.Empty(t, set.Workout)
		assert.Empty(t, set.Nutrition)
		assert.Len(t, set.Lifestyle, 2)
	})

	t.Run("nil profile behaves like one with empty collections", func(t *testing.T) {
		set := Generate(nil, []domain.ProgressEntry{{WorkoutCompleted: false}})
		assert.Equal(t, []domain.RecommendationType{domain.RecommendationMotivation}, recTypes(set.Workout))
		assert.Empty(t, set.Nutrition)
	})
}
