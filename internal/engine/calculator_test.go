package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoro-coderr/aihealthcoach/internal/domain"
)

func TestComputeTargets(t *testing.T) {
	t.Run("male moderately active with weight loss goal", func(t *testing.T) {
		// BMR = 88.362 + 13.397*75 + 4.799*175 - 5.677*28 = 1774.006
		// TDEE = 1774.006 * 1.55 = 2749.709, minus 500 -> 2250
		profile := &domain.Profile{
			Age:           28,
			Weight:        75,
			Height:        175,
			Gender:        domain.GenderMale,
			ActivityLevel: domain.ActivityModeratelyActive,
			FitnessGoals:  []string{domain.GoalWeightLoss, domain.GoalMuscleGain},
		}

		targets := ComputeTargets(profile)

		assert.Equal(t, 2250, targets.DailyCalories)
		assert.Equal(t, 141, targets.Macros.Protein) // 2250*0.25/4 = 140.625
		assert.Equal(t, 253, targets.Macros.Carbs)   // 2250*0.45/4 = 253.125
		assert.Equal(t, 75, targets.Macros.Fats)     // 2250*0.30/9 = 75
	})

	t.Run("female sedentary with no goal adjustment", func(t *testing.T) {
		// BMR = 447.593 + 9.247*60 + 3.098*165 - 4.330*30 = 1383.683
		// TDEE = 1383.683 * 1.2 = 1660.42 -> 1660
		profile := &domain.Profile{
			Age:           30,
			Weight:        60,
			Height:        165,
			Gender:        domain.GenderFemale,
			ActivityLevel: domain.ActivitySedentary,
			FitnessGoals:  []string{domain.GoalEndurance},
		}

		targets := ComputeTargets(profile)

		assert.Equal(t, 1660, targets.DailyCalories)
		assert.Equal(t, 104, targets.Macros.Protein)
		assert.Equal(t, 187, targets.Macros.Carbs)
		assert.Equal(t, 55, targets.Macros.Fats)
	})

	t.Run("other gender uses the female formula", func(t *testing.T) {
		base := domain.Profile{
			Age:           30,
			Weight:        60,
			Height:        165,
			ActivityLevel: domain.ActivitySedentary,
		}
		female := base
		female.Gender = domain.GenderFemale
		other := base
		other.Gender = domain.GenderOther

		assert.Equal(t, ComputeTargets(&female), ComputeTargets(&other))
	})

	t.Run("weight loss takes precedence over muscle gain", func(t *testing.T) {
		base := domain.Profile{
			Age:           28,
			Weight:        75,
			Height:        175,
			Gender:        domain.GenderMale,
			ActivityLevel: domain.ActivityModeratelyActive,
		}

		lossOnly := base
		lossOnly.FitnessGoals = []string{domain.GoalWeightLoss}
		gainOnly := base
		gainOnly.FitnessGoals = []string{domain.GoalMuscleGain}
		both := base
		both.FitnessGoals = []string{domain.GoalMuscleGain, domain.GoalWeightLoss}

		require.Equal(t, ComputeTargets(&lossOnly), ComputeTargets(&both))
		assert.Equal(t, 800, ComputeTargets(&gainOnly).DailyCalories-ComputeTargets(&both).DailyCalories)
	})

	t.Run("unknown activity level falls back to sedentary", func(t *testing.T) {
		known := domain.Profile{
			Age:           40,
			Weight:        80,
			Height:        180,
			Gender:        domain.GenderMale,
			ActivityLevel: domain.ActivitySedentary,
		}
		unknown := known
		unknown.ActivityLevel = domain.ActivityLevel("couch_potato")

		assert.Equal(t, ComputeTargets(&known), ComputeTargets(&unknown))

		missing := known
		missing.ActivityLevel = ""
		assert.Equal(t, ComputeTargets(&known), ComputeTargets(&missing))
	})

	t.Run("deterministic and positive across valid profiles", func(t *testing.T) {
		profiles := []*domain.Profile{
			{Age: 13, Weight: 30, Height: 100, Gender: domain.GenderFemale, ActivityLevel: domain.ActivitySedentary, FitnessGoals: []string{domain.GoalWeightLoss}},
			{Age: 65, Weight: 90, Height: 185, Gender: domain.GenderMale, ActivityLevel: domain.ActivityVeryActive},
			{Age: 45, Weight: 120, Height: 200, Gender: domain.GenderOther, ActivityLevel: domain.ActivityLightlyActive, FitnessGoals: []string{domain.GoalMuscleGain}},
		}
		for _, p := range profiles {
			first := ComputeTargets(p)
			second := ComputeTargets(p)
			assert.Equal(t, first, second)
			assert.Positive(t, first.DailyCalories)
			assert.GreaterOrEqual(t, first.Macros.Protein, 0)
			assert.GreaterOrEqual(t, first.Macros.Carbs, 0)
			assert.GreaterOrEqual(t, first.Macros.Fats, 0)
		}
	})

	t.Run("macro calories reconstruct the daily target within rounding slack", func(t *testing.T) {
		for _, p := range []*domain.Profile{
			{Age: 28, Weight: 75, Height: 175, Gender: domain.GenderMale, ActivityLevel: domain.ActivityModeratelyActive, FitnessGoals: []string{domain.GoalWeightLoss}},
			{Age: 30, Weight: 60, Height: 165, Gender: domain.GenderFemale, ActivityLevel: domain.ActivitySedentary},
		} {
			targets := ComputeTargets(p)
			reconstructed := targets.Macros.Protein*4 + targets.Macros.Carbs*4 + targets.Macros.Fats*9
			assert.InDelta(t, targets.DailyCalories, reconstructed, 3)
		}
	})
}
