package engine

import (
	"math"

	"github.com/zoro-coderr/aihealthcoach/internal/domain"
)

// activityFactors maps an activity level to its TDEE multiplier. This is
// the single source of truth for the calculator; unknown or missing levels
// fall back to the sedentary factor.
var activityFactors = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:        1.2,
	domain.ActivityLightlyActive:    1.375,
	domain.ActivityModeratelyActive: 1.55,
	domain.ActivityVeryActive:       1.725,
}

// Calorie adjustments applied on top of TDEE depending on the user's goal.
// weight_loss takes precedence over muscle_gain when both are present:
// first-matching-branch wins, adjustments are never combined.
const (
	weightLossAdjustment = -500
	muscleGainAdjustment = 300
)

// Macro split: 25% of calories from protein, 45% from carbs, 30% from fat,
// at 4/4/9 kcal per gram.
const (
	proteinShare = 0.25
	carbsShare   = 0.45
	fatsShare    = 0.30

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFats    = 9
)

// ComputeTargets derives the daily calorie target and macro gram targets
// for a profile using the gender-specific Harris-Benedict BMR formula
// scaled by the activity factor. It is a total, side-effect-free function
// over any numerically valid profile: identical input always yields
// identical output. Macro grams are rounded independently, so their implied
// calories may not sum exactly to DailyCalories.
func ComputeTargets(profile *domain.Profile) domain.NutritionTargets {
	var bmr float64
	if profile.Gender == domain.GenderMale {
		bmr = 88.362 + 13.397*profile.Weight + 4.799*profile.Height - 5.677*float64(profile.Age)
	} else {
		bmr = 447.593 + 9.247*profile.Weight + 3.098*profile.Height - 4.330*float64(profile.Age)
	}

	factor, found := activityFactors[profile.ActivityLevel]
	if !found {
		factor = activityFactors[domain.ActivitySedentary]
	}
	calories := bmr * factor

	switch {
	case profile.HasGoal(domain.GoalWeightLoss):
		calories += weightLossAdjustment
	case profile.HasGoal(domain.GoalMuscleGain):
		calories += muscleGainAdjustment
	}

	daily := int(math.Round(calories))
	return domain.NutritionTargets{
		DailyCalories: daily,
		Macros: domain.MacroTargets{
			Protein: int(math.Round(float64(daily) * proteinShare / kcalPerGramProtein)),
			Carbs:   int(math.Round(float64(daily) * carbsShare / kcalPerGramCarbs)),
			Fats:    int(math.Round(float64(daily) * fatsShare / kcalPerGramFats)),
		},
	}
}
