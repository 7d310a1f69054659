package engine

import "github.com/zoro-coderr/aihealthcoach/internal/domain"

// calorieOvershootFactor is how far above target yesterday's intake must
// land before the calorie-control rule fires (20% over).
const calorieOvershootFactor = 1.2

// RecommendationSet groups the generated recommendations by category.
// Each list is ordered by rule evaluation order; callers must not assume
// any other ordering.
type RecommendationSet struct {
	Workout   []domain.Recommendation `json:"workout"`
	Nutrition []domain.Recommendation `json:"nutrition"`
	Lifestyle []domain.Recommendation `json:"lifestyle"`
}

// Generate evaluates the recommendation rules against a profile and the
// user's progress history, ordered most-recent-first (only the first entry
// is consulted). The engine does not validate the profile: missing goals
// or restrictions simply mean the matching rules never fire, and an absent
// history behaves like an empty one.
func Generate(profile *domain.Profile, recentProgress []domain.ProgressEntry) RecommendationSet {
	return RecommendationSet{
		Workout:   workoutRecommendations(profile, recentProgress),
		Nutrition: nutritionRecommendations(profile, recentProgress),
		Lifestyle: lifestyleRecommendations(),
	}
}

// workoutRecommendations emits a motivation nudge after a missed workout,
// then goal-specific training suggestions. The rules are independent, not
// mutually exclusive; zero recommendations is a valid result.
func workoutRecommendations(profile *domain.Profile, recentProgress []domain.ProgressEntry) []domain.Recommendation {
	recs := []domain.Recommendation{}

	if len(recentProgress) > 0 && !recentProgress[0].WorkoutCompleted {
		recs = append(recs, domain.Recommendation{
			Type:    domain.RecommendationMotivation,
			Message: "You missed yesterday's workout. Ease back in with a lighter session today.",
			Action:  "Try a 20-minute walk or a short mobility routine to rebuild the habit.",
		})
	}

	if profile.HasGoal(domain.GoalWeightLoss) {
		recs = append(recs, domain.Recommendation{
			Type:    domain.RecommendationCardio,
			Message: "Cardio work will accelerate your weight loss progress.",
			Action:  "Add 2-3 HIIT sessions of 20-30 minutes to your week.",
		})
	}

	if profile.HasGoal(domain.GoalMuscleGain) {
		recs = append(recs, domain.Recommendation{
			Type:    domain.RecommendationStrength,
			Message: "Progressive overload is the fastest route to muscle gain.",
			Action:  "Focus on compound lifts and add a little weight or an extra rep each week.",
		})
	}

	return recs
}

// nutritionRecommendations checks yesterday's calorie intake against its
// target and flags protein sourcing for vegetarians. Both rules are
// independent.
func nutritionRecommendations(profile *domain.Profile, recentProgress []domain.ProgressEntry) []domain.Recommendation {
	recs := []domain.Recommendation{}

	if len(recentProgress) > 0 {
		latest := recentProgress[0]
		if latest.CaloriesConsumed > latest.TargetCalories*calorieOvershootFactor {
			recs = append(recs, domain.Recommendation{
				Type:    domain.RecommendationCalorieControl,
				Message: "You exceeded your calorie target by more than 20% yesterday.",
				Action:  "Plan meals ahead today and reach for high-volume, lower-calorie foods.",
			})
		}
	}

	if profile.HasDietaryRestriction(domain.RestrictionVegetarian) {
		recs = append(recs, domain.Recommendation{
			Type:    domain.RecommendationProtein,
			Message: "Hitting your protein target takes extra planning on a vegetarian diet.",
			Action:  "Include lentils, Greek yogurt, tofu or eggs with every meal.",
		})
	}

	return recs
}

// lifestyleRecommendations always returns exactly two fixed entries, sleep
// then hydration, regardless of input.
func lifestyleRecommendations() []domain.Recommendation {
	return []domain.Recommendation{
		{
			Type:    domain.RecommendationSleep,
			Message: "Quality sleep drives recovery and appetite regulation.",
			Action:  "Aim for 7-9 hours of sleep on a consistent schedule.",
		},
		{
			Type:    domain.RecommendationHydration,
			Message: "Hydration affects energy, performance and hunger cues.",
			Action:  "Drink at least 8 glasses of water spread through the day.",
		},
	}
}
