package domain

// RecommendationType tags a recommendation with its rule category.
type RecommendationType string

const (
	RecommendationMotivation     RecommendationType = "motivation"
	RecommendationCardio         RecommendationType = "cardio"
	RecommendationStrength       RecommendationType = "strength"
	RecommendationCalorieControl RecommendationType = "calorie_control"
	RecommendationProtein        RecommendationType = "protein"
	RecommendationSleep          RecommendationType = "sleep"
	RecommendationHydration      RecommendationType = "hydration"
)

// Recommendation is a single actionable suggestion produced by the
// recommendation engine. Produced fresh on every call, never stored.
type Recommendation struct {
	Type    RecommendationType `json:"type"`
	Message string             `json:"message"`
	Action  string             `json:"action"`
}
