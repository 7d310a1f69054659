package domain

// MacroTargets holds daily macronutrient gram targets. Each value is
// rounded independently, so the implied calories may drift a couple of
// kcal from DailyCalories.
type MacroTargets struct {
	Protein int `json:"protein"` // grams
	Carbs   int `json:"carbs"`   // grams
	Fats    int `json:"fats"`    // grams
}

// NutritionTargets is the computed daily calorie and macro budget for a
// profile. Derived fresh on every call, never persisted.
type NutritionTargets struct {
	DailyCalories int          `json:"dailyCalories"`
	Macros        MacroTargets `json:"macros"`
}
