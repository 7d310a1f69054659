package domain

// MealSlot names a meal category in the catalog.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
)

// Meal is a static catalog entry: immutable reference data loaded once at
// process start. Macro values are grams, calories are kcal.
type Meal struct {
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	Protein     int      `json:"protein"`
	Carbs       int      `json:"carbs"`
	Fats        int      `json:"fats"`
	Ingredients []string `json:"ingredients"`
	PrepTime    int      `json:"prepTime"` // minutes
	Vegan       bool     `json:"vegan"`
	GlutenFree  bool     `json:"glutenFree"`
}
