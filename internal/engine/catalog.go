package engine

import "github.com/zoro-coderr/aihealthcoach/internal/domain"

// slotOrder is the canonical iteration order for meal slots.
var slotOrder = []domain.MealSlot{
	domain.SlotBreakfast,
	domain.SlotLunch,
	domain.SlotDinner,
}

// mealCatalog is the static reference catalog keyed by meal slot. It is
// initialized once and must never be mutated after process start; the meal
// plan filter copies slices before returning them so concurrent reads need
// no coordination.
var mealCatalog = map[domain.MealSlot][]domain.Meal{
	domain.SlotBreakfast: {
		{
			Name:        "Oatmeal with Berries",
			Calories:    320,
			Protein:     12,
			Carbs:       54,
			Fats:        7,
			Ingredients: []string{"rolled oats", "almond milk", "blueberries", "chia seeds", "maple syrup"},
			PrepTime:    10,
			Vegan:       true,
			GlutenFree:  false,
		},
		{
			Name:        "Greek Yogurt Parfait",
			Calories:    280,
			Protein:     20,
			Carbs:       32,
			Fats:        8,
			Ingredients: []string{"greek yogurt", "granola", "honey", "strawberries"},
			PrepTime:    5,
			Vegan:       false,
			GlutenFree:  false,
		},
		{
			Name:        "Veggie Scramble",
			Calories:    310,
			Protein:     21,
			Carbs:       9,
			Fats:        22,
			Ingredients: []string{"eggs", "spinach", "bell pepper", "mushrooms", "olive oil"},
			PrepTime:    15,
			Vegan:       false,
			GlutenFree:  true,
		},
		{
			Name:        "Tofu Breakfast Bowl",
			Calories:    350,
			Protein:     18,
			Carbs:       38,
			Fats:        14,
			Ingredients: []string{"firm tofu", "quinoa", "avocado", "cherry tomatoes", "turmeric"},
			PrepTime:    20,
			Vegan:       true,
			GlutenFree:  true,
		},
	},
	domain.SlotLunch: {
		{
			Name:        "Grilled Chicken Salad",
			Calories:    420,
			Protein:     38,
			Carbs:       18,
			Fats:        22,
			Ingredients: []string{"chicken breast", "mixed greens", "cucumber", "cherry tomatoes", "olive oil", "lemon"},
			PrepTime:    20,
			Vegan:       false,
			GlutenFree:  true,
		},
		{
			Name:        "Chickpea Buddha Bowl",
			Calories:    480,
			Protein:     17,
			Carbs:       66,
			Fats:        16,
			Ingredients: []string{"chickpeas", "brown rice", "kale", "carrot", "tahini", "lemon"},
			PrepTime:    25,
			Vegan:       true,
			GlutenFree:  true,
		},
		{
			Name:        "Turkey Wrap",
			Calories:    450,
			Protein:     32,
			Carbs:       44,
			Fats:        15,
			Ingredients: []string{"whole wheat tortilla", "turkey breast", "hummus", "lettuce", "tomato"},
			PrepTime:    10,
			Vegan:       false,
			GlutenFree:  false,
		},
		{
			Name:        "Lentil Soup with Bread",
			Calories:    390,
			Protein:     19,
			Carbs:       60,
			Fats:        8,
			Ingredients: []string{"red lentils", "onion", "carrot", "celery", "vegetable stock", "sourdough bread"},
			PrepTime:    35,
			Vegan:       true,
			GlutenFree:  false,
		},
	},
	domain.SlotDinner: {
		{
			Name:        "Baked Salmon with Vegetables",
			Calories:    520,
			Protein:     40,
			Carbs:       24,
			Fats:        28,
			Ingredients: []string{"salmon fillet", "broccoli", "sweet potato", "olive oil", "garlic"},
			PrepTime:    30,
			Vegan:       false,
			GlutenFree:  true,
		},
		{
			Name:        "Vegan Stir-Fry with Rice",
			Calories:    460,
			Protein:     16,
			Carbs:       68,
			Fats:        13,
			Ingredients: []string{"tofu", "jasmine rice", "broccoli", "snap peas", "soy sauce", "sesame oil"},
			PrepTime:    25,
			Vegan:       true,
			GlutenFree:  false,
		},
		{
			Name:        "Beef and Quinoa Bowl",
			Calories:    550,
			Protein:     42,
			Carbs:       46,
			Fats:        20,
			Ingredients: []string{"lean ground beef", "quinoa", "zucchini", "red onion", "paprika"},
			PrepTime:    30,
			Vegan:       false,
			GlutenFree:  true,
		},
		{
			Name:        "Stuffed Bell Peppers",
			Calories:    410,
			Protein:     14,
			Carbs:       58,
			Fats:        14,
			Ingredients: []string{"bell peppers", "black beans", "brown rice", "corn", "cumin", "cilantro"},
			PrepTime:    45,
			Vegan:       true,
			GlutenFree:  true,
		},
	},
}

// Catalog returns a copy of the full meal catalog, slot by slot in
// canonical order preserved within each slot. Callers may mutate the
// returned map freely.
func Catalog() map[domain.MealSlot][]domain.Meal {
	out := make(map[domain.MealSlot][]domain.Meal, len(mealCatalog))
	for _, slot := range slotOrder {
		meals := mealCatalog[slot]
		out[slot] = append([]domain.Meal(nil), meals...)
	}
	return out
}
