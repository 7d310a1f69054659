package engine

import "github.com/zoro-coderr/aihealthcoach/internal/domain"

// hasTag reports whether want appears in tags.
func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

// BuildMealPlan filters the meal catalog against the requested dietary
// restrictions and returns, per slot, the eligible meals in catalog order.
// A meal survives only if it satisfies every requested tag: a vegan
// restriction drops non-vegan meals, a gluten_free restriction drops meals
// containing gluten. Other restriction values are ignored here (vegetarian
// is handled by the recommendation rules, not the catalog flags). A slot
// with zero eligible meals is valid output.
//
// cuisines is accepted for API compatibility but not applied yet; it is
// reserved for cuisine-based filtering.
//
// The filter does not prune by calorie count; targets are returned
// alongside the plan so clients can trim portions themselves.
func BuildMealPlan(restrictions, cuisines []string) map[domain.MealSlot][]domain.Meal {
	wantVegan := hasTag(restrictions, domain.RestrictionVegan)
	wantGlutenFree := hasTag(restrictions, domain.RestrictionGlutenFree)
	_ = cuisines

	plan := make(map[domain.MealSlot][]domain.Meal, len(mealCatalog))
	for _, slot := range slotOrder {
		eligible := make([]domain.Meal, 0, len(mealCatalog[slot]))
		for _, meal := range mealCatalog[slot] {
			if wantVegan && !meal.Vegan {
				continue
			}
			if wantGlutenFree && !meal.GlutenFree {
				continue
			}
			eligible = append(eligible, meal)
		}
		plan[slot] = eligible
	}
	return plan
}
