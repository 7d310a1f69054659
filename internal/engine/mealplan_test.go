package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoro-coderr/aihealthcoach/internal/domain"
)

func TestBuildMealPlan(t *testing.T) {
	t.Run("no restrictions returns the full catalog order-preserved", func(t *testing.T) {
		plan := BuildMealPlan(nil, nil)
		assert.Equal(t, Catalog(), plan)
	})

	t.Run("vegan restriction never returns a non-vegan meal", func(t *testing.T) {
		plan := BuildMealPlan([]string{domain.RestrictionVegan}, nil)

		require.Len(t, plan, 3)
		for slot, meals := range plan {
			require.NotEmpty(t, meals, "slot %s", slot)
			for _, meal := range meals {
				assert.True(t, meal.Vegan, "meal %q in slot %s", meal.Name, slot)
			}
		}
	})

	t.Run("gluten free restriction drops gluten-bearing meals", func(t *testing.T) {
		plan := BuildMealPlan([]string{domain.RestrictionGlutenFree}, nil)

		for slot, meals := range plan {
			for _, meal := range meals {
				assert.True(t, meal.GlutenFree, "meal %q in slot %s", meal.Name, slot)
			}
		}
		// The catalog carries gluten-free options in every slot.
		assert.NotEmpty(t, plan[domain.SlotBreakfast])
		assert.NotEmpty(t, plan[domain.SlotLunch])
		assert.NotEmpty(t, plan[domain.SlotDinner])
	})

	t.Run("restrictions combine conjunctively", func(t *testing.T) {
		plan := BuildMealPlan([]string{domain.RestrictionVegan, domain.RestrictionGlutenFree}, nil)

		for slot, meals := range plan {
			for _, meal := range meals {
				assert.True(t, meal.Vegan && meal.GlutenFree, "meal %q in slot %s", meal.Name, slot)
			}
		}
	})

	t.Run("filtering preserves catalog order within a slot", func(t *testing.T) {
		full := Catalog()
		plan := BuildMealPlan([]string{domain.RestrictionVegan}, nil)

		for _, slot := range []domain.MealSlot{domain.SlotBreakfast, domain.SlotLunch, domain.SlotDinner} {
			i := 0
			for _, meal := range full[slot] {
				if i < len(plan[slot]) && plan[slot][i].Name == meal.Name {
					i++
				}
			}
			assert.Equal(t, len(plan[slot]), i, "slot %s order diverged from catalog", slot)
		}
	})

	t.Run("unrecognized restrictions are ignored", func(t *testing.T) {
		plan := BuildMealPlan([]string{"keto", domain.RestrictionVegetarian}, nil)
		assert.Equal(t, Catalog(), plan)
	})

	t.Run("cuisine preferences are accepted but not applied", func(t *testing.T) {
		plan := BuildMealPlan(nil, []string{"thai", "mexican"})
		assert.Equal(t, Catalog(), plan)
	})
}

func TestCatalog(t *testing.T) {
	t.Run("covers the three slots with complete entries", func(t *testing.T) {
		catalog := Catalog()
		require.Len(t, catalog, 3)
		for slot, meals := range catalog {
			require.NotEmpty(t, meals, "slot %s", slot)
			for _, meal := range meals {
				assert.NotEmpty(t, meal.Name)
				assert.Positive(t, meal.Calories)
				assert.NotEmpty(t, meal.Ingredients)
				assert.Positive(t, meal.PrepTime)
			}
		}
	})

	t.Run("returns an independent copy", func(t *testing.T) {
		first := Catalog()
		first[domain.SlotBreakfast][0].Name = "mutated"
		second := Catalog()
		assert.NotEqual(t, "mutated", second[domain.SlotBreakfast][0].Name)
	})
}
