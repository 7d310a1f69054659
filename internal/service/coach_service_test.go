package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zoro-coderr/aihealthcoach/internal/domain"
	"github.com/zoro-coderr/aihealthcoach/internal/engine"
	"github.com/zoro-coderr/aihealthcoach/internal/repository"
)

// mockUserRepo implements repository.UserRepository for tests.
type mockUserRepo struct {
	user *domain.User
	err  error
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	return primitive.NewObjectID(), nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil || m.user.Email != email {
		return nil, repository.ErrNotFound
	}
	return m.user, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil {
		return nil, repository.ErrNotFound
	}
	return m.user, nil
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, userID primitive.ObjectID, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	if m.user == nil {
		return repository.ErrNotFound
	}
	m.user.Profile = profile
	return nil
}

// mockProgressRepo implements repository.ProgressRepository for tests.
type mockProgressRepo struct {
	entries []domain.ProgressEntry
	err     error
}

func (m *mockProgressRepo) Create(ctx context.Context, entry *domain.ProgressEntry) (primitive.ObjectID, error) {
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	id := primitive.NewObjectID()
	entry.ID = id
	m.entries = append([]domain.ProgressEntry{*entry}, m.entries...)
	return id, nil
}

func (m *mockProgressRepo) ListByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.ProgressEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && int64(len(m.entries)) > limit {
		return m.entries[:limit], nil
	}
	return m.entries, nil
}

func demoProfile() *domain.Profile {
	return &domain.Profile{
		Age:           28,
		Weight:        75,
		Height:        175,
		Gender:        domain.GenderMale,
		ActivityLevel: domain.ActivityModeratelyActive,
		FitnessGoals:  []string{domain.GoalWeightLoss},
		Preferences: domain.Preferences{
			DietaryRestrictions: []string{domain.RestrictionVegetarian},
		},
	}
}

func TestCoachServiceGetRecommendations(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("assembles recommendations and targets from stored data", func(t *testing.T) {
		profile := demoProfile()
		userRepo := &mockUserRepo{user: &domain.User{ID: userID, Profile: profile}}
		progressRepo := &mockProgressRepo{entries: []domain.ProgressEntry{
			{WorkoutCompleted: false, CaloriesConsumed: 3000, TargetCalories: 2000},
		}}
		svc := NewCoachService(userRepo, progressRepo)

		response, err := svc.GetRecommendations(context.Background(), userID)
		require.NoError(t, err)

		assert.Equal(t, engine.ComputeTargets(profile), response.NutritionTargets)

		// Missed workout + weight loss goal.
		require.Len(t, response.Recommendations.Workout, 2)
		assert.Equal(t, domain.RecommendationMotivation, response.Recommendations.Workout[0].Type)
		assert.Equal(t, domain.RecommendationCardio, response.Recommendations.Workout[1].Type)

		// Calorie overshoot + vegetarian restriction.
		require.Len(t, response.Recommendations.Nutrition, 2)
		assert.Equal(t, domain.RecommendationCalorieControl, response.Recommendations.Nutrition[0].Type)
		assert.Equal(t, domain.RecommendationProtein, response.Recommendations.Nutrition[1].Type)

		assert.Len(t, response.Recommendations.Lifestyle, 2)
	})

	t.Run("no progress history is not an error", func(t *testing.T) {
		userRepo := &mockUserRepo{user: &domain.User{ID: userID, Profile: demoProfile()}}
		svc := NewCoachService(userRepo, &mockProgressRepo{})

		response, err := svc.GetRecommendations(context.Background(), userID)
		require.NoError(t, err)
		assert.Len(t, response.Recommendations.Lifestyle, 2)
	})

	t.Run("missing profile maps to ErrProfileNotSet", func(t *testing.T) {
		userRepo := &mockUserRepo{user: &domain.User{ID: userID}}
		svc := NewCoachService(userRepo, &mockProgressRepo{})

		_, err := svc.GetRecommendations(context.Background(), userID)
		assert.ErrorIs(t, err, ErrProfileNotSet)
	})

	t.Run("missing user maps to ErrUserNotFound", func(t *testing.T) {
		svc := NewCoachService(&mockUserRepo{}, &mockProgressRepo{})

		_, err := svc.GetRecommendations(context.Background(), userID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("progress repository errors propagate", func(t *testing.T) {
		userRepo := &mockUserRepo{user: &domain.User{ID: userID, Profile: demoProfile()}}
		progressRepo := &mockProgressRepo{err: errors.New("connection reset")}
		svc := NewCoachService(userRepo, progressRepo)

		_, err := svc.GetRecommendations(context.Background(), userID)
		assert.EqualError(t, err, "connection reset")
	})
}

func TestCoachServiceGetMealPlan(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("explicit restrictions override stored preferences", func(t *testing.T) {
		profile := demoProfile() // stores vegetarian, which the filter ignores
		userRepo := &mockUserRepo{user: &domain.User{ID: userID, Profile: profile}}
		svc := NewCoachService(userRepo, &mockProgressRepo{})

		response, err := svc.GetMealPlan(context.Background(), userID, []string{domain.RestrictionVegan}, nil)
		require.NoError(t, err)

		for slot, meals := range response.MealPlan {
			require.NotEmpty(t, meals, "slot %s", slot)
			for _, meal := range meals {
				assert.True(t, meal.Vegan, "meal %q in slot %s", meal.Name, slot)
			}
		}
	})

	t.Run("nil restrictions fall back to the profile's preferences", func(t *testing.T) {
		profile := demoProfile()
		profile.Preferences.DietaryRestrictions = []string{domain.RestrictionGlutenFree}
		userRepo := &mockUserRepo{user: &domain.User{ID: userID, Profile: profile}}
		svc := NewCoachService(userRepo, &mockProgressRepo{})

		response, err := svc.GetMealPlan(context.Background(), userID, nil, nil)
		require.NoError(t, err)

		for slot, meals := range response.MealPlan {
			for _, meal := range meals {
				assert.True(t, meal.GlutenFree, "meal %q in slot %s", meal.Name, slot)
			}
		}
	})

	t.Run("targets accompany the plan", func(t *testing.T) {
		profile := demoProfile()
		userRepo := &mockUserRepo{user: &domain.User{ID: userID, Profile: profile}}
		svc := NewCoachService(userRepo, &mockProgressRepo{})

		response, err := svc.GetMealPlan(context.Background(), userID, nil, []string{"thai"})
		require.NoError(t, err)
		assert.Equal(t, engine.ComputeTargets(profile), response.NutritionTargets)
	})
}

func TestCoachServiceGetNutritionTargets(t *testing.T) {
	userID := primitive.NewObjectID()
	profile := demoProfile()
	userRepo := &mockUserRepo{user: &domain.User{ID: userID, Profile: profile}}
	svc := NewCoachService(userRepo, &mockProgressRepo{})

	targets, err := svc.GetNutritionTargets(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, engine.ComputeTargets(profile), *targets)
}

func TestCoachServiceGuard(t *testing.T) {
	svc := &coachService{}

	t.Run("converts panics into ErrGenerationFailed", func(t *testing.T) {
		err := svc.guard(func() { panic("arithmetic fault") })
		assert.ErrorIs(t, err, ErrGenerationFailed)
	})

	t.Run("passes through clean computations", func(t *testing.T) {
		err := svc.guard(func() {})
		assert.NoError(t, err)
	})
}
