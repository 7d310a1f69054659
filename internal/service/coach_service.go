package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zoro-coderr/aihealthcoach/internal/domain"
	"github.com/zoro-coderr/aihealthcoach/internal/engine"
	"github.com/zoro-coderr/aihealthcoach/internal/repository"
)

// ErrGenerationFailed is the single failure surfaced when the engine hits
// an unexpected internal fault. The API layer maps it to a 500.
var ErrGenerationFailed = errors.New("recommendation generation failed")

// recentProgressWindow caps how much history is loaded for rule
// evaluation. The engine only consults the most recent entry, but the
// window keeps the response useful for clients that display the list.
const recentProgressWindow = 7

// CoachResponse bundles the generated recommendations with the nutrition
// targets they were computed against.
type CoachResponse struct {
	Recommendations  engine.RecommendationSet `json:"recommendations"`
	NutritionTargets domain.NutritionTargets  `json:"nutritionTargets"`
}

// MealPlanResponse is the filtered catalog keyed by slot, plus the calorie
// and macro targets so clients can portion meals themselves.
type MealPlanResponse struct {
	MealPlan         map[domain.MealSlot][]domain.Meal `json:"mealPlan"`
	NutritionTargets domain.NutritionTargets           `json:"nutritionTargets"`
}

// CoachService orchestrates the personalization engine over a user's
// stored profile and progress history.
type CoachService interface {
	GetRecommendations(ctx context.Context, userID primitive.ObjectID) (*CoachResponse, error)
	GetMealPlan(ctx context.Context, userID primitive.ObjectID, restrictions, cuisines []string) (*MealPlanResponse, error)
	GetNutritionTargets(ctx context.Context, userID primitive.ObjectID) (*domain.NutritionTargets, error)
}

// coachService implements the CoachService interface.
type coachService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
}

// NewCoachService creates a new instance of coachService.
func NewCoachService(userRepo repository.UserRepository, progressRepo repository.ProgressRepository) CoachService {
	return &coachService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
	}
}

// GetRecommendations loads the profile and recent progress and runs the
// rule engine over them.
func (s *coachService) GetRecommendations(ctx context.Context, userID primitive.ObjectID) (*CoachResponse, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress, err := s.progressRepo.ListByUserID(ctx, userID, recentProgressWindow)
	if err != nil {
		return nil, err
	}

	response := &CoachResponse{}
	if err := s.guard(func() {
		response.NutritionTargets = engine.ComputeTargets(profile)
		response.Recommendations = engine.Generate(profile, progress)
	}); err != nil {
		return nil, err
	}
	return response, nil
}

// GetMealPlan filters the meal catalog for the user. Explicit restrictions
// override the ones stored on the profile; nil falls back to the stored
// preferences. cuisines is threaded through for API compatibility even
// though the filter does not apply it yet.
func (s *coachService) GetMealPlan(ctx context.Context, userID primitive.ObjectID, restrictions, cuisines []string) (*MealPlanResponse, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if restrictions == nil {
		restrictions = profile.Preferences.DietaryRestrictions
	}

	response := &MealPlanResponse{}
	if err := s.guard(func() {
		response.NutritionTargets = engine.ComputeTargets(profile)
		response.MealPlan = engine.BuildMealPlan(restrictions, cuisines)
	}); err != nil {
		return nil, err
	}
	return response, nil
}

// GetNutritionTargets computes just the calorie and macro targets.
func (s *coachService) GetNutritionTargets(ctx context.Context, userID primitive.ObjectID) (*domain.NutritionTargets, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	targets := &domain.NutritionTargets{}
	if err := s.guard(func() {
		*targets = engine.ComputeTargets(profile)
	}); err != nil {
		return nil, err
	}
	return targets, nil
}

// loadProfile fetches the user and requires a populated profile.
func (s *coachService) loadProfile(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Profile == nil {
		return nil, ErrProfileNotSet
	}
	return user.Profile, nil
}

// guard runs an engine computation and converts any internal panic (the
// only fault class the engine can produce, e.g. a caller bypassing
// upstream validation) into ErrGenerationFailed.
func (s *coachService) guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrGenerationFailed
		}
	}()
	fn()
	return nil
}
