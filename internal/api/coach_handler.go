package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zoro-coderr/aihealthcoach/internal/service"
)

// CoachHandler holds the coach service dependency.
type CoachHandler struct {
	coachService service.CoachService
}

// NewCoachHandler creates a new CoachHandler.
func NewCoachHandler(coachService service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// coachError maps coach service failures onto HTTP statuses. A missing
// profile is the caller's problem; a generation fault is ours.
func coachError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrProfileNotSet):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrGenerationFailed):
		abortWithError(c, http.StatusInternalServerError, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// GetRecommendations godoc
// @Summary Get personalized workout, nutrition and lifestyle recommendations
// @Description Evaluates the recommendation rules against the stored profile and the most recent progress entry.
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.CoachResponse
// @Failure 404 {object} gin.H "Profile not set up yet"
// @Failure 500 {object} gin.H "Recommendation generation failed"
// @Router /coach/recommendations [get]
func (h *CoachHandler) GetRecommendations(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response, err := h.coachService.GetRecommendations(c.Request.Context(), userID)
	if err != nil {
		coachError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetMealPlan godoc
// @Summary Get a meal plan filtered by dietary restrictions
// @Description Filters the meal catalog per slot. Query restrictions override the profile's stored dietary restrictions; cuisines is accepted but not applied yet.
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Param restrictions query []string false "Dietary restrictions (e.g. vegan, gluten_free)" collectionFormat(multi)
// @Param cuisines query []string false "Cuisine preferences (reserved)" collectionFormat(multi)
// @Success 200 {object} service.MealPlanResponse
// @Failure 404 {object} gin.H "Profile not set up yet"
// @Router /coach/meal-plan [get]
func (h *CoachHandler) GetMealPlan(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	// QueryArray returns nil when the parameter is absent, which lets the
	// service fall back to the restrictions stored on the profile.
	restrictions := c.QueryArray("restrictions")
	cuisines := c.QueryArray("cuisines")
	if len(restrictions) == 0 {
		restrictions = nil
	}

	response, err := h.coachService.GetMealPlan(c.Request.Context(), userID, restrictions, cuisines)
	if err != nil {
		coachError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetNutritionTargets godoc
// @Summary Get the daily calorie and macro targets for the stored profile
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.NutritionTargets
// @Failure 404 {object} gin.H "Profile not set up yet"
// @Router /coach/nutrition-targets [get]
func (h *CoachHandler) GetNutritionTargets(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	targets, err := h.coachService.GetNutritionTargets(c.Request.Context(), userID)
	if err != nil {
		coachError(c, err)
		return
	}

	c.JSON(http.StatusOK, targets)
}
