package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zoro-coderr/aihealthcoach/internal/domain"
	"github.com/zoro-coderr/aihealthcoach/internal/service"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- Request/Response Structs ---

// PreferencesRequest mirrors domain.Preferences with validation tags.
type PreferencesRequest struct {
	WorkoutTypes        []string `json:"workoutTypes"`
	Duration            int      `json:"duration" binding:"omitempty,min=5,max=240"`
	DaysPerWeek         int      `json:"daysPerWeek" binding:"omitempty,min=1,max=7"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
}

// ProfileRequest enforces the documented input ranges: age 13-120,
// weight 30-300 kg, height 100-250 cm, enumerated gender and activity
// level. Downstream computation trusts these bounds.
type ProfileRequest struct {
	Age           int                `json:"age" binding:"required,min=13,max=120"`
	Weight        float64            `json:"weight" binding:"required,min=30,max=300"`
	Height        float64            `json:"height" binding:"required,min=100,max=250"`
	Gender        string             `json:"gender" binding:"required,oneof=male female other"`
	ActivityLevel string             `json:"activityLevel" binding:"required,oneof=sedentary lightly_active moderately_active very_active"`
	FitnessGoals  []string           `json:"fitnessGoals" binding:"omitempty,dive,oneof=weight_loss muscle_gain endurance strength"`
	Preferences   PreferencesRequest `json:"preferences"`
}

type ProgressRequest struct {
	Date             *time.Time `json:"date"`
	WorkoutCompleted bool       `json:"workoutCompleted"`
	CaloriesConsumed float64    `json:"caloriesConsumed" binding:"omitempty,min=0"`
	TargetCalories   float64    `json:"targetCalories" binding:"omitempty,min=0"`
	Weight           *float64   `json:"weight" binding:"omitempty,min=30,max=300"`
	Notes            string     `json:"notes"`
}

type PhotoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type PhotoConfirmRequest struct {
	ObjectKey   string     `json:"objectKey" binding:"required"`
	FileName    string     `json:"fileName" binding:"required"`
	Size        int64      `json:"size" binding:"required,min=1"`
	ContentType string     `json:"contentType" binding:"required"`
	TakenAt     *time.Time `json:"takenAt"`
}

// --- Handler Methods ---

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Profile
// @Failure 404 {object} gin.H "Profile not set up yet"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotSet) || errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch profile")
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Create or replace the authenticated user's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body ProfileRequest true "Profile details"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile := &domain.Profile{
		Age:           req.Age,
		Weight:        req.Weight,
		Height:        req.Height,
		Gender:        domain.Gender(req.Gender),
		ActivityLevel: domain.ActivityLevel(req.ActivityLevel),
		FitnessGoals:  req.FitnessGoals,
		Preferences: domain.Preferences{
			WorkoutTypes:        req.Preferences.WorkoutTypes,
			Duration:            req.Preferences.Duration,
			DaysPerWeek:         req.Preferences.DaysPerWeek,
			DietaryRestrictions: req.Preferences.DietaryRestrictions,
		},
	}

	updated, err := h.profileService.UpdateProfile(c.Request.Context(), userID, profile)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// LogProgress godoc
// @Summary Log one day's progress
// @Description Records workout completion and calorie intake. When targetCalories is omitted it is derived from the profile's nutrition targets.
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body ProgressRequest true "Progress details"
// @Success 201 {object} domain.ProgressEntry
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Router /progress [post]
func (h *ProfileHandler) LogProgress(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry := &domain.ProgressEntry{
		WorkoutCompleted: req.WorkoutCompleted,
		CaloriesConsumed: req.CaloriesConsumed,
		TargetCalories:   req.TargetCalories,
		Weight:           req.Weight,
		Notes:            req.Notes,
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}

	created, err := h.profileService.LogProgress(c.Request.Context(), userID, entry)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log progress")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetProgress godoc
// @Summary List progress entries, most recent first
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of entries (default 30)"
// @Success 200 {array} domain.ProgressEntry
// @Router /progress [get]
func (h *ProfileHandler) GetProgress(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	limit := int64(30)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			abortWithError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	entries, err := h.profileService.GetProgress(c.Request.Context(), userID, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// RequestPhotoUpload godoc
// @Summary Request a presigned URL for uploading a progress photo
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PhotoUploadRequest true "Image content type"
// @Success 200 {object} service.PhotoUploadURLResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /progress/photos [post]
func (h *ProfileHandler) RequestPhotoUpload(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var req PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	response, err := h.profileService.RequestPhotoUploadURL(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrUploadURLError) {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		} else {
			abortWithError(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// ConfirmPhotoUpload godoc
// @Summary Confirm a completed progress photo upload
// @Description Persists photo metadata after the client uploaded the image via the presigned URL.
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PhotoConfirmRequest true "Upload confirmation"
// @Success 201 {object} domain.PhotoUpload
// @Failure 400 {object} gin.H "Invalid input"
// @Router /progress/photos/confirm [post]
func (h *ProfileHandler) ConfirmPhotoUpload(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var req PhotoConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	photo, err := h.profileService.ConfirmPhotoUpload(
		c.Request.Context(), userID, req.ObjectKey, req.FileName, req.Size, req.ContentType, req.TakenAt)
	if err != nil {
		if errors.Is(err, service.ErrUploadConfirmationFailed) {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		} else {
			abortWithError(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// ListPhotos godoc
// @Summary List progress photos with temporary download URLs
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.PhotoDetails
// @Router /progress/photos [get]
func (h *ProfileHandler) ListPhotos(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	photos, err := h.profileService.ListPhotos(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list photos")
		return
	}

	c.JSON(http.StatusOK, photos)
}

// DeletePhoto godoc
// @Summary Delete a progress photo and its stored image
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Param photoId path string true "Photo ID"
// @Success 204 "Deleted"
// @Failure 404 {object} gin.H "Photo not found"
// @Router /progress/photos/{photoId} [delete]
func (h *ProfileHandler) DeletePhoto(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	photoID, err := primitive.ObjectIDFromHex(c.Param("photoId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid photo ID format")
		return
	}

	if err := h.profileService.DeletePhoto(c.Request.Context(), userID, photoID); err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete photo")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
