package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zoro-coderr/aihealthcoach/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	coachService service.CoachService,
) {
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	coachHandler := NewCoachHandler(coachService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
		})

		// --- Profile ---
		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.UpdateProfile)

		// --- Progress log & photos ---
		progressGroup := protected.Group("/progress")
		{
			progressGroup.POST("", profileHandler.LogProgress)
			progressGroup.GET("", profileHandler.GetProgress)

			progressGroup.POST("/photos", profileHandler.RequestPhotoUpload)
			progressGroup.POST("/photos/confirm", profileHandler.ConfirmPhotoUpload)
			progressGroup.GET("/photos", profileHandler.ListPhotos)
			progressGroup.DELETE("/photos/:photoId", profileHandler.DeletePhoto)
		}

		// --- Coach (personalization engine) ---
		coachGroup := protected.Group("/coach")
		{
			coachGroup.GET("/recommendations", coachHandler.GetRecommendations)
			coachGroup.GET("/meal-plan", coachHandler.GetMealPlan)
			coachGroup.GET("/nutrition-targets", coachHandler.GetNutritionTargets)
		}
	}
}
