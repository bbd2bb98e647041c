package handlers

import (
	"RestaurantRoulette/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSessionRoutes(router *gin.RouterGroup, sessionController *controllers.SessionController) {
	sessionGroup := router.Group("/sessions")
	{
		sessionGroup.POST("", sessionController.CreateSession)
		sessionGroup.GET("/:id", sessionController.GetSession)
		sessionGroup.DELETE("/:id", sessionController.DeleteSession)

		sessionGroup.PUT("/:id/position", sessionController.UpdatePosition)
	}
}
