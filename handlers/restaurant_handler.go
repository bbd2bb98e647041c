package handlers

import (
	"RestaurantRoulette/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRestaurantRoutes(router *gin.RouterGroup, restaurantController *controllers.RestaurantController) {
	restaurantGroup := router.Group("/sessions/:id")
	{
		restaurantGroup.POST("/search", restaurantController.SearchRestaurants)

		restaurantGroup.GET("/restaurants", restaurantController.ListRestaurants)
	}
}
