package handlers

import (
	"RestaurantRoulette/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPickerRoutes(router *gin.RouterGroup, pickerController *controllers.PickerController) {
	pickGroup := router.Group("/sessions/:id/picks")
	{
		pickGroup.POST("", pickerController.PickRestaurants)
		pickGroup.GET("", pickerController.GetPicks)

		pickGroup.POST("/:slot/shuffle", pickerController.ShuffleRestaurant)
	}
}
