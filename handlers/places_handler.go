package handlers

import (
	"RestaurantRoulette/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPlacesRoutes(router *gin.RouterGroup, placesController *controllers.PlacesController) {
	placesGroup := router.Group("/places")
	{
		placesGroup.GET("/nearby", placesController.NearbyPlaces)

		placesGroup.GET("/details", placesController.PlaceDetails)
	}

	router.GET("/test", placesController.TestAPI)
}
