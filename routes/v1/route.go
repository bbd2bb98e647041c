package route

import (
	"RestaurantRoulette/controllers"
	"RestaurantRoulette/handlers"
	"RestaurantRoulette/services"

	"github.com/gin-gonic/gin"
)

// Services holds the dependencies the route controllers are built from.
type Services struct {
	Places      *services.PlacesService
	Sessions    *services.SessionService
	Restaurants *services.RestaurantService
}

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, svc Services) {
	placesController := controllers.NewPlacesController(svc.Places)
	sessionController := controllers.NewSessionController(svc.Sessions, svc.Restaurants)
	restaurantController := controllers.NewRestaurantController(svc.Restaurants)
	pickerController := controllers.NewPickerController(svc.Restaurants)

	// proxy routes used by the web client
	apiRoutes := router.Group("/api")
	{
		handlers.RegisterPlacesRoutes(apiRoutes, placesController)
	}

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterSessionRoutes(v1Routes, sessionController)
		handlers.RegisterRestaurantRoutes(v1Routes, restaurantController)
		handlers.RegisterPickerRoutes(v1Routes, pickerController)
	}
}
