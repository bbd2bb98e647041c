package controllers

import (
	"net/http"
	"strconv"

	"RestaurantRoulette/models"
	"RestaurantRoulette/services"
	"RestaurantRoulette/utils"

	"github.com/gin-gonic/gin"
)

type PickerController struct {
	RestaurantService *services.RestaurantService
}

func NewPickerController(restaurantService *services.RestaurantService) *PickerController {
	return &PickerController{
		RestaurantService: restaurantService,
	}
}

// PickRestaurants draws a fresh set of random picks.
func (p *PickerController) PickRestaurants(c *gin.Context) {
	var req models.PickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format or pick count")
		return
	}

	picks, err := p.RestaurantService.Pick(c.Param("id"), req.Count, criteriaFromRequest(req.Filters))
	if err != nil {
		c.Error(err)
		return
	}

	option := "options"
	if len(picks) == 1 {
		option = "option"
	}
	utils.SuccessResponse(c, http.StatusOK, "Found "+strconv.Itoa(len(picks))+" great "+option+" for you!", models.PickResponse{Picks: picks})
}

// ShuffleRestaurant replaces the pick at :slot.
func (p *PickerController) ShuffleRestaurant(c *gin.Context) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid slot")
		return
	}

	picks, err := p.RestaurantService.Shuffle(c.Param("id"), slot)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Found a new option for you!", models.PickResponse{Picks: picks})
}

func (p *PickerController) GetPicks(c *gin.Context) {
	picks, err := p.RestaurantService.Picks(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Picks fetched successfully", models.PickResponse{Picks: picks})
}
