package controllers

import (
	"net/http"

	"RestaurantRoulette/models"
	"RestaurantRoulette/services"
	"RestaurantRoulette/utils"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService    *services.SessionService
	RestaurantService *services.RestaurantService
}

func NewSessionController(sessionService *services.SessionService, restaurantService *services.RestaurantService) *SessionController {
	return &SessionController{
		SessionService:    sessionService,
		RestaurantService: restaurantService,
	}
}

func (s *SessionController) CreateSession(c *gin.Context) {
	session := s.SessionService.Create()
	utils.SuccessResponse(c, http.StatusCreated, "Session created successfully", session.Summary())
}

func (s *SessionController) GetSession(c *gin.Context) {
	session, err := s.SessionService.Get(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Session fetched successfully", session.Summary())
}

func (s *SessionController) DeleteSession(c *gin.Context) {
	if err := s.SessionService.Delete(c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Session deleted successfully", nil)
}

func (s *SessionController) UpdatePosition(c *gin.Context) {
	var req models.PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format or coordinates")
		return
	}

	if err := s.RestaurantService.UpdatePosition(c.Param("id"), req.Position()); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Position updated successfully", req.Position())
}
