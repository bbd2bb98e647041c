package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"RestaurantRoulette/models"
	"RestaurantRoulette/services"
	"RestaurantRoulette/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PlacesController exposes the raw Places proxy used by the map view.
type PlacesController struct {
	PlacesService *services.PlacesService
}

func NewPlacesController(placesService *services.PlacesService) *PlacesController {
	return &PlacesController{
		PlacesService: placesService,
	}
}

// NearbyPlaces proxies a nearby search: ?location=lat,lng&radius=&type=&keyword=
func (p *PlacesController) NearbyPlaces(c *gin.Context) {
	location, err := parseLocation(c.Query("location"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid location")
		return
	}

	radius := 0
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.Atoi(raw)
		if err != nil || radius <= 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid radius")
			return
		}
	}

	body, err := p.PlacesService.NearbyRaw(c.Request.Context(), services.NearbyQuery{
		Location: location,
		Radius:   radius,
		Type:     c.Query("type"),
		Keyword:  c.Query("keyword"),
	})
	if err != nil {
		proxyError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// PlaceDetails proxies a details lookup: ?place_id=
func (p *PlacesController) PlaceDetails(c *gin.Context) {
	placeID := strings.TrimSpace(c.Query("place_id"))
	if placeID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "place_id is required")
		return
	}

	body, err := p.PlacesService.DetailsRaw(c.Request.Context(), placeID)
	if err != nil {
		proxyError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// TestAPI runs a diagnostic nearby search with the configured key.
func (p *PlacesController) TestAPI(c *gin.Context) {
	probe, err := p.PlacesService.Probe(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Places API probe failed")
		c.JSON(http.StatusInternalServerError, gin.H{"status": "ERROR", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "OK",
		"tests": gin.H{
			"places_api": gin.H{
				"status":        probe.Status,
				"error_message": probe.ErrorMessage,
				"results_count": probe.ResultsCount,
			},
		},
		"key_info": probe,
	})
}

func proxyError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("Places proxy request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "status": "SERVER_ERROR"})
}

func parseLocation(raw string) (models.LatLng, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return models.LatLng{}, errors.New("location must be lat,lng")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || lat < -90 || lat > 90 {
		return models.LatLng{}, errors.New("invalid latitude")
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || lng < -180 || lng > 180 {
		return models.LatLng{}, errors.New("invalid longitude")
	}
	return models.LatLng{Lat: lat, Lng: lng}, nil
}
