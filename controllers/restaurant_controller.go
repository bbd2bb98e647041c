package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"RestaurantRoulette/discovery"
	"RestaurantRoulette/models"
	"RestaurantRoulette/services"
	"RestaurantRoulette/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	RestaurantService *services.RestaurantService
}

func NewRestaurantController(restaurantService *services.RestaurantService) *RestaurantController {
	return &RestaurantController{
		RestaurantService: restaurantService,
	}
}

// SearchRestaurants loads nearby restaurants into the session.
func (r *RestaurantController) SearchRestaurants(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format or coordinates")
		return
	}

	results, applied, err := r.RestaurantService.Search(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	position := req.Position()
	response := models.ListResponse{
		Total:       len(results),
		Sort:        string(discovery.SortRelevance),
		Restaurants: discovery.NewViews(results, &position),
	}
	if !applied {
		response.Notice = "A newer search finished first; these results were not stored"
	}

	message := "Restaurants fetched successfully"
	if len(results) == 0 {
		message = "No restaurants found. Try a different search term."
	}
	utils.SuccessResponse(c, http.StatusOK, message, response)
}

// ListRestaurants filters and sorts the stored results:
// ?category=fast-food,sit-down&cuisine=italian&price=1,2&min_rating=4&sort=rating-desc
func (r *RestaurantController) ListRestaurants(c *gin.Context) {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	key := discovery.ParseSortKey(c.Query("sort"))

	views, err := r.RestaurantService.List(c.Param("id"), criteria, key)
	response := models.ListResponse{Total: len(views), Sort: string(key), Restaurants: views}
	switch {
	case errors.Is(err, discovery.ErrMissingReferencePosition):
		response.Notice = "Current position is unknown; results are not sorted by distance"
	case err != nil:
		c.Error(err)
		return
	}

	message := "Found " + strconv.Itoa(len(views)) + " restaurants matching your filters"
	if len(views) == 0 {
		message = "No restaurants match your filters. Try adjusting your filter criteria."
	}
	utils.SuccessResponse(c, http.StatusOK, message, response)
}

func criteriaFromQuery(c *gin.Context) (discovery.FilterCriteria, error) {
	minRating := 0.0
	if raw := c.Query("min_rating"); raw != "" {
		var err error
		minRating, err = strconv.ParseFloat(raw, 64)
		if err != nil || minRating < 0 || minRating > 5 {
			return discovery.FilterCriteria{}, errors.New("min_rating must be a number between 0 and 5")
		}
	}

	return discovery.NewFilterCriteria(
		discovery.SplitGroup(c.Query("category")),
		discovery.SplitGroup(c.Query("cuisine")),
		discovery.SplitGroup(c.Query("price")),
		minRating,
	), nil
}

func criteriaFromRequest(req *models.FilterRequest) *discovery.FilterCriteria {
	if req == nil {
		return nil
	}
	criteria := discovery.NewFilterCriteria(req.Categories, req.Cuisines, req.Prices, req.MinRating)
	return &criteria
}
