package middleware

import (
	"context"
	"errors"
	"net/http"

	"RestaurantRoulette/discovery"
	"RestaurantRoulette/services"
	"RestaurantRoulette/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorHandlerMiddleware turns the last error attached to the context into a JSON response.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message := StatusFor(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		}
		utils.ErrorResponse(c, status, message)
	}
}

// StatusFor maps an error to an HTTP status code and a user-facing message.
func StatusFor(err error) (int, string) {
	var customErr *utils.CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode, customErr.Message
	}

	var placesErr *services.PlacesAPIError
	if errors.As(err, &placesErr) {
		return http.StatusBadGateway, "Places API error: " + placesErr.Status
	}

	switch {
	case errors.Is(err, discovery.ErrDataUnavailable):
		return http.StatusNotFound, "No restaurants available. Please search for restaurants first."
	case errors.Is(err, discovery.ErrInsufficientCandidates):
		return http.StatusConflict, "No more restaurants available to shuffle."
	case errors.Is(err, discovery.ErrMissingReferencePosition):
		return http.StatusUnprocessableEntity, "Current position is unknown."
	case errors.Is(err, discovery.ErrInvalidPickCount), errors.Is(err, discovery.ErrSlotOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Request timed out"
	}

	return http.StatusInternalServerError, "Internal Server Error"
}
