package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"RestaurantRoulette/utils"

	"github.com/gin-gonic/gin"
)

// TimeoutMiddleware bounds the request context so upstream calls are cancelled.
// c.Next must stay on the request goroutine: gin's ResponseWriter is not safe for concurrent use.
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			utils.ErrorResponse(c, http.StatusGatewayTimeout, "Request timed out")
		}
	}
}
