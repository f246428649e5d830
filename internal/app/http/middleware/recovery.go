package middleware

import (
	"fmt"

	"entity-hub/internal/app/http/view"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery turns a panic in any handler into the error view.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", r).
					Msg("Panic recovered")

				view.Error(c, fmt.Errorf("panic: %v", r))
			}
		}()

		c.Next()
	}
}
