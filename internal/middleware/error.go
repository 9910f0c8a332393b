// File: internal/middleware/error.go
package middleware

import (
	"fmt"
	"net/http"

	"github.com/AymenS02/united-real-estate/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler creates a Gin middleware for centralized error handling.
// Errors attached with c.Error are rendered in the standard envelope,
// as are unrouted paths and methods.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if len(c.Errors) > 0 {
			ginErr := c.Errors.Last()
			apiErr, isAPIErr := common.IsAPIError(ginErr.Err)
			if !isAPIErr {
				logger.Error("Unhandled application error",
					zap.Error(ginErr.Err),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(common.RequestIDContextKey)),
				)
				apiErr = common.ErrInternalServer.WithDetails(common.ErrorDetails(ginErr.Err))
			}
			c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
			return
		}

		switch c.Writer.Status() {
		case http.StatusNotFound:
			c.AbortWithStatusJSON(http.StatusNotFound, common.ErrNotFound.WithDetails("The requested endpoint does not exist."))
		case http.StatusMethodNotAllowed:
			c.AbortWithStatusJSON(http.StatusMethodNotAllowed, common.ErrMethodNotAllowed)
		}
	}
}

// Recovery renders panics as 500 envelopes instead of an empty response.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(common.RequestIDContextKey)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			common.ErrInternalServer.WithDetails(fmt.Sprint(recovered)))
	})
}
