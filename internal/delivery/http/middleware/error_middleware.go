package middleware

import (
	"errors"
	"net/http"

	"talentflow/internal/delivery/http/response"
	"talentflow/pkg/apperror"
	"talentflow/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached to the gin context into the JSON
// error envelope. Unknown errors are logged server-side and rendered as a
// generic message so internals never leak to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("Request failed", "error", appErr.Err, "path", c.Request.URL.Path)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		logger.Log.Error("Internal server error", "error", err, "path", c.Request.URL.Path)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
