package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"realty-uae-backend/internal/delivery/http/response"
	"realty-uae-backend/pkg/apperror"
	"realty-uae-backend/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed", "error", err, "path", c.FullPath(), "request_id", c.GetString(response.RequestIDKey))
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		logger.Log.Error("Internal Server Error", "error", err, "path", c.FullPath(), "request_id", c.GetString(response.RequestIDKey))
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
