package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/metrics"
)

// ErrorHandler renders the last error pushed with c.Error. Underlying causes
// are only echoed to clients when exposeDetail is set (non-production).
func ErrorHandler(exposeDetail bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		body := response.ErrorBody{Code: string(appErr.Kind)}
		if appErr.Err != nil && exposeDetail {
			body.Detail = appErr.Err.Error()
		}

		metrics.ErrorsCounter.WithLabelValues(string(appErr.Kind)).Inc()
		if appErr.Code >= http.StatusInternalServerError {
			// Never expose internal error details to clients in production.
			logger.Log.Error("Internal server error",
				zap.String("path", c.FullPath()),
				zap.String("request_id", c.GetString("RequestID")),
				zap.Error(err))
			response.Error(c, appErr.Code, "An unexpected error occurred. Please try again later.", body)
			return
		}
		response.Error(c, appErr.Code, appErr.Message, body)
	}
}
