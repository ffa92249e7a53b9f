package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MGIFOGOIOGPY/payment-hams/logging"
	"github.com/MGIFOGOIOGPY/payment-hams/models"
)

const requestIDKey = "request_id"

// RequestID assigns each request a correlation id, echoed back in the
// X-Request-ID header and attached to audit entries.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Recovery converts any panic below it into the fixed SERVER_ERROR body.
// The fault is logged with full context; the caller never sees internal
// detail or a stack trace.
func Recovery(audit *logging.AuditLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				audit.Error("unhandled fault during intake", logging.Entry{
					RequestID: requestID(c),
					SourceIP:  c.ClientIP(),
					ErrorCode: string(models.CodeServerError),
					Fields: map[string]interface{}{
						"panic": fmt.Sprint(r),
						"path":  c.Request.URL.Path,
					},
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.DeclineResponse{
					Success:   false,
					Message:   "An unexpected server error occurred. Please try again.",
					ErrorCode: models.CodeServerError,
				})
			}
		}()
		c.Next()
	}
}
