package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-api/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id (client-supplied or a fresh uuid),
// echoes it in the response header and enriches the context logger with it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
