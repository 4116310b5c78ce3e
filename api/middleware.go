package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries the request identifier in both directions.
	HeaderRequestID = "X-Request-ID"
	// ContextRequestID is the key used to store the request ID in the Gin context.
	ContextRequestID = "requestID"
)

// RequestID reuses a valid incoming X-Request-ID or assigns a new one, and
// echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(HeaderRequestID))
		if err != nil {
			id = uuid.New()
		}

		c.Set(ContextRequestID, id.String())
		c.Header(HeaderRequestID, id.String())
		c.Next()
	}
}
