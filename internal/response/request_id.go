package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the Gin context key holding the request ID
// echoed back in every response's metadata block.
const ContextKeyRequestID = "request_id"

// RequestIDMiddleware tags each request with an ID for tracing. A
// caller-supplied X-Request-ID is honored so clients can correlate
// their own logs; otherwise one is minted.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
