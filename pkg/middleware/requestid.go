package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/averine/opshub-service/pkg/logger"
)

const requestIDKey = "request_id"

// RequestID attaches a correlation id to every request, honoring one supplied
// by the client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	if val, ok := c.Get(requestIDKey); ok {
		if id, ok := val.(string); ok {
			return id
		}
	}
	return ""
}

// RequestLogger logs one structured line per request.
func RequestLogger(log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", GetRequestID(c)),
		)
	}
}
