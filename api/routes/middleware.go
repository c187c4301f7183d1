package routes

import (
	"time"

	"leaguestats/api/handlers"
	"leaguestats/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIdHeader = "X-Request-Id"

// RequestId keeps the caller request id or creates one.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(handlers.RequestIdKey, id)
		c.Header(requestIdHeader, id)
		c.Next()
	}
}

// RequestLogger writes a line per request.
func RequestLogger(log *logger.NewLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.With(handlers.RequestIdKey, c.GetString(handlers.RequestIdKey)).
			Infof("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
