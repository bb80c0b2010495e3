package middleware

import (
	"net/http"
	"time"

	"github.com/articret/coffee-shop-server/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RequestLogger writes one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		kv := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"request_id", GetRequestID(c),
		}
		switch {
		case status >= http.StatusInternalServerError:
			logger.Errorw("request completed", kv...)
		case status >= http.StatusBadRequest:
			logger.Warnw("request completed", kv...)
		default:
			logger.Infow("request completed", kv...)
		}
	}
}
