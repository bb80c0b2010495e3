package middleware

import (
	"net/http"

	"github.com/articret/coffee-shop-server/pkg/apierror"
	"github.com/articret/coffee-shop-server/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Errors is the single translation point from handler errors to HTTP responses.
// Handlers call c.Error(err) and return; the last attached error decides the
// status and the {"error": msg} body.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status, msg := apierror.Resolve(err)
		if status >= http.StatusInternalServerError {
			logger.Errorf("%s %s failed (request_id=%s): %v", c.Request.Method, c.FullPath(), GetRequestID(c), err)
		} else {
			logger.Debugf("%s %s rejected (request_id=%s): %v", c.Request.Method, c.FullPath(), GetRequestID(c), err)
		}
		c.AbortWithStatusJSON(status, gin.H{"error": msg})
	}
}

// Recovery converts panics into the same 500 body the Errors middleware uses.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec interface{}) {
		logger.Errorf("panic recovered on %s %s (request_id=%s): %v", c.Request.Method, c.Request.URL.Path, GetRequestID(c), rec)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apierror.InternalMessage})
	})
}
