// Package httpapi holds the small bind/respond helpers shared by the
// procedure-call handlers.
package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/averine/opshub-service/pkg/apperrors"
	"github.com/averine/opshub-service/pkg/logger"
	"github.com/averine/opshub-service/pkg/middleware"
)

// Bind decodes the request body into dest. On failure it writes a 400 and
// returns false.
func Bind(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// BindOptional decodes the request body into dest, treating an empty body as
// an empty input. Used by list procedures whose filters are optional.
func BindOptional(c *gin.Context, dest interface{}) bool {
	err := c.ShouldBindJSON(dest)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
	return false
}

// Error maps the error taxonomy to a response. Validation, not-found and
// conflict errors surface their own message; anything else is logged and
// reported generically.
func Error(c *gin.Context, log logger.ZapLogger, msg string, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error(msg,
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
