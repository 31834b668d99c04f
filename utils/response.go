package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BadRequest returns a 400 with a single human-readable message.
func BadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// ValidationFailed returns a 400 carrying one message per offending field.
func ValidationFailed(ctx *gin.Context, messages []string) {
	ctx.JSON(http.StatusBadRequest, gin.H{"errors": messages})
}

// NotFound returns a 404 with an empty body.
func NotFound(ctx *gin.Context) {
	ctx.Status(http.StatusNotFound)
}

// ServerError logs the underlying error and returns a 500 with a generic message.
func ServerError(ctx *gin.Context, message string, err error) {
	if Sugar != nil {
		Sugar.Errorw(message, "path", ctx.Request.URL.Path, "err", err)
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
