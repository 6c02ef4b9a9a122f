package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/stellar-europe/community-hub/internal/types"
)

// GetRequestID returns the id placed in the context by the middleware, or
// an empty string when the middleware did not run.
func GetRequestID(ctx *gin.Context) string {
	id, exists := ctx.Get(types.ContextRequestIDKey)

	if !exists {
		return ""
	}

	requestID, ok := id.(string)

	if !ok {
		return ""
	}

	return requestID
}
