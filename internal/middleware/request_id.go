package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stellar-europe/community-hub/internal/types"
)

// RequestID assigns a uuid to every request, stores it in the context and
// echoes it back in the response headers. Handlers use it as the opaque
// reference code in 500 responses so internal error text stays in the logs.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(types.RequestIDHeader)

		if id == "" {
			id = uuid.NewString()
		}

		ctx.Set(types.ContextRequestIDKey, id)
		ctx.Header(types.RequestIDHeader, id)
		ctx.Next()
	}
}
