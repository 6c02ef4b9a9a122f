package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stellar-europe/community-hub/internal/logger"
	"github.com/stellar-europe/community-hub/internal/utils"
)

// internalError logs the underlying failure and answers with an opaque
// reference code. The raw error text never reaches the client.
func internalError(ctx *gin.Context, op string, err error) {
	ref := utils.GetRequestID(ctx)

	if ref == "" {
		ref = uuid.NewString()
	}

	logger.Error.Printf("op=%s ref=%s err=%v", op, ref, err)

	ctx.JSON(http.StatusInternalServerError, gin.H{
		"error": fmt.Sprintf("Internal server error (ref: %s)", ref),
	})
}
