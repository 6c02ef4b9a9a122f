package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetOptionalIntQuery parses an optional integer query parameter. A missing
// or non-integer value reads as nil, leaving the default to the caller.
func GetOptionalIntQuery(ctx *gin.Context, name string) *int {
	raw := ctx.Query(name)

	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)

	if err != nil {
		return nil
	}

	return &value
}
