package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListParams carries cursor-pagination inputs shared by all list endpoints.
type ListParams struct {
	Search string
	Limit  int
	Skip   int
	Cursor int64
}

// ParseListParams extracts search/limit/skip/cursor query parameters.
// Invalid or missing values fall back to defaults; the limit is clamped.
func ParseListParams(c *gin.Context) ListParams {
	params := ListParams{
		Search: c.Query("search"),
		Limit:  DefaultPageSize,
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			params.Limit = limit
		}
	}
	params.Limit = ClampLimit(params.Limit)

	if skipStr := c.Query("skip"); skipStr != "" {
		if skip, err := strconv.Atoi(skipStr); err == nil && skip > 0 {
			params.Skip = skip
		}
	}

	if cursorStr := c.Query("cursor"); cursorStr != "" {
		if cursor, err := strconv.ParseInt(cursorStr, 10, 64); err == nil && cursor > 0 {
			params.Cursor = cursor
		}
	}

	return params
}

// ClampLimit normalizes a requested page size to the allowed range.
func ClampLimit(limit int) int {
	if limit <= 0 || limit > MaxPageSize {
		return DefaultPageSize
	}
	return limit
}
