package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageSize = 9
	MaxPageSize     = 50
)

// PaginationParams is the clamped limit/offset pair extracted from a request.
type PaginationParams struct {
	Limit      int
	StartIndex int
}

// GetPaginationParams reads limit/startIndex query params. Values are always
// clamped: caller-supplied input never reaches the database unchecked.
func GetPaginationParams(c echo.Context) PaginationParams {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	startIndex, _ := strconv.Atoi(c.QueryParam("startIndex"))

	return PaginationParams{
		Limit:      ClampLimit(limit),
		StartIndex: ClampStartIndex(startIndex),
	}
}

func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

func ClampStartIndex(startIndex int) int {
	if startIndex < 0 {
		return 0
	}
	return startIndex
}

// Page derives a 1-based page number for the response envelope.
func (p PaginationParams) Page() int {
	return (p.StartIndex / p.Limit) + 1
}
