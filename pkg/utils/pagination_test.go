package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultPageSize, ClampLimit(0))
	assert.Equal(t, DefaultPageSize, ClampLimit(-5))
	assert.Equal(t, 20, ClampLimit(20))
	assert.Equal(t, MaxPageSize, ClampLimit(MaxPageSize))
	assert.Equal(t, MaxPageSize, ClampLimit(9999))
}

func TestClampStartIndex(t *testing.T) {
	assert.Equal(t, 0, ClampStartIndex(-1))
	assert.Equal(t, 0, ClampStartIndex(0))
	assert.Equal(t, 42, ClampStartIndex(42))
}

func TestGetPaginationParams(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?limit=200&startIndex=abc", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	params := GetPaginationParams(c)

	assert.Equal(t, MaxPageSize, params.Limit)
	assert.Equal(t, 0, params.StartIndex)
}

func TestPage(t *testing.T) {
	assert.Equal(t, 1, PaginationParams{Limit: 9, StartIndex: 0}.Page())
	assert.Equal(t, 1, PaginationParams{Limit: 9, StartIndex: 8}.Page())
	assert.Equal(t, 2, PaginationParams{Limit: 9, StartIndex: 9}.Page())
	assert.Equal(t, 4, PaginationParams{Limit: 10, StartIndex: 30}.Page())
}
