package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// parsePagination reads page/page_size query parameters with sane bounds
func parsePagination(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}

// paginatedResponse builds the standard list payload
func paginatedResponse(total int64, page, pageSize int, data interface{}) gin.H {
	return gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        data,
	}
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter
func parseDateQuery(ctx *gin.Context, name string) (*time.Time, error) {
	value := ctx.Query(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// parseBoolQuery reads an optional boolean query parameter
func parseBoolQuery(ctx *gin.Context, name string) *bool {
	value := ctx.Query(name)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}
	return &parsed
}

// parseIntQuery reads an optional integer query parameter
func parseIntQuery(ctx *gin.Context, name string) *int {
	value := ctx.Query(name)
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &parsed
}

// parseUintQuery reads an optional unsigned id query parameter, zero when absent
func parseUintQuery(ctx *gin.Context, name string) uint {
	value := ctx.Query(name)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0
	}
	return uint(parsed)
}

// parseIDParam reads the :id path parameter
func parseIDParam(ctx *gin.Context) (uint, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		return 0, errors.New("id inválido")
	}
	return uint(id), nil
}
