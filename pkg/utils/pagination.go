package utils

import (
	"math"
	"strconv"
)

// PaginationParams holds pagination request parameters
type PaginationParams struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

// PaginationMeta holds pagination response metadata
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// Page is a single page of results plus its metadata.
type Page[T any] struct {
	Data []T           `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginationParams normalizes page (min 1) against a fixed page size.
// perPage <= 0 means no limit. The page is capped so the offset fits in int32.
func NewPaginationParams(page, perPage int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if perPage < 0 {
		perPage = 0
	}
	if perPage > 0 && page > math.MaxInt32/perPage {
		page = math.MaxInt32 / perPage
	}
	return PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
}

// ParsePage reads a page query value, falling back to 1 on anything unparsable
// and capping at math.MaxInt32.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	if page > math.MaxInt32 {
		return math.MaxInt32
	}
	return page
}

// Offset returns the SQL offset
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// CalculateMeta generates pagination metadata
func CalculateMeta(total int64, page, perPage int) PaginationMeta {
	if perPage <= 0 {
		return PaginationMeta{
			CurrentPage: 1,
			PerPage:     int(total),
			Total:       total,
			LastPage:    1,
		}
	}

	lastPage := int(math.Ceil(float64(total) / float64(perPage)))
	if lastPage < 1 {
		lastPage = 1
	}

	return PaginationMeta{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
}

// NewPage wraps data with metadata computed from p.
func NewPage[T any](data []T, total int64, p PaginationParams) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data: data,
		Meta: CalculateMeta(total, p.Page, p.PerPage),
	}
}
