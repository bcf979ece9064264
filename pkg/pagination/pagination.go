package pagination

import (
	"errors"
	"net/url"
	"strconv"
)

var (
	ErrInvalidPage     = errors.New("invalid page parameter: must be positive integer")
	ErrInvalidPageSize = errors.New("invalid pageSize parameter: must be non-negative integer")
)

// Params selects a page of results. A PageSize of 0 means everything on one page.
type Params struct {
	Page     int
	PageSize int
}

// FromQuery reads page and pageSize from query values, defaulting to a single page
func FromQuery(qp url.Values) (Params, error) {
	params := Params{Page: 1}

	if raw := qp.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, ErrInvalidPage
		}
		params.Page = page
	}

	if raw := qp.Get("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 0 {
			return params, ErrInvalidPageSize
		}
		params.PageSize = size
	}

	return params, nil
}

func (p Params) CalculateOffsetLimit() (offset, limit int) {
	if p.PageSize == 0 {
		return 0, 0
	}
	offset = (p.Page - 1) * p.PageSize
	limit = p.PageSize
	return offset, limit
}

// Bounds gives the slice indexes of the page within total items
func (p Params) Bounds(total int) (start, end int) {
	offset, limit := p.CalculateOffsetLimit()
	if limit == 0 {
		return 0, total
	}

	start = min(max(offset, 0), total)
	end = min(start+limit, total)
	return start, end
}

func (p Params) BuildMeta(totalItems int) Meta {
	totalPages := 1
	if p.PageSize > 0 {
		totalPages = (totalItems + p.PageSize - 1) / p.PageSize
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Apply cuts the requested page out of items
func Apply[T any](items []T, p Params) ([]T, Meta) {
	start, end := p.Bounds(len(items))
	return items[start:end], p.BuildMeta(len(items))
}
