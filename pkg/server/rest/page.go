package rest

import (
	"net/url"
	"strconv"

	"go.openly.dev/pointy"
)

type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.Limit
}

type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPage wraps results, linking to the neighbouring pages of base when they exist.
func NewPage[T any](results []T, count int64, pagination Pagination, base *url.URL) Page[T] {
	if results == nil {
		results = []T{}
	}

	page := Page[T]{Count: count, Results: results}
	if base == nil || pagination.Limit < 1 {
		return page
	}

	current := max(pagination.Page, 1)

	if int64(current*pagination.Limit) < count {
		page.Next = pointy.String(pageURL(base, current+1))
	}

	if current > 1 {
		page.Previous = pointy.String(pageURL(base, current-1))
	}

	return page
}

func pageURL(base *url.URL, page int) string {
	link := *base
	query := link.Query()
	query.Set("page", strconv.Itoa(page))
	link.RawQuery = query.Encode()

	return link.String()
}
