// Package pagination parses page/size query parameters and wraps list
// results in the envelope returned by every list endpoint.
package pagination

import (
	"math"
	"strconv"

	appErrors "github.com/GCrispino/workout-api/internal/errors"
)

const (
	DefaultPage = 1
	DefaultSize = 50
	MaxSize     = 100

	// MaxPage keeps (page-1)*size within int for any accepted size.
	MaxPage = math.MaxInt / MaxSize
)

type Params struct {
	Page int
	Size int
}

func (p Params) Limit() int {
	return p.Size
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Size
}

// Parse reads raw query values; empty strings fall back to the defaults.
func Parse(rawPage, rawSize string) (Params, error) {
	p := Params{Page: DefaultPage, Size: DefaultSize}

	if rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil || page < 1 || page > MaxPage {
			return Params{}, appErrors.Validation("page deve ser um inteiro entre 1 e %d", MaxPage)
		}
		p.Page = page
	}

	if rawSize != "" {
		size, err := strconv.Atoi(rawSize)
		if err != nil || size < 1 || size > MaxSize {
			return Params{}, appErrors.Validation("size deve ser um inteiro entre 1 e %d", MaxSize)
		}
		p.Size = size
	}

	return p, nil
}

type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

func NewPage[T any](items []T, total int, p Params) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}

	pages := 0
	if p.Size > 0 {
		pages = (total + p.Size - 1) / p.Size
	}

	return Page[T]{
		Items: items,
		Total: total,
		Page:  p.Page,
		Size:  p.Size,
		Pages: pages,
	}
}

// Map converts the items of a page, keeping its counters.
func Map[T, U any](page Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(page.Items))
	for i := range page.Items {
		items[i] = fn(page.Items[i])
	}
	return Page[U]{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
		Pages: page.Pages,
	}
}
