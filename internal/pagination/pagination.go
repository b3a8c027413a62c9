// Package pagination implements the paged-search parameters shared by every
// search endpoint: positive page arithmetic, offset/limit translation and
// total-page computation. The sort parameter is carried through and echoed
// back to the caller but never applied to ordering; results are returned in
// storage order.
package pagination

import (
	apperrors "reservations-backend/internal/errors"
)

// Params carries the client-supplied paging parameters of a search request.
type Params struct {
	CurrentPage  int    `json:"current_page" validate:"required,min=1"`
	ItemsPerPage int    `json:"items_per_page" validate:"required,min=1"`
	Sort         string `json:"sort,omitempty"`
}

// Validate rejects non-positive paging parameters before any query runs.
func (p Params) Validate() error {
	if p.CurrentPage <= 0 || p.ItemsPerPage <= 0 {
		return apperrors.ErrInvalidPaginationParams
	}
	return nil
}

// Offset returns the zero-based offset of the requested page.
func (p Params) Offset() int {
	return p.ItemsPerPage * (p.CurrentPage - 1)
}

// Limit returns the page size.
func (p Params) Limit() int {
	return p.ItemsPerPage
}

// TotalPages computes ceil(totalItems / itemsPerPage).
func TotalPages(totalItems int64, itemsPerPage int) int {
	if itemsPerPage <= 0 {
		return 0
	}
	pages := totalItems / int64(itemsPerPage)
	if totalItems%int64(itemsPerPage) != 0 {
		pages++
	}
	return int(pages)
}
