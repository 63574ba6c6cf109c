package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Pagination defaults and limits.
const (
	DefaultLimit     = 0
	MaxLimit         = 10000
	MaxPageSize      = 1000
	DefaultOffset    = 0
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Validation errors.
var (
	ErrNegativeValue        = errors.New("pagination values cannot be negative")
	ErrInvalidLimit         = fmt.Errorf("limit must be at most %d", MaxLimit)
	ErrInvalidPageSize      = fmt.Errorf("page-size must be at most %d", MaxPageSize)
	ErrMixedPaginationModes = errors.New("page and offset parameters are mutually exclusive")
	ErrPageSizeWithoutPage  = errors.New("page must be specified when using page-size")
	ErrPageWithoutPageSize  = errors.New("page-size must be specified when using page")
	ErrInvalidSortOrder     = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat    = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'emissions:desc')")
	ErrEmptySortField       = errors.New("sort field cannot be empty")
	ErrInvalidSortField     = errors.New("invalid sort field")
)

// PaginationParams holds the paging flags of a list command. Offset mode
// (--limit, --offset) and page mode (--page, --page-size) are exclusive.
// A zero Limit means no limit.
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	Limit    int
	Offset   int
	Page     int
	PageSize int
}

// Validate checks bounds and mode consistency.
func (p PaginationParams) Validate() error {
	if p.Limit < 0 || p.Offset < 0 || p.Page < 0 || p.PageSize < 0 {
		return ErrNegativeValue
	}
	if p.Limit > MaxLimit {
		return ErrInvalidLimit
	}
	if p.PageSize > MaxPageSize {
		return ErrInvalidPageSize
	}
	if p.Page > 0 && p.Offset > 0 {
		return ErrMixedPaginationModes
	}
	if p.Page == 0 && p.PageSize > 0 {
		return ErrPageSizeWithoutPage
	}
	if p.PageSize == 0 && p.Page > 0 {
		return ErrPageWithoutPageSize
	}
	return nil
}

// IsPageBased reports whether page mode is active.
func (p PaginationParams) IsPageBased() bool {
	return p.Page > 0
}

// IsEnabled reports whether any paging flag is set.
func (p PaginationParams) IsEnabled() bool {
	return p.Limit > 0 || p.Page > 0 || p.Offset > 0
}

// CalculateOffsetLimit returns the effective offset and limit.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p PaginationParams) CalculateOffsetLimit() (offset, limit int) {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize, p.PageSize
	}
	return p.Offset, p.Limit
}

// CalculateTotalPages returns the page count in page mode and 0 otherwise.
func (p PaginationParams) CalculateTotalPages(totalResults int) int {
	if !p.IsPageBased() || totalResults == 0 {
		return 0
	}
	return (totalResults + p.PageSize - 1) / p.PageSize
}

// Apply returns the page of items selected by p. In page mode a page past the
// end is capped to the last page; in offset mode it is empty.
func Apply[T any](p PaginationParams, items []T) []T {
	if len(items) == 0 {
		return items
	}

	offset, limit := p.CalculateOffsetLimit()
	if p.IsPageBased() && offset >= len(items) {
		offset = ((len(items) - 1) / p.PageSize) * p.PageSize
	}
	if offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if limit > 0 {
		end = min(offset+limit, len(items))
	}
	return items[offset:end]
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses "field" or "field:order". An empty string yields an
// empty field and ascending order.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if strings.TrimSpace(sortStr) == "" {
		return "", DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return field, order, nil
}
