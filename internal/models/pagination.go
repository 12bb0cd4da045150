package models

import (
	"math"
	"strings"
)

// OffsetPage normalizes the zero-based start/length form.
func OffsetPage(start, length int, search string) PageRequest {
	return PageRequest{
		Start:  start,
		Length: length,
		Search: strings.ToLower(search),
	}
}

// NumberedPage normalizes the one-based page/pageSize form. A page whose
// offset does not fit in an int lies past any sequence and gives an empty range.
func NumberedPage(page, pageSize int, search string) PageRequest {
	if page > 1 && pageSize > 0 && page-1 > math.MaxInt/pageSize {
		return OffsetPage(math.MaxInt, pageSize, search)
	}
	return OffsetPage((page-1)*pageSize, pageSize, search)
}

// Bounds returns the half-open slice range [lo, hi) of the page within a
// sequence of n items. Out-of-range starts give an empty range.
func (p PageRequest) Bounds(n int) (lo, hi int) {
	lo = p.Start
	if lo < 0 {
		lo = 0
	}
	if lo > n {
		lo = n
	}
	if remaining := n - lo; p.Length < 0 || p.Length > remaining {
		return lo, n
	}
	return lo, lo + p.Length
}
