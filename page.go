package tablepager

import (
	"strconv"

	"github.com/samber/lo"
)

// PageItem is one entry of the page button sequence: either a 1-based page
// number or Ellipsis.
type PageItem int

// Ellipsis marks omitted page numbers. It is never a navigable page.
const Ellipsis PageItem = 0

// IsEllipsis returns true for the Ellipsis marker.
func (p PageItem) IsEllipsis() bool {
	return p == Ellipsis
}

// String - implements fmt.Stringer.
func (p PageItem) String() string {
	if p.IsEllipsis() {
		return "..."
	}

	return strconv.Itoa(int(p))
}

// TotalPages returns the number of pages needed for length items. An empty
// collection still has one (empty) page.
func TotalPages(length int, pageSize int) int {
	pageSize = NormalizePageSize(pageSize)
	if length <= 0 {
		return 1
	}

	return (length + pageSize - 1) / pageSize
}

// ClampPage moves page into [1, totalPages]. totalPages of 0 is treated as 1.
func ClampPage(page int, totalPages int) int {
	return lo.Clamp(page, 1, max(1, totalPages))
}

// Window returns the half-open [start, end) index range of page within a
// collection of length items.
func Window(length int, pageSize int, page int) (int, int) {
	pageSize = NormalizePageSize(pageSize)
	page = ClampPage(page, TotalPages(length, pageSize))
	if length <= 0 {
		return 0, 0
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, length)

	return start, end
}

// PageNumbers builds the page button sequence for the given position.
//
// Up to MaxVisiblePages pages are listed verbatim. Longer sequences keep the
// first and the last page, the neighbours of the current page, and collapse
// the rest into Ellipsis:
//
//	PageNumbers(20, 10) => [1 ... 9 10 11 ... 20]
//	PageNumbers(20, 2)  => [1 2 3 ... 20]
func PageNumbers(totalPages int, currentPage int) []PageItem {
	totalPages = max(1, totalPages)
	currentPage = ClampPage(currentPage, totalPages)

	if totalPages <= MaxVisiblePages {
		return lo.RangeFrom(PageItem(1), totalPages)
	}

	pages := make([]PageItem, 0, MaxVisiblePages)
	pages = append(pages, 1)

	if currentPage > 3 {
		pages = append(pages, Ellipsis)
	}

	startPage := max(2, currentPage-1)
	endPage := min(totalPages-1, currentPage+1)
	for i := startPage; i <= endPage; i++ {
		pages = append(pages, PageItem(i))
	}

	if currentPage < totalPages-2 {
		pages = append(pages, Ellipsis)
	}

	return append(pages, PageItem(totalPages))
}
