package tablepager

import (
	"fmt"

	"github.com/samber/lo"
)

// Controls is a presentation-free model of the pagination bar: a caption,
// previous/next links and the page buttons in between.
type Controls struct {
	// Hidden is set when a refresh left a single page; the bar is not shown
	// at all in that case.
	Hidden   bool
	Previous NavLink
	Next     NavLink
	Links    []PageLink
	Info     Caption
}

// NavLink is a previous/next link.
type NavLink struct {
	// Page the link navigates to. Meaningless when Disabled.
	Page     int
	Disabled bool
}

// PageLink is one page button.
type PageLink struct {
	Page     PageItem
	Label    string
	Active   bool
	Ellipsis bool
}

// Caption holds the 1-based visible range, e.g. "Showing 51–100 of 120".
type Caption struct {
	Start int
	End   int
	Total int
}

// String - implements fmt.Stringer.
func (c Caption) String() string {
	return fmt.Sprintf("Showing %d–%d of %d", c.Start, c.End, c.Total)
}

var _ fmt.Stringer = Caption{}

// Controls builds the pagination bar for the current position.
func (p *Pager[T]) Controls() Controls {
	if p == nil {
		return Controls{Hidden: true}
	}

	start, end, total := p.VisibleRange()
	current := PageItem(p.CurrentPage())

	return Controls{
		Hidden: p.refreshed && p.IsSinglePage(),
		Previous: NavLink{
			Page:     p.CurrentPage() - 1,
			Disabled: !p.HasPrevious(),
		},
		Next: NavLink{
			Page:     p.CurrentPage() + 1,
			Disabled: !p.HasNext(),
		},
		Links: lo.Map(p.PageNumbers(), func(item PageItem, _ int) PageLink {
			return PageLink{
				Page:     item,
				Label:    item.String(),
				Active:   item == current,
				Ellipsis: item.IsEllipsis(),
			}
		}),
		Info: Caption{Start: start, End: end, Total: total},
	}
}
