package tablepager

import (
	"fmt"
	"log/slog"
	"slices"
)

// Config configures a Pager.
type Config[T any] struct {
	// PageSize - maximum number of items per page. Values below 1 are clamped.
	PageSize int
	// Source - collection to paginate. A nil Source means there is nothing to
	// attach to and New returns a nil Pager.
	Source Source[T]
	// Sink - receives visibility changes. Optional.
	Sink Sink
	// Logger - defaults to slog.Default().
	Logger *slog.Logger
}

// Pager windows an in-memory collection into pages of fixed size.
//
// All methods are safe to call on a nil *Pager: they do nothing and return
// zero values. This lets hosts construct pagers speculatively, e.g. for a
// table that is not present on the current page.
type Pager[T any] struct {
	source   Source[T]
	sink     Sink
	logger   *slog.Logger
	items    []T
	pageSize int
	page     int

	// refreshed is set once the collection was reloaded at least once.
	refreshed bool
}

// New creates a Pager, loads the collection from cfg.Source and renders the
// first page.
//
// Returns nil, nil if cfg.Source is nil.
func New[T any](cfg Config[T]) (*Pager[T], error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Source == nil {
		logger.Warn("pagination host not found, pager is not attached")
		return nil, nil
	}

	pageSize := NormalizePageSize(cfg.PageSize)
	if pageSize != cfg.PageSize {
		logger.Warn("page size normalized",
			slog.Int("requested", cfg.PageSize),
			slog.Int("applied", pageSize),
		)
	}

	p := &Pager[T]{
		source:   cfg.Source,
		sink:     cfg.Sink,
		logger:   logger,
		pageSize: pageSize,
		page:     1,
	}

	items, err := p.load()
	if err != nil {
		return nil, fmt.Errorf("cannot initialize pager: %w", err)
	}

	if err = p.reset(items); err != nil {
		return nil, fmt.Errorf("cannot initialize pager: %w", err)
	}

	return p, nil
}

// GoToPage makes page the current page. Out of range pages are clamped.
// The sink receives only the indices that were hidden or shown; calling
// GoToPage with the current page notifies nothing.
func (p *Pager[T]) GoToPage(page int) error {
	if p == nil {
		return nil
	}

	page = ClampPage(page, p.TotalPages())
	prevStart, prevEnd := p.window()
	nextStart, nextEnd := Window(len(p.items), p.pageSize, page)

	transition := diffTransition(len(p.items), prevStart, prevEnd, nextStart, nextEnd)
	if !transition.IsEmpty() {
		if err := p.render(transition); err != nil {
			return fmt.Errorf("cannot render page %d: %w", page, err)
		}
	}

	p.page = page

	return nil
}

// Next moves to the following page. Does nothing on the last page.
func (p *Pager[T]) Next() error {
	if !p.HasNext() {
		return nil
	}

	return p.GoToPage(p.page + 1)
}

// Previous moves to the preceding page. Does nothing on the first page.
func (p *Pager[T]) Previous() error {
	if !p.HasPrevious() {
		return nil
	}

	return p.GoToPage(p.page - 1)
}

// Refresh reloads the collection from the source, e.g. after it was
// filtered, and renders the first page.
func (p *Pager[T]) Refresh() error {
	if p == nil {
		return nil
	}

	items, err := p.load()
	if err != nil {
		return fmt.Errorf("cannot refresh pager: %w", err)
	}

	return p.RefreshWith(items)
}

// RefreshWith replaces the collection with a copy of items and renders the
// first page.
func (p *Pager[T]) RefreshWith(items []T) error {
	if p == nil {
		return nil
	}

	if err := p.reset(items); err != nil {
		return fmt.Errorf("cannot refresh pager: %w", err)
	}
	p.refreshed = true

	return nil
}

// PageNumbers returns the page button sequence for the current position.
func (p *Pager[T]) PageNumbers() []PageItem {
	return PageNumbers(p.TotalPages(), p.CurrentPage())
}

// VisibleRange returns the 1-based positions of the first and the last
// visible item and the collection length, e.g. (51, 100, 120).
// An empty collection yields (0, 0, 0).
func (p *Pager[T]) VisibleRange() (int, int, int) {
	if p == nil || len(p.items) == 0 {
		return 0, 0, 0
	}

	start, end := p.window()

	return start + 1, end, len(p.items)
}

// Items returns a copy of the visible items.
func (p *Pager[T]) Items() []T {
	if p == nil {
		return nil
	}

	start, end := p.window()

	return slices.Clone(p.items[start:end])
}

// VisibleIndices returns the 0-based indices of the visible items.
func (p *Pager[T]) VisibleIndices() []int {
	if p == nil {
		return nil
	}

	return indexRange(p.window())
}

// CurrentPage returns the 1-based current page. A nil Pager is on page 0.
func (p *Pager[T]) CurrentPage() int {
	if p == nil {
		return 0
	}

	return p.page
}

// TotalPages returns max(1, ceil(Len()/PageSize())).
func (p *Pager[T]) TotalPages() int {
	if p == nil {
		return 0
	}

	return TotalPages(len(p.items), p.pageSize)
}

// PageSize returns the normalized page size.
func (p *Pager[T]) PageSize() int {
	if p == nil {
		return 0
	}

	return p.pageSize
}

// Len returns the number of items in the collection.
func (p *Pager[T]) Len() int {
	if p == nil {
		return 0
	}

	return len(p.items)
}

// IsSinglePage returns true if the whole collection fits on one page. The
// navigation controls are inert in this state.
func (p *Pager[T]) IsSinglePage() bool {
	return p.TotalPages() <= 1
}

// HasPrevious returns true if there is a page before the current one.
func (p *Pager[T]) HasPrevious() bool {
	return p != nil && p.page > 1
}

// HasNext returns true if there is a page after the current one.
func (p *Pager[T]) HasNext() bool {
	return p != nil && p.page < p.TotalPages()
}

func (p *Pager[T]) window() (int, int) {
	return Window(len(p.items), p.pageSize, p.page)
}

func (p *Pager[T]) load() ([]T, error) {
	items, err := p.source.Items()
	if err != nil {
		return nil, fmt.Errorf("cannot load items: %w", err)
	}

	return items, nil
}

// reset swaps the collection for a copy of items and renders page 1. State
// is kept untouched when the sink fails.
func (p *Pager[T]) reset(items []T) error {
	start, end := Window(len(items), p.pageSize, 1)
	if err := p.render(rebuildTransition(len(items), start, end)); err != nil {
		return fmt.Errorf("cannot render page 1: %w", err)
	}

	p.items = slices.Clone(items)
	p.page = 1

	p.logger.Debug("pagination reset",
		slog.Int("items", len(items)),
		slog.Int("pages", p.TotalPages()),
		slog.Bool("single_page", p.IsSinglePage()),
	)

	return nil
}

func (p *Pager[T]) render(t Transition) error {
	if p.sink == nil {
		return nil
	}

	return p.sink.Render(t)
}
