package tablepager

import (
	"log/slog"
)

const (
	AttrPaginate     = "data-paginate"
	AttrItemsPerPage = "data-items-per-page"
)

// Options are the pagination settings declared on a table element.
type Options struct {
	PageSize int
}

// ParseAttributes reads pagination settings from element attributes:
//
//	<table data-paginate="true" data-items-per-page="25">
//
// Returns false if the element does not opt in to pagination. Only the exact
// value "true" opts in.
func ParseAttributes(attrs map[string]string) (Options, bool) {
	if attrs[AttrPaginate] != "true" {
		return Options{}, false
	}

	return Options{
		PageSize: ParsePageSize(attrs[AttrItemsPerPage]),
	}, true
}

// Attach creates a Pager for an element described by attrs.
//
// Returns nil, nil if the element does not opt in to pagination or if source
// is nil.
func Attach[T any](attrs map[string]string, source Source[T], sink Sink, logger *slog.Logger) (*Pager[T], error) {
	opts, ok := ParseAttributes(attrs)
	if !ok {
		return nil, nil
	}

	return New(Config[T]{
		PageSize: opts.PageSize,
		Source:   source,
		Sink:     sink,
		Logger:   logger,
	})
}
