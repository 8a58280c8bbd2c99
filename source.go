package tablepager

import (
	"github.com/samber/lo"
)

// Source provides the collection a Pager windows over. It is re-read on
// every Refresh.
type Source[T any] interface {
	Items() ([]T, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc[T any] func() ([]T, error)

// Items - implements Source.
func (f SourceFunc[T]) Items() ([]T, error) {
	return f()
}

// SliceSource serves a fixed slice.
type SliceSource[T any] []T

// Items - implements Source.
func (s SliceSource[T]) Items() ([]T, error) {
	return s, nil
}

// FilteredSource keeps only the items of Source accepted by Keep, e.g. the
// rows left visible by a search box. A nil Keep accepts everything.
type FilteredSource[T any] struct {
	Source Source[T]
	Keep   func(T) bool
}

// Items - implements Source.
func (f FilteredSource[T]) Items() ([]T, error) {
	if f.Source == nil {
		return nil, nil
	}

	items, err := f.Source.Items()
	if err != nil {
		return nil, err
	}

	if f.Keep == nil {
		return items, nil
	}

	return lo.Filter(items, func(item T, _ int) bool {
		return f.Keep(item)
	}), nil
}

var (
	_ Source[any] = SourceFunc[any](nil)
	_ Source[any] = SliceSource[any](nil)
	_ Source[any] = FilteredSource[any]{}
)
