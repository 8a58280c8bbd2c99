package tablepager

import (
	"github.com/samber/lo"
)

// Transition describes a change of the visible set. Indices are 0-based
// positions in the collection the Pager currently holds.
type Transition struct {
	// Rebuild is set when the collection itself was (re)loaded. Everything
	// not listed in Visible must be hidden; Hidden is empty in that case.
	Rebuild bool
	// Len is the number of items in the collection.
	Len int
	// Visible is the complete visible set after the transition, ascending.
	Visible []int
	// Shown are indices that became visible.
	Shown []int
	// Hidden are indices that stopped being visible.
	Hidden []int
}

// IsEmpty returns true if the transition changes nothing.
func (t Transition) IsEmpty() bool {
	return !t.Rebuild && len(t.Shown) == 0 && len(t.Hidden) == 0
}

// Sink applies visibility changes to whatever presents the items. It must
// not call back into the Pager that notifies it.
type Sink interface {
	Render(Transition) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Transition) error

// Render - implements Sink.
func (f SinkFunc) Render(t Transition) error {
	return f(t)
}

var _ Sink = SinkFunc(nil)

func indexRange(start int, end int) []int {
	return lo.RangeFrom(start, max(0, end-start))
}

func rebuildTransition(length, start, end int) Transition {
	visible := indexRange(start, end)

	return Transition{
		Rebuild: true,
		Len:     length,
		Visible: visible,
		Shown:   visible,
	}
}

func diffTransition(length, prevStart, prevEnd, nextStart, nextEnd int) Transition {
	prev := indexRange(prevStart, prevEnd)
	next := indexRange(nextStart, nextEnd)
	hidden, shown := lo.Difference(prev, next)

	return Transition{
		Len:     length,
		Visible: next,
		Shown:   shown,
		Hidden:  hidden,
	}
}

// VisibilitySet is a Sink that keeps a show/hide flag per item, the way
// table rows are toggled with a display style.
type VisibilitySet struct {
	flags []bool
}

// NewVisibilitySet returns an empty VisibilitySet; the first rendered
// transition sizes it.
func NewVisibilitySet() *VisibilitySet {
	return new(VisibilitySet)
}

// Render - implements Sink.
func (v *VisibilitySet) Render(t Transition) error {
	if t.Rebuild || len(v.flags) != t.Len {
		v.Reset(t.Len)
	}

	for _, idx := range t.Hidden {
		v.set(idx, false)
	}
	for _, idx := range t.Visible {
		v.set(idx, true)
	}

	return nil
}

// Reset marks the first length items hidden.
func (v *VisibilitySet) Reset(length int) {
	v.flags = make([]bool, length)
}

func (v *VisibilitySet) set(idx int, visible bool) {
	for len(v.flags) <= idx {
		v.flags = append(v.flags, false)
	}
	v.flags[idx] = visible
}

// IsVisible returns true if the item at idx is currently shown.
func (v *VisibilitySet) IsVisible(idx int) bool {
	if v == nil || idx < 0 || idx >= len(v.flags) {
		return false
	}

	return v.flags[idx]
}

// Visible returns the shown indices in ascending order.
func (v *VisibilitySet) Visible() []int {
	if v == nil {
		return nil
	}

	ret := make([]int, 0, len(v.flags))
	for idx, visible := range v.flags {
		if visible {
			ret = append(ret, idx)
		}
	}

	return ret
}

// Len returns the number of tracked items.
func (v *VisibilitySet) Len() int {
	if v == nil {
		return 0
	}

	return len(v.flags)
}

var _ Sink = (*VisibilitySet)(nil)
