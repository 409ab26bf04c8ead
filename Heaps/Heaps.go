// Package Heaps implements the binary priority heap that schedules the
// archiver's work items. A heap owns its payloads: whatever is still inside
// when Free runs is destroyed through the destructor supplied at Insert.
//
// Every heap carries exactly one comparator capability, fixed at
// construction: an int64 priority order, a data order, or a data order with
// an attached context value. A heap without a capability (a nil comparison
// function was supplied) silently ignores Insert and reports itself empty,
// so a false second return from Pop or Top is ambiguous between "empty" and
// "misconfigured" by design.
package Heaps

// Heap orders owned payloads under a single comparator capability.
type Heap[T any] interface {
	Insert(pri int64, v T, dtor func(T))
	Top() (T, bool)
	Pop() (T, bool)
	ForEach(f func(T) error) error
	Size() uint
	Free()
}

type mode byte

const (
	none mode = iota
	byPriority
	byData
	byDataCtx
)

// comparator is the single active ordering capability of a heap. The mode
// tag selects which of the three function slots is live; the other two stay
// nil.
type comparator[T any] struct {
	m       mode
	priLess func(a, b int64) bool
	less    func(a, b T) bool
	ctxLess func(a, b T, ctx any) bool
	ctx     any
}

func (c *comparator[T]) ok() bool {
	return c.m != none
}

// before reports whether a orders strictly before b under the active
// capability. Equal elements are "not before" in every mode; the heap's
// tie-breaks build on that.
func (c *comparator[T]) before(a, b *node[T]) bool {
	switch c.m {
	case byPriority:
		return c.priLess(a.pri, b.pri)
	case byData:
		return c.less(a.data, b.data)
	case byDataCtx:
		return c.ctxLess(a.data, b.data, c.ctx)
	}
	return false
}
