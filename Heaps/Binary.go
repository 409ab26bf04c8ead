package Heaps

import (
	"github.com/g-m-twostay/ark-utils/Arrays"
)

// node is one heap slot. valid is false only for the index-0 sentinel, which
// exists so children of slot i sit at 2i and 2i+1 and the parent at i/2.
type node[T any] struct {
	pri   int64
	data  T
	dtor  func(T)
	valid bool
}

// Binary is a binary heap backed by a chunked array. The sift algorithms
// hold *node pointers into the backing storage across pushes within a single
// call; Arrays.Chunked guarantees those stay valid because growth never
// moves existing blocks.
type Binary[T any] struct {
	nodes *Arrays.Chunked[node[T]]
	cmp   comparator[T]
}

func newBinary[T any](c comparator[T]) *Binary[T] {
	u := &Binary[T]{
		nodes: Arrays.New(func(n node[T]) {
			if n.valid && n.dtor != nil {
				n.dtor(n.data)
			}
		}),
		cmp: c,
	}
	u.nodes.Push(node[T]{}) // index 0 sentinel, never valid
	return u
}

// New heap ordered by ascending int64 priority.
func New[T any]() *Binary[T] {
	return NewPriorityFunc[T](func(a, b int64) bool { return a < b })
}

// NewPriorityFunc orders by the given priority comparison. A nil less yields
// a capability-less heap whose operations no-op.
func NewPriorityFunc[T any](less func(a, b int64) bool) *Binary[T] {
	c := comparator[T]{}
	if less != nil {
		c.m, c.priLess = byPriority, less
	}
	return newBinary(c)
}

// NewLess orders by the payloads themselves; the int64 priority passed to
// Insert is stored but ignored.
func NewLess[T any](less func(a, b T) bool) *Binary[T] {
	c := comparator[T]{}
	if less != nil {
		c.m, c.less = byData, less
	}
	return newBinary(c)
}

// NewLessCtx orders by the payloads with ctx passed through to every
// comparison.
func NewLessCtx[T any](less func(a, b T, ctx any) bool, ctx any) *Binary[T] {
	c := comparator[T]{}
	if less != nil {
		c.m, c.ctxLess, c.ctx = byDataCtx, less, ctx
	}
	return newBinary(c)
}

// Size is the element count, excluding the sentinel.
func (u *Binary[T]) Size() uint {
	if n := u.nodes.Size(); n > 0 {
		return n - 1
	}
	return 0
}

// Insert places v under the active comparator using a hole sift-up: append a
// placeholder slot, walk parents down into the hole while the new element
// orders before them, then write the element once into wherever the hole
// came to rest. No-op on a capability-less heap.
func (u *Binary[T]) Insert(pri int64, v T, dtor func(T)) {
	if !u.cmp.ok() {
		return
	}
	u.nodes.Push(node[T]{})
	n := node[T]{pri: pri, data: v, dtor: dtor, valid: true}
	hole := u.nodes.Size() - 1
	for ; hole > 1; hole /= 2 {
		parent := u.nodes.At(hole / 2)
		if !u.cmp.before(&n, parent) {
			break
		}
		*u.nodes.At(hole) = *parent
	}
	*u.nodes.At(hole) = n
}

// Top returns the root payload without removing it. A capability-less heap
// is always empty, so no extra check is needed here.
func (u *Binary[T]) Top() (T, bool) {
	if u.Size() == 0 {
		var zero T
		return zero, false
	}
	return u.nodes.At(1).data, true
}

// Pop removes and returns the root payload; ownership moves to the caller
// and the node destructor does not run. The last element is the relocation
// candidate: descend from the root, stopping where the candidate orders
// before both children, otherwise promoting the lesser child into the hole.
// When the children compare equal the right one is promoted (the test is
// "left before right"; false selects right). A lone left child gets a single
// comparison.
func (u *Binary[T]) Pop() (T, bool) {
	var zero T
	if !u.cmp.ok() || u.Size() == 0 {
		return zero, false
	}
	out := u.nodes.At(1).data
	last, _ := u.nodes.Pop()
	if u.Size() == 0 { // the root was the last element
		return out, true
	}
	hole := uint(1)
	for {
		l, r := u.nodes.At(2*hole), u.nodes.At(2*hole+1)
		if l != nil && l.valid && r != nil && r.valid {
			if u.cmp.before(&last, l) && u.cmp.before(&last, r) {
				break
			}
			if u.cmp.before(l, r) {
				*u.nodes.At(hole) = *l
				hole = 2 * hole
			} else {
				*u.nodes.At(hole) = *r
				hole = 2*hole + 1
			}
		} else if l != nil && l.valid {
			if u.cmp.before(&last, l) {
				break
			}
			*u.nodes.At(hole) = *l
			hole = 2 * hole
		} else {
			break
		}
	}
	*u.nodes.At(hole) = last
	return out, true
}

// ForEach visits every valid node in index order of the implicit tree. That
// is breadth order, not priority order; only repeated Pop yields a sorted
// sequence.
func (u *Binary[T]) ForEach(f func(T) error) error {
	for i, n := uint(1), u.nodes.Size(); i < n; i++ {
		if nd := u.nodes.At(i); nd.valid {
			if err := f(nd.data); err != nil {
				return err
			}
		}
	}
	return nil
}

// Free destroys every valid node's payload and resets the heap to empty with
// its comparator capability intact.
func (u *Binary[T]) Free() {
	u.nodes.Clear()
	u.nodes.Push(node[T]{}) // restore the sentinel
}

// Clone is a shallow copy: same capability, same structure, shared payloads,
// destructors neutralized so freeing the clone cannot touch the source's
// data. The clone must not be dereferenced after the source heap is freed;
// that lifetime discipline is the caller's.
func (u *Binary[T]) Clone() *Binary[T] {
	t := newBinary(u.cmp)
	for i, n := uint(1), u.nodes.Size(); i < n; i++ {
		nd := *u.nodes.At(i)
		nd.dtor = nil
		t.nodes.Push(nd)
	}
	return t
}

// CloneWith is a deep copy: every payload passes through fn and the clone
// owns the results under the source's destructor semantics. The node layout
// is copied as-is, which preserves heap order since fn must be
// order-preserving for the clone to stay a heap.
func (u *Binary[T]) CloneWith(fn func(T) T) *Binary[T] {
	t := newBinary(u.cmp)
	for i, n := uint(1), u.nodes.Size(); i < n; i++ {
		nd := *u.nodes.At(i)
		if nd.valid {
			nd.data = fn(nd.data)
		}
		t.nodes.Push(nd)
	}
	return t
}
