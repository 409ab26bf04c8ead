// Package Arrays implements growable random-access storage in fixed-size
// blocks. Unlike a plain slice, growth never moves elements that are already
// stored, so pointers handed out by At stay valid for the lifetime of the
// element.
package Arrays

// ChunkSize is the fixed capacity of every block.
const ChunkSize = 32

type block[T any] [ChunkSize]T

// Chunked is an array growing one block at a time. Every block before the
// last holds exactly ChunkSize elements; the last holds lastLen in [0,
// ChunkSize). Growth reallocates only the slice of block pointers, never the
// blocks themselves.
//
// The optional destructor runs on an element exactly once: on PopDrop, on
// Clear, or never if ownership left through Pop.
type Chunked[T any] struct {
	blocks  []*block[T]
	lastLen uint
	dtor    func(T)
}

// New Chunked array with one empty block pre-allocated. dtor may be nil for
// elements owning nothing beyond their own bytes.
func New[T any](dtor func(T)) *Chunked[T] {
	return &Chunked[T]{blocks: []*block[T]{new(block[T])}, dtor: dtor}
}

// Size in elements, computed from the block count and the fill level of the
// last block.
func (u *Chunked[T]) Size() uint {
	if len(u.blocks) == 0 {
		return 0
	}
	return uint(len(u.blocks)-1)*ChunkSize + u.lastLen
}

// Push appends v. When the push fills the current block a fresh empty block
// is linked in, so the next free slot always exists.
func (u *Chunked[T]) Push(v T) {
	u.blocks[len(u.blocks)-1][u.lastLen] = v
	u.lastLen++
	if u.lastLen == ChunkSize {
		u.blocks = append(u.blocks, new(block[T]))
		u.lastLen = 0
	}
}

// At returns the address of element i, nil when i >= Size(). The address
// stays valid across later Push calls.
func (u *Chunked[T]) At(i uint) *T {
	if i >= u.Size() {
		return nil
	}
	return &u.blocks[i/ChunkSize][i%ChunkSize]
}

// Top is the last element's address, nil on empty.
func (u *Chunked[T]) Top() *T {
	if n := u.Size(); n > 0 {
		return u.At(n - 1)
	}
	return nil
}

// Bottom is the first element's address, nil on empty.
func (u *Chunked[T]) Bottom() *T {
	return u.At(0)
}

// Pop removes the last element and hands ownership to the caller; the
// destructor does not run. When the removal empties the last of several
// blocks that block is released.
func (u *Chunked[T]) Pop() (T, bool) {
	var zero T
	if u.Size() == 0 {
		return zero, false
	}
	if u.lastLen == 0 { // trailing block is empty, the element lives in the previous one
		u.blocks[len(u.blocks)-1] = nil
		u.blocks = u.blocks[:len(u.blocks)-1]
		u.lastLen = ChunkSize
	}
	u.lastLen--
	v := u.blocks[len(u.blocks)-1][u.lastLen]
	u.blocks[len(u.blocks)-1][u.lastLen] = zero
	return v, true
}

// PopDrop removes the last element through the destructor instead of
// returning it.
func (u *Chunked[T]) PopDrop() bool {
	v, ok := u.Pop()
	if ok && u.dtor != nil {
		u.dtor(v)
	}
	return ok
}

// Clear destroys every live element and reinitializes to a single empty
// block.
func (u *Chunked[T]) Clear() {
	if u.dtor != nil {
		for i, n := uint(0), u.Size(); i < n; i++ {
			u.dtor(*u.At(i))
		}
	}
	u.blocks = []*block[T]{new(block[T])}
	u.lastLen = 0
}
