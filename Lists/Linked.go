// Package Lists implements a singly linked list bounded by sentinel head and
// tail nodes. It is the bucket storage of the chained hash map; the sentinels
// keep every splice a plain next-pointer write with no head/tail special
// cases.
package Lists

type node[T any] struct {
	next *node[T]
	data T
	dtor func(T)
}

// Linked list with non-data sentinel nodes at both ends. Live nodes sit
// strictly between the sentinels.
type Linked[T any] struct {
	head, tail *node[T]
	n          uint
}

// New empty list; the two sentinels are allocated up front.
func New[T any]() *Linked[T] {
	t := new(node[T])
	return &Linked[T]{head: &node[T]{next: t}, tail: t}
}

// AddFront prepends a live node holding v. dtor, if non-nil, runs exactly
// once when the node is removed or the list freed; it never runs on payloads
// that leave through TakeAll.
func (u *Linked[T]) AddFront(v T, dtor func(T)) {
	u.head.next = &node[T]{next: u.head.next, data: v, dtor: dtor}
	u.n++
}

// Remove unlinks every live node whose data satisfies pred, destroying each
// removed payload, and reports how many nodes went away.
func (u *Linked[T]) Remove(pred func(T) bool) uint {
	var c uint
	for pre := u.head; pre.next != u.tail; {
		if cur := pre.next; pred(cur.data) {
			pre.next = cur.next
			if cur.dtor != nil {
				cur.dtor(cur.data)
			}
			c++
		} else {
			pre = cur
		}
	}
	u.n -= c
	return c
}

// ForEach visits live nodes front to back and stops at the first non-nil
// error, which becomes the overall result.
func (u *Linked[T]) ForEach(f func(T) error) error {
	for cur := u.head.next; cur != u.tail; cur = cur.next {
		if err := f(cur.data); err != nil {
			return err
		}
	}
	return nil
}

// Len is the live node count.
func (u *Linked[T]) Len() uint {
	return u.n
}

// TakeAll empties the list and returns every payload in front-to-back order
// without running destructors: ownership moves to the caller. The map's
// rehash uses this to move entries between bucket generations without
// double-destroying them.
func (u *Linked[T]) TakeAll() []T {
	out := make([]T, 0, u.n)
	for cur := u.head.next; cur != u.tail; cur = cur.next {
		out = append(out, cur.data)
	}
	u.head.next = u.tail
	u.n = 0
	return out
}

// Free destroys every live payload and leaves the list empty but usable.
func (u *Linked[T]) Free() {
	for cur := u.head.next; cur != u.tail; cur = cur.next {
		if cur.dtor != nil {
			cur.dtor(cur.data)
		}
	}
	u.head.next = u.tail
	u.n = 0
}
