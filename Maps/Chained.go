package Maps

import (
	"bytes"
	"errors"
	"reflect"

	Ark_Utils "github.com/g-m-twostay/ark-utils"
	"github.com/g-m-twostay/ark-utils/Lists"
)

// StartBuckets is the bucket count of a fresh map. It is odd, and the growth
// rule (n-1)*2+1 keeps every later count odd too.
const StartBuckets = 31

// ErrNilValue rejects inserts of nil values. A found entry is the map's
// membership signal, so a nil value would make the key look absent on every
// later Get.
var ErrNilValue = errors.New("Maps: nil value rejected")

// errStop is the internal short-circuit for single-chain scans.
var errStop = errors.New("stop")

// entry owns a key and a value together with their destructors.
type entry[V any] struct {
	key   []byte
	val   V
	vdtor func(V)
	kdtor func([]byte)
}

func (e *entry[V]) destroy() {
	if e.vdtor != nil {
		e.vdtor(e.val)
	}
	if e.kdtor != nil {
		e.kdtor(e.key)
	}
}

// entryDtor is the node destructor handed to the bucket lists.
func entryDtor[V any](e *entry[V]) {
	e.destroy()
}

// Chained is a chaining hash map: an odd-sized array of sentinel lists, one
// chain per bucket. It is single-writer; callers serialize access.
type Chained[V any] struct {
	buckets []*Lists.Linked[*entry[V]]
	n       uint
	hash    func([]byte) uint64
}

// New Chained map using the default LCG byte-folding hash with seed 0.
func New[V any]() *Chained[V] {
	return NewHasher[V](Ark_Utils.Hasher(0).HashBytes)
}

// NewHasher builds the map around a caller-supplied hash function.
func NewHasher[V any](h func([]byte) uint64) *Chained[V] {
	u := &Chained[V]{buckets: make([]*Lists.Linked[*entry[V]], StartBuckets), hash: h}
	for i := range u.buckets {
		u.buckets[i] = Lists.New[*entry[V]]()
	}
	return u
}

func (u *Chained[V]) bucket(key []byte) *Lists.Linked[*entry[V]] {
	return u.buckets[u.hash(key)%uint64(len(u.buckets))]
}

// Insert stores v under key with no destructors; the zero-maintenance form
// for values the GC fully owns.
func (u *Chained[V]) Insert(key []byte, v V) error {
	return u.InsertOwned(key, v, nil, nil)
}

// InsertOwned stores v under key, taking ownership of both: vdtor and kdtor
// (either may be nil) run when the entry is removed, rehashed away on
// failure, or the map freed. The key slice itself becomes the map's; the
// caller must not mutate it afterwards. If the insert is rejected the map
// destroys v and key immediately and the caller must not free them again.
func (u *Chained[V]) InsertOwned(key []byte, v V, vdtor func(V), kdtor func([]byte)) error {
	e := &entry[V]{key: key, val: v, vdtor: vdtor, kdtor: kdtor}
	if isNil(v) {
		e.destroy()
		return ErrNilValue
	}
	if u.n+1 >= uint(len(u.buckets)) { // rehash before the insert that reaches the bucket count
		u.rehash()
	}
	u.bucket(key).AddFront(e, entryDtor[V])
	u.n++
	return nil
}

// Get returns the value stored under a key of equal length and byte-identical
// content.
func (u *Chained[V]) Get(key []byte) (V, bool) {
	var found *entry[V]
	_ = u.bucket(key).ForEach(func(e *entry[V]) error {
		if bytes.Equal(e.key, key) {
			found = e
			return errStop
		}
		return nil
	})
	if found == nil {
		var zero V
		return zero, false
	}
	return found.val, true
}

// Remove destroys every entry stored under key. More than one match means
// the map held duplicates it never creates itself; the three-way result
// leaves that distinction to the caller instead of papering over it.
func (u *Chained[V]) Remove(key []byte) RemoveResult {
	c := u.bucket(key).Remove(func(e *entry[V]) bool {
		return bytes.Equal(e.key, key)
	})
	u.n -= c
	switch c {
	case 0:
		return RemovedNone
	case 1:
		return RemovedOne
	}
	return RemovedMany
}

// ForEach visits every live entry once, in bucket order, stopping at the
// first non-nil error and returning it.
func (u *Chained[V]) ForEach(f func(key []byte, v V) error) error {
	for _, b := range u.buckets {
		if err := b.ForEach(func(e *entry[V]) error {
			return f(e.key, e.val)
		}); err != nil {
			return err
		}
	}
	return nil
}

// Len is the live entry count.
func (u *Chained[V]) Len() uint {
	return u.n
}

// Free destroys every chain and its entries. The map stays usable, empty, at
// its current bucket count.
func (u *Chained[V]) Free() {
	for _, b := range u.buckets {
		b.Free()
	}
	u.n = 0
}

// rehash grows the bucket array to (n-1)*2+1 and redistributes every entry
// under the new modulus. Entries move through TakeAll, so no destructor runs
// during the transfer; the old chains are released already empty.
func (u *Chained[V]) rehash() {
	old := u.buckets
	u.buckets = make([]*Lists.Linked[*entry[V]], (len(old)-1)*2+1)
	for i := range u.buckets {
		u.buckets[i] = Lists.New[*entry[V]]()
	}
	for _, b := range old {
		for _, e := range b.TakeAll() {
			u.bucket(e.key).AddFront(e, entryDtor[V])
		}
	}
}

// isNil catches both untyped nils and typed nils hiding inside interface
// values; non-nilable kinds are always accepted.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
