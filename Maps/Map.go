// Package Maps implements the keyed stores used by the archiver. Keys are
// byte strings; values are owned by the map and destroyed through their
// destructors on removal or teardown, so a value handed to Insert must not be
// freed again by the caller.
package Maps

// RemoveResult distinguishes the three outcomes of Chained.Remove.
type RemoveResult byte

const (
	// RemovedNone means the key wasn't present.
	RemovedNone RemoveResult = iota
	// RemovedOne means exactly one entry went away; the expected case.
	RemovedOne
	// RemovedMany means several entries matched the key. The map never
	// inserts duplicates on purpose, so this signals an upstream bug and
	// must not be treated as a plain success.
	RemovedMany
)

// Map is a keyed store with byte-string keys.
type Map[V any] interface {
	Insert(key []byte, v V) error
	Get(key []byte) (V, bool)
	Remove(key []byte) RemoveResult
	ForEach(f func(key []byte, v V) error) error
	Len() uint
	Free()
}
