package Heaps

import (
	"errors"
	"math/rand"
	"testing"

	Ark_Utils "github.com/g-m-twostay/ark-utils"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
)

func TestBinary_PopOrder(t *testing.T) {
	h := New[string]()
	for _, c := range []struct {
		pri  int64
		data string
	}{{5, "five"}, {3, "three"}, {8, "eight"}, {1, "one"}} {
		h.Insert(c.pri, c.data, nil)
	}
	if h.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", h.Size())
	}
	for _, want := range []string{"one", "three", "five", "eight"} {
		v, ok := h.Pop()
		if !ok || v != want {
			t.Fatalf("Pop() = (%q, %t), want %q", v, ok, want)
		}
	}
	if _, ok := h.Pop(); ok {
		t.Error("Pop on drained heap reported a value")
	}
}

func TestBinary_Top(t *testing.T) {
	h := New[int]()
	if _, ok := h.Top(); ok {
		t.Error("Top on empty heap reported a value")
	}
	h.Insert(9, 90, nil)
	h.Insert(2, 20, nil)
	if v, ok := h.Top(); !ok || v != 20 {
		t.Errorf("Top() = (%d, %t), want 20", v, ok)
	}
	if h.Size() != 2 {
		t.Error("Top must not remove")
	}
}

func TestBinary_DataComparator(t *testing.T) {
	h := NewLess(func(a, b string) bool { return a < b })
	for _, s := range []string{"pear", "apple", "quince", "fig"} {
		h.Insert(0, s, nil) // priority is ignored in data mode
	}
	for _, want := range []string{"apple", "fig", "pear", "quince"} {
		if v, _ := h.Pop(); v != want {
			t.Fatalf("Pop() = %q, want %q", v, want)
		}
	}
}

func TestBinary_CtxComparator(t *testing.T) {
	rank := map[string]int{"gz": 0, "xz": 1, "zst": 2, "none": 3}
	h := NewLessCtx(func(a, b string, ctx any) bool {
		r := ctx.(map[string]int)
		return r[a] < r[b]
	}, rank)
	for _, s := range []string{"none", "zst", "gz", "xz"} {
		h.Insert(0, s, nil)
	}
	for _, want := range []string{"gz", "xz", "zst", "none"} {
		if v, _ := h.Pop(); v != want {
			t.Fatalf("Pop() = %q, want %q", v, want)
		}
	}
}

// When the two children compare equal, pop must promote the right one: the
// test inside the sift is "left before right", and false picks right.
func TestBinary_TieBreakRight(t *testing.T) {
	h := New[string]()
	h.Insert(0, "root", nil)
	h.Insert(2, "left", nil)
	h.Insert(2, "right", nil)
	h.Insert(3, "deep", nil)
	layout := func() (out []string) {
		_ = h.ForEach(func(v string) error {
			out = append(out, v)
			return nil
		})
		return
	}
	before := layout()
	for i, want := range []string{"root", "left", "right", "deep"} {
		if before[i] != want {
			t.Fatalf("pre-pop layout = %v", before)
		}
	}
	if v, _ := h.Pop(); v != "root" {
		t.Fatal("wrong root")
	}
	after := layout()
	for i, want := range []string{"right", "left", "deep"} {
		if after[i] != want {
			t.Fatalf("post-pop layout = %v, want right promoted over an equal left", after)
		}
	}
}

func TestBinary_ForEach(t *testing.T) {
	const n = 64
	h := New[uint]()
	perm := rand.New(rand.NewSource(1)).Perm(n)
	for _, p := range perm {
		h.Insert(int64(p), uint(p), nil)
	}
	seen := Ark_Utils.NewBitArray(n)
	visits := uint(0)
	err := h.ForEach(func(v uint) error {
		if seen.Get(v) {
			return errors.New("node visited twice")
		}
		seen.Up(v)
		visits++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if visits != h.Size() || seen.Count() != n {
		t.Errorf("visited %d nodes (%d distinct), want %d", visits, seen.Count(), n)
	}

	stop := errors.New("stop")
	visits = 0
	err = h.ForEach(func(uint) error {
		visits++
		if visits == 7 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || visits != 7 {
		t.Errorf("short-circuit: err=%v visits=%d", err, visits)
	}
}

func TestBinary_NoComparator(t *testing.T) {
	h := NewLess[int](nil)
	h.Insert(1, 10, nil)
	if h.Size() != 0 {
		t.Error("Insert on a capability-less heap must no-op")
	}
	if _, ok := h.Pop(); ok {
		t.Error("Pop on a capability-less heap must report false")
	}
	if _, ok := h.Top(); ok {
		t.Error("Top on a capability-less heap must report false")
	}
}

func TestBinary_Free(t *testing.T) {
	destroyed := 0
	h := New[int]()
	for i := 0; i < 10; i++ {
		h.Insert(int64(i), i, func(int) { destroyed++ })
	}
	v, _ := h.Pop() // ownership left the heap with the caller
	_ = v
	h.Free()
	if destroyed != 9 {
		t.Errorf("Free destroyed %d payloads, want 9 (one was popped out)", destroyed)
	}
	if h.Size() != 0 {
		t.Error("Size() after Free should be 0")
	}
	h.Insert(1, 1, nil)
	if v, ok := h.Pop(); !ok || v != 1 {
		t.Error("heap unusable after Free")
	}
}

func TestBinary_CloneShallow(t *testing.T) {
	destroyed := 0
	h := New[*int]()
	for i := 0; i < 8; i++ {
		v := i
		h.Insert(int64(i), &v, func(*int) { destroyed++ })
	}
	c := h.Clone()
	if c.Size() != h.Size() {
		t.Fatalf("clone Size() = %d, want %d", c.Size(), h.Size())
	}
	var src, cln []*int
	_ = h.ForEach(func(p *int) error { src = append(src, p); return nil })
	_ = c.ForEach(func(p *int) error { cln = append(cln, p); return nil })
	for i := range src {
		if src[i] != cln[i] {
			t.Fatal("shallow clone must share payload addresses")
		}
	}
	c.Free()
	if destroyed != 0 {
		t.Error("freeing a shallow clone destroyed shared payloads")
	}
	for i := 0; i < 8; i++ {
		if v, ok := h.Pop(); !ok || *v != i {
			t.Fatalf("source heap corrupted after clone free: (%v, %t)", v, ok)
		}
	}
}

func TestBinary_CloneWith(t *testing.T) {
	destroyed := 0
	h := New[*int]()
	for i := 0; i < 8; i++ {
		v := i
		h.Insert(int64(i), &v, func(*int) { destroyed++ })
	}
	c := h.CloneWith(func(p *int) *int {
		v := *p
		return &v
	})
	var src, cln []*int
	_ = h.ForEach(func(p *int) error { src = append(src, p); return nil })
	_ = c.ForEach(func(p *int) error { cln = append(cln, p); return nil })
	for i := range src {
		if src[i] == cln[i] {
			t.Fatal("deep clone must not share payload addresses")
		}
		if *src[i] != *cln[i] {
			t.Fatal("deep clone changed payload values")
		}
	}
	c.Free() // the clone owns its transformed payloads
	if destroyed != 8 {
		t.Errorf("freeing the deep clone destroyed %d payloads, want 8", destroyed)
	}
	if v, ok := h.Pop(); !ok || *v != 0 {
		t.Error("source heap disturbed by deep clone teardown")
	}
}

// The heap must agree with an established implementation on pop order for
// distinct priorities.
func TestBinary_AgainstGods(t *testing.T) {
	const n = 256
	mine := New[int]()
	ref := binaryheap.NewWith(utils.Int64Comparator)
	for _, p := range rand.New(rand.NewSource(7)).Perm(n) {
		mine.Insert(int64(p), p, nil)
		ref.Push(int64(p))
	}
	for i := 0; i < n; i++ {
		got, ok := mine.Pop()
		want, ok2 := ref.Pop()
		if !ok || !ok2 || int64(got) != want.(int64) {
			t.Fatalf("pop %d: mine=%d gods=%v", i, got, want)
		}
	}
}

func TestBinary_RandomizedOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	h := New[int64]()
	for i := 0; i < 1000; i++ {
		p := rng.Int63n(500) // duplicates included on purpose
		h.Insert(p, p, nil)
	}
	prev := int64(-1)
	for h.Size() > 0 {
		v, _ := h.Pop()
		if v < prev {
			t.Fatalf("pop sequence went backwards: %d after %d", v, prev)
		}
		prev = v
	}
}
