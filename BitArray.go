package Ark_Utils

import (
	"math/bits"
)

// NewBitArray with room for at least n bits, rounded up to a whole word.
func NewBitArray(n uint) BitArray {
	return BitArray{bits: make([]uint, (n+bits.UintSize-1)/bits.UintSize)}
}

type BitArray struct {
	bits []uint
}

func (u BitArray) Len() uint {
	return uint(len(u.bits)) * bits.UintSize
}

// Get reports bit i; out-of-range reads are false rather than a panic.
func (u BitArray) Get(i uint) bool {
	if i >= u.Len() {
		return false
	}
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i uint) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i uint) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Count of raised bits.
func (u BitArray) Count() uint {
	var c int
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return uint(c)
}
