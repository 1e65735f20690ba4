// This file provides pooled scratch buffers for the Karatsuba recursion.

package words

import (
	"math/bits"
	"sync"
)

// scratchPools pools Nat buffers by size class: 64, 256, 1K, 4K, 16K, 64K,
// 256K, 1M, 4M, 16M words.
var scratchPools = [...]sync.Pool{
	{New: func() any { return make(Nat, 64) }},
	{New: func() any { return make(Nat, 256) }},
	{New: func() any { return make(Nat, 1024) }},
	{New: func() any { return make(Nat, 4096) }},
	{New: func() any { return make(Nat, 16384) }},
	{New: func() any { return make(Nat, 65536) }},
	{New: func() any { return make(Nat, 262144) }},
	{New: func() any { return make(Nat, 1048576) }},
	{New: func() any { return make(Nat, 4194304) }},
	{New: func() any { return make(Nat, 16777216) }},
}

// scratchSizes defines the size classes for scratchPools.
var scratchSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304, 16777216}

// scratchPoolIndex returns the pool index for a given size, or -1 if the
// size is too large for pooling.
//
// scratchSizes are powers of 4 starting from 4^3, so index i holds sizes
// up to 4^(i+3) and bits.Len(size-1) maps directly to the index.
func scratchPoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > scratchSizes[len(scratchSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// acquireScratch returns a zeroed buffer of exactly size words. Release it
// with defer so it returns to the pool on every exit path:
//
//	buf := acquireScratch(size)
//	defer releaseScratch(buf)
func acquireScratch(size int) Nat {
	idx := scratchPoolIndex(size)
	if idx < 0 {
		return make(Nat, size)
	}
	buf := scratchPools[idx].Get().(Nat)
	clear(buf)
	return buf[:size]
}

// releaseScratch returns a buffer obtained from acquireScratch to its pool.
// Buffers whose capacity is not a size class were allocated directly and
// are left to the garbage collector. Safe to call with nil.
func releaseScratch(buf Nat) {
	if buf == nil {
		return
	}
	c := cap(buf)
	idx := scratchPoolIndex(c)
	if idx >= 0 && scratchSizes[idx] == c {
		scratchPools[idx].Put(buf[:c])
	}
}
