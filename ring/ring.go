// Package ring implements a single-producer/single-consumer lock-free
// byte ring buffer, in the style of xtaci/kcp-go's ringbuffer: a
// power-of-two capacity, atomic head/tail, and no explicit full/empty
// flag beyond the producer/consumer occupancy invariant.
package ring

import (
	"sync/atomic"
)

// DefaultCapacity is the receiver's default ring size: a power of two
// greater than one full RF frame (256 bytes FEC + 1 RSSI byte).
const DefaultCapacity = 1024

// Buffer is a circular byte buffer. The zero value is not usable; use
// New. Head is written only by the producer, tail only by the
// consumer; both fields are read by both sides through atomic loads so
// the producer's writes become visible to the consumer without a lock.
type Buffer struct {
	buf  []byte
	mask uint32
	head atomic.Uint32
	tail atomic.Uint32
}

// New creates a Buffer of the given capacity, which must be a power of
// two; it panics otherwise.
func New(capacity int) *Buffer {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic("ring: capacity must be a power of two")
	}
	return &Buffer{
		buf:  make([]byte, capacity),
		mask: uint32(capacity - 1),
	}
}

// Cap returns the buffer's fixed capacity.
func (b *Buffer) Cap() int {
	return len(b.buf)
}

// Len returns the current occupancy: (head-tail) mod capacity.
func (b *Buffer) Len() int {
	return int((b.head.Load() - b.tail.Load()) & b.mask)
}

// Push appends one byte, called only from the producer side (e.g. the
// serial read loop). It never blocks and does no overflow check,
// matching the original firmware's fire-and-forget interrupt handler,
// which has no means to apply backpressure: pushing onto a full buffer
// overwrites the oldest unread byte, and Len, computed modulo the
// capacity, then no longer reports the true occupancy.
func (b *Buffer) Push(c byte) {
	h := b.head.Load()
	b.buf[h&b.mask] = c
	b.head.Store(h + 1)
}

// PushSlice appends each byte of p in order.
func (b *Buffer) PushSlice(p []byte) {
	for _, c := range p {
		b.Push(c)
	}
}

// Peek returns the i-th unread byte (0 is the oldest) without consuming
// it. The caller must ensure i < Len().
func (b *Buffer) Peek(i int) byte {
	t := b.tail.Load()
	return b.buf[(t+uint32(i))&b.mask]
}

// Discard consumes n bytes without returning them, called only from
// the consumer side.
func (b *Buffer) Discard(n int) {
	b.tail.Store(b.tail.Load() + uint32(n))
}

// Pop consumes and returns the next n bytes in FIFO order. The caller
// must ensure n <= Len().
func (b *Buffer) Pop(n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = b.Peek(i)
	}
	b.Discard(n)
	return out
}
