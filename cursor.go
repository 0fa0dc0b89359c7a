// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// Seq is an indexed sequence of elements.
// Len and At are observable reads: traversal code performs exactly the
// reads its contract states, which makes emptiness checks and element
// visits countable by instrumented implementations.
type Seq[T any] interface {
	Len() int
	At(i int) T
}

// SliceSeq adapts a slice as a Seq.
type SliceSeq[T any] []T

// Len returns the number of elements.
func (s SliceSeq[T]) Len() int { return len(s) }

// At returns the element at index i.
func (s SliceSeq[T]) At(i int) T { return s[i] }

// Cursor is a monotonically advancing position over a Seq.
// Once exhausted it stays exhausted; the position never decreases.
type Cursor[T any] struct {
	seq Seq[T]
	pos int
}

// NewCursor returns a cursor at the start of s.
func NewCursor[T any](s Seq[T]) Cursor[T] {
	return Cursor[T]{seq: s}
}

// More reports whether elements remain. Each call performs one Len read.
func (c *Cursor[T]) More() bool {
	return c.pos < c.seq.Len()
}

// Next returns the current element and advances the cursor.
// Advancing an exhausted cursor is a usage error and panics.
func (c *Cursor[T]) Next() T {
	if c.pos >= c.seq.Len() {
		panic("coop: cursor advanced past end")
	}
	v := c.seq.At(c.pos)
	c.pos++
	return v
}
