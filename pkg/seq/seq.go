// Package seq implements finite, lazy, restartable integer ranges with an
// explicit direction and an inclusive or exclusive end.
//
// A Range is an immutable descriptor. Each traversal starts a fresh Cursor, so
// a Range can be iterated any number of times. The cursor advances by the step
// without clamping and stops as soon as the end predicate holds:
//
//	HalfOpen, Forward:  cur >= to
//	HalfOpen, Backward: cur <= to
//	Closed,   Forward:  cur > to
//	Closed,   Backward: cur < to
//
// An advance that would wrap past the bounds of T ends the traversal, since
// the cursor has then passed to in exact arithmetic.
package seq

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

type Direction uint8

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Mode says whether to itself is part of the range.
type Mode uint8

const (
	HalfOpen Mode = iota
	Closed
)

func (m Mode) String() string {
	switch m {
	case HalfOpen:
		return "half-open"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Range describes the integers from from toward to in steps of step.
type Range[T constraints.Integer] struct {
	from, to, step T
	dir            Direction
	mode           Mode
}

// Make builds a range with a caller-declared direction. A zero step becomes
// one and a negative step is replaced by its magnitude.
func Make[T constraints.Integer](from, to, step T, dir Direction, mode Mode) Range[T] {
	return Range[T]{from: from, to: to, step: normalize(step), dir: dir, mode: mode}
}

func normalize[T constraints.Integer](step T) T {
	if step == 0 {
		return 1
	}
	if step < 0 {
		step = -step
		if step < 0 { // minimum signed value
			step = ^step
		}
	}
	return step
}

func direction[T constraints.Integer](from, to T) Direction {
	if from <= to {
		return Forward
	}
	return Backward
}

// To is [0, to) stepping by one.
func To[T constraints.Integer](to T) Range[T] {
	return Make(0, to, 1, Forward, HalfOpen)
}

// Span is [from, to) stepping by one, backward when from > to.
func Span[T constraints.Integer](from, to T) Range[T] {
	return SpanStep(from, to, 1)
}

// SpanStep is Span with a step.
func SpanStep[T constraints.Integer](from, to, step T) Range[T] {
	return Make(from, to, step, direction(from, to), HalfOpen)
}

// Inclusive is [from, to] stepping by one, backward when from > to.
func Inclusive[T constraints.Integer](from, to T) Range[T] {
	return InclusiveStep(from, to, 1)
}

func InclusiveStep[T constraints.Integer](from, to, step T) Range[T] {
	return Make(from, to, step, direction(from, to), Closed)
}

func (r Range[T]) From() T              { return r.from }
func (r Range[T]) To() T                { return r.to }
func (r Range[T]) Step() T              { return r.step }
func (r Range[T]) Direction() Direction { return r.dir }
func (r Range[T]) Mode() Mode           { return r.mode }

// Begin starts a new traversal.
func (r Range[T]) Begin() *Cursor[T] {
	return &Cursor[T]{cur: r.from, end: r.to, step: r.step, dir: r.dir, mode: r.mode}
}

// All yields the values of r in order.
func (r Range[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := r.Begin()
		for v, ok := c.Next(); ok; v, ok = c.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Len counts the values of r by walking a cursor.
func (r Range[T]) Len() int {
	n := 0
	c := r.Begin()
	for _, ok := c.Next(); ok; _, ok = c.Next() {
		n++
	}
	return n
}

func (r Range[T]) String() string {
	open, closing := "[", ")"
	if r.mode == Closed {
		closing = "]"
	}
	return fmt.Sprintf("%s%d, %d%s step %d %s", open, r.from, r.to, closing, r.step, r.dir)
}

// Cursor is the mutable state of one traversal.
type Cursor[T constraints.Integer] struct {
	cur, end, step T
	dir            Direction
	mode           Mode
	done           bool
}

// Next returns the next value, or false once the range is exhausted.
func (c *Cursor[T]) Next() (T, bool) {
	if c.done || c.stop() {
		c.done = true
		var zero T
		return zero, false
	}
	v := c.cur
	c.advance()
	return v, true
}

func (c *Cursor[T]) stop() bool {
	if c.mode == Closed {
		if c.dir == Forward {
			return c.cur > c.end
		}
		return c.cur < c.end
	}
	if c.dir == Forward {
		return c.cur >= c.end
	}
	return c.cur <= c.end
}

func (c *Cursor[T]) advance() {
	if c.dir == Forward {
		next := c.cur + c.step
		if next < c.cur {
			c.done = true
			return
		}
		c.cur = next
		return
	}
	next := c.cur - c.step
	if next > c.cur {
		c.done = true
		return
	}
	c.cur = next
}
