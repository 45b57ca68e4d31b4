// Package strong provides distinct integer kinds sharing one representation.
//
// A Value pairs an integer with a zero-size tag type. Two kinds built on the
// same integer are still different Go types, so the compiler rejects code that
// compares a file offset with a virtual address or subtracts one from the
// other. Conversions between kinds always go through Get.
package strong

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

type (
	offsetTag struct{}
	rvaTag    struct{}
	vaTag     struct{}
)

// Offset is a byte offset into an image, a stream or a memory block.
type Offset = Value[uint64, offsetTag]

// RVA is an address relative to the load base of an image.
type RVA = Value[uint32, rvaTag]

// VA is an absolute virtual address.
type VA = Value[uintptr, vaTag]

// Value is an integer of type T tagged with the kind Tag.
// The zero Value holds zero.
type Value[T constraints.Integer, Tag any] struct {
	v T
}

// Of wraps v as a Tag kind.
func Of[Tag any, T constraints.Integer](v T) Value[T, Tag] {
	return Value[T, Tag]{v: v}
}

// From converts u to T with Go's conversion rules (truncation or sign
// extension) and wraps the result.
func From[T constraints.Integer, Tag any, U constraints.Integer](u U) Value[T, Tag] {
	return Value[T, Tag]{v: T(u)}
}

// NewOffset, NewRVA and NewVA convert any integer to the named kind.
func NewOffset[U constraints.Integer](u U) Offset { return From[uint64, offsetTag](u) }
func NewRVA[U constraints.Integer](u U) RVA       { return From[uint32, rvaTag](u) }
func NewVA[U constraints.Integer](u U) VA         { return From[uintptr, vaTag](u) }

// Get returns the underlying integer.
func (s Value[T, Tag]) Get() T { return s.v }

// Underlying is Get under a name that reads as a conversion at call sites.
func (s Value[T, Tag]) Underlying() T { return s.v }

// Add returns s moved forward by d.
func (s Value[T, Tag]) Add(d T) Value[T, Tag] { return Value[T, Tag]{v: s.v + d} }

// Sub returns s moved backward by d.
func (s Value[T, Tag]) Sub(d T) Value[T, Tag] { return Value[T, Tag]{v: s.v - d} }

// Diff returns s - o.
func (s Value[T, Tag]) Diff(o Value[T, Tag]) T { return s.v - o.v }

// Compare returns -1, 0 or +1 as s is less than, equal to or greater than o.
func (s Value[T, Tag]) Compare(o Value[T, Tag]) int { return cmp.Compare(s.v, o.v) }

// Less reports s < o.
func (s Value[T, Tag]) Less(o Value[T, Tag]) bool { return s.v < o.v }

// IsZero reports whether s holds zero.
func (s Value[T, Tag]) IsZero() bool { return s.v == 0 }

// AlignUp rounds s up to a multiple of a, which must be a power of two.
func (s Value[T, Tag]) AlignUp(a T) Value[T, Tag] {
	return Value[T, Tag]{v: (s.v + a - 1) &^ (a - 1)}
}

// AlignDown rounds s down to a multiple of a, which must be a power of two.
func (s Value[T, Tag]) AlignDown(a T) Value[T, Tag] {
	return Value[T, Tag]{v: s.v &^ (a - 1)}
}

// String formats s as hex with a 0x prefix.
func (s Value[T, Tag]) String() string {
	return fmt.Sprintf("%#x", s.v)
}

// Compare orders two values of the same kind, for use with slices.SortFunc.
func Compare[T constraints.Integer, Tag any](a, b Value[T, Tag]) int {
	return cmp.Compare(a.v, b.v)
}
