// Package mem reads and writes binary-readable values at raw addresses in the
// current address space.
//
// Nothing here checks that an address is mapped or aligned. A bad address is a
// fatal fault, not an error. This package and pkg/layout are the only places in
// memkit that turn integers into pointers.
package mem

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"memkit/pkg/layout"
	"memkit/pkg/strong"
)

func at(base uintptr, off strong.Offset) unsafe.Pointer {
	return unsafe.Pointer(base + uintptr(off.Get()))
}

// Read copies a T from base. Unaligned addresses are fine.
func Read[T any, A AddressLike](base A) T {
	return ReadAt[T](base, strong.Offset{})
}

// ReadAt copies a T from base+off.
func ReadAt[T any, A AddressLike](base A, off strong.Offset) T {
	layout.Must[T]()

	var v T
	copy(layout.Bytes(&v), unsafe.Slice((*byte)(at(Normalize(base), off)), unsafe.Sizeof(v)))
	return v
}

// Write copies the bytes of v to base.
func Write[T any, A AddressLike](base A, v T) {
	WriteAt(base, strong.Offset{}, v)
}

// WriteAt copies the bytes of v to base+off.
func WriteAt[T any, A AddressLike](base A, off strong.Offset, v T) {
	layout.Must[T]()

	copy(unsafe.Slice((*byte)(at(Normalize(base), off)), unsafe.Sizeof(v)), layout.Bytes(&v))
}

// Load dereferences base+off as a *T. The address must be aligned for T.
func Load[T any, A AddressLike](base A, off strong.Offset) T {
	layout.Must[T]()
	return *(*T)(at(Normalize(base), off))
}

// Store assigns through base+off as a *T. The address must be aligned for T.
func Store[T any, A AddressLike](base A, off strong.Offset, v T) {
	layout.Must[T]()
	*(*T)(at(Normalize(base), off)) = v
}

// View aliases n bytes at base+off.
func View[A AddressLike](base A, off strong.Offset, n int) []byte {
	if n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(at(Normalize(base), off)), n)
}

// AlignUp rounds v up to a multiple of a. a must be a power of two.
func AlignUp[T constraints.Unsigned](v, a T) T {
	return (v + a - 1) &^ (a - 1)
}

// AlignDown rounds v down to a multiple of a. a must be a power of two.
func AlignDown[T constraints.Unsigned](v, a T) T {
	return v &^ (a - 1)
}

// BitCast is layout.BitCast.
func BitCast[To, From any](v From) To {
	return layout.BitCast[To](v)
}
