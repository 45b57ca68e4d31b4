package mem

import (
	"unsafe"

	"memkit/pkg/strong"
)

// AddressLike is the closed set of inputs Normalize accepts. Go cannot name
// "any pointer type" in a constraint; convert typed pointers with Ptr.
type AddressLike interface {
	unsafe.Pointer | uintptr | int | uint | strong.VA
}

// Normalize collapses an address-like value to its canonical uintptr.
func Normalize[A AddressLike](a A) uintptr {
	switch v := any(a).(type) {
	case unsafe.Pointer:
		return uintptr(v)
	case uintptr:
		return v
	case int:
		return uintptr(v)
	case uint:
		return uintptr(v)
	case strong.VA:
		return v.Get()
	}
	panic("mem: unreachable address kind")
}

// IsAddressLike is the dynamic form of the AddressLike constraint.
func IsAddressLike(v any) bool {
	switch v.(type) {
	case unsafe.Pointer, uintptr, int, uint, strong.VA:
		return true
	}
	return false
}

// Ptr converts a typed pointer into an AddressLike value.
func Ptr[T any](p *T) unsafe.Pointer {
	return unsafe.Pointer(p)
}
