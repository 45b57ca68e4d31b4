// Package layout decides which Go types may be copied as raw bytes and
// provides the byte views the copy primitives are built on.
//
// A type is binary readable when it has a non-zero size and, through every
// array element and struct field, holds only booleans and numbers. Pointers,
// unsafe.Pointer, strings, slices, maps, channels, funcs and interfaces are
// rejected: their bytes are references the garbage collector owns. uintptr is
// an integer and is accepted.
//
// Go has no compile-time constraint for this, so the check is a reflection
// walk done once per type at the API boundary. Violations panic with a
// *TypeError.
package layout

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// TypeError is the panic value for a type that fails Check.
type TypeError struct {
	Type   reflect.Type
	Reason string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("layout: %v is not binary readable: %s", e.Type, e.Reason)
}

var checked sync.Map // reflect.Type -> error

// Check reports why t cannot be copied byte for byte, or nil if it can.
func Check(t reflect.Type) error {
	if t == nil {
		return &TypeError{Reason: "nil type"}
	}
	if v, ok := checked.Load(t); ok {
		err, _ := v.(error)
		return err
	}

	var err error
	if t.Size() == 0 {
		err = &TypeError{Type: t, Reason: "zero size"}
	} else {
		err = walk(t, t)
	}
	checked.Store(t, err)
	return err
}

func walk(root, t reflect.Type) error {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return nil
	case reflect.Array:
		return walk(root, t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if err := walk(root, f.Type); err != nil {
				return &TypeError{Type: root, Reason: fmt.Sprintf("field %s: %s", f.Name, err.(*TypeError).Reason)}
			}
		}
		return nil
	case reflect.Pointer, reflect.UnsafePointer:
		if root == t {
			return &TypeError{Type: root, Reason: "is a pointer"}
		}
		return &TypeError{Type: root, Reason: "contains a pointer"}
	default:
		return &TypeError{Type: root, Reason: fmt.Sprintf("contains a %s", t.Kind())}
	}
}

// IsBinaryReadable reports whether T passes Check.
func IsBinaryReadable[T any]() bool {
	return Check(reflect.TypeFor[T]()) == nil
}

// Must panics unless T is binary readable.
func Must[T any]() {
	if err := Check(reflect.TypeFor[T]()); err != nil {
		panic(err)
	}
}

// Size is unsafe.Sizeof for a T.
func Size[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}

// Bytes aliases the memory of *p. Writes through the slice change *p.
func Bytes[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// SliceBytes aliases the backing array of s.
func SliceBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), uintptr(len(s))*Size[T]())
}

// BitCast reinterprets the bytes of v as a To. Both types must be binary
// readable and of equal size.
func BitCast[To, From any](v From) To {
	Must[From]()
	Must[To]()

	var out To
	if unsafe.Sizeof(out) != unsafe.Sizeof(v) {
		panic(&TypeError{
			Type:   reflect.TypeFor[To](),
			Reason: fmt.Sprintf("size %d differs from %v size %d", unsafe.Sizeof(out), reflect.TypeFor[From](), unsafe.Sizeof(v)),
		})
	}
	copy(Bytes(&out), Bytes(&v))
	return out
}
