package proc

import (
	"fmt"

	e "memkit/error"
	"memkit/pkg/layout"
	"memkit/pkg/strong"
)

// Read copies a T from base+off in m. Unlike pkg/mem, a fault or a short
// transfer is an error.
func Read[T any](m MemoryReader, base strong.VA, off strong.Offset) (T, error) {
	layout.Must[T]()

	var v T
	err := readFull(m, layout.Bytes(&v), uint64(base.Get())+off.Get())
	return v, err
}

// ReadSlice copies count consecutive values of T starting at base.
func ReadSlice[T any](m MemoryReader, base strong.VA, count int) ([]T, error) {
	layout.Must[T]()

	out := make([]T, max(count, 0))
	err := readFull(m, layout.SliceBytes(out), uint64(base.Get()))
	return out, err
}

func Write[T any](m MemoryReadWriter, base strong.VA, off strong.Offset, v T) error {
	layout.Must[T]()

	buf := layout.Bytes(&v)
	addr := uint64(base.Get()) + off.Get()
	n, err := m.WriteMemory(addr, buf)
	if err != nil {
		return err
	}
	if n < len(buf) {
		return fmt.Errorf("%d of %d bytes at %#x: %w", n, len(buf), addr, e.ShortWrite)
	}
	return nil
}

func readFull(m MemoryReader, buf []byte, addr uint64) error {
	if len(buf) == 0 {
		return nil
	}
	n, err := m.ReadMemory(buf, addr)
	if err != nil {
		return err
	}
	if n < len(buf) {
		return fmt.Errorf("%d of %d bytes at %#x: %w", n, len(buf), addr, e.ShortRead)
	}
	return nil
}
