package proc

import (
	"memkit/pkg/mem"
	"memkit/pkg/strong"
)

// Local is the current address space. Addresses are not validated; reading
// an unmapped one faults.
type Local struct{}

func (Local) ReadMemory(buf []byte, addr uint64) (int, error) {
	return copy(buf, mem.View(uintptr(addr), strong.Offset{}, len(buf))), nil
}

func (Local) WriteMemory(addr uint64, data []byte) (int, error) {
	return copy(mem.View(uintptr(addr), strong.Offset{}, len(data)), data), nil
}
