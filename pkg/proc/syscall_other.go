//go:build !linux

package proc

import "errors"

func readMemory(pid int, data []byte, ptr uintptr) (int, error) {
	return 0, errors.ErrUnsupported
}

func writeMemory(pid int, data []byte, ptr uintptr) (int, error) {
	return 0, errors.ErrUnsupported
}
