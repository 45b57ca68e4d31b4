package proc

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	e "memkit/error"
	"memkit/pkg/logflags"
	"memkit/utils"
)

// Process reads and writes another process's memory with process_vm_readv
// and process_vm_writev. The caller needs ptrace access to the target.
type Process struct {
	pid int
	log logflags.Logger
	mu  sync.Mutex
}

func Attach(pid int) (*Process, error) {
	if !utils.CheckPid(strconv.Itoa(pid)) {
		return nil, fmt.Errorf("pid %d: %w", pid, e.ProcessNotFound)
	}

	return &Process{
		pid: pid,
		log: logflags.MemoryLogger(),
	}, nil
}

func (p *Process) Pid() int { return p.pid }

func (p *Process) ReadMemory(buf []byte, addr uint64) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	n, err := readMemory(p.pid, buf, uintptr(addr))
	if err != nil {
		p.log.Errorf("pid %d: read %d bytes at %#x: %v", p.pid, len(buf), addr, err)
		return n, fmt.Errorf("read %d bytes at %#x: %w", len(buf), addr, err)
	}
	p.log.Debugf("pid %d: read %d/%d bytes at %#x", p.pid, n, len(buf), addr)

	return n, nil
}

// WriteMemory is serialized per Process; concurrent writers to the same target
// still race with the target itself.
func (p *Process) WriteMemory(addr uint64, data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	n, err := writeMemory(p.pid, data, uintptr(addr))
	if err != nil {
		p.log.Errorf("pid %d: write %d bytes at %#x: %v", p.pid, len(data), addr, err)
		return n, fmt.Errorf("write %d bytes at %#x: %w", len(data), addr, err)
	}
	p.log.Debugf("pid %d: wrote %d/%d bytes at %#x", p.pid, n, len(data), addr)

	return n, nil
}

func (p *Process) Maps() (Regions, error) {
	return Maps(p.pid)
}

// OpenMem opens /proc/<pid>/mem. File offsets are virtual addresses, so the
// file can be driven with pkg/stream. The caller closes it.
func OpenMem(pid int, writable bool) (*os.File, error) {
	flag := os.O_RDONLY
	if writable {
		flag = os.O_RDWR
	}

	f, err := os.OpenFile(fmt.Sprintf("/proc/%d/mem", pid), flag, 0)
	if err != nil {
		return nil, fmt.Errorf("open memory of pid %d: %w", pid, err)
	}
	return f, nil
}
