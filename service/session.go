package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	e "memkit/error"
	"memkit/pkg/config"
	"memkit/pkg/logflags"
	"memkit/pkg/proc"
	"memkit/pkg/scalar"
	"memkit/pkg/seq"
	"memkit/pkg/stream"
	"memkit/pkg/strong"
	"memkit/utils"
)

// Element is one decoded value read from the target.
type Element struct {
	Addr strong.VA
	Text string
}

func (el Element) String() string {
	return fmt.Sprintf("%s: %s", el.Addr, el.Text)
}

// Session executes commands against one target. The "vm" source goes
// through the session's MemoryReadWriter; the "file" source opens
// /proc/<pid>/mem for each command and drives it with pkg/stream.
type Session struct {
	pid    int
	mem    proc.MemoryReadWriter
	source string
	log    logflags.Logger
}

func NewSession(pid int, m proc.MemoryReadWriter, source string) *Session {
	if source == "" {
		source = config.SourceVM
	}
	return &Session{
		pid:    pid,
		mem:    m,
		source: source,
		log:    logflags.MemoryLogger(),
	}
}

// Open attaches to pid.
func Open(pid int, source string) (*Session, error) {
	p, err := proc.Attach(pid)
	if err != nil {
		return nil, err
	}
	return NewSession(pid, p, source), nil
}

func (s *Session) Pid() int { return s.pid }

func (s *Session) Exec(cmd CmdType, args []string) (string, error) {
	switch cmd {
	case Read:
		return s.execRead(args)
	case Write:
		return s.execWrite(args)
	case Maps:
		return s.execMaps(args)
	}
	return "", fmt.Errorf("unknown command %d", cmd)
}

func (s *Session) execRead(args []string) (string, error) {
	if len(args) < 2 || len(args) > 3 {
		return "", fmt.Errorf("usage: read <addr> <kind> [count]")
	}
	addr, kind, err := parseTarget(args[0], args[1])
	if err != nil {
		return "", err
	}
	count := 1
	if len(args) == 3 {
		count, err = strconv.Atoi(args[2])
		if err != nil || count <= 0 {
			return "", fmt.Errorf("count %q: %w", args[2], e.InvalidValue)
		}
	}

	els, err := s.Read(addr, kind, count)
	if err != nil {
		return "", err
	}
	return joinLines(els), nil
}

func (s *Session) execWrite(args []string) (string, error) {
	if len(args) != 3 {
		return "", fmt.Errorf("usage: write <addr> <kind> <value>")
	}
	addr, kind, err := parseTarget(args[0], args[1])
	if err != nil {
		return "", err
	}
	if err := s.Write(addr, kind, args[2]); err != nil {
		return "", err
	}

	els, err := s.Read(addr, kind, 1)
	if err != nil {
		return "", err
	}
	return joinLines(els), nil
}

func (s *Session) execMaps(args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("usage: maps [perms]")
	}
	rs, err := s.Maps()
	if err != nil {
		return "", err
	}
	if len(args) == 1 {
		rs = rs.Filter(args[0])
	}
	return joinLines(rs), nil
}

func parseTarget(addrStr, kindStr string) (strong.VA, scalar.Kind, error) {
	addr, err := utils.ParseAddr(addrStr)
	if err != nil {
		return strong.VA{}, 0, err
	}
	kind, err := scalar.Parse(kindStr)
	if err != nil {
		return strong.VA{}, 0, err
	}
	return addr, kind, nil
}

func joinLines[T fmt.Stringer](items []T) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = it.String()
	}
	return strings.Join(lines, "\n")
}

// Read decodes count consecutive values of kind starting at addr. The values
// must lie inside the single mapped region containing addr.
func (s *Session) Read(addr strong.VA, kind scalar.Kind, count int) ([]Element, error) {
	n, err := s.span(addr, kind, count)
	if err != nil {
		return nil, err
	}

	size := uint64(kind.Size())
	raw, err := s.readBytes(addr, n)
	if err != nil {
		return nil, err
	}

	els := make([]Element, 0, uint64(len(raw))/size)
	for off := range seq.StrongSpanStep(strong.Offset{}, strong.NewOffset(len(raw)), size).All() {
		text, err := kind.Format(raw[off.Get() : off.Get()+size])
		if err != nil {
			return nil, err
		}
		els = append(els, Element{Addr: addr.Add(uintptr(off.Get())), Text: text})
	}
	return els, nil
}

// span returns the byte length of count values of kind at addr.
func (s *Session) span(addr strong.VA, kind scalar.Kind, count int) (int, error) {
	size := kind.Size()
	if count <= 0 || count > math.MaxInt/size {
		return 0, fmt.Errorf("count %d: %w", count, e.InvalidValue)
	}
	n := size * count

	rs, err := s.Maps()
	if err != nil {
		return 0, err
	}
	region, err := rs.Find(addr)
	if err != nil {
		return 0, err
	}
	if avail := region.End.Diff(addr); uint64(n) > uint64(avail) {
		return 0, fmt.Errorf("%d bytes at %s exceed region %s-%s: %w", n, addr, region.Start, region.End, e.InvalidValue)
	}
	return n, nil
}

// Write encodes text as kind and stores it at addr.
func (s *Session) Write(addr strong.VA, kind scalar.Kind, text string) error {
	data, err := kind.Encode(text)
	if err != nil {
		return err
	}
	return s.writeBytes(addr, data)
}

func (s *Session) Maps() (proc.Regions, error) {
	return proc.Maps(s.pid)
}

func (s *Session) readBytes(addr strong.VA, n int) ([]byte, error) {
	s.log.Debugf("pid %d: read %d bytes at %s via %s", s.pid, n, addr, s.source)

	if s.source != config.SourceFile {
		return proc.ReadSlice[byte](s.mem, addr, n)
	}

	f, err := proc.OpenMem(s.pid, false)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st := stream.New(f)
	raw := stream.ReadMany[byte](st, strong.NewOffset(addr.Get()), n, stream.Begin)
	if !st.LastReadOK() {
		return nil, fmt.Errorf("read %d bytes at %s: %w", n, addr, st.Err())
	}
	return raw, nil
}

func (s *Session) writeBytes(addr strong.VA, data []byte) error {
	s.log.Debugf("pid %d: write %d bytes at %s via %s", s.pid, len(data), addr, s.source)

	if s.source != config.SourceFile {
		n, err := s.mem.WriteMemory(uint64(addr.Get()), data)
		if err != nil {
			return err
		}
		if n < len(data) {
			return fmt.Errorf("%d of %d bytes at %s: %w", n, len(data), addr, e.ShortWrite)
		}
		return nil
	}

	f, err := proc.OpenMem(s.pid, true)
	if err != nil {
		return err
	}
	defer f.Close()

	st := stream.New(f)
	st.Seek(strong.NewOffset(addr.Get()), stream.Begin)
	stream.WriteFrom(st, data)
	if !st.LastReadOK() {
		return fmt.Errorf("write %d bytes at %s: %w", len(data), addr, st.Err())
	}
	return nil
}
