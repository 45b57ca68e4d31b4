package proc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	e "memkit/error"
	"memkit/pkg/strong"
)

// Region is one line of /proc/<pid>/maps.
type Region struct {
	Start  strong.VA
	End    strong.VA
	Perms  string
	Offset strong.Offset
	Device string
	Inode  uint64
	Path   string
}

func (r Region) Size() uintptr { return r.End.Diff(r.Start) }

func (r Region) Contains(va strong.VA) bool {
	return !va.Less(r.Start) && va.Less(r.End)
}

func (r Region) Readable() bool { return strings.HasPrefix(r.Perms, "r") }
func (r Region) Writable() bool { return len(r.Perms) > 1 && r.Perms[1] == 'w' }

// Anonymous reports a private mapping not backed by a file.
func (r Region) Anonymous() bool {
	return r.Offset.IsZero() && r.Inode == 0 && !strings.HasPrefix(r.Path, "/")
}

func (r Region) String() string {
	return fmt.Sprintf("%s-%s %s %s %s %d %s", r.Start, r.End, r.Perms, r.Offset, r.Device, r.Inode, r.Path)
}

type Regions []Region

// Find returns the region containing va.
func (rs Regions) Find(va strong.VA) (Region, error) {
	for _, r := range rs {
		if r.Contains(va) {
			return r, nil
		}
	}
	return Region{}, fmt.Errorf("%s: %w", va, e.RegionNotFound)
}

// Filter keeps regions whose permissions start with perms, e.g. "rw".
func (rs Regions) Filter(perms string) Regions {
	var out Regions
	for _, r := range rs {
		if strings.HasPrefix(r.Perms, perms) {
			out = append(out, r)
		}
	}
	return out
}

// Maps parses /proc/<pid>/maps.
func Maps(pid int) (Regions, error) {
	f, err := os.Open(fmt.Sprintf("/proc/%d/maps", pid))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseMaps(f)
}

func ParseMaps(r io.Reader) (Regions, error) {
	var regions Regions

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 5 {
			return nil, fmt.Errorf("maps line %d: expected at least 5 fields, got %d", line, len(fields))
		}

		lo, hi, ok := strings.Cut(fields[0], "-")
		if !ok {
			return nil, fmt.Errorf("maps line %d: bad address range %q", line, fields[0])
		}
		start, err := strconv.ParseUint(lo, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("maps line %d: %w", line, err)
		}
		end, err := strconv.ParseUint(hi, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("maps line %d: %w", line, err)
		}

		offset, err := strconv.ParseUint(fields[2], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("maps line %d: offset: %w", line, err)
		}
		inode, err := strconv.ParseUint(fields[4], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("maps line %d: inode: %w", line, err)
		}

		region := Region{
			Start:  strong.NewVA(start),
			End:    strong.NewVA(end),
			Perms:  fields[1],
			Offset: strong.NewOffset(offset),
			Device: fields[3],
			Inode:  inode,
		}
		if len(fields) > 5 {
			region.Path = strings.Join(fields[5:], " ")
		}
		regions = append(regions, region)
	}

	return regions, sc.Err()
}
