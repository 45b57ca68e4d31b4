package proc_test

import (
	"errors"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	e "memkit/error"
	"memkit/pkg/proc"
	"memkit/pkg/strong"
)

type sample struct {
	Tag   uint32
	Count uint16
	Ratio float32
}

var target = &struct {
	S    sample
	Vals [4]uint64
}{
	S:    sample{Tag: 0xfeedface, Count: 3, Ratio: 0.5},
	Vals: [4]uint64{10, 20, 30, 40},
}

func targetVA() strong.VA { return strong.NewVA(uintptr(unsafe.Pointer(target))) }

const mapsText = `00400000-00452000 r-xp 00000000 08:02 173521      /usr/bin/dbus-daemon
00651000-00652000 r--p 00051000 08:02 173521      /usr/bin/dbus-daemon
00e03000-00e24000 rw-p 00000000 00:00 0           [heap]
7f2c0000-7f2c1000 rw-p 00000000 00:00 0
7fff7f2d0000-7fff7f2f1000 rw-p 00000000 00:00 0   [stack]
7fff7f3fe000-7fff7f400000 r--p 00000000 00:00 0   /opt/my app/lib.so
`

func TestParseMaps(t *testing.T) {
	rs, err := proc.ParseMaps(strings.NewReader(mapsText))
	require.NoError(t, err)
	require.Len(t, rs, 6)

	text := rs[0]
	assert.Equal(t, strong.NewVA(0x400000), text.Start)
	assert.Equal(t, strong.NewVA(0x452000), text.End)
	assert.Equal(t, "r-xp", text.Perms)
	assert.Equal(t, "08:02", text.Device)
	assert.Equal(t, uint64(173521), text.Inode)
	assert.Equal(t, "/usr/bin/dbus-daemon", text.Path)
	assert.Equal(t, uintptr(0x52000), text.Size())
	assert.True(t, text.Readable())
	assert.False(t, text.Writable())
	assert.False(t, text.Anonymous())

	assert.Equal(t, strong.NewOffset(0x51000), rs[1].Offset)
	assert.True(t, rs[2].Anonymous())
	assert.True(t, rs[3].Anonymous())
	assert.Empty(t, rs[3].Path)
	assert.Equal(t, "/opt/my app/lib.so", rs[5].Path)

	heap, err := rs.Find(strong.NewVA(0xe03000))
	require.NoError(t, err)
	assert.Equal(t, "[heap]", heap.Path)

	_, err = rs.Find(strong.NewVA(0xe24000))
	assert.ErrorIs(t, err, e.RegionNotFound)

	assert.Len(t, rs.Filter("rw"), 3)
	assert.Len(t, rs.Filter("r"), 6)
	assert.Equal(t, "0x400000-0x452000 r-xp 0x0 08:02 173521 /usr/bin/dbus-daemon", text.String())
}

func TestParseMapsMalformed(t *testing.T) {
	_, err := proc.ParseMaps(strings.NewReader("00400000 r-xp 0 08:02 1\n"))
	assert.Error(t, err)
	_, err = proc.ParseMaps(strings.NewReader("zz-00452000 r-xp 0 08:02 1\n"))
	assert.Error(t, err)
	_, err = proc.ParseMaps(strings.NewReader("00400000-00452000 r-xp\n"))
	assert.Error(t, err)
	_, err = proc.ParseMaps(strings.NewReader("00400000-00452000 r-xp 0000zz00 08:02 1\n"))
	assert.ErrorContains(t, err, "maps line 1: offset")
	_, err = proc.ParseMaps(strings.NewReader("00400000-00452000 r-xp 0 08:02 1\n00452000-00453000 rw-p 0 08:02 x1\n"))
	assert.ErrorContains(t, err, "maps line 2: inode")

	rs, err := proc.ParseMaps(strings.NewReader("\n\n"))
	assert.NoError(t, err)
	assert.Empty(t, rs)
}

func TestLocalTypedReadWrite(t *testing.T) {
	var m proc.Local
	base := targetVA()

	s, err := proc.Read[sample](m, base, strong.Offset{})
	require.NoError(t, err)
	assert.Equal(t, target.S, s)

	vals, err := proc.ReadSlice[uint64](m, base.Add(unsafe.Offsetof(target.Vals)), 4)
	require.NoError(t, err)
	assert.Equal(t, []uint64{10, 20, 30, 40}, vals)

	off := strong.NewOffset(unsafe.Offsetof(target.Vals) + 8)
	require.NoError(t, proc.Write(m, base, off, uint64(21)))
	assert.Equal(t, uint64(21), target.Vals[1])
	require.NoError(t, proc.Write(m, base, off, uint64(20)))

	empty, err := proc.ReadSlice[uint64](m, base, 0)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

type shortReader struct{ n int }

func (r shortReader) ReadMemory(buf []byte, addr uint64) (int, error) {
	return min(r.n, len(buf)), nil
}

func (r shortReader) WriteMemory(addr uint64, data []byte) (int, error) {
	return min(r.n, len(data)), nil
}

type failingReader struct{}

var errFault = errors.New("fault")

func (failingReader) ReadMemory([]byte, uint64) (int, error) { return 0, errFault }

func TestShortTransfers(t *testing.T) {
	_, err := proc.Read[uint64](shortReader{n: 3}, strong.NewVA(0x1000), strong.Offset{})
	assert.ErrorIs(t, err, e.ShortRead)

	err = proc.Write(shortReader{n: 3}, strong.NewVA(0x1000), strong.Offset{}, uint64(1))
	assert.ErrorIs(t, err, e.ShortWrite)

	_, err = proc.Read[uint64](failingReader{}, strong.NewVA(0x1000), strong.Offset{})
	assert.ErrorIs(t, err, errFault)
}

func TestTypedRejectsPointers(t *testing.T) {
	assert.Panics(t, func() { proc.Read[*sample](proc.Local{}, targetVA(), strong.Offset{}) })
}
