package strong_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memkit/pkg/strong"
)

func TestDiffMatchesUnderlying(t *testing.T) {
	cases := []struct{ a, b uint64 }{
		{0, 0}, {10, 3}, {3, 10}, {1 << 40, 1 << 20},
	}
	for _, c := range cases {
		a, b := strong.NewOffset(c.a), strong.NewOffset(c.b)
		assert.Equal(t, c.a-c.b, a.Diff(b))
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	va := strong.NewVA(0x401000)
	for _, d := range []uintptr{0, 1, 0x10, 0xfffff} {
		assert.Equal(t, va, va.Add(d).Sub(d))
	}

	rva := strong.NewRVA(0xffff_fff0)
	assert.Equal(t, uint32(0x10), rva.Add(0x20).Get(), "uint32 kinds wrap")
	assert.Equal(t, rva, rva.Add(0x20).Sub(0x20))
}

func TestConstructionConverts(t *testing.T) {
	assert.Equal(t, uint32(0x5678), strong.NewRVA(uint64(0x1234_0000_5678)).Get())
	assert.Equal(t, uint64(0xffff_ffff_ffff_fffc), strong.NewOffset(-4).Get())
	assert.Equal(t, uintptr(7), strong.NewVA(int8(7)).Underlying())

	type pageTag struct{}
	p := strong.From[uint16, pageTag](70000)
	assert.Equal(t, uint16(70000-65536), p.Get())
	assert.Equal(t, p, strong.Of[pageTag](uint16(4464)))
}

func TestOrdering(t *testing.T) {
	a, b := strong.NewVA(0x1000), strong.NewVA(0x2000)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(strong.NewVA(0x1000)))
	assert.True(t, a == strong.NewVA(0x1000))

	vs := []strong.Offset{strong.NewOffset(9), strong.NewOffset(1), strong.NewOffset(4)}
	slices.SortFunc(vs, strong.Compare)
	require.Equal(t, []strong.Offset{strong.NewOffset(1), strong.NewOffset(4), strong.NewOffset(9)}, vs)
}

func TestAlign(t *testing.T) {
	for _, x := range []uintptr{0, 1, 0xfff, 0x1000, 0x1001, 0x7654} {
		v := strong.NewVA(x)
		down, up := v.AlignDown(0x1000), v.AlignUp(0x1000)
		assert.False(t, v.Less(down))
		assert.False(t, up.Less(v))
		assert.Equal(t, down, down.AlignUp(0x1000))
		assert.Zero(t, down.Get()%0x1000)
		assert.Zero(t, up.Get()%0x1000)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "0x401000", strong.NewVA(0x401000).String())
	assert.Equal(t, "0x0", strong.Offset{}.String())
	assert.True(t, strong.Offset{}.IsZero())
}
