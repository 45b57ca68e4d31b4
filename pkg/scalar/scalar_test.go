package scalar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	e "memkit/error"
	"memkit/pkg/scalar"
)

func TestParse(t *testing.T) {
	for _, name := range scalar.Names() {
		k, err := scalar.Parse(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
		assert.Positive(t, k.Size())
	}

	_, err := scalar.Parse("u128")
	assert.ErrorIs(t, err, e.UnknownKind)
	assert.Equal(t, "Kind(99)", scalar.Kind(99).String())
}

func TestEncodeFormat(t *testing.T) {
	cases := []struct {
		kind scalar.Kind
		in   string
		out  string
	}{
		{scalar.U8, "255", "255 (0xff)"},
		{scalar.U16, "0x1234", "4660 (0x1234)"},
		{scalar.U32, "7", "7 (0x7)"},
		{scalar.U64, "0b101", "5 (0x5)"},
		{scalar.I8, "-128", "-128"},
		{scalar.I16, "-2", "-2"},
		{scalar.I32, "123456", "123456"},
		{scalar.I64, "-0x10", "-16"},
		{scalar.F32, "1.5", "1.5"},
		{scalar.F64, "-0.25", "-0.25"},
		{scalar.VA, "0x7ffd0000", "0x7ffd0000"},
		{scalar.RVA, "4096", "0x1000"},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			b, err := c.kind.Encode(c.in)
			require.NoError(t, err)
			require.Len(t, b, c.kind.Size())

			got, err := c.kind.Format(b)
			require.NoError(t, err)
			assert.Equal(t, c.out, got)
		})
	}
}

func TestEncodeRejects(t *testing.T) {
	for _, c := range []struct {
		kind scalar.Kind
		in   string
	}{
		{scalar.U8, "256"},
		{scalar.U16, "-1"},
		{scalar.I8, "128"},
		{scalar.F64, "pi"},
		{scalar.VA, ""},
		{scalar.Kind(99), "1"},
	} {
		_, err := c.kind.Encode(c.in)
		assert.ErrorIs(t, err, e.InvalidValue, "%s %q", c.kind, c.in)
	}
}

func TestFormatWrongLength(t *testing.T) {
	_, err := scalar.U32.Format([]byte{1, 2})
	assert.ErrorIs(t, err, e.InvalidValue)
	_, err = scalar.Kind(99).Format(nil)
	assert.ErrorIs(t, err, e.InvalidValue)
}
