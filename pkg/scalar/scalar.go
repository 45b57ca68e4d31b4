// Package scalar names the value kinds the command line understands and
// converts between their text and native-endian byte forms.
package scalar

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	e "memkit/error"
	"memkit/pkg/layout"
	"memkit/pkg/strong"
)

type Kind int

const (
	U8 Kind = iota
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
	VA
	RVA
)

var names = [...]string{
	U8: "u8", U16: "u16", U32: "u32", U64: "u64",
	I8: "i8", I16: "i16", I32: "i32", I64: "i64",
	F32: "f32", F64: "f64",
	VA: "va", RVA: "rva",
}

func Parse(name string) (Kind, error) {
	if i := slices.Index(names[:], name); i >= 0 {
		return Kind(i), nil
	}
	return 0, fmt.Errorf("%q: %w", name, e.UnknownKind)
}

// Names lists every kind name in declaration order.
func Names() []string {
	return slices.Clone(names[:])
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) Size() int {
	switch k {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, I32, F32, RVA:
		return 4
	case U64, I64, F64:
		return 8
	case VA:
		return int(layout.Size[strong.VA]())
	}
	return 0
}

func decode[T any](b []byte) T {
	var v T
	copy(layout.Bytes(&v), b)
	return v
}

func encode[T any](v T) []byte {
	return slices.Clone(layout.Bytes(&v))
}

// Format renders exactly k.Size() bytes.
func (k Kind) Format(b []byte) (string, error) {
	if len(b) != k.Size() || k.Size() == 0 {
		return "", fmt.Errorf("%s needs %d bytes, got %d: %w", k, k.Size(), len(b), e.InvalidValue)
	}

	switch k {
	case U8:
		v := decode[uint8](b)
		return fmt.Sprintf("%d (%#x)", v, v), nil
	case U16:
		v := decode[uint16](b)
		return fmt.Sprintf("%d (%#x)", v, v), nil
	case U32:
		v := decode[uint32](b)
		return fmt.Sprintf("%d (%#x)", v, v), nil
	case U64:
		v := decode[uint64](b)
		return fmt.Sprintf("%d (%#x)", v, v), nil
	case I8:
		return strconv.FormatInt(int64(decode[int8](b)), 10), nil
	case I16:
		return strconv.FormatInt(int64(decode[int16](b)), 10), nil
	case I32:
		return strconv.FormatInt(int64(decode[int32](b)), 10), nil
	case I64:
		return strconv.FormatInt(decode[int64](b), 10), nil
	case F32:
		return strconv.FormatFloat(float64(decode[float32](b)), 'g', -1, 32), nil
	case F64:
		return strconv.FormatFloat(decode[float64](b), 'g', -1, 64), nil
	case VA:
		return decode[strong.VA](b).String(), nil
	default:
		return decode[strong.RVA](b).String(), nil
	}
}

// Encode parses text as a k and returns its native bytes. Integers accept
// the 0x, 0o and 0b prefixes.
func (k Kind) Encode(text string) ([]byte, error) {
	b, err := k.encode(text)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w (%v)", k, text, e.InvalidValue, err)
	}
	return b, nil
}

func (k Kind) encode(text string) ([]byte, error) {
	switch k {
	case U8, U16, U32, U64, VA, RVA:
		bits := k.Size() * 8
		u, err := strconv.ParseUint(text, 0, bits)
		if err != nil {
			return nil, err
		}
		switch k {
		case U8:
			return encode(uint8(u)), nil
		case U16:
			return encode(uint16(u)), nil
		case U32:
			return encode(uint32(u)), nil
		case U64:
			return encode(u), nil
		case VA:
			return encode(strong.NewVA(u)), nil
		default:
			return encode(strong.NewRVA(u)), nil
		}
	case I8, I16, I32, I64:
		i, err := strconv.ParseInt(text, 0, k.Size()*8)
		if err != nil {
			return nil, err
		}
		switch k {
		case I8:
			return encode(int8(i)), nil
		case I16:
			return encode(int16(i)), nil
		case I32:
			return encode(int32(i)), nil
		default:
			return encode(i), nil
		}
	case F32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, err
		}
		return encode(math.Float32bits(float32(f))), nil
	case F64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, err
		}
		return encode(f), nil
	}
	return nil, e.UnknownKind
}
