package stream

import (
	"iter"
	"reflect"

	"memkit/pkg/layout"
	"memkit/pkg/seq"
	"memkit/pkg/strong"
)

// Read seeks to off relative to origin and reads one T.
func Read[T any](s *Stream, off strong.Offset, origin Origin) T {
	layout.Must[T]()

	var v T
	s.Seek(off, origin)
	s.readFull(layout.Bytes(&v))
	return v
}

// ReadInto fills out from the current position without seeking.
func ReadInto[T any](s *Stream, out []T) {
	layout.Must[T]()
	s.readFull(layout.SliceBytes(out))
}

// ReadMany seeks and reads count values. A negative count reads nothing.
func ReadMany[T any](s *Stream, off strong.Offset, count int, origin Origin) []T {
	layout.Must[T]()

	out := make([]T, max(count, 0))
	s.Seek(off, origin)
	ReadInto(s, out)
	return out
}

// ReadFixed reads an array type such as [16]byte. A must be an array of
// positive length.
func ReadFixed[A any](s *Stream, off strong.Offset, origin Origin) A {
	if t := reflect.TypeFor[A](); t.Kind() != reflect.Array || t.Len() == 0 {
		panic(&layout.TypeError{Type: t, Reason: "not an array of positive length"})
	}
	return Read[A](s, off, origin)
}

// SkipN advances the cursor past n values of T.
func SkipN[T any](s *Stream, n int) {
	s.Skip(strong.NewOffset(uint64(n) * uint64(layout.Size[T]())))
}

// Write seeks and writes v. The stream must implement io.Writer.
func Write[T any](s *Stream, off strong.Offset, origin Origin, v T) {
	layout.Must[T]()

	s.Seek(off, origin)
	s.writeFull(layout.Bytes(&v))
}

// WriteFrom writes in at the current position without seeking.
func WriteFrom[T any](s *Stream, in []T) {
	layout.Must[T]()
	s.writeFull(layout.SliceBytes(in))
}

// Records reads count consecutive T values starting at base, yielding each
// with its index. It stops early once the stream fails; check LastReadOK
// afterwards to tell a short table from a complete one.
func Records[T any](s *Stream, base strong.Offset, count int) iter.Seq2[int, T] {
	layout.Must[T]()
	size := uint64(layout.Size[T]())

	return func(yield func(int, T) bool) {
		for i := range seq.To(count).All() {
			v := Read[T](s, base.Add(uint64(i)*size), Begin)
			if !s.LastReadOK() || !yield(i, v) {
				return
			}
		}
	}
}
