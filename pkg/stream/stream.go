// Package stream reads and writes binary-readable values over a caller-owned
// seekable byte stream.
//
// Reads do not return errors. A Stream records the first failure (a seek
// error, a short read, end of stream) and every later operation is a no-op
// until Clear is called, the way an iostream's failbit behaves. Callers issue
// several reads and then check LastReadOK once. Values read after or during a
// failure hold whatever bytes arrived; the rest stay zero.
//
// A Stream is not safe for concurrent use.
package stream

import (
	"fmt"
	"io"

	e "memkit/error"
	"memkit/pkg/strong"
)

// Origin selects what a seek offset is relative to.
type Origin uint8

const (
	Begin Origin = iota
	Current
	End
)

func (o Origin) whence() int {
	switch o {
	case Current:
		return io.SeekCurrent
	case End:
		return io.SeekEnd
	default:
		return io.SeekStart
	}
}

func (o Origin) String() string {
	switch o {
	case Begin:
		return "begin"
	case Current:
		return "current"
	case End:
		return "end"
	}
	return fmt.Sprintf("Origin(%d)", uint8(o))
}

// Stream is a cursor over a byte stream with a sticky failure status.
type Stream struct {
	rs  io.ReadSeeker
	err error
}

// New wraps rs. The Stream never closes rs. If rs also implements io.Writer
// the Write functions use it.
func New(rs io.ReadSeeker) *Stream {
	return &Stream{rs: rs}
}

// Seek moves the cursor. Offsets are converted to int64 by two's complement,
// so strong.NewOffset(-4) with End seeks four bytes before the end.
func (s *Stream) Seek(off strong.Offset, origin Origin) {
	if s.err != nil {
		return
	}
	if _, err := s.rs.Seek(int64(off.Get()), origin.whence()); err != nil {
		s.err = err
	}
}

// Skip advances the cursor by off bytes from the current position.
func (s *Stream) Skip(off strong.Offset) {
	s.Seek(off, Current)
}

// Tell returns the current cursor position, or zero after a failure.
func (s *Stream) Tell() strong.Offset {
	if s.err != nil {
		return strong.Offset{}
	}
	pos, err := s.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		s.err = err
		return strong.Offset{}
	}
	return strong.NewOffset(pos)
}

// LastReadOK reports whether no operation has failed or hit end of stream
// since the Stream was created or last cleared.
func (s *Stream) LastReadOK() bool {
	return s.err == nil
}

// Err returns the recorded failure. End of stream shows up as io.EOF or
// io.ErrUnexpectedEOF.
func (s *Stream) Err() error {
	return s.err
}

// Clear forgets the recorded failure.
func (s *Stream) Clear() {
	s.err = nil
}

func (s *Stream) readFull(p []byte) {
	if s.err != nil {
		return
	}
	if _, err := io.ReadFull(s.rs, p); err != nil {
		s.err = err
	}
}

func (s *Stream) writeFull(p []byte) {
	if s.err != nil {
		return
	}
	w, ok := s.rs.(io.Writer)
	if !ok {
		s.err = e.StreamNotWritable
		return
	}
	if _, err := w.Write(p); err != nil {
		s.err = err
	}
}
