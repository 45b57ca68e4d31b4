package error

import "errors"

var (
	ProcessNotFound   = errors.New("process not found")
	RegionNotFound    = errors.New("address is not in any mapped region")
	ShortRead         = errors.New("short memory read")
	ShortWrite        = errors.New("short memory write")
	StreamNotWritable = errors.New("stream is not writable")
	UnknownKind       = errors.New("unknown scalar kind")
	InvalidAddress    = errors.New("invalid address")
	InvalidValue      = errors.New("invalid value")
)
