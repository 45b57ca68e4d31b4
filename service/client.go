package service

type CmdType int

const (
	Read CmdType = iota
	Write
	Maps
)

func (c CmdType) String() string {
	switch c {
	case Read:
		return "read"
	case Write:
		return "write"
	case Maps:
		return "maps"
	}
	return "unknown"
}

// Client runs one command against an attached target and returns its
// printable result.
type Client interface {
	Exec(cmd CmdType, args []string) (string, error)
	Pid() int
}
