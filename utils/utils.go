package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	e "memkit/error"
	"memkit/pkg/strong"
)

const (
	ExactArgs = iota
	MinArgs
	MaxArgs
)

func CheckArgs(context *cli.Context, expected, checkType int, fn func(args cli.Args) error) error {
	var err error
	cmdName := context.Command.Name
	switch checkType {
	case ExactArgs:
		if context.NArg() != expected {
			err = fmt.Errorf("%s: %q requires exactly %d argument(s)", os.Args[0], cmdName, expected)
		}
	case MinArgs:
		if context.NArg() < expected {
			err = fmt.Errorf("%s: %q requires a minimum of %d argument(s)", os.Args[0], cmdName, expected)
		}
	case MaxArgs:
		if context.NArg() > expected {
			err = fmt.Errorf("%s: %q requires a maximum of %d argument(s)", os.Args[0], cmdName, expected)
		}
	}

	if err != nil {
		fmt.Printf("Incorrect Usage.\n\n")
		_ = cli.ShowCommandHelp(context, cmdName)
		return err
	}

	return fn(context.Args())
}

func PrefixIn(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

// ParseAddr accepts hex with a 0x prefix, or decimal.
func ParseAddr(s string) (strong.VA, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return strong.VA{}, fmt.Errorf("%q: %w", s, e.InvalidAddress)
	}
	return strong.NewVA(v), nil
}

func ParsePid(s string) (int, error) {
	pid, err := strconv.Atoi(s)
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("invalid pid %q", s)
	}
	if !CheckPid(s) {
		return 0, fmt.Errorf("pid %s does not exist", s)
	}
	return pid, nil
}
