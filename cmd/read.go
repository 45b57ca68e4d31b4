package cmd

import (
	"github.com/urfave/cli"

	"memkit/pkg/scalar"
	"memkit/pkg/strong"
	"memkit/utils"
)

var read = cli.Command{
	Name:      "read",
	Usage:     "read typed values from a process",
	ArgsUsage: "<pid> <addr> <kind> [count]",
	Flags:     []cli.Flag{sourceFlag},
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 3, utils.MinArgs, noCheck); err != nil {
			return err
		}
		if err := utils.CheckArgs(context, 4, utils.MaxArgs, readArgsCheck); err != nil {
			return err
		}

		return exec(Read, context)
	},
}

type readArgs struct {
	addr  strong.VA
	kind  scalar.Kind
	count int
}

func rArgs(args cli.Args) (*readArgs, error) {
	addr, err := utils.ParseAddr(args.Get(1))
	if err != nil {
		return nil, err
	}
	kind, err := scalar.Parse(args.Get(2))
	if err != nil {
		return nil, err
	}
	count, err := parseCount(args.Get(3))
	if err != nil {
		return nil, err
	}

	return &readArgs{
		addr:  addr,
		kind:  kind,
		count: count,
	}, nil
}

func readArgsCheck(args cli.Args) error {
	_, err := rArgs(args)
	return err
}

func noCheck(cli.Args) error { return nil }
