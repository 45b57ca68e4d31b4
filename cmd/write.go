package cmd

import (
	"github.com/urfave/cli"

	"memkit/pkg/scalar"
	"memkit/pkg/strong"
	"memkit/utils"
)

var write = cli.Command{
	Name:      "write",
	Usage:     "writing process memory is unsafe, the target may crash or misbehave if the value is wrong.",
	ArgsUsage: "<pid> <addr> <kind> <value>",
	Flags:     []cli.Flag{sourceFlag},
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 4, utils.ExactArgs, writeArgsCheck); err != nil {
			return err
		}

		return exec(Write, context)
	},
}

type writeArgs struct {
	addr  strong.VA
	kind  scalar.Kind
	value string
}

func wArgs(args cli.Args) (*writeArgs, error) {
	addr, err := utils.ParseAddr(args.Get(1))
	if err != nil {
		return nil, err
	}
	kind, err := scalar.Parse(args.Get(2))
	if err != nil {
		return nil, err
	}

	return &writeArgs{
		addr:  addr,
		kind:  kind,
		value: args.Get(3),
	}, nil
}

func writeArgsCheck(args cli.Args) error {
	w, err := wArgs(args)
	if err != nil {
		return err
	}
	_, err = w.kind.Encode(w.value)
	return err
}
