package cmd

import (
	"github.com/urfave/cli"

	"memkit/utils"
)

var term = cli.Command{
	Name:      "term",
	Aliases:   []string{"attach"},
	Usage:     "attach to a process and open an interactive terminal",
	ArgsUsage: "<pid>",
	Flags:     []cli.Flag{sourceFlag},
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 1, utils.ExactArgs, noCheck); err != nil {
			return err
		}

		return exec(Term, context)
	},
}
