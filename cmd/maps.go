package cmd

import (
	"github.com/urfave/cli"

	"memkit/utils"
)

var maps = cli.Command{
	Name:      "maps",
	Usage:     "display the mapped regions of a process",
	ArgsUsage: "<pid>",
	Flags: []cli.Flag{
		cli.StringSliceFlag{
			Name:  "perms, p",
			Usage: `permission prefix filtering, e.g. "rw", repeatable`,
		},
	},
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 1, utils.ExactArgs, noCheck); err != nil {
			return err
		}

		return exec(Maps, context)
	},
}
