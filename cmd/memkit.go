package cmd

import (
	"github.com/urfave/cli"

	"memkit/pkg/config"
	"memkit/pkg/logflags"
)

const (
	usage = `memkit reads and writes the memory of a live process as typed values,
             either through process_vm_readv/writev or /proc/<pid>/mem`
)

// conf is loaded once per invocation by before.
var conf = config.Default()

func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "memkit"
	app.Usage = usage
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "config file path",
			Value: config.DefaultPath(),
		},
		cli.BoolFlag{
			Name:  "log",
			Usage: "enable debug logging",
		},
		cli.StringFlag{
			Name:  "log-output",
			Usage: "comma separated components to log (memory, term)",
		},
		cli.StringFlag{
			Name:  "log-dest",
			Usage: "specify the log file path",
			Value: logflags.DefaultLogDesc,
		},
	}
	app.Before = before
	app.After = func(*cli.Context) error {
		return logflags.Reset()
	}
	app.Commands = []cli.Command{
		read,
		write,
		maps,
		term,
	}

	return app
}

func before(ctx *cli.Context) error {
	c, err := config.Load(ctx.String("config"), !ctx.IsSet("config"))
	if err != nil {
		return err
	}

	if ctx.IsSet("log") {
		c.Log = ctx.Bool("log")
	}
	if ctx.IsSet("log-output") {
		c.LogOutput = ctx.String("log-output")
	}
	if ctx.IsSet("log-dest") {
		c.LogDest = ctx.String("log-dest")
	}

	conf = c
	return logflags.Setup(conf.Log, conf.LogOutput, conf.LogDest)
}

var sourceFlag = cli.StringFlag{
	Name:  "source",
	Usage: `memory access method, "vm" or "file" (default from config)`,
}
