package terminal

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/shlex"

	"memkit/service"
)

type cmdFn func(term *Term, args string) error

type command struct {
	aliases []string
	typ     service.CmdType
	fn      cmdFn
	help    string
}

func (c command) match(cmdstr string) bool {
	for _, v := range c.aliases {
		if v == cmdstr {
			return true
		}
	}
	return false
}

type Commands struct {
	cmds   []command
	client service.Client
}

func NewCommands(client service.Client) *Commands {
	c := &Commands{
		client: client,
	}

	c.cmds = []command{
		{
			aliases: []string{"help", "h"},
			typ:     -1,
			fn:      c.help,
			help: `Prints the help message.

	help [command]

Type "help" followed by the name of a command for more information about it.`},
		{
			aliases: []string{"read", "r"},
			typ:     service.Read,
			fn:      execCmd(service.Read),
			help: `Reads values from the target.

	read <addr> <kind> [count]

addr is hex with a 0x prefix or decimal. kind is one of the scalar kinds
(u8 ... u64, i8 ... i64, f32, f64, va, rva).`,
		},
		{
			aliases: []string{"write", "w"},
			typ:     service.Write,
			fn:      execCmd(service.Write),
			help: `Writes one value to the target and reads it back.

	write <addr> <kind> <value>`,
		},
		{
			aliases: []string{"maps", "m"},
			typ:     service.Maps,
			fn:      execCmd(service.Maps),
			help: `Lists the target's mapped regions.

	maps [perms]

perms filters by permission prefix, e.g. "rw".`,
		},
		{
			aliases: []string{"exit", "quit", "q"},
			typ:     -1,
			fn:      exit,
			help:    "Detaches and exits the terminal.",
		},
	}
	return c
}

// Find will look up the command function for the given command input.
// If it cannot find the command it will default to noCmdAvailable().
func (c *Commands) Find(cmdstr string) command {
	if cmdstr == "" {
		return command{aliases: []string{"nullcmd"}, typ: -1, fn: nullCommand}
	}

	for _, v := range c.cmds {
		if v.match(cmdstr) {
			return v
		}
	}

	return command{aliases: []string{"nocmd"}, typ: -1, fn: noCmdAvailable}
}

func (c *Commands) Call(cmdStr string, t *Term) error {
	cmd, argStr, _ := strings.Cut(strings.TrimSpace(cmdStr), " ")

	return c.Find(cmd).fn(t, argStr)
}

func (c *Commands) help(t *Term, args string) error {
	if args = strings.TrimSpace(args); args != "" {
		cmd := c.Find(args)
		if cmd.typ == -1 && !cmd.match("help") && !cmd.match("exit") {
			return fmt.Errorf("%q: %w", args, errNoCmd)
		}
		_, err := fmt.Fprintln(t.stdout, cmd.help)
		return err
	}

	fmt.Fprintln(t.stdout, "The following commands are available:")
	w := new(tabwriter.Writer)
	w.Init(t.stdout, 0, 8, 0, '-', 0)
	for _, cmd := range c.cmds {
		h := cmd.help
		if idx := strings.Index(h, "\n"); idx >= 0 {
			h = h[:idx]
		}
		if len(cmd.aliases) > 1 {
			fmt.Fprintf(w, "    %s (alias: %s) \t %s\n", cmd.aliases[0], strings.Join(cmd.aliases[1:], " | "), h)
		} else {
			fmt.Fprintf(w, "    %s \t %s\n", cmd.aliases[0], h)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(t.stdout)
	fmt.Fprintln(t.stdout, "Type help followed by a command for full documentation.")
	return nil
}

func execCmd(typ service.CmdType) cmdFn {
	return func(t *Term, args string) error {
		argv, err := shlex.Split(args)
		if err != nil {
			return err
		}

		out, err := t.client.Exec(typ, argv)
		if err != nil {
			return err
		}
		if out == "" {
			return nil
		}
		_, err = fmt.Fprintln(t.stdout, out)
		return err
	}
}

type ExitRequestError struct{}

func (ere ExitRequestError) Error() string {
	return ""
}

func exit(t *Term, args string) error {
	return ExitRequestError{}
}

var errNoCmd = errors.New("command not available")

func noCmdAvailable(t *Term, args string) error {
	return errNoCmd
}

func nullCommand(t *Term, args string) error {
	return nil
}
