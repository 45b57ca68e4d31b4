package cmd

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	e "memkit/error"
	"memkit/pkg/terminal"
	"memkit/service"
	"memkit/utils"
)

type ExecType int

const (
	Read ExecType = iota
	Write
	Maps
	Term
)

type executor struct {
	et      ExecType
	pid     int
	ctx     *cli.Context
	out     *utils.Printer
	session *service.Session
}

func newExecutor(et ExecType, pid int, ctx *cli.Context) (*executor, error) {
	source := conf.Source
	if s := ctx.String("source"); s != "" {
		source = s
	}
	c := conf
	c.Source = source
	if err := c.Validate(); err != nil {
		return nil, err
	}

	s, err := service.Open(pid, source)
	if err != nil {
		return nil, err
	}
	return &executor{
		et:      et,
		pid:     pid,
		ctx:     ctx,
		out:     utils.NewPrinter(),
		session: s,
	}, nil
}

func (e *executor) run() error {
	switch e.et {
	case Read:
		return e.read()
	case Write:
		return e.write()
	case Maps:
		return e.maps()
	case Term:
		return e.term()
	}

	return nil
}

func exec(et ExecType, ctx *cli.Context) error {
	pid, err := utils.ParsePid(ctx.Args().First())
	if err != nil {
		return err
	}

	ex, err := newExecutor(et, pid, ctx)
	if err != nil {
		return err
	}
	return ex.run()
}

func (e *executor) read() error {
	r, err := rArgs(e.ctx.Args())
	if err != nil {
		return err
	}

	els, err := e.session.Read(r.addr, r.kind, r.count)
	if err != nil {
		return err
	}

	e.printElements(els)
	return nil
}

func (e *executor) write() error {
	w, err := wArgs(e.ctx.Args())
	if err != nil {
		return err
	}

	if err := e.session.Write(w.addr, w.kind, w.value); err != nil {
		return err
	}

	els, err := e.session.Read(w.addr, w.kind, 1)
	if err != nil {
		return err
	}
	e.printElements(els)
	return nil
}

func (e *executor) maps() error {
	rs, err := e.session.Maps()
	if err != nil {
		return err
	}
	perms := e.ctx.StringSlice("perms")

	var lines []string
	for _, r := range rs {
		if len(perms) > 0 && !utils.PrefixIn(r.Perms, perms) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s-%s %s %8s %s", e.out.Addr(r.Start), e.out.Addr(r.End), r.Perms, r.Offset, r.Path))
	}
	e.out.PrintStringLine(lines...)
	return nil
}

func (e *executor) term() error {
	return terminal.New(e.session, conf).Run()
}

func (e *executor) printElements(els []service.Element) {
	lines := make([]string, len(els))
	for i, el := range els {
		lines[i] = fmt.Sprintf("%s: %s", e.out.Addr(el.Addr), el.Text)
	}
	e.out.PrintStringLine(lines...)
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("count %q: %w", s, e.InvalidValue)
	}
	return n, nil
}
