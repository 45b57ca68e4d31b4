package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	addrEscape  = "\033[34m"
	resetEscape = "\033[0m"
)

// Printer writes command output, highlighting addresses when stdout is a
// terminal.
type Printer struct {
	w     io.Writer
	color bool
}

func NewPrinter() *Printer {
	fd := os.Stdout.Fd()
	return &Printer{
		w:     colorable.NewColorable(os.Stdout),
		color: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// NewPlainPrinter never colors.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Writer() io.Writer { return p.w }

func (p *Printer) Addr(addr fmt.Stringer) string {
	if !p.color {
		return addr.String()
	}
	return addrEscape + addr.String() + resetEscape
}

func (p *Printer) PrintStringLine(s ...string) {
	for _, str := range s {
		fmt.Fprintln(p.w, str)
	}
}
