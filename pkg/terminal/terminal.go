package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/derekparker/trie"
	"github.com/go-delve/liner"

	"memkit/pkg/config"
	"memkit/pkg/logflags"
	"memkit/pkg/scalar"
	"memkit/service"
)

type Term struct {
	client      service.Client
	prompt      string
	history     string
	line        *liner.State
	cmds        *Commands
	historyFile *os.File
	stdout      io.Writer
	log         logflags.Logger
}

func New(client service.Client, conf config.Config) *Term {
	return &Term{
		client:  client,
		prompt:  conf.Prompt,
		history: conf.History,
		stdout:  os.Stdout,
		cmds:    NewCommands(client),
		log:     logflags.TermLogger(),
	}
}

func (t *Term) sigintGuard(ch <-chan os.Signal) {
	for range ch {
		fmt.Fprintf(t.stdout, "received SIGINT, type 'exit' to detach from %d\n", t.client.Pid())
	}
}

// completer offers command names for the first word and kind names for
// the kind argument of read and write.
func (t *Term) completer() liner.Completer {
	cmds := trie.New()
	for _, cmd := range t.cmds.cmds {
		for _, alias := range cmd.aliases {
			cmds.Add(alias, nil)
		}
	}
	kinds := trie.New()
	for _, name := range scalar.Names() {
		kinds.Add(name, nil)
	}

	return func(line string) (c []string) {
		head, rest, found := strings.Cut(line, " ")
		if !found {
			return cmds.PrefixSearch(line)
		}
		cmd := t.cmds.Find(head)
		if cmd.typ != service.Read && cmd.typ != service.Write {
			return nil
		}
		fields := strings.Fields(rest)
		if len(fields) != 2 || strings.HasSuffix(rest, " ") {
			return nil
		}
		prefix := line[:strings.LastIndex(line, fields[1])]
		for _, name := range kinds.PrefixSearch(fields[1]) {
			c = append(c, prefix+name)
		}
		return c
	}
}

func (t *Term) Run() error {
	t.line = liner.NewLiner()
	defer t.Close()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT)
	defer signal.Stop(ch)
	go t.sigintGuard(ch)

	t.line.SetCompleter(t.completer())

	if err := t.openHistory(); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open history file: %v. History will not be saved for this session.\n", err)
	}

	fmt.Fprintf(t.stdout, "Attached to %d. Type 'help' for list of commands.\n", t.client.Pid())

	for {
		cmd, err := t.promptForInput()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(t.stdout, "exit")
				return t.handleExit()
			}
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			return fmt.Errorf("prompt for input failed: %w", err)
		}

		if strings.TrimSpace(cmd) == "" {
			continue
		}

		if err = t.cmds.Call(cmd, t); err != nil {
			var exitErr ExitRequestError
			if errors.As(err, &exitErr) {
				return t.handleExit()
			}
			t.log.Debugf("command %q: %v", cmd, err)
			fmt.Fprintf(os.Stderr, "Command failed: %s\n", err)
		}
	}
}

func (t *Term) openHistory() error {
	if t.history == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(t.history), 0755); err != nil {
		return fmt.Errorf("create parent dir failed: %w", err)
	}

	f, err := os.OpenFile(t.history, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return err
	}
	if _, err := t.line.ReadHistory(f); err != nil {
		f.Close()
		return fmt.Errorf("read %s: %w", t.history, err)
	}
	t.historyFile = f
	return nil
}

func (t *Term) Close() {
	if t.line != nil {
		t.line.Close()
	}
}

func (t *Term) promptForInput() (string, error) {
	l, err := t.line.Prompt(t.prompt)
	if err != nil {
		return "", err
	}

	l = strings.TrimSuffix(l, "\n")
	if l != "" {
		t.line.AppendHistory(l)
	}

	return l, nil
}

func (t *Term) handleExit() error {
	if t.historyFile == nil {
		return nil
	}
	defer t.historyFile.Close()

	if _, err := t.historyFile.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if err := t.historyFile.Truncate(0); err != nil {
		return err
	}
	if _, err := t.line.WriteHistory(t.historyFile); err != nil {
		return fmt.Errorf("readline history error: %w", err)
	}
	return nil
}

// RedirectTo redirects the output of this terminal to the specified writer.
func (t *Term) RedirectTo(w io.Writer) {
	t.stdout = w
}
