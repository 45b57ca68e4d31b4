package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memkit/pkg/config"
	"memkit/service"
)

type fakeClient struct {
	cmd  service.CmdType
	args []string
	out  string
	err  error
}

func (f *fakeClient) Exec(cmd service.CmdType, args []string) (string, error) {
	f.cmd, f.args = cmd, args
	return f.out, f.err
}

func (f *fakeClient) Pid() int { return 42 }

func newTestTerm(c service.Client) (*Term, *bytes.Buffer) {
	var buf bytes.Buffer
	t := New(c, config.Default())
	t.RedirectTo(&buf)
	return t, &buf
}

func TestCommandsFind(t *testing.T) {
	cmds := NewCommands(&fakeClient{})

	assert.Equal(t, service.Read, cmds.Find("r").typ)
	assert.Equal(t, service.Write, cmds.Find("write").typ)
	assert.Equal(t, service.Maps, cmds.Find("m").typ)
	assert.Equal(t, "nocmd", cmds.Find("frobnicate").aliases[0])
	assert.Equal(t, "nullcmd", cmds.Find("").aliases[0])
}

func TestCommandsCallRead(t *testing.T) {
	fc := &fakeClient{out: "0x1000: 7 (0x7)"}
	term, buf := newTestTerm(fc)

	require.NoError(t, term.cmds.Call(`read 0x1000 u32 "1"`, term))
	assert.Equal(t, service.Read, fc.cmd)
	assert.Equal(t, []string{"0x1000", "u32", "1"}, fc.args)
	assert.Equal(t, "0x1000: 7 (0x7)\n", buf.String())
}

func TestCommandsCallErrors(t *testing.T) {
	fc := &fakeClient{err: errors.New("boom")}
	term, _ := newTestTerm(fc)

	assert.EqualError(t, term.cmds.Call("maps r", term), "boom")
	assert.ErrorIs(t, term.cmds.Call("nope", term), errNoCmd)
	assert.ErrorAs(t, term.cmds.Call("q", term), &ExitRequestError{})
	assert.Error(t, term.cmds.Call(`read "0x10`, term))
}

func TestHelp(t *testing.T) {
	term, buf := newTestTerm(&fakeClient{})

	require.NoError(t, term.cmds.Call("help", term))
	assert.Contains(t, buf.String(), "read (alias: r)")

	buf.Reset()
	require.NoError(t, term.cmds.Call("help write", term))
	assert.Contains(t, buf.String(), "write <addr> <kind> <value>")

	assert.ErrorIs(t, term.cmds.Call("help nope", term), errNoCmd)
}

func TestCompleter(t *testing.T) {
	term, _ := newTestTerm(&fakeClient{})
	complete := term.completer()

	assert.ElementsMatch(t, []string{"maps"}, complete("ma"))
	assert.ElementsMatch(t, []string{"read 0x10 u8", "read 0x10 u16", "read 0x10 u32", "read 0x10 u64"}, complete("read 0x10 u"))
	assert.Empty(t, complete("maps r"))
}
