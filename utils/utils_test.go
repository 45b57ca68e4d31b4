package utils_test

import (
	"bytes"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	e "memkit/error"
	"memkit/pkg/strong"
	"memkit/utils"
)

func TestParseAddr(t *testing.T) {
	va, err := utils.ParseAddr("0x7ffd0000")
	require.NoError(t, err)
	assert.Equal(t, strong.NewVA(0x7ffd0000), va)

	va, err = utils.ParseAddr("4096")
	require.NoError(t, err)
	assert.Equal(t, strong.NewVA(4096), va)

	_, err = utils.ParseAddr("0xzz")
	assert.ErrorIs(t, err, e.InvalidAddress)
}

func TestParsePid(t *testing.T) {
	pid, err := utils.ParsePid(strconv.Itoa(os.Getpid()))
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)

	_, err = utils.ParsePid("0")
	assert.Error(t, err)
	_, err = utils.ParsePid("abc")
	assert.Error(t, err)
}

func TestPrefixIn(t *testing.T) {
	assert.True(t, utils.PrefixIn("rw-p", []string{"r-x", "rw"}))
	assert.False(t, utils.PrefixIn("r--p", []string{"rw"}))
	assert.False(t, utils.PrefixIn("r--p", nil))
}

func TestPlainPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := utils.NewPlainPrinter(&buf)

	p.PrintStringLine(p.Addr(strong.NewVA(0x10))+": 1", "done")
	assert.Equal(t, "0x10: 1\ndone\n", buf.String())
}
