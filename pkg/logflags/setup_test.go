package logflags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupReplacesLogFile(t *testing.T) {
	t.Cleanup(func() { Reset() })
	dir := t.TempDir()

	require.NoError(t, Setup(true, "memory", filepath.Join(dir, "a.log")))
	first := logFile
	require.NotNil(t, first)

	require.NoError(t, Setup(true, "memory", filepath.Join(dir, "b.log")))
	assert.NotSame(t, first, logFile)
	assert.ErrorIs(t, first.Close(), os.ErrClosed)
}
