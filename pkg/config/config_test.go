package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memkit/pkg/config"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := write(t, `
log = true
log_output = "memory,term"
log_dest = "/tmp/memkit.log"
source = "file"
prompt = "> "
`)
	cfg, err := config.Load(path, false)
	require.NoError(t, err)
	assert.True(t, cfg.Log)
	assert.Equal(t, "memory,term", cfg.LogOutput)
	assert.Equal(t, "/tmp/memkit.log", cfg.LogDest)
	assert.Equal(t, config.SourceFile, cfg.Source)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.NotEmpty(t, cfg.History)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(write(t, ""), false)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, config.SourceVM, cfg.Source)
	assert.Equal(t, "memory", cfg.LogOutput)
	assert.False(t, cfg.Log)
}

func TestLoadMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := config.Load(missing, true)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(missing, false)
	assert.Error(t, err)
}

func TestLoadRejects(t *testing.T) {
	_, err := config.Load(write(t, `source = "ptrace"`), false)
	assert.ErrorContains(t, err, "source must be")

	_, err = config.Load(write(t, `colour = "always"`), false)
	assert.ErrorContains(t, err, "unknown keys colour")

	_, err = config.Load(write(t, `log = `), false)
	assert.ErrorContains(t, err, "config load failed")
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(config.DefaultPath()))
	assert.Equal(t, ".memkit", filepath.Base(filepath.Dir(config.DefaultPath())))
}
