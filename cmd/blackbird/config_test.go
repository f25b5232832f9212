package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alparslanahmed/blackbird"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackbird.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
host = " 192.168.1.50 "
timeout = "1500ms"
command_interval = "100ms"
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.50", cfg.Host)
	assert.Equal(t, blackbird.DefaultPort, cfg.Port)
	assert.Equal(t, int(blackbird.DefaultBaudRate), cfg.BaudRate)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 100*time.Millisecond, cfg.CommandInterval)
	assert.Zero(t, cfg.MaxReply)
	assert.False(t, cfg.EmptyReplyError)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigSerial(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
serial_path = "/dev/ttyUSB0"
baud_rate = 9600
max_reply = "5s"
empty_reply_error = true
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", cfg.SerialPath)
	assert.Equal(t, 9600, cfg.BaudRate)
	assert.Equal(t, 5*time.Second, cfg.MaxReply)
	assert.True(t, cfg.EmptyReplyError)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	_, err := loadConfig(writeConfig(t, "host = \"a\"\nhots = \"b\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hots")
}

func TestLoadConfigBadDuration(t *testing.T) {
	t.Parallel()

	_, err := loadConfig(writeConfig(t, "timeout = \"soon\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := loadConfig(filepath.Join(t.TempDir(), "yok.toml"))
	assert.Error(t, err)
}

func TestExampleConfigLoads(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig("ex.config.toml")
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}
