package blackbird

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigNeedsHostOrSerialPath(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	err := cfg.Validate()

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "host", vErr.Param)

	cfg.Host = "192.168.1.50"
	require.NoError(t, cfg.Validate())

	serialCfg := DefaultConfig()
	serialCfg.SerialPath = "/dev/ttyUSB0"
	require.NoError(t, serialCfg.Validate())
}

func TestConfigValidateReportsFileKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		param  string
		reason string
	}{
		{"port zero", func(c *Config) { c.Port = 0 }, "port", "1-65535"},
		{"port too big", func(c *Config) { c.Port = 65536 }, "port", "1-65535"},
		{"baud", func(c *Config) { c.BaudRate = 1200 }, "baud_rate", "115200"},
		{"timeout", func(c *Config) { c.Timeout = 0 }, "timeout", "sıfırdan büyük"},
		{"max reply", func(c *Config) { c.MaxReply = -time.Second }, "max_reply", "negatif"},
		{"interval", func(c *Config) { c.CommandInterval = -time.Millisecond }, "command_interval", "negatif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.Host = "matrix.local"
			tt.mutate(&cfg)

			var vErr *ValidationError
			require.ErrorAs(t, cfg.Validate(), &vErr)
			assert.Equal(t, tt.param, vErr.Param)
			assert.Contains(t, vErr.Reason, tt.reason)
		})
	}
}

func TestNewClientFromConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Host = "10.0.0.9"
	cfg.Port = 4001
	cfg.Timeout = 750 * time.Millisecond

	c, err := NewClientFromConfig(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.9", c.Transport().Host())
	assert.Equal(t, 4001, c.Transport().Port())
	assert.Equal(t, 750*time.Millisecond, c.Transport().Timeout())
	assert.False(t, c.Transport().IsConnected())

	cfg.Port = 0
	_, err = NewClientFromConfig(cfg, zerolog.Nop())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestNewClientFromConfigEndToEnd(t *testing.T) {
	t.Parallel()

	d := newStubDevice(t, "ready\r\n", reply("OK"))

	cfg := DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = d.port()
	cfg.Timeout = testTimeout
	cfg.EmptyReplyError = true

	c, err := NewClientFromConfig(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, c.Connect())
	t.Cleanup(func() { _ = c.Close() })

	got, err := c.SetPower(true)
	require.NoError(t, err)
	assert.Equal(t, "OK", got)
	assert.Equal(t, []string{"s power 1!"}, d.commands())
}
