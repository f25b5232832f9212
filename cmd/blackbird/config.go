package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/alparslanahmed/blackbird"
)

type fileConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	SerialPath      string `toml:"serial_path"`
	BaudRate        int    `toml:"baud_rate"`
	Timeout         string `toml:"timeout"`
	MaxReply        string `toml:"max_reply"`
	CommandInterval string `toml:"command_interval"`
	EmptyReplyError bool   `toml:"empty_reply_error"`
}

// loadConfig, TOML dosyasını varsayılan ayarların üzerine uygular.
// Dosyada olmayan anahtarlar varsayılan değerini korur.
func loadConfig(path string) (blackbird.Config, error) {
	cfg := blackbird.DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return blackbird.Config{}, fmt.Errorf("yapılandırma okunamadı: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return blackbird.Config{}, fmt.Errorf("bilinmeyen anahtar: %s", undecoded[0])
	}

	if meta.IsDefined("host") {
		cfg.Host = strings.TrimSpace(raw.Host)
	}
	if meta.IsDefined("port") {
		cfg.Port = raw.Port
	}
	if meta.IsDefined("serial_path") {
		cfg.SerialPath = strings.TrimSpace(raw.SerialPath)
	}
	if meta.IsDefined("baud_rate") {
		cfg.BaudRate = raw.BaudRate
	}
	if meta.IsDefined("timeout") {
		if cfg.Timeout, err = parseDuration("timeout", raw.Timeout); err != nil {
			return blackbird.Config{}, err
		}
	}
	if meta.IsDefined("max_reply") {
		if cfg.MaxReply, err = parseDuration("max_reply", raw.MaxReply); err != nil {
			return blackbird.Config{}, err
		}
	}
	if meta.IsDefined("command_interval") {
		if cfg.CommandInterval, err = parseDuration("command_interval", raw.CommandInterval); err != nil {
			return blackbird.Config{}, err
		}
	}
	if meta.IsDefined("empty_reply_error") {
		cfg.EmptyReplyError = raw.EmptyReplyError
	}

	return cfg, nil
}

func parseDuration(key, s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s çözümlenemedi: %w", key, err)
	}
	return d, nil
}
