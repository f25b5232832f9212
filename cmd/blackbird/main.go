// blackbird, Blackbird HDMI matris cihazlarını komut satırından yönetir.
//
//	blackbird -host 192.168.1.50 status
//	blackbird -config blackbird.toml          # etkileşimli kabuk
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alparslanahmed/blackbird"
	"github.com/peterh/liner"
	"github.com/rs/zerolog"
)

const historyFile = ".blackbird_history"

func main() {
	configPath := flag.String("config", "", "TOML yapılandırma dosyası")
	host := flag.String("host", "", "cihaz adresi")
	port := flag.Int("port", blackbird.DefaultPort, "TCP portu")
	serialPath := flag.String("serial", "", "seri port (ör. /dev/ttyUSB0)")
	baud := flag.Int("baud", int(blackbird.DefaultBaudRate), "seri port hızı")
	timeout := flag.Duration("timeout", blackbird.DefaultTimeout, "yanıt sessizlik süresi")
	verbose := flag.Bool("v", false, "ayrıntılı log")
	flag.Parse()

	logger := newLogger(os.Stderr, *verbose)

	cfg := blackbird.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("yapılandırma yüklenemedi")
		}
	}

	// Komut satırında açıkça verilen bayraklar dosyadaki değerleri ezer.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Host = *host
		case "port":
			cfg.Port = *port
		case "serial":
			cfg.SerialPath = *serialPath
		case "baud":
			cfg.BaudRate = *baud
		case "timeout":
			cfg.Timeout = *timeout
		}
	})

	client, err := blackbird.NewClientFromConfig(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("geçersiz ayar")
	}
	if err := client.Connect(); err != nil {
		logger.Fatal().Err(err).Msg("cihaza bağlanılamadı")
	}
	defer client.Close()

	if flag.NArg() > 0 {
		if err := execute(os.Stdout, client, flag.Arg(0), flag.Args()[1:]); err != nil {
			client.Close()
			os.Exit(1)
		}
		return
	}

	shell(client, logger)
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()
}

// execute tek bir komutu çalıştırır ve yanıtı ya da hatayı w'ye yazar.
func execute(w io.Writer, c *blackbird.Client, name string, args []string) error {
	reply, err := runCommand(c, name, args)
	if err != nil {
		var decErr *blackbird.DecodeError
		if errors.As(err, &decErr) && decErr.Partial != "" {
			fmt.Fprintf(w, "%s\n", decErr.Partial)
		}
		fmt.Fprintf(w, "hata: %v\n", err)
		return err
	}
	fmt.Fprintln(w, strings.TrimRight(reply, "\r\n"))
	return nil
}

func printHelp(w io.Writer) {
	for _, name := range commandNames() {
		cmd := cliCommands[name]
		fmt.Fprintf(w, "  %-34s %s\n", cmd.Usage, cmd.Description)
	}
	fmt.Fprintln(w, "  quit | exit")
}

func shell(c *blackbird.Client, logger zerolog.Logger) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) (matches []string) {
		for _, name := range commandNames() {
			if strings.HasPrefix(name, strings.ToLower(input)) {
				matches = append(matches, name)
			}
		}
		return matches
	})

	history := historyPath()
	if f, err := os.Open(history); err == nil {
		_, _ = line.ReadHistory(f)
		_ = f.Close()
	}

	fmt.Println(`Etkileşimli mod: komutlar için "help", çıkmak için Ctrl-D.`)
	for {
		input, err := line.Prompt("blackbird> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			logger.Error().Err(err).Msg("girdi okunamadı")
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch input {
		case "help":
			printHelp(os.Stdout)
			continue
		case "quit", "exit":
			saveHistory(line, history, logger)
			return
		}

		tokens := strings.Fields(input)
		_ = execute(os.Stdout, c, tokens[0], tokens[1:])

		if c.Transport().State() == blackbird.StateBroken {
			logger.Warn().Msg("bağlantı koptu, yeniden bağlanılıyor")
			if err := c.Connect(); err != nil {
				logger.Error().Err(err).Msg("yeniden bağlanılamadı")
			}
		}
	}

	saveHistory(line, history, logger)
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func saveHistory(line *liner.State, path string, logger zerolog.Logger) {
	f, err := os.Create(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("geçmiş kaydedilemedi")
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		logger.Debug().Err(err).Msg("geçmiş yazılamadı")
	}
}
