package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alparslanahmed/blackbird"
)

type cliCommand struct {
	Name        string
	Usage       string
	Description string
	MinArgs     int
	MaxArgs     int
	Handler     func(c *blackbird.Client, args []string) (string, error)
}

var cliCommands = map[string]cliCommand{}

func register(cmd cliCommand) {
	cliCommands[cmd.Name] = cmd
}

func init() {
	register(cliCommand{
		Name: "sys", Usage: "sys <gövde...>", Description: "ham sistem komutu gönderir (s <gövde>!)",
		MinArgs: 1, MaxArgs: 16,
		Handler: func(c *blackbird.Client, args []string) (string, error) {
			return c.SendSystem(strings.Join(args, " "))
		},
	})
	register(cliCommand{
		Name: "report", Usage: "report <gövde...>", Description: "ham rapor komutu gönderir (r <gövde>!)",
		MinArgs: 1, MaxArgs: 16,
		Handler: func(c *blackbird.Client, args []string) (string, error) {
			return c.SendReport(strings.Join(args, " "))
		},
	})
	register(cliCommand{
		Name: "power", Usage: "power [on|off]", Description: "güç durumu",
		MaxArgs: 1,
		Handler: func(c *blackbird.Client, args []string) (string, error) {
			if len(args) == 0 {
				return c.Power()
			}
			on, err := blackbird.ParseBool("power", args[0])
			if err != nil {
				return "", err
			}
			return c.SetPower(on)
		},
	})
	register(cliCommand{
		Name: "status", Usage: "status", Description: "yönlendirme özeti",
		Handler: func(c *blackbird.Client, _ []string) (string, error) { return c.MatrixStatus() },
	})
	register(cliCommand{
		Name: "model", Usage: "model", Description: "cihaz modeli",
		Handler: func(c *blackbird.Client, _ []string) (string, error) { return c.Model() },
	})
	register(cliCommand{
		Name: "fw", Usage: "fw", Description: "firmware sürümü",
		Handler: func(c *blackbird.Client, _ []string) (string, error) { return c.FirmwareVersion() },
	})
	register(cliCommand{
		Name: "reboot", Usage: "reboot", Description: "cihazı yeniden başlatır",
		Handler: func(c *blackbird.Client, _ []string) (string, error) { return c.Reboot() },
	})
	register(cliCommand{
		Name: "route", Usage: "route <giriş 0-4> <çıkış 0-4>", Description: "girişi çıkışa yönlendirir",
		MinArgs: 2, MaxArgs: 2,
		Handler: func(c *blackbird.Client, args []string) (string, error) {
			in, err := blackbird.ParseParam("input", args[0], blackbird.InputRange)
			if err != nil {
				return "", err
			}
			out, err := blackbird.ParseParam("output", args[1], blackbird.OutputRange)
			if err != nil {
				return "", err
			}
			return c.SetInputToOutput(in, out)
		},
	})
	register(cliCommand{
		Name: "link", Usage: "link in|out <0-4>", Description: "kablo bağlantı durumu",
		MinArgs: 2, MaxArgs: 2,
		Handler: func(c *blackbird.Client, args []string) (string, error) {
			switch args[0] {
			case "in":
				n, err := blackbird.ParseParam("input", args[1], blackbird.InputRange)
				if err != nil {
					return "", err
				}
				return c.InputConnectionStatus(n)
			case "out":
				n, err := blackbird.ParseParam("output", args[1], blackbird.OutputRange)
				if err != nil {
					return "", err
				}
				return c.OutputConnectionStatus(n)
			}
			return "", fmt.Errorf("in veya out bekleniyordu: %q", args[0])
		},
	})
	register(cliCommand{
		Name: "preset", Usage: "preset save|load|clear|show <1-8>", Description: "preset işlemleri",
		MinArgs: 2, MaxArgs: 2,
		Handler: func(c *blackbird.Client, args []string) (string, error) {
			n, err := blackbird.ParseParam("preset", args[1], blackbird.PresetRange)
			if err != nil {
				return "", err
			}
			switch args[0] {
			case "save":
				return c.SavePreset(n)
			case "load":
				return c.LoadPreset(n)
			case "clear":
				return c.ClearPreset(n)
			case "show":
				return c.PresetDetails(n)
			}
			return "", fmt.Errorf("bilinmeyen preset işlemi: %q", args[0])
		},
	})
	register(cliCommand{
		Name: "presets", Usage: "presets", Description: "tüm preset'leri listeler",
		Handler: func(c *blackbird.Client, _ []string) (string, error) { return c.AllPresetDetails() },
	})
	register(cliCommand{
		Name: "scaler", Usage: "scaler <çıkış> [1-3]", Description: "HDMI ölçekleme modu (1 bypass, 2 downscale, 3 auto)",
		MinArgs: 1, MaxArgs: 2,
		Handler: func(c *blackbird.Client, args []string) (string, error) {
			out, err := blackbird.ParseParam("output", args[0], blackbird.OutputRange)
			if err != nil {
				return "", err
			}
			if len(args) == 1 {
				return c.OutputScaler(out)
			}
			mode, err := blackbird.ParseParam("scaler", args[1], blackbird.ScalerRange)
			if err != nil {
				return "", err
			}
			return c.SetOutputScaler(out, blackbird.ScalerMode(mode))
		},
	})
	register(cliCommand{
		Name: "hdcp", Usage: "hdcp <çıkış> [on|off]", Description: "HDCP durumu",
		MinArgs: 1, MaxArgs: 2,
		Handler: outputToggle("hdcp", (*blackbird.Client).OutputHDCP, (*blackbird.Client).SetOutputHDCP),
	})
	register(cliCommand{
		Name: "arc", Usage: "arc <çıkış> [on|off]", Description: "ARC durumu",
		MinArgs: 1, MaxArgs: 2,
		Handler: outputToggle("arc", (*blackbird.Client).OutputARC, (*blackbird.Client).SetOutputARC),
	})
	register(cliCommand{
		Name: "stream", Usage: "stream <çıkış> [on|off]", Description: "çıkış yayını",
		MinArgs: 1, MaxArgs: 2,
		Handler: outputToggle("stream", (*blackbird.Client).OutputStreamStatus, (*blackbird.Client).SetOutputStream),
	})
	register(cliCommand{
		Name: "edid", Usage: "edid <giriş> [1-23]", Description: "giriş EDID profili",
		MinArgs: 1, MaxArgs: 2,
		Handler: func(c *blackbird.Client, args []string) (string, error) {
			in, err := blackbird.ParseParam("input", args[0], blackbird.InputRange)
			if err != nil {
				return "", err
			}
			if len(args) == 1 {
				return c.InputEDIDStatus(in)
			}
			id, err := blackbird.ParseParam("edid_id", args[1], blackbird.EDIDRange)
			if err != nil {
				return "", err
			}
			return c.SetInputEDID(in, id)
		},
	})
	register(cliCommand{
		Name: "baud", Usage: "baud [hız]", Description: "RS-232 hızı",
		MaxArgs: 1,
		Handler: func(c *blackbird.Client, args []string) (string, error) {
			if len(args) == 0 {
				return c.BaudRate()
			}
			rate, err := blackbird.ParseParam("baud_rate", args[0], blackbird.Range{Min: 1, Max: 115200})
			if err != nil {
				return "", err
			}
			return c.SetBaudRate(blackbird.BaudRate(rate))
		},
	})
	register(cliCommand{
		Name: "ipconfig", Usage: "ipconfig", Description: "ağ ayarları",
		Handler: func(c *blackbird.Client, _ []string) (string, error) { return c.IPConfig() },
	})
}

// outputToggle, "<komut> <çıkış> [on|off]" biçimli komutlar için işleyici kurar.
func outputToggle(
	param string,
	get func(*blackbird.Client, int) (string, error),
	set func(*blackbird.Client, int, bool) (string, error),
) func(*blackbird.Client, []string) (string, error) {
	return func(c *blackbird.Client, args []string) (string, error) {
		out, err := blackbird.ParseParam("output", args[0], blackbird.OutputRange)
		if err != nil {
			return "", err
		}
		if len(args) == 1 {
			return get(c, out)
		}
		on, err := blackbird.ParseBool(param, args[1])
		if err != nil {
			return "", err
		}
		return set(c, out, on)
	}
}

// runCommand, adı ve argümanları verilen kabuk komutunu çalıştırır.
func runCommand(c *blackbird.Client, name string, args []string) (string, error) {
	cmd, ok := cliCommands[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("bilinmeyen komut %q (yardım için help)", name)
	}
	if len(args) < cmd.MinArgs || len(args) > cmd.MaxArgs {
		return "", fmt.Errorf("kullanım: %s", cmd.Usage)
	}
	return cmd.Handler(c, args)
}

func commandNames() []string {
	names := make([]string, 0, len(cliCommands))
	for name := range cliCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
