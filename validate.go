package blackbird

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// Range, kapalı bir tam sayı aralığıdır: [Min, Max].
type Range struct {
	Min int
	Max int
}

// Contains, v'nin aralıkta olup olmadığını döner.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Cihazın parametre aralıkları (uç değerler dahil).
var (
	InputRange  = Range{Min: 0, Max: 4}
	OutputRange = Range{Min: 0, Max: 4}
	PresetRange = Range{Min: 1, Max: 8}
	ScalerRange = Range{Min: 1, Max: 3}
	EDIDRange   = Range{Min: 1, Max: 23}
	PortRange   = Range{Min: 1, Max: 65535}
)

// CheckRange, v değerinin r aralığında olduğunu doğrular.
// Değilse param adını ve aralığı içeren *ValidationError döner.
func CheckRange(param string, v int, r Range) error {
	if !r.Contains(v) {
		return &ValidationError{
			Param:  param,
			Value:  strconv.Itoa(v),
			Reason: r.String() + " aralığında olmalı",
		}
	}
	return nil
}

// ParseParam, metin halindeki bir parametreyi tam sayıya çevirir ve
// aralığını doğrular. Tam sayı olmayan girdiler reddedilir.
//
//	n, err := blackbird.ParseParam("preset", "3", blackbird.PresetRange)
func ParseParam(param, s string, r Range) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ValidationError{
			Param:  param,
			Value:  s,
			Reason: "tam sayı olmalı",
		}
	}
	if err := CheckRange(param, v, r); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseBool, "on/off", "1/0", "true/false" girdilerini kabul eder.
func ParseBool(param, s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "on", "true", "yes":
		return true, nil
	case "0", "off", "false", "no":
		return false, nil
	}
	return false, &ValidationError{Param: param, Value: s, Reason: "on/off olmalı"}
}

func validateInput(v int) error {
	return CheckRange("input", v, InputRange)
}

func validateOutput(v int) error {
	return CheckRange("output", v, OutputRange)
}

func validatePreset(v int) error {
	return CheckRange("preset", v, PresetRange)
}

func validateScaler(m ScalerMode) error {
	return CheckRange("scaler", int(m), ScalerRange)
}

func validateEDID(v int) error {
	return CheckRange("edid_id", v, EDIDRange)
}

func validatePort(v int) error {
	return CheckRange("port", v, PortRange)
}

func validateBaudRate(b BaudRate) error {
	if !b.Valid() {
		names := make([]string, len(BaudRates))
		for i, r := range BaudRates {
			names[i] = strconv.Itoa(int(r))
		}
		return &ValidationError{
			Param:  "baud_rate",
			Value:  strconv.Itoa(int(b)),
			Reason: "şunlardan biri olmalı: " + strings.Join(names, ", "),
		}
	}
	return nil
}

func validateIPMode(m IPMode) error {
	if m != IPModeStatic && m != IPModeDHCP {
		return &ValidationError{
			Param:  "ip_mode",
			Value:  strconv.Itoa(int(m)),
			Reason: "static (0) veya dhcp (1) olmalı",
		}
	}
	return nil
}

// validateIPv4, cihaza yazılacak adresin noktalı IPv4 biçiminde olmasını
// sağlar. Firmware IPv6 kabul etmez.
func validateIPv4(param, s string) error {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return &ValidationError{Param: param, Value: s, Reason: "IPv4 adresi olmalı"}
	}
	return nil
}
