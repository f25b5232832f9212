package blackbird

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Config, bir Client'ı kurmak için gereken bütün ayarlardır.
// cmd/blackbird bu yapıyı TOML dosyasından doldurur.
type Config struct {
	// Host, cihazın IP adresi veya adıdır. SerialPath verilmişse gerekmez.
	Host string `toml:"host" validate:"required_without=SerialPath"`

	// Port, kontrol protokolünün TCP portudur.
	Port int `toml:"port" validate:"min=1,max=65535"`

	// SerialPath doluysa bağlantı TCP yerine seri port üzerinden kurulur.
	SerialPath string `toml:"serial_path"`

	BaudRate int `toml:"baud_rate" validate:"oneof=115200 57600 38400 19200 9600 4800"`

	// Timeout, yanıt sonunu belirleyen sessizlik süresidir.
	Timeout time.Duration `toml:"timeout" validate:"gt=0"`

	MaxReply        time.Duration `toml:"max_reply" validate:"gte=0"`
	CommandInterval time.Duration `toml:"command_interval" validate:"gte=0"`
	EmptyReplyError bool          `toml:"empty_reply_error"`
}

// DefaultConfig, varsayılan değerlerle doldurulmuş bir Config döner.
func DefaultConfig() Config {
	return Config{
		Port:     DefaultPort,
		BaudRate: int(DefaultBaudRate),
		Timeout:  DefaultTimeout,
	}
}

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Hata mesajlarında Go alan adı yerine dosyadaki anahtar görünsün.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("toml"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate, Config'i doğrular. İlk hatalı alan *ValidationError olarak döner.
func (c Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("yapılandırma doğrulanamadı: %w", err)
	}

	fe := fieldErrs[0]
	return &ValidationError{
		Param:  fe.Field(),
		Value:  fmt.Sprint(fe.Value()),
		Reason: describeRule(fe),
	}
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required_without":
		return "serial_path yoksa zorunludur"
	case "min", "max":
		if fe.Field() == "port" {
			return PortRange.String() + " aralığında olmalı"
		}
		return fe.Tag() + "=" + fe.Param() + " olmalı"
	case "oneof":
		return "şunlardan biri olmalı: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return "sıfırdan büyük olmalı"
	case "gte":
		return "negatif olamaz"
	default:
		return fe.Tag() + " kuralı sağlanmadı"
	}
}

// Options, Config'i Transport seçeneklerine çevirir.
func (c Config) Options(logger zerolog.Logger) []Option {
	opts := []Option{
		WithTimeout(c.Timeout),
		WithMaxReplyDuration(c.MaxReply),
		WithCommandInterval(c.CommandInterval),
		WithLogger(logger),
	}
	if c.EmptyReplyError {
		opts = append(opts, WithEmptyReplyError())
	}
	return opts
}

// NewClientFromConfig, Config'i doğrular ve bağlanmamış bir Client döner.
func NewClientFromConfig(c Config, logger zerolog.Logger, extra ...Option) (*Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	opts := append(c.Options(logger), extra...)
	if c.SerialPath != "" {
		return NewSerialClient(c.SerialPath, BaudRate(c.BaudRate), opts...), nil
	}
	return NewClient(c.Host, c.Port, opts...), nil
}
