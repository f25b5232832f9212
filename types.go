package blackbird

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ─── Protokol Sabitleri ─────────────────────────────────────────────────────────

const (
	// DefaultPort, Blackbird matrislerinin varsayılan TCP kontrol portudur.
	DefaultPort = 8000

	// DefaultTimeout, her okuma çağrısı için varsayılan sessizlik süresidir.
	// Cihaz bu süre boyunca veri göndermezse yanıt tamamlanmış sayılır.
	DefaultTimeout = 3 * time.Second

	// DefaultBaudRate, seri köprü kurulumlarında varsayılan hızdır.
	DefaultBaudRate = Baud115200

	// recvBufferSize, tek bir okuma çağrısında alınan en fazla bayt sayısıdır.
	recvBufferSize = 2048
)

// ─── Baud Hızları ───────────────────────────────────────────────────────────────

// BaudRate, cihazın seri portu için desteklenen hızlardan birini temsil eder.
type BaudRate int

const (
	Baud115200 BaudRate = 115200
	Baud57600  BaudRate = 57600
	Baud38400  BaudRate = 38400
	Baud19200  BaudRate = 19200
	Baud9600   BaudRate = 9600
	Baud4800   BaudRate = 4800
)

// BaudRates, cihazın kabul ettiği baud hızlarının tam listesidir.
var BaudRates = []BaudRate{Baud115200, Baud57600, Baud38400, Baud19200, Baud9600, Baud4800}

// Valid, hızın desteklenen kümede olup olmadığını döner.
func (b BaudRate) Valid() bool {
	for _, r := range BaudRates {
		if r == b {
			return true
		}
	}
	return false
}

// ─── HDMI Scaler Modları ────────────────────────────────────────────────────────

// ScalerMode, bir HDMI çıkışının ölçekleme davranışıdır.
type ScalerMode int

const (
	ScalerBypass    ScalerMode = 1 // Ölçekleme yok
	ScalerDownscale ScalerMode = 2 // 4K → 1080p
	ScalerAuto      ScalerMode = 3 // Bağlı ekrana göre otomatik
)

// String, ScalerMode'un okunabilir adını döner.
func (m ScalerMode) String() string {
	switch m {
	case ScalerBypass:
		return "bypass"
	case ScalerDownscale:
		return "downscale"
	case ScalerAuto:
		return "auto"
	default:
		return fmt.Sprintf("ScalerMode(%d)", int(m))
	}
}

// ─── IP Modları ─────────────────────────────────────────────────────────────────

// IPMode, cihazın ağ adresini nasıl aldığını belirtir.
type IPMode int

const (
	IPModeStatic IPMode = 0
	IPModeDHCP   IPMode = 1
)

// String, IPMode'un okunabilir adını döner.
func (m IPMode) String() string {
	switch m {
	case IPModeStatic:
		return "static"
	case IPModeDHCP:
		return "dhcp"
	default:
		return fmt.Sprintf("IPMode(%d)", int(m))
	}
}

// ─── Bağlantı Durumu ────────────────────────────────────────────────────────────

// State, Transport'un yaşam döngüsündeki konumudur.
//
//	disconnected --Connect--> connected --TransportError--> broken
//	broken --Connect--> connected
//	* --Close--> disconnected
type State int32

const (
	StateDisconnected State = iota
	StateConnected
	// StateBroken, gönderme veya okuma sırasında soket hatası alınmış
	// bağlantıdır. Yeni komut göndermeden önce Connect çağrılmalıdır.
	StateBroken
)

// String, State'in okunabilir adını döner.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	case StateBroken:
		return "broken"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// ─── Seçenekler ─────────────────────────────────────────────────────────────────

// Option, Transport yapılandırma seçeneklerini tanımlar.
// Functional Options pattern kullanılır.
type Option func(*options)

type options struct {
	timeout         time.Duration
	maxReply        time.Duration
	commandInterval time.Duration
	emptyReplyErr   bool
	logger          zerolog.Logger
	serialFactory   SerialPortFactory
}

func defaultOptions() options {
	return options{
		timeout:         DefaultTimeout,
		maxReply:        0,
		commandInterval: 0,
		emptyReplyErr:   false,
		logger:          zerolog.Nop(),
		serialFactory:   DefaultSerialPortFactory,
	}
}

// WithTimeout, bağlantı kurma ve her okuma çağrısı için zaman aşımını ayarlar.
// Bu süre aynı zamanda yanıtın bittiğini belirleyen sessizlik penceresidir.
//
//	t := blackbird.NewTransport("192.168.1.50", 8000,
//	    blackbird.WithTimeout(500*time.Millisecond),
//	)
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithMaxReplyDuration, tek bir yanıtın toplanması için üst sınır koyar.
// Sessizlik penceresinden bağımsızdır: süre dolunca yanıt metni kesilir,
// sonra gelen baytlar cihaz susana kadar okunup atılır ve eldeki metin
// döner. Böylece sonraki komutun yanıtı kaymaz. 0 sınırı kapatır.
func WithMaxReplyDuration(d time.Duration) Option {
	return func(o *options) {
		o.maxReply = d
	}
}

// WithCommandInterval, ardışık iki komut arasında en az d kadar süre bırakır.
// Bazı cihaz firmware'leri art arda gelen komutları kaçırır.
func WithCommandInterval(d time.Duration) Option {
	return func(o *options) {
		o.commandInterval = d
	}
}

// WithEmptyReplyError, hiç veri gelmeyen komutlarda boş string yerine
// ErrEmptyReply döndürür. Varsayılan olarak kapalıdır.
func WithEmptyReplyError() Option {
	return func(o *options) {
		o.emptyReplyErr = true
	}
}

// WithLogger, zerolog logger'ı ayarlar.
// Varsayılan olarak loglama devre dışıdır.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSerialPortFactory, seri port açma fonksiyonunu değiştirir.
// Testlerde sahte port enjekte etmek için kullanılır.
func WithSerialPortFactory(f SerialPortFactory) Option {
	return func(o *options) {
		if f != nil {
			o.serialFactory = f
		}
	}
}
