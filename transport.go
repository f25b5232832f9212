package blackbird

import (
	"fmt"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/alparslanahmed/blackbird/internal/syncutil"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Transport, bir Blackbird cihazıyla kurulan tek bağlantıyı yönetir.
// Bağlantı TCP veya seri port üzerinden olabilir.
//
// Protokol katı istek/yanıt düzenindedir: aynı anda yalnızca bir komut
// yolda olabilir. Connect, SendLine ve Close aynı kilidi paylaşır; bir
// goroutine'in komutu yanıtı toplanana kadar diğerlerini bekletir.
//
//	t := blackbird.NewTransport("192.168.1.50", blackbird.DefaultPort)
//	if err := t.Connect(); err != nil {
//	    log.Fatal(err)
//	}
//	defer t.Close()
//
//	reply, err := t.SendLine("r status!")
type Transport struct {
	// host ve port, TCP bağlantısı için hedef adrestir.
	host string
	port int

	// serialPath boş değilse bağlantı seri port üzerinden kurulur.
	serialPath string
	baudRate   BaudRate

	opts options
	log  zerolog.Logger

	// limiter, WithCommandInterval ayarlıysa komutlar arası aralığı korur.
	limiter *rate.Limiter

	// mu, bütün bir komut turunu (yaz + yanıtı topla) kapsar.
	mu syncutil.Mutex

	// link, aktif bağlantıdır. Yalnızca mu tutulurken değişir.
	link link

	// state, kilit beklemeden okunabilsin diye atomiktir.
	state atomic.Int32
}

// NewTransport, TCP üzerinden konuşan yeni bir Transport oluşturur.
// Bağlantı henüz kurulmaz; Connect() çağrılmalıdır.
func NewTransport(host string, port int, options ...Option) *Transport {
	t := &Transport{
		host: host,
		port: port,
	}
	t.applyOptions(options)
	return t
}

// NewSerialTransport, seri port üzerinden konuşan yeni bir Transport
// oluşturur. path, "/dev/ttyUSB0" veya "COM3" gibi bir port adıdır.
func NewSerialTransport(path string, baud BaudRate, options ...Option) *Transport {
	t := &Transport{
		serialPath: path,
		baudRate:   baud,
	}
	t.applyOptions(options)
	return t
}

func (t *Transport) applyOptions(options []Option) {
	t.opts = defaultOptions()
	for _, opt := range options {
		opt(&t.opts)
	}
	t.log = t.opts.logger.With().Str("component", "blackbird").Str("addr", t.addr()).Logger()
	if t.opts.commandInterval > 0 {
		t.limiter = rate.NewLimiter(rate.Every(t.opts.commandInterval), 1)
	}
}

// Connect, cihaza bağlanır ve cihazın açılışta gönderdiği karşılama
// mesajını tek bir okuma ile tüketir.
//
// Port, herhangi bir soket işleminden önce doğrulanır. Karşılama
// okumasında zaman aşımı olması hata değildir (bazı firmware'ler
// karşılama göndermez); soket hatası ise ConnectionError döner.
// Katı bir karşılama okuması zaman aşımını da ConnectionError sayardı;
// burada bilerek kabul edilir.
//
// Bağlantı zaten kuruluysa StateError döner. StateBroken durumundaki
// eski bağlantı kapatılıp yenisi kurulur.
func (t *Transport) Connect() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch st := t.State(); st {
	case StateConnected:
		return &StateError{Op: "connect", State: st}
	case StateBroken:
		_ = t.closeLink()
	}

	l, err := t.dial()
	if err != nil {
		return err
	}

	buf := make([]byte, recvBufferSize)
	n, _, err := l.Receive(buf, t.opts.timeout)
	if err != nil {
		_ = l.Close()
		return &ConnectionError{Addr: t.addr(), Err: fmt.Errorf("karşılama mesajı okunamadı: %w", err)}
	}

	t.link = l
	t.setState(StateConnected)
	t.log.Debug().Int("banner_bytes", n).Msg("bağlantı kuruldu")
	return nil
}

func (t *Transport) dial() (link, error) {
	if t.serialPath != "" {
		if err := validateBaudRate(t.baudRate); err != nil {
			return nil, err
		}
		t.log.Debug().Int("baud", int(t.baudRate)).Msg("seri port açılıyor")
		port, err := t.opts.serialFactory(t.serialPath, serialMode(t.baudRate))
		if err != nil {
			return nil, &ConnectionError{Addr: t.addr(), Err: err}
		}
		return &serialLink{port: port}, nil
	}

	if err := validatePort(t.port); err != nil {
		return nil, err
	}
	if t.host == "" {
		return nil, &ValidationError{Param: "host", Value: t.host, Reason: "boş olamaz"}
	}

	t.log.Debug().Msg("TCP bağlantısı kuruluyor")
	l, err := dialTCP(t.addr(), t.opts.timeout)
	if err != nil {
		return nil, &ConnectionError{Addr: t.addr(), Err: err}
	}
	return l, nil
}

// SendLine, text'i olduğu gibi gönderir ve cihaz sessiz kalana kadar gelen
// her şeyi toplayıp döner.
//
// Protokolde yanıt sonu işareti yoktur. Her okuma çağrısı en fazla
// zaman aşımı kadar bekler; ilk boş bekleme yanıtın bittiği anlamına
// gelir. Bunun sonuçları:
//   - Parçaları arasında zaman aşımından uzun boşluk olan yanıt kesilir.
//   - Hiç yanıt vermeyen cihaz için sonuç boş string'dir, hata değildir
//     (WithEmptyReplyError ile değiştirilebilir).
//
// WithMaxReplyDuration ayarlıysa süre dolduğunda toplanan metin döner;
// geri kalan baytlar cihaz susana kadar okunup atılır.
//
// Soket hatalarında TransportError döner ve bağlantı StateBroken olur.
// Çözülemeyen baytlarda DecodeError döner; bağlantı kullanılabilir kalır.
func (t *Transport) SendLine(text string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if st := t.State(); st != StateConnected {
		return "", &StateError{Op: "send", State: st}
	}

	t.pace()

	log := t.log
	if log.Debug().Enabled() {
		log = log.With().Str("roundtrip", uuid.NewString()).Str("cmd", text).Logger()
	}
	start := time.Now()

	if err := t.link.Send([]byte(text), t.opts.timeout); err != nil {
		t.markBroken()
		log.Warn().Err(err).Msg("komut gönderilemedi")
		return "", &TransportError{Op: "write", Err: err}
	}

	var dec replyDecoder
	if err := t.collect(&dec); err != nil {
		t.markBroken()
		log.Warn().Err(err).Int("chunks", dec.chunks).Msg("yanıt okunamadı")
		return "", &TransportError{Op: "read", Err: err}
	}

	reply, err := dec.finish()
	log.Debug().
		Int("chunks", dec.chunks).
		Int("bytes", dec.bytes).
		Dur("elapsed", time.Since(start)).
		Msg("yanıt alındı")
	if err != nil {
		return "", err
	}

	if reply == "" && t.opts.emptyReplyErr {
		return "", ErrEmptyReply
	}
	return reply, nil
}

// collect, okuma döngüsüdür. Yalnızca iki çıkışı vardır: ilk gerçek
// recvIdle ve soket hatası.
//
// WithMaxReplyDuration sınırı dolunca yanıt metni orada kesilir, ancak
// döngü cihaz susana kadar okumaya devam eder ve gelen baytları atar.
// Böylece bir sonraki komut kendi yanıtını alır.
func (t *Transport) collect(dec *replyDecoder) error {
	buf := make([]byte, recvBufferSize)

	var deadline time.Time
	if t.opts.maxReply > 0 {
		deadline = time.Now().Add(t.opts.maxReply)
	}
	draining := false
	discarded := 0

	for {
		wait := t.opts.timeout
		if !deadline.IsZero() && !draining {
			if left := time.Until(deadline); left > 0 {
				wait = min(wait, left)
			} else {
				draining = true
				dec.truncate()
				t.log.Debug().Msg("yanıt toplama süresi doldu, kalan baytlar atılıyor")
			}
		}

		n, status, err := t.link.Receive(buf, wait)
		if n > 0 {
			if draining {
				discarded += n
			} else {
				dec.feed(buf[:n])
			}
		}
		if err != nil {
			return err
		}
		// Sınır yüzünden kısaltılmış bekleme sessizlik sayılmaz.
		if status == recvIdle && wait == t.opts.timeout {
			if discarded > 0 {
				t.log.Debug().Int("discarded", discarded).Msg("yanıt sınırı aşıldı")
			}
			return nil
		}
	}
}

// pace, WithCommandInterval ayarlıysa bir sonraki komut için bekler.
func (t *Transport) pace() {
	if t.limiter == nil {
		return
	}
	if d := t.limiter.Reserve().Delay(); d > 0 {
		time.Sleep(d)
	}
}

// Close, bağlantıyı kapatır ve Transport'u StateDisconnected durumuna
// getirir. Birden fazla çağrılabilir.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closeLink()
}

// closeLink, bağlantıyı kapatır (mu tutulurken çağrılır).
func (t *Transport) closeLink() error {
	t.setState(StateDisconnected)
	if t.link == nil {
		return nil
	}
	err := t.link.Close()
	t.link = nil
	return err
}

func (t *Transport) markBroken() {
	t.setState(StateBroken)
}

func (t *Transport) setState(s State) {
	t.state.Store(int32(s))
}

// State, bağlantının o anki durumunu döner. Kilit beklemez.
func (t *Transport) State() State {
	return State(t.state.Load())
}

// IsConnected, bağlantının komut göndermeye hazır olup olmadığını döner.
func (t *Transport) IsConnected() bool {
	return t.State() == StateConnected
}

// Host, cihazın adresini döner.
func (t *Transport) Host() string {
	return t.host
}

// Port, cihazın TCP port numarasını döner.
func (t *Transport) Port() int {
	return t.port
}

// Timeout, yanıt sonunu belirleyen sessizlik süresidir.
func (t *Transport) Timeout() time.Duration {
	return t.opts.timeout
}

func (t *Transport) addr() string {
	if t.serialPath != "" {
		return t.serialPath
	}
	return net.JoinHostPort(t.host, strconv.Itoa(t.port))
}
