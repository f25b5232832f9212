package blackbird

import (
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"go.bug.st/serial"
)

// recvStatus, tek bir okuma çağrısının sonucudur: ya veri geldi ya da
// zaman aşımı içinde hiçbir şey gelmedi (burst bitti).
type recvStatus int

const (
	recvData recvStatus = iota
	recvIdle
)

// link, Transport'un konuştuğu ham bayt kanalıdır. TCP ve seri port
// bu arayüzü uygular.
type link interface {
	// Send, p'nin tamamını yazar.
	Send(p []byte, timeout time.Duration) error
	// Receive, en fazla timeout kadar bekler. Zaman aşımı hata değildir;
	// recvIdle olarak döner.
	Receive(buf []byte, timeout time.Duration) (int, recvStatus, error)
	Close() error
}

// ─── TCP ────────────────────────────────────────────────────────────────────────

type tcpLink struct {
	conn net.Conn
}

func dialTCP(addr string, timeout time.Duration) (*tcpLink, error) {
	d := net.Dialer{Timeout: timeout}
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}

	// Komutlar kısa; Nagle gecikmesi istenmiyor.
	if tc, ok := conn.(*net.TCPConn); ok {
		if err := tc.SetNoDelay(true); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("TCP_NODELAY ayarlanamadı: %w", err)
		}
	}

	return &tcpLink{conn: conn}, nil
}

func (l *tcpLink) Send(p []byte, timeout time.Duration) error {
	if err := l.conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}
	_, err := l.conn.Write(p)
	return err
}

func (l *tcpLink) Receive(buf []byte, timeout time.Duration) (int, recvStatus, error) {
	if err := l.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return 0, recvData, err
	}

	n, err := l.conn.Read(buf)
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			if n > 0 {
				return n, recvData, nil
			}
			return 0, recvIdle, nil
		}
		return n, recvData, err
	}
	return n, recvData, nil
}

func (l *tcpLink) Close() error {
	return l.conn.Close()
}

// ─── Seri Port ──────────────────────────────────────────────────────────────────

// SerialPort, seri port işlemleri için kullanılan arayüzdür
// (testlerde sahte port kullanmak için).
type SerialPort interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
}

// SerialPortFactory, bir seri port bağlantısı açar.
type SerialPortFactory func(path string, mode *serial.Mode) (SerialPort, error)

// DefaultSerialPortFactory, gerçek seri portu go.bug.st/serial ile açar.
func DefaultSerialPortFactory(path string, mode *serial.Mode) (SerialPort, error) {
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("seri port açılamadı: %w", err)
	}
	return port, nil
}

// serialMode, cihazın RS-232 ayarlarıdır: 8 veri biti, parite yok, 1 stop biti.
func serialMode(baud BaudRate) *serial.Mode {
	return &serial.Mode{
		BaudRate: int(baud),
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}

type serialLink struct {
	port SerialPort
}

// Send, seri portta yazma zaman aşımı yoktur; timeout yok sayılır.
func (l *serialLink) Send(p []byte, _ time.Duration) error {
	for len(p) > 0 {
		n, err := l.port.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// Receive, go.bug.st/serial zaman aşımında (0, nil) döner.
func (l *serialLink) Receive(buf []byte, timeout time.Duration) (int, recvStatus, error) {
	if err := l.port.SetReadTimeout(timeout); err != nil {
		return 0, recvData, err
	}

	n, err := l.port.Read(buf)
	if err != nil {
		return n, recvData, err
	}
	if n == 0 {
		return 0, recvIdle, nil
	}
	return n, recvData, nil
}

func (l *serialLink) Close() error {
	return l.port.Close()
}
