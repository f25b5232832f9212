package blackbird

import (
	"bytes"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testTimeout, hızlı testler için kullanılan sessizlik penceresidir.
const testTimeout = 100 * time.Millisecond

// received, sahte cihazın aldığı bir komuttur.
type received struct {
	cmd string
	at  time.Time
	// prevDone, bir önceki komutun işleyicisinin bittiği andır.
	prevDone time.Time
}

// stubDevice, '!' ile biten komutları okuyup işleyiciye veren sahte bir
// Blackbird cihazıdır. İşleyici, bağlantının okuma goroutine'inde çalışır;
// bu yüzden parçalar arasında uyuyabilir.
type stubDevice struct {
	ln     net.Listener
	banner string
	handle func(cmd string, conn net.Conn)

	mu       sync.Mutex
	cmds     []received
	conns    []net.Conn
	accepted int
	closed   bool

	wg sync.WaitGroup
}

func newStubDevice(t *testing.T, banner string, handle func(cmd string, conn net.Conn)) *stubDevice {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	d := &stubDevice{ln: ln, banner: banner, handle: handle}
	d.wg.Add(1)
	go d.acceptLoop()
	t.Cleanup(d.close)
	return d
}

func (d *stubDevice) port() int {
	return d.ln.Addr().(*net.TCPAddr).Port
}

func (d *stubDevice) acceptLoop() {
	defer d.wg.Done()
	for {
		conn, err := d.ln.Accept()
		if err != nil {
			return
		}

		d.mu.Lock()
		if d.closed {
			d.mu.Unlock()
			_ = conn.Close()
			return
		}
		d.conns = append(d.conns, conn)
		d.accepted++
		d.wg.Add(1)
		d.mu.Unlock()

		go d.serve(conn)
	}
}

func (d *stubDevice) serve(conn net.Conn) {
	defer d.wg.Done()

	if d.banner != "" {
		if _, err := conn.Write([]byte(d.banner)); err != nil {
			return
		}
	}

	var pending []byte
	var lastDone time.Time
	buf := make([]byte, 512)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			return
		}
		pending = append(pending, buf[:n]...)

		for {
			i := bytes.IndexByte(pending, '!')
			if i < 0 {
				break
			}
			cmd := string(pending[:i+1])
			pending = pending[i+1:]

			d.mu.Lock()
			d.cmds = append(d.cmds, received{cmd: cmd, at: time.Now(), prevDone: lastDone})
			d.mu.Unlock()

			if d.handle != nil {
				d.handle(cmd, conn)
			}
			lastDone = time.Now()
		}
	}
}

func (d *stubDevice) commands() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.cmds))
	for i, r := range d.cmds {
		out[i] = r.cmd
	}
	return out
}

func (d *stubDevice) history() []received {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]received(nil), d.cmds...)
}

func (d *stubDevice) connections() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.accepted
}

func (d *stubDevice) close() {
	_ = d.ln.Close()
	d.mu.Lock()
	d.closed = true
	for _, c := range d.conns {
		_ = c.Close()
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// writeChunks, parçaları aralarında gap bırakarak ayrı ayrı yazar.
func writeChunks(w io.Writer, gap time.Duration, chunks ...string) {
	for i, c := range chunks {
		if i > 0 {
			time.Sleep(gap)
		}
		if _, err := w.Write([]byte(c)); err != nil {
			return
		}
	}
}

// reply, her komuta aynı metinle yanıt veren bir işleyicidir.
func reply(text string) func(string, net.Conn) {
	return func(_ string, conn net.Conn) {
		_, _ = conn.Write([]byte(text))
	}
}

// connectedTransport, sahte cihaza bağlı bir Transport döner.
func connectedTransport(t *testing.T, d *stubDevice, opts ...Option) *Transport {
	t.Helper()

	opts = append([]Option{WithTimeout(testTimeout)}, opts...)
	tr := NewTransport("127.0.0.1", d.port(), opts...)
	require.NoError(t, tr.Connect())
	t.Cleanup(func() { _ = tr.Close() })
	return tr
}

// freePort, dinlenmeyen bir yerel port döner.
func freePort(t *testing.T) int {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}
