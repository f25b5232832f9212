package blackbird

// Client, Transport üzerine komut zarflarını ve cihaz komutlarını ekler.
// Cihaz komutları (commands.go) parametreleri doğrular, gövdeyi kurar ve
// SendSystem ya da SendReport çağırır.
//
//	c := blackbird.NewClient("192.168.1.50", blackbird.DefaultPort)
//	if err := c.Connect(); err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	status, err := c.MatrixStatus()
type Client struct {
	t *Transport
}

// NewClient, TCP üzerinden konuşan bir Client oluşturur.
// Bağlantı henüz kurulmaz; Connect() çağrılmalıdır.
func NewClient(host string, port int, options ...Option) *Client {
	return &Client{t: NewTransport(host, port, options...)}
}

// NewSerialClient, seri port üzerinden konuşan bir Client oluşturur.
func NewSerialClient(path string, baud BaudRate, options ...Option) *Client {
	return &Client{t: NewSerialTransport(path, baud, options...)}
}

// NewClientWithTransport, hazır bir Transport'u sarar.
func NewClientWithTransport(t *Transport) *Client {
	return &Client{t: t}
}

// Transport, alttaki Transport'u döner.
func (c *Client) Transport() *Transport {
	return c.t
}

// Connect, Transport.Connect'i çağırır.
func (c *Client) Connect() error {
	return c.t.Connect()
}

// Close, bağlantıyı kapatır.
func (c *Client) Close() error {
	return c.t.Close()
}

// SendSystem, gövdeyi "s <gövde>!" olarak gönderir ve yanıtı değiştirmeden döner.
func (c *Client) SendSystem(body string) (string, error) {
	return c.t.SendLine(FormatSystem(body))
}

// SendReport, gövdeyi "r <gövde>!" olarak gönderir ve yanıtı değiştirmeden döner.
func (c *Client) SendReport(body string) (string, error) {
	return c.t.SendLine(FormatReport(body))
}
