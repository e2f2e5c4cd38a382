package ili9486

import (
	"errors"
	"testing"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// event is one observable change on the wire.
type event struct {
	kind    string // "tx", "dc", "cs", "rst" or "sleep"
	level   gpio.Level
	data    []byte
	dc, cs  gpio.Level // Line levels when a tx happened
	pending int        // Bytes queued when DC changed
	d       time.Duration
}

// wire records everything the driver does to the pins, the SPI connection
// and the clock, in order.
type wire struct {
	events  []event
	dc, cs  gpio.Level
	pending func() int
}

func (w *wire) sleep(d time.Duration) {
	w.events = append(w.events, event{kind: "sleep", d: d})
}

func (w *wire) clear() {
	w.events = nil
}

// op is a command as the controller sees it: the opcode and every data byte
// that followed it, across brackets.
type op struct {
	cmd  byte
	data []byte
}

func (w *wire) ops() []op {
	var out []op
	for _, e := range w.events {
		if e.kind != "tx" {
			continue
		}
		for _, b := range e.data {
			if e.dc == gpio.Low {
				out = append(out, op{cmd: b})
				continue
			}
			if len(out) == 0 {
				out = append(out, op{})
			}
			out[len(out)-1].data = append(out[len(out)-1].data, b)
		}
	}
	return out
}

// brackets returns how many times CS was asserted.
func (w *wire) brackets() int {
	n := 0
	for _, e := range w.events {
		if e.kind == "cs" && e.level == gpio.Low {
			n++
		}
	}
	return n
}

func (w *wire) txs() []event {
	var out []event
	for _, e := range w.events {
		if e.kind == "tx" {
			out = append(out, e)
		}
	}
	return out
}

// recPin is a test pin that logs every level it is driven to.
type recPin struct {
	*gpiotest.Pin
	w    *wire
	kind string
}

func newRecPin(w *wire, kind string) *recPin {
	return &recPin{Pin: &gpiotest.Pin{N: kind}, w: w, kind: kind}
}

func (p *recPin) Out(l gpio.Level) error {
	e := event{kind: p.kind, level: l}
	switch p.kind {
	case "dc":
		p.w.dc = l
		if p.w.pending != nil {
			e.pending = p.w.pending()
		}
	case "cs":
		p.w.cs = l
	}
	p.w.events = append(p.w.events, e)
	return p.Pin.Out(l)
}

// fakeConn records each transfer along with the DC and CS levels at the time.
type fakeConn struct {
	w     *wire
	limit int
}

func (c *fakeConn) String() string      { return "fakeConn" }
func (c *fakeConn) Duplex() conn.Duplex { return conn.Half }
func (c *fakeConn) MaxTxSize() int      { return c.limit }

func (c *fakeConn) Tx(w, r []byte) error {
	c.w.events = append(c.w.events, event{
		kind: "tx",
		data: append([]byte(nil), w...),
		dc:   c.w.dc,
		cs:   c.w.cs,
	})
	return nil
}

func (c *fakeConn) TxPackets(p []spi.Packet) error {
	return errors.New("fakeConn: TxPackets not supported")
}

// stuckConn never completes a transfer until release is closed.
type stuckConn struct {
	release chan struct{}
}

func (c *stuckConn) String() string      { return "stuckConn" }
func (c *stuckConn) Duplex() conn.Duplex { return conn.Half }

func (c *stuckConn) Tx(w, r []byte) error {
	<-c.release
	return nil
}

// fakePort hands out a fakeConn and remembers how it was connected.
type fakePort struct {
	c    *fakeConn
	err  error
	f    physic.Frequency
	mode spi.Mode
	bits int
}

func (p *fakePort) String() string                     { return "fakePort" }
func (p *fakePort) LimitSpeed(f physic.Frequency) error { return nil }

func (p *fakePort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.f, p.mode, p.bits = f, mode, bits
	return p.c, nil
}

// newTestDev returns an uninitialized device wired to a recording bus, with
// DC, CS and RST pins and a virtual clock. The construction itself is not
// left in the log.
func newTestDev(t *testing.T, limit int) (*Dev, *wire) {
	t.Helper()
	w := &wire{}
	port := &fakePort{c: &fakeConn{w: w, limit: limit}}
	d, err := New(port, newRecPin(w, "dc"), &Opts{
		CS:    newRecPin(w, "cs"),
		RST:   newRecPin(w, "rst"),
		Sleep: w.sleep,
	})
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	w.pending = d.bus.pending
	w.clear()
	return d, w
}

// newReadyDev returns an initialized device with an empty log.
func newReadyDev(t *testing.T) (*Dev, *wire) {
	t.Helper()
	d, w := newTestDev(t, 0)
	if err := d.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	w.clear()
	return d, w
}
