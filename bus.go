package ili9486

import (
	"time"

	"periph.io/x/conn/v3"
)

// defaultTxSize is used when the connection does not report a limit.
const defaultTxSize = 4096

// bus queues bytes for the panel and hands them to the SPI connection.
//
// sendByte returns once the byte is queued; a full queue is transmitted
// first. waitIdle returns once everything queued has left the host. Between
// the two, nothing is in flight, so callers may change the DC or CS lines
// only when pending() is zero.
type bus struct {
	c       conn.Conn
	buf     []byte
	timeout time.Duration
	wedged  bool
}

func newBus(c conn.Conn, timeout time.Duration) *bus {
	size := 0
	if l, ok := c.(conn.Limits); ok {
		size = l.MaxTxSize()
	}
	if size <= 0 {
		size = defaultTxSize
	}
	// Keep pixel pairs from straddling two transfers.
	if size > 1 {
		size &^= 1
	}
	return &bus{
		c:       c,
		buf:     make([]byte, 0, size),
		timeout: timeout,
	}
}

// pending returns the number of queued bytes not yet transmitted.
func (b *bus) pending() int {
	return len(b.buf)
}

func (b *bus) sendByte(v byte) error {
	if len(b.buf) == cap(b.buf) {
		if err := b.flush(); err != nil {
			return err
		}
	}
	b.buf = append(b.buf, v)
	return nil
}

// sendWord queues v most significant byte first.
func (b *bus) sendWord(v uint16) error {
	if err := b.sendByte(byte(v >> 8)); err != nil {
		return err
	}
	return b.sendByte(byte(v))
}

// repeatWord queues v n times, filling the queue a whole transfer at a time.
func (b *bus) repeatWord(v uint16, n int) error {
	hi, lo := byte(v>>8), byte(v)
	for n > 0 {
		if cap(b.buf)-len(b.buf) < 2 {
			if err := b.flush(); err != nil {
				return err
			}
			if cap(b.buf) < 2 {
				// One byte transfers; nothing to batch.
				if err := b.sendByte(hi); err != nil {
					return err
				}
				if err := b.sendByte(lo); err != nil {
					return err
				}
				n--
				continue
			}
		}
		room := (cap(b.buf) - len(b.buf)) / 2
		if room > n {
			room = n
		}
		for i := 0; i < room; i++ {
			b.buf = append(b.buf, hi, lo)
		}
		n -= room
	}
	return nil
}

func (b *bus) waitIdle() error {
	return b.flush()
}

func (b *bus) flush() error {
	if b.wedged {
		return ErrBusTimeout
	}
	if len(b.buf) == 0 {
		return nil
	}
	err := b.tx(b.buf)
	if b.wedged {
		// The stuck transfer still owns the old slice.
		b.buf = make([]byte, 0, cap(b.buf))
		return err
	}
	b.buf = b.buf[:0]
	return err
}

// tx transmits p, giving up after b.timeout when one is set.
func (b *bus) tx(p []byte) error {
	if b.timeout <= 0 {
		return b.c.Tx(p, nil)
	}
	done := make(chan error, 1)
	go func() {
		done <- b.c.Tx(p, nil)
	}()
	t := time.NewTimer(b.timeout)
	defer t.Stop()
	select {
	case err := <-done:
		return err
	case <-t.C:
		b.wedged = true
		return ErrBusTimeout
	}
}
