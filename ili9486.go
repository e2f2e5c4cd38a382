package ili9486

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ili9486/rgb565"
)

// Panel dimensions in pixels.
const (
	Width  = 320
	Height = 480
)

// DefaultHz is the SPI clock used when Opts.Hz is zero.
const DefaultHz = 10 * physic.MegaHertz

// Opts is the configuration for the ILI9486 display.
type Opts struct {
	// Optional control lines
	RST gpio.PinOut // Hardware reset, active low (nil if not wired)
	CS  gpio.PinOut // Chip select, active low (nil if driven by the SPI port)

	// SPI clock (default: 10MHz)
	Hz physic.Frequency

	// BusTimeout bounds each SPI transfer. Zero waits as long as needed.
	BusTimeout time.Duration

	// Sleep waits out reset and settling delays (default: time.Sleep).
	Sleep func(time.Duration)
}

// Dev is the device handle for the ILI9486 display.
type Dev struct {
	mu sync.Mutex

	// Communication
	bus *bus
	dc  gpio.PinOut // Data/Command pin
	cs  gpio.PinOut // Chip select pin (optional)
	rst gpio.PinOut // Reset pin (optional)

	sleep func(time.Duration)
	rect  image.Rectangle

	// DC level last driven
	dcLevel gpio.Level
	dcSet   bool

	// State
	initialized bool
	halted      bool
}

// New creates a device connected via SPI without touching the panel.
// Init must be called before drawing.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers,
// most significant bit first. The dc (Data/Command) GPIO pin must be provided.
//
// opts can be nil to use defaults.
func New(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if dc == nil {
		return nil, errors.New("ili9486: dc pin is required")
	}
	hz := opts.Hz
	if hz == 0 {
		hz = DefaultHz
	}
	c, err := p.Connect(hz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ili9486: failed to connect SPI: %w", err)
	}
	return newDev(c, dc, opts)
}

// NewSPI creates a device connected via SPI and initializes the panel.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	d, err := New(p, dc, opts)
	if err != nil {
		return nil, err
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

func newDev(c conn.Conn, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	d := &Dev{
		bus:   newBus(c, opts.BusTimeout),
		dc:    dc,
		cs:    opts.CS,
		rst:   opts.RST,
		sleep: opts.Sleep,
		rect:  image.Rect(0, 0, Width, Height),
	}
	if d.sleep == nil {
		d.sleep = time.Sleep
	}

	// Idle state: deselected, data mode.
	if d.cs != nil {
		if err := d.cs.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("ili9486: failed to pull CS high: %w", err)
		}
	}
	if err := d.setMode(gpio.High); err != nil {
		return nil, err
	}
	return d, nil
}

// ready reports why drawing is not possible, if it is not.
func (d *Dev) ready() error {
	switch {
	case d.bus.wedged:
		return ErrBusTimeout
	case d.halted:
		return ErrHalted
	case !d.initialized:
		return ErrNotInitialized
	}
	return nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ready(); err != nil {
		return err
	}
	op := byte(inversionOff)
	if invert {
		op = inversionOn
	}
	return d.bracket(func() error {
		return d.writeCommand(op)
	})
}

// Halt turns the display off and puts the controller to sleep.
// After calling Halt, drawing fails with ErrHalted until Init is called again.
// Halting a device that was never initialized returns ErrNotInitialized and
// sends nothing.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.bus.wedged {
		return ErrBusTimeout
	}
	if !d.initialized {
		return ErrNotInitialized
	}
	d.halted = true
	return d.bracket(func() error {
		if err := d.writeCommand(displayOff); err != nil {
			return err
		}
		return d.writeCommand(sleepIn)
	})
}

var _ display.Drawer = &Dev{}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ili9486.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
