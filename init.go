package ili9486

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Controller opcodes used by this driver.
const (
	sleepIn             = 0x10
	sleepOut            = 0x11
	inversionOff        = 0x20
	inversionOn         = 0x21
	displayOff          = 0x28
	displayOn           = 0x29
	columnAddressSet    = 0x2A
	pageAddressSet      = 0x2B
	memoryWrite         = 0x2C
	memoryAccessControl = 0x36
	pixelFormatSet      = 0x3A
	interfaceModeCtrl   = 0xB0
	powerControl3       = 0xC2
	vcomControl         = 0xC5
	positiveGamma       = 0xE0
	negativeGamma       = 0xE1
)

// Memory access control bits.
const (
	madctlMV  = 0x20 // Row/column exchange
	madctlBGR = 0x08 // Blue-green-red panel order
)

// pixelFormat16 selects 16 bits per pixel on both interfaces.
const pixelFormat16 = 0x55

// Timing for the hardware reset pulse and the settling periods mandated by
// the controller. The low phase must last at least 10µs and the controller
// needs at least 5ms after release, 120ms before sleep-out is accepted.
const (
	resetHigh   = 5 * time.Millisecond
	resetLow    = 5 * time.Millisecond
	resetSettle = 120 * time.Millisecond
	wakeSettle  = 150 * time.Millisecond
)

// command is one entry of the initialization sequence.
type command struct {
	op    byte
	data  []byte
	delay time.Duration // Settling time once the command is on the wire
}

// initSequence brings the panel from reset to displaying. The order matters:
// the controller ignores register writes until it is out of sleep, and the
// pixel format must be set before anything is displayed.
var initSequence = []command{
	{op: interfaceModeCtrl, data: []byte{0x00}},
	{op: sleepOut, delay: wakeSettle},
	{op: pixelFormatSet, data: []byte{pixelFormat16}},
	// Must match rgb565 packing or red and blue swap across the whole panel.
	{op: memoryAccessControl, data: []byte{madctlMV | madctlBGR}},
	{op: powerControl3, data: []byte{0x44}},
	{op: vcomControl, data: []byte{0x00, 0x00, 0x00, 0x00}},
	{op: positiveGamma, data: []byte{
		0x0F, 0x1F, 0x1C, 0x0C, 0x0F, 0x08, 0x48, 0x98,
		0x37, 0x0A, 0x13, 0x04, 0x11, 0x0D, 0x00,
	}},
	{op: negativeGamma, data: []byte{
		0x0F, 0x32, 0x2E, 0x0B, 0x0D, 0x05, 0x47, 0x75,
		0x37, 0x06, 0x10, 0x03, 0x24, 0x20, 0x00,
	}},
	{op: displayOn, delay: wakeSettle},
}

// Init resets the panel and programs its configuration registers.
//
// Init must be called once before any drawing operation. Calling it again on
// an initialized device does nothing; after Halt it runs the full sequence
// again.
func (d *Dev) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized && !d.halted {
		return nil
	}
	if d.bus.wedged {
		return ErrBusTimeout
	}
	if err := d.reset(); err != nil {
		return err
	}
	err := d.bracket(func() error {
		for _, c := range initSequence {
			if err := d.writeCommand(c.op, c.data...); err != nil {
				return fmt.Errorf("ili9486: init command 0x%02X: %w", c.op, err)
			}
			if c.delay > 0 {
				d.sleep(c.delay)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	d.initialized = true
	d.halted = false
	return nil
}

// reset pulses the hardware reset line, if one is wired.
func (d *Dev) reset() error {
	if d.rst == nil {
		return nil
	}
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("ili9486: failed to pull RST high: %w", err)
	}
	d.sleep(resetHigh)

	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("ili9486: failed to pull RST low: %w", err)
	}
	d.sleep(resetLow)

	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("ili9486: failed to pull RST high: %w", err)
	}
	d.sleep(resetSettle)
	return nil
}
