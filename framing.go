package ili9486

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Every exchange with the panel is bracketed: selectStart, one or more
// command or data writes, selectEnd. The DC line tells the controller whether
// a byte is an opcode (low) or a parameter or pixel (high). It is only ever
// changed with the bus idle.

// bracket runs fn with the panel selected. The panel is deselected once the
// bus is idle, even when fn fails.
func (d *Dev) bracket(fn func() error) error {
	if err := d.selectStart(); err != nil {
		return err
	}
	err := fn()
	if endErr := d.selectEnd(); err == nil {
		err = endErr
	}
	return err
}

// selectStart asserts CS. It does nothing when the SPI port drives CS.
func (d *Dev) selectStart() error {
	if d.cs == nil {
		return nil
	}
	if err := d.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("ili9486: failed to pull CS low: %w", err)
	}
	return nil
}

// selectEnd waits for the bus to drain then deasserts CS.
func (d *Dev) selectEnd() error {
	err := d.bus.waitIdle()
	if d.cs == nil {
		return err
	}
	if csErr := d.cs.Out(gpio.High); csErr != nil && err == nil {
		err = fmt.Errorf("ili9486: failed to pull CS high: %w", csErr)
	}
	return err
}

// setMode drives DC to l after draining anything queued under the old level.
func (d *Dev) setMode(l gpio.Level) error {
	if d.bus.pending() > 0 {
		if err := d.bus.waitIdle(); err != nil {
			return err
		}
	}
	if d.dcSet && d.dcLevel == l {
		return nil
	}
	if err := d.dc.Out(l); err != nil {
		return fmt.Errorf("ili9486: failed to set DC %s: %w", l, err)
	}
	d.dcLevel, d.dcSet = l, true
	return nil
}

// writeCommand sends op followed by its parameters, waiting for the bus to
// go idle after each phase.
func (d *Dev) writeCommand(op byte, params ...byte) error {
	if err := d.setMode(gpio.Low); err != nil {
		return err
	}
	if err := d.bus.sendByte(op); err != nil {
		return err
	}
	if err := d.bus.waitIdle(); err != nil {
		return err
	}
	if len(params) == 0 {
		return nil
	}
	return d.writeData(params...)
}

// writeData sends parameter bytes in data mode.
func (d *Dev) writeData(p ...byte) error {
	if err := d.setMode(gpio.High); err != nil {
		return err
	}
	for _, v := range p {
		if err := d.bus.sendByte(v); err != nil {
			return err
		}
	}
	return d.bus.waitIdle()
}

// writeDataWord sends v in data mode, most significant byte first.
func (d *Dev) writeDataWord(v uint16) error {
	return d.writeData(byte(v>>8), byte(v))
}
