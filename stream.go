package ili9486

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/devices/v3/ili9486/rgb565"
)

// StreamFill sends n pixels of color c into the window set by the last
// SetWindow. n is normally the window's width times its height.
func (d *Dev) StreamFill(n int, c rgb565.Color) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ready(); err != nil {
		return err
	}
	return d.streamFill(n, c)
}

// StreamBuffer sends pix into the window set by the last SetWindow.
func (d *Dev) StreamBuffer(pix []rgb565.Color) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ready(); err != nil {
		return err
	}
	return d.streamRows(pix, len(pix), 1, len(pix))
}

// streamFill pushes n copies of c back to back in one data bracket.
func (d *Dev) streamFill(n int, c rgb565.Color) error {
	if n <= 0 {
		return nil
	}
	return d.bracket(func() error {
		if err := d.setMode(gpio.High); err != nil {
			return err
		}
		return d.bus.repeatWord(uint16(c), n)
	})
}

// streamRows pushes h rows of w pixels from pix, whose rows start stride
// pixels apart, in one data bracket.
func (d *Dev) streamRows(pix []rgb565.Color, w, h, stride int) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	return d.bracket(func() error {
		if err := d.setMode(gpio.High); err != nil {
			return err
		}
		for y := 0; y < h; y++ {
			for _, c := range pix[y*stride : y*stride+w] {
				if err := d.bus.sendWord(uint16(c)); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
