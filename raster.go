package ili9486

import (
	"image"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/devices/v3/ili9486/rgb565"
)

// DrawPixel sets the pixel at (x, y) to c.
func (d *Dev) DrawPixel(x, y int, c rgb565.Color) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ready(); err != nil {
		return err
	}
	if !onPanel(x, y) {
		return ErrOutOfBounds
	}
	if err := d.setWindow(x, y, x, y); err != nil {
		return err
	}
	return d.streamFill(1, c)
}

// FillRect fills the w×h rectangle at (x, y) with c.
//
// The rectangle is clipped to the panel. ErrOutOfBounds is returned only
// when (x, y) itself is off the panel.
func (d *Dev) FillRect(x, y, w, h int, c rgb565.Color) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ready(); err != nil {
		return err
	}
	w, h, err := clip(x, y, w, h)
	if err != nil || w == 0 || h == 0 {
		return err
	}
	if err := d.setWindow(x, y, x+w-1, y+h-1); err != nil {
		return err
	}
	return d.streamFill(w*h, c)
}

// FillScreen fills the whole panel with c.
func (d *Dev) FillScreen(c rgb565.Color) error {
	return d.FillRect(0, 0, Width, Height, c)
}

// DrawImage copies the w×h row-major image pix to (x, y).
//
// Clipping follows FillRect. When the image is clipped, the visible part is
// cropped from pix using w as the row pitch.
func (d *Dev) DrawImage(x, y, w, h int, pix []rgb565.Color) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ready(); err != nil {
		return err
	}
	cw, ch, err := clip(x, y, w, h)
	if err != nil || cw == 0 || ch == 0 {
		return err
	}
	// cw > 0 implies w > 0; dividing avoids overflowing w*h.
	if h > len(pix)/w {
		return ErrShortBuffer
	}
	if err := d.setWindow(x, y, x+cw-1, y+ch-1); err != nil {
		return err
	}
	return d.streamRows(pix, cw, ch, w)
}

// Draw draws src onto the panel region dst, src point sp aligned with
// dst.Min. dst is clipped to the panel.
//
// *rgb565.Image sources are streamed without conversion and *image.Uniform
// sources as a fill; anything else is converted pixel by pixel.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ready(); err != nil {
		return err
	}

	r := dst.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dst.Min))

	if err := d.setWindow(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1); err != nil {
		return err
	}

	switch img := src.(type) {
	case *image.Uniform:
		return d.streamFill(r.Dx()*r.Dy(), rgb565.Model.Convert(img.C).(rgb565.Color))
	case *rgb565.Image:
		sr := image.Rectangle{Min: sp, Max: sp.Add(r.Size())}
		if sr.In(img.Rect) {
			return d.streamRows(img.Pix[img.PixOffset(sp.X, sp.Y):], r.Dx(), r.Dy(), img.Stride)
		}
	}

	return d.bracket(func() error {
		if err := d.setMode(gpio.High); err != nil {
			return err
		}
		for y := 0; y < r.Dy(); y++ {
			for x := 0; x < r.Dx(); x++ {
				c := rgb565.Model.Convert(src.At(sp.X+x, sp.Y+y)).(rgb565.Color)
				if err := d.bus.sendWord(uint16(c)); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func onPanel(x, y int) bool {
	return x >= 0 && y >= 0 && x < Width && y < Height
}

// clip returns the size of the part of the w×h rectangle at (x, y) that lies
// on the panel. Negative sizes clip to zero.
func clip(x, y, w, h int) (int, int, error) {
	if !onPanel(x, y) {
		return 0, 0, ErrOutOfBounds
	}
	w = min(max(w, 0), Width-x)
	h = min(max(h, 0), Height-y)
	return w, h, nil
}
