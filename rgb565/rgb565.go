package rgb565

import (
	"image"
	"image/color"
)

// Color is a 16-bit color in 5-6-5 packing.
type Color uint16

// Named colors.
const (
	Black   Color = 0x0000
	Navy    Color = 0x000F
	Blue    Color = 0x001F
	Green   Color = 0x07E0
	Cyan    Color = 0x07FF
	Maroon  Color = 0x7800
	Gray    Color = 0x7BEF
	Red     Color = 0xF800
	Magenta Color = 0xF81F
	Yellow  Color = 0xFFE0
	White   Color = 0xFFFF
)

// RGB packs 8-bit channels into a Color, dropping the low bits of each channel.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGBA implements color.Color.
// Each channel is scaled from its packed width to 16 bits.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = (uint32(c>>11) & 0x1F) * 0xFFFF / 0x1F
	g = (uint32(c>>5) & 0x3F) * 0xFFFF / 0x3F
	b = (uint32(c) & 0x1F) * 0xFFFF / 0x1F
	return r, g, b, 0xFFFF
}

// Hi returns the byte sent first on the wire.
func (c Color) Hi() byte { return byte(c >> 8) }

// Lo returns the byte sent second on the wire.
func (c Color) Lo() byte { return byte(c) }

func toRGB565(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return Color((r>>11)<<11 | (g>>10)<<5 | b>>11)
}

// Model converts colors to Color.
var Model = color.ModelFunc(toRGB565)

// Image is an in-memory image of Color values in row-major order.
type Image struct {
	Pix    []Color         // Pixel data
	Stride int             // Pixels per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a new Image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]Color, w*h),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the Color of the pixel at (x, y).
func (p *Image) RGB565At(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Black
	}
	return p.Pix[p.PixOffset(x, y)]
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, Model.Convert(c).(Color))
}

// SetRGB565 sets the pixel at (x, y) without color conversion.
func (p *Image) SetRGB565(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = c
}

// PixOffset returns the index of the pixel at (x, y) in Pix.
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}
