// Package ili9486 controls an ILI9486 TFT LCD display via SPI.
//
// The ILI9486 is a 320×480 TFT controller. This driver runs it at 16 bits per
// pixel (5-6-5 packing, see package rgb565) and implements the display.Drawer
// interface from periph.io.
//
// # Hardware Connection
//
// Connect the ILI9486 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCK         → SPI Clock (SCLK)
//	SDI/MOSI    → SPI Data (MOSI)
//	DC/RS       → GPIO (any available pin)
//	CS          → SPI Chip Select, or a GPIO passed as Opts.CS
//	RST         → Optional: GPIO for hardware reset
//
// The bus runs in Mode0 (clock idle low, data sampled on the leading edge),
// 8 bits per word, most significant bit first, at 10MHz unless Opts.Hz says
// otherwise.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ili9486"
//		"periph.io/x/devices/v3/ili9486/rgb565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Create and initialize the device
//		dev, _ := ili9486.NewSPI(spiBus, gpioreg.ByName("GPIO24"), &ili9486.Opts{
//			RST: gpioreg.ByName("GPIO25"),
//		})
//		defer dev.Halt()
//
//		dev.FillScreen(rgb565.Black)
//		dev.FillRect(0, 450, 320, 30, rgb565.Green)
//		dev.DrawPixel(319, 479, rgb565.White)
//	}
//
// # Initialization
//
// Init pulses RST (when provided) and programs the controller: interface
// mode, sleep-out, 16-bit pixel format, memory access control, power and VCOM
// trim, the positive and negative gamma tables, then display-on. Sleep-out
// and display-on are each followed by a 150ms settling delay. Drawing before
// Init returns ErrNotInitialized.
//
// Delays go through Opts.Sleep so tests can substitute a virtual clock.
//
// # Drawing
//
// Every drawing operation first programs an addressing window, then streams
// the window's pixels back to back in a second transaction. The controller
// keeps its write pointer between the two, so pixels are never re-addressed
// individually:
//
//	dev.SetWindow(10, 20, 11, 21)
//	dev.StreamBuffer([]rgb565.Color{a, b, c, d})
//
// Rectangles extending past the right or bottom edge are clipped. A rectangle
// anchored off the panel is rejected with ErrOutOfBounds and nothing is sent.
// DrawImage crops a clipped image correctly, using its full width as the row
// pitch.
//
// # Errors
//
// Transfers wait as long as the SPI driver needs unless Opts.BusTimeout is
// set, in which case a stuck transfer yields ErrBusTimeout and the device
// refuses further work.
package ili9486
