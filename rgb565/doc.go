// Package rgb565 provides the 16-bit color format used by the ILI9486 display.
//
// The ILI9486 is programmed for 16 bits per pixel: 5 bits red, 6 bits green
// and 5 bits blue packed into a single word. On the wire each pixel is sent
// most significant byte first.
//
// Bit layout of a Color:
//
//	bit:   15 ........ 11 10 ......... 5 4 ......... 0
//	       R4 R3 R2 R1 R0 G5 G4 G3 G2 G1 G0 B4 B3 B2 B1 B0
//
// This package provides:
//
// - Color: a packed 5-6-5 color with named constants (Black, Red, Green, ...)
// - Model: a color model converting standard Go colors to Color
// - Image: an image.Image implementation whose rows can be streamed to the panel as is
//
// Example usage:
//
//	// Create a 32x32 sprite
//	img := rgb565.NewImage(image.Rect(0, 0, 32, 32))
//
//	// Set a pixel
//	img.SetRGB565(4, 4, rgb565.Cyan)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(rgb565.Red), image.Point{}, draw.Src)
package rgb565
