package render

import "image/color"

// Global render configuration for colors and the logical canvas.
var (
	Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}

	// Logical canvas matches the 128x32 OLED panel; host backends scale it
	// up to whatever they drive.
	CanvasWidth  = 128
	CanvasHeight = 32
)
