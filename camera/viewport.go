// Package camera maps the fixed-aspect canvas into the host window.
package camera

import "math"

// MinCanvasWidth is the smallest canvas a resize will produce.
const MinCanvasWidth = 160

// Viewport is the canvas rectangle inside the host window.
// The canvas keeps a fixed aspect ratio and is letterboxed when the window
// proportions differ.
type Viewport struct {
	// Canvas size in window pixels
	Width, Height int

	// Letterbox offset of the canvas inside the window
	OffsetX, OffsetY int

	// Window dimensions
	WindowW, WindowH int

	// AspectRatio is width / height
	AspectRatio float64
}

// New creates a viewport whose canvas fills a window of the given size.
// A non-positive aspect ratio is taken from width and height.
func New(width, height int, aspectRatio float64) *Viewport {
	if aspectRatio <= 0 && height > 0 {
		aspectRatio = float64(width) / float64(height)
	}
	v := &Viewport{AspectRatio: aspectRatio}
	v.Width, v.Height = v.Fit(width, height)
	v.WindowW, v.WindowH = width, height
	v.center()
	return v
}

// Fit returns the largest canvas with the viewport's aspect ratio that fits
// inside a window of the given size.
func (v *Viewport) Fit(windowW, windowH int) (w, h int) {
	w = windowW
	h = int(math.Round(float64(w) / v.AspectRatio))
	if h > windowH {
		h = windowH
		w = int(math.Round(float64(h) * v.AspectRatio))
	}
	return w, h
}

// Resize refits the canvas to a new window size and returns the factor the
// simulation must rescale by. The factor is 1 when the canvas is unchanged
// or the window is too small to hold a canvas.
func (v *Viewport) Resize(windowW, windowH int) float64 {
	if windowW <= 0 || windowH <= 0 {
		return 1
	}
	if windowW == v.WindowW && windowH == v.WindowH {
		return 1
	}

	w, h := v.Fit(windowW, windowH)
	if w < MinCanvasWidth || h <= 0 {
		return 1
	}

	v.WindowW, v.WindowH = windowW, windowH
	factor := 1.0
	if v.Width > 0 {
		factor = float64(w) / float64(v.Width)
	}
	v.Width, v.Height = w, h
	v.center()
	return factor
}

// center recomputes the letterbox offsets.
func (v *Viewport) center() {
	v.OffsetX = (v.WindowW - v.Width) / 2
	v.OffsetY = (v.WindowH - v.Height) / 2
}
