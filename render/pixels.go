package render

import (
	"math"

	"github.com/lixenwraith/blind-maze/vmath"
)

// PixelProjection maps world units to window pixels with one uniform scale
type PixelProjection struct {
	Scale         float64 // Pixels per world unit
	Width, Height int
	OffsetX       float64 // Window x of world x = 0
	OffsetY       float64 // Window y of world y = 0
}

// FitPixels picks the scale at which a size×size maze fits a w×h window,
// keeping hud pixels free above and below it
func FitPixels(w, h int, size, hud float64) PixelProjection {
	w, h = max(w, 1), max(h, 1)
	avail := math.Max(float64(h)-2*hud, 1)

	s := math.Min(float64(w), avail) / size
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		s = 1
	}
	return PixelProjection{Scale: s, Width: w, Height: h}
}

// FitPixelViewport fits world extent vp into a w×h window, centred
func FitPixelViewport(w, h int, vp vmath.Vec2) PixelProjection {
	w, h = max(w, 1), max(h, 1)

	s := math.Min(float64(w)/vp.X, float64(h)/vp.Y)
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return PixelProjection{Scale: 1, Width: w, Height: h}
	}
	return PixelProjection{
		Scale:   s,
		Width:   w,
		Height:  h,
		OffsetX: (float64(w) - vp.X*s) / 2,
		OffsetY: (float64(h) - vp.Y*s) / 2,
	}
}

// Viewport returns the world extent covered by the whole window
func (p PixelProjection) Viewport() vmath.Vec2 {
	return vmath.V2(float64(p.Width)/p.Scale, float64(p.Height)/p.Scale)
}

// ToScreen returns the window position of world point v
func (p PixelProjection) ToScreen(v vmath.Vec2) (x, y float32) {
	return float32(p.OffsetX + v.X*p.Scale), float32(p.OffsetY + v.Y*p.Scale)
}

// Length converts a world distance to pixels
func (p PixelProjection) Length(d float64) float32 {
	return float32(d * p.Scale)
}
