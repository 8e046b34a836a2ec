package vmath

// Rect is an axis-aligned box in world space
type Rect struct {
	Min, Max Vec2
}

// RectFrom returns the box with top-left origin and given size
func RectFrom(origin, size Vec2) Rect {
	return Rect{Min: origin, Max: origin.Add(size)}
}

// Inflate grows the box by d on every side
func (r Rect) Inflate(d float64) Rect {
	return Rect{
		Min: Vec2{r.Min.X - d, r.Min.Y - d},
		Max: Vec2{r.Max.X + d, r.Max.Y + d},
	}
}
