package core

// Rect is an axis-aligned rectangle in world units
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// ContainsStrict reports whether (px, py) lies strictly inside r; edges do not count
func (r Rect) ContainsStrict(px, py float64) bool {
	return r.X < px && px < r.X+r.Width &&
		r.Y < py && py < r.Y+r.Height
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
