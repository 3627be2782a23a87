package common

// Rect is an axis-aligned box. X,Y is the bottom-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAround returns a rect of the given size centered on c.
func RectAround(c Vec2, size Vec2) Rect {
	return Rect{X: c.X - size.X/2, Y: c.Y - size.Y/2, Width: size.X, Height: size.Y}
}
