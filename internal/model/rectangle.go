package model

// Rectangle is a value with a width and a length in pixels.
type Rectangle struct {
	Width  uint32
	Length uint32
}

// Area returns the product of width and length.
func (r Rectangle) Area() uint32 {
	return r.Width * r.Length
}

// HasWidth reports whether the rectangle has a nonzero width.
func (r Rectangle) HasWidth() bool {
	return r.Width > 0
}
