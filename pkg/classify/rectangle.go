package classify

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Width  uint32
	Height uint32
}

// Area returns Width * Height.
func (r Rectangle) Area() uint64 {
	return uint64(r.Width) * uint64(r.Height)
}

// CanHold reports whether other fits inside r without rotation.
func (r Rectangle) CanHold(other Rectangle) bool {
	return other.Width <= r.Width && other.Height <= r.Height
}
