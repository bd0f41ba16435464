package common

type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// MirrorX mirrors the rect about a vertical anchor line. A rect placed in
// facing-right world space becomes its facing-left counterpart; Y and
// dimensions are unchanged.
func (r Rect) MirrorX(anchor float64) Rect {
	return Rect{
		X:      anchor - (r.X - anchor) - r.Width,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
	}
}
