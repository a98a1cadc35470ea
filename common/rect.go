package common

// Rect is an axis-aligned box in world pixels. Width and Height are never
// negative for rects produced by the level tables; Shrink clamps at zero.
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

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// Shrink returns a copy inset by n pixels on every side. Degenerate results
// collapse to a zero-size rect at the center.
func (r Rect) Shrink(n float64) Rect {
	out := Rect{
		X:      r.X + n,
		Y:      r.Y + n,
		Width:  r.Width - 2*n,
		Height: r.Height - 2*n,
	}
	if out.Width < 0 {
		out.X = r.CenterX()
		out.Width = 0
	}
	if out.Height < 0 {
		out.Y = r.CenterY()
		out.Height = 0
	}
	return out
}

// Inflate returns a copy grown by n pixels on every side.
func (r Rect) Inflate(n float64) Rect {
	return Rect{
		X:      r.X - n,
		Y:      r.Y - n,
		Width:  r.Width + 2*n,
		Height: r.Height + 2*n,
	}
}

// SetCenter moves the rect so its center lands on (x, y).
func (r Rect) SetCenter(x, y float64) Rect {
	r.X = x - r.Width/2
	r.Y = y - r.Height/2
	return r
}
