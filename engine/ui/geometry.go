package ui

type Vec2 struct{ X, Y float32 }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned box in screen units; Min is the top-left corner.
type Rect struct{ Min, Max Vec2 }

func RectFromMinSize(min, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }
func (r Rect) Size() Vec2      { return Vec2{r.Width(), r.Height()} }
func (r Rect) Center() Vec2    { return Vec2{(r.Min.X + r.Max.X) * 0.5, (r.Min.Y + r.Max.Y) * 0.5} }
func (r Rect) IsEmpty() bool   { return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y }

// Contains is inclusive on all edges so a pointer on the last pixel row still hits.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Union returns the smallest rect covering both; empty rects are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return Rect{
		Min: Vec2{minf(r.Min.X, o.Min.X), minf(r.Min.Y, o.Min.Y)},
		Max: Vec2{maxf(r.Max.X, o.Max.X), maxf(r.Max.Y, o.Max.Y)},
	}
}

// Shrink insets every edge by m, never inverting the rect.
func (r Rect) Shrink(m float32) Rect {
	out := Rect{Min: Vec2{r.Min.X + m, r.Min.Y + m}, Max: Vec2{r.Max.X - m, r.Max.Y - m}}
	if out.Max.X < out.Min.X {
		out.Max.X = out.Min.X
	}
	if out.Max.Y < out.Min.Y {
		out.Max.Y = out.Min.Y
	}
	return out
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
