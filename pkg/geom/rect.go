package geom

import "math"

// Point is an integer pixel coordinate, x right, y down.
type Point struct {
	X, Y int
}

// Vec2 converts the point to a float vector.
func (p Point) Vec2() Vec2 {
	return Vec2{float32(p.X), float32(p.Y)}
}

// Rect is an integer rectangle with inclusive min and exclusive max edges,
// so Width == XMax - XMin.
type Rect struct {
	XMin, YMin, XMax, YMax int
}

// EmptyRect returns a rect that any AddPoint call will snap to.
func EmptyRect() Rect {
	return Rect{math.MaxInt32, math.MaxInt32, math.MinInt32, math.MinInt32}
}

// RectWH returns a rect at (x, y) with the given size.
func RectWH(x, y, w, h int) Rect {
	return Rect{x, y, x + w, y + h}
}

// Width returns XMax - XMin.
func (r Rect) Width() int {
	return r.XMax - r.XMin
}

// Height returns YMax - YMin.
func (r Rect) Height() int {
	return r.YMax - r.YMin
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.XMax <= r.XMin || r.YMax <= r.YMin
}

// AddPoint grows the rect to include p.
func (r *Rect) AddPoint(p Point) {
	if p.X < r.XMin {
		r.XMin = p.X
	}
	if p.Y < r.YMin {
		r.YMin = p.Y
	}
	if p.X > r.XMax {
		r.XMax = p.X
	}
	if p.Y > r.YMax {
		r.YMax = p.Y
	}
}

// Expand returns the rect grown by n on every side.
func (r Rect) Expand(n int) Rect {
	return Rect{r.XMin - n, r.YMin - n, r.XMax + n, r.YMax + n}
}

// Shrink returns the rect contracted by n on every side.
func (r Rect) Shrink(n int) Rect {
	return r.Expand(-n)
}

// Overlaps reports whether r and other share any area.
func (r Rect) Overlaps(other Rect) bool {
	return r.XMin < other.XMax && other.XMin < r.XMax &&
		r.YMin < other.YMax && other.YMin < r.YMax
}

// Contains reports whether p lies inside r, treating both max edges as
// inclusive so that a point on the far edge still counts.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.XMin && p.X <= r.XMax && p.Y >= r.YMin && p.Y <= r.YMax
}

// Clamp returns p forced inside r, max edges inclusive.
func (r Rect) Clamp(p Point) Point {
	if p.X < r.XMin {
		p.X = r.XMin
	}
	if p.X > r.XMax {
		p.X = r.XMax
	}
	if p.Y < r.YMin {
		p.Y = r.YMin
	}
	if p.Y > r.YMax {
		p.Y = r.YMax
	}
	return p
}

// Array returns the rect as [xmin, ymin, xmax, ymax].
func (r Rect) Array() [4]int {
	return [4]int{r.XMin, r.YMin, r.XMax, r.YMax}
}
