package geom

import "math"

// Simplification straightens corners, which can drag polygon edges through
// opaque pixels. CorrectOutline pushes the offending vertices outward until
// every edge clears the silhouette again.

const (
	offsetAmount = 2.0
	collinearEps = 1e-5
)

// Occupancy reports whether a pixel is opaque. Out-of-bounds coordinates
// must report false.
type Occupancy interface {
	Opaque(x, y int) bool
}

// CorrectOutline inflates the clockwise polygon pts in place until no edge
// crosses an opaque pixel of mask. The polygon lives in a w x h image;
// displaced vertices are clamped to [0,w] x [0,h]. A single sweep over the
// edges is performed; per edge, the two endpoints are stepped outward until
// the edge clears the mask or the edge's first endpoint stops moving.
func CorrectOutline(pts []Point, w, h int, mask Occupancy) {
	if len(pts) < 3 {
		return
	}

	n := len(pts)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		for LineHitsMask(pts[i], pts[next], mask) {
			moved := offsetVertex(pts, i, w, h)
			if moved == pts[i] {
				break
			}
			pts[i] = moved
			pts[next] = offsetVertex(pts, next, w, h)
		}
	}
}

// offsetVertex computes one outward step for vertex i of the clockwise
// polygon. The offset direction follows the corner normal: the negated edge
// bisector at convex corners, the bisector itself at concave ones, and the
// left perpendicular of the incoming edge when the corner is collinear.
func offsetVertex(pts []Point, i, w, h int) Point {
	n := len(pts)
	v := pts[i].Vec2()
	e1 := pts[(i+n-1)%n].Vec2().Sub(v).Normalize()
	e2 := pts[(i+1)%n].Vec2().Sub(v).Normalize()

	var dir Vec2
	z := e1.Cross(e2)
	if z > -collinearEps && z < collinearEps {
		dir = e1.Perp().Scale(offsetAmount)
	} else {
		k := float32(1)
		if z < 0 {
			k = -1
		}
		dir = e1.Add(e2).Normalize().Scale(offsetAmount * k)
	}

	moved := v.Add(dir)
	p := Point{
		X: int(math.Floor(float64(moved.X))),
		Y: int(math.Floor(float64(moved.Y))),
	}
	return Rect{0, 0, w, h}.Clamp(p)
}

// LineHitsMask rasterises the segment ab with Bresenham's algorithm,
// endpoints inclusive, and reports whether any traversed pixel is opaque.
func LineHitsMask(a, b Point, mask Occupancy) bool {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}

	x, y := a.X, a.Y
	err := dx + dy
	for {
		if mask.Opaque(x, y) {
			return true
		}
		if x == b.X && y == b.Y {
			return false
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
