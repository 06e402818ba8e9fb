package imaging

import "github.com/Faultbox/atlasc/pkg/geom"

// Boundary tracing follows the Moore neighbourhood of the current pixel,
// scanning clockwise from the backtrack position. Starting at the first set
// pixel in scan order with the backtrack to its west yields a clockwise
// polyline in image coordinates (x right, y down). The trace stops when the
// start pixel is re-entered from its original backtrack (Jacob's criterion).

// moore lists the 8-neighbourhood clockwise starting at west.
var moore = [8]geom.Point{
	{X: -1, Y: 0},  // W
	{X: -1, Y: -1}, // NW
	{X: 0, Y: -1},  // N
	{X: 1, Y: -1},  // NE
	{X: 1, Y: 0},   // E
	{X: 1, Y: 1},   // SE
	{X: 0, Y: 1},   // S
	{X: -1, Y: 1},  // SW
}

// ExtractOutline traces the boundary of the outermost opaque region of m and
// returns it as an ordered clockwise polyline of boundary pixels. Consecutive
// duplicates never occur. An all-clear mask yields nil; an isolated pixel
// yields a single point.
func ExtractOutline(m *Mask) []geom.Point {
	start, ok := firstOpaque(m)
	if !ok {
		return nil
	}

	pts := []geom.Point{start}
	p := start
	backtrack := geom.Point{X: start.X - 1, Y: start.Y}
	startBacktrack := backtrack

	// The trace visits each boundary pixel at most 8 times before the stop
	// criterion fires; the cap guards against malformed occupancy data.
	for limit := 8 * m.W * m.H; limit > 0; limit-- {
		dir := dirIndex(geom.Point{X: backtrack.X - p.X, Y: backtrack.Y - p.Y})
		next := p
		found := false
		for i := 1; i <= 8; i++ {
			d := (dir + i) % 8
			q := geom.Point{X: p.X + moore[d].X, Y: p.Y + moore[d].Y}
			if m.Opaque(q.X, q.Y) {
				backtrack = geom.Point{X: p.X + moore[(d+7)%8].X, Y: p.Y + moore[(d+7)%8].Y}
				next = q
				found = true
				break
			}
		}
		if !found {
			break
		}
		p = next
		if p == start && backtrack == startBacktrack {
			break
		}
		pts = append(pts, p)
	}
	return pts
}

// firstOpaque scans rows top to bottom, pixels left to right.
func firstOpaque(m *Mask) (geom.Point, bool) {
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.Pix[y*m.W+x] != 0 {
				return geom.Point{X: x, Y: y}, true
			}
		}
	}
	return geom.Point{}, false
}

func dirIndex(d geom.Point) int {
	for i, md := range moore {
		if md == d {
			return i
		}
	}
	return 0
}
