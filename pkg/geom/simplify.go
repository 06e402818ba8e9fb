package geom

// Outline simplification trades silhouette fidelity for vertex count. The
// reduction is a distance-threshold decimation: a vertex survives only if it
// sits far enough from the segment joining its surviving predecessor to its
// successor. The threshold starts small and grows until the polygon fits the
// vertex budget, so the loop always terminates.

const (
	simplifyEpsilon = 0.5
	simplifyStep    = 0.5
)

// SimplifyOutline reduces a closed outline to at most maxVerts points.
// One decimation pass is applied even when the outline is already under
// budget, which strips collinear runs and pixel noise. maxVerts is clamped
// to a minimum of 3.
func SimplifyOutline(pts []Point, maxVerts int) []Point {
	if maxVerts < 3 {
		maxVerts = 3
	}
	pts = dedupPoints(pts)
	if len(pts) == 0 {
		return nil
	}

	eps := float32(simplifyEpsilon)
	out := decimate(pts, eps)
	for len(out) > maxVerts {
		eps += simplifyStep
		out = decimate(pts, eps)
	}
	return out
}

// decimate walks the closed polyline once, dropping every vertex closer than
// eps to the segment between the last kept vertex and the next original one.
// The first vertex is always kept.
func decimate(pts []Point, eps float32) []Point {
	if len(pts) < 3 {
		return append([]Point(nil), pts...)
	}

	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	for i := 1; i < len(pts); i++ {
		last := out[len(out)-1]
		next := pts[(i+1)%len(pts)]
		if distToSegment(pts[i], last, next) >= eps {
			out = append(out, pts[i])
		}
	}
	return out
}

// dedupPoints removes consecutive duplicates, including a duplicate between
// the last and first point of the loop.
func dedupPoints(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	if len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

// distToSegment returns the distance from p to the segment ab.
func distToSegment(p, a, b Point) float32 {
	pv, av, bv := p.Vec2(), a.Vec2(), b.Vec2()
	ab := bv.Sub(av)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return pv.Distance(av)
	}
	t := pv.Sub(av).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return pv.Distance(av.Add(ab.Scale(t)))
}
