package geom

import "testing"

// boxMask is an Occupancy whose opaque pixels form one inclusive box.
type boxMask struct {
	xmin, ymin, xmax, ymax int
}

func (m boxMask) Opaque(x, y int) bool {
	return x >= m.xmin && x <= m.xmax && y >= m.ymin && y <= m.ymax
}

func TestLineHitsMask(t *testing.T) {
	mask := boxMask{4, 4, 8, 8}
	tests := []struct {
		name string
		a, b Point
		want bool
	}{
		{"through the box", Point{0, 6}, Point{12, 6}, true},
		{"above the box", Point{0, 3}, Point{12, 3}, false},
		{"endpoint inside", Point{5, 5}, Point{20, 20}, true},
		{"single opaque point", Point{4, 4}, Point{4, 4}, true},
		{"single clear point", Point{0, 0}, Point{0, 0}, false},
		{"diagonal miss", Point{9, 0}, Point{12, 12}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineHitsMask(tt.a, tt.b, mask); got != tt.want {
				t.Errorf("LineHitsMask(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCorrectOutlineNoIntrusion(t *testing.T) {
	mask := boxMask{4, 4, 8, 8}
	// A clockwise square fully around the box; no edge touches it.
	pts := []Point{{2, 2}, {11, 2}, {11, 11}, {2, 11}}
	want := append([]Point(nil), pts...)

	CorrectOutline(pts, 13, 13, mask)
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("vertex %d moved to %v, want untouched %v", i, pts[i], want[i])
		}
	}
}

func TestCorrectOutlinePushesEdgeOff(t *testing.T) {
	mask := boxMask{4, 4, 8, 8}
	// Clockwise triangle whose top edge cuts straight through the box.
	pts := []Point{{0, 6}, {12, 6}, {6, 12}}

	CorrectOutline(pts, 13, 13, mask)

	if LineHitsMask(pts[0], pts[1], mask) {
		t.Errorf("edge %v-%v still crosses the mask", pts[0], pts[1])
	}
	if pts[2] != (Point{6, 12}) {
		t.Errorf("uninvolved vertex moved to %v", pts[2])
	}
	for _, p := range pts {
		if p.X < 0 || p.X > 13 || p.Y < 0 || p.Y > 13 {
			t.Errorf("vertex %v escaped the image bounds", p)
		}
	}
}

func TestCorrectOutlineTooFewPoints(t *testing.T) {
	mask := boxMask{0, 0, 100, 100}
	pts := []Point{{1, 1}, {2, 2}}
	CorrectOutline(pts, 10, 10, mask)
	if pts[0] != (Point{1, 1}) || pts[1] != (Point{2, 2}) {
		t.Error("degenerate polygon should not be modified")
	}
}
