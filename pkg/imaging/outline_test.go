package imaging

import (
	"testing"

	"github.com/Faultbox/atlasc/pkg/geom"
)

// signedArea2 returns twice the shoelace area of the polygon; positive means
// clockwise in image coordinates (y down).
func signedArea2(pts []geom.Point) int {
	sum := 0
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum
}

func TestExtractOutlineBlock(t *testing.T) {
	m := NewMask(10, 10)
	for y := 4; y <= 6; y++ {
		for x := 4; x <= 6; x++ {
			m.Set(x, y)
		}
	}

	pts := ExtractOutline(m)
	if len(pts) != 8 {
		t.Fatalf("outline of 3x3 block has %d points, want 8", len(pts))
	}
	if pts[0] != (geom.Point{X: 4, Y: 4}) {
		t.Errorf("outline starts at %v, want (4,4)", pts[0])
	}

	// Every boundary pixel of the block appears, the interior does not.
	seen := make(map[geom.Point]bool, len(pts))
	for _, p := range pts {
		if !m.Opaque(p.X, p.Y) {
			t.Errorf("outline point %v is not on the mask", p)
		}
		if seen[p] {
			t.Errorf("outline visits %v twice", p)
		}
		seen[p] = true
	}
	if seen[geom.Point{X: 5, Y: 5}] {
		t.Error("outline contains the interior pixel (5,5)")
	}

	if area := signedArea2(pts); area <= 0 {
		t.Errorf("outline winds counter-clockwise (area %d)", area)
	}
}

func TestExtractOutlineEmpty(t *testing.T) {
	if pts := ExtractOutline(NewMask(6, 6)); pts != nil {
		t.Errorf("outline of clear mask = %v, want nil", pts)
	}
}

func TestExtractOutlineSinglePixel(t *testing.T) {
	m := NewMask(4, 4)
	m.Set(2, 1)
	pts := ExtractOutline(m)
	if len(pts) != 1 || pts[0] != (geom.Point{X: 2, Y: 1}) {
		t.Errorf("outline of single pixel = %v, want [(2,1)]", pts)
	}
}

func TestExtractOutlineTracksDilatedRing(t *testing.T) {
	// The dilated mask of a single pixel is a 3x3 block; its outline is the
	// block's ring and never the original pixel alone.
	m := NewMask(7, 7)
	m.Set(3, 3)
	d := m.Dilate()

	pts := ExtractOutline(d)
	if len(pts) != 8 {
		t.Fatalf("outline of dilated pixel has %d points, want 8", len(pts))
	}
	for _, p := range pts {
		if p == (geom.Point{X: 3, Y: 3}) {
			t.Error("outline contains the interior pixel (3,3)")
		}
	}
}
