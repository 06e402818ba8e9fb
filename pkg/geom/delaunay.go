package geom

import (
	"errors"

	triangle "github.com/esimov/triangle/v2"
)

// ErrTooManyTriangles is returned when a triangulation cannot be indexed
// with 16-bit indices.
var ErrTooManyTriangles = errors.New("triangulation exceeds 16-bit index range")

// Triangulation is an indexed triangle mesh over integer points. Indices
// holds three entries per triangle and every index is a valid position
// index. Triangles wind clockwise in image coordinates.
type Triangulation struct {
	Positions []Point
	Indices   []uint16
}

// NumTriangles returns the triangle count.
func (t Triangulation) NumTriangles() int {
	return len(t.Indices) / 3
}

// Triangulate runs a Delaunay triangulation of pts inside a w x h area and
// converts the result to an indexed mesh. The triangulator may merge exact
// duplicate points, so the output can hold fewer positions than the input,
// never more. Degenerate (zero-area) triangles are dropped. Fewer than three
// input points yield an empty mesh.
func Triangulate(pts []Point, w, h int) (Triangulation, error) {
	if len(pts) < 3 {
		return Triangulation{}, nil
	}
	if len(pts) > math16Max {
		return Triangulation{}, ErrTooManyTriangles
	}

	nodes := make([]triangle.Point, len(pts))
	for i, p := range pts {
		nodes[i] = triangle.Point{X: float64(p.X), Y: float64(p.Y)}
	}

	input := make(map[Point]bool, len(pts))
	for _, p := range pts {
		input[p] = true
	}

	delaunay := &triangle.Delaunay{}
	triangles := delaunay.Init(w, h).Insert(nodes).GetTriangles()

	var mesh Triangulation
	index := make(map[Point]uint16, len(pts))
	addVertex := func(n triangle.Node) uint16 {
		p := Point{X: int(n.X), Y: int(n.Y)}
		if idx, ok := index[p]; ok {
			return idx
		}
		idx := uint16(len(mesh.Positions))
		index[p] = idx
		mesh.Positions = append(mesh.Positions, p)
		return idx
	}

	for _, tri := range triangles {
		if len(tri.Nodes) < 3 {
			continue
		}
		a := Point{int(tri.Nodes[0].X), int(tri.Nodes[0].Y)}
		b := Point{int(tri.Nodes[1].X), int(tri.Nodes[1].Y)}
		c := Point{int(tri.Nodes[2].X), int(tri.Nodes[2].Y)}

		// The triangulator seeds its mesh with the corners of the w x h area;
		// triangles on a corner that is not an input point are dropped.
		if !input[a] || !input[b] || !input[c] {
			continue
		}

		area := cross(a, b, c)
		if area == 0 {
			continue
		}
		if area < 0 {
			b, c = c, b
		}

		if mesh.NumTriangles() >= math16Max {
			return Triangulation{}, ErrTooManyTriangles
		}
		mesh.Indices = append(mesh.Indices,
			addVertex(triangle.Node{X: float64(a.X), Y: float64(a.Y)}),
			addVertex(triangle.Node{X: float64(b.X), Y: float64(b.Y)}),
			addVertex(triangle.Node{X: float64(c.X), Y: float64(c.Y)}))
	}
	return mesh, nil
}

const math16Max = 1<<16 - 1

// cross returns twice the signed area of triangle abc; positive means
// clockwise winding in image coordinates (y down).
func cross(a, b, c Point) int {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
