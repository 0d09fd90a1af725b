package glmesh

import "math"

// Point3 is a position in normalized device coordinates.
type Point3 struct {
	X, Y, Z float32
}

// Pt3 returns a Point3 on the z = 0 plane.
func Pt3(x, y float32) Point3 { return Point3{X: x, Y: y} }

// Midpoint returns the point halfway between p and q.
func (p Point3) Midpoint(q Point3) Point3 {
	return Point3{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2, Z: (p.Z + q.Z) / 2}
}

// Triangle is three corner points.
type Triangle struct {
	P1, P2, P3 Point3
}

// Vertices returns the corners as 9 packed floats (x, y, z per corner).
func (t Triangle) Vertices() []float32 {
	return []float32{
		t.P1.X, t.P1.Y, t.P1.Z,
		t.P2.X, t.P2.Y, t.P2.Z,
		t.P3.X, t.P3.Y, t.P3.Z,
	}
}

// Equilateral returns the equilateral triangle with the given side length,
// centered on its centroid at the origin, with one corner pointing up.
func Equilateral(side float32) Triangle {
	h := side * float32(math.Sqrt(3)) / 2
	return Triangle{
		P1: Pt3(-side/2, -h/3),
		P2: Pt3(side/2, -h/3),
		P3: Pt3(0, 2*h/3),
	}
}

// SubdividedTriangle splits an equilateral triangle of the given side at
// its edge midpoints and returns the three corner triangles (the middle
// one is left out) as 6 vertices and 9 indices.
//
// Vertex order: bottom left, bottom right, top, left edge midpoint,
// right edge midpoint, bottom edge midpoint.
func SubdividedTriangle(side float32) (vertices []float32, indices []uint32) {
	t := Equilateral(side)
	points := []Point3{
		t.P1,
		t.P2,
		t.P3,
		t.P1.Midpoint(t.P3),
		t.P2.Midpoint(t.P3),
		t.P1.Midpoint(t.P2),
	}
	vertices = make([]float32, 0, 3*len(points))
	for _, p := range points {
		vertices = append(vertices, p.X, p.Y, p.Z)
	}
	indices = []uint32{
		0, 3, 5, // lower left
		3, 2, 4, // upper
		5, 4, 1, // lower right
	}
	return vertices, indices
}
