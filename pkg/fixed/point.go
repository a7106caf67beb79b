package fixed

// Point is a 2D coordinate in the board's nanometre coordinate system.
type Point struct {
	X, Y Length
}

// Translated returns p shifted by the given offset.
func (p Point) Translated(dx, dy Length) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Add returns p+q component-wise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q component-wise.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Equal reports exact (not approximate) equality, which is always
// meaningful for integer coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}
