// Package geom implements Path and arc-flattening geometry: ordered
// vertex lists whose edges may be straight segments or circular arcs,
// flattened into polylines within a caller-supplied tolerance, and
// stroked into filled outline areas.
package geom

import (
	"math"

	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
)

// Vertex is one point of a Path together with the sweep angle of the
// arc leading from this vertex to the next one. A zero sweep denotes a
// straight edge.
type Vertex struct {
	Position fixed.Point
	ArcSweep fixed.Angle
}

// Path is an ordered sequence of vertices. Edge k runs from Path[k] to
// Path[k+1], with Path[k].ArcSweep describing that edge's curvature.
type Path []Vertex

// IsClosed reports whether the first and last vertex share a position.
func (p Path) IsClosed() bool {
	if len(p) < 2 {
		return false
	}
	return p[0].Position.Equal(p[len(p)-1].Position)
}

// Closed returns p with a final vertex appended at the first vertex's
// position if it is not already closed. The appended vertex always
// carries a zero sweep (there is no "next" edge after it).
func (p Path) Closed() Path {
	if p.IsClosed() || len(p) == 0 {
		return p
	}
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Vertex{Position: p[0].Position})
}

// Translated returns p shifted by (dx, dy).
func (p Path) Translated(dx, dy fixed.Length) Path {
	out := make(Path, len(p))
	for i, v := range p {
		out[i] = Vertex{Position: v.Position.Translated(dx, dy), ArcSweep: v.ArcSweep}
	}
	return out
}

// Rotated returns p rotated by angle around the given center.
func (p Path) Rotated(angle fixed.Angle, center fixed.Point) Path {
	rad := angle.Degrees() * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	out := make(Path, len(p))
	for i, v := range p {
		dx := float64(v.Position.X - center.X)
		dy := float64(v.Position.Y - center.Y)
		nx := dx*cos - dy*sin
		ny := dx*sin + dy*cos
		out[i] = Vertex{
			Position: fixed.Point{
				X: center.X + fixed.Length(math.Round(nx)),
				Y: center.Y + fixed.Length(math.Round(ny)),
			},
			ArcSweep: v.ArcSweep,
		}
	}
	return out
}

// Mirrored returns p mirrored across the X axis (Y negated), with arc
// sweeps negated to preserve the same visual curvature.
func (p Path) Mirrored() Path {
	out := make(Path, len(p))
	for i, v := range p {
		out[i] = Vertex{
			Position: fixed.Point{X: v.Position.X, Y: -v.Position.Y},
			ArcSweep: v.ArcSweep.Negated(),
		}
	}
	return out
}

// Circle returns a closed Path approximating a full circle of the
// given diameter, centered at the origin, using two 180-degree arcs.
// This mirrors how the reference implementation builds round pads,
// vias, and drills without resorting to an N-gon approximation before
// flattening is requested.
func Circle(diameter fixed.PositiveLength) Path {
	r := diameter.Length() / 2
	return Path{
		{Position: fixed.Point{X: r, Y: 0}, ArcSweep: fixed.AngleFromDegrees(180)},
		{Position: fixed.Point{X: -r, Y: 0}, ArcSweep: fixed.AngleFromDegrees(180)},
		{Position: fixed.Point{X: r, Y: 0}},
	}
}

// Obround returns a closed Path forming the stadium (obround) shape
// swept by a disc of the given width moving in a straight line from p1
// to p2. When p1 == p2 it degenerates to Circle(width).
//
// This is the one place in the geometry layer where we must turn a
// displacement vector into an angle (atan2): there is no exact integer
// alternative for "the perpendicular direction of an arbitrary chord",
// so the result is computed in float64 and rounded back to the nearest
// nanometre, as called out in the component design.
func Obround(p1, p2 fixed.Point, width fixed.PositiveLength) Path {
	dx := float64(p2.X - p1.X)
	dy := float64(p2.Y - p1.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return Circle(width).Translated(p1.X, p1.Y)
	}
	r := float64(width.Length()) / 2
	ux, uy := dx/length, dy/length   // unit vector along the line
	nx, ny := -uy, ux                // unit normal (rotated +90 degrees)

	round := func(v float64) fixed.Length { return fixed.Length(math.Round(v)) }

	a := fixed.Point{X: p1.X + round(nx*r), Y: p1.Y + round(ny*r)}
	b := fixed.Point{X: p2.X + round(nx*r), Y: p2.Y + round(ny*r)}
	c := fixed.Point{X: p2.X - round(nx*r), Y: p2.Y - round(ny*r)}
	d := fixed.Point{X: p1.X - round(nx*r), Y: p1.Y - round(ny*r)}

	return Path{
		{Position: a},
		{Position: b, ArcSweep: fixed.AngleFromDegrees(180)},
		{Position: c},
		{Position: d, ArcSweep: fixed.AngleFromDegrees(180)},
		{Position: a},
	}
}

// BoundingBoxEmpty reports whether p contains no vertices at all.
func (p Path) BoundingBoxEmpty() bool { return len(p) == 0 }
