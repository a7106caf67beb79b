package geom

import (
	"math"

	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
)

// arcCenter returns the center of the circular arc running from a to b
// with the given signed sweep angle (in radians), plus its radius.
//
// The tie-break rule from the component design — "when the sweep is
// exactly 180 degrees, the centre is placed on the left of the
// directed edge" — falls out of this formula automatically: at
// sweepRad == +pi, half == pi/2 and h == 0, so the center sits exactly
// on the chord's midpoint regardless of which side "left" nominally
// refers to.
func arcCenter(a, b fixed.Point, sweepRad float64) (center struct{ X, Y float64 }, radius float64) {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return struct{ X, Y float64 }{float64(a.X), float64(a.Y)}, 0
	}
	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux // unit normal, rotated +90 degrees from a->b

	half := sweepRad / 2
	h := (length / 2) / math.Tan(half)
	mx, my := (float64(a.X)+float64(b.X))/2, (float64(a.Y)+float64(b.Y))/2
	cx, cy := mx+nx*h, my+ny*h
	r := math.Hypot(float64(a.X)-cx, float64(a.Y)-cy)
	return struct{ X, Y float64 }{cx, cy}, r
}

// FlattenArcs replaces every arc edge of p with a polyline whose
// perpendicular chord deviation from the true arc is at most maxTol.
// The returned Path contains only straight edges (every ArcSweep is
// zero).
func FlattenArcs(p Path, maxTol fixed.Length) Path {
	if len(p) == 0 {
		return nil
	}
	out := make(Path, 0, len(p))
	for i := 0; i < len(p)-1; i++ {
		v := p[i]
		next := p[i+1]
		out = append(out, Vertex{Position: v.Position})
		if !v.ArcSweep.IsStraight() {
			out = append(out, flattenArc(v.Position, next.Position, v.ArcSweep, maxTol)...)
		}
	}
	out = append(out, Vertex{Position: p[len(p)-1].Position})
	return out
}

// flattenArc returns the interior straight-edge vertices (excluding
// the endpoints a and b themselves) approximating the arc a->b.
func flattenArc(a, b fixed.Point, sweep fixed.Angle, maxTol fixed.Length) []Vertex {
	sweepRad := sweep.Degrees() * math.Pi / 180
	c, r := arcCenter(a, b, sweepRad)
	if r <= 0 {
		return nil
	}

	tol := float64(maxTol)
	if tol >= r {
		tol = r * 0.999 // a tolerance >= radius would make acos's argument <= -1
	}
	// Maximum central angle per segment such that the sagitta
	// r*(1-cos(phi/2)) does not exceed tol.
	maxPhi := 2 * math.Acos(1-tol/r)
	if maxPhi <= 0 || math.IsNaN(maxPhi) {
		maxPhi = sweepRad
		if maxPhi < 0 {
			maxPhi = -maxPhi
		}
	}

	segments := int(math.Ceil(math.Abs(sweepRad) / maxPhi))
	if segments < 1 {
		segments = 1
	}

	startAngle := math.Atan2(float64(a.Y)-c.Y, float64(a.X)-c.X)

	verts := make([]Vertex, 0, segments-1)
	for i := 1; i < segments; i++ {
		frac := float64(i) / float64(segments)
		angle := startAngle + sweepRad*frac
		x := c.X + r*math.Cos(angle)
		y := c.Y + r*math.Sin(angle)
		verts = append(verts, Vertex{Position: fixed.Point{
			X: fixed.Length(math.Round(x)),
			Y: fixed.Length(math.Round(y)),
		}})
	}
	return verts
}
