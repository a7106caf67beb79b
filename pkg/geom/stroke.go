package geom

import (
	"math"

	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
)

// DefaultArcTolerance is the chord-error bound used wherever a caller
// does not have a more specific tolerance in scope. The engine package
// re-exports this as MaxArcTolerance so that every check in the suite
// sees geometry flattened to the same precision.
const DefaultArcTolerance fixed.Length = 5000 // 5 micrometres

// ToOutlineStrokes returns one closed Path per edge of p (straight or
// arc), each being the Minkowski sum of that edge with a disc of
// radius width/2: an obround for a straight edge, an annular sector
// ("washer slice") for an arc edge. Overlap between adjacent edges is
// intentionally preserved; callers that need a single region union the
// result themselves via the polygon package.
func ToOutlineStrokes(p Path, width fixed.PositiveLength) []Path {
	if len(p) < 2 {
		return nil
	}
	out := make([]Path, 0, len(p)-1)
	for i := 0; i < len(p)-1; i++ {
		v := p[i]
		next := p[i+1]
		if v.ArcSweep.IsStraight() {
			out = append(out, Obround(v.Position, next.Position, width))
		} else {
			out = append(out, washerSlice(v.Position, next.Position, v.ArcSweep, width))
		}
	}
	return out
}

// washerSlice returns the annular-sector outline of the arc a->b with
// the given sweep, stroked to the given width.
func washerSlice(a, b fixed.Point, sweep fixed.Angle, width fixed.PositiveLength) Path {
	sweepRad := sweep.Degrees() * math.Pi / 180
	c, r := arcCenter(a, b, sweepRad)
	if r <= 0 {
		return Obround(a, b, width)
	}
	hw := float64(width.Length()) / 2
	outerR := r + hw
	innerR := r - hw
	if innerR < 0 {
		innerR = 0
	}

	startAngle := math.Atan2(float64(a.Y)-c.Y, float64(a.X)-c.X)
	endAngle := startAngle + sweepRad

	pt := func(radius, angle float64) fixed.Point {
		return fixed.Point{
			X: fixed.Length(math.Round(c.X + radius*math.Cos(angle))),
			Y: fixed.Length(math.Round(c.Y + radius*math.Sin(angle))),
		}
	}

	outerStart := pt(outerR, startAngle)
	outerEnd := pt(outerR, endAngle)
	innerEnd := pt(innerR, endAngle)
	innerStart := pt(innerR, startAngle)

	return Path{
		{Position: outerStart, ArcSweep: sweep},
		{Position: outerEnd},
		{Position: innerEnd, ArcSweep: sweep.Negated()},
		{Position: innerStart},
		{Position: outerStart},
	}
}
