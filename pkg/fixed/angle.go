package fixed

// Angle is a rotation expressed as an integer number of 1/1000-degree
// ticks. Unlike a plain rotation, a Vertex's ArcSweep angle is signed
// and direction-sensitive: +90000 and -270000 both land on the same
// final heading but trace different arcs, so Angle does not normalize
// away the sign on construction. Callers that want the canonical
// [0, 360000) representation of an absolute rotation call
// Mapped0To360 explicitly. A zero-sweep Angle on a Vertex means
// "straight segment, no arc".
type Angle int32

// MicroDegreesPerDegree is the scale factor between Angle's storage
// unit and whole degrees.
const MicroDegreesPerDegree = 1000

// FullCircle is the number of ticks in one full turn.
const FullCircle Angle = 360 * MicroDegreesPerDegree

// AngleFromDegrees constructs an Angle from a degree value, preserving
// sign and magnitude beyond one full turn.
func AngleFromDegrees(deg float64) Angle {
	return Angle(deg*MicroDegreesPerDegree + sign(deg)*0.5)
}

// Degrees returns the angle as whole degrees, for display only.
func (a Angle) Degrees() float64 {
	return float64(a) / MicroDegreesPerDegree
}

// Normalized reduces a into (-360000, 360000), stripping whole turns
// but preserving sign and direction.
func (a Angle) Normalized() Angle {
	return a % FullCircle
}

// Mapped0To360 reduces a into [0, 360000), the canonical representation
// of an absolute rotation such as a component's placement angle.
func (a Angle) Mapped0To360() Angle {
	n := a.Normalized()
	if n < 0 {
		n += FullCircle
	}
	return n
}

// IsStraight reports whether this sweep denotes a straight segment
// rather than an arc (i.e. exactly zero).
func (a Angle) IsStraight() bool { return a == 0 }

// Add returns a+b.
func (a Angle) Add(b Angle) Angle { return a + b }

// Negated returns the reverse rotation, preserving direction semantics
// (an arc's sweep negates to the arc covering the same chord in the
// opposite direction, not its 360-complement).
func (a Angle) Negated() Angle { return -a }
