// Package fixed provides the fixed-point geometry primitives used
// throughout the design rule checker: lengths in integer nanometres,
// angles in integer milli-degrees, points, and ratios. All spatial
// reasoning in this module is done with these integer types so that
// checks are exactly reproducible across platforms and runs.
package fixed

import (
	"fmt"
	"math/big"
)

// NanometersPerMillimeter is the scale factor between the wire/storage
// unit (nanometres) and millimetres, which is how lengths are usually
// entered and displayed.
const NanometersPerMillimeter = 1000000

// Length is a signed length in integer nanometres.
type Length int64

// LengthFromMillimeters constructs a Length from a millimetre value,
// rounding to the nearest nanometre.
func LengthFromMillimeters(mm float64) Length {
	return Length(mm*NanometersPerMillimeter + sign(mm)*0.5)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Millimeters returns the length as a floating-point millimetre value,
// for display purposes only; no geometric decision is ever made on the
// resulting float.
func (l Length) Millimeters() float64 {
	return float64(l) / NanometersPerMillimeter
}

// Abs returns the absolute value of l.
func (l Length) Abs() Length {
	if l < 0 {
		return -l
	}
	return l
}

// UnsignedLength is a Length known to be >= 0.
type UnsignedLength struct {
	value Length
}

// NewUnsignedLength validates that l >= 0 and returns an UnsignedLength.
func NewUnsignedLength(l Length) (UnsignedLength, error) {
	if l < 0 {
		return UnsignedLength{}, fmt.Errorf("fixed: length %d is negative, expected >= 0", l)
	}
	return UnsignedLength{value: l}, nil
}

// MustUnsignedLength panics if l < 0; intended for compile-time-known
// constants in tests and defaults.
func MustUnsignedLength(l Length) UnsignedLength {
	u, err := NewUnsignedLength(l)
	if err != nil {
		panic(err)
	}
	return u
}

// Length returns the underlying signed length.
func (u UnsignedLength) Length() Length { return u.value }

// IsZero reports whether this represents a disabled/zero setting.
func (u UnsignedLength) IsZero() bool { return u.value == 0 }

// PositiveLength is a Length known to be > 0.
type PositiveLength struct {
	value Length
}

// NewPositiveLength validates that l > 0 and returns a PositiveLength.
func NewPositiveLength(l Length) (PositiveLength, error) {
	if l <= 0 {
		return PositiveLength{}, fmt.Errorf("fixed: length %d is not positive", l)
	}
	return PositiveLength{value: l}, nil
}

// MustPositiveLength panics if l <= 0; intended for compile-time-known
// constants in tests and defaults, mirroring the teacher's preference
// for fail-fast constructors over silent clamping.
func MustPositiveLength(l Length) PositiveLength {
	p, err := NewPositiveLength(l)
	if err != nil {
		panic(err)
	}
	return p
}

// Length returns the underlying signed length.
func (p PositiveLength) Length() Length { return p.value }

// CrossProduct2D computes (ax*by - ay*bx) widened to 128 bits via
// math/big so that squared-nanometre cross products of two full-range
// Length vectors never silently overflow int64. Callers that only need
// the sign, or a bound-checked int64, should prefer Sign or Int64.
func CrossProduct2D(ax, ay, bx, by Length) *big.Int {
	t1 := new(big.Int).Mul(big.NewInt(int64(ax)), big.NewInt(int64(by)))
	t2 := new(big.Int).Mul(big.NewInt(int64(ay)), big.NewInt(int64(bx)))
	return t1.Sub(t1, t2)
}

// DotProduct2D computes ax*bx + ay*by widened to 128 bits.
func DotProduct2D(ax, ay, bx, by Length) *big.Int {
	t1 := new(big.Int).Mul(big.NewInt(int64(ax)), big.NewInt(int64(bx)))
	t2 := new(big.Int).Mul(big.NewInt(int64(ay)), big.NewInt(int64(by)))
	return t1.Add(t1, t2)
}
