package fixed

import "testing"

func TestUnsignedLengthRejectsNegative(t *testing.T) {
	if _, err := NewUnsignedLength(-1); err == nil {
		t.Fatal("expected error for negative length")
	}
	u, err := NewUnsignedLength(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !u.IsZero() {
		t.Fatal("expected zero length to report IsZero")
	}
}

func TestPositiveLengthRejectsNonPositive(t *testing.T) {
	for _, v := range []Length{0, -1, -1000000} {
		if _, err := NewPositiveLength(v); err == nil {
			t.Fatalf("expected error for non-positive length %d", v)
		}
	}
	p, err := NewPositiveLength(500000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Length() != 500000 {
		t.Fatalf("got %d, want 500000", p.Length())
	}
}

func TestCrossProductDoesNotOverflow(t *testing.T) {
	big := Length(1 << 40)
	cp := CrossProduct2D(big, big, -big, big)
	if cp.Sign() <= 0 {
		t.Fatalf("expected positive cross product, got %v", cp)
	}
}

func TestAngleMapped0To360(t *testing.T) {
	cases := []struct {
		in   Angle
		want Angle
	}{
		{0, 0},
		{FullCircle, 0},
		{-1000, FullCircle - 1000},
		{361000, 1000},
	}
	for _, c := range cases {
		if got := c.in.Mapped0To360(); got != c.want {
			t.Errorf("Mapped0To360(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestAngleNegatedPreservesDirection(t *testing.T) {
	ninety := AngleFromDegrees(90)
	if got := ninety.Negated(); got != AngleFromDegrees(-90) {
		t.Errorf("Negated(90deg) = %v, want -90deg", got.Degrees())
	}
	// Negating must not fold into the 360-complement: a -90 degree
	// sweep traces a different arc than a +270 degree sweep.
	if ninety.Negated() == AngleFromDegrees(270) {
		t.Error("Negated(90deg) must not equal the 360-complement 270deg")
	}
}

func TestLengthFromMillimetersRoundTrip(t *testing.T) {
	l := LengthFromMillimeters(1.5)
	if l != 1500000 {
		t.Fatalf("got %d, want 1500000", l)
	}
	if got := l.Millimeters(); got != 1.5 {
		t.Fatalf("got %v, want 1.5", got)
	}
}
