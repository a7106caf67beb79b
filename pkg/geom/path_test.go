package geom

import (
	"math"
	"testing"

	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
)

func TestPathIsClosed(t *testing.T) {
	open := Path{{Position: fixed.Point{X: 0, Y: 0}}, {Position: fixed.Point{X: 100, Y: 0}}}
	if open.IsClosed() {
		t.Fatal("expected open path to report not closed")
	}
	closed := open.Closed()
	if !closed.IsClosed() {
		t.Fatal("expected Closed() to produce a closed path")
	}
	if len(closed) != len(open)+1 {
		t.Fatalf("got %d vertices, want %d", len(closed), len(open)+1)
	}
	// Closing an already-closed path must be a no-op.
	if len(closed.Closed()) != len(closed) {
		t.Fatal("Closed() on an already-closed path should not append again")
	}
}

func TestCircleIsClosedAndRadiusCorrect(t *testing.T) {
	diameter := fixed.MustPositiveLength(2000000)
	c := Circle(diameter)
	if !c.IsClosed() {
		t.Fatal("expected circle path to be closed")
	}
	for _, v := range c {
		r := math.Hypot(float64(v.Position.X), float64(v.Position.Y))
		if math.Abs(r-1000000) > 1 {
			t.Errorf("vertex %v has radius %v, want ~1000000", v.Position, r)
		}
	}
}

func TestObroundDegeneratesToCircleWhenPointsCoincide(t *testing.T) {
	width := fixed.MustPositiveLength(500000)
	p := fixed.Point{X: 1000000, Y: 2000000}
	got := Obround(p, p, width)
	want := Circle(width).Translated(p.X, p.Y)
	if len(got) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(got), len(want))
	}
	for i := range got {
		if !got[i].Position.Equal(want[i].Position) {
			t.Errorf("vertex %d: got %v, want %v", i, got[i].Position, want[i].Position)
		}
	}
}

func TestObroundIsClosedAndSymmetric(t *testing.T) {
	width := fixed.MustPositiveLength(300000)
	p1 := fixed.Point{X: 0, Y: 0}
	p2 := fixed.Point{X: 5000000, Y: 0}
	o := Obround(p1, p2, width)
	if !o.IsClosed() {
		t.Fatal("expected obround to be closed")
	}
	if len(o) != 5 {
		t.Fatalf("got %d vertices, want 5", len(o))
	}
	// For a horizontal stroke the long edges must sit at +/- half width.
	for _, v := range o[:len(o)-1] {
		if v.Position.Y != width.Length()/2 && v.Position.Y != -width.Length()/2 {
			t.Errorf("vertex %v has unexpected Y offset", v.Position)
		}
	}
}

func TestFlattenArcsLeavesStraightPathsUnchanged(t *testing.T) {
	p := Path{
		{Position: fixed.Point{X: 0, Y: 0}},
		{Position: fixed.Point{X: 1000000, Y: 0}},
		{Position: fixed.Point{X: 1000000, Y: 1000000}},
	}
	flat := FlattenArcs(p, 5000)
	if len(flat) != len(p) {
		t.Fatalf("got %d vertices, want %d (no arcs to flatten)", len(flat), len(p))
	}
}

func TestFlattenArcsApproximatesHalfCircleWithinTolerance(t *testing.T) {
	radius := fixed.Length(1000000)
	tol := fixed.Length(5000)
	p := Path{
		{Position: fixed.Point{X: radius, Y: 0}, ArcSweep: fixed.AngleFromDegrees(180)},
		{Position: fixed.Point{X: -radius, Y: 0}},
	}
	flat := FlattenArcs(p, tol)
	if len(flat) < 3 {
		t.Fatalf("expected multiple subdivisions, got %d vertices", len(flat))
	}
	for i := 0; i < len(flat)-1; i++ {
		a, b := flat[i].Position, flat[i+1].Position
		mx, my := float64(a.X+b.X)/2, float64(a.Y+b.Y)/2
		distFromCenter := math.Hypot(mx, my)
		sagitta := math.Abs(float64(radius) - distFromCenter)
		if sagitta > float64(tol)*1.5 {
			t.Errorf("chord midpoint %v,%v deviates from arc by %v, want <= %v", mx, my, sagitta, tol)
		}
	}
	// Every flattened vertex must itself lie within tolerance of the true radius.
	for _, v := range flat {
		r := math.Hypot(float64(v.Position.X), float64(v.Position.Y))
		if math.Abs(r-float64(radius)) > float64(tol)+1 {
			t.Errorf("vertex %v has radius %v, want ~%v", v.Position, r, radius)
		}
	}
}

func TestFlattenArcsFullCircleSegmentCountGrowsAsToleranceShrinks(t *testing.T) {
	p := Path{
		{Position: fixed.Point{X: 1000000, Y: 0}, ArcSweep: fixed.AngleFromDegrees(180)},
		{Position: fixed.Point{X: -1000000, Y: 0}, ArcSweep: fixed.AngleFromDegrees(180)},
		{Position: fixed.Point{X: 1000000, Y: 0}},
	}
	loose := FlattenArcs(p, 50000)
	tight := FlattenArcs(p, 1000)
	if len(tight) <= len(loose) {
		t.Fatalf("expected tighter tolerance to produce more vertices: loose=%d tight=%d", len(loose), len(tight))
	}
}

func TestToOutlineStrokesStraightEdgeIsObround(t *testing.T) {
	width := fixed.MustPositiveLength(200000)
	p := Path{
		{Position: fixed.Point{X: 0, Y: 0}},
		{Position: fixed.Point{X: 1000000, Y: 0}},
	}
	strokes := ToOutlineStrokes(p, width)
	if len(strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(strokes))
	}
	if !strokes[0].IsClosed() {
		t.Fatal("expected stroke outline to be closed")
	}
}

func TestToOutlineStrokesArcEdgeIsClosedWasherSlice(t *testing.T) {
	width := fixed.MustPositiveLength(200000)
	p := Path{
		{Position: fixed.Point{X: 1000000, Y: 0}, ArcSweep: fixed.AngleFromDegrees(90)},
		{Position: fixed.Point{X: 0, Y: 1000000}},
	}
	strokes := ToOutlineStrokes(p, width)
	if len(strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(strokes))
	}
	if !strokes[0].IsClosed() {
		t.Fatal("expected washer-slice outline to be closed")
	}
}
