package polygon

import (
	"testing"

	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
	"github.com/Jimyzzp/LibrePCB/pkg/geom"
)

func square(x0, y0, x1, y1 fixed.Length) geom.Path {
	return geom.Path{
		{Position: fixed.Point{X: x0, Y: y0}},
		{Position: fixed.Point{X: x1, Y: y0}},
		{Position: fixed.Point{X: x1, Y: y1}},
		{Position: fixed.Point{X: x0, Y: y1}},
		{Position: fixed.Point{X: x0, Y: y0}},
	}
}

func totalArea(set PolygonSet) float64 {
	total := 0.0
	for _, p := range set {
		r := make(ring, 0, len(p))
		for _, v := range p {
			r = append(r, &point{X: v.Position.X, Y: v.Position.Y})
		}
		total += Area(r)
	}
	return total
}

func TestUnionOfOverlappingSquaresCoversBothAreas(t *testing.T) {
	a := PolygonSet{square(0, 0, 1000000, 1000000)}
	b := PolygonSet{square(500000, 500000, 1500000, 1500000)}
	result := Union(a, b)
	if len(result) == 0 {
		t.Fatal("expected non-empty union")
	}
	area := totalArea(result)
	// Two 1mm squares overlapping by a 0.5mm x 0.5mm corner: union area
	// is 2*(1e6^2) - (5e5^2) in nm^2.
	want := 2*1e12 - 2.5e11
	if diffRatio := (area - want) / want; diffRatio < -0.01 || diffRatio > 0.01 {
		t.Errorf("union area = %v, want ~%v", area, want)
	}
}

func TestIntersectOfOverlappingSquaresIsTheOverlapOnly(t *testing.T) {
	a := PolygonSet{square(0, 0, 1000000, 1000000)}
	b := PolygonSet{square(500000, 500000, 1500000, 1500000)}
	result := Intersect(a, b)
	area := totalArea(result)
	want := 2.5e11 // 0.5mm x 0.5mm overlap
	if diffRatio := (area - want) / want; diffRatio < -0.01 || diffRatio > 0.01 {
		t.Errorf("intersection area = %v, want ~%v", area, want)
	}
}

func TestSubtractRemovesOverlapFromFirstOperand(t *testing.T) {
	a := PolygonSet{square(0, 0, 1000000, 1000000)}
	b := PolygonSet{square(500000, 500000, 1500000, 1500000)}
	result := Subtract(a, b)
	area := totalArea(result)
	want := 1e12 - 2.5e11 // a's area minus the shared corner
	if diffRatio := (area - want) / want; diffRatio < -0.01 || diffRatio > 0.01 {
		t.Errorf("difference area = %v, want ~%v", area, want)
	}
}

func TestSubtractOfDisjointSetsReturnsFirstOperandUnchanged(t *testing.T) {
	a := PolygonSet{square(0, 0, 1000000, 1000000)}
	b := PolygonSet{square(5000000, 5000000, 6000000, 6000000)}
	result := Subtract(a, b)
	area := totalArea(result)
	want := 1e12
	if diffRatio := (area - want) / want; diffRatio < -0.01 || diffRatio > 0.01 {
		t.Errorf("difference area = %v, want ~%v (no overlap to remove)", area, want)
	}
}

func TestOffsetGrowsASquare(t *testing.T) {
	a := PolygonSet{square(0, 0, 1000000, 1000000)}
	grown := Offset(a, 100000, 1000)
	if len(grown) == 0 {
		t.Fatal("expected non-empty offset result")
	}
	if totalArea(grown) <= totalArea(a) {
		t.Errorf("expected outward offset to grow the area: before=%v after=%v", totalArea(a), totalArea(grown))
	}
}

func TestOffsetShrinksASquareWithNegativeDelta(t *testing.T) {
	a := PolygonSet{square(0, 0, 1000000, 1000000)}
	shrunk := Offset(a, -100000, 1000)
	if len(shrunk) == 0 {
		t.Fatal("expected non-empty offset result")
	}
	if totalArea(shrunk) >= totalArea(a) {
		t.Errorf("expected inward offset to shrink the area: before=%v after=%v", totalArea(a), totalArea(shrunk))
	}
}

func TestEmptyPolygonSetIsUnionIdentity(t *testing.T) {
	a := PolygonSet{square(0, 0, 1000000, 1000000)}
	result := Union(a, nil)
	if diffRatio := (totalArea(result) - totalArea(a)) / totalArea(a); diffRatio < -0.01 || diffRatio > 0.01 {
		t.Errorf("union with empty set changed the area: got %v, want %v", totalArea(result), totalArea(a))
	}
}

func TestFlattenTreeOfNestedSquaresIsNonEmpty(t *testing.T) {
	outer := square(0, 0, 2000000, 2000000)
	// The inner square has the same winding as the outer one and lies
	// wholly inside it, so under the non-zero union it adds no hole:
	// the tree holds the outer boundary alone.
	inner := square(500000, 500000, 1500000, 1500000)
	tree := UnionTree(PolygonSet{outer}, PolygonSet{inner})
	paths := FlattenTree(tree)
	if len(paths) == 0 {
		t.Fatal("expected at least one ring in the flattened tree")
	}
}
