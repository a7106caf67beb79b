// Package polygon implements 2D polygon boolean algebra (union,
// intersection, subtraction) and outward/inward offsetting over
// fixed-point coordinates, wrapping the Vatti-clipping engine in
// engine.go behind a narrow public surface.
package polygon

import (
	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
	"github.com/Jimyzzp/LibrePCB/pkg/geom"
)

// PolygonSet is an unordered collection of closed contours. Contour
// winding direction is significant to the boolean operations below
// (outer boundaries and holes are distinguished by orientation), but a
// PolygonSet itself carries no parent/child nesting — call UnionTree
// when the nesting relationship between boundaries and holes matters.
type PolygonSet []geom.Path

func toRingSet(set PolygonSet, tol fixed.Length) ringSet {
	rs := make(ringSet, 0, len(set))
	for _, p := range set {
		flat := geom.FlattenArcs(p.Closed(), tol)
		r := make(ring, 0, len(flat))
		for _, v := range flat {
			r = append(r, &point{X: v.Position.X, Y: v.Position.Y})
		}
		rs = append(rs, r)
	}
	return rs
}

func ringToPath(r ring) geom.Path {
	p := make(geom.Path, 0, len(r))
	for _, pt := range r {
		p = append(p, geom.Vertex{Position: fixed.Point{X: pt.X, Y: pt.Y}})
	}
	return p
}

func fromRingSet(rs ringSet) PolygonSet {
	out := make(PolygonSet, 0, len(rs))
	for _, r := range rs {
		out = append(out, ringToPath(r))
	}
	return out
}

func execute(op ClipType, subject, clip PolygonSet, tol fixed.Length) PolygonSet {
	if len(subject) == 0 && len(clip) == 0 {
		return nil
	}
	c := NewClipper(IoNone)
	if len(subject) > 0 {
		c.AddPaths(toRingSet(subject, tol), PtSubject, true)
	}
	if len(clip) > 0 {
		c.AddPaths(toRingSet(clip, tol), PtClip, true)
	}
	solution, ok := c.Execute1(op, PftNonZero, PftNonZero)
	if !ok {
		return nil
	}
	return fromRingSet(solution)
}

// Union merges any number of polygon sets, resolving overlaps between
// and within each set, using the non-zero winding fill rule.
func Union(sets ...PolygonSet) PolygonSet {
	if len(sets) == 0 {
		return nil
	}
	acc := sets[0]
	for _, s := range sets[1:] {
		acc = execute(CtUnion, acc, s, geom.DefaultArcTolerance)
	}
	// Self-union once more so that overlapping contours already
	// present within the first input set are merged too.
	return execute(CtUnion, acc, nil, geom.DefaultArcTolerance)
}

// Intersect returns the region covered by both a and b.
func Intersect(a, b PolygonSet) PolygonSet {
	return execute(CtIntersection, a, b, geom.DefaultArcTolerance)
}

// Subtract returns the region covered by a but not by b.
func Subtract(a, b PolygonSet) PolygonSet {
	return execute(CtDifference, a, b, geom.DefaultArcTolerance)
}

// Offset returns the Minkowski sum (delta > 0) or erosion (delta < 0)
// of a with a disc of radius |delta|, approximating the resulting
// round corners to within tol.
func Offset(a PolygonSet, delta fixed.Length, tol fixed.Length) PolygonSet {
	if len(a) == 0 {
		return nil
	}
	co := NewClipperOffset()
	if tol > 0 {
		co.ArcTolerance = float64(tol)
	}
	for _, r := range toRingSet(a, tol) {
		co.AddPath(r, JtRound, EtClosedPolygon)
	}
	return fromRingSet(co.Execute(float64(delta)))
}

// UnionTree is Union's tree-preserving counterpart: the result
// distinguishes outer boundaries from the holes nested inside them, as
// required wherever a caller needs to tell "the violation is this
// ring" apart from "this ring is a hole punched out of it".
func UnionTree(sets ...PolygonSet) *PolyTree {
	c := NewClipper(IoNone)
	any := false
	for _, s := range sets {
		if len(s) == 0 {
			continue
		}
		pt := PtClip
		if !any {
			pt = PtSubject
		}
		c.AddPaths(toRingSet(s, geom.DefaultArcTolerance), pt, true)
		any = true
	}
	if !any {
		return NewPolyTree()
	}
	tree, ok := c.Execute2(CtUnion, PftNonZero, PftNonZero)
	if !ok {
		return NewPolyTree()
	}
	return tree
}

// FlattenTree discards the hole/boundary nesting of tree and returns
// every ring (boundary or hole alike) as an independent path. Used
// where only the covered area matters, not which rings are holes.
func FlattenTree(tree *PolyTree) []geom.Path {
	var out []geom.Path
	var walk func(nodes []*PolyNode)
	walk = func(nodes []*PolyNode) {
		for _, n := range nodes {
			out = append(out, ringToPath(n.Contour()))
			walk(n.Childs())
		}
	}
	walk(tree.Childs())
	return out
}

// TreeToPaths preserves tree's positive (boundary) and negative (hole)
// rings as separate paths, in traversal order, without flattening away
// which nodes are holes: callers distinguish them via Orientation on
// the returned path's vertices if required.
func TreeToPaths(tree *PolyTree) []geom.Path {
	return FlattenTree(tree)
}
