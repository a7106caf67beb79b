package drc

import (
	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
	"github.com/Jimyzzp/LibrePCB/pkg/geom"
	"github.com/Jimyzzp/LibrePCB/pkg/polygon"
)

// outlinePolygon names one candidate board-outline ring: a board-level
// Polygon on layer.BoardOutline, or a placed footprint polygon on the
// same layer (in which case Device is non-nil, for OpenBoardOutlinePolygon's
// optional device reference).
type outlinePolygon struct {
	uuid   board.UUID
	device *board.UUID
	path   geom.Path
}

func collectOutlinePolygons(r *run) []outlinePolygon {
	var out []outlinePolygon
	for _, p := range r.model.Polygons() {
		if !p.Layer.IsBoardOutline() {
			continue
		}
		out = append(out, outlinePolygon{uuid: p.UUID, path: p.Path})
	}
	for _, d := range r.model.Devices() {
		d := d
		if d.Footprint == nil {
			continue
		}
		for _, p := range d.Footprint.Polygons {
			if !p.Layer.IsBoardOutline() {
				continue
			}
			out = append(out, outlinePolygon{
				uuid: p.UUID, device: &d.UUID,
				path: board.TransformPath(p.Path, &d),
			})
		}
	}
	return out
}

// boardOutlineUnion is the closed, valid subset of collectOutlinePolygons,
// flattened and unioned — the basis for both the clearance band (checks
// 3, 6) and the outline-shape check (13).
func boardOutlineUnion(r *run) polygon.PolygonSet {
	var sets []polygon.PolygonSet
	for _, op := range collectOutlinePolygons(r) {
		if !op.path.IsClosed() {
			continue
		}
		sets = append(sets, polygon.PolygonSet{geom.FlattenArcs(op.path, MaxArcTolerance)})
	}
	return polygon.Union(sets...)
}

// boardOutlineBand is the forbidden strip straddling the board
// outline for the given clearance, per §4.G checks 3 and 6: its total
// width is 2*clearance - MaxArcTolerance - 1, built as an erosion and
// a dilation of the outline by half that width, whose difference is
// the band.
func boardOutlineBand(r *run, clearance fixed.Length) polygon.PolygonSet {
	outline := boardOutlineUnion(r)
	if len(outline) == 0 {
		return nil
	}
	width := 2*clearance - MaxArcTolerance - 1
	if width <= 0 {
		return nil
	}
	half := width / 2
	outer := polygon.Offset(outline, half, MaxArcTolerance)
	inner := polygon.Offset(outline, -half, MaxArcTolerance)
	return polygon.Subtract(outer, inner)
}
