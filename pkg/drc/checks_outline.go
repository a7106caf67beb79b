package drc

import (
	"github.com/Jimyzzp/LibrePCB/pkg/drcmsg"
	"github.com/Jimyzzp/LibrePCB/pkg/polygon"
)

// checkBoardOutline is §4.G check 13: every footprint outline polygon
// must be closed, the board must have exactly one outline ring, and —
// if MinOutlineToolDiameter is configured — every inner corner of that
// ring must be millable by a tool of that diameter.
func checkBoardOutline(r *run) {
	for _, op := range collectOutlinePolygons(r) {
		if op.device == nil {
			continue
		}
		if !op.path.IsClosed() {
			r.emit(drcmsg.NewOpenBoardOutlinePolygon(op.device, op.uuid, nil))
		}
	}

	outline := boardOutlineUnion(r)
	if len(outline) == 0 {
		r.emit(drcmsg.NewMissingBoardOutline())
		return
	}

	tree := polygon.UnionTree(outline)
	if len(tree.Childs()) > 1 {
		r.emit(drcmsg.NewMultipleBoardOutlines(polygon.FlattenTree(tree)))
	}

	tool := r.settings.MinOutlineToolDiameter
	if tool.IsZero() {
		return
	}
	radius := tool.Length() / 2
	dilated := polygon.Offset(outline, radius-1, MaxArcTolerance)
	eroded := polygon.Offset(dilated, -radius, MaxArcTolerance)
	residue := polygon.Subtract(eroded, outline)
	if len(residue) > 0 {
		r.emit(drcmsg.NewMinimumBoardOutlineInnerRadiusViolation(residue))
	}
}
