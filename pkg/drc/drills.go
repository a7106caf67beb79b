package drc

import (
	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/drcmsg"
	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
	"github.com/Jimyzzp/LibrePCB/pkg/geom"
	"github.com/Jimyzzp/LibrePCB/pkg/polygon"
)

// drill is one drilled hole-bearing feature: a via, a board hole, a
// footprint hole, or a pad hole. Vias are always plated (this core
// only models through-hole vias, per §3), and so are pad holes; board
// and footprint holes carry their own Plated flag.
type drill struct {
	kind      drcmsg.ObjectKind
	ownerUUID board.UUID
	holeUUID  board.UUID
	diameter  fixed.PositiveLength
	path      geom.Path
	plated    bool
}

func (d drill) holePath(offset fixed.Length) polygon.PolygonSet {
	return board.HolePath(d.path, d.diameter, offset, MaxArcTolerance)
}

// drillsFor gathers every drill matching plated, across vias, board
// holes, and placed device footprint holes/pad holes.
func drillsFor(r *run, plated bool) []drill {
	var out []drill
	if plated {
		for _, seg := range r.model.NetSegments() {
			for _, v := range seg.Vias {
				out = append(out, drill{
					kind: drcmsg.ObjectVia, ownerUUID: v.UUID, holeUUID: v.UUID,
					diameter: v.DrillDiameter,
					path:     geom.Path{{Position: v.Position}},
					plated:   true,
				})
			}
		}
	}
	for _, h := range r.model.Holes() {
		if h.Plated != plated {
			continue
		}
		out = append(out, drill{
			kind: drcmsg.ObjectHole, ownerUUID: h.UUID, holeUUID: h.UUID,
			diameter: h.Diameter, path: h.Path, plated: h.Plated,
		})
	}
	for _, d := range r.model.Devices() {
		d := d
		if d.Footprint == nil {
			continue
		}
		for _, h := range d.Footprint.Holes {
			if h.Plated != plated {
				continue
			}
			out = append(out, drill{
				kind: drcmsg.ObjectHole, ownerUUID: h.UUID, holeUUID: h.UUID,
				diameter: h.Diameter, path: board.TransformPath(h.Path, &d), plated: h.Plated,
			})
		}
		for _, pad := range d.Footprint.Pads {
			for _, ph := range pad.Holes {
				// Pad holes carry the through-hole component lead,
				// always plated.
				if !plated {
					continue
				}
				local := ph.Path.Rotated(pad.Rotation, fixed.Point{}).Translated(pad.Position.X, pad.Position.Y)
				out = append(out, drill{
					kind: drcmsg.ObjectPad, ownerUUID: pad.UUID, holeUUID: ph.UUID,
					diameter: ph.Diameter, path: board.TransformPath(local, &d), plated: true,
				})
			}
		}
	}
	return out
}
