package drc

import (
	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/drcmsg"
	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
	"github.com/Jimyzzp/LibrePCB/pkg/geom"
	"github.com/Jimyzzp/LibrePCB/pkg/layer"
	"github.com/Jimyzzp/LibrePCB/pkg/polygon"
)

// originProbe is a vanishingly small disc used to test whether a
// pad's rendered geometry covers its own origin point (§4.G check 11,
// §9 Open Questions: "checks only the pad origin (0,0)"). The polygon
// package exposes no direct point-in-polygon primitive, so "contains
// point P" is tested as "intersects a disc of negligible radius
// centred on P" — exact for every practical pad size, since no real
// copper feature is a single nanometre wide.
var originProbeDiameter = fixed.MustPositiveLength(2)

func originProbe(at fixed.Point) polygon.PolygonSet {
	return polygon.PolygonSet{geom.Circle(originProbeDiameter).Translated(at.X, at.Y)}
}

// checkInvalidPadConnections is §4.G check 11: a pad fed by a net line
// on layer L must cover its own origin point on L.
func checkInvalidPadConnections(r *run) {
	for _, d := range r.model.Devices() {
		d := d
		if d.Footprint == nil {
			continue
		}
		for _, pad := range d.Footprint.Pads {
			placedOrigin := board.TransformPoint(pad.Position, &d)
			for _, l := range padLayers(pad) {
				if !hasIncomingNetLine(r, placedOrigin, l) {
					continue
				}
				region := r.gen.Pad(board.PlacedPad(pad, &d), l, 0, MaxArcTolerance)
				if len(polygon.Intersect(region, originProbe(placedOrigin))) > 0 {
					continue
				}
				r.emit(drcmsg.NewInvalidPadConnection(pad.UUID, l, nil))
			}
		}
	}
}

func padLayers(pad board.FootprintPad) []layer.Layer {
	var out []layer.Layer
	for _, geo := range pad.Geometries {
		out = append(out, geo.Layer)
	}
	return out
}

func hasIncomingNetLine(r *run, at fixed.Point, l layer.Layer) bool {
	for _, seg := range r.model.NetSegments() {
		for _, nl := range seg.NetLines {
			if !nl.Layer.Equal(l) {
				continue
			}
			if nl.Start.Equal(at) || nl.End.Equal(at) {
				return true
			}
		}
	}
	return false
}
