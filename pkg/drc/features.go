package drc

import (
	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/drcmsg"
	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
	"github.com/Jimyzzp/LibrePCB/pkg/layer"
	"github.com/Jimyzzp/LibrePCB/pkg/polygon"
)

// copperFeature is one copper object on one layer, named well enough
// to build a drcmsg.ObjectRef, together with its net (if any) and a
// closure that renders it to a PolygonSet at a requested offset. Built
// fresh per layer by collectCopperFeatures — this is the per-feature
// granularity CopperOnLayerForNetSet deliberately does not expose,
// needed wherever a check must name *which* feature violated a rule.
type copperFeature struct {
	kind drcmsg.ObjectKind
	uuid board.UUID
	net  *board.NetSignal
	path func(offset fixed.Length) polygon.PolygonSet
}

// collectCopperFeatures enumerates every copper feature on layer l,
// replaying the same object walk as board.PathGenerator's internals
// (net segments, planes, board polygons/stroke texts, device stroke
// texts and polygons/circles/pads) but keeping each feature individually
// addressable instead of pre-unioned.
func collectCopperFeatures(r *run, l layer.Layer, includePlanes bool) []copperFeature {
	model, gen := r.model, r.gen
	var out []copperFeature

	for _, seg := range model.NetSegments() {
		for _, v := range seg.Vias {
			v := v
			out = append(out, copperFeature{
				kind: drcmsg.ObjectVia, uuid: v.UUID, net: seg.NetSignal,
				path: func(offset fixed.Length) polygon.PolygonSet {
					return gen.Via(v, l, offset, MaxArcTolerance)
				},
			})
		}
		for _, nl := range seg.NetLines {
			nl := nl
			if !nl.Layer.Equal(l) {
				continue
			}
			out = append(out, copperFeature{
				kind: drcmsg.ObjectNetLine, uuid: nl.UUID, net: seg.NetSignal,
				path: func(offset fixed.Length) polygon.PolygonSet {
					return gen.NetLine(nl, l, offset, MaxArcTolerance)
				},
			})
		}
	}
	if includePlanes {
		for _, p := range model.Planes() {
			p := p
			if !p.Layer.Equal(l) {
				continue
			}
			out = append(out, copperFeature{
				kind: drcmsg.ObjectPlane, uuid: p.UUID, net: p.NetSignal,
				path: func(offset fixed.Length) polygon.PolygonSet {
					return gen.Plane(p, offset, MaxArcTolerance)
				},
			})
		}
	}
	for _, p := range model.Polygons() {
		p := p
		if !p.Layer.Equal(l) {
			continue
		}
		out = append(out, copperFeature{
			kind: drcmsg.ObjectPolygon, uuid: p.UUID,
			path: func(offset fixed.Length) polygon.PolygonSet {
				return gen.PolygonPath(p, offset, MaxArcTolerance)
			},
		})
	}
	for _, t := range model.StrokeTexts() {
		t := t
		if !t.Layer.Equal(l) {
			continue
		}
		out = append(out, copperFeature{
			kind: drcmsg.ObjectStrokeText, uuid: t.UUID,
			path: func(offset fixed.Length) polygon.PolygonSet {
				return gen.StrokeTextPath(t, offset, MaxArcTolerance)
			},
		})
	}
	for _, d := range model.Devices() {
		d := d
		for _, t := range d.StrokeTexts {
			t := t
			if !t.Layer.Equal(l) {
				continue
			}
			out = append(out, copperFeature{
				kind: drcmsg.ObjectStrokeText, uuid: t.UUID,
				path: func(offset fixed.Length) polygon.PolygonSet {
					return gen.StrokeTextPath(t, offset, MaxArcTolerance)
				},
			})
		}
		if d.Footprint == nil {
			continue
		}
		for _, p := range d.Footprint.Polygons {
			p := p
			if !p.Layer.Equal(l) {
				continue
			}
			out = append(out, copperFeature{
				kind: drcmsg.ObjectPolygon, uuid: p.UUID,
				path: func(offset fixed.Length) polygon.PolygonSet {
					return gen.PolygonPath(board.PlacedPolygon(p, &d), offset, MaxArcTolerance)
				},
			})
		}
		for _, c := range d.Footprint.Circles {
			c := c
			if !c.Layer.Equal(l) {
				continue
			}
			out = append(out, copperFeature{
				kind: drcmsg.ObjectCircle, uuid: c.UUID,
				path: func(offset fixed.Length) polygon.PolygonSet {
					return gen.CirclePath(board.PlacedCircle(c, &d), offset, MaxArcTolerance)
				},
			})
		}
		for _, pad := range d.Footprint.Pads {
			pad := pad
			out = append(out, copperFeature{
				kind: drcmsg.ObjectPad, uuid: pad.UUID, net: model.NetSignalForPad(&d, pad),
				path: func(offset fixed.Length) polygon.PolygonSet {
					return gen.Pad(board.PlacedPad(pad, &d), l, offset, MaxArcTolerance)
				},
			})
		}
	}
	return out
}
