package board

import (
	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
	"github.com/Jimyzzp/LibrePCB/pkg/geom"
	"github.com/Jimyzzp/LibrePCB/pkg/layer"
)

// Via is a plated through-hole copper connection between copper
// layers. This core only models through-hole vias (no buried/blind
// vias), per §3.
type Via struct {
	UUID            UUID
	Position        fixed.Point
	DrillDiameter   fixed.PositiveLength
	OuterSize       fixed.PositiveLength
	StopMaskOffset  *fixed.UnsignedLength // nil disables stop-mask expansion
	NetSegmentUUID  UUID
}

// NetLine is a straight copper trace segment on one layer.
type NetLine struct {
	UUID  UUID
	Start fixed.Point
	End   fixed.Point
	Width fixed.PositiveLength
	Layer layer.Layer
}

// NetPoint is a junction a NetLine or Via may attach to.
type NetPoint struct {
	UUID     UUID
	Position fixed.Point
}

// NetSegment owns a connected group of vias, net lines and net
// points, optionally tied to a NetSignal.
type NetSegment struct {
	UUID       UUID
	NetSignal  *NetSignal // nil for a segment with no net assigned
	Vias       []Via
	NetLines   []NetLine
	NetPoints  []NetPoint
}

// PadShape enumerates the footprint pad geometries §4.D knows how to
// rasterize.
type PadShape int

const (
	PadShapeRoundedRect PadShape = iota
	PadShapeRoundedOctagon
	PadShapeStroke
	PadShapeCustom
)

// PadGeometry is one layer's footprint of a pad.
type PadGeometry struct {
	Layer             layer.Layer
	Shape             PadShape
	Width             fixed.PositiveLength // RoundedRect/RoundedOctagon
	Height            fixed.PositiveLength // RoundedRect/RoundedOctagon
	CornerRadiusRatio fixed.UnsignedLimitedRatio
	StrokePath        geom.Path       // Stroke shape: centerline to outline-stroke
	StrokeWidth       fixed.PositiveLength
	CustomOutline     geom.Path // Custom shape: literal outline, already closed
}

// PadHole is a hole drilled through a pad (usually for a through-hole
// component lead).
type PadHole struct {
	UUID     UUID
	Diameter fixed.PositiveLength
	Path     geom.Path // 1-vertex round drill, 2+ vertex slot
}

// FootprintPad is one pad of a placed Device.
type FootprintPad struct {
	UUID        UUID
	Position    fixed.Point
	Rotation    fixed.Angle
	Geometries  []PadGeometry
	Holes       []PadHole
	ComponentSignalUUID *UUID // nil if unconnected in the library
}

// Plane is a filled copper region on one layer, reconstructed by
// RebuildPlanes from its outline and clearance to unconnected copper.
type Plane struct {
	UUID      UUID
	Outline   geom.Path
	Layer     layer.Layer
	MinWidth  fixed.PositiveLength
	NetSignal *NetSignal

	fragments geom.Path // populated by RebuildPlanes; nil until then
	fragSet   []geom.Path
}

// Polygon is a board or library graphic: a stroked, optionally filled
// outline on a single layer.
type Polygon struct {
	UUID   UUID
	Path   geom.Path
	Layer  layer.Layer
	Width  fixed.UnsignedLength
	Filled bool
}

// Circle is a board or library graphic circle, stroked and optionally
// filled, on a single layer.
type Circle struct {
	UUID     UUID
	Center   fixed.Point
	Diameter fixed.PositiveLength
	Layer    layer.Layer
	Width    fixed.UnsignedLength
	Filled   bool
}

// StrokeText is rendered text: a set of stroked character paths at a
// fixed line width, on a single layer.
type StrokeText struct {
	UUID          UUID
	Layer         layer.Layer
	StrokeWidth   fixed.PositiveLength
	CharacterPaths []geom.Path // already positioned/rotated outlines
}

// HoleShapeClass classifies a hole's drill path for the slot-width and
// allowed-slot checks (§4.G checks 9-10).
type HoleShapeClass int

const (
	HoleShapeRound HoleShapeClass = iota
	HoleShapeSingleSegmentStraight
	HoleShapeMultiSegmentStraight
	HoleShapeCurved
)

// Hole is a board-level drilled hole (plated or not).
type Hole struct {
	UUID           UUID
	Diameter       fixed.PositiveLength
	Path           geom.Path // 1-vertex round; 2-vertex straight slot; multi-segment/arc slot
	StopMaskOffset *fixed.UnsignedLength
	Plated         bool
}

// ShapeClass classifies h.Path the way §4.G checks 9-10 need.
func (h Hole) ShapeClass() HoleShapeClass {
	return HoleShapeClassOf(h.Path)
}

// HoleShapeClassOf classifies any drill/slot path, for callers (e.g.
// the DRC engine's drill checks) working with a path that did not
// come from a Hole value directly, such as a Via's single-point drill
// or a placed PadHole.
func HoleShapeClassOf(p geom.Path) HoleShapeClass {
	switch {
	case len(p) <= 1:
		return HoleShapeRound
	case len(p) == 2 && p[0].ArcSweep.IsStraight():
		return HoleShapeSingleSegmentStraight
	default:
		for _, v := range p {
			if !v.ArcSweep.IsStraight() {
				return HoleShapeCurved
			}
		}
		return HoleShapeMultiSegmentStraight
	}
}

// Footprint is the library definition a Device instantiates: its own
// polygons, circles, holes and pads in local (unplaced) coordinates.
type Footprint struct {
	UUID     UUID
	Polygons []Polygon
	Circles  []Circle
	Holes    []Hole
	Pads     []FootprintPad
}

// Device is a Footprint placed on the board with a transform, plus
// its own per-instance stroke texts and per-hole stop-mask overrides.
type Device struct {
	UUID              UUID
	ComponentUUID     UUID // the ComponentInstance this device realizes
	LibraryUUID       UUID // identity of the Footprint/library variant used
	Footprint         *Footprint
	Position          fixed.Point
	Rotation          fixed.Angle
	Mirrored          bool
	StrokeTexts       []StrokeText
	HoleStopMaskOffset map[UUID]fixed.UnsignedLength // PadHole/Hole UUID -> override
}
