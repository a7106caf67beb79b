package board

import (
	"testing"

	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
	"github.com/Jimyzzp/LibrePCB/pkg/geom"
	"github.com/Jimyzzp/LibrePCB/pkg/layer"
)

func TestNewUUIDIsUniqueAndNonEmpty(t *testing.T) {
	a, b := NewUUID(), NewUUID()
	if a == "" || b == "" {
		t.Fatal("NewUUID returned an empty UUID")
	}
	if a == b {
		t.Fatal("two consecutive NewUUID calls collided")
	}
}

func TestCancelTokenStartsUncancelled(t *testing.T) {
	var tok CancelToken
	if tok.Cancelled() {
		t.Fatal("new CancelToken reports cancelled")
	}
	tok.Cancel()
	if !tok.Cancelled() {
		t.Fatal("Cancel did not take effect")
	}
}

func TestModelCopperLayersMatchesInnerCount(t *testing.T) {
	m := NewModel(2, nil)
	layers := m.CopperLayers()
	if len(layers) != 4 {
		t.Fatalf("got %d copper layers, want 4 (top + 2 inner + bottom)", len(layers))
	}
}

func TestDeviceInstanceByComponentUUIDLookup(t *testing.T) {
	m := NewModel(0, nil)
	comp := NewUUID()
	m.AddDevice(Device{UUID: NewUUID(), ComponentUUID: comp})

	if _, ok := m.DeviceInstanceByComponentUUID(NewUUID()); ok {
		t.Fatal("unrelated UUID unexpectedly matched a device")
	}
	if _, ok := m.DeviceInstanceByComponentUUID(comp); !ok {
		t.Fatal("expected to find the device placed for comp")
	}
}

func TestForceAirWiresRebuildFlagsUnlinkedNetPoints(t *testing.T) {
	m := NewModel(0, nil)
	net := &NetSignal{UUID: NewUUID(), Name: "GND"}
	m.AddNetSegment(NetSegment{
		UUID:      NewUUID(),
		NetSignal: net,
		NetPoints: []NetPoint{
			{UUID: NewUUID(), Position: fixed.Point{}},
			{UUID: NewUUID(), Position: fixed.Point{X: fixed.LengthFromMillimeters(1)}},
		},
	})
	m.ForceAirWiresRebuild()

	wires := m.AirWires()
	if len(wires) != 1 {
		t.Fatalf("got %d air wires, want 1", len(wires))
	}
	if wires[0].NetSignal != net {
		t.Error("air wire did not carry the segment's NetSignal")
	}
}

func TestForceAirWiresRebuildSkipsConnectedSegments(t *testing.T) {
	m := NewModel(0, nil)
	m.AddNetSegment(NetSegment{
		UUID: NewUUID(),
		NetPoints: []NetPoint{
			{UUID: NewUUID()},
			{UUID: NewUUID()},
		},
		NetLines: []NetLine{
			{UUID: NewUUID(), Width: fixed.MustPositiveLength(fixed.LengthFromMillimeters(0.2)), Layer: layer.TopCopper},
		},
	})
	m.ForceAirWiresRebuild()

	if len(m.AirWires()) != 0 {
		t.Fatalf("got %d air wires for a segment with a net line, want 0", len(m.AirWires()))
	}
}

func TestHoleShapeClassification(t *testing.T) {
	round := Hole{Diameter: fixed.MustPositiveLength(1000), Path: nil}
	if round.ShapeClass() != HoleShapeRound {
		t.Errorf("nil path classified as %v, want round", round.ShapeClass())
	}

	straightSlot := Hole{Path: geom.Path{
		{Position: fixed.Point{}},
		{Position: fixed.Point{X: fixed.LengthFromMillimeters(1)}},
	}}
	if straightSlot.ShapeClass() != HoleShapeSingleSegmentStraight {
		t.Errorf("two-vertex straight path classified as %v, want single-segment straight", straightSlot.ShapeClass())
	}

	curved := geom.Path{
		{Position: fixed.Point{}, ArcSweep: fixed.AngleFromDegrees(90)},
		{Position: fixed.Point{X: fixed.LengthFromMillimeters(1)}},
	}
	if (Hole{Path: curved}).ShapeClass() != HoleShapeCurved {
		t.Error("arc-sweep path not classified as curved")
	}

	multi := geom.Path{
		{Position: fixed.Point{}},
		{Position: fixed.Point{X: fixed.LengthFromMillimeters(1)}},
		{Position: fixed.Point{X: fixed.LengthFromMillimeters(1), Y: fixed.LengthFromMillimeters(1)}},
	}
	if (Hole{Path: multi}).ShapeClass() != HoleShapeMultiSegmentStraight {
		t.Error("three-vertex straight path not classified as multi-segment straight")
	}
}
