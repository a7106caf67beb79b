package board

import (
	"testing"

	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
	"github.com/Jimyzzp/LibrePCB/pkg/geom"
	"github.com/Jimyzzp/LibrePCB/pkg/layer"
	"github.com/Jimyzzp/LibrePCB/pkg/polygon"
)

func mm(v float64) fixed.Length { return fixed.LengthFromMillimeters(v) }

func areaOf(set polygon.PolygonSet) float64 {
	total := 0.0
	for _, p := range set {
		flat := geom.FlattenArcs(p, 2000)
		n := len(flat)
		if n < 3 {
			continue
		}
		var sum int64
		for i := 0; i < n-1; i++ {
			sum += int64(flat[i].Position.X)*int64(flat[i+1].Position.Y) - int64(flat[i+1].Position.X)*int64(flat[i].Position.Y)
		}
		area := float64(sum) / 2
		if area < 0 {
			area = -area
		}
		total += area
	}
	return total
}

func TestViaGeneratesDiscOfOuterDiameter(t *testing.T) {
	m := NewModel(0, nil)
	g := NewPathGenerator(m)
	v := Via{
		UUID:          NewUUID(),
		Position:      fixed.Point{},
		DrillDiameter: fixed.MustPositiveLength(mm(0.3)),
		OuterSize:     fixed.MustPositiveLength(mm(0.6)),
	}
	set := g.Via(v, layer.TopCopper, 0, 2000)
	if len(set) == 0 {
		t.Fatal("expected a non-empty via disc")
	}
	r := mm(0.3)
	wantArea := 3.14159265 * float64(r) * float64(r)
	if got := areaOf(set); got < wantArea*0.97 || got > wantArea*1.03 {
		t.Errorf("via disc area = %v, want ~%v", got, wantArea)
	}
}

func TestViaStopMaskOffsetGrowsTheDisc(t *testing.T) {
	m := NewModel(0, nil)
	g := NewPathGenerator(m)
	offset := fixed.MustUnsignedLength(mm(0.05))
	v := Via{
		OuterSize:      fixed.MustPositiveLength(mm(0.6)),
		StopMaskOffset: &offset,
	}
	copperSet := g.Via(v, layer.TopCopper, 0, 2000)
	maskSet := g.Via(v, layer.TopStopMask, 0, 2000)
	if areaOf(maskSet) <= areaOf(copperSet) {
		t.Error("stop-mask via area should exceed copper via area when an offset is set")
	}
}

func TestNetLineOnlyRendersOnItsOwnLayer(t *testing.T) {
	m := NewModel(0, nil)
	g := NewPathGenerator(m)
	nl := NetLine{
		Start: fixed.Point{},
		End:   fixed.Point{X: mm(5)},
		Width: fixed.MustPositiveLength(mm(0.25)),
		Layer: layer.TopCopper,
	}
	if set := g.NetLine(nl, layer.TopCopper, 0, 2000); len(set) == 0 {
		t.Error("expected a net line outline on its own layer")
	}
	if set := g.NetLine(nl, layer.BottomCopper, 0, 2000); len(set) != 0 {
		t.Error("net line rendered on a layer it does not occupy")
	}
}

func TestPadUnionsAllGeometriesOnRequestedLayer(t *testing.T) {
	m := NewModel(0, nil)
	g := NewPathGenerator(m)
	pad := FootprintPad{
		Geometries: []PadGeometry{
			{
				Layer:             layer.TopCopper,
				Shape:             PadShapeRoundedRect,
				Width:             fixed.MustPositiveLength(mm(1)),
				Height:            fixed.MustPositiveLength(mm(1)),
				CornerRadiusRatio: fixed.MustUnsignedLimitedRatio(fixed.RatioFromPercent(0)),
			},
			{
				Layer:  layer.BottomCopper,
				Shape:  PadShapeRoundedRect,
				Width:  fixed.MustPositiveLength(mm(1)),
				Height: fixed.MustPositiveLength(mm(1)),
			},
		},
	}
	top := g.Pad(pad, layer.TopCopper, 0, 2000)
	if len(top) == 0 {
		t.Fatal("expected top-layer pad geometry")
	}
	bottom := g.Pad(pad, layer.BottomCopper, 0, 2000)
	if len(bottom) == 0 {
		t.Fatal("expected bottom-layer pad geometry")
	}
	none := g.Pad(pad, layer.TopSilkscreen, 0, 2000)
	if len(none) != 0 {
		t.Error("pad unexpectedly rendered on a layer with no geometry entry")
	}
}

func TestRebuildPlanesSubtractsOtherNetsCopper(t *testing.T) {
	m := NewModel(0, nil)
	gnd := &NetSignal{UUID: NewUUID(), Name: "GND"}
	vcc := &NetSignal{UUID: NewUUID(), Name: "VCC"}

	outline := geom.Path{
		{Position: fixed.Point{X: -mm(5), Y: -mm(5)}},
		{Position: fixed.Point{X: mm(5), Y: -mm(5)}},
		{Position: fixed.Point{X: mm(5), Y: mm(5)}},
		{Position: fixed.Point{X: -mm(5), Y: mm(5)}},
		{Position: fixed.Point{X: -mm(5), Y: -mm(5)}},
	}
	m.AddPlane(Plane{
		UUID:      NewUUID(),
		Outline:   outline,
		Layer:     layer.TopCopper,
		MinWidth:  fixed.MustPositiveLength(mm(0.2)),
		NetSignal: gnd,
	})
	m.AddNetSegment(NetSegment{
		NetSignal: vcc,
		NetLines: []NetLine{
			{
				Start: fixed.Point{X: -mm(5)},
				End:   fixed.Point{X: mm(5)},
				Width: fixed.MustPositiveLength(mm(1)),
				Layer: layer.TopCopper,
			},
		},
	})

	if err := m.RebuildPlanes(); err != nil {
		t.Fatalf("RebuildPlanes failed: %v", err)
	}

	p := &m.planes[0]
	if len(p.fragSet) == 0 {
		t.Fatal("expected non-empty plane fragments")
	}
	fullArea := 10e6 * 10e6 // (10mm)^2 in nm^2, order-of-magnitude check only
	got := areaOf(polygon.PolygonSet(p.fragSet))
	if got <= 0 || got >= fullArea {
		t.Errorf("plane fragment area = %v, want strictly between 0 and the full outline area %v", got, fullArea)
	}
}

func TestCopperOnLayerForNetSetRespectsNetFiltering(t *testing.T) {
	m := NewModel(0, nil)
	gnd := &NetSignal{UUID: NewUUID(), Name: "GND"}
	m.AddNetSegment(NetSegment{
		NetSignal: gnd,
		NetLines: []NetLine{
			{Start: fixed.Point{}, End: fixed.Point{X: mm(3)}, Width: fixed.MustPositiveLength(mm(0.2)), Layer: layer.TopCopper},
		},
	})
	g := NewPathGenerator(m)

	matchAll := g.CopperOnLayerForNetSet(layer.TopCopper, nil, true, 2000)
	if len(matchAll) == 0 {
		t.Fatal("unrestricted query found no copper")
	}

	noMatch := g.CopperOnLayerForNetSet(layer.TopCopper, map[UUID]bool{NewUUID(): true}, false, 2000)
	if len(noMatch) != 0 {
		t.Error("query restricted to an unrelated net unexpectedly matched copper")
	}

	match := g.CopperOnLayerForNetSet(layer.TopCopper, map[UUID]bool{gnd.UUID: true}, false, 2000)
	if len(match) == 0 {
		t.Error("query restricted to the net line's own net found no copper")
	}
}
