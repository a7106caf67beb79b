package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
	"github.com/Jimyzzp/LibrePCB/pkg/geom"
	"github.com/Jimyzzp/LibrePCB/pkg/layer"
)

// The types below describe a minimal JSON board fixture, used only by
// this CLI and its tests to exercise the engine without a real KiCad-
// style project file format to parse. Every length is millimetres,
// every angle degrees — the same human-facing units drcsettings reads
// out of a TOML config file (§4.N), converted to the engine's native
// nanometre/tick units on load.

type boardFixture struct {
	InnerCopperLayers  int                     `json:"innerCopperLayers"`
	Project            projectFixture          `json:"project"`
	Devices            []deviceFixture         `json:"devices"`
	NetSegments        []netSegmentFixture     `json:"netSegments"`
	Planes             []planeFixture          `json:"planes"`
	Polygons           []polygonFixture        `json:"polygons"`
	StrokeTexts        []strokeTextFixture     `json:"strokeTexts"`
	Holes              []holeFixture           `json:"holes"`
}

type projectFixture struct {
	ComponentInstances []componentInstanceFixture `json:"componentInstances"`
}

type componentInstanceFixture struct {
	UUID              string  `json:"uuid"`
	Name              string  `json:"name"`
	SchematicOnly     bool    `json:"schematicOnly"`
	DefaultDeviceUUID *string `json:"defaultDeviceUuid,omitempty"`
}

type vertexFixture struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	ArcSweepDeg float64 `json:"arcSweepDeg,omitempty"`
}

type pathFixture []vertexFixture

func (p pathFixture) toGeom() geom.Path {
	out := make(geom.Path, len(p))
	for i, v := range p {
		out[i] = geom.Vertex{
			Position: fixed.Point{X: fixed.LengthFromMillimeters(v.X), Y: fixed.LengthFromMillimeters(v.Y)},
			ArcSweep: fixed.AngleFromDegrees(v.ArcSweepDeg),
		}
	}
	return out
}

type netSignalFixture struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

func (n *netSignalFixture) toBoard() *board.NetSignal {
	if n == nil {
		return nil
	}
	return &board.NetSignal{UUID: board.UUID(n.UUID), Name: n.Name}
}

type viaFixture struct {
	UUID             string     `json:"uuid"`
	At               [2]float64 `json:"at"`
	DrillDiameterMM  float64    `json:"drillDiameterMm"`
	OuterSizeMM      float64    `json:"outerSizeMm"`
	StopMaskOffsetMM *float64   `json:"stopMaskOffsetMm,omitempty"`
}

type netLineFixture struct {
	UUID  string  `json:"uuid"`
	Start [2]float64 `json:"start"`
	End   [2]float64 `json:"end"`
	WidthMM float64 `json:"widthMm"`
	Layer string  `json:"layer"`
}

type netPointFixture struct {
	UUID string     `json:"uuid"`
	At   [2]float64 `json:"at"`
}

type netSegmentFixture struct {
	UUID      string             `json:"uuid"`
	NetSignal *netSignalFixture  `json:"netSignal,omitempty"`
	Vias      []viaFixture       `json:"vias"`
	NetLines  []netLineFixture   `json:"netLines"`
	NetPoints []netPointFixture  `json:"netPoints"`
}

type planeFixture struct {
	UUID       string            `json:"uuid"`
	Outline    pathFixture       `json:"outline"`
	Layer      string            `json:"layer"`
	MinWidthMM float64           `json:"minWidthMm"`
	NetSignal  *netSignalFixture `json:"netSignal,omitempty"`
}

type polygonFixture struct {
	UUID    string      `json:"uuid"`
	Path    pathFixture `json:"path"`
	Layer   string      `json:"layer"`
	WidthMM float64     `json:"widthMm"`
	Filled  bool        `json:"filled"`
}

type circleFixture struct {
	UUID       string     `json:"uuid"`
	Center     [2]float64 `json:"center"`
	DiameterMM float64    `json:"diameterMm"`
	Layer      string     `json:"layer"`
	WidthMM    float64    `json:"widthMm"`
	Filled     bool       `json:"filled"`
}

type strokeTextFixture struct {
	UUID            string        `json:"uuid"`
	Layer           string        `json:"layer"`
	StrokeWidthMM   float64       `json:"strokeWidthMm"`
	CharacterPaths  []pathFixture `json:"characterPaths"`
}

type holeFixture struct {
	UUID             string      `json:"uuid"`
	DiameterMM       float64     `json:"diameterMm"`
	Path             pathFixture `json:"path"`
	StopMaskOffsetMM *float64    `json:"stopMaskOffsetMm,omitempty"`
	Plated           bool        `json:"plated"`
}

type padGeometryFixture struct {
	Layer                    string      `json:"layer"`
	Shape                    string      `json:"shape"`
	WidthMM                  float64     `json:"widthMm"`
	HeightMM                 float64     `json:"heightMm"`
	CornerRadiusRatioPercent float64     `json:"cornerRadiusRatioPercent"`
	StrokePath               pathFixture `json:"strokePath"`
	StrokeWidthMM            float64     `json:"strokeWidthMm"`
	CustomOutline            pathFixture `json:"customOutline"`
}

type padHoleFixture struct {
	UUID       string      `json:"uuid"`
	DiameterMM float64     `json:"diameterMm"`
	Path       pathFixture `json:"path"`
}

type padFixture struct {
	UUID                string               `json:"uuid"`
	Position            [2]float64           `json:"position"`
	RotationDeg         float64              `json:"rotationDeg"`
	Geometries          []padGeometryFixture `json:"geometries"`
	Holes               []padHoleFixture     `json:"holes"`
	ComponentSignalUUID *string              `json:"componentSignalUuid,omitempty"`
}

type footprintFixture struct {
	UUID     string           `json:"uuid"`
	Polygons []polygonFixture `json:"polygons"`
	Circles  []circleFixture  `json:"circles"`
	Holes    []holeFixture    `json:"holes"`
	Pads     []padFixture     `json:"pads"`
}

type deviceFixture struct {
	UUID               string              `json:"uuid"`
	ComponentUUID      string              `json:"componentUuid"`
	LibraryUUID        string              `json:"libraryUuid"`
	Position           [2]float64          `json:"position"`
	RotationDeg        float64             `json:"rotationDeg"`
	Mirrored           bool                `json:"mirrored"`
	Footprint          *footprintFixture   `json:"footprint,omitempty"`
	StrokeTexts        []strokeTextFixture `json:"strokeTexts"`
}

// parseLayer maps a fixture's layer name to layer.Layer, matching
// Layer.String()'s own spelling ("TopCopper", "InnerCopper2", ...).
func parseLayer(name string) (layer.Layer, error) {
	switch {
	case name == "BoardOutline":
		return layer.BoardOutline, nil
	case name == "TopCopper":
		return layer.TopCopper, nil
	case name == "BottomCopper":
		return layer.BottomCopper, nil
	case name == "TopStopMask":
		return layer.TopStopMask, nil
	case name == "BottomStopMask":
		return layer.BottomStopMask, nil
	case name == "TopPaste":
		return layer.TopPaste, nil
	case name == "BottomPaste":
		return layer.BottomPaste, nil
	case name == "TopSilkscreen":
		return layer.TopSilkscreen, nil
	case name == "BottomSilkscreen":
		return layer.BottomSilkscreen, nil
	case name == "TopCourtyard":
		return layer.TopCourtyard, nil
	case name == "BottomCourtyard":
		return layer.BottomCourtyard, nil
	case name == "TopDocumentation":
		return layer.TopDocumentation, nil
	case name == "BottomDocumentation":
		return layer.BottomDocumentation, nil
	case name == "TopPlacement":
		return layer.TopPlacement, nil
	case name == "BottomPlacement":
		return layer.BottomPlacement, nil
	case strings.HasPrefix(name, "InnerCopper"):
		var i int
		if _, err := fmt.Sscanf(name, "InnerCopper%d", &i); err != nil {
			return layer.Layer{}, fmt.Errorf("malformed inner copper layer %q", name)
		}
		l, ok := layer.InnerCopper(i, i)
		if !ok {
			return layer.Layer{}, fmt.Errorf("invalid inner copper layer %q", name)
		}
		return l, nil
	default:
		return layer.Layer{}, fmt.Errorf("unknown layer %q", name)
	}
}

func pt(xy [2]float64) fixed.Point {
	return fixed.Point{X: fixed.LengthFromMillimeters(xy[0]), Y: fixed.LengthFromMillimeters(xy[1])}
}

func mustUnsigned(mm float64) fixed.UnsignedLength {
	return fixed.MustUnsignedLength(fixed.LengthFromMillimeters(mm))
}

func mustPositive(mm float64) fixed.PositiveLength {
	return fixed.MustPositiveLength(fixed.LengthFromMillimeters(mm))
}

func optionalStopMask(mm *float64) *fixed.UnsignedLength {
	if mm == nil {
		return nil
	}
	v := mustUnsigned(*mm)
	return &v
}

func padShapeFromName(s string) board.PadShape {
	switch s {
	case "RoundedOctagon":
		return board.PadShapeRoundedOctagon
	case "Stroke":
		return board.PadShapeStroke
	case "Custom":
		return board.PadShapeCustom
	default:
		return board.PadShapeRoundedRect
	}
}

// LoadBoardFixture reads a JSON board fixture from path and builds the
// board.Model it describes.
func LoadBoardFixture(path string) (*board.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board fixture: %w", err)
	}
	var fx boardFixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse board fixture: %w", err)
	}

	var components []board.ComponentInstance
	for _, ci := range fx.Project.ComponentInstances {
		var def *board.UUID
		if ci.DefaultDeviceUUID != nil {
			u := board.UUID(*ci.DefaultDeviceUUID)
			def = &u
		}
		components = append(components, board.ComponentInstance{
			UUID: board.UUID(ci.UUID), Name: ci.Name,
			SchematicOnly: ci.SchematicOnly, DefaultDeviceUUID: def,
		})
	}
	project := board.NewProject(board.NewCircuit(components))
	model := board.NewModel(fx.InnerCopperLayers, project)

	for _, d := range fx.Devices {
		device, err := toDevice(d)
		if err != nil {
			return nil, err
		}
		model.AddDevice(device)
	}
	for _, ns := range fx.NetSegments {
		seg, err := toNetSegment(ns)
		if err != nil {
			return nil, err
		}
		model.AddNetSegment(seg)
	}
	for _, p := range fx.Planes {
		l, err := parseLayer(p.Layer)
		if err != nil {
			return nil, err
		}
		model.AddPlane(board.Plane{
			UUID: board.UUID(p.UUID), Outline: p.Outline.toGeom(), Layer: l,
			MinWidth: mustPositive(p.MinWidthMM), NetSignal: p.NetSignal.toBoard(),
		})
	}
	for _, p := range fx.Polygons {
		l, err := parseLayer(p.Layer)
		if err != nil {
			return nil, err
		}
		model.AddPolygon(board.Polygon{
			UUID: board.UUID(p.UUID), Path: p.Path.toGeom(), Layer: l,
			Width: mustUnsigned(p.WidthMM), Filled: p.Filled,
		})
	}
	for _, t := range fx.StrokeTexts {
		l, err := parseLayer(t.Layer)
		if err != nil {
			return nil, err
		}
		paths := make([]geom.Path, len(t.CharacterPaths))
		for i, cp := range t.CharacterPaths {
			paths[i] = cp.toGeom()
		}
		model.AddStrokeText(board.StrokeText{
			UUID: board.UUID(t.UUID), Layer: l,
			StrokeWidth: mustPositive(t.StrokeWidthMM), CharacterPaths: paths,
		})
	}
	for _, h := range fx.Holes {
		model.AddHole(board.Hole{
			UUID: board.UUID(h.UUID), Diameter: mustPositive(h.DiameterMM), Path: h.Path.toGeom(),
			StopMaskOffset: optionalStopMask(h.StopMaskOffsetMM), Plated: h.Plated,
		})
	}
	return model, nil
}

func toDevice(d deviceFixture) (board.Device, error) {
	var fp *board.Footprint
	if d.Footprint != nil {
		f, err := toFootprint(*d.Footprint)
		if err != nil {
			return board.Device{}, err
		}
		fp = &f
	}
	var strokeTexts []board.StrokeText
	for _, t := range d.StrokeTexts {
		l, err := parseLayer(t.Layer)
		if err != nil {
			return board.Device{}, err
		}
		paths := make([]geom.Path, len(t.CharacterPaths))
		for i, cp := range t.CharacterPaths {
			paths[i] = cp.toGeom()
		}
		strokeTexts = append(strokeTexts, board.StrokeText{
			UUID: board.UUID(t.UUID), Layer: l,
			StrokeWidth: mustPositive(t.StrokeWidthMM), CharacterPaths: paths,
		})
	}
	return board.Device{
		UUID: board.UUID(d.UUID), ComponentUUID: board.UUID(d.ComponentUUID), LibraryUUID: board.UUID(d.LibraryUUID),
		Position: pt(d.Position), Rotation: fixed.AngleFromDegrees(d.RotationDeg), Mirrored: d.Mirrored,
		Footprint: fp, StrokeTexts: strokeTexts,
	}, nil
}

func toFootprint(f footprintFixture) (board.Footprint, error) {
	var polygons []board.Polygon
	for _, p := range f.Polygons {
		l, err := parseLayer(p.Layer)
		if err != nil {
			return board.Footprint{}, err
		}
		polygons = append(polygons, board.Polygon{
			UUID: board.UUID(p.UUID), Path: p.Path.toGeom(), Layer: l,
			Width: mustUnsigned(p.WidthMM), Filled: p.Filled,
		})
	}
	var circles []board.Circle
	for _, c := range f.Circles {
		l, err := parseLayer(c.Layer)
		if err != nil {
			return board.Footprint{}, err
		}
		circles = append(circles, board.Circle{
			UUID: board.UUID(c.UUID), Center: pt(c.Center), Diameter: mustPositive(c.DiameterMM),
			Layer: l, Width: mustUnsigned(c.WidthMM), Filled: c.Filled,
		})
	}
	var holes []board.Hole
	for _, h := range f.Holes {
		holes = append(holes, board.Hole{
			UUID: board.UUID(h.UUID), Diameter: mustPositive(h.DiameterMM), Path: h.Path.toGeom(),
			StopMaskOffset: optionalStopMask(h.StopMaskOffsetMM), Plated: h.Plated,
		})
	}
	var pads []board.FootprintPad
	for _, p := range f.Pads {
		pad, err := toPad(p)
		if err != nil {
			return board.Footprint{}, err
		}
		pads = append(pads, pad)
	}
	return board.Footprint{UUID: board.UUID(f.UUID), Polygons: polygons, Circles: circles, Holes: holes, Pads: pads}, nil
}

func toPad(p padFixture) (board.FootprintPad, error) {
	var geoms []board.PadGeometry
	for _, g := range p.Geometries {
		l, err := parseLayer(g.Layer)
		if err != nil {
			return board.FootprintPad{}, err
		}
		ratio, err := fixed.NewUnsignedLimitedRatio(fixed.RatioFromPercent(g.CornerRadiusRatioPercent))
		if err != nil {
			return board.FootprintPad{}, fmt.Errorf("pad %s: %w", p.UUID, err)
		}
		geoms = append(geoms, board.PadGeometry{
			Layer: l, Shape: padShapeFromName(g.Shape),
			Width: mustPositive(g.WidthMM), Height: mustPositive(g.HeightMM),
			CornerRadiusRatio: ratio,
			StrokePath:        g.StrokePath.toGeom(), StrokeWidth: mustPositive(g.StrokeWidthMM),
			CustomOutline: g.CustomOutline.toGeom(),
		})
	}
	var holes []board.PadHole
	for _, h := range p.Holes {
		holes = append(holes, board.PadHole{
			UUID: board.UUID(h.UUID), Diameter: mustPositive(h.DiameterMM), Path: h.Path.toGeom(),
		})
	}
	var sig *board.UUID
	if p.ComponentSignalUUID != nil {
		u := board.UUID(*p.ComponentSignalUUID)
		sig = &u
	}
	return board.FootprintPad{
		UUID: board.UUID(p.UUID), Position: pt(p.Position), Rotation: fixed.AngleFromDegrees(p.RotationDeg),
		Geometries: geoms, Holes: holes, ComponentSignalUUID: sig,
	}, nil
}

func toNetSegment(ns netSegmentFixture) (board.NetSegment, error) {
	var vias []board.Via
	for _, v := range ns.Vias {
		vias = append(vias, board.Via{
			UUID: board.UUID(v.UUID), Position: pt(v.At),
			DrillDiameter: mustPositive(v.DrillDiameterMM), OuterSize: mustPositive(v.OuterSizeMM),
			StopMaskOffset: optionalStopMask(v.StopMaskOffsetMM), NetSegmentUUID: board.UUID(ns.UUID),
		})
	}
	var netLines []board.NetLine
	for _, nl := range ns.NetLines {
		l, err := parseLayer(nl.Layer)
		if err != nil {
			return board.NetSegment{}, err
		}
		netLines = append(netLines, board.NetLine{
			UUID: board.UUID(nl.UUID), Start: pt(nl.Start), End: pt(nl.End),
			Width: mustPositive(nl.WidthMM), Layer: l,
		})
	}
	var netPoints []board.NetPoint
	for _, np := range ns.NetPoints {
		netPoints = append(netPoints, board.NetPoint{UUID: board.UUID(np.UUID), Position: pt(np.At)})
	}
	return board.NetSegment{
		UUID: board.UUID(ns.UUID), NetSignal: ns.NetSignal.toBoard(),
		Vias: vias, NetLines: netLines, NetPoints: netPoints,
	}, nil
}
