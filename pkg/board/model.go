package board

import (
	"github.com/Jimyzzp/LibrePCB/pkg/layer"
)

// Model is the complete, already-loaded board the DRC core operates
// on. It aggregates every object collection plus a reference to the
// enclosing Project, and exposes the arena-indexed-by-UUID lookups the
// engine needs. Arenas follow the teacher's LayerMap/NetMap shape
// (pkg/kicad/pcb/types.go): a byUUID map of pointers into an owned
// slice, generalized from int/string keys to UUID.
type Model struct {
	innerCopperCount int

	devices     []Device
	netSegments []NetSegment
	planes      []Plane
	polygons    []Polygon
	strokeTexts []StrokeText
	holes       []Hole
	airWires    []AirWire

	project *Project

	devicesByUUID map[UUID]*Device
	devicesByComponentUUID map[UUID]*Device
}

// NewModel builds a Model from already-loaded collections. innerCopperCount
// is the number of inner copper layers in the board's stackup (0 for a
// two-layer board).
func NewModel(innerCopperCount int, project *Project) *Model {
	return &Model{
		innerCopperCount:       innerCopperCount,
		project:                project,
		devicesByUUID:          make(map[UUID]*Device),
		devicesByComponentUUID: make(map[UUID]*Device),
	}
}

// CopperLayers returns the board's copper stackup: top, inner 1..N,
// bottom, in that order.
func (m *Model) CopperLayers() []layer.Layer {
	return layer.CopperLayers(m.innerCopperCount)
}

func (m *Model) Devices() []Device         { return m.devices }
func (m *Model) NetSegments() []NetSegment { return m.netSegments }
func (m *Model) Planes() []Plane           { return m.planes }
func (m *Model) Polygons() []Polygon       { return m.polygons }
func (m *Model) StrokeTexts() []StrokeText { return m.strokeTexts }
func (m *Model) Holes() []Hole             { return m.holes }
func (m *Model) AirWires() []AirWire       { return m.airWires }
func (m *Model) Project() *Project         { return m.project }

// AddDevice places a Device on the board. Test fixtures and the JSON
// board loader (cmd/drc) are the only callers — the DRC core itself
// never mutates a Model's object collections.
func (m *Model) AddDevice(d Device) {
	m.devices = append(m.devices, d)
	added := &m.devices[len(m.devices)-1]
	m.devicesByUUID[d.UUID] = added
	m.devicesByComponentUUID[d.ComponentUUID] = added
}

func (m *Model) AddNetSegment(s NetSegment) { m.netSegments = append(m.netSegments, s) }
func (m *Model) AddPlane(p Plane)           { m.planes = append(m.planes, p) }
func (m *Model) AddPolygon(p Polygon)       { m.polygons = append(m.polygons, p) }
func (m *Model) AddStrokeText(t StrokeText) { m.strokeTexts = append(m.strokeTexts, t) }
func (m *Model) AddHole(h Hole)             { m.holes = append(m.holes, h) }
func (m *Model) SetAirWires(a []AirWire)    { m.airWires = a }

// DeviceInstanceByComponentUUID finds the placed Device realizing the
// given ComponentInstance, if any.
func (m *Model) DeviceInstanceByComponentUUID(componentUUID UUID) (*Device, bool) {
	d, ok := m.devicesByComponentUUID[componentUUID]
	return d, ok
}

// DeviceByUUID finds a placed Device by its own UUID, for resolving a
// UUID found on a message back to the placed object.
func (m *Model) DeviceByUUID(uuid UUID) (*Device, bool) {
	d, ok := m.devicesByUUID[uuid]
	return d, ok
}

// NetSignalForPad resolves a device's pad through the
// NetSignal<->ComponentSignalInstance<->Pad graph: pad's
// ComponentSignalUUID names a library signal, d.ComponentUUID names
// the schematic ComponentInstance realizing d, and that instance's
// SignalInstances carry the actual net (or nil, for an unconnected
// signal). Returns nil whenever the pad has no ComponentSignalUUID,
// the component instance cannot be found, or the instance exposes no
// matching signal.
func (m *Model) NetSignalForPad(d *Device, pad FootprintPad) *NetSignal {
	if pad.ComponentSignalUUID == nil || m.project == nil {
		return nil
	}
	for _, ci := range m.project.Circuit().ComponentInstances() {
		if ci.UUID != d.ComponentUUID {
			continue
		}
		return ci.NetSignalForComponentSignal(*pad.ComponentSignalUUID)
	}
	return nil
}

// ForceAirWiresRebuild recomputes AirWires from the model's netlist.
// This core treats missing-connection detection as an external
// collaborator's job (§1 Non-goals: no copper-path tracing) — the
// model is expected to already know which net points remain
// unconnected; this just re-derives AirWires from NetSegments that
// carry no NetLine linking all of their NetPoints, a conservative
// approximation sufficient for the MissingConnections check (§4.G
// check 16) without reimplementing ratsnest routing.
func (m *Model) ForceAirWiresRebuild() {
	var wires []AirWire
	for i := range m.netSegments {
		seg := &m.netSegments[i]
		if len(seg.NetPoints) < 2 || len(seg.NetLines) > 0 {
			continue
		}
		for j := 1; j < len(seg.NetPoints); j++ {
			wires = append(wires, AirWire{
				P1:        NetPointRef{UUID: seg.NetPoints[0].UUID, Position: seg.NetPoints[0].Position},
				P2:        NetPointRef{UUID: seg.NetPoints[j].UUID, Position: seg.NetPoints[j].Position},
				NetSignal: seg.NetSignal,
			})
		}
	}
	m.airWires = wires
}
