package board

// ComponentInstance is the minimal view of a schematic component
// instance the core needs through Project().Circuit(). Grounded on
// the teacher's Net (pkg/kicad/pcb/types.go): a small named record
// with a numeric/UUID identity, no behavior of its own.
type ComponentInstance struct {
	UUID              UUID
	Name              string // display name, e.g. "R1"
	SchematicOnly     bool
	DefaultDeviceUUID *UUID // nil if the component has no library default
	SignalInstances   []ComponentSignalInstance
}

// ComponentSignalInstance is the schematic-level link between one of a
// component's library signals and the net it is wired to, the
// NetSignal <-> ComponentSignalInstance <-> Pad graph's middle arena.
// NetSignal is nil for a signal with no net assigned (an unconnected
// pin), mirroring the reference implementation's
// getCompSigInstNetSignal(), which returns a null pointer in that
// case rather than a sentinel.
type ComponentSignalInstance struct {
	UUID                UUID
	ComponentSignalUUID UUID
	NetSignal           *NetSignal
}

// NetSignalForComponentSignal resolves a footprint pad's
// ComponentSignalUUID to the net instance it carries, or nil if the
// component has no signal instance for that UUID (or the signal is
// unconnected). Linear scan, matching the teacher's GetNet*-style
// accessors (pkg/kicad/pcb/board.go) over what is always a short list.
func (ci ComponentInstance) NetSignalForComponentSignal(componentSignalUUID UUID) *NetSignal {
	for _, si := range ci.SignalInstances {
		if si.ComponentSignalUUID == componentSignalUUID {
			return si.NetSignal
		}
	}
	return nil
}

// Circuit owns the set of ComponentInstances for a Project.
type Circuit struct {
	components []ComponentInstance
}

func NewCircuit(components []ComponentInstance) *Circuit {
	return &Circuit{components: components}
}

func (c *Circuit) ComponentInstances() []ComponentInstance {
	return c.components
}

// Project is the enclosing library/schematic context a BoardModel is
// part of. The core only ever reaches into it for the Circuit.
type Project struct {
	circuit *Circuit
}

func NewProject(circuit *Circuit) *Project {
	return &Project{circuit: circuit}
}

func (p *Project) Circuit() *Circuit {
	return p.circuit
}

// NetSignal is an electrical net. It is compared only by identity
// (pointer equality of the UUID) for clearance purposes, never by
// name, matching the reference implementation's treatment of nets as
// opaque handles during DRC.
type NetSignal struct {
	UUID UUID
	Name string
}
