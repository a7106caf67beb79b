package drc

import (
	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/drcmsg"
)

// checkUnplacedComponents is §4.G check 14: every non-schematic-only
// ComponentInstance must have a placed Device on the board.
func checkUnplacedComponents(r *run) {
	circuit := r.model.Project().Circuit()
	for _, ci := range circuit.ComponentInstances() {
		if ci.SchematicOnly {
			continue
		}
		if _, ok := r.model.DeviceInstanceByComponentUUID(ci.UUID); !ok {
			r.emit(drcmsg.NewMissingDevice(ci.UUID))
		}
	}
}

// checkCircuitDefaultDevices is §4.G check 15: a placed device whose
// library UUID diverges from its ComponentInstance's configured
// default device is a (hint-level, per §4.F) mismatch.
func checkCircuitDefaultDevices(r *run) {
	circuit := r.model.Project().Circuit()
	instances := circuit.ComponentInstances()
	index := make(map[board.UUID]int, len(instances))
	for i, ci := range instances {
		index[ci.UUID] = i
	}

	for _, d := range r.model.Devices() {
		i, ok := index[d.ComponentUUID]
		if !ok {
			continue
		}
		ci := instances[i]
		if ci.DefaultDeviceUUID != nil && *ci.DefaultDeviceUUID != d.LibraryUUID {
			r.emit(drcmsg.NewDefaultDeviceMismatch(ci.UUID))
		}
	}
}
