package drcmsg

import (
	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/geom"
	"github.com/Jimyzzp/LibrePCB/pkg/layer"
)

// ObjectRef names one BoardObject a message refers to.
type ObjectRef struct {
	Kind ObjectKind
	UUID board.UUID
}

// Message is a single emitted violation. It is a value type (§9:
// "Abundant use of smart pointers... replaced with value types") —
// cheap to copy, shared read-only between the engine, the approval
// filter, and the caller.
type Message struct {
	Kind     Kind
	Obj1     ObjectRef
	Obj2     ObjectRef // zero value when the kind has no second object
	Layer1   layer.Layer
	Layer2   layer.Layer
	Net1     *board.NetSignal
	Net2     *board.NetSignal
	Hole1    board.UUID
	Hole2    board.UUID
	NetUUID  board.UUID // MissingConnection's owning net, may be zero
	Endpoint1 board.UUID
	Endpoint2 board.UUID
	Locations []geom.Path
}

// Severity is m's fixed per-Kind severity.
func (m Message) Severity() Severity {
	return m.Kind.Severity()
}

func netName(n *board.NetSignal) string {
	if n == nil {
		return "(no net)"
	}
	return n.Name
}
