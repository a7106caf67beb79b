package drcmsg

import (
	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/geom"
	"github.com/Jimyzzp/LibrePCB/pkg/layer"
)

func NewMinimumWidthViolation(kind ObjectKind, uuid board.UUID, locations []geom.Path) Message {
	return Message{Kind: MinimumWidthViolation, Obj1: ObjectRef{kind, uuid}, Locations: locations}
}

// NewCopperCopperClearanceViolation canonicalizes its two sides by
// (object kind, object UUID) so the same real-world pair always
// produces the same message regardless of which side the caller
// passed as obj1 vs obj2, matching §4.F's ordering rule and the
// symmetry property in §8.3 (the same rule NewDrillDrillClearanceViolation
// and NewCourtyardOverlap apply to their own pairs).
func NewCopperCopperClearanceViolation(l1 layer.Layer, net1 *board.NetSignal, obj1 ObjectRef,
	l2 layer.Layer, net2 *board.NetSignal, obj2 ObjectRef, locations []geom.Path) Message {
	if objKeyLess(obj2, board.UUID(""), obj1, board.UUID("")) {
		l1, l2 = l2, l1
		net1, net2 = net2, net1
		obj1, obj2 = obj2, obj1
	}
	return Message{
		Kind: CopperCopperClearanceViolation,
		Obj1: obj1, Obj2: obj2,
		Layer1: l1, Layer2: l2,
		Net1: net1, Net2: net2,
		Locations: locations,
	}
}

func NewCopperBoardClearanceViolation(kind ObjectKind, uuid board.UUID, locations []geom.Path) Message {
	return Message{Kind: CopperBoardClearanceViolation, Obj1: ObjectRef{kind, uuid}, Locations: locations}
}

func NewCopperHoleClearanceViolation(ownerKind ObjectKind, ownerUUID board.UUID, holeUUID board.UUID, locations []geom.Path) Message {
	return Message{
		Kind: CopperHoleClearanceViolation,
		Obj1: ObjectRef{ownerKind, ownerUUID}, Hole1: holeUUID,
		Locations: locations,
	}
}

// NewDrillDrillClearanceViolation canonicalizes its two endpoints so
// that (obj1, hole1) <= (obj2, hole2) in the emitted message,
// matching §4.F's ordering rule and the symmetry property in §8.3.
func NewDrillDrillClearanceViolation(kindA ObjectKind, uuidA, holeA board.UUID,
	kindB ObjectKind, uuidB, holeB board.UUID, locations []geom.Path) Message {
	a := ObjectRef{kindA, uuidA}
	b := ObjectRef{kindB, uuidB}
	if objKeyLess(b, holeB, a, holeA) {
		a, b = b, a
		holeA, holeB = holeB, holeA
	}
	return Message{
		Kind: DrillDrillClearanceViolation,
		Obj1: a, Hole1: holeA,
		Obj2: b, Hole2: holeB,
		Locations: locations,
	}
}

func NewDrillBoardClearanceViolation(kind ObjectKind, uuid, holeUUID board.UUID, locations []geom.Path) Message {
	return Message{
		Kind: DrillBoardClearanceViolation,
		Obj1: ObjectRef{kind, uuid}, Hole1: holeUUID,
		Locations: locations,
	}
}

func NewMinimumAnnularRingViolation(kind ObjectKind, uuid board.UUID, locations []geom.Path) Message {
	return Message{Kind: MinimumAnnularRingViolation, Obj1: ObjectRef{kind, uuid}, Locations: locations}
}

func NewMinimumDrillDiameterViolation(kind ObjectKind, uuid, holeUUID board.UUID, locations []geom.Path) Message {
	return Message{
		Kind: MinimumDrillDiameterViolation,
		Obj1: ObjectRef{kind, uuid}, Hole1: holeUUID,
		Locations: locations,
	}
}

func NewMinimumSlotWidthViolation(kind ObjectKind, uuid, holeUUID board.UUID, locations []geom.Path) Message {
	return Message{
		Kind: MinimumSlotWidthViolation,
		Obj1: ObjectRef{kind, uuid}, Hole1: holeUUID,
		Locations: locations,
	}
}

func NewForbiddenSlot(kind ObjectKind, uuid, holeUUID board.UUID, locations []geom.Path) Message {
	return Message{
		Kind: ForbiddenSlot,
		Obj1: ObjectRef{kind, uuid}, Hole1: holeUUID,
		Locations: locations,
	}
}

func NewInvalidPadConnection(padUUID board.UUID, l layer.Layer, locations []geom.Path) Message {
	return Message{
		Kind:   InvalidPadConnection,
		Obj1:   ObjectRef{ObjectPad, padUUID},
		Layer1: l,
		Locations: locations,
	}
}

// NewCourtyardOverlap canonicalizes its two device UUIDs
// lexicographically, matching §4.F.
func NewCourtyardOverlap(device1, device2 board.UUID, locations []geom.Path) Message {
	if device2 < device1 {
		device1, device2 = device2, device1
	}
	return Message{
		Kind: CourtyardOverlap,
		Obj1: ObjectRef{ObjectDevice, device1},
		Obj2: ObjectRef{ObjectDevice, device2},
		Locations: locations,
	}
}

func NewOpenBoardOutlinePolygon(deviceUUID *board.UUID, polygonUUID board.UUID, locations []geom.Path) Message {
	m := Message{
		Kind: OpenBoardOutlinePolygon,
		Obj2: ObjectRef{ObjectPolygon, polygonUUID},
		Locations: locations,
	}
	if deviceUUID != nil {
		m.Obj1 = ObjectRef{ObjectDevice, *deviceUUID}
	}
	return m
}

func NewMissingBoardOutline() Message {
	return Message{Kind: MissingBoardOutline}
}

func NewMultipleBoardOutlines(locations []geom.Path) Message {
	return Message{Kind: MultipleBoardOutlines, Locations: locations}
}

func NewMinimumBoardOutlineInnerRadiusViolation(locations []geom.Path) Message {
	return Message{Kind: MinimumBoardOutlineInnerRadiusViolation, Locations: locations}
}

func NewMissingDevice(componentUUID board.UUID) Message {
	return Message{Kind: MissingDevice, Obj1: ObjectRef{UUID: componentUUID}}
}

func NewDefaultDeviceMismatch(componentUUID board.UUID) Message {
	return Message{Kind: DefaultDeviceMismatch, Obj1: ObjectRef{UUID: componentUUID}}
}

// NewMissingConnection canonicalizes its two endpoints so that
// endpoint1 <= endpoint2, matching §4.F.
func NewMissingConnection(netUUID board.UUID, endpoint1, endpoint2 board.UUID, locations []geom.Path) Message {
	if endpoint2 < endpoint1 {
		endpoint1, endpoint2 = endpoint2, endpoint1
	}
	return Message{
		Kind: MissingConnection, NetUUID: netUUID,
		Endpoint1: endpoint1, Endpoint2: endpoint2,
		Locations: locations,
	}
}

func NewEmptyNetSegment(netSegmentUUID board.UUID) Message {
	return Message{Kind: EmptyNetSegment, Obj1: ObjectRef{UUID: netSegmentUUID}}
}

func NewUnconnectedJunction(netPointUUID board.UUID) Message {
	return Message{Kind: UnconnectedJunction, Obj1: ObjectRef{UUID: netPointUUID}}
}

// objKeyLess orders (kind, uuid, hole) triples for the canonicalizing
// constructors above: by object kind, then object UUID, then hole UUID.
func objKeyLess(a ObjectRef, holeA board.UUID, b ObjectRef, holeB board.UUID) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	if a.UUID != b.UUID {
		return a.UUID < b.UUID
	}
	return holeA < holeB
}
