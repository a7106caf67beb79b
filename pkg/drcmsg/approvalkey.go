package drcmsg

import (
	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/sexpr"
)

// ApprovalKey builds the stable S-expression identity described in
// §4.F: the head symbol names the Kind, and the children follow the
// fixed per-Kind schema in the table (order matters; canonicalizing
// constructors in constructors.go have already put pair-wise fields
// into a deterministic order before this method ever runs).
func (m Message) ApprovalKey() *sexpr.List {
	head := m.Kind.String()
	switch m.Kind {
	case MinimumWidthViolation, CopperBoardClearanceViolation:
		return sexpr.NewList(head, sexpr.Sym(string(m.Obj1.Kind)), sexpr.SymUUID(m.Obj1.UUID))
	case CopperCopperClearanceViolation:
		return sexpr.NewList(head,
			sexpr.Sym(m.Layer1.String()), sexpr.SymUUID(optionalNetUUID(m.Net1)),
			sexpr.Sym(string(m.Obj1.Kind)), sexpr.SymUUID(m.Obj1.UUID),
			sexpr.Sym(m.Layer2.String()), sexpr.SymUUID(optionalNetUUID(m.Net2)),
			sexpr.Sym(string(m.Obj2.Kind)), sexpr.SymUUID(m.Obj2.UUID),
		)
	case CopperHoleClearanceViolation:
		return sexpr.NewList(head,
			sexpr.Sym(string(m.Obj1.Kind)), sexpr.SymUUID(m.Obj1.UUID), sexpr.SymUUID(m.Hole1))
	case DrillDrillClearanceViolation:
		return sexpr.NewList(head,
			sexpr.Sym(string(m.Obj1.Kind)), sexpr.SymUUID(m.Obj1.UUID), sexpr.SymUUID(m.Hole1),
			sexpr.Sym(string(m.Obj2.Kind)), sexpr.SymUUID(m.Obj2.UUID), sexpr.SymUUID(m.Hole2),
		)
	case DrillBoardClearanceViolation:
		return sexpr.NewList(head,
			sexpr.Sym(string(m.Obj1.Kind)), sexpr.SymUUID(m.Obj1.UUID), sexpr.SymUUID(m.Hole1))
	case MinimumAnnularRingViolation:
		return sexpr.NewList(head, sexpr.Sym(string(m.Obj1.Kind)), sexpr.SymUUID(m.Obj1.UUID))
	case MinimumDrillDiameterViolation, MinimumSlotWidthViolation, ForbiddenSlot:
		return sexpr.NewList(head,
			sexpr.Sym(string(m.Obj1.Kind)), sexpr.SymUUID(m.Obj1.UUID), sexpr.SymUUID(m.Hole1))
	case InvalidPadConnection:
		return sexpr.NewList(head, sexpr.SymUUID(m.Obj1.UUID), sexpr.Sym(m.Layer1.String()))
	case CourtyardOverlap:
		return sexpr.NewList(head, sexpr.SymUUID(m.Obj1.UUID), sexpr.SymUUID(m.Obj2.UUID))
	case OpenBoardOutlinePolygon:
		return sexpr.NewList(head, sexpr.SymUUID(deviceUUIDOrNone(m.Obj1)), sexpr.SymUUID(m.Obj2.UUID))
	case MissingBoardOutline:
		return sexpr.NewList(head)
	case MultipleBoardOutlines:
		return sexpr.NewList(head)
	case MinimumBoardOutlineInnerRadiusViolation:
		return sexpr.NewList(head)
	case MissingDevice, DefaultDeviceMismatch:
		return sexpr.NewList(head, sexpr.SymUUID(m.Obj1.UUID))
	case MissingConnection:
		return sexpr.NewList(head, sexpr.SymUUID(optionalUUID(m.NetUUID)), sexpr.SymUUID(m.Endpoint1), sexpr.SymUUID(m.Endpoint2))
	case EmptyNetSegment, UnconnectedJunction:
		return sexpr.NewList(head, sexpr.SymUUID(m.Obj1.UUID))
	default:
		return sexpr.NewList(head)
	}
}

// nullableUUID wraps a possibly-empty UUID so SymUUID always has
// something to print: the canonical text for an absent UUID is the
// literal symbol "none", never an empty quoted string.
type nullableUUID struct {
	uuid board.UUID
}

func (n nullableUUID) String() string {
	if n.uuid.IsZero() {
		return "none"
	}
	return n.uuid.String()
}

// optionalNetUUID wraps a feature's net UUID the same way optionalUUID
// does: board polygons, device polygons/circles, and pads with no
// connected signal all carry a nil *board.NetSignal, which must render
// as the sentinel symbol "none", not an empty quoted string —
// sexpr.Canonical doesn't quote "" and ParseCanonical then silently
// drops the resulting blank line, shortening the list on round trip.
func optionalNetUUID(n *board.NetSignal) nullableUUID {
	if n == nil {
		return nullableUUID{}
	}
	return nullableUUID{uuid: n.UUID}
}

func optionalUUID(u board.UUID) nullableUUID { return nullableUUID{uuid: u} }

func deviceUUIDOrNone(ref ObjectRef) nullableUUID { return nullableUUID{uuid: ref.UUID} }
