package drcmsg

import "fmt"

// Message returns the localized one-line summary. Built with
// fmt.Sprintf in the teacher's plain informational-string style (see
// cmd/otj/cmd/pcb.go's net listing) rather than any localization
// framework, which is explicitly out of scope for the core.
func (m Message) Message() string {
	switch m.Kind {
	case MinimumWidthViolation:
		return fmt.Sprintf("Minimum copper width violated on %s %s", m.Obj1.Kind, m.Obj1.UUID)
	case CopperCopperClearanceViolation:
		return fmt.Sprintf("Clearance violation between %s %s (net %s) and %s %s (net %s)",
			m.Obj1.Kind, m.Obj1.UUID, netName(m.Net1), m.Obj2.Kind, m.Obj2.UUID, netName(m.Net2))
	case CopperBoardClearanceViolation:
		return fmt.Sprintf("Clearance to board outline violated by %s %s", m.Obj1.Kind, m.Obj1.UUID)
	case CopperHoleClearanceViolation:
		return fmt.Sprintf("Clearance to hole %s violated by %s %s", m.Hole1, m.Obj1.Kind, m.Obj1.UUID)
	case DrillDrillClearanceViolation:
		return fmt.Sprintf("Drill clearance violation between %s %s (hole %s) and %s %s (hole %s)",
			m.Obj1.Kind, m.Obj1.UUID, m.Hole1, m.Obj2.Kind, m.Obj2.UUID, m.Hole2)
	case DrillBoardClearanceViolation:
		return fmt.Sprintf("Drill clearance to board outline violated by %s %s (hole %s)", m.Obj1.Kind, m.Obj1.UUID, m.Hole1)
	case MinimumAnnularRingViolation:
		return fmt.Sprintf("Minimum annular ring violated on %s %s", m.Obj1.Kind, m.Obj1.UUID)
	case MinimumDrillDiameterViolation:
		return fmt.Sprintf("Minimum drill diameter violated on %s %s (hole %s)", m.Obj1.Kind, m.Obj1.UUID, m.Hole1)
	case MinimumSlotWidthViolation:
		return fmt.Sprintf("Minimum slot width violated on %s %s (hole %s)", m.Obj1.Kind, m.Obj1.UUID, m.Hole1)
	case ForbiddenSlot:
		return fmt.Sprintf("Forbidden slot shape on %s %s (hole %s)", m.Obj1.Kind, m.Obj1.UUID, m.Hole1)
	case InvalidPadConnection:
		return fmt.Sprintf("Invalid connection to pad %s on layer %s", m.Obj1.UUID, m.Layer1)
	case CourtyardOverlap:
		return fmt.Sprintf("Courtyard overlap between device %s and device %s", m.Obj1.UUID, m.Obj2.UUID)
	case OpenBoardOutlinePolygon:
		return fmt.Sprintf("Open board outline polygon %s", m.Obj2.UUID)
	case MissingBoardOutline:
		return "No board outline found"
	case MultipleBoardOutlines:
		return "Multiple board outlines found"
	case MinimumBoardOutlineInnerRadiusViolation:
		return "Minimum inner radius of the board outline violated"
	case MissingDevice:
		return fmt.Sprintf("Component %s has no device placed", m.Obj1.UUID)
	case DefaultDeviceMismatch:
		return fmt.Sprintf("Component %s uses a device different from its default", m.Obj1.UUID)
	case MissingConnection:
		return fmt.Sprintf("Missing connection between %s and %s", m.Endpoint1, m.Endpoint2)
	case EmptyNetSegment:
		return fmt.Sprintf("Net segment %s has no net lines or vias", m.Obj1.UUID)
	case UnconnectedJunction:
		return fmt.Sprintf("Net point %s has no connected net line", m.Obj1.UUID)
	default:
		return fmt.Sprintf("Unknown violation (kind %d)", m.Kind)
	}
}

// Description returns the multi-line explanation. Like Message, this
// is a plain Sprintf-built string — no localization framework.
func (m Message) Description() string {
	switch m.Kind {
	case MinimumWidthViolation:
		return fmt.Sprintf("The copper width of %s %s is below the configured minimum.\nIncrease the width or lower the minimum copper width setting.",
			m.Obj1.Kind, m.Obj1.UUID)
	case CopperCopperClearanceViolation:
		return fmt.Sprintf("%s %s on layer %s (net %s) is closer than the configured clearance to\n%s %s on layer %s (net %s).",
			m.Obj1.Kind, m.Obj1.UUID, m.Layer1, netName(m.Net1),
			m.Obj2.Kind, m.Obj2.UUID, m.Layer2, netName(m.Net2))
	case CopperBoardClearanceViolation:
		return fmt.Sprintf("%s %s is closer than the configured clearance to the board outline.", m.Obj1.Kind, m.Obj1.UUID)
	case CopperHoleClearanceViolation:
		return fmt.Sprintf("%s %s is closer than the configured clearance to hole %s.", m.Obj1.Kind, m.Obj1.UUID, m.Hole1)
	case DrillDrillClearanceViolation:
		return fmt.Sprintf("Hole %s of %s %s is closer than the configured clearance to\nhole %s of %s %s.",
			m.Hole1, m.Obj1.Kind, m.Obj1.UUID, m.Hole2, m.Obj2.Kind, m.Obj2.UUID)
	case DrillBoardClearanceViolation:
		return fmt.Sprintf("Hole %s of %s %s is closer than the configured clearance to the board outline.", m.Hole1, m.Obj1.Kind, m.Obj1.UUID)
	case MinimumAnnularRingViolation:
		return fmt.Sprintf("%s %s does not have enough annular ring to fully cover its drill.", m.Obj1.Kind, m.Obj1.UUID)
	case MinimumDrillDiameterViolation:
		return fmt.Sprintf("Hole %s of %s %s is smaller than the configured minimum drill diameter.", m.Hole1, m.Obj1.Kind, m.Obj1.UUID)
	case MinimumSlotWidthViolation:
		return fmt.Sprintf("Hole %s of %s %s is narrower than the configured minimum slot width.", m.Hole1, m.Obj1.Kind, m.Obj1.UUID)
	case ForbiddenSlot:
		return fmt.Sprintf("Hole %s of %s %s has a slot shape that is not allowed by the current settings.", m.Hole1, m.Obj1.Kind, m.Obj1.UUID)
	case InvalidPadConnection:
		return fmt.Sprintf("Pad %s has a net line on layer %s but its copper on that layer does not cover the pad origin.", m.Obj1.UUID, m.Layer1)
	case CourtyardOverlap:
		return fmt.Sprintf("The courtyards of device %s and device %s overlap.", m.Obj1.UUID, m.Obj2.UUID)
	case OpenBoardOutlinePolygon:
		return fmt.Sprintf("Board outline polygon %s is not closed.", m.Obj2.UUID)
	case MissingBoardOutline:
		return "The board has no outline polygon on the board outline layer."
	case MultipleBoardOutlines:
		return "The board outline layer contains more than one closed ring; only one is expected."
	case MinimumBoardOutlineInnerRadiusViolation:
		return "An inner corner of the board outline is sharper than the configured minimum tool radius allows."
	case MissingDevice:
		return fmt.Sprintf("Component %s is referenced by the circuit but has no device placed on the board.", m.Obj1.UUID)
	case DefaultDeviceMismatch:
		return fmt.Sprintf("The device placed for component %s differs from the component's configured default device.", m.Obj1.UUID)
	case MissingConnection:
		return fmt.Sprintf("Net point %s and net point %s should be connected but no copper path links them.", m.Endpoint1, m.Endpoint2)
	case EmptyNetSegment:
		return fmt.Sprintf("Net segment %s contains only unconnected net points and can likely be removed.", m.Obj1.UUID)
	case UnconnectedJunction:
		return fmt.Sprintf("Net point %s is not connected to any net line.", m.Obj1.UUID)
	default:
		return ""
	}
}
