package drc

import (
	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/drcmsg"
	"github.com/Jimyzzp/LibrePCB/pkg/drcsettings"
	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
	"github.com/Jimyzzp/LibrePCB/pkg/polygon"
)

// checkDrillDrillClearance is §4.G check 5: every pair of drills
// (regardless of plating) must be separated by MinDrillDrillClearance.
func checkDrillDrillClearance(r *run) {
	clearance := r.settings.MinDrillDrillClearance
	if clearance.IsZero() {
		return
	}
	offset := fullInflate(clearance.Length())
	drills := append(drillsFor(r, true), drillsFor(r, false)...)

	results := runPairs(len(drills), func(i, j int) []drcmsg.Message {
		a, b := drills[i], drills[j]
		overlap := polygon.Intersect(a.holePath(offset), b.holePath(offset))
		if len(overlap) == 0 {
			return nil
		}
		return []drcmsg.Message{drcmsg.NewDrillDrillClearanceViolation(
			a.kind, a.ownerUUID, a.holeUUID, b.kind, b.ownerUUID, b.holeUUID, overlap,
		)}
	})
	for _, m := range results {
		r.emit(m)
	}
}

// checkDrillBoardClearance is §4.G check 6: no drill may enter the
// board-outline clearance band.
func checkDrillBoardClearance(r *run) {
	clearance := r.settings.MinDrillBoardClearance
	if clearance.IsZero() {
		return
	}
	band := boardOutlineBand(r, clearance.Length())
	if len(band) == 0 {
		return
	}
	drills := append(drillsFor(r, true), drillsFor(r, false)...)
	for _, d := range drills {
		overlap := polygon.Intersect(d.holePath(0), band)
		if len(overlap) == 0 {
			continue
		}
		r.emit(drcmsg.NewDrillBoardClearanceViolation(d.kind, d.ownerUUID, d.holeUUID, overlap))
	}
}

// checkMinimumPthAnnularRing is §4.G check 7: a plated via/hole's
// inflated drill must be fully covered by copper common to every
// copper layer.
func checkMinimumPthAnnularRing(r *run) {
	ring := r.settings.MinPthAnnularRing
	if ring.IsZero() {
		return
	}
	layers := r.model.CopperLayers()
	if len(layers) == 0 {
		return
	}
	common := r.cache.layerUnrestricted(layers[0], MaxArcTolerance)
	for _, l := range layers[1:] {
		common = polygon.Intersect(common, r.cache.layerUnrestricted(l, MaxArcTolerance))
	}

	offset := 2*ring.Length() - 1
	for _, d := range drillsFor(r, true) {
		inflated := d.holePath(offset)
		uncovered := polygon.Subtract(inflated, common)
		if len(uncovered) == 0 {
			continue
		}
		r.emit(drcmsg.NewMinimumAnnularRingViolation(d.kind, d.ownerUUID, uncovered))
	}
}

// checkMinimumDrillDiameters is §4.G check 8: MinimumNpthDrillDiameter
// and MinimumPthDrillDiameter, split by plating.
func checkMinimumDrillDiameters(r *run) {
	checkOneMinDrillDiameter(r, true, r.settings.MinPthDrillDiameter)
	checkOneMinDrillDiameter(r, false, r.settings.MinNpthDrillDiameter)
}

func checkOneMinDrillDiameter(r *run, plated bool, min fixed.UnsignedLength) {
	if min.IsZero() {
		return
	}
	for _, d := range drillsFor(r, plated) {
		if d.diameter.Length() < min.Length() {
			r.emit(drcmsg.NewMinimumDrillDiameterViolation(d.kind, d.ownerUUID, d.holeUUID, nil))
		}
	}
}

// checkMinimumSlotWidths is §4.G check 9: a slot's width is its
// diameter along the short axis, which this model records directly as
// the drill's Diameter field.
func checkMinimumSlotWidths(r *run) {
	checkOneMinSlotWidth(r, true, r.settings.MinPthSlotWidth)
	checkOneMinSlotWidth(r, false, r.settings.MinNpthSlotWidth)
}

func checkOneMinSlotWidth(r *run, plated bool, min fixed.UnsignedLength) {
	if min.IsZero() {
		return
	}
	for _, d := range drillsFor(r, plated) {
		if board.HoleShapeClassOf(d.path) == board.HoleShapeRound {
			continue
		}
		if d.diameter.Length() < min.Length() {
			r.emit(drcmsg.NewMinimumSlotWidthViolation(d.kind, d.ownerUUID, d.holeUUID, nil))
		}
	}
}

// checkAllowedSlots is §4.G check 10: classify each slot's shape and
// flag it when it exceeds the configured allowance.
func checkAllowedSlots(r *run) {
	checkOneAllowedSlots(r, true, r.settings.AllowedPthSlots)
	checkOneAllowedSlots(r, false, r.settings.AllowedNpthSlots)
}

func checkOneAllowedSlots(r *run, plated bool, allowed drcsettings.AllowedSlotMode) {
	for _, d := range drillsFor(r, plated) {
		class := board.HoleShapeClassOf(d.path)
		if class == board.HoleShapeRound {
			continue
		}
		if slotClassRank(class) > slotModeRank(allowed) {
			r.emit(drcmsg.NewForbiddenSlot(d.kind, d.ownerUUID, d.holeUUID, nil))
		}
	}
}

func slotClassRank(c board.HoleShapeClass) int {
	switch c {
	case board.HoleShapeSingleSegmentStraight:
		return 1
	case board.HoleShapeMultiSegmentStraight:
		return 2
	case board.HoleShapeCurved:
		return 3
	default:
		return 0
	}
}

func slotModeRank(m drcsettings.AllowedSlotMode) int {
	switch m {
	case drcsettings.SlotsNone:
		return 0
	case drcsettings.SlotsSingleSegmentStraight:
		return 1
	case drcsettings.SlotsMultiSegmentStraight:
		return 2
	default:
		return 3
	}
}
