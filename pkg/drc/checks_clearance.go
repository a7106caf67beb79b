package drc

import (
	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/drcmsg"
	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
	"github.com/Jimyzzp/LibrePCB/pkg/polygon"
)

// halfInflate is the per-feature inflation §4.G check 2 applies
// before testing for overlap: ((clearance - MaxArcTolerance) / 2) - 1,
// floored at zero. Two features inflated by this amount overlap
// exactly when their true (un-inflated) separation is below clearance,
// to within MaxArcTolerance's arc-flattening error.
func halfInflate(clearance fixed.Length) fixed.Length {
	v := (clearance-MaxArcTolerance)/2 - 1
	if v < 0 {
		return 0
	}
	return v
}

// fullInflate is the analogous single-feature inflation §4.G checks
// 4 and 5 use (copper-hole, where only the hole is grown, and
// drill-drill, where each drill is grown): clearance - MaxArcTolerance - 1.
func fullInflate(clearance fixed.Length) fixed.Length {
	v := clearance - MaxArcTolerance - 1
	if v < 0 {
		return 0
	}
	return v
}

// checkCopperCopperClearance is §4.G check 2: every unordered pair of
// copper features on a shared layer, with differing (or absent) nets,
// must be separated by at least MinCopperCopperClearance.
func checkCopperCopperClearance(r *run) {
	clearance := r.settings.MinCopperCopperClearance
	if clearance.IsZero() {
		return
	}
	offset := halfInflate(clearance.Length())

	for _, l := range r.model.CopperLayers() {
		features := collectCopperFeatures(r, l, !r.quick)
		pairs := runPairs(len(features), func(i, j int) []drcmsg.Message {
			a, b := features[i], features[j]
			if sameNet(a.net, b.net) {
				return nil
			}
			overlap := polygon.Intersect(a.path(offset), b.path(offset))
			if len(overlap) == 0 {
				return nil
			}
			return []drcmsg.Message{drcmsg.NewCopperCopperClearanceViolation(
				l, a.net, drcmsg.ObjectRef{Kind: a.kind, UUID: a.uuid},
				l, b.net, drcmsg.ObjectRef{Kind: b.kind, UUID: b.uuid},
				overlap,
			)}
		})
		for _, m := range pairs {
			r.emit(m)
		}
	}
}

func sameNet(a, b *board.NetSignal) bool {
	if a == nil || b == nil {
		return false
	}
	return a.UUID == b.UUID
}

// checkCopperBoardClearance is §4.G check 3: no copper feature may
// enter the forbidden band running along the board outline.
func checkCopperBoardClearance(r *run) {
	clearance := r.settings.MinCopperBoardClearance
	if clearance.IsZero() {
		return
	}
	band := boardOutlineBand(r, clearance.Length())
	if len(band) == 0 {
		return
	}
	for _, l := range r.model.CopperLayers() {
		for _, f := range collectCopperFeatures(r, l, !r.quick) {
			overlap := polygon.Intersect(f.path(0), band)
			if len(overlap) == 0 {
				continue
			}
			r.emit(drcmsg.NewCopperBoardClearanceViolation(f.kind, f.uuid, overlap))
		}
	}
}

// checkCopperHoleClearance is §4.G check 4: copper must keep clear of
// every non-plated hole by MinCopperNpthClearance (a plated hole's
// copper ring is handled by MinimumPthAnnularRing instead, check 7).
func checkCopperHoleClearance(r *run) {
	clearance := r.settings.MinCopperNpthClearance
	if clearance.IsZero() {
		return
	}
	offset := fullInflate(clearance.Length())

	var allCopper polygon.PolygonSet
	for _, l := range r.model.CopperLayers() {
		allCopper = polygon.Union(allCopper, r.cache.layerUnrestricted(l, MaxArcTolerance))
	}
	if len(allCopper) == 0 {
		return
	}

	for _, d := range drillsFor(r, false) {
		region := d.holePath(offset)
		overlap := polygon.Intersect(allCopper, region)
		if len(overlap) == 0 {
			continue
		}
		r.emit(drcmsg.NewCopperHoleClearanceViolation(d.kind, d.ownerUUID, d.holeUUID, overlap))
	}
}
