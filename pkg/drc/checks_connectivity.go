package drc

import (
	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/drcmsg"
)

// checkMissingConnections is §4.G check 16: every air wire the model
// still reports after a forced rebuild is an unrouted connection.
func checkMissingConnections(r *run) {
	r.model.ForceAirWiresRebuild()
	for _, aw := range r.model.AirWires() {
		var netUUID board.UUID
		if aw.NetSignal != nil {
			netUUID = aw.NetSignal.UUID
		}
		r.emit(drcmsg.NewMissingConnection(netUUID, aw.P1.UUID, aw.P2.UUID, nil))
	}
}

// checkStaleObjects is §4.G check 17: net segments with no vias or net
// lines, and net points a segment's net lines never attach to, are
// reported as hints rather than failures.
func checkStaleObjects(r *run) {
	for _, seg := range r.model.NetSegments() {
		if len(seg.Vias) == 0 && len(seg.NetLines) == 0 {
			r.emit(drcmsg.NewEmptyNetSegment(seg.UUID))
			continue
		}
		for _, np := range seg.NetPoints {
			if !netPointReferenced(seg, np) {
				r.emit(drcmsg.NewUnconnectedJunction(np.UUID))
			}
		}
	}
}

func netPointReferenced(seg board.NetSegment, np board.NetPoint) bool {
	for _, nl := range seg.NetLines {
		if nl.Start.Equal(np.Position) || nl.End.Equal(np.Position) {
			return true
		}
	}
	return false
}
