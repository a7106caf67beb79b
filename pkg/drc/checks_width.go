package drc

import (
	"github.com/Jimyzzp/LibrePCB/pkg/drcmsg"
	"github.com/Jimyzzp/LibrePCB/pkg/geom"
)

// checkMinimumCopperWidth is §4.G check 1: every copper stroke text,
// plane, net line, and device stroke text on a copper layer must be at
// least MinCopperWidth wide.
func checkMinimumCopperWidth(r *run) {
	min := r.settings.MinCopperWidth
	if min.IsZero() {
		return
	}

	for _, seg := range r.model.NetSegments() {
		for _, nl := range seg.NetLines {
			if nl.Width.Length() < min.Length() {
				locations := []geom.Path{geom.Obround(nl.Start, nl.End, nl.Width)}
				r.emit(drcmsg.NewMinimumWidthViolation(drcmsg.ObjectNetLine, nl.UUID, locations))
			}
		}
	}
	for _, p := range r.model.Planes() {
		if !p.Layer.IsCopper() {
			continue
		}
		if p.MinWidth.Length() < min.Length() {
			r.emit(drcmsg.NewMinimumWidthViolation(drcmsg.ObjectPlane, p.UUID, nil))
		}
	}
	for _, t := range r.model.StrokeTexts() {
		if !t.Layer.IsCopper() {
			continue
		}
		if t.StrokeWidth.Length() < min.Length() {
			r.emit(drcmsg.NewMinimumWidthViolation(drcmsg.ObjectStrokeText, t.UUID, nil))
		}
	}
	for _, d := range r.model.Devices() {
		for _, t := range d.StrokeTexts {
			if !t.Layer.IsCopper() {
				continue
			}
			if t.StrokeWidth.Length() < min.Length() {
				r.emit(drcmsg.NewMinimumWidthViolation(drcmsg.ObjectStrokeText, t.UUID, nil))
			}
		}
	}
}
