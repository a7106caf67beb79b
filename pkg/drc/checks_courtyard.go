package drc

import (
	"github.com/Jimyzzp/LibrePCB/pkg/drcmsg"
	"github.com/Jimyzzp/LibrePCB/pkg/layer"
	"github.com/Jimyzzp/LibrePCB/pkg/polygon"
)

// checkCourtyardClearances is §4.G check 12: on each courtyard layer,
// no two devices' courtyards may overlap.
func checkCourtyardClearances(r *run) {
	devices := r.model.Devices()
	for _, l := range layer.CourtyardLayers() {
		paths := make([]polygon.PolygonSet, len(devices))
		for i := range devices {
			d := &devices[i]
			paths[i] = r.gen.DeviceCourtyard(d, l, MaxArcTolerance)
		}
		results := runPairs(len(devices), func(i, j int) []drcmsg.Message {
			if len(paths[i]) == 0 || len(paths[j]) == 0 {
				return nil
			}
			overlap := polygon.Intersect(paths[i], paths[j])
			if len(overlap) == 0 {
				return nil
			}
			return []drcmsg.Message{drcmsg.NewCourtyardOverlap(devices[i].UUID, devices[j].UUID, overlap)}
		})
		for _, m := range results {
			r.emit(m)
		}
	}
}
