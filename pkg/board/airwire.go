package board

import "github.com/Jimyzzp/LibrePCB/pkg/fixed"

// AirWire is a precomputed missing-connection hint between two net
// points, derived from the model's netlist outside the DRC core. The
// core never traces copper paths itself (§1 Non-goals); it only
// reports whatever air wires the model hands it.
type AirWire struct {
	P1, P2    NetPointRef
	NetSignal *NetSignal // nil for an unnamed/no-net pair
}

// NetPointRef names the net point an AirWire endpoint attaches to.
type NetPointRef struct {
	UUID     UUID
	Position fixed.Point
}
