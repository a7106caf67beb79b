package drc

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/drcmsg"
	"github.com/Jimyzzp/LibrePCB/pkg/drcsettings"
	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
	"github.com/Jimyzzp/LibrePCB/pkg/geom"
	"github.com/Jimyzzp/LibrePCB/pkg/layer"
	"github.com/Jimyzzp/LibrePCB/pkg/sexpr"
)

// rect returns a closed rectangle path, corners in the order given.
func rect(x0, y0, x1, y1 fixed.Length) geom.Path {
	return geom.Path{
		{Position: fixed.Point{X: x0, Y: y0}},
		{Position: fixed.Point{X: x1, Y: y0}},
		{Position: fixed.Point{X: x1, Y: y1}},
		{Position: fixed.Point{X: x0, Y: y1}},
		{Position: fixed.Point{X: x0, Y: y0}},
	}
}

// addDefaultOutline gives a model a board outline far from any other
// test geometry, so checkBoardOutline's MissingBoardOutline does not
// show up alongside whatever a given scenario means to exercise.
func addDefaultOutline(m *board.Model) {
	m.AddPolygon(board.Polygon{
		UUID: board.NewUUID(), Layer: layer.BoardOutline,
		Path: rect(-50000000, -50000000, 50000000, 50000000),
	})
}

func newEmptyModel() *board.Model {
	project := board.NewProject(board.NewCircuit(nil))
	return board.NewModel(0, project)
}

func mustRun(t *testing.T, m *board.Model, s drcsettings.Settings, quick bool) *RunOutcome {
	t.Helper()
	out, err := Run(context.Background(), m, s, quick, NopReporter{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out
}

func kindsOf(messages []drcmsg.Message) []drcmsg.Kind {
	out := make([]drcmsg.Kind, len(messages))
	for i, m := range messages {
		out[i] = m.Kind
	}
	return out
}

func findKind(messages []drcmsg.Message, k drcmsg.Kind) (drcmsg.Message, bool) {
	for _, m := range messages {
		if m.Kind == k {
			return m, true
		}
	}
	return drcmsg.Message{}, false
}

// TestRunS1TwoParallelTracesTooClose is scenario S1: two net lines on
// different nets running 150000 nm apart, each 200000 nm wide, with a
// configured copper-copper clearance of 200000 nm.
func TestRunS1TwoParallelTracesTooClose(t *testing.T) {
	m := newEmptyModel()
	addDefaultOutline(m)

	netA := &board.NetSignal{UUID: board.NewUUID(), Name: "A"}
	netB := &board.NetSignal{UUID: board.NewUUID(), Name: "B"}
	lineA := board.NetLine{
		UUID: board.NewUUID(), Layer: layer.TopCopper,
		Start: fixed.Point{X: 5000000, Y: 3000000}, End: fixed.Point{X: 15000000, Y: 3000000},
		Width: fixed.MustPositiveLength(200000),
	}
	lineB := board.NetLine{
		UUID: board.NewUUID(), Layer: layer.TopCopper,
		Start: fixed.Point{X: 5000000, Y: 3150000}, End: fixed.Point{X: 15000000, Y: 3150000},
		Width: fixed.MustPositiveLength(200000),
	}
	m.AddNetSegment(board.NetSegment{UUID: board.NewUUID(), NetSignal: netA, NetLines: []board.NetLine{lineA}})
	m.AddNetSegment(board.NetSegment{UUID: board.NewUUID(), NetSignal: netB, NetLines: []board.NetLine{lineB}})

	settings := drcsettings.Settings{MinCopperCopperClearance: fixed.MustUnsignedLength(200000)}
	out := mustRun(t, m, settings, false)

	if len(out.Messages) != 1 {
		t.Fatalf("messages = %v, want exactly 1 CopperCopperClearanceViolation", kindsOf(out.Messages))
	}
	msg := out.Messages[0]
	if msg.Kind != drcmsg.CopperCopperClearanceViolation {
		t.Fatalf("kind = %v, want CopperCopperClearanceViolation", msg.Kind)
	}
	if len(msg.Locations) == 0 {
		t.Error("expected non-empty Locations")
	}
	refs := []board.UUID{msg.Obj1.UUID, msg.Obj2.UUID}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	want := []board.UUID{lineA.UUID, lineB.UUID}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("referenced net lines = %v, want %v", refs, want)
	}
}

// TestRunS2ViaAnnularRingTooThin is scenario S2: a through-hole via
// whose outer/drill gap (100000 nm) is thinner than the configured
// minimum annular ring (150000 nm). The via's own copper disc supplies
// the "common copper" baseline the check measures against, the same
// way a plane covering it would.
func TestRunS2ViaAnnularRingTooThin(t *testing.T) {
	m := newEmptyModel()
	addDefaultOutline(m)

	via := board.Via{
		UUID: board.NewUUID(), Position: fixed.Point{},
		DrillDiameter: fixed.MustPositiveLength(300000),
		OuterSize:     fixed.MustPositiveLength(500000),
	}
	m.AddNetSegment(board.NetSegment{UUID: board.NewUUID(), Vias: []board.Via{via}})

	settings := drcsettings.Settings{MinPthAnnularRing: fixed.MustUnsignedLength(150000)}
	out := mustRun(t, m, settings, false)

	msg, ok := findKind(out.Messages, drcmsg.MinimumAnnularRingViolation)
	if !ok {
		t.Fatalf("messages = %v, want a MinimumAnnularRingViolation", kindsOf(out.Messages))
	}
	if msg.Obj1.UUID != via.UUID {
		t.Errorf("violation references %v, want via %v", msg.Obj1.UUID, via.UUID)
	}
}

// TestRunS3HoleTooCloseToBoardEdge is scenario S3: a board hole whose
// drilled circle reaches the board-outline clearance band.
func TestRunS3HoleTooCloseToBoardEdge(t *testing.T) {
	m := newEmptyModel()
	outline := geom.Circle(fixed.MustPositiveLength(10000000)).Translated(0, 0)
	m.AddPolygon(board.Polygon{UUID: board.NewUUID(), Layer: layer.BoardOutline, Path: outline})

	hole := board.Hole{
		UUID: board.NewUUID(), Diameter: fixed.MustPositiveLength(1000000),
		Path: geom.Path{{Position: fixed.Point{X: 4500000, Y: 0}}},
	}
	m.AddHole(hole)

	settings := drcsettings.Settings{MinDrillBoardClearance: fixed.MustUnsignedLength(300000)}
	out := mustRun(t, m, settings, false)

	msg, ok := findKind(out.Messages, drcmsg.DrillBoardClearanceViolation)
	if !ok {
		t.Fatalf("messages = %v, want a DrillBoardClearanceViolation", kindsOf(out.Messages))
	}
	if msg.Hole1 != hole.UUID {
		t.Errorf("violation references hole %v, want %v", msg.Hole1, hole.UUID)
	}
}

// TestRunS4SlotDisallowed is scenario S4: a through-hole pad lead whose
// drill path is a straight two-vertex slot, forbidden by AllowedPthSlots.
func TestRunS4SlotDisallowed(t *testing.T) {
	m := newEmptyModel()
	addDefaultOutline(m)

	padHole := board.PadHole{
		UUID: board.NewUUID(), Diameter: fixed.MustPositiveLength(800000),
		Path: geom.Path{
			{Position: fixed.Point{X: 0, Y: 0}},
			{Position: fixed.Point{X: 5000000, Y: 0}},
		},
	}
	pad := board.FootprintPad{UUID: board.NewUUID(), Holes: []board.PadHole{padHole}}
	fp := &board.Footprint{UUID: board.NewUUID(), Pads: []board.FootprintPad{pad}}
	m.AddDevice(board.Device{UUID: board.NewUUID(), Footprint: fp})

	settings := drcsettings.Settings{AllowedPthSlots: drcsettings.SlotsNone}
	out := mustRun(t, m, settings, false)

	msg, ok := findKind(out.Messages, drcmsg.ForbiddenSlot)
	if !ok {
		t.Fatalf("messages = %v, want a ForbiddenSlot", kindsOf(out.Messages))
	}
	if msg.Hole1 != padHole.UUID {
		t.Errorf("violation references hole %v, want %v", msg.Hole1, padHole.UUID)
	}
}

// TestRunS5OpenBoardOutline is scenario S5: a device's board-outline
// polygon does not close, and it is the board's only outline candidate.
func TestRunS5OpenBoardOutline(t *testing.T) {
	m := newEmptyModel()

	open := geom.Path{
		{Position: fixed.Point{X: 0, Y: 0}},
		{Position: fixed.Point{X: 10000000, Y: 0}},
		{Position: fixed.Point{X: 10000000, Y: 10000000}},
	}
	fp := &board.Footprint{
		UUID: board.NewUUID(),
		Polygons: []board.Polygon{{UUID: board.NewUUID(), Layer: layer.BoardOutline, Path: open}},
	}
	device := board.Device{UUID: board.NewUUID(), Footprint: fp}
	m.AddDevice(device)

	out := mustRun(t, m, drcsettings.Settings{}, false)

	kinds := map[drcmsg.Kind]bool{}
	for _, msg := range out.Messages {
		kinds[msg.Kind] = true
	}
	if !kinds[drcmsg.OpenBoardOutlinePolygon] || !kinds[drcmsg.MissingBoardOutline] {
		t.Fatalf("messages = %v, want OpenBoardOutlinePolygon and MissingBoardOutline", kindsOf(out.Messages))
	}
	if len(out.Messages) != 2 {
		t.Errorf("got %d messages, want exactly 2", len(out.Messages))
	}
}

// TestRunS6MissingDevice is scenario S6: a non-schematic-only component
// with no placed device.
func TestRunS6MissingDevice(t *testing.T) {
	componentUUID := board.UUID("C1")
	circuit := board.NewCircuit([]board.ComponentInstance{{UUID: componentUUID, Name: "C1"}})
	project := board.NewProject(circuit)
	m := board.NewModel(0, project)
	addDefaultOutline(m)

	out := mustRun(t, m, drcsettings.Settings{}, false)

	if len(out.Messages) != 1 {
		t.Fatalf("messages = %v, want exactly 1 MissingDevice", kindsOf(out.Messages))
	}
	msg := out.Messages[0]
	if msg.Kind != drcmsg.MissingDevice {
		t.Fatalf("kind = %v, want MissingDevice", msg.Kind)
	}
	if msg.Obj1.UUID != componentUUID {
		t.Errorf("violation keyed on %v, want %v", msg.Obj1.UUID, componentUUID)
	}
}

// TestRunIsDeterministic is testable property 1: two runs over the same
// model and settings emit identical message sequences.
func TestRunIsDeterministic(t *testing.T) {
	m := newEmptyModel()
	addDefaultOutline(m)
	netA := &board.NetSignal{UUID: board.NewUUID()}
	netB := &board.NetSignal{UUID: board.NewUUID()}
	m.AddNetSegment(board.NetSegment{UUID: board.NewUUID(), NetSignal: netA, NetLines: []board.NetLine{{
		UUID: board.NewUUID(), Layer: layer.TopCopper,
		Start: fixed.Point{X: 0, Y: 0}, End: fixed.Point{X: 10000000, Y: 0},
		Width: fixed.MustPositiveLength(200000),
	}}})
	m.AddNetSegment(board.NetSegment{UUID: board.NewUUID(), NetSignal: netB, NetLines: []board.NetLine{{
		UUID: board.NewUUID(), Layer: layer.TopCopper,
		Start: fixed.Point{X: 0, Y: 100000}, End: fixed.Point{X: 10000000, Y: 100000},
		Width: fixed.MustPositiveLength(200000),
	}}})
	settings := drcsettings.Settings{MinCopperCopperClearance: fixed.MustUnsignedLength(200000)}

	first := mustRun(t, m, settings, false)
	second := mustRun(t, m, settings, false)

	if !reflect.DeepEqual(first.Messages, second.Messages) {
		t.Errorf("message sequences differ across identical runs:\n%v\n%v", first.Messages, second.Messages)
	}
}

// TestRunApprovalKeysRoundTripCanonicalForm is testable properties 2
// and 7: every emitted message's approval key survives a canonical
// print/parse/print round trip unchanged.
func TestRunApprovalKeysRoundTripCanonicalForm(t *testing.T) {
	m := newEmptyModel()
	addDefaultOutline(m)
	via := board.Via{UUID: board.NewUUID(), DrillDiameter: fixed.MustPositiveLength(300000), OuterSize: fixed.MustPositiveLength(500000)}
	m.AddNetSegment(board.NetSegment{UUID: board.NewUUID(), Vias: []board.Via{via}})
	settings := drcsettings.Settings{MinPthAnnularRing: fixed.MustUnsignedLength(150000)}

	out := mustRun(t, m, settings, false)
	if len(out.Messages) == 0 {
		t.Fatal("expected at least one message to exercise the round trip")
	}
	for _, msg := range out.Messages {
		assertApprovalKeyRoundTrips(t, msg)
	}
}

// TestRunNetlessCopperCopperClearanceApprovalKeyRoundTrips covers the
// case collectCopperFeatures hits constantly: a board-level Polygon
// has no net at all. Net1/Net2 on the resulting
// CopperCopperClearanceViolation must render as the "none" sentinel,
// not a blank line that ParseCanonical silently drops.
func TestRunNetlessCopperCopperClearanceApprovalKeyRoundTrips(t *testing.T) {
	m := newEmptyModel()
	addDefaultOutline(m)
	m.AddPolygon(board.Polygon{
		UUID: board.NewUUID(), Layer: layer.TopCopper,
		Path: rect(0, 0, 5000000, 5000000), Filled: true,
	})
	m.AddPolygon(board.Polygon{
		UUID: board.NewUUID(), Layer: layer.TopCopper,
		Path: rect(5000100, 0, 10000000, 5000000), Filled: true,
	})
	settings := drcsettings.Settings{MinCopperCopperClearance: fixed.MustUnsignedLength(200000)}

	out := mustRun(t, m, settings, false)
	msg, ok := findKind(out.Messages, drcmsg.CopperCopperClearanceViolation)
	if !ok {
		t.Fatalf("messages = %v, want a CopperCopperClearanceViolation between the two netless polygons", kindsOf(out.Messages))
	}
	if msg.Net1 != nil || msg.Net2 != nil {
		t.Fatalf("Net1/Net2 = %v/%v, want both nil for board-level polygons", msg.Net1, msg.Net2)
	}
	assertApprovalKeyRoundTrips(t, msg)
}

// TestRunPadConnectedToSameNetTraceHasNoClearanceViolation is the
// regression case a missing NetSignal<->ComponentSignalInstance<->Pad
// resolution would previously get wrong: a pad soldered to a trace on
// the same net overlaps that trace by construction (the trace
// terminates inside the pad's copper), but since they share a net
// checkCopperCopperClearance must not flag it.
func TestRunPadConnectedToSameNetTraceHasNoClearanceViolation(t *testing.T) {
	net := &board.NetSignal{UUID: board.NewUUID(), Name: "VCC"}
	componentUUID := board.NewUUID()
	signalUUID := board.NewUUID()
	circuit := board.NewCircuit([]board.ComponentInstance{{
		UUID: componentUUID,
		Name: "R1",
		SignalInstances: []board.ComponentSignalInstance{
			{UUID: board.NewUUID(), ComponentSignalUUID: signalUUID, NetSignal: net},
		},
	}})
	m := board.NewModel(0, board.NewProject(circuit))
	addDefaultOutline(m)

	pad := board.FootprintPad{
		UUID:                board.NewUUID(),
		ComponentSignalUUID: &signalUUID,
		Geometries: []board.PadGeometry{{
			Layer: layer.TopCopper, Shape: board.PadShapeRoundedRect,
			Width: fixed.MustPositiveLength(1000000), Height: fixed.MustPositiveLength(1000000),
		}},
	}
	fp := &board.Footprint{UUID: board.NewUUID(), Pads: []board.FootprintPad{pad}}
	m.AddDevice(board.Device{UUID: board.NewUUID(), ComponentUUID: componentUUID, Footprint: fp})

	m.AddNetSegment(board.NetSegment{UUID: board.NewUUID(), NetSignal: net, NetLines: []board.NetLine{{
		UUID: board.NewUUID(), Layer: layer.TopCopper,
		Start: fixed.Point{X: 0, Y: 0}, End: fixed.Point{X: 5000000, Y: 0},
		Width: fixed.MustPositiveLength(200000),
	}}})
	settings := drcsettings.Settings{MinCopperCopperClearance: fixed.MustUnsignedLength(200000)}

	out := mustRun(t, m, settings, false)
	if _, ok := findKind(out.Messages, drcmsg.CopperCopperClearanceViolation); ok {
		t.Fatalf("messages = %v, want no CopperCopperClearanceViolation between a pad and its own net's trace", kindsOf(out.Messages))
	}
}

func assertApprovalKeyRoundTrips(t *testing.T, msg drcmsg.Message) {
	t.Helper()
	want := sexpr.Canonical(msg.ApprovalKey())
	parsed, err := sexpr.ParseCanonical(strings.NewReader(want))
	if err != nil {
		t.Fatalf("ParseCanonical: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("parsed %d expressions, want 1", len(parsed))
	}
	if got := sexpr.Canonical(parsed[0]); got != want {
		t.Errorf("round trip mismatch for %v:\nwant %q\ngot  %q", msg.Kind, want, got)
	}
}

// TestRunZeroClearanceSettingsEmitNoClearanceMessages is testable
// property 5: with every clearance setting at zero, no clearance-kind
// message is emitted regardless of how crowded the geometry is.
func TestRunZeroClearanceSettingsEmitNoClearanceMessages(t *testing.T) {
	m := newEmptyModel()
	addDefaultOutline(m)
	netA := &board.NetSignal{UUID: board.NewUUID()}
	netB := &board.NetSignal{UUID: board.NewUUID()}
	m.AddNetSegment(board.NetSegment{UUID: board.NewUUID(), NetSignal: netA, NetLines: []board.NetLine{{
		UUID: board.NewUUID(), Layer: layer.TopCopper,
		Start: fixed.Point{X: 0, Y: 0}, End: fixed.Point{X: 10000000, Y: 0},
		Width: fixed.MustPositiveLength(200000),
	}}})
	m.AddNetSegment(board.NetSegment{UUID: board.NewUUID(), NetSignal: netB, NetLines: []board.NetLine{{
		UUID: board.NewUUID(), Layer: layer.TopCopper,
		Start: fixed.Point{X: 0, Y: 1000}, End: fixed.Point{X: 10000000, Y: 1000},
		Width: fixed.MustPositiveLength(200000),
	}}})

	out := mustRun(t, m, drcsettings.Settings{}, false)

	clearanceKinds := map[drcmsg.Kind]bool{
		drcmsg.CopperCopperClearanceViolation: true,
		drcmsg.CopperBoardClearanceViolation:   true,
		drcmsg.CopperHoleClearanceViolation:    true,
		drcmsg.DrillDrillClearanceViolation:    true,
		drcmsg.DrillBoardClearanceViolation:    true,
	}
	for _, msg := range out.Messages {
		if clearanceKinds[msg.Kind] {
			t.Errorf("got clearance message %v with every clearance setting at zero", msg.Kind)
		}
	}
}

// TestRunQuickModeOnlyEmitsQuickSafeKinds is testable property 6: quick
// mode's message kinds are a subset of the four quick-safe checks.
func TestRunQuickModeOnlyEmitsQuickSafeKinds(t *testing.T) {
	m := newEmptyModel()
	addDefaultOutline(m)

	netA := &board.NetSignal{UUID: board.NewUUID()}
	netB := &board.NetSignal{UUID: board.NewUUID()}
	m.AddNetSegment(board.NetSegment{UUID: board.NewUUID(), NetSignal: netA, NetLines: []board.NetLine{{
		UUID: board.NewUUID(), Layer: layer.TopCopper,
		Start: fixed.Point{X: 0, Y: 0}, End: fixed.Point{X: 10000000, Y: 0},
		Width: fixed.MustPositiveLength(200000),
	}}})
	m.AddNetSegment(board.NetSegment{UUID: board.NewUUID(), NetSignal: netB, NetLines: []board.NetLine{{
		UUID: board.NewUUID(), Layer: layer.TopCopper,
		Start: fixed.Point{X: 0, Y: 150000}, End: fixed.Point{X: 10000000, Y: 150000},
		Width: fixed.MustPositiveLength(200000),
	}}})

	settings := drcsettings.Defaults()
	out := mustRun(t, m, settings, true)

	allowed := map[drcmsg.Kind]bool{
		drcmsg.MinimumWidthViolation:           true,
		drcmsg.CopperCopperClearanceViolation:  true,
		drcmsg.CopperBoardClearanceViolation:   true,
		drcmsg.CopperHoleClearanceViolation:    true,
	}
	if len(out.Messages) == 0 {
		t.Fatal("expected at least one quick-safe message to exercise the subset check")
	}
	for _, msg := range out.Messages {
		if !allowed[msg.Kind] {
			t.Errorf("quick run emitted non-quick-safe kind %v", msg.Kind)
		}
	}
}

// TestRunProgressIsMonotonicAndReachesCompletion is testable property
// 8: progress never decreases and a successful run finishes at 100,
// with one status-log entry per check that ran.
func TestRunProgressIsMonotonicAndReachesCompletion(t *testing.T) {
	m := newEmptyModel()
	addDefaultOutline(m)

	spy := &spyReporter{}
	out, err := Run(context.Background(), m, drcsettings.Settings{}, false, spy)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for i := 1; i < len(spy.progress); i++ {
		if spy.progress[i] < spy.progress[i-1] {
			t.Fatalf("progress decreased: %v", spy.progress)
		}
	}
	if len(spy.progress) == 0 || spy.progress[len(spy.progress)-1] != 100 {
		t.Errorf("final progress = %v, want 100", spy.progress)
	}
	if len(spy.status) != len(checklist) {
		t.Errorf("status log has %d entries, want %d (one per check)", len(spy.status), len(checklist))
	}
	if out.Cancelled {
		t.Error("run should not be cancelled")
	}
}

// TestRunObservesCancellationBetweenChecks is part of §5's cancellation
// contract: a context cancelled before Run starts stops before any
// check executes.
func TestRunObservesCancellationBetweenChecks(t *testing.T) {
	m := newEmptyModel()
	addDefaultOutline(m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := Run(ctx, m, drcsettings.Settings{}, false, NopReporter{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.Cancelled {
		t.Error("expected a run over an already-cancelled context to report Cancelled")
	}
}

type spyReporter struct {
	progress []int
	status   []string
}

func (s *spyReporter) Started()             {}
func (s *spyReporter) Status(text string)   { s.status = append(s.status, text) }
func (s *spyReporter) Progress(percent int) { s.progress = append(s.progress, percent) }
func (s *spyReporter) Finished(bool)        {}
func (s *spyReporter) Message(drcmsg.Message) {}
