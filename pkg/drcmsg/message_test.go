package drcmsg

import (
	"strings"
	"testing"

	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/layer"
	"github.com/Jimyzzp/LibrePCB/pkg/sexpr"
)

func TestMinimumWidthViolationSeverityAndKey(t *testing.T) {
	via := board.NewUUID()
	m := NewMinimumWidthViolation(ObjectVia, via, nil)
	if m.Severity() != Error {
		t.Errorf("severity = %v, want Error", m.Severity())
	}
	key := sexpr.Canonical(m.ApprovalKey())
	if !strings.Contains(key, "minimum_width_violation") {
		t.Errorf("approval key missing head symbol: %q", key)
	}
	if !strings.Contains(key, string(via)) {
		t.Errorf("approval key missing object uuid: %q", key)
	}
}

func TestDrillDrillClearanceViolationCanonicalizesRegardlessOfArgumentOrder(t *testing.T) {
	uuidA, holeA := board.NewUUID(), board.NewUUID()
	uuidB, holeB := board.NewUUID(), board.NewUUID()

	forward := NewDrillDrillClearanceViolation(ObjectVia, uuidA, holeA, ObjectVia, uuidB, holeB, nil)
	backward := NewDrillDrillClearanceViolation(ObjectVia, uuidB, holeB, ObjectVia, uuidA, holeA, nil)

	if sexpr.Canonical(forward.ApprovalKey()) != sexpr.Canonical(backward.ApprovalKey()) {
		t.Error("approval key depends on argument order, should be canonicalized")
	}
}

func TestCopperCopperClearanceViolationCanonicalizesRegardlessOfArgumentOrder(t *testing.T) {
	netA := &board.NetSignal{UUID: board.NewUUID(), Name: "GND"}
	uuidA, uuidB := board.NewUUID(), board.NewUUID()
	objA := ObjectRef{Kind: ObjectVia, UUID: uuidA}
	objB := ObjectRef{Kind: ObjectNetLine, UUID: uuidB}

	forward := NewCopperCopperClearanceViolation(layer.TopCopper, netA, objA, layer.TopCopper, nil, objB, nil)
	backward := NewCopperCopperClearanceViolation(layer.TopCopper, nil, objB, layer.TopCopper, netA, objA, nil)

	if sexpr.Canonical(forward.ApprovalKey()) != sexpr.Canonical(backward.ApprovalKey()) {
		t.Error("copper-copper clearance key depends on argument order, should be canonicalized")
	}
}

func TestCourtyardOverlapOrdersDevicesLexicographically(t *testing.T) {
	a, b := board.UUID("11111111-0000-0000-0000-000000000000"), board.UUID("22222222-0000-0000-0000-000000000000")

	forward := NewCourtyardOverlap(a, b, nil)
	backward := NewCourtyardOverlap(b, a, nil)

	if sexpr.Canonical(forward.ApprovalKey()) != sexpr.Canonical(backward.ApprovalKey()) {
		t.Error("courtyard overlap key depends on argument order")
	}
	if forward.Obj1.UUID != a {
		t.Errorf("expected the lexicographically smaller UUID first, got %s", forward.Obj1.UUID)
	}
}

func TestMissingConnectionApprovalKeyHandlesNilNet(t *testing.T) {
	p1, p2 := board.NewUUID(), board.NewUUID()
	m := NewMissingConnection("", p1, p2, nil)
	key := sexpr.Canonical(m.ApprovalKey())
	if !strings.Contains(key, "none") {
		t.Errorf("expected a placeholder for the absent net, got %q", key)
	}
}

func TestApprovalKeyRoundTripsThroughCanonicalText(t *testing.T) {
	m := NewCopperCopperClearanceViolation(
		layer.TopCopper, &board.NetSignal{UUID: board.NewUUID(), Name: "GND"}, ObjectRef{Kind: ObjectVia, UUID: board.NewUUID()},
		layer.TopCopper, nil, ObjectRef{Kind: ObjectNetLine, UUID: board.NewUUID()}, nil,
	)
	text := sexpr.Canonical(m.ApprovalKey())
	parsed, err := sexpr.ParseCanonical(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseCanonical failed: %v", err)
	}
	if len(parsed) != 1 || sexpr.Canonical(parsed[0]) != text {
		t.Errorf("approval key did not round-trip: %q", text)
	}
}

func TestMessageAndDescriptionAreNonEmptyForEveryKind(t *testing.T) {
	for k := MinimumWidthViolation; k <= UnconnectedJunction; k++ {
		m := Message{Kind: k}
		if m.Message() == "" {
			t.Errorf("Kind %v produced an empty Message()", k)
		}
		if m.Description() == "" {
			t.Errorf("Kind %v produced an empty Description()", k)
		}
	}
}
