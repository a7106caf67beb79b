package approval

import (
	"strings"
	"testing"

	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/drcmsg"
	"github.com/Jimyzzp/LibrePCB/pkg/sexpr"
)

func TestResolveSplitsApprovedFromRemaining(t *testing.T) {
	via := board.NewUUID()
	m := drcmsg.NewMinimumWidthViolation(drcmsg.ObjectVia, via, nil)
	approved := Set{sexpr.Canonical(m.ApprovalKey()): struct{}{}}

	count, remaining := Resolve([]drcmsg.Message{m}, approved)
	if count != 1 {
		t.Errorf("approvedCount = %d, want 1", count)
	}
	if len(remaining) != 0 {
		t.Errorf("remaining = %v, want empty", remaining)
	}
}

func TestResolveLeavesUnapprovedMessagesInRemaining(t *testing.T) {
	m := drcmsg.NewMinimumWidthViolation(drcmsg.ObjectVia, board.NewUUID(), nil)

	count, remaining := Resolve([]drcmsg.Message{m}, Set{})
	if count != 0 {
		t.Errorf("approvedCount = %d, want 0", count)
	}
	if len(remaining) != 1 {
		t.Fatalf("remaining = %v, want 1 message", remaining)
	}
}

func TestResolveSortsRemainingBySeverity(t *testing.T) {
	hint := drcmsg.NewEmptyNetSegment(board.NewUUID())
	warn := drcmsg.NewMissingDevice(board.NewUUID())
	err := drcmsg.NewMinimumWidthViolation(drcmsg.ObjectVia, board.NewUUID(), nil)

	_, remaining := Resolve([]drcmsg.Message{hint, err, warn}, Set{})
	if len(remaining) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(remaining))
	}
	if remaining[0].Severity() != drcmsg.Error || remaining[1].Severity() != drcmsg.Warning || remaining[2].Severity() != drcmsg.Hint {
		t.Errorf("remaining not sorted severity-descending: %v, %v, %v",
			remaining[0].Severity(), remaining[1].Severity(), remaining[2].Severity())
	}
}

func TestSaveAndLoadSetRoundTrips(t *testing.T) {
	m1 := drcmsg.NewMinimumWidthViolation(drcmsg.ObjectVia, board.NewUUID(), nil)
	m2 := drcmsg.NewMissingDevice(board.NewUUID())
	original := Set{
		sexpr.Canonical(m1.ApprovalKey()): struct{}{},
		sexpr.Canonical(m2.ApprovalKey()): struct{}{},
	}

	var buf strings.Builder
	if err := original.Save(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadSet(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("LoadSet failed: %v", err)
	}
	if len(loaded) != len(original) {
		t.Fatalf("loaded %d keys, want %d", len(loaded), len(original))
	}
	for k := range original {
		if _, ok := loaded[k]; !ok {
			t.Errorf("loaded set missing key %q", k)
		}
	}
}

func TestLoadSetRejectsMalformedInput(t *testing.T) {
	if _, err := LoadSet(strings.NewReader("(unterminated")); err == nil {
		t.Error("expected an error for malformed S-expression input")
	}
}
