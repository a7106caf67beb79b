package sexpr

import (
	"strings"
	"testing"
)

func TestNewListShape(t *testing.T) {
	l := NewList("minimum_width_violation", Sym("polygon"), SymUUID(fakeUUID("abc")))
	if l.Len() != 3 {
		t.Fatalf("got %d elements, want 3", l.Len())
	}
	if l.Get(0).String() != "minimum_width_violation" {
		t.Errorf("head = %q", l.Get(0).String())
	}
}

type fakeUUID string

func (u fakeUUID) String() string { return string(u) }

func TestSymIntRendersDecimal(t *testing.T) {
	if got := SymInt(-42).String(); got != "-42" {
		t.Errorf("SymInt(-42) = %q, want -42", got)
	}
}

func TestCanonicalQuotesOnlyWhenNeeded(t *testing.T) {
	plain := NewList("kind", Sym("abc-123"))
	if strings.Contains(Canonical(plain), `"`) {
		t.Errorf("unexpected quoting in %q", Canonical(plain))
	}

	withSpace := NewList("kind", Sym("needs quoting"))
	if !strings.Contains(Canonical(withSpace), `"needs quoting"`) {
		t.Errorf("expected quoted child, got %q", Canonical(withSpace))
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	original := NewList("copper_copper_clearance_violation",
		Sym("top_copper"), SymUUID(fakeUUID("net-1")),
		Sym("via"), SymUUID(fakeUUID("11111111-1111-1111-1111-111111111111")),
		Sym("bottom_copper"), SymUUID(fakeUUID("net-2")),
		Sym("pad"), SymUUID(fakeUUID("22222222-2222-2222-2222-222222222222")),
	)
	text := Canonical(original)

	parsed, err := ParseCanonical(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseCanonical failed: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("got %d top-level expressions, want 1", len(parsed))
	}

	roundTripped := Canonical(parsed[0])
	if roundTripped != text {
		t.Errorf("round trip mismatch:\noriginal:\n%s\ngot:\n%s", text, roundTripped)
	}
}

func TestCanonicalRoundTripWithQuotedAtom(t *testing.T) {
	original := NewList("kind", Sym("has space"), Sym(`has"quote`))
	text := Canonical(original)

	parsed, err := ParseCanonical(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseCanonical failed: %v", err)
	}
	if Canonical(parsed[0]) != text {
		t.Errorf("round trip mismatch:\noriginal:\n%s\ngot:\n%s", text, Canonical(parsed[0]))
	}
}

func TestParseCanonicalMultipleTopLevelExpressions(t *testing.T) {
	text := Canonical(NewList("a", Sym("1"))) + "\n" + Canonical(NewList("b", Sym("2")))
	parsed, err := ParseCanonical(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseCanonical failed: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("got %d expressions, want 2", len(parsed))
	}
}
