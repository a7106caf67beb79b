package layer

import "testing"

func TestInnerCopperOutOfRange(t *testing.T) {
	if _, ok := InnerCopper(5, 4); ok {
		t.Fatal("expected InnerCopper(5, 4) to report out of range")
	}
	if _, ok := InnerCopper(0, 4); ok {
		t.Fatal("expected InnerCopper(0, 4) to report out of range")
	}
	l, ok := InnerCopper(2, 4)
	if !ok {
		t.Fatal("expected InnerCopper(2, 4) to be valid")
	}
	if !l.IsCopper() || !l.IsInnerCopper(2) || l.IsInnerCopper(1) {
		t.Errorf("unexpected predicates for %v", l)
	}
}

func TestMirroringMapsTopToBottomAndBack(t *testing.T) {
	pairs := []struct{ a, b Layer }{
		{TopCopper, BottomCopper},
		{TopStopMask, BottomStopMask},
		{TopPaste, BottomPaste},
		{TopSilkscreen, BottomSilkscreen},
		{TopCourtyard, BottomCourtyard},
		{TopDocumentation, BottomDocumentation},
		{TopPlacement, BottomPlacement},
	}
	for _, p := range pairs {
		if !p.a.Mirrored().Equal(p.b) {
			t.Errorf("Mirrored(%v) = %v, want %v", p.a, p.a.Mirrored(), p.b)
		}
		if !p.b.Mirrored().Equal(p.a) {
			t.Errorf("Mirrored(%v) = %v, want %v", p.b, p.b.Mirrored(), p.a)
		}
	}
}

func TestBoardOutlineIsInvariantUnderMirroring(t *testing.T) {
	if !BoardOutline.Mirrored().Equal(BoardOutline) {
		t.Error("expected BoardOutline to map to itself when mirrored")
	}
}

func TestCopperLayersOrder(t *testing.T) {
	got := CopperLayers(2)
	want := []Layer{TopCopper, {kind: kindInnerCopper, Index: 1}, {kind: kindInnerCopper, Index: 2}, BottomCopper}
	if len(got) != len(want) {
		t.Fatalf("got %d layers, want %d", len(got), len(want))
	}
	for i := range got {
		if !got[i].Equal(want[i]) {
			t.Errorf("layer %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStopMaskIsNotCopper(t *testing.T) {
	if TopStopMask.IsCopper() {
		t.Error("stop mask must not be classified as copper")
	}
	if !TopStopMask.IsStopMask() {
		t.Error("expected TopStopMask.IsStopMask() to be true")
	}
}
