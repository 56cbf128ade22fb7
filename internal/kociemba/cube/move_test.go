package cube

import "testing"

func TestFaceIndices(t *testing.T) {
	want := map[Move]uint8{
		U: 0, U2: 0, U3: 0,
		D: 1, D2: 1, D3: 1,
		L: 2, L2: 2, L3: 2,
		R: 3, R2: 3, R3: 3,
		F: 4, F2: 4, F3: 4,
		B: 5, B2: 5, B3: 5,
	}
	for m, f := range want {
		if got := m.Face(); got != f {
			t.Errorf("%s.Face() = %d, want %d", m, got, f)
		}
	}
}

func TestAllowedSameFaceForbidden(t *testing.T) {
	last := U
	if Allowed(U2, &last) {
		t.Error("U2 after U (same face) should be forbidden")
	}
}

func TestAllowedNilLastAlwaysAllowed(t *testing.T) {
	for _, m := range ALL {
		if !Allowed(m, nil) {
			t.Errorf("%s should be allowed with no prior move", m)
		}
	}
}

func TestAllowedAxisAsymmetry(t *testing.T) {
	cases := [][2]Move{{U, D}, {L, R}, {F, B}}
	for _, pair := range cases {
		upper, lower := pair[0], pair[1]
		if Allowed(upper, &lower) {
			t.Errorf("%s after %s should be forbidden (upper-after-lower)", upper, lower)
		}
		if !Allowed(lower, &upper) {
			t.Errorf("%s after %s should be allowed (lower-after-upper)", lower, upper)
		}
	}
}

func TestPhase2MovesAreSubsetOfAll(t *testing.T) {
	allSet := map[Move]bool{}
	for _, m := range ALL {
		allSet[m] = true
	}
	for _, m := range PHASE2 {
		if !allSet[m] {
			t.Errorf("phase-2 move %s not present in ALL", m)
		}
	}
	if len(PHASE2) != 10 {
		t.Errorf("PHASE2 should have 10 moves, got %d", len(PHASE2))
	}
}

func TestMoveCubieMatchesComposition(t *testing.T) {
	if U2.Cubie() != Compose(U.Cubie(), U.Cubie()) {
		t.Error("U2 should equal U composed with itself")
	}
	if U3.Cubie() != Compose(U.Cubie(), Compose(U.Cubie(), U.Cubie())) {
		t.Error("U' should equal U composed three times")
	}
}
