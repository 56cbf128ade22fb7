package tables

import "testing"

func TestNibbleArrayGetSet(t *testing.T) {
	n := NewNibbleArray(10, 15)
	for i := 0; i < 10; i++ {
		if got := n.Get(i); got != 15 {
			t.Fatalf("index %d: want sentinel 15, got %d", i, got)
		}
	}
	n.Set(3, 7)
	n.Set(4, 2)
	if n.Get(3) != 7 {
		t.Errorf("Get(3) = %d, want 7", n.Get(3))
	}
	if n.Get(4) != 2 {
		t.Errorf("Get(4) = %d, want 2", n.Get(4))
	}
	// Neighboring nibbles must not be disturbed.
	if n.Get(2) != 15 || n.Get(5) != 15 {
		t.Error("setting one nibble disturbed a neighbor")
	}
}

func TestNibbleArrayByteCount(t *testing.T) {
	n := NewNibbleArray(495, 15)
	if want := (495 + 1) / 2; len(n.Data) != want {
		t.Errorf("byte count = %d, want %d", len(n.Data), want)
	}
}
