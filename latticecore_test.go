package latticecore

import "testing"

func TestLatticecore_NewParamsWiresThrough(t *testing.T) {
	var seed [32]byte
	p := NewParams(seed, seed, seed, seed, seed, seed)
	if p == nil {
		t.Fatal("NewParams returned nil")
	}
}
