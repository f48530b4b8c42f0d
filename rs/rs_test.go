package rs

import (
	"testing"

	"github.com/eth2030/latticecore/ntt64"
)

func pattern01toFF() [32]byte {
	var s [32]byte
	for i := range s {
		s[i] = byte(0x01*i + 0x01) // placeholder, overwritten below
	}
	// Stand-in for the scenario 3 seed: an ascending byte ramp
	// s[i] = i*255/31, running from 0x00 at index 0 to 0xFF at index 31.
	for i := range s {
		s[i] = byte((i * 255) / 31)
	}
	return s
}

func fillByte(b byte) [32]byte {
	var s [32]byte
	for i := range s {
		s[i] = b
	}
	return s
}

func seq0to1F() [32]byte {
	var s [32]byte
	for i := range s {
		s[i] = byte(i)
	}
	return s
}

func TestRS_LWRDeterministic(t *testing.T) {
	ax := pattern01toFF()
	bSeed := fillByte(0x42)
	p := New(ax, fillByte(0), fillByte(0), fillByte(0), bSeed, fillByte(0))

	secretSeed := seq0to1F()
	s := DeriveSecret(secretSeed)

	var rows [PublicDim]Row
	for i := 0; i < PublicDim; i++ {
		rows[i] = p.DeriveBRow(i, FlavorLWR)
	}
	t1 := LWRTag(rows, s)

	// Recompute from scratch: must be identical.
	p2 := New(ax, fillByte(0), fillByte(0), fillByte(0), bSeed, fillByte(0))
	var rows2 [PublicDim]Row
	for i := 0; i < PublicDim; i++ {
		rows2[i] = p2.DeriveBRow(i, FlavorLWR)
	}
	t2 := LWRTag(rows2, s)
	if t1 != t2 {
		t.Fatal("LWRTag must be deterministic across independent Params instances")
	}

	for _, v := range t1 {
		if v >= LWROutputModulus {
			t.Fatalf("tag component %d out of range [0, %d)", v, LWROutputModulus)
		}
	}

	// Changing byte 0 of the B seed must change at least one tag
	// component.
	bSeedChanged := bSeed
	bSeedChanged[0] ^= 0x01
	p3 := New(ax, fillByte(0), fillByte(0), fillByte(0), bSeedChanged, fillByte(0))
	var rows3 [PublicDim]Row
	for i := 0; i < PublicDim; i++ {
		rows3[i] = p3.DeriveBRow(i, FlavorLWR)
	}
	t3 := LWRTag(rows3, s)
	if t1 == t3 {
		t.Fatal("changing B seed byte 0 should change the tag")
	}
}

func TestRS_DeriveSecretRange(t *testing.T) {
	s := DeriveSecret(seq0to1F())
	for i, v := range s {
		if v < -3 || v > 3 {
			t.Fatalf("secret[%d] = %d out of range [-3,3]", i, v)
		}
	}
}

func TestRS_DeriveADeterministicAndSeparated(t *testing.T) {
	ax := pattern01toFF()
	ay := fillByte(0x99)
	p := New(ax, ay, fillByte(0), fillByte(0), fillByte(0), fillByte(0))

	m1, err := p.DeriveA(FamilyAX, ntt64.Layer(1), 0)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := p.DeriveA(FamilyAX, ntt64.Layer(1), 0)
	if err != nil {
		t.Fatal(err)
	}
	if m1[0] != m2[0] {
		t.Fatal("DeriveA must be deterministic: first row differs across calls")
	}

	mAY, err := p.DeriveA(FamilyAY, ntt64.Layer(1), 0)
	if err != nil {
		t.Fatal(err)
	}
	if m1 == mAY {
		t.Fatal("AX and AY matrices must differ")
	}

	mSlot, err := p.DeriveA(FamilyAX, ntt64.Layer(1), 1)
	if err != nil {
		t.Fatal(err)
	}
	if m1 == mSlot {
		t.Fatal("changing slot must change the derived matrix")
	}

	q := ntt64.Q(ntt64.Layer(1))
	for i := range m1 {
		for _, v := range m1[i] {
			if v >= q {
				t.Fatalf("matrix entry %d out of range mod q=%d", v, q)
			}
		}
	}
}

func TestRS_DeriveAUnknownFamily(t *testing.T) {
	p := New(fillByte(0), fillByte(0), fillByte(0), fillByte(0), fillByte(0), fillByte(0))
	if _, err := p.DeriveA(Family(99), ntt64.Layer(0), 0); err != ErrUnknownFamily {
		t.Fatalf("expected ErrUnknownFamily, got %v", err)
	}
}

func TestRS_DeriveCRowDeterministic(t *testing.T) {
	p := New(fillByte(1), fillByte(2), fillByte(3), fillByte(4), fillByte(5), fillByte(6))
	r1 := p.DeriveCRow(10)
	r2 := p.DeriveCRow(10)
	if r1 != r2 {
		t.Fatal("DeriveCRow must be deterministic")
	}
	r3 := p.DeriveCRow(11)
	if r1 == r3 {
		t.Fatal("different row indices must produce different rows")
	}
}
