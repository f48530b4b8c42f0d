package bitio

import (
	"bytes"
	"testing"
)

func TestBitio_WriteReadBits(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0b101, 3)
	w.WriteBits(0xABCD, 16)
	w.AlignToByte()

	r := NewReader(w.Bytes())
	v, err := r.ReadBits(3)
	if err != nil || v != 0b101 {
		t.Fatalf("ReadBits(3) = %d, %v", v, err)
	}
	v2, err := r.ReadBits(16)
	if err != nil || v2 != 0xABCD {
		t.Fatalf("ReadBits(16) = %x, %v", v2, err)
	}
}

func TestBitio_RiceRoundTrip(t *testing.T) {
	for r := 0; r <= 8; r++ {
		for n := uint32(0); n < 1<<12; n += 37 {
			w := NewWriter()
			w.WriteRice(n, r)
			w.AlignToByte()
			rd := NewReader(w.Bytes())
			got, err := rd.ReadRice(r)
			if n>>uint(r) > riceUnaryCap {
				// The unary prefix is longer than the decoder's safety cap.
				if err != ErrRiceUnaryTooLong {
					t.Fatalf("r=%d n=%d: expected ErrRiceUnaryTooLong, got %v", r, n, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("r=%d n=%d: unexpected error %v", r, n, err)
			}
			if got != n {
				t.Fatalf("r=%d n=%d: round trip got %d", r, n, got)
			}
		}
	}
}

func TestBitio_RiceGapScenario(t *testing.T) {
	// Gap sequence [3, 1, 15, 0] with r=2, per the Rice code definition in
	// the glossary (q=n>>r unary + terminator, then rem in r bits):
	//   3  -> q=0 rem=3 -> "0" "11"
	//   1  -> q=0 rem=1 -> "0" "01"
	//   15 -> q=3 rem=3 -> "1110" "11"
	//   0  -> q=0 rem=0 -> "0" "00"
	// Concatenated: 011 001 111011 000 (15 bits), zero-padded to 2 bytes.
	w := NewWriter()
	for _, v := range []uint32{3, 1, 15, 0} {
		w.WriteRice(v, 2)
	}
	w.AlignToByte()
	got := w.Bytes()
	want := []byte{0x67, 0xB0}
	if !bytes.Equal(got, want) {
		t.Fatalf("gap sequence encoding = % X, want % X", got, want)
	}

	rd := NewReader(got)
	for _, want := range []uint32{3, 1, 15, 0} {
		v, err := rd.ReadRice(2)
		if err != nil {
			t.Fatal(err)
		}
		if v != want {
			t.Fatalf("decoded %d, want %d", v, want)
		}
	}
}

func TestBitio_ReadPastEndFails(t *testing.T) {
	r := NewReader([]byte{0xFF})
	if _, err := r.ReadBits(8); err != nil {
		t.Fatalf("first 8 bits should succeed: %v", err)
	}
	if _, err := r.ReadBit(); err != ErrEndOfBuffer {
		t.Fatalf("expected ErrEndOfBuffer, got %v", err)
	}
}

func TestBitio_RiceUnaryCapFails(t *testing.T) {
	w := NewWriter()
	for i := 0; i < riceUnaryCap+10; i++ {
		w.WriteBit(1)
	}
	w.WriteBit(0)
	r := NewReader(w.Bytes())
	if _, err := r.ReadRice(0); err != ErrRiceUnaryTooLong {
		t.Fatalf("expected ErrRiceUnaryTooLong, got %v", err)
	}
}

func TestBitio_ByteAlignment(t *testing.T) {
	w := NewWriter()
	w.WriteBit(1)
	if err := w.WriteByte(0xFF); err == nil {
		t.Fatal("WriteByte should fail when not byte-aligned")
	}
	w.AlignToByte()
	if err := w.WriteByte(0xAB); err != nil {
		t.Fatal(err)
	}

	r := NewReader(w.Bytes())
	if _, err := r.ReadBit(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadByte(); err == nil {
		t.Fatal("ReadByte should fail when not byte-aligned")
	}
	r.AlignToByte()
	b, err := r.ReadByte()
	if err != nil || b != 0xAB {
		t.Fatalf("ReadByte = %x, %v", b, err)
	}
}
