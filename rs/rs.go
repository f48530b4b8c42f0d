// Package rs implements the ring-switching PRF/matrix layer: it derives
// AES-256 keys from six 32-byte seeds, materializes public A matrices and
// B/C rows from those keys via the prf package's keystream, samples secret
// vectors, and computes the LWR public tag.
package rs

import (
	"encoding/binary"
	"errors"

	"github.com/eth2030/latticecore/ntt64"
	"github.com/eth2030/latticecore/prf"
)

// Dimensions fixed by the construction (spec.md section 6).
const (
	SecretDim = 256
	PublicDim = 64
	SlotCount = 4
	N         = 64
	NumLayers = 7

	// LWROutputModulus and LWRShift parameterize the tag computation.
	LWROutputModulus = 12289
	LWRShift         = 16
)

// Family selects which of the four A-matrix key families to derive from.
type Family int

const (
	FamilyAX Family = iota
	FamilyAY
	FamilyAOX
	FamilyAOY
)

// Flavor selects which B-row variant to derive.
type Flavor int

const (
	FlavorLWR Flavor = iota
	FlavorTagged
	FlavorPartial
)

var familyALabels = [4]string{"AX_A", "AY_A", "AOX_A", "AOY_A"}

// ErrUnknownFamily is returned when a Family value outside the four known
// families is used.
var ErrUnknownFamily = errors.New("rs: unknown matrix family")

// Params owns the six 32-byte seeds and the AES-256 keys derived from them
// once at construction. Params is immutable after New returns.
type Params struct {
	seeds struct {
		ax, ay, aox, aoy, b, c [32]byte
	}
	keys struct {
		ax, ay, aox, aoy, b, c [prf.KeySize]byte
	}
}

// New builds a Params from the six domain seeds, deriving all six AES-256
// keys up front via SHA3-256(label ++ seed).
func New(ax, ay, aox, aoy, b, c [32]byte) *Params {
	p := &Params{}
	p.seeds.ax, p.seeds.ay, p.seeds.aox, p.seeds.aoy = ax, ay, aox, aoy
	p.seeds.b, p.seeds.c = b, c

	p.keys.ax = prf.DeriveKey(ax, "AX_KEY")
	p.keys.ay = prf.DeriveKey(ay, "AY_KEY")
	p.keys.aox = prf.DeriveKey(aox, "AOX_KEY")
	p.keys.aoy = prf.DeriveKey(aoy, "AOY_KEY")
	p.keys.b = prf.DeriveKey(b, "B_KEY")
	p.keys.c = prf.DeriveKey(c, "C_KEY")
	return p
}

// familyKeySeedLabel resolves (key, seed, A-derivation-label) for family f.
func (p *Params) familyKeySeedLabel(f Family) ([prf.KeySize]byte, [32]byte, string, error) {
	switch f {
	case FamilyAX:
		return p.keys.ax, p.seeds.ax, familyALabels[FamilyAX], nil
	case FamilyAY:
		return p.keys.ay, p.seeds.ay, familyALabels[FamilyAY], nil
	case FamilyAOX:
		return p.keys.aox, p.seeds.aox, familyALabels[FamilyAOX], nil
	case FamilyAOY:
		return p.keys.aoy, p.seeds.aoy, familyALabels[FamilyAOY], nil
	default:
		var zk [prf.KeySize]byte
		var zs [32]byte
		return zk, zs, "", ErrUnknownFamily
	}
}

// Matrix is a PublicDim x PublicDim array of residues mod the layer
// modulus.
type Matrix [PublicDim][PublicDim]uint64

// DeriveA materializes the A matrix for (family, layer, slot): it derives
// a nonce from (layer, slot), generates PublicDim*PublicDim*4 bytes of
// keystream, and reduces each little-endian uint32 chunk modulo the
// layer's modulus.
func (p *Params) DeriveA(family Family, layer ntt64.Layer, slot int) (Matrix, error) {
	key, seed, label, err := p.familyKeySeedLabel(family)
	if err != nil {
		return Matrix{}, err
	}
	nonce := prf.DeriveNonce(seed, label, uint32(layer), uint32(slot))

	const need = PublicDim * PublicDim * 4
	buf := make([]byte, need)
	prf.Keystream(key, nonce, 0, buf)

	q := ntt64.Q(layer)
	var m Matrix
	idx := 0
	for i := 0; i < PublicDim; i++ {
		for j := 0; j < PublicDim; j++ {
			v := binary.LittleEndian.Uint32(buf[idx : idx+4])
			idx += 4
			m[i][j] = uint64(v) % q
		}
	}
	return m, nil
}

// Row is a length-SecretDim array of uint32 residues mod 2^32 (no further
// reduction).
type Row [SecretDim]uint32

// DeriveBRow materializes a B row for (rowIndex, flavor): label "B_ROW",
// nonce indices (rowIndex, flavor).
func (p *Params) DeriveBRow(rowIndex int, flavor Flavor) Row {
	nonce := prf.DeriveNonce(p.seeds.b, "B_ROW", uint32(rowIndex), uint32(flavor))
	return deriveRow(p.keys.b, nonce)
}

// DeriveCRow materializes a C row for rowIndex: label "C_ROW", nonce
// indices (rowIndex, 0).
func (p *Params) DeriveCRow(rowIndex int) Row {
	nonce := prf.DeriveNonce(p.seeds.c, "C_ROW", uint32(rowIndex), 0)
	return deriveRow(p.keys.c, nonce)
}

func deriveRow(key [prf.KeySize]byte, nonce [prf.NonceSize]byte) Row {
	const need = SecretDim * 4
	buf := make([]byte, need)
	prf.Keystream(key, nonce, 0, buf)

	var r Row
	idx := 0
	for i := 0; i < SecretDim; i++ {
		r[i] = binary.LittleEndian.Uint32(buf[idx : idx+4])
		idx += 4
	}
	return r
}

// Secret is a length-SecretDim array of signed integers in {-3,...,+3}.
type Secret [SecretDim]int8

// DeriveSecret maps a 32-byte seed to a secret vector: SHA3-256-derived
// keystream bytes, one per coefficient, each reduced mod 7 and mapped
// 0..6 -> -3..+3.
func DeriveSecret(seed [32]byte) Secret {
	key := prf.DeriveKey(seed, "S_KEY")
	nonce := prf.DeriveNonce(seed, "S_ROW", 0, 0)

	buf := make([]byte, SecretDim)
	prf.Keystream(key, nonce, 0, buf)

	var s Secret
	for i, b := range buf {
		s[i] = int8(int(b%7) - 3)
	}
	return s
}

// LWRTag computes t[i] = (sum_j B_rows[i][j] * s[j] mod 2^32 >> LWRShift)
// mod LWROutputModulus for i in [0, PublicDim). The inner accumulation is
// performed in 64-bit arithmetic then truncated to 32 bits, treating the
// signed secret as its two's-complement encoding rather than as signed
// arithmetic with undefined overflow.
func LWRTag(rows [PublicDim]Row, s Secret) [PublicDim]uint16 {
	var t [PublicDim]uint16
	for i := 0; i < PublicDim; i++ {
		var acc uint64
		for j := 0; j < SecretDim; j++ {
			sv := uint64(uint32(int32(s[j])))
			acc += uint64(rows[i][j]) * sv
		}
		acc32 := uint32(acc)
		t[i] = uint16((acc32 >> LWRShift) % LWROutputModulus)
	}
	return t
}
