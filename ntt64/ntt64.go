// Package ntt64 implements a constant-time negacyclic Number Theoretic
// Transform of fixed length N=64 over seven 32-bit prime moduli. It
// provides the forward and inverse transforms, pointwise multiplication in
// the transform domain, and the compile-time twiddle/psi-power tables each
// layer needs.
//
// All arithmetic is delegated to the field package, which implements the
// constant-time modular operations; this package only sequences butterflies
// and permutations, none of which branch on polynomial data.
package ntt64

import "github.com/eth2030/latticecore/field"

// N is the fixed transform length.
const N = 64

// NumLayers is the number of supported moduli.
const NumLayers = 7

// Layer identifies one of the seven moduli by table index.
type Layer int

// Poly is a length-N array of residues mod the modulus of some layer. The
// zero value is the zero polynomial.
type Poly [N]uint64

// Q returns the modulus for layer l. Panics if l is out of range: an
// unsupported layer index is a programmer error, not a recoverable one.
func Q(l Layer) uint64 {
	return layers[l].Q
}

func mustLayer(l Layer) layerConsts {
	if l < 0 || int(l) >= NumLayers {
		panic("ntt64: layer index out of range")
	}
	return layers[l]
}

// bitRev6 reverses the low 6 bits of x, used for the in-place bit-reversal
// permutation. Applying it twice is the identity.
func bitRev6(x int) int {
	r := 0
	for i := 0; i < 6; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

func bitReversePermute(a *Poly) {
	for i := 0; i < N; i++ {
		j := bitRev6(i)
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}

// Forward performs the negacyclic NTT in place: the psi-power twist,
// bit-reversal, then six stages of decimation-in-time Cooley-Tukey
// butterflies. Coefficients must be reduced residues < Q(l); callers that
// cannot guarantee this should pre-reduce (the transform is defined but
// implementation-specific on out-of-range input, per spec).
func Forward(l Layer, a *Poly) {
	lc := mustLayer(l)
	q, barrett := lc.Q, lc.Barrett

	for i := 0; i < N; i++ {
		a[i] = field.MulMod(a[i], lc.PsiPow[i], q, barrett)
	}
	bitReversePermute(a)

	for s := 0; s < 6; s++ {
		length := 1 << s
		ws := lc.TwFwd[s]
		for start := 0; start < N; start += 2 * length {
			w := uint64(1)
			for j := start; j < start+length; j++ {
				x := a[j]
				y := a[j+length]
				t := field.MulMod(w, y, q, barrett)
				a[j] = field.AddMod(x, t, q)
				a[j+length] = field.SubMod(x, t, q)
				w = field.MulMod(w, ws, q, barrett)
			}
		}
	}
}

// Inverse performs the negacyclic inverse NTT in place: six stages of
// decimation-in-frequency Gentleman-Sande butterflies (stage order
// reversed relative to Forward), bit-reversal, scaling by N^-1, then the
// psi-inverse-power twist.
func Inverse(l Layer, a *Poly) {
	lc := mustLayer(l)
	q, barrett := lc.Q, lc.Barrett

	for s := 5; s >= 0; s-- {
		length := 1 << s
		ws := lc.TwInv[s]
		for start := 0; start < N; start += 2 * length {
			w := uint64(1)
			for j := start; j < start+length; j++ {
				x := a[j]
				y := a[j+length]
				a[j] = field.AddMod(x, y, q)
				a[j+length] = field.MulMod(w, field.SubMod(x, y, q), q, barrett)
				w = field.MulMod(w, ws, q, barrett)
			}
		}
	}

	bitReversePermute(a)

	for i := 0; i < N; i++ {
		a[i] = field.MulMod(a[i], lc.NInv, q, barrett)
	}
	for i := 0; i < N; i++ {
		a[i] = field.MulMod(a[i], lc.PsiInvPow[i], q, barrett)
	}
}

// PointwiseMul returns c[i] = a[i]*b[i] mod Q(l) for all i; a and b are
// assumed to already be in the transform domain.
func PointwiseMul(l Layer, a, b *Poly) Poly {
	lc := mustLayer(l)
	var c Poly
	for i := 0; i < N; i++ {
		c[i] = field.MulMod(a[i], b[i], lc.Q, lc.Barrett)
	}
	return c
}
