// Package field implements constant-time modular arithmetic over the seven
// 32-bit prime moduli used by the NTT64 transform (see the ntt64 package).
// Every operation here is written so the executed instruction sequence does
// not depend on the values of its operands: comparisons are turned into
// arithmetic masks rather than branches, and the modular-inverse routine
// runs a fixed iteration count regardless of its input.
package field

import "math/bits"

// Barrett returns floor(2^64 / q), the Barrett reduction constant for
// modulus q. Callers that embed compile-time layer tables (ntt64) should
// treat this as a reference implementation for regenerating those tables,
// not call it on a hot path.
func Barrett(q uint64) uint64 {
	quo, _ := bits.Div64(1, 0, q)
	return quo
}

// maskFromBool turns a boolean condition, expressed as a uint64 that is
// either 0 or 1, into an all-zero or all-one mask.
func maskFromBool(cond uint64) uint64 {
	return -cond
}

// geMask returns an all-one mask if a >= b, else all-zero. a and b must be
// small enough that a-b does not overflow the signed 64-bit range, which
// always holds for our moduli (< 2^32).
func geMask(a, b uint64) uint64 {
	d := int64(a - b)
	// d >= 0 (a >= b): arithmetic shift yields 0, so the negation is all-ones.
	// d <  0 (a <  b): arithmetic shift yields all-ones, negation is 0.
	return ^uint64(d >> 63)
}

// AddMod returns (a+b) mod q for reduced residues a, b < q. Constant-time:
// the single conditional subtraction is performed via a comparison mask.
func AddMod(a, b, q uint64) uint64 {
	s := a + b
	mask := geMask(s, q)
	return s - (mask & q)
}

// SubMod returns (a-b) mod q for reduced residues a, b < q.
func SubMod(a, b, q uint64) uint64 {
	s := a + q - b
	mask := geMask(s, q)
	return s - (mask & q)
}

// MulMod returns (a*b) mod q using Barrett reduction. barrett must equal
// Barrett(q). a and b must be reduced residues < q.
func MulMod(a, b, q, barrett uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_ = hi // product of two sub-2^32 residues always fits in the low word
	qhat, _ := bits.Mul64(lo, barrett)
	r := lo - qhat*q
	// Two mask-conditional subtractions canonicalize r into [0, q).
	r -= geMask(r, q) & q
	r -= geMask(r, q) & q
	return r
}

// invModIterations bounds the constant-time binary extended GCD used by
// InvMod. 96 iterations comfortably covers every modulus in the table
// (all under 2^32; the classic bound is ~2*bitlen(q)).
const invModIterations = 96

// InvMod returns the modular inverse of a mod q, computed with a
// constant-iteration binary extended GCD: every one of the 96 iterations
// performs all four candidate updates and selects among them with masks,
// so the instruction trace does not depend on a's value. Returns 0 (an
// invalid residue, used as a sentinel) if a has no inverse mod q —
// callers must check for this rather than trust the result blindly.
func InvMod(a, q uint64) uint64 {
	u := a % q
	v := q
	var x1 uint64 = 1
	var x2 uint64 = 0

	for i := 0; i < invModIterations; i++ {
		uIsZero := maskFromBool(boolToU64(u == 0))
		uEven := maskFromBool(boolToU64(u&1 == 0)) &^ uIsZero
		vEven := maskFromBool(boolToU64(v&1 == 0)) &^ uIsZero &^ uEven
		uGEv := geMask(u, v) &^ uIsZero &^ uEven &^ vEven
		elseCase := ^(uIsZero | uEven | vEven | uGEv)

		// Candidate A: u even -> u/=2, halve x1 mod q.
		uA := u >> 1
		x1A := halveModQ(x1, q)

		// Candidate B: v even -> v/=2, halve x2 mod q.
		vB := v >> 1
		x2B := halveModQ(x2, q)

		// Candidate C: both odd, u>=v -> u=(u-v)/2, x1=(x1-x2)/2 mod q.
		uC := (u - v) >> 1
		x1C := halveModQ(SubMod(x1, x2, q), q)

		// Candidate D: both odd, u<v -> v=(v-u)/2, x2=(x2-x1)/2 mod q.
		vD := (v - u) >> 1
		x2D := halveModQ(SubMod(x2, x1, q), q)

		u = selU64(uEven, uA, selU64(uGEv, uC, u))
		v = selU64(vEven, vB, selU64(elseCase, vD, v))
		x1 = selU64(uEven, x1A, selU64(uGEv, x1C, x1))
		x2 = selU64(vEven, x2B, selU64(elseCase, x2D, x2))
	}

	notOne := maskFromBool(boolToU64(v != 1))
	return x2 &^ notOne
}

func boolToU64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func selU64(mask, a, b uint64) uint64 {
	return (a & mask) | (b &^ mask)
}

// halveModQ returns x/2 mod q for a reduced residue x < q and odd q, i.e.
// the unique y < q with 2y ≡ x (mod q).
func halveModQ(x, q uint64) uint64 {
	odd := maskFromBool(x & 1)
	return (x + (odd & q)) >> 1
}
