package ntt64

import "testing"

func TestNTT64_RoundTripAllZero(t *testing.T) {
	for l := Layer(0); l < NumLayers; l++ {
		var p Poly
		Forward(l, &p)
		Inverse(l, &p)
		if p != (Poly{}) {
			t.Fatalf("layer %d: zero poly round trip produced nonzero result", l)
		}
	}
}

func TestNTT64_RoundTripLayer3(t *testing.T) {
	// Scenario 1: poly[i] = i mod q on layer 3 (q=43777).
	const l = Layer(3)
	var p Poly
	for i := 0; i < N; i++ {
		p[i] = uint64(i) % Q(l)
	}
	orig := p
	Forward(l, &p)
	Inverse(l, &p)
	if p != orig {
		t.Fatalf("layer 3 round trip mismatch:\n got %v\nwant %v", p, orig)
	}
}

func TestNTT64_RoundTripAllLayers(t *testing.T) {
	rng := newXorshift(12345)
	for l := Layer(0); l < NumLayers; l++ {
		q := Q(l)
		for trial := 0; trial < 8; trial++ {
			var p, orig Poly
			for i := 0; i < N; i++ {
				p[i] = rng.next() % q
				orig[i] = p[i]
			}
			Forward(l, &p)
			Inverse(l, &p)
			if p != orig {
				t.Fatalf("layer %d trial %d round trip mismatch", l, trial)
			}
		}
	}
}

func TestNTT64_ForwardInverseCommute(t *testing.T) {
	// forward(inverse(P)) == P as well as inverse(forward(P)) == P.
	const l = Layer(1)
	q := Q(l)
	rng := newXorshift(99)
	var p, orig Poly
	for i := 0; i < N; i++ {
		p[i] = rng.next() % q
		orig[i] = p[i]
	}
	Inverse(l, &p)
	Forward(l, &p)
	if p != orig {
		t.Fatalf("forward(inverse(P)) != P")
	}
}

func TestNTT64_IdentityPolynomial(t *testing.T) {
	const l = Layer(2)
	q := Q(l)
	rng := newXorshift(7)

	var a Poly
	for i := 0; i < N; i++ {
		a[i] = rng.next() % q
	}
	var ident Poly
	ident[0] = 1

	A := a
	Forward(l, &A)
	I := ident
	Forward(l, &I)

	c := PointwiseMul(l, &I, &A)
	back := c
	Inverse(l, &back)
	if back != a {
		t.Fatalf("multiplying by forward(identity) should be identity")
	}
}

func TestNTT64_PointwiseMulCommutes(t *testing.T) {
	const l = Layer(4)
	q := Q(l)
	rng := newXorshift(555)

	var a, b Poly
	for i := 0; i < N; i++ {
		a[i] = rng.next() % q
		b[i] = rng.next() % q
	}
	Forward(l, &a)
	Forward(l, &b)

	ab := PointwiseMul(l, &a, &b)
	ba := PointwiseMul(l, &b, &a)
	if ab != ba {
		t.Fatalf("pointwise multiplication should commute")
	}
}

func TestNTT64_NegacyclicConvolutionIdentity(t *testing.T) {
	const l = Layer(5)
	q := Q(l)
	rng := newXorshift(2024)

	var a, b Poly
	for i := 0; i < N; i++ {
		a[i] = rng.next() % q
		b[i] = rng.next() % q
	}

	A, B := a, b
	Forward(l, &A)
	Forward(l, &B)
	C := PointwiseMul(l, &A, &B)
	Inverse(l, &C)

	want := negacyclicSchoolbook(a, b, q)
	if C != want {
		t.Fatalf("negacyclic convolution identity failed:\n got %v\nwant %v", C, want)
	}
}

// negacyclicSchoolbook computes a*b mod (x^64+1) mod q the slow way, as
// the reference for the NTT-based fast path.
func negacyclicSchoolbook(a, b Poly, q uint64) Poly {
	var res Poly
	for i := 0; i < N; i++ {
		if a[i] == 0 {
			continue
		}
		for j := 0; j < N; j++ {
			if b[j] == 0 {
				continue
			}
			v := (a[i] * b[j]) % q
			k := i + j
			if k >= N {
				k -= N
				if v != 0 {
					v = q - v
				}
			}
			res[k] = (res[k] + v) % q
		}
	}
	return res
}

// xorshift is a tiny deterministic PRNG for reproducible test vectors; it
// is not a cryptographic primitive and must never be used outside tests.
type xorshift struct{ state uint64 }

func newXorshift(seed uint64) *xorshift {
	if seed == 0 {
		seed = 1
	}
	return &xorshift{state: seed}
}

func (x *xorshift) next() uint64 {
	x.state ^= x.state << 13
	x.state ^= x.state >> 7
	x.state ^= x.state << 17
	return x.state
}
