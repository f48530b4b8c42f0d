// Package latticecore collects the lattice-cryptography primitives used
// across a ring-switching proof system: a constant-time negacyclic NTT
// over seven 32-bit primes (ntt64), a domain-separated pseudorandom
// expansion layer for public matrices and secret vectors (prf, rs), and a
// bit-exact entropy codec for the small sparse integer vectors those
// constructions produce (bitio, sparse).
//
// This file only re-exports the handful of identifiers callers reach for
// without drilling into a subpackage; the actual implementations live in
// field, ntt64, prf, rs, bitio, and sparse.
package latticecore

import (
	"github.com/eth2030/latticecore/ntt64"
	"github.com/eth2030/latticecore/rs"
)

// Version identifies this build of the module for logging and
// diagnostics; it is not parsed or compared against anything.
const Version = "0.1.0"

// Layer re-exports ntt64.Layer so callers that only need to name a
// modulus don't have to import ntt64 directly.
type Layer = ntt64.Layer

// Params re-exports rs.Params, the ring-switching configuration object.
type Params = rs.Params

// NewParams re-exports rs.New.
func NewParams(ax, ay, aox, aoy, b, c [32]byte) *Params {
	return rs.New(ax, ay, aox, aoy, b, c)
}
