// Package prf implements the pseudorandom primitives that drive the
// ring-switching layer: an AES-256-CTR keystream generator and a
// SHA3-256-based key/nonce derivation scheme. Every function here is a
// pure function of its inputs; there is no package-level state.
package prf

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// KeySize is the AES-256 key size in bytes.
const KeySize = 32

// NonceSize is the derived-nonce size in bytes (the first 16 bytes of a
// SHA3-256 digest).
const NonceSize = 16

// DeriveKey computes SHA3-256(label ++ seed), the 32-byte AES-256 key for
// a given domain-separation label. There is no separator between label
// and seed; the label itself is the separator, since every label used by
// this module is fixed and distinct.
func DeriveKey(seed [32]byte, label string) [KeySize]byte {
	h := sha3.New256()
	h.Write([]byte(label))
	h.Write(seed[:])
	var out [KeySize]byte
	copy(out[:], h.Sum(nil))
	return out
}

// DeriveNonce computes SHA3-256(label ++ seed ++ LE32(index1) ++
// LE32(index2)), truncated to the first 16 bytes.
func DeriveNonce(seed [32]byte, label string, index1, index2 uint32) [NonceSize]byte {
	h := sha3.New256()
	h.Write([]byte(label))
	h.Write(seed[:])
	var idx [8]byte
	binary.LittleEndian.PutUint32(idx[0:4], index1)
	binary.LittleEndian.PutUint32(idx[4:8], index2)
	h.Write(idx[:])
	var out [NonceSize]byte
	copy(out[:], h.Sum(nil)[:NonceSize])
	return out
}

// Keystream fills out with len(out) bytes of AES-256-CTR keystream (the
// cipher applied to an all-zero plaintext). The 16-byte initial counter
// block is nonce[0:8] followed by counterStart encoded little-endian over
// the last 8 bytes; the cipher's internal counter then increments by one
// per 16-byte block as it produces output.
//
// Cipher initialization failure (a malformed key) is a programmer error
// in this construction, since the key always comes from DeriveKey and is
// always exactly KeySize bytes: Keystream panics rather than returning an
// error a caller could silently ignore.
func Keystream(key [KeySize]byte, nonce [NonceSize]byte, counterStart uint64, out []byte) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		panic("prf: aes.NewCipher failed on a fixed-size key: " + err.Error())
	}

	var iv [aes.BlockSize]byte
	copy(iv[0:8], nonce[0:8])
	binary.LittleEndian.PutUint64(iv[8:16], counterStart)

	stream := cipher.NewCTR(block, iv[:])
	for i := range out {
		out[i] = 0
	}
	stream.XORKeyStream(out, out)
}
