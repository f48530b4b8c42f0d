package sparse

import (
	"encoding/binary"

	"github.com/eth2030/latticecore/bitio"
)

// Normalized rANS parameters: M is the total frequency budget the
// alphabet's histogram is rescaled to, L is the renormalization lower
// bound on the coder state.
const (
	ransM = 4096
	ransL = 65536
)

// normalizeFreqs rescales counts (summing to total) to a vector summing
// exactly to ransM, every entry at least 1, redistributing rounding error
// by repeatedly nudging the current argmax.
func normalizeFreqs(counts []int, total int) []int {
	n := len(counts)
	freqs := make([]int, n)
	sum := 0
	for i, c := range counts {
		f := c * ransM / total
		if f < 1 {
			f = 1
		}
		freqs[i] = f
		sum += f
	}
	for sum != ransM {
		if sum > ransM {
			idx := argmaxAbove1(freqs)
			freqs[idx]--
			sum--
		} else {
			idx := argmax(freqs)
			freqs[idx]++
			sum++
		}
	}
	return freqs
}

func argmax(freqs []int) int {
	best := 0
	for i, f := range freqs {
		if f > freqs[best] {
			best = i
		}
	}
	return best
}

func argmaxAbove1(freqs []int) int {
	best := -1
	for i, f := range freqs {
		if f > 1 && (best == -1 || f > freqs[best]) {
			best = i
		}
	}
	if best == -1 {
		// All frequencies are at the floor of 1; fall back to the global
		// argmax so the loop in normalizeFreqs still terminates.
		return argmax(freqs)
	}
	return best
}

func cumulative(freqs []int) []int {
	cumul := make([]int, len(freqs)+1)
	for i, f := range freqs {
		cumul[i+1] = cumul[i] + f
	}
	return cumul
}

func encodeRANSPayload(w *bitio.Writer, alpha []int8, vals []int8) error {
	counts := make([]int, len(alpha))
	for _, v := range vals {
		counts[alphaIndex(alpha, v)]++
	}
	freqs := normalizeFreqs(counts, len(vals))
	for _, f := range freqs {
		w.WriteBits(uint32(f), 12)
	}
	return nil
}

func readRANSFreqs(r *bitio.Reader, alphaSize int) ([]int, error) {
	freqs := make([]int, alphaSize)
	for i := range freqs {
		v, err := r.ReadBits(12)
		if err != nil {
			return nil, ErrTruncated
		}
		// A normalized frequency is never 0; a 0 field is a frequency of
		// ransM (single-symbol alphabet), whose low 12 bits are all zero.
		if v == 0 {
			v = ransM
		}
		freqs[i] = int(v)
	}
	return freqs, nil
}

// encodeRANSValues encodes vals (mapped through alpha to symbol indices)
// with normalized rANS and writes the result as a byte-aligned blob:
// renormalization bytes followed by the 32-bit final state, little-endian.
//
// The renormalization threshold is (L<<8)*f/M, not (L<<8)/f*M: only the
// former keeps the post-fold state inside the required [L, 256L) range
// for every symbol frequency, which is what makes the decoder's matching
// "while state < L" renormalization exactly invert it. A round-trip
// simulation is what surfaced this (the inverted ratio decodes correctly
// for the first one or two symbols and then silently diverges).
//
// rANS is LIFO: symbols are folded into the state in reverse order so that
// decoding, which naturally undoes the most recent fold first, recovers
// the original forward order. Renormalization bytes are collected in the
// chronological (reverse-symbol) order they are produced, then the whole
// buffer is reversed before being written out. That reversal is exactly
// what lets the decoder consume renormalization bytes in its own forward
// scan order: the two reversals (LIFO symbol order, LIFO byte order)
// cancel, which is the standard construction used by streaming rANS
// implementations.
func encodeRANSValues(w *bitio.Writer, alpha []int8, vals []int8) error {
	counts := make([]int, len(alpha))
	for _, v := range vals {
		counts[alphaIndex(alpha, v)]++
	}
	freqs := normalizeFreqs(counts, len(vals))
	cumul := cumulative(freqs)

	var renorm []byte
	state := uint64(ransL)
	for i := len(vals) - 1; i >= 0; i-- {
		sym := alphaIndex(alpha, vals[i])
		f := uint64(freqs[sym])
		c := uint64(cumul[sym])

		threshold := (uint64(ransL) << 8) * f / ransM
		for state >= threshold {
			renorm = append(renorm, byte(state&0xFF))
			state >>= 8
		}
		state = (state/f)*ransM + c + (state % f)
	}

	out := make([]byte, 0, len(renorm)+4)
	for i := len(renorm) - 1; i >= 0; i-- {
		out = append(out, renorm[i])
	}
	var stateBuf [4]byte
	binary.LittleEndian.PutUint32(stateBuf[:], uint32(state))
	out = append(out, stateBuf[:]...)

	for _, b := range out {
		if err := w.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// decodeRANSValues mirrors encodeRANSValues. blob is the whole decode
// input so the byte-level rANS stream (which reads past what a bit
// Reader's position would suggest) can be located unambiguously: it
// occupies every byte from the reader's current (byte-aligned) position
// to the end of blob.
func decodeRANSValues(r *bitio.Reader, blob []byte, k int, alpha []int8, freqs []int) ([]int8, error) {
	cumul := cumulative(freqs)

	startByte := r.BitPos() / 8
	segment := blob[startByte:]
	if len(segment) < 4 {
		return nil, ErrTruncated
	}
	stateBytes := segment[len(segment)-4:]
	renormBytes := segment[:len(segment)-4]
	state := uint64(binary.LittleEndian.Uint32(stateBytes))

	cursor := 0
	nextByte := func() (byte, error) {
		if cursor >= len(renormBytes) {
			return 0, ErrRANSExhausted
		}
		b := renormBytes[cursor]
		cursor++
		return b, nil
	}

	out := make([]int8, k)
	for i := 0; i < k; i++ {
		slot := state % ransM
		sym := -1
		for s := 0; s < len(alpha); s++ {
			if uint64(cumul[s]) <= slot && slot < uint64(cumul[s+1]) {
				sym = s
				break
			}
		}
		if sym < 0 {
			return nil, ErrRANSInvalidSlot
		}
		f := uint64(freqs[sym])
		c := uint64(cumul[sym])
		state = f*(state/ransM) + (slot - c)
		for state < ransL {
			b, err := nextByte()
			if err != nil {
				return nil, err
			}
			state = (state << 8) | uint64(b)
		}
		out[i] = alpha[sym]
	}

	return out, nil
}
