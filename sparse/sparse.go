// Package sparse implements a bit-exact entropy codec for small, sparse
// signed integer vectors: Rice-coded position gaps combined with one of
// three interchangeable value codecs (bit-packed, canonical Huffman, or
// normalized rANS). The wire format is fixed by this package, not
// configurable per call, so any two implementations following the same
// convention round-trip identically.
//
// Position codec and alphabet layout (MSB-first bitstream):
//
//	count   : 16 bits
//	engine  : 8 bits  (EnginePacked, EngineHuffman, or EngineRANS)
//	[non-packed engines only]
//	min_v+128, max_v+128 : 8 bits each
//	alphabet presence bitfield : (max_v - min_v + 1) bits
//	value-codec payload (engine-specific metadata, e.g. Huffman lengths)
//	rice parameter r : 3 bits
//	first position p0 : PositionBits(D) bits
//	k-1 Rice(r) gaps
//	byte align
//	value stream : count symbols, engine-specific
//
// A count of zero is a special case: the blob is the 16-bit header alone
// and decodes to the all-zero vector, skipping everything else.
package sparse

import (
	"errors"
	"math/bits"

	"github.com/eth2030/latticecore/bitio"
)

// Engine selects which value codec encodes the non-zero magnitudes.
type Engine uint8

const (
	// EnginePacked is the fixed 2-bit code for values confined to
	// {-2,-1,+1,+2}; it omits the alphabet header entirely.
	EnginePacked Engine = iota
	// EngineHuffman is canonical Huffman coding over an arbitrary
	// delta-encoded alphabet.
	EngineHuffman
	// EngineRANS is normalized range-ANS coding, M=4096, L=65536.
	EngineRANS
)

// MaxDimension is the largest supported vector dimension (spec.md §3).
const MaxDimension = 65535

var (
	// ErrDimensionTooLarge is a programmer error: D exceeds MaxDimension.
	ErrDimensionTooLarge = errors.New("sparse: dimension exceeds maximum")
	// ErrValueOutOfRange is returned by EnginePacked when a non-zero
	// value is not in {-2,-1,+1,+2}.
	ErrValueOutOfRange = errors.New("sparse: value out of range for packed engine")
	// ErrTruncated is a decode error for any bit-read past end of input.
	ErrTruncated = errors.New("sparse: truncated input")
	// ErrPositionOutOfRange flags a decoded position >= D.
	ErrPositionOutOfRange = errors.New("sparse: decoded position out of range")
	// ErrCountMismatch flags a decoded value count that disagrees with
	// the transmitted header count.
	ErrCountMismatch = errors.New("sparse: count mismatch")
	// ErrUnknownEngine flags an engine selector byte outside the three
	// known values.
	ErrUnknownEngine = errors.New("sparse: unknown value-codec engine")
	// ErrInvalidHuffmanTable flags a code-length table that does not
	// describe a valid prefix code.
	ErrInvalidHuffmanTable = errors.New("sparse: invalid huffman code table")
	// ErrRANSExhausted flags a rANS decode that ran out of
	// renormalization bytes before finishing.
	ErrRANSExhausted = errors.New("sparse: rANS renormalization exhausted input")
	// ErrRANSInvalidSlot flags a rANS decode slot that falls outside
	// every symbol's cumulative-frequency interval (corrupt state or
	// frequency table).
	ErrRANSInvalidSlot = errors.New("sparse: rANS slot not covered by frequency table")
)

// PositionBits returns the number of bits used to encode the first
// position (gaps are Rice coded and do not use it): 11 bits for the
// reference dimension D <= 2048, else ceil(log2(D)), resolving spec.md's
// open question as a pure function of D so no extra wire bit is needed.
func PositionBits(d int) int {
	if d <= 2048 {
		return 11
	}
	n := 0
	for (1 << n) < d {
		n++
	}
	return n
}

// riceParam computes the fixed (non-adaptive) Rice parameter from the
// dimension and non-zero count: clamp(floor(log2(D/k)), 0, 7).
func riceParam(d, k int) int {
	if k <= 0 {
		return 0
	}
	avgGap := d / k
	if avgGap < 1 {
		avgGap = 1
	}
	r := bits.Len(uint(avgGap)) - 1
	if r < 0 {
		r = 0
	}
	if r > 7 {
		r = 7
	}
	return r
}

// Encode encodes values (length D, mostly zero) into a wire blob using the
// requested engine for its non-zero magnitudes.
func Encode(values []int8, engine Engine) ([]byte, error) {
	d := len(values)
	if d > MaxDimension {
		return nil, ErrDimensionTooLarge
	}

	positions, vals := nonZeros(values)
	k := len(positions)

	w := bitio.NewWriter()
	w.WriteBits(uint32(k), 16)
	if k == 0 {
		w.AlignToByte()
		return w.Bytes(), nil
	}
	w.WriteBits(uint32(engine), 8)

	var alpha []int8
	if engine != EnginePacked {
		a, err := writeAlphabet(w, vals)
		if err != nil {
			return nil, err
		}
		alpha = a
	}

	switch engine {
	case EnginePacked:
		if err := validatePacked(vals); err != nil {
			return nil, err
		}
	case EngineHuffman:
		if err := encodeHuffmanPayload(w, alpha, vals); err != nil {
			return nil, err
		}
	case EngineRANS:
		if err := encodeRANSPayload(w, alpha, vals); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownEngine
	}

	r := riceParam(d, k)
	w.WriteBits(uint32(r), 3)
	w.WriteBits(uint32(positions[0]), PositionBits(d))
	for i := 1; i < k; i++ {
		gap := uint32(positions[i] - positions[i-1] - 1)
		w.WriteRice(gap, r)
	}
	w.AlignToByte()

	switch engine {
	case EnginePacked:
		writePackedValues(w, vals)
	case EngineHuffman:
		if err := encodeHuffmanValues(w, alpha, vals); err != nil {
			return nil, err
		}
	case EngineRANS:
		if err := encodeRANSValues(w, alpha, vals); err != nil {
			return nil, err
		}
	}

	return w.Bytes(), nil
}

// Decode reconstructs a length-D vector from a blob produced by Encode.
func Decode(blob []byte, d int) ([]int8, error) {
	if d > MaxDimension {
		return nil, ErrDimensionTooLarge
	}
	r := bitio.NewReader(blob)
	out := make([]int8, d)

	k32, err := r.ReadBits(16)
	if err != nil {
		return nil, ErrTruncated
	}
	k := int(k32)
	if k == 0 {
		return out, nil
	}

	engineByte, err := r.ReadBits(8)
	if err != nil {
		return nil, ErrTruncated
	}
	engine := Engine(engineByte)

	var alpha []int8
	if engine != EnginePacked {
		a, err := readAlphabet(r)
		if err != nil {
			return nil, err
		}
		alpha = a
	}

	var huffLengths []int
	var ransFreqs []int
	switch engine {
	case EnginePacked:
		// no payload preamble
	case EngineHuffman:
		lengths, err := readHuffmanLengths(r, len(alpha))
		if err != nil {
			return nil, err
		}
		huffLengths = lengths
	case EngineRANS:
		freqs, err := readRANSFreqs(r, len(alpha))
		if err != nil {
			return nil, err
		}
		ransFreqs = freqs
	default:
		return nil, ErrUnknownEngine
	}

	riceR32, err := r.ReadBits(3)
	if err != nil {
		return nil, ErrTruncated
	}
	riceR := int(riceR32)

	posBits := PositionBits(d)
	p0, err := r.ReadBits(posBits)
	if err != nil {
		return nil, ErrTruncated
	}
	positions := make([]int, k)
	positions[0] = int(p0)
	if positions[0] >= d {
		return nil, ErrPositionOutOfRange
	}
	for i := 1; i < k; i++ {
		gap, err := r.ReadRice(riceR)
		if err != nil {
			return nil, err
		}
		positions[i] = positions[i-1] + int(gap) + 1
		if positions[i] >= d {
			return nil, ErrPositionOutOfRange
		}
	}
	r.AlignToByte()

	var decodedVals []int8
	switch engine {
	case EnginePacked:
		decodedVals, err = readPackedValues(r, k)
	case EngineHuffman:
		decodedVals, err = decodeHuffmanValues(r, k, alpha, huffLengths)
	case EngineRANS:
		decodedVals, err = decodeRANSValues(r, blob, k, alpha, ransFreqs)
	}
	if err != nil {
		return nil, err
	}
	if len(decodedVals) != k {
		return nil, ErrCountMismatch
	}

	for i, pos := range positions {
		out[pos] = decodedVals[i]
	}
	return out, nil
}

// nonZeros returns the ascending positions and corresponding values of the
// non-zero entries of values.
func nonZeros(values []int8) ([]int, []int8) {
	var positions []int
	var vals []int8
	for i, v := range values {
		if v != 0 {
			positions = append(positions, i)
			vals = append(vals, v)
		}
	}
	return positions, vals
}

// writeAlphabet writes the delta-encoded alphabet header (min_v, max_v,
// presence bitfield) and returns the ascending list of present values.
func writeAlphabet(w *bitio.Writer, vals []int8) ([]int8, error) {
	minV, maxV := vals[0], vals[0]
	for _, v := range vals {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	w.WriteBits(uint32(int(minV)+128), 8)
	w.WriteBits(uint32(int(maxV)+128), 8)

	present := make(map[int8]bool)
	for _, v := range vals {
		present[v] = true
	}
	var alpha []int8
	for v := int(minV); v <= int(maxV); v++ {
		if present[int8(v)] {
			w.WriteBit(1)
			alpha = append(alpha, int8(v))
		} else {
			w.WriteBit(0)
		}
	}
	return alpha, nil
}

func readAlphabet(r *bitio.Reader) ([]int8, error) {
	minB, err := r.ReadBits(8)
	if err != nil {
		return nil, ErrTruncated
	}
	maxB, err := r.ReadBits(8)
	if err != nil {
		return nil, ErrTruncated
	}
	minV := int(minB) - 128
	maxV := int(maxB) - 128
	if maxV < minV {
		return nil, ErrInvalidHuffmanTable
	}
	var alpha []int8
	for v := minV; v <= maxV; v++ {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, ErrTruncated
		}
		if bit == 1 {
			alpha = append(alpha, int8(v))
		}
	}
	return alpha, nil
}

func alphaIndex(alpha []int8, v int8) int {
	for i, a := range alpha {
		if a == v {
			return i
		}
	}
	return -1
}
