package sparse

import (
	"container/heap"
	"sort"

	"github.com/eth2030/latticecore/bitio"
)

// maxHuffmanLen is the largest code length the 5-bit length field can
// carry. Alphabets for these vectors are small by construction (a handful
// of distinct signed magnitudes), so a plain Huffman tree over realistic
// histograms stays well under this bound; encodeHuffmanPayload rejects
// the pathological case outright rather than silently truncating lengths.
const maxHuffmanLen = 31

type huffNode struct {
	freq        int
	sym         int // index into alpha, -1 for internal nodes
	left, right *huffNode
}

type huffHeap []*huffNode

func (h huffHeap) Len() int { return len(h) }
func (h huffHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].sym < h[j].sym
}
func (h huffHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *huffHeap) Push(x any)        { *h = append(*h, x.(*huffNode)) }
func (h *huffHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// huffmanLengths computes a valid (not necessarily length-limited beyond
// maxHuffmanLen) set of code lengths, one per alphabet symbol, from
// occurrence counts.
func huffmanLengths(counts []int) ([]int, error) {
	n := len(counts)
	lengths := make([]int, n)
	if n == 1 {
		lengths[0] = 1
		return lengths, nil
	}

	h := make(huffHeap, 0, n)
	for i, c := range counts {
		h = append(h, &huffNode{freq: c, sym: i})
	}
	heap.Init(&h)
	for h.Len() > 1 {
		a := heap.Pop(&h).(*huffNode)
		b := heap.Pop(&h).(*huffNode)
		heap.Push(&h, &huffNode{freq: a.freq + b.freq, sym: -1, left: a, right: b})
	}
	root := h[0]

	var walk func(n *huffNode, depth int)
	walk = func(n *huffNode, depth int) {
		if n.sym >= 0 {
			if depth == 0 {
				depth = 1
			}
			lengths[n.sym] = depth
			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(root, 0)

	for _, l := range lengths {
		if l > maxHuffmanLen {
			return nil, ErrInvalidHuffmanTable
		}
	}
	return lengths, nil
}

// canonicalCodes assigns canonical Huffman codes from a length array,
// following the standard procedure: count codes per length, compute the
// first code at each length, then walk symbols in index order assigning
// and incrementing. Both encoder and decoder derive identical codes from
// identical lengths, so only lengths need to cross the wire.
func canonicalCodes(lengths []int) (codes []uint32, maxLen int) {
	for _, l := range lengths {
		if l > maxLen {
			maxLen = l
		}
	}
	blCount := make([]int, maxLen+1)
	for _, l := range lengths {
		if l > 0 {
			blCount[l]++
		}
	}
	nextCode := make([]uint32, maxLen+1)
	code := uint32(0)
	for bitLen := 1; bitLen <= maxLen; bitLen++ {
		code = (code + uint32(blCount[bitLen-1])) << 1
		nextCode[bitLen] = code
	}
	codes = make([]uint32, len(lengths))
	for i, l := range lengths {
		if l == 0 {
			continue
		}
		codes[i] = nextCode[l]
		nextCode[l]++
	}
	return codes, maxLen
}

func encodeHuffmanPayload(w *bitio.Writer, alpha []int8, vals []int8) error {
	counts := make([]int, len(alpha))
	for _, v := range vals {
		idx := alphaIndex(alpha, v)
		counts[idx]++
	}
	lengths, err := huffmanLengths(counts)
	if err != nil {
		return err
	}
	for _, l := range lengths {
		w.WriteBits(uint32(l), 5)
	}
	return nil
}

func readHuffmanLengths(r *bitio.Reader, alphaSize int) ([]int, error) {
	lengths := make([]int, alphaSize)
	for i := range lengths {
		v, err := r.ReadBits(5)
		if err != nil {
			return nil, ErrTruncated
		}
		lengths[i] = int(v)
	}
	return lengths, nil
}

func encodeHuffmanValues(w *bitio.Writer, alpha []int8, vals []int8) error {
	counts := make([]int, len(alpha))
	for _, v := range vals {
		counts[alphaIndex(alpha, v)]++
	}
	lengths, err := huffmanLengths(counts)
	if err != nil {
		return err
	}
	codes, _ := canonicalCodes(lengths)
	for _, v := range vals {
		idx := alphaIndex(alpha, v)
		w.WriteBits(codes[idx], lengths[idx])
	}
	return nil
}

// decodeHuffmanValues rebuilds the canonical codes from the transmitted
// lengths and decodes k symbols bit by bit, walking a prefix match.
func decodeHuffmanValues(r *bitio.Reader, k int, alpha []int8, lengths []int) ([]int8, error) {
	codes, maxLen := canonicalCodes(lengths)

	type entry struct {
		length int
		code   uint32
		sym    int
	}
	entries := make([]entry, 0, len(alpha))
	for i, l := range lengths {
		if l > 0 {
			entries = append(entries, entry{length: l, code: codes[i], sym: i})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].length < entries[j].length })
	if len(entries) == 0 {
		return nil, ErrInvalidHuffmanTable
	}

	out := make([]int8, k)
	for i := 0; i < k; i++ {
		var acc uint32
		matched := false
		for l := 1; l <= maxLen; l++ {
			bit, err := r.ReadBit()
			if err != nil {
				return nil, ErrTruncated
			}
			acc = (acc << 1) | uint32(bit)
			for _, e := range entries {
				if e.length == l && e.code == acc {
					out[i] = alpha[e.sym]
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if !matched {
			return nil, ErrInvalidHuffmanTable
		}
	}
	return out, nil
}
