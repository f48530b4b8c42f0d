package sparse

import "github.com/eth2030/latticecore/bitio"

// packedMap is the fixed 2-bit code for the small-alphabet engine:
// 00->-2, 01->-1, 10->+1, 11->+2.
var packedMap = [4]int8{-2, -1, 1, 2}

func packedCode(v int8) (uint32, bool) {
	for code, val := range packedMap {
		if val == v {
			return uint32(code), true
		}
	}
	return 0, false
}

func validatePacked(vals []int8) error {
	for _, v := range vals {
		if _, ok := packedCode(v); !ok {
			return ErrValueOutOfRange
		}
	}
	return nil
}

func writePackedValues(w *bitio.Writer, vals []int8) {
	for _, v := range vals {
		code, _ := packedCode(v)
		w.WriteBits(code, 2)
	}
}

func readPackedValues(r *bitio.Reader, k int) ([]int8, error) {
	out := make([]int8, k)
	for i := 0; i < k; i++ {
		code, err := r.ReadBits(2)
		if err != nil {
			return nil, ErrTruncated
		}
		out[i] = packedMap[code]
	}
	return out, nil
}
