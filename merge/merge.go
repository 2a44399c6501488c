package merge

import "github.com/parsortlab/parsort"

// KeepLow merges own and other, two non-decreasing sequences, and returns
// the smallest len(own) elements of the merged sequence. Ties are broken
// arbitrarily; stability is not required.
func KeepLow(own, other parsort.LocalBlock) parsort.LocalBlock {
	n := len(own)
	out := make(parsort.LocalBlock, n)
	i, j := 0, 0
	for k := 0; k < n; k++ {
		switch {
		case i < len(own) && (j >= len(other) || own[i] <= other[j]):
			out[k] = own[i]
			i++
		default:
			out[k] = other[j]
			j++
		}
	}
	return out
}

// KeepHigh merges own and other and returns the largest len(own) elements
// of the merged sequence, in non-decreasing order.
func KeepHigh(own, other parsort.LocalBlock) parsort.LocalBlock {
	n := len(own)
	out := make(parsort.LocalBlock, n)
	i, j := len(own)-1, len(other)-1
	for k := n - 1; k >= 0; k-- {
		switch {
		case i >= 0 && (j < 0 || own[i] >= other[j]):
			out[k] = own[i]
			i--
		default:
			out[k] = other[j]
			j--
		}
	}
	return out
}
