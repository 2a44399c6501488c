package sample

import "github.com/parsortlab/parsort"

// SelectRegular returns w values taken from sorted at indices
// i*(len(sorted)/w) for i in [0,w). If sorted has fewer than w elements
// (including none), the result is padded by repeating the last sampled
// value, or 0 if sorted is empty; gather needs every rank to contribute a
// fixed count, and the padding is filtered out implicitly once pivots are
// chosen from it.
func SelectRegular(sorted parsort.LocalBlock, w int) parsort.LocalBlock {
	out := make(parsort.LocalBlock, w)
	if len(sorted) == 0 {
		return out // all zero
	}
	stride := len(sorted) / w
	last := parsort.Key(0)
	for i := 0; i < w; i++ {
		idx := i * stride
		if idx < len(sorted) {
			last = sorted[idx]
		}
		out[i] = last
	}
	return out
}
