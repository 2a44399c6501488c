// Package bitonic implements the pairwise compare-exchange bitonic merge
// network: each rank locally sorts its block, then for stage s in
// [0, ceil(log2 P)) and step t in [s, 0], exchanges its full block with a
// partner computed by XOR and keeps either the low or high half of the
// merged pair, depending on direction and rank ordering. The result is a
// correct global sort when P is a power of two; for other P the kernel
// proceeds best-effort and logs a warning from rank 0, leaving correctness
// to be caught by verification.
package bitonic
