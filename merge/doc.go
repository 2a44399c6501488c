// Package merge provides the local merge utilities shared by both sorting
// kernels: two-way merges that keep the low or high half of a combined
// sorted pair (the Bitonic compare-exchange step), and a k-way merge of
// sorted runs backed by a minimum-heap (the final stage of PSRS).
package merge
