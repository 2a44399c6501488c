// Package parsort implements two distributed sorting kernels, Parallel
// Sorting by Regular Sampling (PSRS) and Bitonic Sort, over a group of
// cooperating ranks connected by a message-passing substrate. Given N keys
// distributed across P ranks, each kernel produces a globally sorted
// sequence in which rank r holds a contiguous, non-decreasing block whose
// maximum does not exceed the minimum of rank r+1's block.
//
// parsort provides the following subpackages:
//
// parsort/transport provides the Collective Transport Adapter: a thin
// typed facade over the message-passing substrate offering the
// collectives the kernels need (pairwise exchange, barrier, broadcast,
// gather, all-to-all-v, reductions).
//
// parsort/merge provides two-way merges that keep the low or high half of
// a combined sorted pair, and a k-way merge of sorted runs backed by a
// minimum-heap.
//
// parsort/sample provides regular sample selection and pivot-based
// partitioning of a sorted run.
//
// parsort/psrs implements the PSRS kernel.
//
// parsort/bitonic implements the Bitonic kernel.
//
// parsort/verify checks local monotonicity and cross-rank boundary order.
//
// parsort/timing provides the TimingRecord accumulators and a stopwatch
// used by the kernels and the driver.
//
// parsort/gendata and parsort/report are the benchmark driver's external
// collaborators: pseudo-random data generation and CSV result emission.
//
// parsort/cmd/parsortbench is the command-line driver.
package parsort
