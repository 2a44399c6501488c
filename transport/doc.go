// Package transport provides the Collective Transport Adapter: a thin
// typed facade over a message-passing substrate, offering the
// collectives the sorting kernels need (pairwise exchange, barrier,
// broadcast, gather, all-to-all with variable counts, reductions).
//
// The kernels never name a specific substrate; Transport is the only
// contact point with whatever carries bytes between ranks. This package
// ships one implementation, an in-process, goroutine-per-rank substrate
// built on typed channels, suitable for both testing and for running an
// SPMD program within a single OS process.
package transport
