// Package sample provides regular sample selection from a sorted run and
// pivot-based partitioning of a sorted run into buckets, the two building
// blocks the PSRS kernel uses to decide which rank should end up with
// which keys.
package sample
