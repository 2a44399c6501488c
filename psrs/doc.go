// Package psrs implements Parallel Sorting by Regular Sampling: local sort,
// regular sampling, a gather-and-pivot step at rank 0, a broadcast of the
// chosen pivots, partitioning of each rank's sorted block by those pivots,
// an all-to-all-v exchange of the partitions, and a final k-way merge of
// what each rank received.
package psrs
