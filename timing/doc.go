// Package timing provides the TimingRecord accumulators the kernels and
// driver use to track where time goes, and a small stopwatch for measuring
// one stage at a time.
package timing
