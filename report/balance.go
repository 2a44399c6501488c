package report

import "gonum.org/v1/gonum/stat"

// Balance summarizes how evenly keys ended up distributed across ranks
// after a kernel runs. It is a log-only diagnostic (see the original
// driver's print_statistics): the CSV schema has no per-rank-size column.
type Balance struct {
	Mean   float64
	StdDev float64
	Max    float64
	Min    float64
}

// ComputeBalance summarizes perRankSizes, the local block length reported
// by every rank after a kernel call.
func ComputeBalance(perRankSizes []float64) Balance {
	if len(perRankSizes) == 0 {
		return Balance{}
	}
	mean, stddev := stat.MeanStdDev(perRankSizes, nil)
	min, max := perRankSizes[0], perRankSizes[0]
	for _, v := range perRankSizes[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return Balance{Mean: mean, StdDev: stddev, Max: max, Min: min}
}
