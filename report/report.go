package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// header is written once, the first time the target CSV file is created.
var header = []string{
	"num_ranks", "problem_size", "total_time",
	"local_sort_time", "communication_time", "merge_time",
}

// Row is one line of the CSV result log: num_ranks and problem_size as
// given on the command line, total_time as the max across ranks, and the
// other three timings as arithmetic means across ranks, all in seconds.
type Row struct {
	NumRanks          int
	ProblemSize       int64
	TotalTime         float64
	LocalSortTime     float64
	CommunicationTime float64
	MergeTime         float64
}

// Mean returns the arithmetic mean of per-rank values, as used for the
// local_sort_time, communication_time, and merge_time columns.
func Mean(perRank []float64) float64 {
	if len(perRank) == 0 {
		return 0
	}
	return stat.Mean(perRank, nil)
}

// Append writes row to path, creating the file and its header if path does
// not already exist.
func Append(path string, row Row) error {
	_, statErr := os.Stat(path)
	needsHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "report: open %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needsHeader {
		if err := w.Write(header); err != nil {
			return errors.Wrapf(err, "report: write header to %s", path)
		}
	}
	record := []string{
		strconv.Itoa(row.NumRanks),
		strconv.FormatInt(row.ProblemSize, 10),
		strconv.FormatFloat(row.TotalTime, 'f', -1, 64),
		strconv.FormatFloat(row.LocalSortTime, 'f', -1, 64),
		strconv.FormatFloat(row.CommunicationTime, 'f', -1, 64),
		strconv.FormatFloat(row.MergeTime, 'f', -1, 64),
	}
	if err := w.Write(record); err != nil {
		return errors.Wrapf(err, "report: write row to %s", path)
	}
	w.Flush()
	return w.Error()
}
