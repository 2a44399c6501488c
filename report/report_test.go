package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestAppendCreatesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	if err := Append(path, Row{NumRanks: 4, ProblemSize: 1000, TotalTime: 1.5, LocalSortTime: 0.5, CommunicationTime: 0.3, MergeTime: 0.2}); err != nil {
		t.Fatalf("first Append: %v", err)
	}
	if err := Append(path, Row{NumRanks: 4, ProblemSize: 2000, TotalTime: 2.5, LocalSortTime: 1.0, CommunicationTime: 0.6, MergeTime: 0.4}); err != nil {
		t.Fatalf("second Append: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 data rows", len(rows))
	}
	if rows[0][0] != "num_ranks" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "1000" {
		t.Errorf("first data row = %v", rows[1])
	}
	if rows[2][1] != "2000" {
		t.Errorf("second data row = %v", rows[2])
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
}

func TestComputeBalance(t *testing.T) {
	b := ComputeBalance([]float64{8, 10, 12})
	if b.Mean != 10 {
		t.Errorf("Mean = %v, want 10", b.Mean)
	}
	if b.Min != 8 || b.Max != 12 {
		t.Errorf("Min/Max = %v/%v, want 8/12", b.Min, b.Max)
	}
}

func TestComputeBalanceEmpty(t *testing.T) {
	b := ComputeBalance(nil)
	if b != (Balance{}) {
		t.Errorf("ComputeBalance(nil) = %+v, want zero value", b)
	}
}
