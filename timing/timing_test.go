package timing

import (
	"testing"
	"time"
)

func TestRecordAccumulates(t *testing.T) {
	var r Record
	r.AddTotal(2 * time.Second)
	r.AddLocalSort(500 * time.Millisecond)
	r.AddCommunication(250 * time.Millisecond)
	r.AddMerge(250 * time.Millisecond)
	r.AddTotal(time.Second)

	if r.Total != 3 {
		t.Errorf("Total = %v, want 3", r.Total)
	}
	if r.LocalSort != 0.5 {
		t.Errorf("LocalSort = %v, want 0.5", r.LocalSort)
	}
	if r.Communication != 0.25 {
		t.Errorf("Communication = %v, want 0.25", r.Communication)
	}
	if r.Merge != 0.25 {
		t.Errorf("Merge = %v, want 0.25", r.Merge)
	}
}

func TestTimerStopWithoutStart(t *testing.T) {
	var tm Timer
	if d := tm.Stop(); d != 0 {
		t.Errorf("Stop() without Start() = %v, want 0", d)
	}
}

func TestTimerMeasuresElapsed(t *testing.T) {
	var tm Timer
	tm.Start()
	time.Sleep(5 * time.Millisecond)
	d := tm.Stop()
	if d <= 0 {
		t.Errorf("Stop() = %v, want > 0", d)
	}
}
