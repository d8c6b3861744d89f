package models

import "testing"

func TestWorkload(t *testing.T) {
	cases := []struct {
		hours    float64
		workload Workload
		progress float64
	}{
		{hours: 48, workload: WorkloadFull, progress: 100},
		{hours: 40, workload: WorkloadFull, progress: 100},
		{hours: 30, workload: WorkloadPartial, progress: 75},
		{hours: 10, workload: WorkloadLow, progress: 25},
		{hours: 0, workload: WorkloadLow, progress: 0},
		{hours: -5, workload: WorkloadLow, progress: 0},
	}
	for _, tc := range cases {
		m := Member{AssignedHours: tc.hours}
		if got := m.Workload(); got != tc.workload {
			t.Errorf("Workload(%v) = %s, want %s", tc.hours, got, tc.workload)
		}
		if got := m.ProgressPercent(); got != tc.progress {
			t.Errorf("ProgressPercent(%v) = %v, want %v", tc.hours, got, tc.progress)
		}
	}
}
