// Package models - Test các chỉ số derived của event.
package models

import "testing"

func TestAttendanceRate(t *testing.T) {
	if got := AttendanceRate(0, 0); got != 0 {
		t.Errorf("registered=0 phải cho 0, không chia cho 0; được %.1f", got)
	}
	if got := AttendanceRate(75, 100); got != 75 {
		t.Errorf("AttendanceRate(75, 100) = %.1f, muốn 75", got)
	}
	if got := AttendanceRate(1, 3); got != 33.3 {
		t.Errorf("AttendanceRate(1, 3) = %.1f, muốn 33.3", got)
	}
}

func TestNetRevenue(t *testing.T) {
	if got := NetRevenue(5000, 1500); got != 3500 {
		t.Errorf("NetRevenue(5000, 1500) = %.0f, muốn 3500", got)
	}
	// Lỗ thì âm, không floor
	if got := NetRevenue(1000, 1500); got != -500 {
		t.Errorf("NetRevenue(1000, 1500) = %.0f, muốn -500", got)
	}
}

func TestROIPercentage(t *testing.T) {
	if got := ROIPercentage(5000, 0); got != 0 {
		t.Errorf("expenses=0 phải cho 0, không chia cho 0; được %.1f", got)
	}
	// (5000-1500)/1500 * 100 = 233.3
	if got := ROIPercentage(5000, 1500); got != 233.3 {
		t.Errorf("ROIPercentage(5000, 1500) = %.1f, muốn 233.3", got)
	}
	// Lỗ: ROI âm
	if got := ROIPercentage(1000, 2000); got != -50 {
		t.Errorf("ROIPercentage(1000, 2000) = %.1f, muốn -50", got)
	}
}

func TestCountsTowardEventRollups(t *testing.T) {
	for _, status := range []string{AttendanceStatusRegistered, AttendanceStatusAttended, AttendanceStatusNoShow} {
		a := EventAttendance{Status: status}
		if !a.CountsTowardEventRollups() {
			t.Errorf("%s phải tính vào rollup sự kiện", status)
		}
	}
	cancelled := EventAttendance{Status: AttendanceStatusCancelled}
	if cancelled.CountsTowardEventRollups() {
		t.Error("cancelled không được tính vào rollup sự kiện")
	}
}
