// Package models - Test tính kỳ thu kế tiếp của recurring donation.
package models

import (
	"testing"
	"time"
)

func TestNextPaymentTime(t *testing.T) {
	from := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	fromMilli := from.UnixMilli()

	cases := []struct {
		frequency string
		want      time.Time
	}{
		{FrequencyWeekly, time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC)},
		{FrequencyMonthly, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)},
		{FrequencyQuarterly, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)},
		{FrequencySemiAnnual, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)},
		{FrequencyAnnual, time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.frequency, func(t *testing.T) {
			got, err := NextPaymentTime(fromMilli, tc.frequency)
			if err != nil {
				t.Fatalf("NextPaymentTime(%s) lỗi: %v", tc.frequency, err)
			}
			if got != tc.want.UnixMilli() {
				t.Errorf("NextPaymentTime(%s) = %s, muốn %s",
					tc.frequency, time.UnixMilli(got).UTC(), tc.want)
			}
		})
	}
}

// AddDate chuẩn hóa ngày không tồn tại: monthly từ 31/01 rơi vào 02-03/03.
func TestNextPaymentTime_MonthEndNormalization(t *testing.T) {
	from := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	got, err := NextPaymentTime(from.UnixMilli(), FrequencyMonthly)
	if err != nil {
		t.Fatalf("NextPaymentTime lỗi: %v", err)
	}
	want := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC) // 2026 không nhuận
	if got != want.UnixMilli() {
		t.Errorf("NextPaymentTime(31/01 monthly) = %s, muốn %s", time.UnixMilli(got).UTC(), want)
	}
}

func TestNextPaymentTime_InvalidFrequency(t *testing.T) {
	if _, err := NextPaymentTime(0, "biweekly"); err == nil {
		t.Error("tần suất không hợp lệ phải trả về lỗi")
	}
	if _, err := NextPaymentTime(0, ""); err == nil {
		t.Error("tần suất rỗng phải trả về lỗi")
	}
}
