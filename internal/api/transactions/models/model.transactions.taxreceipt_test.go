// Package models - Test số biên nhận thuế và số tiền khấu trừ.
package models

import "testing"

func TestFormatReceiptNumber(t *testing.T) {
	cases := []struct {
		year, seq int
		want      string
	}{
		{2026, 1, "2026-000001"},
		{2026, 42, "2026-000042"},
		{2026, 999999, "2026-999999"},
		{2027, 1000000, "2027-1000000"}, // vượt 6 chữ số vẫn không cắt
	}
	for _, tc := range cases {
		got := FormatReceiptNumber(tc.year, tc.seq)
		if got != tc.want {
			t.Errorf("FormatReceiptNumber(%d, %d) = %s, muốn %s", tc.year, tc.seq, got, tc.want)
		}
	}
}

func TestDeductibleAmount(t *testing.T) {
	cases := []struct {
		name               string
		amount, quidProQuo float64
		want               float64
	}{
		{"không có quid pro quo", 100, 0, 100},
		{"trừ giá trị nhận lại", 100, 30, 70},
		{"quid pro quo bằng toàn bộ", 100, 100, 0},
		{"quid pro quo vượt amount → floor 0, không âm", 100, 150, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeductibleAmount(tc.amount, tc.quidProQuo)
			if got != tc.want {
				t.Errorf("DeductibleAmount(%.0f, %.0f) = %.0f, muốn %.0f",
					tc.amount, tc.quidProQuo, got, tc.want)
			}
		})
	}
}
