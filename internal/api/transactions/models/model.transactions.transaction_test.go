// Package models - Test ranh giới "được tính" của mutation giao dịch.
package models

import "testing"

func TestCrossesCountedBoundary(t *testing.T) {
	cases := []struct {
		name     string
		old, new string
		want     bool
	}{
		{"create đã completed", "", TxStatusCompleted, true},
		{"create pending", "", TxStatusPending, false},
		{"pending → completed", TxStatusPending, TxStatusCompleted, true},
		{"completed → refunded", TxStatusCompleted, TxStatusRefunded, true},
		{"completed → disputed", TxStatusCompleted, TxStatusDisputed, true},
		{"pending → processing", TxStatusPending, TxStatusProcessing, false},
		{"pending → failed", TxStatusPending, TxStatusFailed, false},
		{"refunded → disputed", TxStatusRefunded, TxStatusDisputed, false},
		{"delete giao dịch completed", TxStatusCompleted, "", true},
		{"delete giao dịch pending", TxStatusPending, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ch := TransactionChange{OldStatus: tc.old, NewStatus: tc.new}
			if got := ch.CrossesCountedBoundary(); got != tc.want {
				t.Errorf("CrossesCountedBoundary(%q → %q) = %v, muốn %v", tc.old, tc.new, got, tc.want)
			}
		})
	}
}
