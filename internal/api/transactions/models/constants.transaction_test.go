// Package models - Test state machine trạng thái giao dịch và các quy tắc đếm.
package models

import "testing"

func TestCanTransition_Legal(t *testing.T) {
	legal := [][2]string{
		{TxStatusPending, TxStatusProcessing},
		{TxStatusPending, TxStatusCompleted},
		{TxStatusPending, TxStatusFailed},
		{TxStatusPending, TxStatusCancelled},
		{TxStatusProcessing, TxStatusCompleted},
		{TxStatusProcessing, TxStatusFailed},
		{TxStatusProcessing, TxStatusCancelled},
		{TxStatusCompleted, TxStatusRefunded},
		{TxStatusCompleted, TxStatusDisputed},
		{TxStatusRefunded, TxStatusDisputed},
	}
	for _, pair := range legal {
		if !CanTransition(pair[0], pair[1]) {
			t.Errorf("chuyển %s → %s phải hợp lệ", pair[0], pair[1])
		}
	}
}

func TestCanTransition_Illegal(t *testing.T) {
	illegal := [][2]string{
		{TxStatusCompleted, TxStatusPending},    // không quay lui
		{TxStatusCompleted, TxStatusProcessing}, // không quay lui
		{TxStatusRefunded, TxStatusCompleted},   // refund không hoàn tác được
		{TxStatusFailed, TxStatusCompleted},     // failed là terminal
		{TxStatusFailed, TxStatusPending},
		{TxStatusCancelled, TxStatusPending}, // cancelled là terminal
		{TxStatusCancelled, TxStatusCompleted},
		{TxStatusDisputed, TxStatusCompleted}, // disputed là terminal
		{TxStatusDisputed, TxStatusRefunded},
		{TxStatusPending, TxStatusRefunded}, // refund chỉ từ completed
		{TxStatusPending, TxStatusDisputed},
	}
	for _, pair := range illegal {
		if CanTransition(pair[0], pair[1]) {
			t.Errorf("chuyển %s → %s phải bị chặn", pair[0], pair[1])
		}
	}
}

func TestCanTransition_SameStatus(t *testing.T) {
	for _, s := range []string{TxStatusPending, TxStatusCompleted, TxStatusFailed} {
		if CanTransition(s, s) {
			t.Errorf("chuyển %s → %s (cùng trạng thái) không phải một transition", s, s)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{
		TxStatusPending, TxStatusProcessing, TxStatusCompleted,
		TxStatusFailed, TxStatusCancelled, TxStatusRefunded, TxStatusDisputed,
	} {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%s) phải là true", s)
		}
	}
	if IsValidStatus("paid") {
		t.Error("IsValidStatus(\"paid\") phải là false")
	}
	if IsValidStatus("") {
		t.Error("IsValidStatus(\"\") phải là false")
	}
}

// Chỉ donation completed mới tính vào giving aggregate của contact.
func TestIsCountableDonation(t *testing.T) {
	cases := []struct {
		txType, status string
		want           bool
	}{
		{TxTypeDonation, TxStatusCompleted, true},
		{TxTypeDonation, TxStatusPending, false},
		{TxTypeDonation, TxStatusRefunded, false},
		{TxTypeEventFee, TxStatusCompleted, false},
		{TxTypeMembership, TxStatusCompleted, false},
		{TxTypeOther, TxStatusCompleted, false},
	}
	for _, tc := range cases {
		got := IsCountableDonation(tc.txType, tc.status)
		if got != tc.want {
			t.Errorf("IsCountableDonation(%s, %s) = %v, muốn %v", tc.txType, tc.status, got, tc.want)
		}
	}
}

// Rollup campaign/pledge tính mọi loại giao dịch completed, không riêng donation.
func TestCountsTowardRollups(t *testing.T) {
	if !CountsTowardRollups(TxStatusCompleted) {
		t.Error("completed phải tính vào rollup")
	}
	for _, s := range []string{
		TxStatusPending, TxStatusProcessing, TxStatusFailed,
		TxStatusCancelled, TxStatusRefunded, TxStatusDisputed,
	} {
		if CountsTowardRollups(s) {
			t.Errorf("%s không được tính vào rollup", s)
		}
	}
}
