// Package models - Test suy trạng thái pledge từ rollup.
package models

import "testing"

func TestDerivePledgeStatus_Fulfilled(t *testing.T) {
	now := int64(1_700_000_000_000)
	p := Pledge{TotalAmount: 500, Status: PledgeStatusActive}

	status, fulfillmentDate := DerivePledgeStatus(p, 500, now)
	if status != PledgeStatusFulfilled {
		t.Errorf("amountPaid = totalAmount phải cho fulfilled, được %s", status)
	}
	if fulfillmentDate != now {
		t.Errorf("fulfillmentDate phải được set = now, được %d", fulfillmentDate)
	}

	// Vượt quá cũng fulfilled
	status, _ = DerivePledgeStatus(p, 600, now)
	if status != PledgeStatusFulfilled {
		t.Errorf("amountPaid > totalAmount phải cho fulfilled, được %s", status)
	}
}

// fulfilled là ratchet một chiều: refund làm amountPaid tụt xuống cũng không
// đưa pledge quay lại active, fulfillmentDate giữ nguyên.
func TestDerivePledgeStatus_FulfilledIsSticky(t *testing.T) {
	now := int64(1_700_000_000_000)
	p := Pledge{
		TotalAmount:     500,
		Status:          PledgeStatusFulfilled,
		FulfillmentDate: now - 1000,
	}

	status, fulfillmentDate := DerivePledgeStatus(p, 100, now)
	if status != PledgeStatusFulfilled {
		t.Errorf("fulfilled phải giữ nguyên sau refund, được %s", status)
	}
	if fulfillmentDate != now-1000 {
		t.Errorf("fulfillmentDate không được ghi đè, được %d", fulfillmentDate)
	}
}

func TestDerivePledgeStatus_CancelledIsSticky(t *testing.T) {
	now := int64(1_700_000_000_000)
	p := Pledge{TotalAmount: 500, Status: PledgeStatusCancelled}

	// Đã cancelled thì kể cả trả đủ tiền cũng không đổi
	status, _ := DerivePledgeStatus(p, 500, now)
	if status != PledgeStatusCancelled {
		t.Errorf("cancelled phải giữ nguyên, được %s", status)
	}
}

func TestDerivePledgeStatus_Overdue(t *testing.T) {
	now := int64(1_700_000_000_000)
	p := Pledge{
		TotalAmount: 500,
		Status:      PledgeStatusActive,
		DueDate:     now - 1000,
	}

	status, _ := DerivePledgeStatus(p, 100, now)
	if status != PledgeStatusOverdue {
		t.Errorf("active quá hạn phải cho overdue, được %s", status)
	}

	// Chưa quá hạn thì giữ active
	p.DueDate = now + 1000
	status, _ = DerivePledgeStatus(p, 100, now)
	if status != PledgeStatusActive {
		t.Errorf("active chưa quá hạn phải giữ active, được %s", status)
	}

	// Không đặt dueDate thì không bao giờ overdue
	p.DueDate = 0
	status, _ = DerivePledgeStatus(p, 100, now)
	if status != PledgeStatusActive {
		t.Errorf("active không dueDate phải giữ active, được %s", status)
	}
}

// Fulfilled ưu tiên hơn overdue: trả đủ sau hạn vẫn là fulfilled.
func TestDerivePledgeStatus_FulfilledBeatsOverdue(t *testing.T) {
	now := int64(1_700_000_000_000)
	p := Pledge{
		TotalAmount: 500,
		Status:      PledgeStatusActive,
		DueDate:     now - 1000,
	}

	status, _ := DerivePledgeStatus(p, 500, now)
	if status != PledgeStatusFulfilled {
		t.Errorf("trả đủ sau hạn phải là fulfilled, được %s", status)
	}

	// Overdue rồi trả đủ cũng lên fulfilled
	p.Status = PledgeStatusOverdue
	status, _ = DerivePledgeStatus(p, 500, now)
	if status != PledgeStatusFulfilled {
		t.Errorf("overdue trả đủ phải lên fulfilled, được %s", status)
	}
}

// Pledge với totalAmount = 0 không bao giờ tự fulfilled (tránh fulfilled ngay
// khi tạo với amountPaid = 0).
func TestDerivePledgeStatus_ZeroTotalAmount(t *testing.T) {
	now := int64(1_700_000_000_000)
	p := Pledge{TotalAmount: 0, Status: PledgeStatusActive}

	status, _ := DerivePledgeStatus(p, 0, now)
	if status != PledgeStatusActive {
		t.Errorf("totalAmount=0, amountPaid=0 phải giữ active, được %s", status)
	}
}
