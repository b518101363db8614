package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pledge lưu một cam kết đóng góp của contact cho campaign (pledges).
type Pledge struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ContactID  primitive.ObjectID `json:"contactId" bson:"contactId" index:"single:1"`
	CampaignID primitive.ObjectID `json:"campaignId" bson:"campaignId" index:"single:1"`

	// Tổng số tiền cam kết (USD)
	TotalAmount float64 `json:"totalAmount" bson:"totalAmount"`

	// Unix ms ngày cam kết; chỉ giao dịch từ ngày này trở đi mới tính vào amountPaid
	PledgeDate int64 `json:"pledgeDate" bson:"pledgeDate"`

	// Unix ms hạn hoàn thành; 0 = không đặt hạn
	DueDate int64 `json:"dueDate,omitempty" bson:"dueDate,omitempty"`

	Notes string `json:"notes,omitempty" bson:"notes,omitempty"`

	// ===== Rollup fields =====
	// amountPaid, status, fulfillmentDate do analytics (RollupService) ghi.
	// fulfilled là ratchet một chiều: refund về sau KHÔNG đưa pledge quay lại
	// active/overdue, fulfillmentDate chỉ được set một lần.

	// Tổng các giao dịch completed của contact+campaign từ pledgeDate trở đi
	AmountPaid float64 `json:"amountPaid" bson:"amountPaid"`

	// active | fulfilled | overdue | cancelled
	Status string `json:"status" bson:"status" index:"single:1"`

	// Unix ms thời điểm được đánh dấu fulfilled; 0 = chưa fulfilled
	FulfillmentDate int64 `json:"fulfillmentDate,omitempty" bson:"fulfillmentDate,omitempty"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// DerivePledgeStatus áp dụng quy tắc suy trạng thái pledge từ rollup:
//   - amountPaid ≥ totalAmount → fulfilled (ưu tiên cao nhất, bất kể dueDate)
//   - đang active, có dueDate và now đã quá hạn → overdue
//   - còn lại giữ nguyên (không bao giờ hạ fulfilled/cancelled)
//
// Trả về status mới và fulfillmentDate mới (giữ giá trị cũ nếu đã set).
func DerivePledgeStatus(current Pledge, amountPaid float64, nowMilli int64) (string, int64) {
	if current.Status == PledgeStatusFulfilled {
		return PledgeStatusFulfilled, current.FulfillmentDate
	}
	if current.Status == PledgeStatusCancelled {
		return PledgeStatusCancelled, current.FulfillmentDate
	}
	if current.TotalAmount > 0 && amountPaid >= current.TotalAmount {
		fulfillmentDate := current.FulfillmentDate
		if fulfillmentDate == 0 {
			fulfillmentDate = nowMilli
		}
		return PledgeStatusFulfilled, fulfillmentDate
	}
	if current.Status == PledgeStatusActive && current.DueDate > 0 && nowMilli > current.DueDate {
		return PledgeStatusOverdue, current.FulfillmentDate
	}
	return current.Status, current.FulfillmentDate
}
