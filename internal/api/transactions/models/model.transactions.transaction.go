// Package models - Các model thuộc domain transactions (collection transactions,
// campaigns, pledges, recurring_donations, tax_receipts).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction lưu một giao dịch tài chính (transactions).
// Giao dịch đã completed là bất biến, trừ chuyển trạng thái theo state machine
// (xem CanTransition).
type Transaction struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Contact sở hữu giao dịch
	ContactID primitive.ObjectID `json:"contactId" bson:"contactId" index:"single:1"`

	// Campaign gắn với giao dịch, có thể trống
	CampaignID primitive.ObjectID `json:"campaignId,omitempty" bson:"campaignId,omitempty" index:"single:1"`

	// Số tiền (USD), không âm
	Amount float64 `json:"amount" bson:"amount"`

	// donation | event_fee | membership | other
	Type string `json:"type" bson:"type"`

	// pending | processing | completed | failed | cancelled | refunded | disputed
	Status string `json:"status" bson:"status" index:"single:1"`

	// Unix ms thời điểm giao dịch
	TransactionDate int64 `json:"transactionDate" bson:"transactionDate" index:"single:-1"`

	PaymentMethod string `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	Notes         string `json:"notes,omitempty" bson:"notes,omitempty"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// TransactionChange mô tả một mutation trên transaction, dùng để báo cho
// trigger coordinator. OldStatus rỗng khi create, NewStatus rỗng khi delete.
type TransactionChange struct {
	TransactionID primitive.ObjectID
	ContactID     primitive.ObjectID
	CampaignID    primitive.ObjectID // zero nếu không gắn campaign
	Type          string
	OldStatus     string
	NewStatus     string
}

// CrossesCountedBoundary: mutation có đi qua ranh giới "được tính vào
// aggregate" không (vào hoặc ra khỏi completed). Chỉ những mutation này mới
// cần kích hoạt tính lại.
func (ch TransactionChange) CrossesCountedBoundary() bool {
	return CountsTowardRollups(ch.OldStatus) != CountsTowardRollups(ch.NewStatus)
}
