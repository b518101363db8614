// Package dto - DTO cho domain transactions.
package dto

// TransactionCreateInput dữ liệu tạo giao dịch mới.
// Không cho tạo thẳng ở trạng thái cuối (refunded/disputed/...) — các trạng
// thái đó chỉ đạt được qua update-status.
type TransactionCreateInput struct {
	ContactID       string  `json:"contactId" validate:"required,mongodb"`
	CampaignID      string  `json:"campaignId,omitempty" validate:"omitempty,mongodb"`
	Amount          float64 `json:"amount" validate:"gte=0"`
	Type            string  `json:"type" validate:"required,oneof=donation event_fee membership other"`
	Status          string  `json:"status,omitempty" validate:"omitempty,oneof=pending processing completed"`
	TransactionDate int64   `json:"transactionDate,omitempty" validate:"omitempty,gt=0"`
	PaymentMethod   string  `json:"paymentMethod,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

// TransactionUpdateInput dữ liệu cập nhật giao dịch. Giao dịch là bất biến
// ngoài metadata — status chỉ đổi qua update-status, amount/type/contact không
// bao giờ đổi.
type TransactionUpdateInput struct {
	PaymentMethod string `json:"paymentMethod,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// TransactionStatusInput dữ liệu cho PUT /transactions/update-status/:id.
type TransactionStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed failed cancelled refunded disputed"`
}
