package dto

// PledgeCreateInput dữ liệu tạo pledge mới. amountPaid/status/fulfillmentDate
// do analytics suy ra, không nhận từ client.
type PledgeCreateInput struct {
	ContactID   string  `json:"contactId" validate:"required,mongodb"`
	CampaignID  string  `json:"campaignId" validate:"required,mongodb"`
	TotalAmount float64 `json:"totalAmount" validate:"required,gt=0"`
	PledgeDate  int64   `json:"pledgeDate,omitempty" validate:"omitempty,gt=0"`
	DueDate     int64   `json:"dueDate,omitempty" validate:"omitempty,gt=0"`
	Notes       string  `json:"notes,omitempty"`
}

// PledgeUpdateInput dữ liệu cập nhật pledge. Client chỉ được hủy (cancelled),
// fulfilled/overdue do rollup suy ra.
type PledgeUpdateInput struct {
	DueDate int64  `json:"dueDate,omitempty" validate:"omitempty,gt=0"`
	Notes   string `json:"notes,omitempty"`
	Status  string `json:"status,omitempty" validate:"omitempty,oneof=cancelled"`
}
