package dto

// CampaignCreateInput dữ liệu tạo campaign mới.
// totalRaised/donorCount là rollup, không nhận từ client.
type CampaignCreateInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	GoalAmount  float64 `json:"goalAmount" validate:"gte=0"`
	StartDate   int64   `json:"startDate,omitempty" validate:"omitempty,gt=0"`
	EndDate     int64   `json:"endDate,omitempty" validate:"omitempty,gt=0"`
}

// CampaignUpdateInput dữ liệu cập nhật campaign (partial update).
type CampaignUpdateInput struct {
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	GoalAmount  float64 `json:"goalAmount,omitempty" validate:"omitempty,gte=0"`
	StartDate   int64   `json:"startDate,omitempty" validate:"omitempty,gt=0"`
	EndDate     int64   `json:"endDate,omitempty" validate:"omitempty,gt=0"`
}
