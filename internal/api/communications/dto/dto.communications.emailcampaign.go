// Package dto - DTO cho domain communications.
package dto

// EmailCampaignCreateInput dữ liệu tạo email campaign mới.
// Các counter tương tác do tracking ghi, không nhận từ client.
type EmailCampaignCreateInput struct {
	Name        string `json:"name" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Body        string `json:"body,omitempty"`
	CampaignID  string `json:"campaignId,omitempty" validate:"omitempty,mongodb"`
	ScheduledAt int64  `json:"scheduledAt,omitempty" validate:"omitempty,gt=0"`
}

// EmailCampaignUpdateInput dữ liệu cập nhật email campaign.
type EmailCampaignUpdateInput struct {
	Name        string `json:"name,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Body        string `json:"body,omitempty"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=draft scheduled cancelled"`
	ScheduledAt int64  `json:"scheduledAt,omitempty" validate:"omitempty,gt=0"`
}

// MarkSentInput dữ liệu cho POST /email-campaigns/mark-sent/:id.
type MarkSentInput struct {
	RecipientCount int `json:"recipientCount" validate:"gte=0"`
	SentCount      int `json:"sentCount" validate:"gte=0"`
}
