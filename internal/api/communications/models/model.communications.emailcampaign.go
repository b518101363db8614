// Package models - EmailCampaign thuộc domain communications
// (collection email_campaigns).
package models

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái email campaign
const (
	EmailCampaignStatusDraft     = "draft"
	EmailCampaignStatusScheduled = "scheduled"
	EmailCampaignStatusSent      = "sent"
	EmailCampaignStatusCancelled = "cancelled"
)

// EmailCampaign lưu một chiến dịch email marketing cùng các counter tương tác.
type EmailCampaign struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name    string `json:"name" bson:"name" index:"single:1"`
	Subject string `json:"subject" bson:"subject"`
	Body    string `json:"body,omitempty" bson:"body,omitempty"`

	// draft | scheduled | sent | cancelled
	Status string `json:"status" bson:"status" index:"single:1"`

	// Campaign gây quỹ gắn với email, có thể trống
	CampaignID primitive.ObjectID `json:"campaignId,omitempty" bson:"campaignId,omitempty"`

	ScheduledAt int64 `json:"scheduledAt,omitempty" bson:"scheduledAt,omitempty"`
	SentAt      int64 `json:"sentAt,omitempty" bson:"sentAt,omitempty"`

	// ===== Engagement counters =====
	// Do tracking ghi ($inc), các tỷ lệ suy ra từ đây.

	RecipientCount   int `json:"recipientCount" bson:"recipientCount"`
	SentCount        int `json:"sentCount" bson:"sentCount"`
	OpenCount        int `json:"openCount" bson:"openCount"`
	ClickCount       int `json:"clickCount" bson:"clickCount"`
	BounceCount      int `json:"bounceCount" bson:"bounceCount"`
	UnsubscribeCount int `json:"unsubscribeCount" bson:"unsubscribeCount"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// EngagementRate tính tỷ lệ phần trăm (1 chữ số thập phân), mẫu số 0 → 0.
func EngagementRate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return math.Round(float64(numerator)/float64(denominator)*100*10) / 10
}

// OpenRate tỷ lệ mở trên số email đã gửi.
func (e *EmailCampaign) OpenRate() float64 {
	return EngagementRate(e.OpenCount, e.SentCount)
}

// ClickRate tỷ lệ click trên số email đã gửi.
func (e *EmailCampaign) ClickRate() float64 {
	return EngagementRate(e.ClickCount, e.SentCount)
}

// BounceRate tỷ lệ bounce trên số email đã gửi.
func (e *EmailCampaign) BounceRate() float64 {
	return EngagementRate(e.BounceCount, e.SentCount)
}
