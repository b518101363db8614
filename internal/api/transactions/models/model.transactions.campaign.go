package models

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign lưu một chiến dịch gây quỹ (campaigns).
type Campaign struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name        string `json:"name" bson:"name" index:"single:1"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// Mục tiêu gây quỹ (USD); 0 = không đặt mục tiêu
	GoalAmount float64 `json:"goalAmount" bson:"goalAmount"`

	StartDate int64 `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate   int64 `json:"endDate,omitempty" bson:"endDate,omitempty"`

	// ===== Rollup fields =====
	// CHỈ được ghi bởi analytics (RollupService), tính lại được từ transactions.

	// Tổng số tiền các giao dịch completed gắn với campaign
	TotalRaised float64 `json:"totalRaised" bson:"totalRaised"`

	// Số contact distinct có ≥1 giao dịch completed gắn với campaign
	DonorCount int `json:"donorCount" bson:"donorCount"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// ProgressPercentage tính phần trăm tiến độ so với mục tiêu:
// min(100, làm tròn 1 chữ số thập phân); goal = 0 → 0.
func ProgressPercentage(totalRaised, goalAmount float64) float64 {
	if goalAmount == 0 {
		return 0
	}
	pct := math.Round(totalRaised/goalAmount*100*10) / 10
	return math.Min(100, pct)
}

// Progress trả về tiến độ của campaign theo rollup hiện tại.
func (c *Campaign) Progress() float64 {
	return ProgressPercentage(c.TotalRaised, c.GoalAmount)
}
