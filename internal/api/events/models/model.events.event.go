// Package models - Event và EventAttendance thuộc domain events
// (collection events, event_attendances).
package models

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event lưu một sự kiện của tổ chức (events).
type Event struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name        string `json:"name" bson:"name" index:"single:1"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Location    string `json:"location,omitempty" bson:"location,omitempty"`

	// Unix ms thời điểm diễn ra
	EventDate int64 `json:"eventDate" bson:"eventDate" index:"single:-1"`

	// Sức chứa; 0 = không giới hạn
	Capacity int `json:"capacity,omitempty" bson:"capacity,omitempty"`

	// Giá vé (USD)
	TicketPrice float64 `json:"ticketPrice" bson:"ticketPrice"`

	// Tổng chi phí tổ chức (USD)
	Expenses float64 `json:"expenses" bson:"expenses"`

	// Campaign gây quỹ gắn với sự kiện, có thể trống
	CampaignID primitive.ObjectID `json:"campaignId,omitempty" bson:"campaignId,omitempty"`

	// ===== Rollup fields =====
	// Do EventService tính lại từ event_attendances.

	// Số đăng ký còn hiệu lực (không tính cancelled)
	RegisteredCount int `json:"registeredCount" bson:"registeredCount"`

	// Số đã check-in
	AttendedCount int `json:"attendedCount" bson:"attendedCount"`

	// Tổng doanh thu từ các đăng ký còn hiệu lực
	Revenue float64 `json:"revenue" bson:"revenue"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// AttendanceRate tỷ lệ tham dự trên số đăng ký (%, 1 chữ số thập phân);
// chưa có đăng ký nào → 0.
func AttendanceRate(attended, registered int) float64 {
	if registered == 0 {
		return 0
	}
	return math.Round(float64(attended)/float64(registered)*100*10) / 10
}

// NetRevenue doanh thu ròng của sự kiện.
func NetRevenue(revenue, expenses float64) float64 {
	return revenue - expenses
}

// ROIPercentage tỷ suất hoàn vốn (%, 1 chữ số thập phân); expenses = 0 → 0.
func ROIPercentage(revenue, expenses float64) float64 {
	if expenses == 0 {
		return 0
	}
	return math.Round(NetRevenue(revenue, expenses)/expenses*100*10) / 10
}
