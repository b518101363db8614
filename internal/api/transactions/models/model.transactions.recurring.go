package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecurringDonation lưu một lịch đóng góp định kỳ (recurring_donations).
type RecurringDonation struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ContactID  primitive.ObjectID `json:"contactId" bson:"contactId" index:"single:1"`
	CampaignID primitive.ObjectID `json:"campaignId,omitempty" bson:"campaignId,omitempty"`

	// Số tiền mỗi kỳ (USD)
	Amount float64 `json:"amount" bson:"amount"`

	// weekly | monthly | quarterly | semi_annual | annual
	Frequency string `json:"frequency" bson:"frequency"`

	// Unix ms ngày bắt đầu lịch
	StartDate int64 `json:"startDate" bson:"startDate"`

	// Unix ms kỳ thanh toán kế tiếp
	NextPaymentDate int64 `json:"nextPaymentDate" bson:"nextPaymentDate" index:"single:1"`

	// active | paused | cancelled
	Status string `json:"status" bson:"status" index:"single:1"`

	PaymentMethod string `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`

	// ===== Schedule counters =====
	// Do ProcessRecurringPayment cập nhật, không nhận từ client.

	// Số kỳ đã thu
	PaymentCount int `json:"paymentCount" bson:"paymentCount"`

	// Tổng đã thu qua lịch này
	TotalCollected float64 `json:"totalCollected" bson:"totalCollected"`

	// Unix ms kỳ thu gần nhất; 0 = chưa thu kỳ nào
	LastPaymentDate int64 `json:"lastPaymentDate,omitempty" bson:"lastPaymentDate,omitempty"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// NextPaymentTime tính Unix ms của kỳ kế tiếp từ một mốc thời gian theo tần
// suất. Dùng lịch dương (AddDate) nên monthly 31/01 → 03/03 theo chuẩn hóa
// của time.AddDate.
func NextPaymentTime(fromMilli int64, frequency string) (int64, error) {
	from := time.UnixMilli(fromMilli).UTC()
	var next time.Time
	switch frequency {
	case FrequencyWeekly:
		next = from.AddDate(0, 0, 7)
	case FrequencyMonthly:
		next = from.AddDate(0, 1, 0)
	case FrequencyQuarterly:
		next = from.AddDate(0, 3, 0)
	case FrequencySemiAnnual:
		next = from.AddDate(0, 6, 0)
	case FrequencyAnnual:
		next = from.AddDate(1, 0, 0)
	default:
		return 0, fmt.Errorf("tần suất không hợp lệ: %s", frequency)
	}
	return next.UnixMilli(), nil
}
