package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái tham dự
const (
	AttendanceStatusRegistered = "registered"
	AttendanceStatusAttended   = "attended"
	AttendanceStatusNoShow     = "no_show"
	AttendanceStatusCancelled  = "cancelled"
)

// EventAttendance lưu một đăng ký tham dự sự kiện (event_attendances).
// Mỗi contact chỉ có một đăng ký cho một sự kiện.
type EventAttendance struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	EventID   primitive.ObjectID `json:"eventId" bson:"eventId" index:"compound:event_contact,order:1"`
	ContactID primitive.ObjectID `json:"contactId" bson:"contactId" index:"compound:event_contact,order:1"`

	// registered | attended | no_show | cancelled
	Status string `json:"status" bson:"status" index:"single:1"`

	// Số tiền đã trả cho đăng ký (vé, phí)
	AmountPaid float64 `json:"amountPaid" bson:"amountPaid"`

	// Unix ms thời điểm đăng ký / check-in
	RegisteredAt int64 `json:"registeredAt" bson:"registeredAt"`
	CheckedInAt  int64 `json:"checkedInAt,omitempty" bson:"checkedInAt,omitempty"`

	Notes string `json:"notes,omitempty" bson:"notes,omitempty"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// CountsTowardEventRollups: đăng ký còn hiệu lực, tính vào
// registeredCount/revenue của sự kiện.
func (a *EventAttendance) CountsTowardEventRollups() bool {
	return a.Status != AttendanceStatusCancelled
}
