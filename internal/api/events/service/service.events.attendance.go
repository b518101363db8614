package eventsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "arts_crm/internal/api/base/service"
	eventmodels "arts_crm/internal/api/events/models"
	"arts_crm/internal/common"
	"arts_crm/internal/global"
	"arts_crm/internal/utility"
)

// AttendanceService quản lý đăng ký tham dự. Mọi mutation đều rollup lại sự
// kiện ngay sau khi persist.
type AttendanceService struct {
	*basesvc.BaseServiceMongoImpl[eventmodels.EventAttendance]
	eventService *EventService
}

// NewAttendanceService tạo AttendanceService mới.
func NewAttendanceService(eventService *EventService) (*AttendanceService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.EventAttendances)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.EventAttendances, common.ErrNotFound)
	}
	return &AttendanceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[eventmodels.EventAttendance](coll),
		eventService:         eventService,
	}, nil
}

// Register đăng ký một contact vào sự kiện. Một contact chỉ đăng ký một lần;
// amountPaid mặc định bằng giá vé của sự kiện.
func (s *AttendanceService) Register(ctx context.Context, att eventmodels.EventAttendance) (eventmodels.EventAttendance, error) {
	event, err := s.eventService.FindOneById(ctx, att.EventID)
	if err != nil {
		return att, fmt.Errorf("tìm sự kiện %s: %w", att.EventID.Hex(), err)
	}

	exists, err := s.DocumentExists(ctx, bson.M{
		"eventId":   att.EventID,
		"contactId": att.ContactID,
		"status":    bson.M{"$ne": eventmodels.AttendanceStatusCancelled},
	})
	if err != nil {
		return att, err
	}
	if exists {
		return att, common.NewError(common.ErrCodeBusinessOperation,
			"Contact đã đăng ký sự kiện này",
			common.StatusConflict, nil)
	}

	if event.Capacity > 0 && event.RegisteredCount >= event.Capacity {
		return att, common.NewError(common.ErrCodeBusinessOperation,
			fmt.Sprintf("Sự kiện đã đủ %d chỗ", event.Capacity),
			common.StatusConflict, nil)
	}

	att.Status = eventmodels.AttendanceStatusRegistered
	att.RegisteredAt = utility.CurrentTimeInMilli()
	att.CheckedInAt = 0
	if att.AmountPaid == 0 {
		att.AmountPaid = event.TicketPrice
	}

	created, err := s.InsertOne(ctx, att)
	if err != nil {
		return created, err
	}
	if err := s.eventService.RecalculateEventRollups(ctx, att.EventID); err != nil {
		return created, err
	}
	return created, nil
}

// setStatus đổi trạng thái đăng ký rồi rollup lại sự kiện.
func (s *AttendanceService) setStatus(ctx context.Context, id primitive.ObjectID, set bson.M) (eventmodels.EventAttendance, error) {
	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return updated, err
	}
	if err := s.eventService.RecalculateEventRollups(ctx, updated.EventID); err != nil {
		return updated, err
	}
	return updated, nil
}

// CheckIn ghi nhận tham dự thực tế.
func (s *AttendanceService) CheckIn(ctx context.Context, id primitive.ObjectID) (eventmodels.EventAttendance, error) {
	att, err := s.FindOneById(ctx, id)
	if err != nil {
		return att, err
	}
	if att.Status == eventmodels.AttendanceStatusCancelled {
		return att, common.NewError(common.ErrCodeBusinessState,
			"Đăng ký đã hủy, không thể check-in",
			common.StatusBadRequest, nil)
	}
	return s.setStatus(ctx, id, bson.M{
		"status":      eventmodels.AttendanceStatusAttended,
		"checkedInAt": utility.CurrentTimeInMilli(),
	})
}

// Cancel hủy đăng ký, loại khỏi rollup của sự kiện.
func (s *AttendanceService) Cancel(ctx context.Context, id primitive.ObjectID) (eventmodels.EventAttendance, error) {
	return s.setStatus(ctx, id, bson.M{
		"status": eventmodels.AttendanceStatusCancelled,
	})
}

// MarkNoShow đánh dấu vắng mặt sau sự kiện.
func (s *AttendanceService) MarkNoShow(ctx context.Context, id primitive.ObjectID) (eventmodels.EventAttendance, error) {
	return s.setStatus(ctx, id, bson.M{
		"status": eventmodels.AttendanceStatusNoShow,
	})
}
