// Package eventsvc - Service cho domain events.
package eventsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "arts_crm/internal/api/base/service"
	eventmodels "arts_crm/internal/api/events/models"
	"arts_crm/internal/common"
	"arts_crm/internal/global"
)

// EventService xử lý logic nghiệp vụ sự kiện và rollup từ event_attendances.
type EventService struct {
	*basesvc.BaseServiceMongoImpl[eventmodels.Event]
	attendances *mongo.Collection
}

// NewEventService tạo EventService mới.
func NewEventService() (*EventService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Events)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Events, common.ErrNotFound)
	}
	attColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.EventAttendances)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.EventAttendances, common.ErrNotFound)
	}
	return &EventService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[eventmodels.Event](coll),
		attendances:          attColl,
	}, nil
}

// attendanceSummary là kết quả group rollup sự kiện.
type attendanceSummary struct {
	Registered int     `bson:"registered"`
	Attended   int     `bson:"attended"`
	Revenue    float64 `bson:"revenue"`
}

// RecalculateEventRollups quét các đăng ký còn hiệu lực (không cancelled) và
// persist registeredCount / attendedCount / revenue. Idempotent, quét dữ liệu
// sống.
func (s *EventService) RecalculateEventRollups(ctx context.Context, eventID primitive.ObjectID) error {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"eventId": eventID,
			"status":  bson.M{"$ne": eventmodels.AttendanceStatusCancelled},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":        nil,
			"registered": bson.M{"$sum": 1},
			"attended": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", eventmodels.AttendanceStatusAttended}}, 1, 0,
			}}},
			"revenue": bson.M{"$sum": "$amountPaid"},
		}}},
	}

	cursor, err := s.attendances.Aggregate(ctx, pipeline)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var summary attendanceSummary
	if cursor.Next(ctx) {
		if err := cursor.Decode(&summary); err != nil {
			return common.ConvertMongoError(err)
		}
	}
	if err := cursor.Err(); err != nil {
		return common.ConvertMongoError(err)
	}

	_, err = s.UpdateById(ctx, eventID, &basesvc.UpdateData{Set: bson.M{
		"registeredCount": summary.Registered,
		"attendedCount":   summary.Attended,
		"revenue":         summary.Revenue,
	}})
	return err
}

// EventROI là bộ số liệu hiệu quả của một sự kiện.
type EventROI struct {
	EventID         primitive.ObjectID `json:"eventId"`
	Name            string             `json:"name"`
	RegisteredCount int                `json:"registeredCount"`
	AttendedCount   int                `json:"attendedCount"`
	AttendanceRate  float64            `json:"attendanceRate"`
	Revenue         float64            `json:"revenue"`
	Expenses        float64            `json:"expenses"`
	NetRevenue      float64            `json:"netRevenue"`
	ROIPercentage   float64            `json:"roiPercentage"`
}

// GetROI tính bộ số liệu hiệu quả của sự kiện từ rollup hiện tại.
func (s *EventService) GetROI(ctx context.Context, eventID primitive.ObjectID) (EventROI, error) {
	event, err := s.FindOneById(ctx, eventID)
	if err != nil {
		return EventROI{}, err
	}
	return EventROI{
		EventID:         event.ID,
		Name:            event.Name,
		RegisteredCount: event.RegisteredCount,
		AttendedCount:   event.AttendedCount,
		AttendanceRate:  eventmodels.AttendanceRate(event.AttendedCount, event.RegisteredCount),
		Revenue:         event.Revenue,
		Expenses:        event.Expenses,
		NetRevenue:      eventmodels.NetRevenue(event.Revenue, event.Expenses),
		ROIPercentage:   eventmodels.ROIPercentage(event.Revenue, event.Expenses),
	}, nil
}
