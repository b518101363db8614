// Package contactsvc - Service contact (collection contacts).
package contactsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "arts_crm/internal/api/base/service"
	contactmodels "arts_crm/internal/api/contacts/models"
	"arts_crm/internal/common"
	"arts_crm/internal/global"
	"arts_crm/internal/utility"
)

// ContactService xử lý logic nghiệp vụ contact.
type ContactService struct {
	*basesvc.BaseServiceMongoImpl[contactmodels.Contact]
}

// NewContactService tạo ContactService mới.
func NewContactService() (*ContactService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Contacts)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Contacts, common.ErrNotFound)
	}
	return &ContactService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contactmodels.Contact](coll),
	}, nil
}

// FindByEmail tìm contact theo email.
func (s *ContactService) FindByEmail(ctx context.Context, email string) (contactmodels.Contact, error) {
	return s.FindOne(ctx, bson.M{"email": email}, nil)
}

// FindBySegment tìm tất cả contact thuộc một donor segment.
func (s *ContactService) FindBySegment(ctx context.Context, segment string) ([]contactmodels.Contact, error) {
	return s.Find(ctx, bson.M{"donorSegment": segment}, nil)
}

// CountBySegment đếm số contact theo từng donor segment.
func (s *ContactService) CountBySegment(ctx context.Context) (map[string]int64, error) {
	result := make(map[string]int64, len(contactmodels.AllSegments))
	for _, segment := range contactmodels.AllSegments {
		count, err := s.CountDocuments(ctx, bson.M{"donorSegment": segment})
		if err != nil {
			return nil, err
		}
		result[segment] = count
	}
	return result, nil
}

// Chế độ refresh segment định kỳ.
const (
	SegmentRefreshModeFull  = "full"  // Tất cả contact có donation
	SegmentRefreshModeSmart = "smart" // Chỉ contact gần ngưỡng recency
)

const millisPerDay = int64(24 * 60 * 60 * 1000)

// Các ngưỡng recency của thang điểm RFM (ngày). Contact có lastDonationAt
// quanh các ngưỡng này (±5 ngày) là đối tượng của chế độ smart — chỉ những
// contact đó mới có thể đổi điểm R khi thời gian trôi.
var recencyThresholdDays = []int64{90, 180, 365, 730}

// ListContactIdsForSegmentRefresh trả về một trang _id contact cần rescoring
// định kỳ, sắp theo _id để phân trang ổn định.
func (s *ContactService) ListContactIdsForSegmentRefresh(ctx context.Context, mode string, limit, skip int) ([]primitive.ObjectID, error) {
	filter := bson.M{"donationCount": bson.M{"$gt": 0}}

	if mode == SegmentRefreshModeSmart {
		now := utility.CurrentTimeInMilli()
		windows := make([]bson.M, 0, len(recencyThresholdDays))
		for _, days := range recencyThresholdDays {
			windows = append(windows, bson.M{"lastDonationAt": bson.M{
				"$gte": now - (days+5)*millisPerDay,
				"$lte": now - (days-5)*millisPerDay,
			}})
		}
		filter["$or"] = windows
	}

	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(skip))

	cursor, err := s.Collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	ids := []primitive.ObjectID{}
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}

// FindDonorIds trả về danh sách _id của các contact có donationCount > 0.
// Dùng cho batch rescoring (worker và recalculate-all).
func (s *ContactService) FindDonorIds(ctx context.Context) ([]primitive.ObjectID, error) {
	cursor, err := s.Collection().Find(ctx, bson.M{"donationCount": bson.M{"$gt": 0}})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	ids := []primitive.ObjectID{}
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}
