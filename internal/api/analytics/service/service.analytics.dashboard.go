package analyticssvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	contactsvc "arts_crm/internal/api/contacts/service"
	txmodels "arts_crm/internal/api/transactions/models"
	"arts_crm/internal/common"
	"arts_crm/internal/global"
)

// DashboardMetrics là bộ số liệu tổng quan cho màn hình dashboard.
// Mọi tỷ lệ đều guard mẫu số 0 → 0.
type DashboardMetrics struct {
	TotalContacts       int64            `json:"totalContacts"`
	TotalDonors         int64            `json:"totalDonors"`
	TotalLifetimeGiving float64          `json:"totalLifetimeGiving"`
	DonationCount       int64            `json:"donationCount"`
	AverageGiftSize     float64          `json:"averageGiftSize"`
	SegmentCounts       map[string]int64 `json:"segmentCounts"`
}

// AverageGiftSize tính giá trị trung bình một donation; count = 0 → 0.
func AverageGiftSize(total float64, count int64) float64 {
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// DashboardService tổng hợp số liệu cho dashboard từ contacts và transactions.
type DashboardService struct {
	contactService *contactsvc.ContactService
	transactions   *mongo.Collection
}

// NewDashboardService tạo DashboardService mới.
func NewDashboardService() (*DashboardService, error) {
	contactService, err := contactsvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("tạo ContactService: %w", err)
	}
	txColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Transactions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Transactions, common.ErrNotFound)
	}
	return &DashboardService{
		contactService: contactService,
		transactions:   txColl,
	}, nil
}

// GetMetrics tính bộ số liệu dashboard hiện tại. Luôn quét dữ liệu sống,
// không đọc từ các trường cached của contact.
func (s *DashboardService) GetMetrics(ctx context.Context) (DashboardMetrics, error) {
	metrics := DashboardMetrics{}

	totalContacts, err := s.contactService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return metrics, err
	}
	metrics.TotalContacts = totalContacts

	totalDonors, err := s.contactService.CountDocuments(ctx, bson.M{"donationCount": bson.M{"$gt": 0}})
	if err != nil {
		return metrics, err
	}
	metrics.TotalDonors = totalDonors

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"type":   txmodels.TxTypeDonation,
			"status": txmodels.TxStatusCompleted,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := s.transactions.Aggregate(ctx, pipeline)
	if err != nil {
		return metrics, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var summary struct {
		Total float64 `bson:"total"`
		Count int64   `bson:"count"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&summary); err != nil {
			return metrics, common.ConvertMongoError(err)
		}
	}
	if err := cursor.Err(); err != nil {
		return metrics, common.ConvertMongoError(err)
	}

	metrics.TotalLifetimeGiving = summary.Total
	metrics.DonationCount = summary.Count
	metrics.AverageGiftSize = AverageGiftSize(summary.Total, summary.Count)

	segmentCounts, err := s.contactService.CountBySegment(ctx)
	if err != nil {
		return metrics, err
	}
	metrics.SegmentCounts = segmentCounts

	return metrics, nil
}
