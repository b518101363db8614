package analyticssvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "arts_crm/internal/api/base/service"
	contactsvc "arts_crm/internal/api/contacts/service"
	txmodels "arts_crm/internal/api/transactions/models"
	"arts_crm/internal/common"
	"arts_crm/internal/global"
	"arts_crm/internal/utility"
)

// GivingAggregator tính lại các trường giving của contact từ tập giao dịch
// donation đã completed. Idempotent: chạy lại với cùng tập giao dịch cho cùng
// kết quả. Không tự chấm điểm RFM — caller (coordinator) chain ScoreContact
// ngay sau.
type GivingAggregator struct {
	contactService *contactsvc.ContactService
	transactions   *mongo.Collection
}

// NewGivingAggregator tạo GivingAggregator mới.
func NewGivingAggregator() (*GivingAggregator, error) {
	contactService, err := contactsvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("tạo ContactService: %w", err)
	}
	txColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Transactions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Transactions, common.ErrNotFound)
	}
	return &GivingAggregator{
		contactService: contactService,
		transactions:   txColl,
	}, nil
}

// givingSummary là kết quả group của pipeline aggregate.
type givingSummary struct {
	Total float64 `bson:"total"`
	Count int     `bson:"count"`
	Last  int64   `bson:"last"`
}

// RecalculateContactGiving quét toàn bộ giao dịch countable của contact và
// persist totalLifetimeGiving / donationCount / lastDonationAt. Không có giao
// dịch nào → cả ba về 0. Luôn quét dữ liệu sống, không cộng dồn từ cache.
func (s *GivingAggregator) RecalculateContactGiving(ctx context.Context, contactID primitive.ObjectID) error {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"contactId": contactID,
			"type":      txmodels.TxTypeDonation,
			"status":    txmodels.TxStatusCompleted,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
			"count": bson.M{"$sum": 1},
			"last":  bson.M{"$max": "$transactionDate"},
		}}},
	}

	cursor, err := s.transactions.Aggregate(ctx, pipeline)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var summary givingSummary
	if cursor.Next(ctx) {
		if err := cursor.Decode(&summary); err != nil {
			return common.ConvertMongoError(err)
		}
	}
	if err := cursor.Err(); err != nil {
		return common.ConvertMongoError(err)
	}

	_, err = s.contactService.UpdateById(ctx, contactID, &basesvc.UpdateData{Set: bson.M{
		"totalLifetimeGiving": summary.Total,
		"donationCount":       summary.Count,
		"lastDonationAt":      summary.Last,
	}})
	return err
}

// ScoreContact đọc các trường giving hiện tại của contact, chấm điểm RFM và
// persist rfmScore / donorSegment. Phép tính total — ngoài NotFound không có
// trạng thái lỗi nào khác.
func (s *GivingAggregator) ScoreContact(ctx context.Context, contactID primitive.ObjectID) error {
	contact, err := s.contactService.FindOneById(ctx, contactID)
	if err != nil {
		return err
	}

	score, segment := ComputeRFM(
		contact.LastDonationAt,
		contact.DonationCount,
		contact.TotalLifetimeGiving,
		utility.CurrentTimeInMilli(),
	)

	_, err = s.contactService.UpdateById(ctx, contactID, &basesvc.UpdateData{Set: bson.M{
		"rfmScore":     score,
		"donorSegment": segment,
	}})
	return err
}

// DonorContactIds trả về _id các contact có donationCount > 0, cho batch
// rescoring.
func (s *GivingAggregator) DonorContactIds(ctx context.Context) ([]primitive.ObjectID, error) {
	return s.contactService.FindDonorIds(ctx)
}
