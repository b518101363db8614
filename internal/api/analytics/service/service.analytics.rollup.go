package analyticssvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "arts_crm/internal/api/base/service"
	txmodels "arts_crm/internal/api/transactions/models"
	transactionsvc "arts_crm/internal/api/transactions/service"
	"arts_crm/internal/common"
	"arts_crm/internal/global"
	"arts_crm/internal/utility"
)

// RollupService tính lại các trường rollup của campaign và pledge từ tập
// giao dịch completed. Mỗi lần rollup quét lại dữ liệu sống; ghi theo
// last-writer-wins, không đồng bộ giữa các rollup.
type RollupService struct {
	campaignService *transactionsvc.CampaignService
	pledgeService   *transactionsvc.PledgeService
	transactions    *mongo.Collection
}

// NewRollupService tạo RollupService mới.
func NewRollupService() (*RollupService, error) {
	campaignService, err := transactionsvc.NewCampaignService()
	if err != nil {
		return nil, fmt.Errorf("tạo CampaignService: %w", err)
	}
	pledgeService, err := transactionsvc.NewPledgeService()
	if err != nil {
		return nil, fmt.Errorf("tạo PledgeService: %w", err)
	}
	txColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Transactions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Transactions, common.ErrNotFound)
	}
	return &RollupService{
		campaignService: campaignService,
		pledgeService:   pledgeService,
		transactions:    txColl,
	}, nil
}

// campaignSummary là kết quả group rollup campaign.
type campaignSummary struct {
	Total  float64              `bson:"total"`
	Donors []primitive.ObjectID `bson:"donors"`
}

// RecalculateCampaign quét các giao dịch completed gắn với campaign và
// persist totalRaised (tổng amount) + donorCount (số contact distinct).
func (s *RollupService) RecalculateCampaign(ctx context.Context, campaignID primitive.ObjectID) error {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"campaignId": campaignID,
			"status":     txmodels.TxStatusCompleted,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":    nil,
			"total":  bson.M{"$sum": "$amount"},
			"donors": bson.M{"$addToSet": "$contactId"},
		}}},
	}

	cursor, err := s.transactions.Aggregate(ctx, pipeline)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var summary campaignSummary
	if cursor.Next(ctx) {
		if err := cursor.Decode(&summary); err != nil {
			return common.ConvertMongoError(err)
		}
	}
	if err := cursor.Err(); err != nil {
		return common.ConvertMongoError(err)
	}

	_, err = s.campaignService.UpdateById(ctx, campaignID, &basesvc.UpdateData{Set: bson.M{
		"totalRaised": summary.Total,
		"donorCount":  len(summary.Donors),
	}})
	return err
}

// RecalculatePledge quét các giao dịch completed của contact+campaign từ
// pledgeDate trở đi, persist amountPaid rồi suy trạng thái theo
// DerivePledgeStatus (ratchet một chiều — fulfilled không bao giờ hạ).
func (s *RollupService) RecalculatePledge(ctx context.Context, pledgeID primitive.ObjectID) error {
	pledge, err := s.pledgeService.FindOneById(ctx, pledgeID)
	if err != nil {
		return err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"contactId":       pledge.ContactID,
			"campaignId":      pledge.CampaignID,
			"status":          txmodels.TxStatusCompleted,
			"transactionDate": bson.M{"$gte": pledge.PledgeDate},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := s.transactions.Aggregate(ctx, pipeline)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var summary struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&summary); err != nil {
			return common.ConvertMongoError(err)
		}
	}
	if err := cursor.Err(); err != nil {
		return common.ConvertMongoError(err)
	}

	status, fulfillmentDate := txmodels.DerivePledgeStatus(pledge, summary.Total, utility.CurrentTimeInMilli())

	_, err = s.pledgeService.UpdateById(ctx, pledgeID, &basesvc.UpdateData{Set: bson.M{
		"amountPaid":      summary.Total,
		"status":          status,
		"fulfillmentDate": fulfillmentDate,
	}})
	return err
}

// RecalculatePledgesFor rollup mọi pledge của một cặp contact+campaign.
// Coordinator gọi sau mỗi mutation giao dịch có campaign.
func (s *RollupService) RecalculatePledgesFor(ctx context.Context, contactID, campaignID primitive.ObjectID) error {
	pledges, err := s.pledgeService.FindByContactAndCampaign(ctx, contactID, campaignID)
	if err != nil {
		return err
	}
	for _, pledge := range pledges {
		if err := s.RecalculatePledge(ctx, pledge.ID); err != nil {
			return fmt.Errorf("rollup pledge %s: %w", pledge.ID.Hex(), err)
		}
	}
	return nil
}
