// Package communicationsvc - Service cho domain communications.
package communicationsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "arts_crm/internal/api/base/service"
	commmodels "arts_crm/internal/api/communications/models"
	"arts_crm/internal/common"
	"arts_crm/internal/global"
	"arts_crm/internal/utility"
)

// Các metric tương tác được phép tăng qua tracking.
var engagementFields = map[string]string{
	"open":        "openCount",
	"click":       "clickCount",
	"bounce":      "bounceCount",
	"unsubscribe": "unsubscribeCount",
}

// EmailCampaignService xử lý logic nghiệp vụ email campaign: counter tương
// tác và các tỷ lệ suy ra.
type EmailCampaignService struct {
	*basesvc.BaseServiceMongoImpl[commmodels.EmailCampaign]
}

// NewEmailCampaignService tạo EmailCampaignService mới.
func NewEmailCampaignService() (*EmailCampaignService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.EmailCampaigns)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.EmailCampaigns, common.ErrNotFound)
	}
	return &EmailCampaignService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[commmodels.EmailCampaign](coll),
	}, nil
}

// RecordEngagement tăng counter tương tác (open/click/bounce/unsubscribe)
// của một campaign. Dùng $inc trực tiếp để an toàn với tracking đồng thời.
func (s *EmailCampaignService) RecordEngagement(ctx context.Context, id primitive.ObjectID, metric string) (commmodels.EmailCampaign, error) {
	var campaign commmodels.EmailCampaign

	field, ok := engagementFields[metric]
	if !ok {
		return campaign, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Metric '%s' không hợp lệ. Các metric hợp lệ: open, click, bounce, unsubscribe", metric),
			common.StatusBadRequest, nil)
	}

	result, err := s.Collection().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{field: 1},
			"$set": bson.M{"updatedAt": utility.CurrentTimeInMilli()},
		},
	)
	if err != nil {
		return campaign, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return campaign, common.ErrNotFound
	}
	return s.FindOneById(ctx, id)
}

// MarkSent đánh dấu campaign đã gửi xong và ghi nhận số lượng.
func (s *EmailCampaignService) MarkSent(ctx context.Context, id primitive.ObjectID, recipientCount, sentCount int) (commmodels.EmailCampaign, error) {
	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: bson.M{
		"status":         commmodels.EmailCampaignStatusSent,
		"sentAt":         utility.CurrentTimeInMilli(),
		"recipientCount": recipientCount,
		"sentCount":      sentCount,
	}})
}

// EngagementRates là bộ tỷ lệ tương tác của một campaign.
type EngagementRates struct {
	CampaignID primitive.ObjectID `json:"campaignId"`
	SentCount  int                `json:"sentCount"`
	OpenRate   float64            `json:"openRate"`
	ClickRate  float64            `json:"clickRate"`
	BounceRate float64            `json:"bounceRate"`
}

// GetEngagementRates tính các tỷ lệ tương tác hiện tại của campaign.
func (s *EmailCampaignService) GetEngagementRates(ctx context.Context, id primitive.ObjectID) (EngagementRates, error) {
	campaign, err := s.FindOneById(ctx, id)
	if err != nil {
		return EngagementRates{}, err
	}
	return EngagementRates{
		CampaignID: campaign.ID,
		SentCount:  campaign.SentCount,
		OpenRate:   campaign.OpenRate(),
		ClickRate:  campaign.ClickRate(),
		BounceRate: campaign.BounceRate(),
	}, nil
}
