package transactionsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "arts_crm/internal/api/base/service"
	txmodels "arts_crm/internal/api/transactions/models"
	"arts_crm/internal/common"
	"arts_crm/internal/global"
	"arts_crm/internal/utility"
)

// PledgeService xử lý logic nghiệp vụ pledge. amountPaid/status/fulfillmentDate
// do analytics suy ra qua rollup.
type PledgeService struct {
	*basesvc.BaseServiceMongoImpl[txmodels.Pledge]
}

// NewPledgeService tạo PledgeService mới.
func NewPledgeService() (*PledgeService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Pledges)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Pledges, common.ErrNotFound)
	}
	return &PledgeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[txmodels.Pledge](coll),
	}, nil
}

// CreatePledge tạo pledge mới ở trạng thái active, pledgeDate mặc định now.
func (s *PledgeService) CreatePledge(ctx context.Context, pledge txmodels.Pledge) (txmodels.Pledge, error) {
	pledge.Status = txmodels.PledgeStatusActive
	pledge.AmountPaid = 0
	pledge.FulfillmentDate = 0
	if pledge.PledgeDate == 0 {
		pledge.PledgeDate = utility.CurrentTimeInMilli()
	}
	return s.InsertOne(ctx, pledge)
}

// FindByContactAndCampaign trả về các pledge của một cặp contact+campaign.
// Coordinator dùng để tìm pledge cần rollup sau mỗi mutation giao dịch.
func (s *PledgeService) FindByContactAndCampaign(ctx context.Context, contactID, campaignID primitive.ObjectID) ([]txmodels.Pledge, error) {
	return s.Find(ctx, bson.M{"contactId": contactID, "campaignId": campaignID}, nil)
}
