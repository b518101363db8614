package transactionsvc

import (
	"fmt"

	basesvc "arts_crm/internal/api/base/service"
	txmodels "arts_crm/internal/api/transactions/models"
	"arts_crm/internal/common"
	"arts_crm/internal/global"
)

// CampaignService xử lý logic nghiệp vụ campaign. Rollup fields
// (totalRaised, donorCount) do analytics ghi.
type CampaignService struct {
	*basesvc.BaseServiceMongoImpl[txmodels.Campaign]
}

// NewCampaignService tạo CampaignService mới.
func NewCampaignService() (*CampaignService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Campaigns)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Campaigns, common.ErrNotFound)
	}
	return &CampaignService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[txmodels.Campaign](coll),
	}, nil
}
