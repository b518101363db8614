package transactionhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "arts_crm/internal/api/base/handler"
	txdto "arts_crm/internal/api/transactions/dto"
	txmodels "arts_crm/internal/api/transactions/models"
	transactionsvc "arts_crm/internal/api/transactions/service"
	"arts_crm/internal/common"
	"arts_crm/internal/utility"
)

// CampaignHandler xử lý API campaign. CRUD kế thừa từ BaseHandler.
type CampaignHandler struct {
	*basehdl.BaseHandler[txmodels.Campaign, txdto.CampaignCreateInput, txdto.CampaignUpdateInput]
	CampaignService *transactionsvc.CampaignService
}

// NewCampaignHandler tạo CampaignHandler mới.
func NewCampaignHandler() (*CampaignHandler, error) {
	svc, err := transactionsvc.NewCampaignService()
	if err != nil {
		return nil, fmt.Errorf("tạo CampaignService: %w", err)
	}
	return &CampaignHandler{
		BaseHandler:     basehdl.NewBaseHandler[txmodels.Campaign, txdto.CampaignCreateInput, txdto.CampaignUpdateInput](svc),
		CampaignService: svc,
	}, nil
}

// HandleProgress xử lý GET /campaigns/progress/:id — tiến độ gây quỹ so với
// mục tiêu, goal = 0 trả 0.
func (h *CampaignHandler) HandleProgress(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		campaign, err := h.CampaignService.FindOneById(c.Context(), utility.String2ObjectID(id))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{
			"campaignId":         campaign.ID,
			"name":               campaign.Name,
			"goalAmount":         campaign.GoalAmount,
			"totalRaised":        campaign.TotalRaised,
			"donorCount":         campaign.DonorCount,
			"progressPercentage": campaign.Progress(),
		}, nil)
		return nil
	})
}
