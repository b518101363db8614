// Package communicationhdl - Handler cho domain communications.
package communicationhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "arts_crm/internal/api/base/handler"
	commdto "arts_crm/internal/api/communications/dto"
	commmodels "arts_crm/internal/api/communications/models"
	communicationsvc "arts_crm/internal/api/communications/service"
	"arts_crm/internal/common"
	"arts_crm/internal/utility"
)

// EmailCampaignHandler xử lý API email campaign: CRUD, tracking tương tác và
// tỷ lệ engagement.
type EmailCampaignHandler struct {
	*basehdl.BaseHandler[commmodels.EmailCampaign, commdto.EmailCampaignCreateInput, commdto.EmailCampaignUpdateInput]
	EmailCampaignService *communicationsvc.EmailCampaignService
}

// NewEmailCampaignHandler tạo EmailCampaignHandler mới.
func NewEmailCampaignHandler() (*EmailCampaignHandler, error) {
	svc, err := communicationsvc.NewEmailCampaignService()
	if err != nil {
		return nil, fmt.Errorf("tạo EmailCampaignService: %w", err)
	}
	return &EmailCampaignHandler{
		BaseHandler:          basehdl.NewBaseHandler[commmodels.EmailCampaign, commdto.EmailCampaignCreateInput, commdto.EmailCampaignUpdateInput](svc),
		EmailCampaignService: svc,
	}, nil
}

func (h *EmailCampaignHandler) parseObjectID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := h.GetIDFromContext(c)
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// HandleRecordEngagement xử lý POST /email-track/:id/:metric —
// tracking pixel/webhook gọi, không qua auth.
func (h *EmailCampaignHandler) HandleRecordEngagement(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.EmailCampaignService.RecordEngagement(c.Context(), id, c.Params("metric"))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleMarkSent xử lý POST /email-campaigns/mark-sent/:id — hệ thống gửi
// email báo về số lượng đã gửi.
func (h *EmailCampaignHandler) HandleMarkSent(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input commdto.MarkSentInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.EmailCampaignService.MarkSent(c.Context(), id, input.RecipientCount, input.SentCount)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleRates xử lý GET /email-campaigns/rates/:id — tỷ lệ open/click/bounce.
func (h *EmailCampaignHandler) HandleRates(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.EmailCampaignService.GetEngagementRates(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}
