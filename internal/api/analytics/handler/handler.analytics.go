// Package analyticshdl - Handler cho engine phân tích donor.
package analyticshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	analyticssvc "arts_crm/internal/api/analytics/service"
	basehdl "arts_crm/internal/api/base/handler"
	"arts_crm/internal/common"
	"arts_crm/internal/utility"
)

// AnalyticsHandler expose các thao tác tính lại thủ công và dashboard.
// Không có collection riêng — đi qua coordinator và dashboard service.
type AnalyticsHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	Coordinator      *analyticssvc.TriggerCoordinator
	DashboardService *analyticssvc.DashboardService
}

// NewAnalyticsHandler tạo AnalyticsHandler mới. coordinator wire ở cmd/server,
// dùng chung instance với transactions.
func NewAnalyticsHandler(coordinator *analyticssvc.TriggerCoordinator) (*AnalyticsHandler, error) {
	dashboardService, err := analyticssvc.NewDashboardService()
	if err != nil {
		return nil, fmt.Errorf("tạo DashboardService: %w", err)
	}
	return &AnalyticsHandler{
		BaseHandler:      &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		Coordinator:      coordinator,
		DashboardService: dashboardService,
	}, nil
}

func (h *AnalyticsHandler) parseObjectID(c fiber.Ctx) (primitive.ObjectID, error) {
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

// HandleRecalculateContact xử lý POST /analytics/recalculate-contact/:id —
// chạy lại aggregate+score của một contact.
func (h *AnalyticsHandler) HandleRecalculateContact(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		contactID, err := h.parseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.Coordinator.RecalculateContact(c.Context(), contactID)
		h.HandleResponse(c, fiber.Map{"contactId": contactID}, err)
		return nil
	})
}

// HandleRecalculateAll xử lý POST /analytics/recalculate-all — batch rescoring
// toàn bộ contact có donation.
func (h *AnalyticsHandler) HandleRecalculateAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		result, err := h.Coordinator.RecalculateAllContacts(c.Context())
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleRecalculateCampaign xử lý POST /analytics/recalculate-campaign/:id.
func (h *AnalyticsHandler) HandleRecalculateCampaign(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		campaignID, err := h.parseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.Coordinator.RecalculateCampaign(c.Context(), campaignID)
		h.HandleResponse(c, fiber.Map{"campaignId": campaignID}, err)
		return nil
	})
}

// HandleDashboard xử lý GET /analytics/dashboard.
func (h *AnalyticsHandler) HandleDashboard(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		metrics, err := h.DashboardService.GetMetrics(c.Context())
		h.HandleResponse(c, metrics, err)
		return nil
	})
}
