// Package contacthdl - Handler contact.
package contacthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "arts_crm/internal/api/base/handler"
	contactdto "arts_crm/internal/api/contacts/dto"
	contactmodels "arts_crm/internal/api/contacts/models"
	contactsvc "arts_crm/internal/api/contacts/service"
	"arts_crm/internal/common"
	"arts_crm/internal/utility"
)

// ContactHandler xử lý API contact. CRUD kế thừa từ BaseHandler.
type ContactHandler struct {
	*basehdl.BaseHandler[contactmodels.Contact, contactdto.ContactCreateInput, contactdto.ContactUpdateInput]
	ContactService *contactsvc.ContactService
}

// NewContactHandler tạo ContactHandler mới.
func NewContactHandler() (*ContactHandler, error) {
	svc, err := contactsvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("tạo ContactService: %w", err)
	}
	return &ContactHandler{
		BaseHandler:    basehdl.NewBaseHandler[contactmodels.Contact, contactdto.ContactCreateInput, contactdto.ContactUpdateInput](svc),
		ContactService: svc,
	}, nil
}

// HandleSegmentCounts xử lý GET /contacts/segment-counts — đếm contact theo từng donor segment.
func (h *ContactHandler) HandleSegmentCounts(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		counts, err := h.ContactService.CountBySegment(c.Context())
		if err != nil {
			c.Status(common.StatusInternalServerError).JSON(fiber.Map{
				"code": common.ErrCodeDatabase.Code, "message": "Lỗi đếm segment: " + err.Error(), "status": "error",
			})
			return nil
		}
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess,
			"data": counts, "status": "success",
		})
		return nil
	})
}

// HandleFindBySegment xử lý GET /contacts/by-segment/:segment — danh sách contact theo segment.
func (h *ContactHandler) HandleFindBySegment(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		segment := c.Params("segment")
		if !utility.Contains(contactmodels.AllSegments, segment) {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code":    common.ErrCodeValidationInput.Code,
				"message": fmt.Sprintf("Segment '%s' không hợp lệ. Các segment hợp lệ: %v", segment, contactmodels.AllSegments),
				"status":  "error",
			})
			return nil
		}

		contacts, err := h.ContactService.FindBySegment(c.Context(), segment)
		if err != nil {
			c.Status(common.StatusInternalServerError).JSON(fiber.Map{
				"code": common.ErrCodeDatabase.Code, "message": "Lỗi truy vấn: " + err.Error(), "status": "error",
			})
			return nil
		}
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess,
			"data": contacts, "status": "success",
		})
		return nil
	})
}
