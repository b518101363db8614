// Package eventhdl - Handler cho domain events.
package eventhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "arts_crm/internal/api/base/handler"
	eventdto "arts_crm/internal/api/events/dto"
	eventmodels "arts_crm/internal/api/events/models"
	eventsvc "arts_crm/internal/api/events/service"
	"arts_crm/internal/common"
	"arts_crm/internal/utility"
)

// EventHandler xử lý API sự kiện. CRUD kế thừa từ BaseHandler.
type EventHandler struct {
	*basehdl.BaseHandler[eventmodels.Event, eventdto.EventCreateInput, eventdto.EventUpdateInput]
	EventService *eventsvc.EventService
}

// NewEventHandler tạo EventHandler mới.
func NewEventHandler() (*EventHandler, error) {
	svc, err := eventsvc.NewEventService()
	if err != nil {
		return nil, fmt.Errorf("tạo EventService: %w", err)
	}
	return &EventHandler{
		BaseHandler:  basehdl.NewBaseHandler[eventmodels.Event, eventdto.EventCreateInput, eventdto.EventUpdateInput](svc),
		EventService: svc,
	}, nil
}

// HandleROI xử lý GET /events/roi/:id — attendance rate, doanh thu ròng, ROI.
func (h *EventHandler) HandleROI(c fiber.Ctx) error {
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

		data, err := h.EventService.GetROI(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleRecalculate xử lý POST /events/recalculate/:id — rollup lại thủ công.
func (h *EventHandler) HandleRecalculate(c fiber.Ctx) error {
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

		eventID := utility.String2ObjectID(id)
		err := h.EventService.RecalculateEventRollups(c.Context(), eventID)
		h.HandleResponse(c, fiber.Map{"eventId": eventID}, err)
		return nil
	})
}
