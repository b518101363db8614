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

// AttendanceHandler xử lý API đăng ký tham dự. InsertOne override để đi qua
// Register (kiểm tra trùng, sức chứa, rollup).
type AttendanceHandler struct {
	*basehdl.BaseHandler[eventmodels.EventAttendance, eventdto.AttendanceCreateInput, eventdto.AttendanceUpdateInput]
	AttendanceService *eventsvc.AttendanceService
}

// NewAttendanceHandler tạo AttendanceHandler mới, dùng chung EventService với
// EventHandler.
func NewAttendanceHandler(eventService *eventsvc.EventService) (*AttendanceHandler, error) {
	svc, err := eventsvc.NewAttendanceService(eventService)
	if err != nil {
		return nil, fmt.Errorf("tạo AttendanceService: %w", err)
	}
	return &AttendanceHandler{
		BaseHandler:       basehdl.NewBaseHandler[eventmodels.EventAttendance, eventdto.AttendanceCreateInput, eventdto.AttendanceUpdateInput](svc),
		AttendanceService: svc,
	}, nil
}

// InsertOne override base: đăng ký qua Register.
func (h *AttendanceHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input eventdto.AttendanceCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		model, err := h.ConvertCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi convert dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		data, err := h.AttendanceService.Register(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// statusAction chạy một thao tác đổi trạng thái theo :id.
func (h *AttendanceHandler) statusAction(c fiber.Ctx, action func(primitive.ObjectID) (eventmodels.EventAttendance, error)) error {
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

		data, err := action(utility.String2ObjectID(id))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleCheckIn xử lý POST /event-attendances/check-in/:id.
func (h *AttendanceHandler) HandleCheckIn(c fiber.Ctx) error {
	return h.statusAction(c, func(id primitive.ObjectID) (eventmodels.EventAttendance, error) {
		return h.AttendanceService.CheckIn(c.Context(), id)
	})
}

// HandleCancel xử lý POST /event-attendances/cancel/:id.
func (h *AttendanceHandler) HandleCancel(c fiber.Ctx) error {
	return h.statusAction(c, func(id primitive.ObjectID) (eventmodels.EventAttendance, error) {
		return h.AttendanceService.Cancel(c.Context(), id)
	})
}

// HandleNoShow xử lý POST /event-attendances/no-show/:id.
func (h *AttendanceHandler) HandleNoShow(c fiber.Ctx) error {
	return h.statusAction(c, func(id primitive.ObjectID) (eventmodels.EventAttendance, error) {
		return h.AttendanceService.MarkNoShow(c.Context(), id)
	})
}
