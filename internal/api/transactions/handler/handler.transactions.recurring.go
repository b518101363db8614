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

// RecurringDonationHandler xử lý API lịch đóng góp định kỳ.
type RecurringDonationHandler struct {
	*basehdl.BaseHandler[txmodels.RecurringDonation, txdto.RecurringDonationCreateInput, txdto.RecurringDonationUpdateInput]
	RecurringService *transactionsvc.RecurringDonationService
}

// NewRecurringDonationHandler tạo RecurringDonationHandler mới.
// transactionService dùng chung instance đã wire notifier để kỳ thu kích hoạt
// tính lại aggregate.
func NewRecurringDonationHandler(transactionService *transactionsvc.TransactionService) (*RecurringDonationHandler, error) {
	svc, err := transactionsvc.NewRecurringDonationService(transactionService)
	if err != nil {
		return nil, fmt.Errorf("tạo RecurringDonationService: %w", err)
	}
	return &RecurringDonationHandler{
		BaseHandler:      basehdl.NewBaseHandler[txmodels.RecurringDonation, txdto.RecurringDonationCreateInput, txdto.RecurringDonationUpdateInput](svc),
		RecurringService: svc,
	}, nil
}

// InsertOne override base: tạo lịch qua CreateRecurringDonation.
func (h *RecurringDonationHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input txdto.RecurringDonationCreateInput
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

		data, err := h.RecurringService.CreateRecurringDonation(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleProcessPayment xử lý POST /recurring-donations/process-payment/:id —
// thu một kỳ của lịch.
func (h *RecurringDonationHandler) HandleProcessPayment(c fiber.Ctx) error {
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

		data, err := h.RecurringService.ProcessRecurringPayment(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFindDue xử lý GET /recurring-donations/due — các lịch đã đến kỳ thu.
func (h *RecurringDonationHandler) HandleFindDue(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.RecurringService.FindDue(c.Context(), utility.CurrentTimeInMilli())
		h.HandleResponse(c, data, err)
		return nil
	})
}
