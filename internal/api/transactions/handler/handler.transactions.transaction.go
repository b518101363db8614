// Package transactionhdl - Handler cho domain transactions.
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
	"arts_crm/internal/logger"
	"arts_crm/internal/utility"
)

// TransactionHandler xử lý API giao dịch. InsertOne/DeleteById được override
// để đi qua TransactionService (báo coordinator); status chỉ đổi qua
// update-status để giữ state machine.
type TransactionHandler struct {
	*basehdl.BaseHandler[txmodels.Transaction, txdto.TransactionCreateInput, txdto.TransactionUpdateInput]
	TransactionService *transactionsvc.TransactionService
}

// NewTransactionHandler tạo TransactionHandler mới. notifier là trigger
// coordinator của analytics, wire ở cmd/server.
func NewTransactionHandler(notifier transactionsvc.ChangeNotifier) (*TransactionHandler, error) {
	svc, err := transactionsvc.NewTransactionService(notifier)
	if err != nil {
		return nil, fmt.Errorf("tạo TransactionService: %w", err)
	}
	return &TransactionHandler{
		BaseHandler:        basehdl.NewBaseHandler[txmodels.Transaction, txdto.TransactionCreateInput, txdto.TransactionUpdateInput](svc),
		TransactionService: svc,
	}, nil
}

// InsertOne override base: tạo giao dịch qua CreateTransaction để áp default
// và kích hoạt tính lại khi tạo thẳng ở completed.
func (h *TransactionHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input txdto.TransactionCreateInput
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

		data, err := h.TransactionService.CreateTransaction(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById override base: xóa qua DeleteTransaction để trừ lại aggregate
// nếu giao dịch đang được tính.
func (h *TransactionHandler) DeleteById(c fiber.Ctx) error {
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

		err := h.TransactionService.DeleteTransaction(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleUpdateStatus xử lý PUT /transactions/update-status/:id — chuyển trạng
// thái giao dịch theo state machine.
func (h *TransactionHandler) HandleUpdateStatus(c fiber.Ctx) error {
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

		var input txdto.TransactionStatusInput
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

		data, err := h.TransactionService.UpdateStatus(c.Context(), utility.String2ObjectID(id), input.Status)
		if err == nil {
			logger.LogCRUD("update", "transaction", id, c, map[string]interface{}{
				"newStatus": input.Status,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFindByContact xử lý GET /transactions/by-contact/:contactId.
func (h *TransactionHandler) HandleFindByContact(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		contactID := c.Params("contactId")
		if !primitive.IsValidObjectID(contactID) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", contactID),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.TransactionService.FindByContact(c.Context(), utility.String2ObjectID(contactID))
		h.HandleResponse(c, data, err)
		return nil
	})
}
