package transactionhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "arts_crm/internal/api/base/handler"
	txdto "arts_crm/internal/api/transactions/dto"
	txmodels "arts_crm/internal/api/transactions/models"
	transactionsvc "arts_crm/internal/api/transactions/service"
	"arts_crm/internal/common"
)

// PledgeHandler xử lý API pledge. InsertOne override để ép trạng thái khởi
// tạo active và pledgeDate mặc định.
type PledgeHandler struct {
	*basehdl.BaseHandler[txmodels.Pledge, txdto.PledgeCreateInput, txdto.PledgeUpdateInput]
	PledgeService *transactionsvc.PledgeService
}

// NewPledgeHandler tạo PledgeHandler mới.
func NewPledgeHandler() (*PledgeHandler, error) {
	svc, err := transactionsvc.NewPledgeService()
	if err != nil {
		return nil, fmt.Errorf("tạo PledgeService: %w", err)
	}
	return &PledgeHandler{
		BaseHandler:   basehdl.NewBaseHandler[txmodels.Pledge, txdto.PledgeCreateInput, txdto.PledgeUpdateInput](svc),
		PledgeService: svc,
	}, nil
}

// InsertOne override base: tạo pledge qua CreatePledge.
func (h *PledgeHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input txdto.PledgeCreateInput
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

		data, err := h.PledgeService.CreatePledge(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}
