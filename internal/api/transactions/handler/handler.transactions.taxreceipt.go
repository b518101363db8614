package transactionhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "arts_crm/internal/api/base/handler"
	txdto "arts_crm/internal/api/transactions/dto"
	txmodels "arts_crm/internal/api/transactions/models"
	transactionsvc "arts_crm/internal/api/transactions/service"
	"arts_crm/internal/common"
	"arts_crm/internal/logger"
	"arts_crm/internal/utility"
)

// TaxReceiptHandler xử lý API biên nhận thuế. Collection chỉ đọc qua CRUD,
// phát hành qua /issue.
type TaxReceiptHandler struct {
	*basehdl.BaseHandler[txmodels.TaxReceipt, txdto.TaxReceiptIssueInput, txdto.TaxReceiptIssueInput]
	TaxReceiptService *transactionsvc.TaxReceiptService
}

// NewTaxReceiptHandler tạo TaxReceiptHandler mới.
func NewTaxReceiptHandler(transactionService *transactionsvc.TransactionService) (*TaxReceiptHandler, error) {
	svc, err := transactionsvc.NewTaxReceiptService(transactionService)
	if err != nil {
		return nil, fmt.Errorf("tạo TaxReceiptService: %w", err)
	}
	return &TaxReceiptHandler{
		BaseHandler:       basehdl.NewBaseHandler[txmodels.TaxReceipt, txdto.TaxReceiptIssueInput, txdto.TaxReceiptIssueInput](svc),
		TaxReceiptService: svc,
	}, nil
}

// HandleIssueReceipt xử lý POST /tax-receipts/issue — phát hành biên nhận cho
// một giao dịch donation đã completed.
func (h *TaxReceiptHandler) HandleIssueReceipt(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input txdto.TaxReceiptIssueInput
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

		data, err := h.TaxReceiptService.IssueReceipt(
			c.Context(),
			utility.String2ObjectID(input.TransactionID),
			input.QuidProQuoAmount,
		)
		if err == nil {
			logger.LogCRUD("create", "tax_receipt", data.ID.Hex(), c, map[string]interface{}{
				"transactionId": input.TransactionID,
				"receiptNumber": data.ReceiptNumber,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}
