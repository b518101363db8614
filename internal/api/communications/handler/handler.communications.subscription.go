package communicationhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "arts_crm/internal/api/base/handler"
	communicationsvc "arts_crm/internal/api/communications/service"
	contactsvc "arts_crm/internal/api/contacts/service"
	transactionsvc "arts_crm/internal/api/transactions/service"
	"arts_crm/internal/common"
	"arts_crm/internal/utility"
)

// SubscriptionHandler xử lý unsubscribe token và gửi email biên nhận thuế.
type SubscriptionHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	SubscriptionService *communicationsvc.SubscriptionService
	ReceiptMailer       *communicationsvc.ReceiptMailer
	TaxReceiptService   *transactionsvc.TaxReceiptService
	ContactService      *contactsvc.ContactService
}

// NewSubscriptionHandler tạo SubscriptionHandler mới. TransactionService ở
// đây chỉ dùng đọc nên không cần notifier.
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	subscriptionService, err := communicationsvc.NewSubscriptionService()
	if err != nil {
		return nil, fmt.Errorf("tạo SubscriptionService: %w", err)
	}
	transactionService, err := transactionsvc.NewTransactionService(nil)
	if err != nil {
		return nil, fmt.Errorf("tạo TransactionService: %w", err)
	}
	taxReceiptService, err := transactionsvc.NewTaxReceiptService(transactionService)
	if err != nil {
		return nil, fmt.Errorf("tạo TaxReceiptService: %w", err)
	}
	contactService, err := contactsvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("tạo ContactService: %w", err)
	}
	return &SubscriptionHandler{
		BaseHandler:         &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		SubscriptionService: subscriptionService,
		ReceiptMailer:       communicationsvc.NewReceiptMailer(),
		TaxReceiptService:   taxReceiptService,
		ContactService:      contactService,
	}, nil
}

// HandleUnsubscribe xử lý GET /communications/unsubscribe/:token — link trong
// email, không qua auth.
func (h *SubscriptionHandler) HandleUnsubscribe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		token := c.Params("token")
		if token == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, "Thiếu token unsubscribe",
				common.StatusBadRequest, nil))
			return nil
		}

		contact, err := h.SubscriptionService.Unsubscribe(c.Context(), token)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{
			"contactId":   contact.ID,
			"emailOptOut": contact.EmailOptOut,
		}, nil)
		return nil
	})
}

// HandleEnsureToken xử lý POST /communications/unsubscribe-token/:contactId —
// cấp (hoặc trả lại) token unsubscribe của contact kèm URL đầy đủ.
func (h *SubscriptionHandler) HandleEnsureToken(c fiber.Ctx) error {
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

		token, err := h.SubscriptionService.EnsureUnsubscribeToken(c.Context(), utility.String2ObjectID(contactID))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{
			"token": token,
			"url":   h.SubscriptionService.UnsubscribeURL(token),
		}, nil)
		return nil
	})
}

// HandleSendReceipt xử lý POST /communications/send-receipt/:receiptId — gửi
// email biên nhận thuế rồi ghi nhận thời điểm gửi.
func (h *SubscriptionHandler) HandleSendReceipt(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		receiptID := c.Params("receiptId")
		if !primitive.IsValidObjectID(receiptID) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", receiptID),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		receipt, err := h.TaxReceiptService.FindOneById(c.Context(), utility.String2ObjectID(receiptID))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		contact, err := h.ContactService.FindOneById(c.Context(), receipt.ContactID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.ReceiptMailer.SendTaxReceipt(receipt, contact); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.TaxReceiptService.MarkEmailSent(c.Context(), receipt.ID)
		h.HandleResponse(c, data, err)
		return nil
	})
}
